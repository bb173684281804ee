package id3tag

import (
	"github.com/simonhull/id3tag/internal/frames"
	"github.com/simonhull/id3tag/internal/types"
)

// Chapter is a flattened view of one CHAP frame.
type Chapter = types.Chapter

// Chapters returns the chapters of tag ordered by start time.
//
//	for _, ch := range id3tag.Chapters(tag) {
//		fmt.Printf("[%d] %s: %s - %s\n", ch.Index, ch.Title, ch.StartTime, ch.EndTime)
//	}
func Chapters(tag *Tag) []Chapter {
	return frames.Chapters(tag)
}
