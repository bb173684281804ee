package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dhowden/tag"
	"github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"

	"github.com/simonhull/id3tag"
)

const usage = `Usage: id3-dump-tool <command> [file...]

Commands:
  status <file...>  report which tags each file carries
  v1 <file>         print the ID3v1 trailer
  v2 <file>         list raw ID3v2 frames
  frames <file>     print decoded ID3v2 frames
  check <file>      compare against an independent decoder
  version           print build information

Set LOG_LEVEL=debug to trace decoding.`

// Useful for confirming what we're able to read from a tagged file.
func main() {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(1)
	}

	if lvl, err := log.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(lvl)
	} else {
		log.SetLevel(log.InfoLevel)
	}

	cmd, args := os.Args[1], os.Args[2:]
	for i, a := range args {
		p, err := homedir.Expand(a)
		if err != nil {
			fail(err)
		}
		args[i] = p
	}

	if cmd == "version" {
		info := id3tag.GetVersionInfo()
		fmt.Printf("id3-dump-tool %s (commit %s, built %s, %s)\n", info.Version, info.GitCommit, info.BuildTime, info.GoVersion)
		return
	}
	if len(args) == 0 {
		fmt.Println(usage)
		os.Exit(1)
	}

	var err error
	switch cmd {
	case "status":
		err = status(args)
	case "v1":
		err = dumpV1(args[0])
	case "v2":
		err = dumpRaw(args[0])
	case "frames":
		err = dumpFrames(args[0])
	case "check":
		err = check(args[0])
	default:
		fmt.Println(usage)
		os.Exit(1)
	}
	if err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Printf("Error: %v\n", err)
	os.Exit(1)
}

func status(paths []string) error {
	states, err := id3tag.StatusMany(context.Background(), paths...)
	if err != nil {
		return err
	}
	for i, st := range states {
		fmt.Printf("%s: ID3v2=%t ID3v1=%t\n", paths[i], st.V2, st.V1)
	}
	return nil
}

func dumpV1(path string) error {
	t, err := id3tag.ReadFileV1(path)
	if err != nil {
		return err
	}
	variant := "ID3v1"
	if t.Extended {
		variant = "ID3v1.1"
	}
	fmt.Println(variant)
	fmt.Printf("  title:   %q\n", t.Title)
	fmt.Printf("  artist:  %q\n", t.Artist)
	fmt.Printf("  album:   %q\n", t.Album)
	fmt.Printf("  year:    %q\n", t.Year)
	fmt.Printf("  comment: %q\n", t.Comment)
	fmt.Printf("  genre:   %s\n", t.Genre)
	if t.Extended {
		fmt.Printf("  track:   %d\n", t.Track)
	}
	return nil
}

func openRaw(path string) (*id3tag.TagInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}
	return id3tag.ReadRaw(f, stat.Size())
}

func dumpRaw(path string) error {
	info, err := openRaw(path)
	if err != nil {
		return err
	}

	fmt.Printf("ID3v2.%d.%d (flags: %#02x)\n", info.MajorVersion, info.Revision, info.FlagByte())
	if eh := info.ExtendedHeader; eh != nil {
		fmt.Printf("  extended header (padding: %d, crc: % x)\n", eh.PaddingSize, eh.CRC)
	}
	if info.Unsynchronisation {
		fmt.Println("  offsets are within the decoded region")
	}

	offsets := frameOffsets(info)
	for i, f := range info.Frames {
		fmt.Printf("  %s (size: %d, offset: %d, flags: %#04x)\n", f.ID, len(f.Payload), offsets[i], f.Flags)
	}
	fmt.Printf("  padding: %d\n", info.Padding)
	return nil
}

// frameOffsets returns where each frame header starts, counted from the
// beginning of the tag.
func frameOffsets(info *id3tag.TagInfo) []int64 {
	offset := int64(id3tag.V2HeaderLen)
	if info.ExtendedHeader != nil {
		offset += int64(info.ExtendedHeader.Len())
	}
	offsets := make([]int64, len(info.Frames))
	for i, f := range info.Frames {
		offsets[i] = offset
		offset += int64(id3tag.FrameHeaderLen + len(f.Payload))
	}
	return offsets
}

func dumpFrames(path string) error {
	t, err := id3tag.ReadFileV2(path, id3tag.WithLenientFrames())
	if err != nil {
		return err
	}
	for _, w := range t.Warnings {
		fmt.Printf("warning: %s\n", w)
	}
	printFrames(t.Frames, 0)

	for _, ch := range id3tag.Chapters(t) {
		fmt.Printf("chapter %d: %s [%s - %s]\n", ch.Index, ch.Title, ch.StartTime, ch.EndTime)
	}
	return nil
}

func printFrames(frames []id3tag.Frame, depth int) {
	indent := strings.Repeat("  ", depth)

	for _, f := range frames {
		id := f.Descriptor().ID
		switch v := f.(type) {
		case *id3tag.TextFrame:
			fmt.Printf("%s%s: %s\n", indent, id, v)
		case *id3tag.UserDefinedTextFrame:
			fmt.Printf("%s%s: [%s] %s\n", indent, id, v.Description, v.Value)
		case *id3tag.URLFrame:
			fmt.Printf("%s%s: %s\n", indent, id, v.URL)
		case *id3tag.UserDefinedURLFrame:
			fmt.Printf("%s%s: [%s] %s\n", indent, id, v.Description, v.URL)
		case *id3tag.CommentFrame:
			fmt.Printf("%s%s: (%s) [%s] %s\n", indent, id, v.Language, v.Description, v.Text)
		case *id3tag.PictureFrame:
			fmt.Printf("%s%s: %s\n", indent, id, v)
		case *id3tag.PrivateFrame:
			fmt.Printf("%s%s: %s (%d bytes)\n", indent, id, v.Owner, len(v.Data))
		case *id3tag.ChapterFrame:
			fmt.Printf("%s%s: %s (%d - %d ms)\n", indent, id, v.ElementID, v.StartTime, v.EndTime)
			printFrames(v.SubFrames, depth+1)
		case *id3tag.UnknownFrame:
			fmt.Printf("%s%s: %d bytes\n", indent, id, len(v.Payload))
		default:
			fmt.Printf("%s%s: %s\n", indent, id, f.Type())
		}
	}
}

// check reads the file with dhowden/tag and reports where it disagrees.
func check(path string) error {
	ours, err := id3tag.ReadFileV2(path, id3tag.WithLenientFrames())
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	theirs, err := tag.ReadFrom(f)
	if err != nil {
		return fmt.Errorf("reference decoder: %w", err)
	}

	fields := []struct {
		id, want string
	}{
		{"TIT2", theirs.Title()},
		{"TPE1", theirs.Artist()},
		{"TALB", theirs.Album()},
	}
	mismatches := 0
	for _, fl := range fields {
		got := ""
		if tf, ok := ours.First(fl.id).(*id3tag.TextFrame); ok {
			got = tf.Text()
		}
		if got != fl.want {
			mismatches++
			fmt.Printf("%s: %q != %q\n", fl.id, got, fl.want)
		}
	}
	fmt.Printf("%s: %s, %d frames, %d mismatches\n", path, theirs.Format(), ours.Len(), mismatches)
	return nil
}
