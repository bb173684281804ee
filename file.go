package id3tag

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/id3tag/internal/types"
)

// Status reports which tag formats r carries by checking the marker
// bytes at the start (ID3v2) and in the last 128 bytes (ID3v1). Neither
// tag is decoded.
//
// A stream shorter than 128 bytes is an IOError.
func Status(r io.ReaderAt, size int64) (FileState, error) {
	if r == nil {
		return FileState{}, &ArgumentError{Name: "reader", Reason: "nil"}
	}
	return types.DetectTags(r, size, "")
}

// StatusFile is Status for the file at path.
func StatusFile(path string) (FileState, error) {
	var st FileState
	err := withFile(path, func(f *os.File, size int64) error {
		var err error
		st, err = types.DetectTags(f, size, path)
		return err
	})
	return st, err
}

// StatusMany checks several files concurrently.
//
// Files are scanned in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths. If any file
// fails, no results are returned.
//
// Example:
//
//	states, err := id3tag.StatusMany(ctx, paths...)
//	if err != nil {
//		return err
//	}
//	for i, st := range states {
//		fmt.Printf("%s: v1=%t v2=%t\n", paths[i], st.V1, st.V2)
//	}
func StatusMany(ctx context.Context, paths ...string) ([]FileState, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]FileState, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			st, err := StatusFile(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = st
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// withFile opens path for reading, passes it to fn with its size, and
// always closes it.
func withFile(path string, fn func(f *os.File, size int64) error) error {
	f, err := os.Open(path)
	if err != nil {
		return &IOError{Path: path, Op: "open file", Err: err}
	}
	defer f.Close() //nolint:errcheck // Read-only handle

	stat, err := f.Stat()
	if err != nil {
		return &IOError{Path: path, Op: "stat file", Err: err}
	}
	return fn(f, stat.Size())
}
