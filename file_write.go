package id3tag

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// writeFunc writes the new content of a file given its current content.
type writeFunc func(w io.Writer, original io.ReaderAt, size int64) error

// saveFile rewrites path through write.
//
// This is an atomic operation: writes to a temporary file first, then
// renames it over the original. If any step fails, the original file
// remains unchanged and the temporary file is removed.
func saveFile(path string, write writeFunc, validate func() error, opts []SaveOption) error { //nolint:gocyclo // Atomic file operations require sequential steps
	options := applySaveOptions(opts)

	src, err := os.Open(path)
	if err != nil {
		return &IOError{Path: path, Op: "open file", Err: err}
	}
	defer src.Close() //nolint:errcheck // Closed explicitly before rename; this covers early returns

	stat, err := src.Stat()
	if err != nil {
		return &IOError{Path: path, Op: "stat file", Err: err}
	}

	// Create temp file in same directory as output (for atomic rename)
	tempFile, err := os.CreateTemp(filepath.Dir(path), ".id3tag-*.tmp")
	if err != nil {
		return &IOError{Path: path, Op: "create temp file", Err: err}
	}
	tempPath := tempFile.Name()

	success := false
	defer func() {
		if !success {
			_ = tempFile.Close()    //nolint:errcheck // Best effort cleanup
			_ = os.Remove(tempPath) //nolint:errcheck // Best effort cleanup
		}
	}()

	mode := stat.Mode().Perm()
	if options.mode != 0 {
		mode = options.mode
	}
	if err := tempFile.Chmod(mode); err != nil {
		return &IOError{Path: path, Op: "chmod temp file", Err: err}
	}

	if err := write(tempFile, src, stat.Size()); err != nil {
		return fmt.Errorf("write: %w", err)
	}

	// Sync temp file (fsync) to ensure data is on disk
	if err := tempFile.Sync(); err != nil {
		return &IOError{Path: path, Op: "sync temp file", Err: err}
	}
	if err := tempFile.Close(); err != nil {
		return &IOError{Path: path, Op: "close temp file", Err: err}
	}
	_ = src.Close() //nolint:errcheck // Read-only handle

	if options.backupSuffix != "" {
		if err := os.Rename(path, path+options.backupSuffix); err != nil {
			return &IOError{Path: path, Op: "create backup", Err: err}
		}
	}

	if err := os.Rename(tempPath, path); err != nil {
		return &IOError{Path: path, Op: "rename temp to output", Err: err}
	}
	success = true

	if options.preserveModTime {
		_ = os.Chtimes(path, stat.ModTime(), stat.ModTime()) //nolint:errcheck // Non-fatal: file was written successfully
	}

	log.WithFields(log.Fields{"path": path, "backup": options.backupSuffix != ""}).Debug("saved tag")

	if options.validate {
		if err := validate(); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}
	return nil
}
