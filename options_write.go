package id3tag

import "os"

// SaveOption configures behavior when saving a tag to a file.
//
// Example:
//
//	err := id3tag.SaveV2("song.mp3", tag,
//	    id3tag.WithBackup(".bak"),
//	    id3tag.WithValidation(),
//	)
type SaveOption func(*saveOptions)

type saveOptions struct {
	backupSuffix    string      // Keep the original as path+suffix
	mode            os.FileMode // Permissions of the new file (0 = keep original)
	validate        bool        // Re-read after write and compare
	preserveModTime bool
}

func applySaveOptions(opts []SaveOption) saveOptions {
	var o saveOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithBackup keeps the original file under path+suffix.
//
// WithBackup(".bak") leaves the untouched "song.mp3.bak" next to the
// rewritten "song.mp3". An existing backup is overwritten.
func WithBackup(suffix string) SaveOption {
	return func(o *saveOptions) {
		o.backupSuffix = suffix
	}
}

// WithValidation re-reads the tag after writing and compares it with
// what was saved. A mismatch is returned as an error; the file has
// already been replaced at that point.
func WithValidation() SaveOption {
	return func(o *saveOptions) {
		o.validate = true
	}
}

// WithPreserveModTime keeps the original file modification time.
func WithPreserveModTime() SaveOption {
	return func(o *saveOptions) {
		o.preserveModTime = true
	}
}

// WithFileMode sets the permission bits of the saved file. By default the
// original file's permissions are kept.
func WithFileMode(mode os.FileMode) SaveOption {
	return func(o *saveOptions) {
		o.mode = mode.Perm()
	}
}
