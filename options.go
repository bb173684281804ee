package id3tag

// Option configures how ID3v2 tags are read.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	tag, err := id3tag.ReadFileV2("song.mp3",
//	    id3tag.WithLenientFrames(),
//	    id3tag.WithMaxFrameSize(16<<20),
//	)
type Option func(*readOptions)

// readOptions holds configuration for reading tags.
type readOptions struct {
	lenient      bool   // Keep undecodable frames as UnknownFrame
	maxFrameSize uint32 // Maximum frame payload in bytes (0 = no limit)
}

// defaultOptions returns the default configuration.
func defaultOptions() *readOptions {
	return &readOptions{
		lenient:      false,
		maxFrameSize: 0, // No limit
	}
}

func applyOptions(opts []Option) *readOptions {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// WithLenientFrames keeps frames whose payload cannot be decoded.
//
// By default a malformed frame payload (for example a PRIV frame without
// the terminator after its owner) fails the whole read with a
// PayloadError. With this option the frame is kept as an *UnknownFrame,
// so it is written back unchanged, and a Warning is added to Tag.Warnings.
//
// Example:
//
//	tag, err := id3tag.ReadFileV2("song.mp3", id3tag.WithLenientFrames())
//	for _, w := range tag.Warnings {
//		log.Println(w)
//	}
func WithLenientFrames() Option {
	return func(o *readOptions) {
		o.lenient = true
	}
}

// WithMaxFrameSize rejects frames declaring a payload larger than n bytes.
//
// Default is 0 (no limit other than the tag itself).
//
// Example:
//
//	// Refuse frames over 16MB
//	tag, err := id3tag.ReadFileV2("song.mp3", id3tag.WithMaxFrameSize(16<<20))
func WithMaxFrameSize(n uint32) Option {
	return func(o *readOptions) {
		o.maxFrameSize = n
	}
}
