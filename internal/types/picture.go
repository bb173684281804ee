package types

import "fmt"

// PictureType categorizes the content of an attached picture (APIC).
type PictureType byte

const (
	PictureOther              PictureType = iota // Other
	PictureIcon                                  // File icon (32x32 PNG)
	PictureOtherIcon                             // Other file icon
	PictureFrontCover                            // Front cover
	PictureBackCover                             // Back cover
	PictureLeaflet                               // Leaflet page
	PictureMedia                                 // Media (CD/vinyl label)
	PictureLeadArtist                            // Lead artist/performer/soloist
	PictureArtist                                // Artist/performer
	PictureConductor                             // Conductor
	PictureBand                                  // Band/orchestra
	PictureComposer                              // Composer
	PictureLyricist                              // Lyricist/text writer
	PictureRecordingLocation                     // Recording location
	PictureDuringRecording                       // During recording
	PictureDuringPerformance                     // During performance
	PictureVideoCapture                          // Movie/video screen capture
	PictureBrightFish                            // A bright colored fish
	PictureIllustration                          // Illustration
	PictureBandLogotype                          // Band/artist logotype
	PicturePublisherLogotype                     // Publisher/studio logotype
)

var pictureTypeNames = [...]string{
	"Other",
	"File icon (32x32 PNG)",
	"Other file icon",
	"Front cover",
	"Back cover",
	"Leaflet page",
	"Media (CD/vinyl label)",
	"Lead artist/performer/soloist",
	"Artist/performer",
	"Conductor",
	"Band/orchestra",
	"Composer",
	"Lyricist/text writer",
	"Recording location",
	"During recording",
	"During performance",
	"Movie/video screen capture",
	"A bright colored fish",
	"Illustration",
	"Band/artist logotype",
	"Publisher/studio logotype",
}

func (p PictureType) String() string {
	if int(p) < len(pictureTypeNames) {
		return pictureTypeNames[p]
	}
	return fmt.Sprintf("PictureType(%d)", byte(p))
}

// DescribePicture renders a short summary such as "Front cover (JPEG, 245KB)".
func DescribePicture(t PictureType, mime string, size int) string {
	return fmt.Sprintf("%s (%s, %s)", t, mimeToFormat(mime), formatSize(size))
}

// formatSize formats byte size in human-readable form.
func formatSize(bytes int) string {
	const (
		KB = 1024
		MB = 1024 * KB
	)

	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1fMB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%dKB", bytes/KB)
	default:
		return fmt.Sprintf("%dB", bytes)
	}
}

func mimeToFormat(mime string) string {
	switch mime {
	case "image/jpeg", "image/jpg":
		return "JPEG"
	case "image/png":
		return "PNG"
	case "image/gif":
		return "GIF"
	case "image/bmp":
		return "BMP"
	case "-->":
		return "Link"
	default:
		return "Image"
	}
}
