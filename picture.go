package id3tag

import "github.com/simonhull/id3tag/internal/types"

// PictureType categorizes the content of an attached picture.
//
// See: https://id3.org/id3v2.3.0 (APIC frame)
type PictureType = types.PictureType

// Picture types.
const (
	PictureOther             = types.PictureOther
	PictureIcon              = types.PictureIcon
	PictureOtherIcon         = types.PictureOtherIcon
	PictureFrontCover        = types.PictureFrontCover
	PictureBackCover         = types.PictureBackCover
	PictureLeaflet           = types.PictureLeaflet
	PictureMedia             = types.PictureMedia
	PictureLeadArtist        = types.PictureLeadArtist
	PictureArtist            = types.PictureArtist
	PictureConductor         = types.PictureConductor
	PictureBand              = types.PictureBand
	PictureComposer          = types.PictureComposer
	PictureLyricist          = types.PictureLyricist
	PictureRecordingLocation = types.PictureRecordingLocation
	PictureDuringRecording   = types.PictureDuringRecording
	PictureDuringPerformance = types.PictureDuringPerformance
	PictureVideoCapture      = types.PictureVideoCapture
	PictureBrightFish        = types.PictureBrightFish
	PictureIllustration      = types.PictureIllustration
	PictureBandLogotype      = types.PictureBandLogotype
	PicturePublisherLogotype = types.PicturePublisherLogotype
)

// Pictures returns the APIC frames of tag in file order.
func Pictures(tag *Tag) []*PictureFrame {
	var out []*PictureFrame
	for _, f := range tag.Frames {
		if p, ok := f.(*PictureFrame); ok {
			out = append(out, p)
		}
	}
	return out
}
