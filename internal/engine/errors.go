package engine

import "errors"

// Screen observation frame stack parameters.
const (
	ScreenFrames  = 4 // Frames stacked per screen observation
	PixelChannels = 3 // RGB
)

// ErrScreenUnavailable reports that this build of the engine lacks
// screen rendering support.
var ErrScreenUnavailable = errors.New("screen rendering not available in this build")
