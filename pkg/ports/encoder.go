package ports

import (
	"image"
)

// VideoEncoder opens video files for sequential frame writing.
type VideoEncoder interface {
	// Open starts a new video file at path with the given frame rate and
	// fixed frame dimensions. The file at path is created (or truncated)
	// immediately.
	Open(path string, fps float64, width, height int) (VideoWriter, error)
}

// VideoWriter is an open, append-only video output stream. Frames must
// match the dimensions the stream was opened with.
type VideoWriter interface {
	// WriteFrame appends one frame to the stream.
	WriteFrame(img image.Image) error

	// Close flushes and finalizes the stream. The underlying file may be
	// deleted after Close when the stream was only partially written.
	Close() error
}
