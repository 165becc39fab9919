package ports

import (
	"image"
)

// FrameDecoder abstracts still-image decoding.
type FrameDecoder interface {
	// Decode reads and decodes the image file at path.
	Decode(path string) (image.Image, error)
}
