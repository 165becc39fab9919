// Package imagedecoder decodes still-image frames from disk.
//
// PNG and JPEG cover the KITTI imagery; BMP, TIFF and WebP are registered
// as well so arbitrary frame folders work without a format flag.
package imagedecoder

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/user/drivereel/pkg/ports"
)

// Decoder implements ports.FrameDecoder using the registered image formats.
type Decoder struct{}

// New creates a new Decoder.
func New() *Decoder {
	return &Decoder{}
}

// Decode reads and decodes the image file at path.
func (d *Decoder) Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open frame: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode frame %s: %w", path, err)
	}
	return img, nil
}

// Ensure Decoder implements ports.FrameDecoder
var _ ports.FrameDecoder = (*Decoder)(nil)
