// Package mjpegencoder provides a pure-Go Motion-JPEG encoder for AVI
// outputs, using github.com/icza/mjpeg.
package mjpegencoder

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"math"

	"github.com/icza/mjpeg"

	"github.com/user/drivereel/pkg/ports"
)

// Fourcc identifies the Motion-JPEG codec used for .avi outputs.
const Fourcc = "MJPG"

// jpegQuality is the quality of the per-frame JPEG compression.
const jpegQuality = 90

// Encoder implements ports.VideoEncoder using an MJPEG AVI writer.
type Encoder struct{}

// New creates a new Encoder.
func New() *Encoder {
	return &Encoder{}
}

// Open starts a new AVI file at path. The AVI index only supports whole
// frame rates, so fps is rounded to the nearest integer.
func (e *Encoder) Open(path string, fps float64, width, height int) (ports.VideoWriter, error) {
	rate := int32(math.Round(fps))
	if rate < 1 {
		rate = 1
	}
	aw, err := mjpeg.New(path, int32(width), int32(height), rate)
	if err != nil {
		return nil, fmt.Errorf("open avi writer %s: %w", path, err)
	}
	return &writer{aw: aw}, nil
}

// writer appends JPEG-compressed frames to an open AVI file.
type writer struct {
	aw  mjpeg.AviWriter
	buf bytes.Buffer
}

// WriteFrame compresses one frame to JPEG and appends it.
func (w *writer) WriteFrame(img image.Image) error {
	w.buf.Reset()
	if err := jpeg.Encode(&w.buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return fmt.Errorf("compress frame: %w", err)
	}
	if err := w.aw.AddFrame(w.buf.Bytes()); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// Close writes the AVI index and closes the file.
func (w *writer) Close() error {
	return w.aw.Close()
}

// Ensure Encoder implements ports.VideoEncoder
var _ ports.VideoEncoder = (*Encoder)(nil)
