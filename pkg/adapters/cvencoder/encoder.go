// Package cvencoder provides an MPEG-4 video encoder backed by OpenCV.
package cvencoder

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"github.com/user/drivereel/pkg/ports"
)

// Fourcc identifies the MPEG-4 Part 2 codec used for .mp4 outputs.
const Fourcc = "mp4v"

// Encoder implements ports.VideoEncoder using gocv.VideoWriter.
type Encoder struct{}

// New creates a new Encoder.
func New() *Encoder {
	return &Encoder{}
}

// Open starts a new video file at path. OpenCV creates the file
// immediately, so a caller that aborts mid-stream must remove it.
func (e *Encoder) Open(path string, fps float64, width, height int) (ports.VideoWriter, error) {
	vw, err := gocv.VideoWriterFile(path, Fourcc, fps, width, height, true)
	if err != nil {
		return nil, fmt.Errorf("open video writer %s: %w", path, err)
	}
	if !vw.IsOpened() {
		vw.Close()
		return nil, fmt.Errorf("video writer rejected %s (codec %s, %dx%d)", path, Fourcc, width, height)
	}
	return &writer{vw: vw}, nil
}

// writer appends frames to an open gocv.VideoWriter.
type writer struct {
	vw *gocv.VideoWriter
}

// WriteFrame appends one frame. OpenCV expects BGR channel order.
func (w *writer) WriteFrame(img image.Image) error {
	rgb, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return fmt.Errorf("convert frame: %w", err)
	}
	defer rgb.Close()

	bgr := gocv.NewMat()
	defer bgr.Close()
	gocv.CvtColor(rgb, &bgr, gocv.ColorRGBToBGR)

	if err := w.vw.Write(bgr); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// Close flushes and releases the underlying writer.
func (w *writer) Close() error {
	return w.vw.Close()
}

// Ensure Encoder implements ports.VideoEncoder
var _ ports.VideoEncoder = (*Encoder)(nil)
