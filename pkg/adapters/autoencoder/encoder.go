// Package autoencoder selects the concrete video encoder from the output
// file's extension: .avi gets the pure-Go Motion-JPEG writer, everything
// else the OpenCV MPEG-4 writer.
package autoencoder

import (
	"path/filepath"
	"strings"

	"github.com/user/drivereel/pkg/adapters/cvencoder"
	"github.com/user/drivereel/pkg/adapters/mjpegencoder"
	"github.com/user/drivereel/pkg/ports"
)

// Encoder implements ports.VideoEncoder by dispatching on the output path.
type Encoder struct {
	avi ports.VideoEncoder
	mp4 ports.VideoEncoder
}

// New creates a new Encoder.
func New() *Encoder {
	return &Encoder{
		avi: mjpegencoder.New(),
		mp4: cvencoder.New(),
	}
}

// Open starts a new video file at path with the encoder its extension
// implies.
func (e *Encoder) Open(path string, fps float64, width, height int) (ports.VideoWriter, error) {
	return e.forPath(path).Open(path, fps, width, height)
}

func (e *Encoder) forPath(path string) ports.VideoEncoder {
	if strings.EqualFold(filepath.Ext(path), ".avi") {
		return e.avi
	}
	return e.mp4
}

// Ensure Encoder implements ports.VideoEncoder
var _ ports.VideoEncoder = (*Encoder)(nil)
