package mocks

import (
	"image"

	"github.com/user/drivereel/pkg/ports"
)

// VideoEncoder is a mock implementation of ports.VideoEncoder. Open
// returns a VideoWriter mock that records the frames written to it.
type VideoEncoder struct {
	OpenFunc func(path string, fps float64, width, height int) (ports.VideoWriter, error)

	// Recorded calls for verification
	OpenCalls []OpenCall
	Writers   []*VideoWriter
}

// OpenCall records a call to Open.
type OpenCall struct {
	Path   string
	FPS    float64
	Width  int
	Height int
}

func (m *VideoEncoder) Open(path string, fps float64, width, height int) (ports.VideoWriter, error) {
	m.OpenCalls = append(m.OpenCalls, OpenCall{Path: path, FPS: fps, Width: width, Height: height})
	if m.OpenFunc != nil {
		return m.OpenFunc(path, fps, width, height)
	}
	w := &VideoWriter{}
	m.Writers = append(m.Writers, w)
	return w, nil
}

// LastWriter returns the most recently opened writer, or nil.
func (m *VideoEncoder) LastWriter() *VideoWriter {
	if len(m.Writers) == 0 {
		return nil
	}
	return m.Writers[len(m.Writers)-1]
}

var _ ports.VideoEncoder = (*VideoEncoder)(nil)

// VideoWriter is a mock implementation of ports.VideoWriter.
type VideoWriter struct {
	WriteFrameFunc func(img image.Image) error
	CloseFunc      func() error

	// Recorded calls for verification
	Frames      []image.Image
	CloseCalled bool
}

func (m *VideoWriter) WriteFrame(img image.Image) error {
	if m.WriteFrameFunc != nil {
		if err := m.WriteFrameFunc(img); err != nil {
			return err
		}
	}
	m.Frames = append(m.Frames, img)
	return nil
}

func (m *VideoWriter) Close() error {
	m.CloseCalled = true
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

var _ ports.VideoWriter = (*VideoWriter)(nil)
