// Package mocks provides hand-written mock implementations of the ports
// interfaces for tests.
package mocks

import (
	"fmt"
	"image"

	"github.com/user/drivereel/pkg/ports"
)

// FrameDecoder is a mock implementation of ports.FrameDecoder.
// By default it serves images from the Images map.
type FrameDecoder struct {
	DecodeFunc func(path string) (image.Image, error)

	// Images maps paths to the images Decode returns.
	Images map[string]image.Image

	// DecodeCalls records the paths passed to Decode, in order.
	DecodeCalls []string
}

// NewFrameDecoder creates a new mock FrameDecoder.
func NewFrameDecoder() *FrameDecoder {
	return &FrameDecoder{
		Images: make(map[string]image.Image),
	}
}

// AddImage registers an RGBA image of the given size for path.
func (m *FrameDecoder) AddImage(path string, width, height int) {
	m.Images[path] = image.NewRGBA(image.Rect(0, 0, width, height))
}

func (m *FrameDecoder) Decode(path string) (image.Image, error) {
	m.DecodeCalls = append(m.DecodeCalls, path)
	if m.DecodeFunc != nil {
		return m.DecodeFunc(path)
	}
	if img, ok := m.Images[path]; ok {
		return img, nil
	}
	return nil, fmt.Errorf("image not found: %s", path)
}

var _ ports.FrameDecoder = (*FrameDecoder)(nil)
