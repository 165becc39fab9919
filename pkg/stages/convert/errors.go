package convert

import (
	"fmt"
)

// UnreadableFrameError reports a frame file that could not be decoded.
type UnreadableFrameError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *UnreadableFrameError) Error() string {
	return fmt.Sprintf("unreadable frame %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying decode error.
func (e *UnreadableFrameError) Unwrap() error {
	return e.Err
}

// ResolutionMismatchError reports a frame whose dimensions differ from the
// resolution established by the first frame.
type ResolutionMismatchError struct {
	Path           string
	ExpectedWidth  int
	ExpectedHeight int
	ActualWidth    int
	ActualHeight   int
}

// Error implements the error interface.
func (e *ResolutionMismatchError) Error() string {
	return fmt.Sprintf("frame %s is %dx%d, expected %dx%d",
		e.Path, e.ActualWidth, e.ActualHeight, e.ExpectedWidth, e.ExpectedHeight)
}
