package pipeline

// ConvertInput contains parameters for converting one frame folder into a
// video.
type ConvertInput struct {
	// Folder holds the image frames (searched non-recursively).
	Folder string
	// OutputPath is the video file to create. Its extension selects the
	// container format.
	OutputPath string
	// FPS is the frame rate of the output video.
	FPS float64
	// Extension is the frame file extension without the dot, e.g. "png".
	Extension string
}

// DefaultConvertInput returns ConvertInput with default values.
func DefaultConvertInput() ConvertInput {
	return ConvertInput{
		OutputPath: "output.mp4",
		FPS:        10.0,
		Extension:  "png",
	}
}

// ConvertResult describes a successfully written video.
type ConvertResult struct {
	OutputPath string
	FrameCount int
	Width      int
	Height     int
}
