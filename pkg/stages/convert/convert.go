// Package convert implements the frame-sequence-to-video stage.
//
// The stage discovers the frames in a folder, orders them, fixes the
// output resolution from the first frame, and streams every frame into a
// video writer. Frames are validated against that resolution one by one;
// on any failure after the writer has been opened, the partially written
// output file is removed so no truncated video is ever left behind.
package convert

import (
	"context"
	"fmt"

	"github.com/user/drivereel/pkg/frameset"
	"github.com/user/drivereel/pkg/pipeline"
	"github.com/user/drivereel/pkg/ports"
)

// Stage converts a folder of image frames into one video file.
type Stage struct {
	decoder ports.FrameDecoder
	encoder ports.VideoEncoder
	fs      ports.FileSystem
	logger  ports.Logger
}

// NewStage creates a new convert stage.
func NewStage(decoder ports.FrameDecoder, encoder ports.VideoEncoder, fs ports.FileSystem, logger ports.Logger) *Stage {
	return &Stage{
		decoder: decoder,
		encoder: encoder,
		fs:      fs,
		logger:  logger.WithComponent("convert"),
	}
}

// Execute converts the frames in input.Folder into a video at
// input.OutputPath.
func (s *Stage) Execute(ctx context.Context, input pipeline.ConvertInput) (pipeline.ConvertResult, error) {
	result := pipeline.ConvertResult{}

	frames, err := frameset.Scan(s.fs, input.Folder, input.Extension)
	if err != nil {
		return result, err
	}
	s.logger.Debug("Found and sorted %d frames in %s", len(frames), input.Folder)

	// The first frame fixes the resolution for the whole output.
	first, err := s.decoder.Decode(frames[0])
	if err != nil {
		return result, &UnreadableFrameError{Path: frames[0], Err: err}
	}
	bounds := first.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	s.logger.Debug("Video dimensions will be %dx%d", width, height)

	writer, err := s.encoder.Open(input.OutputPath, input.FPS, width, height)
	if err != nil {
		return result, fmt.Errorf("open encoder for %s: %w", input.OutputPath, err)
	}

	// From here on a file exists at OutputPath. Every error exit must
	// release the writer and remove that partial file.
	open, completed := true, false
	defer func() {
		if completed {
			return
		}
		if open {
			writer.Close()
		}
		if err := s.fs.Remove(input.OutputPath); err != nil {
			s.logger.Warn("Could not remove partial output %s: %s", input.OutputPath, err)
		}
	}()

	for i, path := range frames {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		img := first
		if i > 0 {
			img, err = s.decoder.Decode(path)
			if err != nil {
				return result, &UnreadableFrameError{Path: path, Err: err}
			}
		}

		b := img.Bounds()
		if b.Dx() != width || b.Dy() != height {
			return result, &ResolutionMismatchError{
				Path:           path,
				ExpectedWidth:  width,
				ExpectedHeight: height,
				ActualWidth:    b.Dx(),
				ActualHeight:   b.Dy(),
			}
		}

		if err := writer.WriteFrame(img); err != nil {
			return result, fmt.Errorf("append frame %s: %w", path, err)
		}
		s.logger.Debug("Wrote frame %d/%d", i+1, len(frames))
	}

	open = false
	if err := writer.Close(); err != nil {
		return result, fmt.Errorf("finalize %s: %w", input.OutputPath, err)
	}
	completed = true

	result.OutputPath = input.OutputPath
	result.FrameCount = len(frames)
	result.Width = width
	result.Height = height
	return result, nil
}
