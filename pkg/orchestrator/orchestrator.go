// Package orchestrator coordinates batch conversion of KITTI drives.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/user/drivereel/pkg/kitti"
	"github.com/user/drivereel/pkg/pipeline"
	"github.com/user/drivereel/pkg/ports"
	"github.com/user/drivereel/pkg/summarizer"
)

// Config contains all configuration for a batch run.
type Config struct {
	// DatasetRoot is the directory searched for <date>/<id>_sync drives.
	DatasetRoot string
	// OutputDir receives one video per drive; created if absent.
	OutputDir string
	// FPS is the frame rate of the output videos.
	FPS float64
	// Extension is the frame file extension, e.g. "png".
	Extension string
	// Camera is the per-drive camera folder holding the RGB frames.
	Camera string
	// Container is the video container extension, e.g. "mp4".
	Container string
}

// DefaultConfig returns a Config with KITTI defaults.
func DefaultConfig() Config {
	return Config{
		OutputDir: "kitti_videos",
		FPS:       10.0,
		Extension: "png",
		Camera:    kitti.DefaultCamera,
		Container: "mp4",
	}
}

// Orchestrator runs the convert stage once per discovered drive.
type Orchestrator struct {
	convertStage pipeline.Stage[pipeline.ConvertInput, pipeline.ConvertResult]
	fs           ports.FileSystem
	logger       ports.Logger
}

// New creates a new Orchestrator.
func New(
	convertStage pipeline.Stage[pipeline.ConvertInput, pipeline.ConvertResult],
	fs ports.FileSystem,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		convertStage: convertStage,
		fs:           fs,
		logger:       logger,
	}
}

// Run discovers the drives under config.DatasetRoot and converts each one
// into a video. One drive's failure never aborts the batch: skips and
// failures are recorded in the summary and processing continues with the
// next drive. Only context cancellation stops the loop early; the partial
// summary is returned alongside ctx.Err() in that case.
func (o *Orchestrator) Run(ctx context.Context, config Config) (*summarizer.Summary, error) {
	summary := summarizer.New(config.DatasetRoot, config.OutputDir, config.FPS)

	drives, err := kitti.DiscoverDrives(o.fs, config.DatasetRoot, config.Camera)
	if err != nil {
		return summary, err
	}
	o.logger.Info("Found %d drives to process", len(drives))

	if err := o.fs.MkdirAll(config.OutputDir); err != nil {
		return summary, fmt.Errorf("create output directory %s: %w", config.OutputDir, err)
	}

	for _, drive := range drives {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		isDir, err := o.fs.IsDir(drive.ImageDir)
		if err != nil || !isDir {
			o.logger.Warn("Image folder not found for drive %s, skipping (expected at %s)", drive.Name, drive.ImageDir)
			summary.Record(summarizer.DriveOutcome{
				Drive:  drive.Name,
				Date:   drive.Date,
				Status: summarizer.StatusSkipped,
				Reason: fmt.Sprintf("missing image folder %s", drive.ImageDir),
			})
			continue
		}

		outputPath := filepath.Join(config.OutputDir, drive.VideoFileName(config.Container))
		o.logger.Info("Processing drive %s", drive.Name)

		result, err := o.convertStage.Execute(ctx, pipeline.ConvertInput{
			Folder:     drive.ImageDir,
			OutputPath: outputPath,
			FPS:        config.FPS,
			Extension:  config.Extension,
		})
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return summary, err
			}
			o.logger.Error("Drive %s failed: %s", drive.Name, err)
			summary.Record(summarizer.DriveOutcome{
				Drive:  drive.Name,
				Date:   drive.Date,
				Status: summarizer.StatusFailed,
				Reason: err.Error(),
			})
			continue
		}

		o.logger.Info("Saved %s (%d frames)", result.OutputPath, result.FrameCount)
		summary.Record(summarizer.DriveOutcome{
			Drive:      drive.Name,
			Date:       drive.Date,
			Status:     summarizer.StatusSuccess,
			OutputPath: result.OutputPath,
			FrameCount: result.FrameCount,
		})
	}

	return summary, nil
}
