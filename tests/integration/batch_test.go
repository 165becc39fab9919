// Package integration exercises the full batch path with real files: PNG
// frames on disk, the stdlib image decoder, and the pure-Go MJPEG
// encoder. The OpenCV encoder is covered by its own adapter tests.
package integration

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/user/drivereel/pkg/adapters/imagedecoder"
	"github.com/user/drivereel/pkg/adapters/logger"
	"github.com/user/drivereel/pkg/adapters/mjpegencoder"
	"github.com/user/drivereel/pkg/adapters/osfilesystem"
	"github.com/user/drivereel/pkg/orchestrator"
	"github.com/user/drivereel/pkg/stages/convert"
	"github.com/user/drivereel/pkg/summarizer"
)

func writeFrame(t *testing.T, dir string, index, width, height int) {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	name := filepath.Join(dir, fmt.Sprintf("%010d.png", index))
	f, err := os.Create(name)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, width, height))); err != nil {
		t.Fatal(err)
	}
}

func TestBatch_EndToEnd(t *testing.T) {
	root := t.TempDir()

	// Drive 0002 has frames, drive 0005 is missing its image folder.
	drive2 := filepath.Join(root, "2011_09_26", "2011_09_26_drive_0002_sync")
	drive5 := filepath.Join(root, "2011_09_26", "2011_09_26_drive_0005_sync")
	images2 := filepath.Join(drive2, "image_02", "data")
	for i := 1; i <= 4; i++ {
		writeFrame(t, images2, i, 24, 12)
	}
	if err := os.MkdirAll(drive5, 0755); err != nil {
		t.Fatal(err)
	}

	outputDir := filepath.Join(t.TempDir(), "videos")

	fs := osfilesystem.New()
	stage := convert.NewStage(imagedecoder.New(), mjpegencoder.New(), fs, logger.NewNoop())
	orch := orchestrator.New(stage, fs, logger.NewNoop())

	cfg := orchestrator.DefaultConfig()
	cfg.DatasetRoot = root
	cfg.OutputDir = outputDir
	cfg.Container = "avi"

	summary, err := orch.Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.Total() != 2 {
		t.Fatalf("expected 2 outcomes, got %d", summary.Total())
	}
	if summary.Count(summarizer.StatusSuccess) != 1 || summary.Count(summarizer.StatusSkipped) != 1 {
		t.Fatalf("unexpected summary: %+v", summary.Outcomes)
	}

	videoPath := filepath.Join(outputDir, "2011_09_26_drive_0002.avi")
	first, err := os.ReadFile(videoPath)
	if err != nil {
		t.Fatalf("expected video at %s: %v", videoPath, err)
	}
	if len(first) == 0 {
		t.Fatal("video file is empty")
	}

	// Re-running overwrites outputs byte for byte.
	if _, err := orch.Run(context.Background(), cfg); err != nil {
		t.Fatalf("re-run failed: %v", err)
	}
	second, err := os.ReadFile(videoPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) {
		t.Error("re-run did not produce identical output")
	}
}

func TestBatch_ResolutionMismatchLeavesNoFile(t *testing.T) {
	root := t.TempDir()

	drive := filepath.Join(root, "2011_09_26", "2011_09_26_drive_0009_sync")
	images := filepath.Join(drive, "image_02", "data")
	for i := 1; i <= 5; i++ {
		writeFrame(t, images, i, 24, 12)
	}
	// Frame 3 has a different resolution.
	writeFrame(t, images, 3, 20, 12)

	outputDir := filepath.Join(t.TempDir(), "videos")

	fs := osfilesystem.New()
	stage := convert.NewStage(imagedecoder.New(), mjpegencoder.New(), fs, logger.NewNoop())
	orch := orchestrator.New(stage, fs, logger.NewNoop())

	cfg := orchestrator.DefaultConfig()
	cfg.DatasetRoot = root
	cfg.OutputDir = outputDir
	cfg.Container = "avi"

	summary, err := orch.Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("batch must survive a drive failure: %v", err)
	}

	if summary.Count(summarizer.StatusFailed) != 1 {
		t.Fatalf("expected 1 failure, got %+v", summary.Outcomes)
	}

	videoPath := filepath.Join(outputDir, "2011_09_26_drive_0009.avi")
	if _, err := os.Stat(videoPath); !os.IsNotExist(err) {
		t.Error("partial video file was left behind")
	}
}
