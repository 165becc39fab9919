package cvencoder

import (
	"image"
	"os"
	"path/filepath"
	"testing"
)

func TestEncoder_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.mp4")

	w, err := New().Open(path, 10.0, 64, 32)
	if err != nil {
		t.Skipf("mp4v writer unavailable in this OpenCV build: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := w.WriteFrame(image.NewRGBA(image.Rect(0, 0, 64, 32))); err != nil {
			t.Fatalf("WriteFrame failed: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("output missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output file is empty")
	}
}

func TestEncoder_MismatchedFrameSizeFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.mp4")

	w, err := New().Open(path, 10.0, 64, 32)
	if err != nil {
		t.Skipf("mp4v writer unavailable in this OpenCV build: %v", err)
	}
	defer w.Close()

	// OpenCV drops frames whose size differs from the writer's; the
	// convert stage validates sizes before this point, so the adapter
	// only needs to not crash.
	if err := w.WriteFrame(image.NewRGBA(image.Rect(0, 0, 8, 8))); err != nil {
		t.Logf("mismatched frame rejected: %v", err)
	}
}
