package osfilesystem

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestFileSystem_WriteAndReadFile(t *testing.T) {
	fs := New()
	tmpDir := t.TempDir()

	testPath := filepath.Join(tmpDir, "test.txt")
	testData := []byte("hello world")

	if err := fs.WriteFile(testPath, testData); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := fs.ReadFile(testPath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != string(testData) {
		t.Errorf("expected %q, got %q", testData, data)
	}
}

func TestFileSystem_WriteFileCreatesParentDirs(t *testing.T) {
	fs := New()
	tmpDir := t.TempDir()

	testPath := filepath.Join(tmpDir, "a", "b", "c", "test.txt")
	if err := fs.WriteFile(testPath, []byte("test")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := os.Stat(testPath); err != nil {
		t.Errorf("file not created: %v", err)
	}
}

func TestFileSystem_MkdirAllIsIdempotent(t *testing.T) {
	fs := New()
	dir := filepath.Join(t.TempDir(), "out")

	if err := fs.MkdirAll(dir); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := fs.MkdirAll(dir); err != nil {
		t.Fatalf("MkdirAll on existing dir failed: %v", err)
	}
}

func TestFileSystem_ExistsAndIsDir(t *testing.T) {
	fs := New()
	tmpDir := t.TempDir()

	filePath := filepath.Join(tmpDir, "file.txt")
	if err := os.WriteFile(filePath, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	for _, tc := range []struct {
		path   string
		exists bool
		isDir  bool
	}{
		{tmpDir, true, true},
		{filePath, true, false},
		{filepath.Join(tmpDir, "absent"), false, false},
	} {
		exists, err := fs.Exists(tc.path)
		if err != nil {
			t.Fatalf("Exists(%s) failed: %v", tc.path, err)
		}
		if exists != tc.exists {
			t.Errorf("Exists(%s) = %v, want %v", tc.path, exists, tc.exists)
		}

		isDir, err := fs.IsDir(tc.path)
		if err != nil {
			t.Fatalf("IsDir(%s) failed: %v", tc.path, err)
		}
		if isDir != tc.isDir {
			t.Errorf("IsDir(%s) = %v, want %v", tc.path, isDir, tc.isDir)
		}
	}
}

func TestFileSystem_Remove(t *testing.T) {
	fs := New()
	path := filepath.Join(t.TempDir(), "video.mp4")
	if err := os.WriteFile(path, []byte("partial"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := fs.Remove(path); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("file still exists after Remove")
	}
}

func TestFileSystem_Glob(t *testing.T) {
	fs := New()
	tmpDir := t.TempDir()

	for _, name := range []string{"0000000002.png", "0000000001.png", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(tmpDir, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}

	matches, err := fs.Glob(filepath.Join(tmpDir, "*.png"))
	if err != nil {
		t.Fatalf("Glob failed: %v", err)
	}

	want := []string{
		filepath.Join(tmpDir, "0000000001.png"),
		filepath.Join(tmpDir, "0000000002.png"),
	}
	if !reflect.DeepEqual(matches, want) {
		t.Errorf("expected %v, got %v", want, matches)
	}
}
