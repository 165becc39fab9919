// Package kitti models KITTI dataset drives on disk.
//
// A drive is one capture session stored as <date>/<date>_drive_<id>_sync,
// with the rectified color frames under <camera>/data inside it.
package kitti

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/user/drivereel/pkg/ports"
)

// ErrNoDrivesFound is returned when a dataset root holds no drive folders.
var ErrNoDrivesFound = errors.New("no drives found")

// DefaultCamera is the left rectified color camera, the usual source of
// RGB imagery.
const DefaultCamera = "image_02"

// syncSuffix marks synchronized+rectified drive folders in the dataset
// layout.
const syncSuffix = "_sync"

// Drive identifies one capture session.
type Drive struct {
	// Date is the capture date folder, e.g. "2011_09_26".
	Date string
	// Name identifies the drive without the sync suffix,
	// e.g. "2011_09_26_drive_0002".
	Name string
	// Path is the drive's _sync directory.
	Path string
	// ImageDir is the folder expected to hold the drive's RGB frames.
	ImageDir string
}

// VideoFileName returns the output file name for this drive in the given
// container format (extension without the dot).
func (d Drive) VideoFileName(container string) string {
	return d.Name + "." + container
}

// DiscoverDrives finds every <date>/<id>_sync directory under root and
// returns the drives in lexical path order, for a reproducible processing
// sequence. The camera argument selects the image subfolder; empty means
// DefaultCamera.
func DiscoverDrives(fs ports.FileSystem, root, camera string) ([]Drive, error) {
	if camera == "" {
		camera = DefaultCamera
	}

	matches, err := fs.Glob(filepath.Join(root, "*", "*"+syncSuffix))
	if err != nil {
		return nil, fmt.Errorf("discover drives: %w", err)
	}

	drives := make([]Drive, 0, len(matches))
	for _, path := range matches {
		isDir, err := fs.IsDir(path)
		if err != nil || !isDir {
			continue
		}
		drives = append(drives, Drive{
			Date:     filepath.Base(filepath.Dir(path)),
			Name:     strings.TrimSuffix(filepath.Base(path), syncSuffix),
			Path:     path,
			ImageDir: filepath.Join(path, camera, "data"),
		})
	}
	if len(drives) == 0 {
		return nil, fmt.Errorf("%w: no *%s folders under %s", ErrNoDrivesFound, syncSuffix, root)
	}

	sort.Slice(drives, func(i, j int) bool { return drives[i].Path < drives[j].Path })
	return drives, nil
}
