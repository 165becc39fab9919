// Package frameset discovers and orders the image frames that make up one
// video.
package frameset

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"github.com/user/drivereel/pkg/ports"
)

// ErrNoFramesFound is returned when a folder holds no frames with the
// requested extension.
var ErrNoFramesFound = errors.New("no frames found")

var digitRun = regexp.MustCompile(`\d+`)

// Scan lists the files in folder matching *.<ext> (non-recursive, case as
// given) and returns them in encoding order.
func Scan(fs ports.FileSystem, folder, ext string) ([]string, error) {
	pattern := filepath.Join(folder, "*."+ext)
	paths, err := fs.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("list frames: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: no *.%s files in %s", ErrNoFramesFound, ext, folder)
	}
	Sort(paths)
	return paths, nil
}

// Sort orders paths in place the way a human reads a numbered sequence:
// by the first run of decimal digits in each basename, so frame2 comes
// before frame10. Ties are broken by the full path.
//
// When any basename has no digit run the entire set falls back to plain
// lexical order. The fallback is all-or-nothing: a partial numeric sort
// would make the order depend on which names happen to carry digits.
func Sort(paths []string) {
	keys := make(map[string]int, len(paths))
	for _, p := range paths {
		run := digitRun.FindString(filepath.Base(p))
		if run == "" {
			sort.Strings(paths)
			return
		}
		n, err := strconv.Atoi(run)
		if err != nil {
			// Digit run overflows int; treat it like a missing run.
			sort.Strings(paths)
			return
		}
		keys[p] = n
	}

	sort.Slice(paths, func(i, j int) bool {
		ki, kj := keys[paths[i]], keys[paths[j]]
		if ki != kj {
			return ki < kj
		}
		return paths[i] < paths[j]
	})
}
