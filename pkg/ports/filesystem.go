package ports

// FileSystem abstracts the file system operations the conversion logic
// needs: listing frames, creating output directories, and removing
// partially written videos.
type FileSystem interface {
	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to a file, creating it if necessary.
	WriteFile(path string, data []byte) error

	// MkdirAll creates a directory and all parent directories.
	// It succeeds when the directory already exists.
	MkdirAll(path string) error

	// Exists checks if a file or directory exists.
	Exists(path string) (bool, error)

	// IsDir reports whether path exists and is a directory.
	IsDir(path string) (bool, error)

	// Remove deletes a file or empty directory.
	Remove(path string) error

	// Glob returns the paths matching a shell file name pattern,
	// in lexical order.
	Glob(pattern string) ([]string, error)
}
