// Package fs provides the file system operations used to stage a header tree.
package fs

import (
	"os"
)

//go:generate mockgen -source=interface.go -destination=mocks/fs.gen.go -package=mocks

// FS interface provides file system operations for staging headers and artifacts.
type FS interface {
	// Exists checks if a file or directory exists at the given path.
	Exists(path string) (bool, error)

	// IsDir checks if the path is a directory.
	IsDir(path string) (bool, error)

	// IsNotExist checks if an error indicates that a file or directory doesn't exist.
	IsNotExist(err error) bool

	// ReadFile reads the contents of a file.
	ReadFile(path string) ([]byte, error)

	// ReadDir reads the contents of a directory, sorted by filename.
	ReadDir(path string) ([]os.DirEntry, error)

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string, perm os.FileMode) error

	// RemoveAll removes a file or directory and all its contents.
	RemoveAll(path string) error

	// WriteFileAtomic writes data to a file atomically using a temporary file and rename.
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error

	// CopyFile copies src to dst byte for byte, keeping the permission bits of src.
	CopyFile(src, dst string) error

	// WalkFiles returns the regular files below root whose base name satisfies match,
	// in lexical order.
	WalkFiles(root string, match func(name string) bool) ([]string, error)

	// GetHomeDir returns the user's home directory path.
	GetHomeDir() (string, error)

	// ExpandPath expands ~ to user's home directory.
	ExpandPath(path string) (string, error)
}

type realFS struct{}

// NewFS creates a new FS instance.
func NewFS() FS {
	return &realFS{}
}
