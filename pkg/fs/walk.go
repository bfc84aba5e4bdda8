package fs

import (
	iofs "io/fs"
	"os"
	"path/filepath"
)

// WalkFiles returns the regular files below root whose base name satisfies match,
// in lexical order. A nil match accepts every file. Symlinks to regular files are
// kept under their link path; links to directories are not descended into and
// dangling links are skipped.
func (f *realFS) WalkFiles(root string, match func(name string) bool) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !f.isRegularFile(path, d) {
			return nil
		}
		if match == nil || match(d.Name()) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// isRegularFile reports whether d is a regular file or a symlink resolving to one.
func (f *realFS) isRegularFile(path string, d iofs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&iofs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
