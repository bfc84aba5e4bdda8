package stager

import (
	"fmt"
	"path/filepath"
)

// StageArtifacts copies every file below srcDir whose base name matches pattern
// into destDir, flattening the tree. A later file overwrites an earlier one with
// the same name. A missing srcDir copies nothing.
func (s *realStager) StageArtifacts(srcDir, pattern, destDir string) ([]string, error) {
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrBadPattern, pattern, err)
	}

	if err := s.fs.MkdirAll(destDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCreateArtifactDir, destDir, err)
	}

	sources, err := s.fs.WalkFiles(srcDir, func(name string) bool {
		ok, _ := filepath.Match(pattern, name)
		return ok
	})
	if err != nil {
		if s.fs.IsNotExist(err) {
			s.logger.Logf("Artifact directory %s not found, nothing matching %s copied", srcDir, pattern)
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrWalkArtifacts, err)
	}

	copied := make([]string, 0, len(sources))
	for _, src := range sources {
		target := filepath.Join(destDir, filepath.Base(src))
		if err := s.fs.CopyFile(src, target); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrCopyArtifact, src, err)
		}
		s.verbosePrint("Copied %s to %s", src, target)
		copied = append(copied, target)
	}

	return copied, nil
}
