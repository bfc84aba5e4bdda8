// Package stager copies header trees into the staging layout and writes the
// class-named proxy headers.
package stager

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/lerenn/hstage/pkg/classname"
	"github.com/lerenn/hstage/pkg/fs"
	"github.com/lerenn/hstage/pkg/logger"
	"github.com/lerenn/hstage/pkg/needlist"
)

//go:generate mockgen -source=stager.go -destination=mocks/stager.gen.go -package=mocks

// DefaultHeaderExt is the extension of the files treated as headers.
const DefaultHeaderExt = ".h"

// IncludeDir is the directory below the destination root holding the header groups.
const IncludeDir = "include"

const proxyPerm = 0644

// Stager stages headers and prebuilt artifacts into a destination tree.
type Stager interface {
	// Stage copies every header below headerRoot to destRoot/include/<group>/ and
	// writes proxy headers for the ones listed in needs.
	Stage(ctx context.Context, headerRoot string, needs needlist.NeedSet, destRoot string) (Result, error)
	// StageArtifacts copies every file below srcDir whose base name matches pattern
	// into destDir, flattening the tree.
	StageArtifacts(srcDir, pattern, destDir string) ([]string, error)
}

// NewStagerParams contains parameters for creating a new Stager.
type NewStagerParams struct {
	FS     fs.FS
	Logger logger.Logger
	// HeaderExt selects header files. Defaults to DefaultHeaderExt.
	HeaderExt string
	Verbose   bool
}

type realStager struct {
	fs        fs.FS
	logger    logger.Logger
	headerExt string
	verbose   bool
}

// NewStager creates a new Stager instance.
func NewStager(params NewStagerParams) Stager {
	s := &realStager{
		fs:        params.FS,
		logger:    params.Logger,
		headerExt: params.HeaderExt,
		verbose:   params.Verbose,
	}
	if s.fs == nil {
		s.fs = fs.NewFS()
	}
	if s.logger == nil {
		s.logger = logger.NewNoopLogger()
	}
	if s.headerExt == "" {
		s.headerExt = DefaultHeaderExt
	}
	return s
}

// Stage copies every header below headerRoot to destRoot/include/<group>/ and
// writes proxy headers for the ones listed in needs.
func (s *realStager) Stage(
	ctx context.Context, headerRoot string, needs needlist.NeedSet, destRoot string,
) (Result, error) {
	var result Result

	headers, err := s.discover(headerRoot)
	if err != nil {
		return result, err
	}

	group := ""
	for _, header := range headers {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		if header.Group != group {
			group = header.Group
			s.logger.Logf("\n%s group: %s %s", banner, group, banner)
		}

		staged, err := s.stageHeader(header, needs, destRoot, &result)
		if err != nil {
			return result, err
		}
		result.Headers = append(result.Headers, staged)
	}

	return result, nil
}

// discover lists the headers below root with their group derived once.
func (s *realStager) discover(root string) ([]HeaderFile, error) {
	paths, err := s.fs.WalkFiles(root, func(name string) bool {
		return strings.HasSuffix(name, s.headerExt)
	})
	if err != nil {
		if s.fs.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceDirMissing, root)
		}
		return nil, fmt.Errorf("%w: %w", ErrWalkSource, err)
	}

	headers := make([]HeaderFile, 0, len(paths))
	for _, p := range paths {
		headers = append(headers, NewHeaderFile(p))
	}
	return headers, nil
}

func (s *realStager) stageHeader(
	header HeaderFile, needs needlist.NeedSet, destRoot string, result *Result,
) (string, error) {
	groupDir := filepath.Join(destRoot, IncludeDir, header.Group)
	if err := s.fs.MkdirAll(groupDir, 0755); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrCreateGroupDir, groupDir, err)
	}

	target := filepath.Join(groupDir, header.Name)
	if err := s.fs.CopyFile(header.SourcePath, target); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrCopyHeader, header.SourcePath, err)
	}
	s.verbosePrint("Copied %s to %s", header.RelPath(), target)

	if !needs.Has(header.RelPath()) {
		return target, nil
	}

	content, err := s.fs.ReadFile(header.SourcePath)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrReadHeader, header.SourcePath, err)
	}
	if !utf8.Valid(content) {
		return "", fmt.Errorf("%w: %s", ErrHeaderDecode, header.SourcePath)
	}

	res := classname.Resolve(string(content), header.Name, s.headerExt)
	if !res.Found() {
		s.logger.Errorf(" -> %-20s has no class named after the header (classes: %v)", header.Name, res.Classes)
		result.Diagnostics = append(result.Diagnostics, Diagnostic{
			Header:  header.RelPath(),
			Kind:    NoMatchingClass,
			Classes: res.Classes,
		})
		return target, nil
	}

	if res.Ambiguous {
		s.logger.Errorf(" -> %-20s has multiple candidate classes %v, using %s", header.Name, res.Candidates, res.Chosen)
		result.Diagnostics = append(result.Diagnostics, Diagnostic{
			Header:  header.RelPath(),
			Kind:    AmbiguousClass,
			Classes: res.Candidates,
		})
	}

	proxyPath := filepath.Join(groupDir, res.Chosen)
	if err := s.fs.WriteFileAtomic(proxyPath, classname.ProxyContent(header.Name), proxyPerm); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrWriteProxy, proxyPath, err)
	}
	s.logger.Logf(" -> header %-20s from %-22s (classes: %v)", res.Chosen, header.Name, res.Classes)

	result.Proxies = append(result.Proxies, Proxy{
		Class:  res.Chosen,
		Header: header.RelPath(),
		Path:   proxyPath,
	})
	return target, nil
}

func (s *realStager) verbosePrint(msg string, args ...interface{}) {
	if s.verbose {
		s.logger.Logf(msg, args...)
	}
}

const banner = "-------------------------------------"
