// Package needlist loads the set of headers that must receive a class-named proxy.
//
// The set is derived from the legacy include stubs, files such as
// include/QSintWidgets holding lines like
//
//	#include "../src/Widgets/Button.h"
//
// Every line is reduced to the part after the last anchor token with its
// closing character removed, here Widgets/Button.h.
package needlist

import (
	"fmt"
	iofs "io/fs"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/lerenn/hstage/pkg/fs"
	"github.com/lerenn/hstage/pkg/logger"
)

//go:generate mockgen -source=needlist.go -destination=mocks/needlist.gen.go -package=mocks

// Default stub conventions.
const (
	DefaultPrefix = "QSint"
	DefaultAnchor = "../src/"
)

// NeedSet is the set of "<group>/<filename>" paths that need a proxy header.
type NeedSet map[string]struct{}

// NewNeedSet builds a set from paths.
func NewNeedSet(paths ...string) NeedSet {
	set := make(NeedSet, len(paths))
	for _, p := range paths {
		set[p] = struct{}{}
	}
	return set
}

// Has reports whether relPath is in the set.
func (s NeedSet) Has(relPath string) bool {
	_, ok := s[relPath]
	return ok
}

// Len returns the number of distinct entries.
func (s NeedSet) Len() int {
	return len(s)
}

// Sorted returns the entries in lexical order.
func (s NeedSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Loader reads need sets from a legacy include directory.
type Loader interface {
	// Load scans dir, non-recursively, for stub files and returns the paths they list.
	Load(dir string) (NeedSet, error)
}

// NewLoaderParams contains parameters for creating a new Loader.
type NewLoaderParams struct {
	FS     fs.FS
	Logger logger.Logger
	// Prefix selects the stub files by name. Defaults to DefaultPrefix.
	Prefix string
	// Anchor is the path token the relative header path follows. Defaults to DefaultAnchor.
	Anchor  string
	Verbose bool
}

type realLoader struct {
	fs      fs.FS
	logger  logger.Logger
	prefix  string
	anchor  string
	verbose bool
}

// NewLoader creates a new Loader instance.
func NewLoader(params NewLoaderParams) Loader {
	l := &realLoader{
		fs:      params.FS,
		logger:  params.Logger,
		prefix:  params.Prefix,
		anchor:  params.Anchor,
		verbose: params.Verbose,
	}
	if l.fs == nil {
		l.fs = fs.NewFS()
	}
	if l.logger == nil {
		l.logger = logger.NewNoopLogger()
	}
	if l.prefix == "" {
		l.prefix = DefaultPrefix
	}
	if l.anchor == "" {
		l.anchor = DefaultAnchor
	}
	return l
}

// Load scans dir for stub files and returns the paths they list.
// A missing directory gives an empty set.
func (l *realLoader) Load(dir string) (NeedSet, error) {
	set := NewNeedSet()

	entries, err := l.fs.ReadDir(dir)
	if err != nil {
		if l.fs.IsNotExist(err) {
			l.logger.Logf("Legacy include directory %s not found, no proxy headers will be generated", dir)
			return set, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrReadLegacyDir, err)
	}

	stubs := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), l.prefix) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		if entry.Type()&iofs.ModeSymlink != 0 {
			// Only links resolving to a file are stubs
			if isDir, err := l.fs.IsDir(path); err != nil || isDir {
				l.verbosePrint("Skipping %s: not a file", path)
				continue
			}
		}

		content, err := l.fs.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrReadStub, path, err)
		}
		if !utf8.Valid(content) {
			return nil, fmt.Errorf("%w: %s", ErrStubDecode, path)
		}

		lines := splitLines(string(content))
		for _, line := range lines {
			set[ParseLine(line, l.anchor)] = struct{}{}
		}
		stubs++
		l.verbosePrint("Read %d lines from %s", len(lines), path)
	}

	if stubs == 0 {
		l.logger.Logf("No %s* stub files in %s, no proxy headers will be generated", l.prefix, dir)
	}

	return set, nil
}

func (l *realLoader) verbosePrint(msg string, args ...interface{}) {
	if l.verbose {
		l.logger.Logf(msg, args...)
	}
}

// ParseLine reduces a stub line to the relative header path it names: the text
// after the last anchor, trimmed, without its final character.
//
// A line without the anchor keeps its whole trimmed text minus the final character.
// Such entries never match a header and are kept as they are.
func ParseLine(line, anchor string) string {
	if i := strings.LastIndex(line, anchor); i >= 0 {
		line = line[i+len(anchor):]
	}
	line = strings.TrimSpace(line)
	_, size := utf8.DecodeLastRuneInString(line)
	return line[:len(line)-size]
}

// splitLines splits content keeping the semantics of reading a text file line by
// line: a trailing newline does not produce an extra empty line.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(content, "\n"), "\n")
}
