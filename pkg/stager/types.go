package stager

import "path/filepath"

// HeaderFile is a header found in the source tree. Its group is the name of
// the directory that contains it.
type HeaderFile struct {
	SourcePath string
	Group      string
	Name       string
}

// NewHeaderFile derives the group and name of the header at path.
func NewHeaderFile(path string) HeaderFile {
	return HeaderFile{
		SourcePath: path,
		Group:      filepath.Base(filepath.Dir(path)),
		Name:       filepath.Base(path),
	}
}

// RelPath is the "<group>/<filename>" form used by need sets.
func (h HeaderFile) RelPath() string {
	return h.Group + "/" + h.Name
}

// Proxy is a generated class-named header.
type Proxy struct {
	Class  string
	Header string
	Path   string
}

// DiagnosticKind classifies a recoverable staging problem.
type DiagnosticKind string

// Diagnostic kinds.
const (
	NoMatchingClass DiagnosticKind = "no-matching-class"
	AmbiguousClass  DiagnosticKind = "ambiguous-class"
)

// Diagnostic records a need-listed header whose proxy could not be derived cleanly.
type Diagnostic struct {
	Header  string
	Kind    DiagnosticKind
	Classes []string
}

// Result summarizes a header staging pass.
type Result struct {
	// Headers lists the copied header paths in the destination tree.
	Headers     []string
	Proxies     []Proxy
	Diagnostics []Diagnostic
}
