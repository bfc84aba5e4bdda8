// Package classname extracts class names from C++ header text and picks the one
// a proxy header should be named after.
//
// The matcher is line oriented: a declaration is a line that starts with the
// class keyword. Comments, strings, preprocessor branches and scopes are not
// understood, so an indented nested class is missed and a comment line that
// happens to start with "class Foo" is picked up.
package classname

import (
	"fmt"
	"regexp"
	"strings"
)

var declaration = regexp.MustCompile(`(?m)^class\s+([A-Za-z0-9_]+)\s*:?`)

// Extract returns every class name declared at the start of a line, in file order.
// Forward declarations count, so a name can appear more than once.
func Extract(content string) []string {
	matches := declaration.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return nil
	}

	classes := make([]string, 0, len(matches))
	for _, m := range matches {
		classes = append(classes, m[1])
	}
	return classes
}

// Candidates returns the classes equal, ignoring case, to headerName without ext.
func Candidates(classes []string, headerName, ext string) []string {
	stem := strings.TrimSuffix(headerName, ext)

	var out []string
	for _, c := range classes {
		if strings.EqualFold(c, stem) {
			out = append(out, c)
		}
	}
	return out
}

// Resolution is the outcome of matching a header's classes against its filename.
type Resolution struct {
	Classes    []string
	Candidates []string
	// Chosen is the first candidate, empty when there is none.
	Chosen string
	// Ambiguous is set when the candidates differ in spelling.
	Ambiguous bool
}

// Found reports whether a proxy should be generated.
func (r Resolution) Found() bool {
	return r.Chosen != ""
}

// Resolve extracts the classes of content and picks the proxy name for headerName.
func Resolve(content, headerName, ext string) Resolution {
	classes := Extract(content)
	candidates := Candidates(classes, headerName, ext)

	res := Resolution{Classes: classes, Candidates: candidates}
	if len(candidates) == 0 {
		return res
	}

	res.Chosen = candidates[0]
	for _, c := range candidates[1:] {
		if c != res.Chosen {
			res.Ambiguous = true
			break
		}
	}
	return res
}

// ProxyContent is the body of a proxy header pointing at headerName in the same directory.
func ProxyContent(headerName string) []byte {
	return []byte(fmt.Sprintf("#include \"./%s\"", headerName))
}
