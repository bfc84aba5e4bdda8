//go:build unit

package classname

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected []string
	}{
		{
			name:     "single class",
			content:  "#pragma once\n\nclass Button\n{\n};\n",
			expected: []string{"Button"},
		},
		{
			name:     "derived class ignores base list",
			content:  "#include \"Object.h\"\nclass Button : public Object\n{\n};\n",
			expected: []string{"Button"},
		},
		{
			name:     "derived class without space before colon",
			content:  "\nclass Button: public QWidget {};\n",
			expected: []string{"Button"},
		},
		{
			name:     "multiple classes in file order",
			content:  "\nclass ActionPanel;\nclass ActionPanelScheme\n{};\nclass ActionPanel : public QFrame\n{};\n",
			expected: []string{"ActionPanel", "ActionPanelScheme", "ActionPanel"},
		},
		{
			name:     "first line is a declaration",
			content:  "class Object {};",
			expected: []string{"Object"},
		},
		{
			name:     "crlf line endings",
			content:  "#pragma once\r\nclass Object\r\n{\r\n};\r\n",
			expected: []string{"Object"},
		},
		{
			name:     "indented nested class is not top level",
			content:  "\nclass Outer\n{\n    class Inner {};\n};\n",
			expected: []string{"Outer"},
		},
		{
			name:     "export macro prefix is not matched",
			content:  "\nclass QSINT_EXPORT Button : public QWidget {};\n",
			expected: []string{"QSINT_EXPORT"},
		},
		{
			name:     "line comment is not a declaration",
			content:  "// class Button\n/* class Other */\n",
			expected: nil,
		},
		{
			name:     "comment body starting a line is matched",
			content:  "/*\nclass Legacy is gone\n*/\n",
			expected: []string{"Legacy"},
		},
		{
			name:     "keyword must be followed by whitespace",
			content:  "\nclassic Button;\nclass\tTabbed {};\n",
			expected: []string{"Tabbed"},
		},
		{
			name:     "no classes",
			content:  "#pragma once\nstruct Plain {};\nenum Mode { A };\n",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Extract(tt.content))
		})
	}
}

func TestCandidates(t *testing.T) {
	classes := []string{"ColorGrid", "ColorPopup", "colorgrid"}

	assert.Equal(t, []string{"ColorGrid", "colorgrid"}, Candidates(classes, "colorgrid.h", ".h"))
	assert.Equal(t, []string{"ColorPopup"}, Candidates(classes, "ColorPopup.h", ".h"))
	assert.Nil(t, Candidates(classes, "ColorButton.h", ".h"))
	assert.Nil(t, Candidates(nil, "ColorGrid.h", ".h"))
	assert.Equal(t, []string{"ColorGrid"}, Candidates([]string{"ColorGrid"}, "ColorGrid.hpp", ".hpp"))
}

func TestResolve(t *testing.T) {
	t.Run("single match", func(t *testing.T) {
		res := Resolve("\nclass Button : public Object\n{};\n", "Button.h", ".h")
		assert.True(t, res.Found())
		assert.Equal(t, "Button", res.Chosen)
		assert.False(t, res.Ambiguous)
		assert.Equal(t, []string{"Button"}, res.Classes)
	})

	t.Run("case insensitive match keeps class spelling", func(t *testing.T) {
		res := Resolve("\nclass TaskHeader {};\n", "taskheader.h", ".h")
		assert.Equal(t, "TaskHeader", res.Chosen)
	})

	t.Run("forward declaration and definition are not ambiguous", func(t *testing.T) {
		res := Resolve("\nclass Slider;\nclass Slider : public QSlider {};\n", "Slider.h", ".h")
		assert.Equal(t, "Slider", res.Chosen)
		assert.False(t, res.Ambiguous)
		assert.Len(t, res.Candidates, 2)
	})

	t.Run("different spellings are ambiguous and the first wins", func(t *testing.T) {
		res := Resolve("\nclass SLIDER {};\nclass Slider {};\n", "Slider.h", ".h")
		assert.Equal(t, "SLIDER", res.Chosen)
		assert.True(t, res.Ambiguous)
	})

	t.Run("no match", func(t *testing.T) {
		res := Resolve("\nclass Helper {};\nclass Other {};\n", "Widget.h", ".h")
		assert.False(t, res.Found())
		assert.Empty(t, res.Chosen)
		assert.Equal(t, []string{"Helper", "Other"}, res.Classes)
	})

	t.Run("no classes", func(t *testing.T) {
		res := Resolve("#pragma once\n", "Widget.h", ".h")
		assert.False(t, res.Found())
		assert.Empty(t, res.Classes)
	})
}

func TestProxyContent(t *testing.T) {
	assert.Equal(t, `#include "./Button.h"`, string(ProxyContent("Button.h")))
}
