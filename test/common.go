//go:build e2e

package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// hstageBinary is built once by TestMain (main_test.go).
var hstageBinary string

// TestSetup holds the test environment setup
type TestSetup struct {
	Root string
	Dest string
}

// setupTestEnvironment creates a header library checkout in a temporary directory
func setupTestEnvironment(t *testing.T) *TestSetup {
	t.Helper()

	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"src/Core/Object.h":            "#pragma once\n\nclass Object\n{\npublic:\n    Object();\n};\n",
		"src/Core/Private.h":           "#pragma once\n\nstruct Detail {};\n",
		"src/Widgets/Button.h":         "#pragma once\n#include \"Object.h\"\n\nclass Button : public Object\n{\n};\n",
		"src/Widgets/ColorGrid.h":      "#pragma once\n\nclass ColorGridPrivate;\nclass Palette;\n",
		"src/Widgets/Slider.h":         "#pragma once\n\nclass SLIDER;\nclass Slider\n{\n};\n",
		"src/Widgets/Internal.h":       "#pragma once\n\nclass Internal {};\n",
		"include/QSintCore":            "#include \"../src/Core/Object.h\"\n",
		"include/QSintWidgets":         "#include \"../src/Widgets/Button.h\"\n#include \"../src/Widgets/ColorGrid.h\"\n#include \"../src/Widgets/Slider.h\"\n",
		"include/README":               "not a stub\n",
		"build/lib/release/libqsint.a": "release archive",
		"build/lib/debug/libqsintd.a":  "debug archive",
		"build/lib/qsint.lib":          "ignored",
		"build/doc/html/qsint.qch":     "docs",
	})

	return &TestSetup{Root: root, Dest: filepath.Join(root, "qsint")}
}

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

// runHstage runs the binary in setup.Root and returns its combined output
func runHstage(t *testing.T, setup *TestSetup, args ...string) (string, error) {
	t.Helper()

	cmd := exec.Command(hstageBinary, args...)
	cmd.Dir = setup.Root
	for _, kv := range os.Environ() {
		if !strings.HasPrefix(kv, "HSTAGE_") {
			cmd.Env = append(cmd.Env, kv)
		}
	}
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// readTree maps every file below root to its content
func readTree(t *testing.T, root string) map[string]string {
	t.Helper()

	files := map[string]string{}
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	require.NoError(t, err)
	return files
}
