//go:build unit

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/lerenn/hstage/cmd/hstage/internal/cli"
	"github.com/lerenn/hstage/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetGlobals restores the flag state shared between commands.
func resetGlobals(t *testing.T) {
	t.Setenv(config.EnvRoot, "")
	t.Setenv(config.EnvDest, "")
	t.Cleanup(func() {
		cli.Quiet, cli.Verbose = false, false
		cli.ConfigPath, cli.RootDir, cli.DestDir = "", "", ""
		force = false
	})
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func setupProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"src/Core/Object.h":    "class Object\n{\n};\n",
		"src/Widgets/Button.h": "class Button : public Object\n{\n};\n",
		"include/QSintCore":    "#include \"../src/Core/Object.h\"\n#include \"../src/Widgets/Button.h\"\n",
	}
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

func TestRootCmd_Subcommands(t *testing.T) {
	var names []string
	for _, c := range newRootCmd().Commands() {
		names = append(names, c.Name())
	}
	sort.Strings(names)

	for _, want := range []string{"init", "needs", "stage", "version", "watch"} {
		assert.Contains(t, names, want)
	}
}

func TestVersionCmd(t *testing.T) {
	resetGlobals(t)

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "hstage dev\n", out)
}

func TestNeedsCmd(t *testing.T) {
	resetGlobals(t)
	root := setupProject(t)

	out, err := execute(t, "needs", "-q", "--root", root, "-c", filepath.Join(root, "hstage.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "Core/Object.h\nWidgets/Button.h\n", out)
}

func TestStageCmd_DefaultCommand(t *testing.T) {
	resetGlobals(t)
	root := setupProject(t)

	_, err := execute(t, "-q", "--root", root, "-c", filepath.Join(root, "hstage.yaml"))
	require.NoError(t, err)

	for _, name := range []string{
		"qsint/include/Core/Object.h",
		"qsint/include/Core/Object",
		"qsint/include/Widgets/Button.h",
		"qsint/include/Widgets/Button",
		"qsint/description.txt",
		"hstage.log",
	} {
		assert.FileExists(t, filepath.Join(root, filepath.FromSlash(name)))
	}
}

func TestStageCmd_MissingSources(t *testing.T) {
	resetGlobals(t)
	root := t.TempDir()

	_, err := execute(t, "stage", "-q", "--root", root, "-c", filepath.Join(root, "hstage.yaml"))
	assert.Error(t, err)
}

func TestInitCmd(t *testing.T) {
	resetGlobals(t)
	path := filepath.Join(t.TempDir(), "hstage.yaml")

	_, err := execute(t, "init", "-c", path)
	require.NoError(t, err)
	assert.FileExists(t, path)

	_, err = execute(t, "init", "-c", path)
	assert.Error(t, err)

	_, err = execute(t, "init", "--force", "-c", path)
	assert.NoError(t, err)
}
