//go:build integration

package headerstager

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/lerenn/hstage/pkg/config"
	"github.com/lerenn/hstage/pkg/dependencies"
	"github.com/lerenn/hstage/pkg/fs"
	"github.com/lerenn/hstage/pkg/logger"
	"github.com/lerenn/hstage/pkg/needlist"
	"github.com/lerenn/hstage/pkg/stager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// setupSourceTree creates a QSint-like project below root.
func setupSourceTree(t *testing.T, root string) {
	writeFile(t, filepath.Join(root, "src", "Core", "Object.h"), "#pragma once\nclass Object\n{\n};\n")
	writeFile(t, filepath.Join(root, "src", "Widgets", "Button.h"),
		"#pragma once\n#include \"Object.h\"\nclass Button : public Object\n{\n};\n")
	writeFile(t, filepath.Join(root, "include", "QSintCore"), "#include \"../src/Core/Object.h\"\n")
	writeFile(t, filepath.Join(root, "include", "QSintWidgets"), "#include \"../src/Widgets/Button.h\"\n")
	writeFile(t, filepath.Join(root, "build", "lib", "release", "libqsint.a"), "archive")
	writeFile(t, filepath.Join(root, "build", "doc", "html", "qsint.qch"), "docs")
}

func runOnce(t *testing.T, cfg config.Config) Result {
	t.Helper()

	runLog, err := logger.OpenRunLog(cfg.LogPath(), nil)
	require.NoError(t, err)
	defer func() { _ = runLog.Close() }()

	fsInstance := fs.NewFS()
	hs, err := NewHeaderStager(NewHeaderStagerParams{
		Dependencies: dependencies.New().
			WithFS(fsInstance).
			WithLogger(runLog).
			WithLoader(needlist.NewLoader(needlist.NewLoaderParams{FS: fsInstance, Logger: runLog})).
			WithStager(stager.NewStager(stager.NewStagerParams{FS: fsInstance, Logger: runLog})),
		Config: cfg,
	})
	require.NoError(t, err)

	result, err := hs.Run(context.Background())
	require.NoError(t, err)
	return result
}

// snapshot maps every file below root to its content.
func snapshot(t *testing.T, root string) map[string]string {
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

func integrationConfig(root string) config.Config {
	return config.Config{
		Root:             root,
		SourceDir:        "src",
		HeaderExt:        ".h",
		LegacyIncludeDir: "include",
		LegacyPrefix:     "QSint",
		Anchor:           "../src/",
		LibDir:           "build/lib",
		LibPattern:       "lib*.a",
		DocDir:           "build/doc",
		DocPattern:       "*.qch",
		DestDir:          "qsint",
		LogFile:          "hstage.log",
	}
}

func TestRun_Integration_StagingTree(t *testing.T) {
	root := t.TempDir()
	setupSourceTree(t, root)
	cfg := integrationConfig(root)

	// Stale output from an earlier run is removed
	writeFile(t, filepath.Join(root, "qsint", "include", "Old", "Gone.h"), "stale")

	result := runOnce(t, cfg)
	assert.Len(t, result.Headers, 2)
	assert.Len(t, result.Proxies, 2)
	assert.Empty(t, result.Diagnostics)

	files := snapshot(t, cfg.DestPath())
	description := files["description.txt"]
	delete(files, "description.txt")

	assert.Equal(t, map[string]string{
		"include/Core/Object.h":    "#pragma once\nclass Object\n{\n};\n",
		"include/Core/Object":      `#include "./Object.h"`,
		"include/Widgets/Button.h": "#pragma once\n#include \"Object.h\"\nclass Button : public Object\n{\n};\n",
		"include/Widgets/Button":   `#include "./Button.h"`,
		"lib/libqsint.a":           "archive",
		"doc/qsint.qch":            "docs",
	}, files)

	assert.Contains(t, description, "hstage started at ")
	assert.Contains(t, description, "group: Core")
	assert.Contains(t, description, " end ")
	assert.NotContains(t, description, "hstage finished at")

	logContent, err := os.ReadFile(cfg.LogPath())
	require.NoError(t, err)
	assert.Contains(t, string(logContent), "hstage finished at")
}

func TestRun_Integration_Idempotent(t *testing.T) {
	root := t.TempDir()
	setupSourceTree(t, root)
	cfg := integrationConfig(root)

	runOnce(t, cfg)
	first := snapshot(t, cfg.DestPath())
	delete(first, "description.txt")

	runOnce(t, cfg)
	second := snapshot(t, cfg.DestPath())
	delete(second, "description.txt")

	assert.Equal(t, first, second)
}

func TestRun_Integration_MissingSource(t *testing.T) {
	root := t.TempDir()
	cfg := integrationConfig(root)

	runLog, err := logger.OpenRunLog(cfg.LogPath(), nil)
	require.NoError(t, err)
	defer func() { _ = runLog.Close() }()

	hs, err := NewHeaderStager(NewHeaderStagerParams{
		Dependencies: dependencies.New().
			WithLogger(runLog).
			WithLoader(needlist.NewLoader(needlist.NewLoaderParams{Logger: runLog})).
			WithStager(stager.NewStager(stager.NewStagerParams{Logger: runLog})),
		Config: cfg,
	})
	require.NoError(t, err)

	_, err = hs.Run(context.Background())
	assert.ErrorIs(t, err, stager.ErrSourceDirMissing)
	assert.NoFileExists(t, filepath.Join(cfg.DestPath(), DescriptionFile))
}
