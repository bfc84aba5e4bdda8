//go:build unit

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lerenn/hstage/pkg/config"
	configmocks "github.com/lerenn/hstage/pkg/config/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetConfigPath(t *testing.T) {
	original := ConfigPath
	defer func() { ConfigPath = original }()

	ConfigPath = ""
	assert.Equal(t, config.DefaultConfigFile, GetConfigPath())

	ConfigPath = "/etc/hstage.yaml"
	assert.Equal(t, "/etc/hstage.yaml", GetConfigPath())
}

func TestLoadConfigFrom_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := configmocks.NewMockManager(ctrl)

	manager.EXPECT().GetConfigWithFallback().Return(config.Config{}, config.ErrConfigFileParse)
	manager.EXPECT().GetConfigPath().Return("hstage.yaml")

	_, err := LoadConfigFrom(manager)
	assert.ErrorIs(t, err, config.ErrConfigFileParse)
	assert.Contains(t, err.Error(), "hstage.yaml")
}

func TestLoadConfigFrom_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := configmocks.NewMockManager(ctrl)

	want := config.Config{Root: "/work", DestDir: "qsint"}
	manager.EXPECT().GetConfigWithFallback().Return(want, nil)

	cfg, err := LoadConfigFrom(manager)
	require.NoError(t, err)
	assert.Equal(t, want, cfg)
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	t.Setenv(config.EnvRoot, "")
	t.Setenv(config.EnvDest, "")

	tempDir := t.TempDir()
	configFile := filepath.Join(tempDir, "hstage.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("root: elsewhere\ndest_dir: staged\n"), 0644))

	originalConfig, originalRoot, originalDest := ConfigPath, RootDir, DestDir
	defer func() { ConfigPath, RootDir, DestDir = originalConfig, originalRoot, originalDest }()

	ConfigPath = configFile
	RootDir = tempDir
	DestDir = "out"

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, tempDir, cfg.Root)
	assert.Equal(t, filepath.Join(tempDir, "out"), cfg.DestPath())
}
