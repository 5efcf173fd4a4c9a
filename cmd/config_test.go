package cmd

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "inctrim", configBaseName)
	assert.Equal(t, "inctrim.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "src-dir", srcDirFlagName)
	assert.Equal(t, "exclude", excludeFlagName)
	assert.Equal(t, "paths.src_dir", srcDirConfigKey)
	assert.Equal(t, "paths.exclude", excludeConfigKey)
	assert.Equal(t, "compile.include", includeConfigKey)
	assert.Equal(t, "compile.cflag", cflagConfigKey)
	assert.Equal(t, "src", defaultSrcDir)
	assert.Equal(t, ".c", defaultExt)
	assert.Equal(t, "cc", defaultCompiler)
	assert.Equal(t, "Makefile", defaultMakefile)
	assert.Equal(t, ".inctrim.log", defaultLogFilename)
	assert.Equal(t, "INCTRIM", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestConfigOverride_UnsetKeyIsNil(t *testing.T) {
	assert.Nil(t, configOverride("compile.never_set"))
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  slog.Level
	}{
		{"empty uses default", "", slog.LevelWarn},
		{"debug", "debug", slog.LevelDebug},
		{"info upper case", "INFO", slog.LevelInfo},
		{"warning alias", "warning", slog.LevelWarn},
		{"error with spaces", "  error ", slog.LevelError},
		{"numeric", "-4", slog.LevelDebug},
		{"unknown uses default", "loud", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelWarn))
		})
	}
}

func TestConfigureLogger_WritesToFile(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	logPath := filepath.Join(t.TempDir(), "run.log")

	configureLogger(logPath, false)
	slog.Info("Starting run", "files", 2)
	slog.Debug("Include trial", "include", "a.h")

	contents, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "Starting run")
	assert.NotContains(t, string(contents), "Include trial")
}

func TestConfigureLogger_VerboseLogsDebug(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	logPath := filepath.Join(t.TempDir(), "run.log")

	configureLogger(logPath, true)
	slog.Debug("Include trial", "include", "a.h")

	contents, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "Include trial")
}

func captureSlog(t *testing.T) *bytes.Buffer {
	t.Helper()

	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var buf bytes.Buffer
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))

	return &buf
}

func useConfigFile(t *testing.T, path string) {
	t.Helper()

	viper.SetConfigFile(path)
	t.Cleanup(func() { viper.SetConfigFile(filepath.Join(configFolderPath, configFileName)) })
}

func TestReadConfig_MalformedFileIsLogged(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	require.NoError(t, os.WriteFile(path, []byte("compile: [cc\n"), 0o644))
	useConfigFile(t, path)
	logs := captureSlog(t)

	readConfig()

	assert.Contains(t, logs.String(), "Failed to read config file")
	assert.Contains(t, logs.String(), path)
}

func TestReadConfig_MissingFileIsSilent(t *testing.T) {
	useConfigFile(t, filepath.Join(t.TempDir(), configFileName))
	logs := captureSlog(t)

	readConfig()

	assert.Empty(t, logs.String())
}
