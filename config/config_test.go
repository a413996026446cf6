package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uyouii/viterbi-plots/common"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "viterbiplot.yaml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func noEnv() envconfig.Lookuper {
	return envconfig.MapLookuper(map[string]string{})
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := LoadWithLookuper(context.Background(), "", noEnv())
	require.NoError(t, err)
	assert.Equal(t, New(), cfg)
	assert.Equal(t, 5, cfg.Bins)
	assert.Equal(t, "png", cfg.ImageFormat)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, "bins: 10\nimage_format: svg\nkde: true\noutput_dir: plots\n")

	cfg, err := LoadWithLookuper(context.Background(), path, noEnv())
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Bins)
	assert.Equal(t, "svg", cfg.ImageFormat)
	assert.True(t, cfg.KDE)
	assert.Equal(t, "plots", cfg.OutputDir)
	// untouched keys keep their defaults
	assert.Equal(t, DefaultWidth, cfg.Width)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := LoadWithLookuper(context.Background(), writeConfig(t, ""), noEnv())
	require.NoError(t, err)
	assert.Equal(t, New(), cfg)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "bins: 10\ntransform: exp\n")
	env := envconfig.MapLookuper(map[string]string{
		"VITERBIPLOT_BINS":      "20",
		"VITERBIPLOT_LOG_LEVEL": "debug",
		"BINS":                  "99",
	})

	cfg, err := LoadWithLookuper(context.Background(), path, env)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Bins)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "exp", cfg.Transform)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
	}{
		{"unknown key", "colour: red\n", nil},
		{"negative bins", "bins: -2\n", nil},
		{"zero width", "width: 0.0\nheight: 0\n", map[string]string{"VITERBIPLOT_WIDTH": "0"}},
		{"bad env value", "", map[string]string{"VITERBIPLOT_BINS": "many"}},
		{"not yaml", "bins: [\n", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadWithLookuper(context.Background(), writeConfig(t, tt.content), envconfig.MapLookuper(tt.env))
			assert.ErrorIs(t, err, common.ErrorInvalidValue)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := LoadWithLookuper(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"), noEnv())
	assert.ErrorIs(t, err, common.ErrorFileAccess)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultEnvFile), []byte("VITERBIPLOT_IMAGE_FORMAT=pdf\n"), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		os.Chdir(wd)
		os.Unsetenv("VITERBIPLOT_IMAGE_FORMAT")
	})

	cfg, err := Load(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "pdf", cfg.ImageFormat)
}
