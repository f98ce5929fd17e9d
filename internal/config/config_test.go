package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/lumen/internal/core/check"
	"chosenoffset.com/lumen/internal/core/light"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	c, err := cfg.Lighting.Color()
	require.NoError(t, err)
	assert.Equal(t, light.White, c)
	assert.Equal(t, light.ShadowIlluminated, cfg.Lighting.Shadow())
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigJSON(t *testing.T) {
	path := writeFile(t, "lumen.json", `{
		"debug": true,
		"lighting": {
			"ambient_light": 0.3,
			"default_range": 250,
			"default_color": "ffc864",
			"shadow_type": "solid"
		}
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, 0.3, cfg.Lighting.AmbientLight)
	assert.Equal(t, 250.0, cfg.Lighting.DefaultRange)
	// Untouched fields keep their defaults.
	assert.Equal(t, light.DefaultRadius, cfg.Lighting.DefaultRadius)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, light.ShadowSolid, cfg.Lighting.Shadow())
}

func TestLoadConfigYAML(t *testing.T) {
	path := writeFile(t, "lumen.yaml", `
window:
  width: 640
  height: 480
lighting:
  max_lights: 8
  shadow_type: occluded
metrics_addr: ":9090"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 480, cfg.Window.Height)
	assert.Equal(t, "lumen", cfg.Window.Title)
	assert.Equal(t, 8, cfg.Lighting.MaxLights)
	assert.Equal(t, ":9090", cfg.MetricsAddr)
	assert.Equal(t, light.ShadowOccluded, cfg.Lighting.Shadow())
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		kind    error
	}{
		{"range below one", `{"lighting": {"default_range": 0.5, "default_radius": 0.5}}`, check.ErrArgumentBelowMinimum},
		{"radius above range", `{"lighting": {"default_range": 10, "default_radius": 20}}`, check.ErrArgumentOutOfRange},
		{"ambient too bright", `{"lighting": {"ambient_light": 1.5}}`, check.ErrArgumentOutOfRange},
		{"too many lights", `{"lighting": {"max_lights": 64}}`, check.ErrArgumentOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeFile(t, "bad.json", tt.content))
			assert.ErrorIs(t, err, tt.kind)
		})
	}
}

func TestLoadConfigRejectsBadColorAndShadowType(t *testing.T) {
	_, err := LoadConfig(writeFile(t, "bad.json", `{"lighting": {"default_color": "orange"}}`))
	assert.ErrorContains(t, err, "invalid color")

	_, err = LoadConfig(writeFile(t, "bad.json", `{"lighting": {"shadow_type": "fuzzy"}}`))
	assert.ErrorContains(t, err, "unknown shadow type")
}

func TestLoadConfigMalformed(t *testing.T) {
	_, err := LoadConfig(writeFile(t, "bad.json", `{"lighting": `))
	assert.ErrorContains(t, err, "failed to parse config")
}
