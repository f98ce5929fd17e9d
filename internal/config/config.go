// Package config holds the lighting demo configuration. Files may be JSON
// or YAML; anything not set in the file keeps its default.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"chosenoffset.com/lumen/internal/core/check"
	"chosenoffset.com/lumen/internal/core/light"
)

// MaxShaderLights is the size of the light arrays in the lighting shader.
const MaxShaderLights = 32

// Config holds all settings for a run
type Config struct {
	Window   WindowConfig   `json:"window" yaml:"window"`
	Lighting LightingConfig `json:"lighting" yaml:"lighting"`

	Debug       bool   `json:"debug" yaml:"debug"`
	MetricsAddr string `json:"metrics_addr" yaml:"metrics_addr"` // Serve /metrics here when set (e.g. ":9090")
	ShaderPath  string `json:"shader_path" yaml:"shader_path"`
}

// WindowConfig defines the demo window
type WindowConfig struct {
	Width  int    `json:"width" yaml:"width"`
	Height int    `json:"height" yaml:"height"`
	Title  string `json:"title" yaml:"title"`
}

// LightingConfig defines the lighting pass and the attributes new lights start with
type LightingConfig struct {
	AmbientLight float64 `json:"ambient_light" yaml:"ambient_light"` // 0.0 = pitch black, 1.0 = fully lit
	MaxLights    int     `json:"max_lights" yaml:"max_lights"`       // Lights uploaded to the shader per frame

	DefaultRange     float64 `json:"default_range" yaml:"default_range"`
	DefaultRadius    float64 `json:"default_radius" yaml:"default_radius"`
	DefaultIntensity float64 `json:"default_intensity" yaml:"default_intensity"`
	DefaultColor     string  `json:"default_color" yaml:"default_color"` // Hex "RRGGBB" or "RRGGBBAA"
	ShadowType       string  `json:"shadow_type" yaml:"shadow_type"`     // illuminated, solid or occluded

	LightTexture string `json:"light_texture" yaml:"light_texture"` // Optional falloff texture shared by all lights
}

// DefaultConfig returns the settings used when no file is given
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 800,
			Title:  "lumen",
		},
		Lighting: LightingConfig{
			AmbientLight:     0.15,
			MaxLights:        MaxShaderLights,
			DefaultRange:     light.DefaultRange,
			DefaultRadius:    light.DefaultRadius,
			DefaultIntensity: light.DefaultIntensity,
			DefaultColor:     "ffffff",
			ShadowType:       light.ShadowIlluminated.String(),
		},
		ShaderPath: "shaders/lighting.kage",
	}
}

// LoadConfig loads config from a JSON or YAML file. A missing file yields
// the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, config)
	default:
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

// Validate checks every field and joins all problems into one error.
func (c *Config) Validate() error {
	l := c.Lighting
	errs := []error{
		check.NotLessThan(c.Window.Width, 1, "window.width", "Window width must be positive."),
		check.NotLessThan(c.Window.Height, 1, "window.height", "Window height must be positive."),
		check.WithinRange(l.AmbientLight, 0, 1, "lighting.ambient_light", "Ambient light must be between 0 and 1."),
		check.WithinRange(l.MaxLights, 1, MaxShaderLights, "lighting.max_lights", "Max lights must fit the shader arrays."),
		check.NotLessThan(l.DefaultRange, light.MinRange, "lighting.default_range", "Range cannot be smaller than 1."),
		check.WithinRange(l.DefaultRadius, light.MinRange, l.DefaultRange, "lighting.default_radius", "Radius cannot be smaller than 1 and larger than Range."),
	}
	if _, err := l.Color(); err != nil {
		errs = append(errs, err)
	}
	if _, err := light.ParseShadowType(l.ShadowType); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Color parses DefaultColor.
func (l LightingConfig) Color() (light.Color, error) {
	return light.ColorFromHex(l.DefaultColor)
}

// Shadow parses ShadowType, falling back to illuminated.
func (l LightingConfig) Shadow() light.ShadowType {
	st, _ := light.ParseShadowType(l.ShadowType)
	return st
}
