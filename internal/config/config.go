// Package config loads specmix settings from defaults, a YAML file,
// SPECMIX_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-specmix/dsp/interp"
	"github.com/cwbudde/algo-specmix/imaging/mixer"
	"github.com/cwbudde/algo-specmix/imaging/region"
	"github.com/cwbudde/algo-specmix/imaging/spectral"
)

// EnvPrefix is the prefix of environment variables read by [NewViper].
const EnvPrefix = "SPECMIX"

// FileName is the config file name searched for without extension.
const FileName = "specmix"

var ErrInvalid = errors.New("config: invalid")

// Config is the full specmix configuration.
type Config struct {
	LogLevel string       `mapstructure:"log_level" yaml:"log_level"`
	Mix      MixConfig    `mapstructure:"mix" yaml:"mix"`
	Output   OutputConfig `mapstructure:"output" yaml:"output"`
}

// MixConfig describes one mix request.
type MixConfig struct {
	Weights    []float64     `mapstructure:"weights" yaml:"weights"`
	Components []string      `mapstructure:"components" yaml:"components"`
	Crop       string        `mapstructure:"crop" yaml:"crop"`
	Rect       []float64     `mapstructure:"rect" yaml:"rect,flow"` // x, y, width, height
	Resize     string        `mapstructure:"resize" yaml:"resize"`
	ClipMin    float64       `mapstructure:"clip_min" yaml:"clip_min"`
	ClipMax    float64       `mapstructure:"clip_max" yaml:"clip_max"`
	Timeout    time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// OutputConfig controls where and how results are written.
type OutputConfig struct {
	Path    string `mapstructure:"path" yaml:"path"`
	Stretch bool   `mapstructure:"stretch" yaml:"stretch"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel: "info",
		Mix: MixConfig{
			Weights:    []float64{0.25, 0.25, 0.25, 0.25},
			Components: []string{"magnitude", "phase", "magnitude", "phase"},
			Crop:       region.None.String(),
			Rect:       []float64{0, 0, 0, 0},
			Resize:     interp.MethodLinear.String(),
			ClipMin:    mixer.DefaultClipMin,
			ClipMax:    mixer.DefaultClipMax,
			Timeout:    time.Minute,
		},
		Output: OutputConfig{
			Path: "mix.png",
		},
	}
}

// SetDefaults registers [Default] with v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("mix.weights", d.Mix.Weights)
	v.SetDefault("mix.components", d.Mix.Components)
	v.SetDefault("mix.crop", d.Mix.Crop)
	v.SetDefault("mix.rect", d.Mix.Rect)
	v.SetDefault("mix.resize", d.Mix.Resize)
	v.SetDefault("mix.clip_min", d.Mix.ClipMin)
	v.SetDefault("mix.clip_max", d.Mix.ClipMax)
	v.SetDefault("mix.timeout", d.Mix.Timeout)
	v.SetDefault("output.path", d.Output.Path)
	v.SetDefault("output.stretch", d.Output.Stretch)
}

// NewViper returns a viper instance with defaults and environment binding.
// If file is empty the working directory and the user config directory are
// searched for specmix.yaml; a missing file is not an error.
func NewViper(file string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, FileName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}
	return v, nil
}

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %w", ErrInvalid, err)
	}
	if _, err := c.Mix.Request(); err != nil {
		return err
	}
	if c.Mix.Timeout < 0 {
		return fmt.Errorf("%w: mix.timeout must not be negative", ErrInvalid)
	}
	if c.Output.Path == "" {
		return fmt.Errorf("%w: output.path is empty", ErrInvalid)
	}
	return nil
}

// MixSettings is the typed form of [MixConfig].
type MixSettings struct {
	Weights    [mixer.Slots]float64
	Components [mixer.Slots]spectral.Component
	Crop       region.CropMode
	Rect       region.Rect
	Resize     interp.Method
	ClipMin    float64
	ClipMax    float64
}

// Request parses m into typed mix settings.
func (m MixConfig) Request() (MixSettings, error) {
	var s MixSettings
	if len(m.Weights) != mixer.Slots {
		return s, fmt.Errorf("%w: mix.weights needs %d values, got %d", ErrInvalid, mixer.Slots, len(m.Weights))
	}
	if len(m.Components) != mixer.Slots {
		return s, fmt.Errorf("%w: mix.components needs %d values, got %d", ErrInvalid, mixer.Slots, len(m.Components))
	}
	for i := range mixer.Slots {
		w := m.Weights[i]
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return s, fmt.Errorf("%w: mix.weights[%d] = %v", ErrInvalid, i, w)
		}
		s.Weights[i] = w

		c, err := spectral.ParseComponent(strings.TrimSpace(m.Components[i]))
		if err != nil {
			return s, fmt.Errorf("%w: mix.components[%d]: %w", ErrInvalid, i, err)
		}
		s.Components[i] = c
	}
	if _, err := mixer.SelectFamily(s.Components); err != nil {
		return s, fmt.Errorf("%w: mix.components: %w", ErrInvalid, err)
	}

	crop, err := region.ParseCropMode(m.Crop)
	if err != nil {
		return s, fmt.Errorf("%w: mix.crop: %w", ErrInvalid, err)
	}
	s.Crop = crop

	if len(m.Rect) != 4 {
		return s, fmt.Errorf("%w: mix.rect needs x, y, width, height", ErrInvalid)
	}
	s.Rect = region.RectFromFloat(m.Rect[0], m.Rect[1], m.Rect[2], m.Rect[3])

	method, err := interp.ParseMethod(m.Resize)
	if err != nil {
		return s, fmt.Errorf("%w: mix.resize: %w", ErrInvalid, err)
	}
	s.Resize = method

	if !(m.ClipMin <= m.ClipMax) {
		return s, fmt.Errorf("%w: mix.clip_min %v exceeds clip_max %v", ErrInvalid, m.ClipMin, m.ClipMax)
	}
	s.ClipMin, s.ClipMax = m.ClipMin, m.ClipMax
	return s, nil
}

// WriteDefault writes [Default] as YAML to path. An existing file is only
// replaced when force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config: %s already exists", path)
		}
	}
	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}
