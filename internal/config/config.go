// Package config loads sigpad settings from defaults, an optional YAML file
// and SIGPAD_ environment variables.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"sigpad/pkg/export"
	"sigpad/pkg/graphics"
	"sigpad/pkg/signature"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

const (
	envPrefix = "sigpad"
	fileName  = ".sigpad"
)

// Config keys
const (
	KeyPenColor      = "pen.color"
	KeyPenWidth      = "pen.width"
	KeySmoothed      = "render.smoothed"
	KeySmoothStep    = "render.smooth_step"
	KeyGuideline     = "render.guideline"
	KeyLinePosition  = "render.line_position"
	KeyExportFormat  = "export.format"
	KeyExportScale   = "export.scale"
	KeyBackground    = "export.background"
	KeyWindowWidth   = "window.width"
	KeyWindowHeight  = "window.height"
	KeyPreviewWidth  = "preview.width"
	KeyPreviewHeight = "preview.height"
	KeyLogLevel      = "log_level"
)

type Pen struct {
	Color string
	Width float64
}

type Render struct {
	Smoothed     bool
	SmoothStep   int
	Guideline    bool
	LinePosition float64
}

type Export struct {
	Format     string
	Scale      float64
	Background string
}

type Window struct {
	Width  float32
	Height float32
}

// Config is the resolved configuration.
type Config struct {
	Pen      Pen
	Render   Render
	Export   Export
	Window   Window
	Preview  Window
	LogLevel string
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyPenColor, "black")
	v.SetDefault(KeyPenWidth, signature.DefaultWidth)
	v.SetDefault(KeySmoothed, true)
	v.SetDefault(KeySmoothStep, 1)
	v.SetDefault(KeyGuideline, true)
	v.SetDefault(KeyLinePosition, 0.75)
	v.SetDefault(KeyExportFormat, string(export.FormatPNG))
	v.SetDefault(KeyExportScale, 8.0)
	v.SetDefault(KeyBackground, "white")
	v.SetDefault(KeyWindowWidth, 640)
	v.SetDefault(KeyWindowHeight, 420)
	v.SetDefault(KeyPreviewWidth, 240)
	v.SetDefault(KeyPreviewHeight, 80)
	v.SetDefault(KeyLogLevel, "info")
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file into v and resolves the result. An empty file
// searches $HOME/.sigpad.yaml, which may be absent.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return Config{}, fmt.Errorf("failed to locate home directory: %w", err)
		}
		v.AddConfigPath(home)
		v.SetConfigName(fileName)
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}
	return FromViper(v), nil
}

// FromViper resolves a Config from v without validating it.
func FromViper(v *viper.Viper) Config {
	return Config{
		Pen: Pen{
			Color: v.GetString(KeyPenColor),
			Width: v.GetFloat64(KeyPenWidth),
		},
		Render: Render{
			Smoothed:     v.GetBool(KeySmoothed),
			SmoothStep:   v.GetInt(KeySmoothStep),
			Guideline:    v.GetBool(KeyGuideline),
			LinePosition: v.GetFloat64(KeyLinePosition),
		},
		Export: Export{
			Format:     v.GetString(KeyExportFormat),
			Scale:      v.GetFloat64(KeyExportScale),
			Background: v.GetString(KeyBackground),
		},
		Window: Window{
			Width:  float32(v.GetFloat64(KeyWindowWidth)),
			Height: float32(v.GetFloat64(KeyWindowHeight)),
		},
		Preview: Window{
			Width:  float32(v.GetFloat64(KeyPreviewWidth)),
			Height: float32(v.GetFloat64(KeyPreviewHeight)),
		},
		LogLevel: v.GetString(KeyLogLevel),
	}
}

// Validate reports the first out-of-range setting.
func (c Config) Validate() error {
	if _, err := c.PenColor(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, KeyPenColor, err)
	}
	if !(c.Pen.Width > 0) {
		return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, KeyPenWidth, c.Pen.Width)
	}
	if err := c.signatureOptions().Validate(); err != nil {
		return fmt.Errorf("%w: render: %w", ErrInvalidConfig, err)
	}
	if _, err := export.ParseFormat(c.Export.Format); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, KeyExportFormat, err)
	}
	if !(c.Export.Scale > 0) {
		return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, KeyExportScale, c.Export.Scale)
	}
	if _, err := c.BackgroundColor(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, KeyBackground, err)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size must be positive", ErrInvalidConfig)
	}
	if c.Preview.Width <= 0 || c.Preview.Height <= 0 {
		return fmt.Errorf("%w: preview size must be positive", ErrInvalidConfig)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: %s: unknown level %q", ErrInvalidConfig, KeyLogLevel, c.LogLevel)
	}
	return nil
}

// PenColor parses the configured pen color.
func (c Config) PenColor() (color.NRGBA, error) {
	return graphics.ParseColor(c.Pen.Color)
}

// BackgroundColor parses the configured export background.
func (c Config) BackgroundColor() (color.NRGBA, error) {
	return graphics.ParseColor(c.Export.Background)
}

func (c Config) signatureOptions() signature.Options {
	return signature.Options{
		Smoothed:     c.Render.Smoothed,
		SmoothStep:   c.Render.SmoothStep,
		IncludeLine:  c.Render.Guideline,
		LinePosition: c.Render.LinePosition,
	}
}

// SignatureOptions maps the render settings to path options.
func (c Config) SignatureOptions() []signature.Option {
	return []signature.Option{
		signature.Smoothed(c.Render.Smoothed),
		signature.SmoothStep(c.Render.SmoothStep),
		signature.Guideline(c.Render.Guideline),
		signature.LinePosition(c.Render.LinePosition),
	}
}

// ExportOptions maps the export and render settings to export options.
// The format is left to the caller, since the output path usually decides it.
func (c Config) ExportOptions() ([]export.Option, error) {
	bg, err := c.BackgroundColor()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, KeyBackground, err)
	}
	return []export.Option{
		export.Scale(c.Export.Scale),
		export.Background(bg),
		export.Signature(c.SignatureOptions()...),
	}, nil
}
