package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/san-kum/tesseract/internal/geom"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWindowSize         = 800
	DefaultProjectionDistance = 5.0
	DefaultScale              = 150.0
	DefaultRotationSpeed      = 0.01
	DefaultTargetFPS          = 60
	DefaultLineWidth          = 2.0
	DefaultTitle              = "4D Tesseract Rotation"
	DefaultTheme              = "midnight"
)

var (
	DefaultBackground = RGB{10, 10, 40}
	DefaultLineColor  = RGB{200, 220, 255}
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// RGB is an 8-bit colour, written to yaml as [r, g, b].
type RGB struct {
	R, G, B uint8
}

func (c RGB) Hex() string { return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B) }

func (c RGB) MarshalYAML() (interface{}, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range []uint8{c.R, c.G, c.B} {
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(int(v))})
	}
	return n, nil
}

func (c *RGB) UnmarshalYAML(value *yaml.Node) error {
	var v []int
	if err := value.Decode(&v); err != nil {
		return err
	}
	if len(v) != 3 {
		return fmt.Errorf("colour needs 3 components, got %d", len(v))
	}
	for _, x := range v {
		if x < 0 || x > 255 {
			return fmt.Errorf("colour component %d out of range", x)
		}
	}
	c.R, c.G, c.B = uint8(v[0]), uint8(v[1]), uint8(v[2])
	return nil
}

// PlaneSpeed is the per-tick angle increment of one rotation plane.
type PlaneSpeed struct {
	Plane geom.Plane
	Speed float64
}

type Config struct {
	Title              string  `yaml:"title"`
	WindowSize         int     `yaml:"window_size"`
	ProjectionDistance float64 `yaml:"projection_distance"`
	Scale              float64 `yaml:"scale"`
	RotationSpeed      float64 `yaml:"rotation_speed"`
	TargetFPS          int     `yaml:"target_fps"`
	LineWidth          float64 `yaml:"line_width"`
	Background         RGB     `yaml:"background"`
	LineColor          RGB     `yaml:"line_color"`
	Theme              string  `yaml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		Title:              DefaultTitle,
		WindowSize:         DefaultWindowSize,
		ProjectionDistance: DefaultProjectionDistance,
		Scale:              DefaultScale,
		RotationSpeed:      DefaultRotationSpeed,
		TargetFPS:          DefaultTargetFPS,
		LineWidth:          DefaultLineWidth,
		Background:         DefaultBackground,
		LineColor:          DefaultLineColor,
		Theme:              DefaultTheme,
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads path on top of base, so keys missing from the file keep
// base's values. base is not modified.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch {
	case c.WindowSize <= 0:
		return fmt.Errorf("%w: window_size must be positive, got %d", ErrInvalidConfig, c.WindowSize)
	case !positive(c.ProjectionDistance):
		return fmt.Errorf("%w: projection_distance must be positive and finite, got %f", ErrInvalidConfig, c.ProjectionDistance)
	case !positive(c.Scale):
		return fmt.Errorf("%w: scale must be positive and finite, got %f", ErrInvalidConfig, c.Scale)
	case math.IsNaN(c.RotationSpeed) || math.IsInf(c.RotationSpeed, 0):
		return fmt.Errorf("%w: rotation_speed must be finite, got %f", ErrInvalidConfig, c.RotationSpeed)
	case c.TargetFPS <= 0:
		return fmt.Errorf("%w: target_fps must be positive, got %d", ErrInvalidConfig, c.TargetFPS)
	case !positive(c.LineWidth):
		return fmt.Errorf("%w: line_width must be positive and finite, got %f", ErrInvalidConfig, c.LineWidth)
	}
	return nil
}

// positive is false for NaN and ±Inf as well as x <= 0.
func positive(x float64) bool { return x > 0 && !math.IsInf(x, 0) }

// Center is the pixel coordinate of the window centre on both axes.
func (c *Config) Center() float64 { return float64(c.WindowSize) / 2 }

// Rotations returns the fixed plane schedule in composition order: ZW at the
// base speed, then XW at half of it.
func (c *Config) Rotations() []PlaneSpeed {
	return []PlaneSpeed{
		{Plane: geom.ZW, Speed: c.RotationSpeed},
		{Plane: geom.XW, Speed: c.RotationSpeed / 2},
	}
}
