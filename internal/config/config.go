package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/emojidrop/internal/physics"
	"github.com/san-kum/emojidrop/internal/world"
)

const (
	DefaultFPS          = 60
	DefaultWidth        = 960.0
	DefaultHeight       = 576.0
	DefaultCellWidth    = 12.0
	DefaultCellHeight   = 24.0
	DefaultRepeatWindow = 60 * time.Millisecond
	DefaultFrames       = 600
	DefaultTheme        = "daylight"
	MaxFPS              = 240
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Seed         int64         `yaml:"seed"`
	FPS          int           `yaml:"fps"`
	Width        float64       `yaml:"width"`
	Height       float64       `yaml:"height"`
	CellWidth    float64       `yaml:"cell_width"`
	CellHeight   float64       `yaml:"cell_height"`
	RepeatWindow time.Duration `yaml:"repeat_window"`
	Theme        string        `yaml:"theme"`
	Frames       int           `yaml:"frames"`
	Text         string        `yaml:"text,omitempty"`
	Physics      PhysicsConfig `yaml:"physics"`
	Events       []EventConfig `yaml:"events,omitempty"`
}

type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`
	AirDrag          float64 `yaml:"air_drag"`
	WallBounce       float64 `yaml:"wall_bounce"`
	FloorBounce      float64 `yaml:"floor_bounce"`
	FloorFriction    float64 `yaml:"floor_friction"`
	Bounce           float64 `yaml:"bounce"`
	CollisionDamping float64 `yaml:"collision_damping"`
	Correction       float64 `yaml:"correction"`
	SleepSpeedSq     float64 `yaml:"sleep_speed_sq"`
	SleepFrames      int     `yaml:"sleep_frames"`
	SleepBand        float64 `yaml:"sleep_band"`
}

// EventConfig is one scripted input of a headless run.
type EventConfig struct {
	Frame  int     `yaml:"frame"`
	Key    string  `yaml:"key,omitempty"`
	Repeat bool    `yaml:"repeat,omitempty"`
	Tap    bool    `yaml:"tap,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	Reset  bool    `yaml:"reset,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		FPS:          DefaultFPS,
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		CellWidth:    DefaultCellWidth,
		CellHeight:   DefaultCellHeight,
		RepeatWindow: DefaultRepeatWindow,
		Theme:        DefaultTheme,
		Frames:       DefaultFrames,
		Physics:      FromParams(physics.DefaultParams()),
	}
}

func FromParams(p physics.Params) PhysicsConfig {
	return PhysicsConfig{
		Gravity:          p.Gravity,
		AirDrag:          p.AirDrag,
		WallBounce:       p.WallBounce,
		FloorBounce:      p.FloorBounce,
		FloorFriction:    p.FloorFriction,
		Bounce:           p.Bounce,
		CollisionDamping: p.CollisionDamping,
		Correction:       p.Correction,
		SleepSpeedSq:     p.SleepSpeedSq,
		SleepFrames:      p.SleepFrames,
		SleepBand:        p.SleepBand,
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads path on top of a copy of base, so fields missing from the
// file keep the base values.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	cfg.Events = append([]EventConfig(nil), base.Events...)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
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

// Validate reports the first field that is out of range.
func (c *Config) Validate() error {
	switch {
	case c.FPS < 1 || c.FPS > MaxFPS:
		return fmt.Errorf("%w: fps %d not in [1, %d]", ErrInvalidConfig, c.FPS, MaxFPS)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: viewport %gx%g must be positive", ErrInvalidConfig, c.Width, c.Height)
	case c.CellWidth <= 0 || c.CellHeight <= 0:
		return fmt.Errorf("%w: cell %gx%g must be positive", ErrInvalidConfig, c.CellWidth, c.CellHeight)
	case c.RepeatWindow < 0:
		return fmt.Errorf("%w: repeat_window %s is negative", ErrInvalidConfig, c.RepeatWindow)
	case c.Frames < 0:
		return fmt.Errorf("%w: frames %d is negative", ErrInvalidConfig, c.Frames)
	}
	for i, e := range c.Events {
		if e.Frame < 0 {
			return fmt.Errorf("%w: event %d has negative frame", ErrInvalidConfig, i)
		}
	}
	p := c.Params()
	if err := p.Validate(); err != nil {
		return fmt.Errorf("%w: physics: %w", ErrInvalidConfig, err)
	}
	return nil
}

func (c *Config) Params() physics.Params {
	return physics.Params{
		Gravity:          c.Physics.Gravity,
		AirDrag:          c.Physics.AirDrag,
		WallBounce:       c.Physics.WallBounce,
		FloorBounce:      c.Physics.FloorBounce,
		FloorFriction:    c.Physics.FloorFriction,
		Bounce:           c.Physics.Bounce,
		CollisionDamping: c.Physics.CollisionDamping,
		Correction:       c.Physics.Correction,
		SleepSpeedSq:     c.Physics.SleepSpeedSq,
		SleepFrames:      c.Physics.SleepFrames,
		SleepBand:        c.Physics.SleepBand,
	}
}

// Script returns the scripted events followed by Text typed from frame 0,
// one key every ten frames.
func (c *Config) Script() world.Script {
	s := make(world.Script, 0, len(c.Events))
	for _, e := range c.Events {
		s = append(s, world.Event{
			Frame:  e.Frame,
			Key:    e.Key,
			Repeat: e.Repeat,
			Tap:    e.Tap,
			X:      e.X,
			Y:      e.Y,
			Reset:  e.Reset,
		})
	}
	return append(s, world.TypeText(c.Text, 0, TypeEvery)...)
}

// TypeEvery is the frame spacing of keys typed from Text.
const TypeEvery = 10

// FrameDuration is the wall time of one frame.
func (c *Config) FrameDuration() time.Duration {
	return time.Second / time.Duration(c.FPS)
}
