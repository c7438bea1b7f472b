package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Colors     ColorsConfig     `yaml:"colors"`
	View       ViewConfig       `yaml:"view"`
	Playhead   PlayheadConfig   `yaml:"playhead"`
	Decimation DecimationConfig `yaml:"decimation"`
	Audio      AudioConfig      `yaml:"audio"`
}

// ColorsConfig contains the hex colors used by the viewer.
type ColorsConfig struct {
	Background string `yaml:"background"` // Window background
	Positive   string `yaml:"positive"`   // Non-negative trace
	Negative   string `yaml:"negative"`   // Non-positive trace
	Plot       string `yaml:"plot"`       // Plot canvas background
}

// ViewConfig contains zoom slider bounds and window geometry.
// SliderDefault is the slider position that shows the whole clip.
type ViewConfig struct {
	SliderMin     int     `yaml:"slider_min"`
	SliderMax     int     `yaml:"slider_max"`
	SliderDefault int     `yaml:"slider_default"`
	WindowWidth   float32 `yaml:"window_width"`
	WindowHeight  float32 `yaml:"window_height"`
}

// PlayheadConfig contains playhead marker parameters.
type PlayheadConfig struct {
	Interval time.Duration `yaml:"interval"` // Poll interval for the playhead position
}

// DecimationConfig contains decimation hotkey parameters.
type DecimationConfig struct {
	MaxFactor int `yaml:"max_factor"` // Highest factor reachable via hotkeys
}

// AudioConfig contains audio loading parameters.
type AudioConfig struct {
	BufferSize int `yaml:"buffer_size"` // Read buffer size in samples
}

// Default returns a default configuration with sensible values.
func Default() *Config {
	return &Config{
		Colors: ColorsConfig{
			Background: "#000000",
			Positive:   "#39FF14",
			Negative:   "#39FF14",
			Plot:       "#222222",
		},
		View: ViewConfig{
			SliderMin:     1,
			SliderMax:     1000,
			SliderDefault: 500,
			WindowWidth:   900,
			WindowHeight:  620,
		},
		Playhead: PlayheadConfig{
			Interval: 30 * time.Millisecond, // ~33 updates/sec
		},
		Decimation: DecimationConfig{
			MaxFactor: 9,
		},
		Audio: AudioConfig{
			BufferSize: 4096,
		},
	}
}

// Load loads configuration from a YAML file. If the file doesn't exist
// or fields are missing, it uses default values.
func Load(filename string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			// File doesn't exist, return defaults
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Ensure minimum required fields are set (use defaults if missing)
	cfg.ensureDefaults()

	return cfg, nil
}

// Save saves the configuration to a YAML file.
func (c *Config) Save(filename string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ensureDefaults ensures that all required fields have default values if missing.
func (c *Config) ensureDefaults() {
	def := Default()

	if c.Colors.Background == "" {
		c.Colors.Background = def.Colors.Background
	}
	if c.Colors.Positive == "" {
		c.Colors.Positive = def.Colors.Positive
	}
	if c.Colors.Negative == "" {
		c.Colors.Negative = def.Colors.Negative
	}
	if c.Colors.Plot == "" {
		c.Colors.Plot = def.Colors.Plot
	}

	if c.View.SliderMin == 0 {
		c.View.SliderMin = def.View.SliderMin
	}
	if c.View.SliderMax == 0 {
		c.View.SliderMax = def.View.SliderMax
	}
	if c.View.SliderDefault == 0 {
		c.View.SliderDefault = def.View.SliderDefault
	}
	if c.View.WindowWidth == 0 {
		c.View.WindowWidth = def.View.WindowWidth
	}
	if c.View.WindowHeight == 0 {
		c.View.WindowHeight = def.View.WindowHeight
	}

	if c.Playhead.Interval == 0 {
		c.Playhead.Interval = def.Playhead.Interval
	}

	if c.Decimation.MaxFactor == 0 {
		c.Decimation.MaxFactor = def.Decimation.MaxFactor
	}

	if c.Audio.BufferSize == 0 {
		c.Audio.BufferSize = def.Audio.BufferSize
	}
}
