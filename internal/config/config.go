package config

import (
	"fmt"
	"maps"
	"os"

	"github.com/san-kum/vlab/internal/lab"
	"gopkg.in/yaml.v3"
)

const (
	DefaultExperiment = "simple-pendulum"
	DefaultFPS        = 60
	DefaultTheme      = "lab"
	DefaultLogLevel   = "info"
	DefaultWidth      = 640
	DefaultHeight     = 480
)

type Config struct {
	Experiment string             `yaml:"experiment"`
	Params     map[string]float64 `yaml:"params,omitempty"`
	FPS        int                `yaml:"fps"`
	Theme      string             `yaml:"theme"`
	Image      ImageConfig        `yaml:"image"`
	Log        LogConfig          `yaml:"log"`
}

type ImageConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Experiment: DefaultExperiment,
		FPS:        DefaultFPS,
		Theme:      DefaultTheme,
		Image: ImageConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
		Log: LogConfig{Level: DefaultLogLevel},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Apply pushes the configured parameters into inst. Parameters that belong to
// another experiment are reported as lab.ErrUnknownParam.
func (c *Config) Apply(inst lab.Instance) error {
	if len(c.Params) == 0 {
		return nil
	}
	return inst.SetAll(c.Params)
}

// WithPreset returns a copy of c with the named preset's parameters layered
// over the configured ones.
func (c *Config) WithPreset(name string) (*Config, error) {
	preset := GetPreset(c.Experiment, name)
	if preset == nil {
		return nil, fmt.Errorf("no preset %q for %s", name, c.Experiment)
	}
	out := *c
	out.Params = make(map[string]float64, len(c.Params)+len(preset))
	maps.Copy(out.Params, c.Params)
	maps.Copy(out.Params, preset)
	return &out, nil
}
