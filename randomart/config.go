package randomart

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/signatory-io/randomart/logger"
)

// Config selects a preset and optionally overrides some of its fields:
//
//	preset: openssl
//	mode:
//	  height: 11
//	  alphabet: " .o+=*BOX@%&#/^SE"
type Config struct {
	Preset string   `yaml:"preset,omitempty"`
	Mode   ast.Node `yaml:"mode,omitempty"`
}

func ParseConfig(data []byte) (*Config, error) {
	var conf Config
	if err := yaml.UnmarshalWithOptions(data, &conf, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("randomart: %w", err)
	}
	return &conf, nil
}

// GetMode resolves the preset, applies the overrides and validates the result
func (c *Config) GetMode() (Mode, error) {
	name := c.Preset
	if name == "" {
		name = DefaultPreset
	}
	mode, ok := LookupMode(name)
	if !ok {
		return Mode{}, fmt.Errorf("%w: unknown preset %s", ErrInvalidConfiguration, name)
	}
	if c.Mode != nil {
		if err := yaml.NodeToValue(c.Mode, &mode, yaml.Strict()); err != nil {
			return Mode{}, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
		}
	}
	if err := mode.Validate(); err != nil {
		return Mode{}, err
	}
	return mode, nil
}

func (c *Config) NewRenderer(log logger.Logger) (*Renderer, error) {
	mode, err := c.GetMode()
	if err != nil {
		return nil, err
	}
	return &Renderer{Mode: mode, Log: log}, nil
}
