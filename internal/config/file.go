package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file structure. Pointer fields
// distinguish "unset" from zero values so the file only overrides what it
// names.
type FileConfig struct {
	BaseURL        *string `toml:"base_url"`
	APIKey         *string `toml:"api_key"`
	Width          *int    `toml:"width"`
	Height         *int    `toml:"height"`
	HideWatermark  *bool   `toml:"hide_watermark"`
	ReturnBinary   *bool   `toml:"return_binary"`
	Seed           *int    `toml:"seed"`
	Model          *string `toml:"model"`
	CFGScale       *int    `toml:"cfg_scale"`
	Steps          *int    `toml:"steps"`
	StylePreset    *string `toml:"style_preset"`
	NegativePrompt *string `toml:"negative_prompt"`
	TimeoutSeconds *int    `toml:"timeout_seconds"`
}

// ConfigPath returns the path to the config file
// (~/.config/veniceimg/config.toml).
func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "veniceimg", "config.toml")
	}
	return filepath.Join(home, ".config", "veniceimg", "config.toml")
}

// LoadFile loads configuration from a TOML file. A missing file yields an
// empty FileConfig, not an error.
func LoadFile(path string) (*FileConfig, error) {
	cfg := &FileConfig{}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyFile overlays the file configuration onto the config.
func (c *Config) applyFile(f *FileConfig) {
	if f == nil {
		return
	}
	if f.BaseURL != nil {
		c.BaseURL = *f.BaseURL
	}
	if f.APIKey != nil {
		c.APIKey = *f.APIKey
	}
	if f.Width != nil {
		c.Width = *f.Width
	}
	if f.Height != nil {
		c.Height = *f.Height
	}
	if f.HideWatermark != nil {
		c.HideWatermark = *f.HideWatermark
	}
	if f.ReturnBinary != nil {
		c.ReturnBinary = *f.ReturnBinary
	}
	if f.Seed != nil {
		c.Seed = *f.Seed
	}
	if f.Model != nil {
		c.Model = *f.Model
	}
	if f.CFGScale != nil {
		c.CFGScale = *f.CFGScale
	}
	if f.Steps != nil {
		c.Steps = *f.Steps
	}
	if f.StylePreset != nil {
		c.StylePreset = *f.StylePreset
	}
	if f.NegativePrompt != nil {
		c.NegativePrompt = *f.NegativePrompt
	}
	if f.TimeoutSeconds != nil {
		c.Timeout = time.Duration(*f.TimeoutSeconds) * time.Second
	}
}
