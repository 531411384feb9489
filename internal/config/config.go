// Package config holds the generation settings for the image action.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/jmylchreest/veniceimg/pkg/plugin"
)

const (
	// DefaultBaseURL is the Venice AI API root.
	DefaultBaseURL = "https://api.venice.ai/api/v1"

	// DefaultModel is the image model used when none is configured.
	DefaultModel = "fluently-xl"

	// MaxCFGScale is the largest guidance scale the API accepts.
	MaxCFGScale = 20

	// MaxSteps is the largest step count the API accepts.
	MaxSteps = 100

	// RandomSeed marks the seed as unset; a fresh random seed is drawn per request.
	RandomSeed = -1
)

// Config holds all generation settings for one action instance. It is
// immutable for the duration of a request; per-request changes come in as
// prompt overrides, never by mutating the config.
// Priority: CLI flags > env vars > config.toml > defaults.
type Config struct {
	// BaseURL is the API root, without a trailing slash.
	BaseURL string

	// APIKey is the static bearer token. An empty key disables the action.
	APIKey string

	Width  int
	Height int

	// HideWatermark asks the API not to stamp generated images.
	HideWatermark bool

	// ReturnBinary asks the API for base64 image bytes instead of URLs.
	ReturnBinary bool

	// Seed is a fixed generation seed; RandomSeed (negative) draws a fresh
	// random seed per request.
	Seed int

	Model          string
	CFGScale       int
	Steps          int
	StylePreset    string
	NegativePrompt string

	// Timeout bounds the single outbound HTTP request.
	Timeout time.Duration
}

// Default returns a Config populated with the documented defaults.
func Default() *Config {
	return &Config{
		BaseURL:        DefaultBaseURL,
		Width:          720,
		Height:         1080,
		HideWatermark:  true,
		ReturnBinary:   false,
		Seed:           RandomSeed,
		Model:          DefaultModel,
		CFGScale:       7,
		Steps:          80,
		StylePreset:    "Photographic",
		NegativePrompt: "",
		Timeout:        10 * time.Second,
	}
}

// Load builds a Config from defaults, the TOML config file, and environment
// variables, in increasing priority. Flag values land on top of the result
// via RegisterFlags.
func Load() *Config {
	cfg := Default()

	if fileCfg, err := LoadFile(ConfigPath()); err == nil {
		cfg.applyFile(fileCfg)
	}
	cfg.applyEnv()

	return cfg
}

// applyEnv overlays environment variables onto the config.
func (c *Config) applyEnv() {
	if v := os.Getenv("VENICE_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("VENICE_API_BASE_URL"); v != "" {
		c.BaseURL = v
	}
}

// RegisterFlags registers the generation settings on the flag set. Flag
// defaults reflect the already-loaded values, so unset flags keep the
// file/env configuration.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.BaseURL, "base-url", c.BaseURL, "Venice API base URL")
	flags.StringVar(&c.APIKey, "api-key", c.APIKey, "Venice API key (or VENICE_API_KEY)")
	flags.IntVar(&c.Width, "width", c.Width, "Default image width")
	flags.IntVar(&c.Height, "height", c.Height, "Default image height")
	flags.BoolVar(&c.HideWatermark, "hide-watermark", c.HideWatermark, "Ask the API to omit the watermark")
	flags.BoolVar(&c.ReturnBinary, "return-binary", c.ReturnBinary, "Request base64 image bytes instead of URLs")
	flags.IntVar(&c.Seed, "seed", c.Seed, "Fixed generation seed (negative draws a fresh random seed per request)")
	flags.StringVar(&c.Model, "model", c.Model, "Image model to use")
	flags.IntVar(&c.CFGScale, "cfg-scale", c.CFGScale, fmt.Sprintf("Guidance scale (max %d)", MaxCFGScale))
	flags.IntVar(&c.Steps, "steps", c.Steps, fmt.Sprintf("Diffusion steps (max %d)", MaxSteps))
	flags.StringVar(&c.StylePreset, "style-preset", c.StylePreset, "Default style preset")
	flags.StringVar(&c.NegativePrompt, "negative-prompt", c.NegativePrompt, "Default negative prompt")
	flags.DurationVar(&c.Timeout, "timeout", c.Timeout, "HTTP timeout for the generation request")
}

// Validate checks that the configuration is usable. It does not require an
// API key: a missing key turns the action into a silent no-op rather than an
// error.
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("base URL must start with http:// or https://")
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("width and height must be positive")
	}
	if c.CFGScale < 1 || c.CFGScale > MaxCFGScale {
		return fmt.Errorf("cfg-scale must be between 1 and %d", MaxCFGScale)
	}
	if c.Steps < 1 || c.Steps > MaxSteps {
		return fmt.Errorf("steps must be between 1 and %d", MaxSteps)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}

// FlagHelp returns the flag descriptions exposed to hosts over the plugin
// protocol.
func (c *Config) FlagHelp() []plugin.FlagHelp {
	d := Default()
	return []plugin.FlagHelp{
		{Name: "base-url", Type: "string", Default: d.BaseURL, Description: "Venice API base URL"},
		{Name: "api-key", Type: "string", Default: "", Description: "Venice API key (or VENICE_API_KEY)", Required: true},
		{Name: "width", Type: "int", Default: fmt.Sprint(d.Width), Description: "Default image width"},
		{Name: "height", Type: "int", Default: fmt.Sprint(d.Height), Description: "Default image height"},
		{Name: "hide-watermark", Type: "bool", Default: fmt.Sprint(d.HideWatermark), Description: "Ask the API to omit the watermark"},
		{Name: "return-binary", Type: "bool", Default: fmt.Sprint(d.ReturnBinary), Description: "Request base64 image bytes instead of URLs"},
		{Name: "seed", Type: "int", Default: fmt.Sprint(d.Seed), Description: "Fixed generation seed (negative draws a fresh random seed per request)"},
		{Name: "model", Type: "string", Default: d.Model, Description: "Image model to use"},
		{Name: "cfg-scale", Type: "int", Default: fmt.Sprint(d.CFGScale), Description: fmt.Sprintf("Guidance scale (max %d)", MaxCFGScale)},
		{Name: "steps", Type: "int", Default: fmt.Sprint(d.Steps), Description: fmt.Sprintf("Diffusion steps (max %d)", MaxSteps)},
		{Name: "style-preset", Type: "string", Default: d.StylePreset, Description: "Default style preset"},
		{Name: "negative-prompt", Type: "string", Default: d.NegativePrompt, Description: "Default negative prompt"},
		{Name: "timeout", Type: "duration", Default: d.Timeout.String(), Description: "HTTP timeout for the generation request"},
	}
}
