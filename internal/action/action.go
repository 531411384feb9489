// Package action implements the image-generation chat action: one invocation
// takes the latest user message, resolves inline overrides, performs a single
// Venice API call, and streams the results back through the host's emitter.
package action

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/veniceimg/internal/config"
	"github.com/jmylchreest/veniceimg/internal/prompt"
	"github.com/jmylchreest/veniceimg/internal/venice"
	"github.com/jmylchreest/veniceimg/internal/version"
	"github.com/jmylchreest/veniceimg/pkg/plugin"
)

const (
	statusGenerating = "Generating image..."
	statusDone       = "Image generated!"

	// seedRange bounds freshly drawn random seeds to [0, seedRange).
	seedRange = 1000000
)

// Action is the image-generation action. It holds read-only configuration;
// concurrent invocations for distinct chat turns are independent.
type Action struct {
	cfg    *config.Config
	client *venice.Client
	log    hclog.Logger
}

// New creates an action instance from the given configuration.
func New(cfg *config.Config, logger hclog.Logger) *Action {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Action{
		cfg:    cfg,
		client: venice.New(cfg.BaseURL, cfg.APIKey, cfg.Timeout, logger),
		log:    logger.Named("action"),
	}
}

// Run executes the action for one chat turn. Without an emitter or an API key
// the invocation is a silent no-op. Any failure between the opening status and
// the final status collapses into a single error-status notification; messages
// already emitted stay in the chat.
func (a *Action) Run(ctx context.Context, body plugin.ChatBody, emitter plugin.Emitter) error {
	if emitter == nil || a.cfg.APIKey == "" {
		return nil
	}

	log := a.log.With("request_id", uuid.NewString())

	if err := emitter.EmitStatus(statusGenerating, false); err != nil {
		return err
	}

	if err := a.generate(ctx, body, emitter, log); err != nil {
		log.Error("image generation failed", "error", err)
		return emitter.EmitStatus(fmt.Sprintf("Error: %s", err), true)
	}

	return emitter.EmitStatus(statusDone, true)
}

// generate runs the request pipeline: parse overrides, merge the payload,
// call the API, and emit one message per returned image.
func (a *Action) generate(ctx context.Context, body plugin.ChatBody, emitter plugin.Emitter, log hclog.Logger) error {
	text := body.LastContent()
	cleaned, overrides := prompt.Parse(text)

	log.Debug("parsed prompt", "overrides", len(overrides))

	resp, err := a.client.Generate(ctx, a.buildRequest(cleaned, overrides))
	if err != nil {
		return err
	}

	for _, entry := range resp.Images {
		if err := emitter.EmitMessage(imageMarkdown(entry), plugin.RoleAssistant); err != nil {
			return fmt.Errorf("failed to emit image message: %w", err)
		}
	}

	return nil
}

// buildRequest merges per-field: the override value if present, else the
// configured default. Seed precedence: override, then a configured fixed
// seed, then a fresh random seed. Numeric values respect the API caps.
func (a *Action) buildRequest(cleaned string, overrides prompt.Overrides) venice.GenerateRequest {
	req := venice.GenerateRequest{
		Model:          a.cfg.Model,
		Prompt:         cleaned,
		Width:          a.cfg.Width,
		Height:         a.cfg.Height,
		Steps:          a.cfg.Steps,
		HideWatermark:  a.cfg.HideWatermark,
		ReturnBinary:   a.cfg.ReturnBinary,
		CFGScale:       a.cfg.CFGScale,
		NegativePrompt: a.cfg.NegativePrompt,
		StylePreset:    a.cfg.StylePreset,
	}

	if v, ok := overrides.Int("width"); ok {
		req.Width = v
	}
	if v, ok := overrides.Int("height"); ok {
		req.Height = v
	}
	if v, ok := overrides.Int("steps"); ok {
		req.Steps = v
	}
	if v, ok := overrides.Int("cfg_scale"); ok {
		req.CFGScale = v
	}
	if v, ok := overrides.String("style_preset"); ok {
		req.StylePreset = v
	}
	if v, ok := overrides.String("negative_prompt"); ok {
		req.NegativePrompt = v
	}

	switch {
	case hasInt(overrides, "seed"):
		req.Seed, _ = overrides.Int("seed")
	case a.cfg.Seed >= 0:
		req.Seed = a.cfg.Seed
	default:
		req.Seed = rand.Intn(seedRange)
	}

	req.Steps = capInt(req.Steps, config.MaxSteps)
	req.CFGScale = capInt(req.CFGScale, config.MaxCFGScale)

	return req
}

// GetMetadata returns plugin metadata.
func (a *Action) GetMetadata() plugin.PluginInfo {
	return plugin.PluginInfo{
		Name:            "venice-imagegen",
		Type:            "action",
		Version:         version.Short(),
		ProtocolVersion: plugin.ProtocolVersion,
		Description:     "Generate images from chat prompts with the Venice AI API",
		PluginProtocol:  "go-plugin",
	}
}

// GetFlagHelp returns help information for the action's flags.
func (a *Action) GetFlagHelp() []plugin.FlagHelp {
	return a.cfg.FlagHelp()
}

func hasInt(o prompt.Overrides, key string) bool {
	_, ok := o.Int(key)
	return ok
}

func capInt(v, limit int) int {
	if v > limit {
		return limit
	}
	return v
}
