// Package venice provides a client for the Venice AI image generation API.
package venice

// GenerateRequest is the JSON body of POST /image/generate.
type GenerateRequest struct {
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	Steps          int    `json:"steps"`
	HideWatermark  bool   `json:"hide_watermark"`
	ReturnBinary   bool   `json:"return_binary"`
	CFGScale       int    `json:"cfg_scale"`
	Seed           int    `json:"seed"`
	NegativePrompt string `json:"negative_prompt"`
	StylePreset    string `json:"style_preset"`
}

// GenerateResponse is the JSON body of a successful generation. Each entry in
// Images is either an http(s) URL or base64-encoded image bytes, depending on
// the return_binary request flag.
type GenerateResponse struct {
	Images []string `json:"images"`
}

// Model describes one entry of the models listing.
type Model struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// ModelsResponse is the JSON body of GET /models.
type ModelsResponse struct {
	Data []Model `json:"data"`
}
