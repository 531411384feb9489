package prompt

import (
	"strings"
	"testing"
)

// TestParseWidthHeight tests extraction of multiple numeric overrides from one line.
func TestParseWidthHeight(t *testing.T) {
	cleaned, overrides := Parse("a cat, width: 512, height: 768")

	if w, ok := overrides.Int("width"); !ok || w != 512 {
		t.Errorf("width = %v (ok=%v), want 512", w, ok)
	}
	if h, ok := overrides.Int("height"); !ok || h != 768 {
		t.Errorf("height = %v (ok=%v), want 768", h, ok)
	}
	if strings.Contains(cleaned, "width: 512") {
		t.Errorf("cleaned prompt %q still contains the width token", cleaned)
	}
	if strings.Contains(cleaned, "height: 768") {
		t.Errorf("cleaned prompt %q still contains the height token", cleaned)
	}
	if !strings.Contains(cleaned, "a cat") {
		t.Errorf("cleaned prompt %q lost the prompt text", cleaned)
	}
}

// TestParseUnrecognisedKey tests that unknown keys are left untouched.
func TestParseUnrecognisedKey(t *testing.T) {
	cleaned, overrides := Parse("a dog, foo: bar")

	if len(overrides) != 0 {
		t.Errorf("overrides = %v, want empty", overrides)
	}
	if !strings.Contains(cleaned, "foo: bar") {
		t.Errorf("cleaned prompt %q should keep the unrecognised token", cleaned)
	}
}

// TestParseInvalidNumericValue tests that a non-numeric value for a numeric key
// is dropped from the overrides but stripped from the prompt.
func TestParseInvalidNumericValue(t *testing.T) {
	cleaned, overrides := Parse("a fox, seed: abc")

	if _, ok := overrides["seed"]; ok {
		t.Errorf("overrides = %v, seed should be absent", overrides)
	}
	if strings.Contains(cleaned, "seed: abc") {
		t.Errorf("cleaned prompt %q should not retain the failed token", cleaned)
	}
}

// TestParseDuplicateKeyLastWins tests that the last occurrence of a key wins.
func TestParseDuplicateKeyLastWins(t *testing.T) {
	_, overrides := Parse("steps: 10 detailed scene\nsteps: 20")

	if s, ok := overrides.Int("steps"); !ok || s != 20 {
		t.Errorf("steps = %v (ok=%v), want 20", s, ok)
	}
}

// TestParseStringOverrides tests the non-numeric keys.
func TestParseStringOverrides(t *testing.T) {
	cleaned, overrides := Parse("a boat\nstyle_preset: Photographic\nnegative_prompt: blurry, low quality")

	if v, ok := overrides.String("style_preset"); !ok || v != "Photographic" {
		t.Errorf("style_preset = %q (ok=%v), want Photographic", v, ok)
	}
	if v, ok := overrides.String("negative_prompt"); !ok || v != "blurry, low quality" {
		t.Errorf("negative_prompt = %q (ok=%v), want full comma value", v, ok)
	}
	if cleaned != "a boat" {
		t.Errorf("cleaned = %q, want %q", cleaned, "a boat")
	}
}

// TestParseValueStopsAtNextToken tests that a value ends where the next
// recognised token begins.
func TestParseValueStopsAtNextToken(t *testing.T) {
	_, overrides := Parse("negative_prompt: blurry, steps: 40")

	if v, ok := overrides.String("negative_prompt"); !ok || v != "blurry" {
		t.Errorf("negative_prompt = %q (ok=%v), want %q", v, ok, "blurry")
	}
	if s, ok := overrides.Int("steps"); !ok || s != 40 {
		t.Errorf("steps = %v (ok=%v), want 40", s, ok)
	}
}

// TestParseKeyCaseInsensitive tests that keys are lower-cased before matching.
func TestParseKeyCaseInsensitive(t *testing.T) {
	_, overrides := Parse("WIDTH: 640")

	if w, ok := overrides.Int("width"); !ok || w != 640 {
		t.Errorf("width = %v (ok=%v), want 640", w, ok)
	}
}

// TestParseNoOverrides tests a plain prompt passthrough.
func TestParseNoOverrides(t *testing.T) {
	cleaned, overrides := Parse("  a quiet harbour at dawn  ")

	if cleaned != "a quiet harbour at dawn" {
		t.Errorf("cleaned = %q, want trimmed prompt", cleaned)
	}
	if len(overrides) != 0 {
		t.Errorf("overrides = %v, want empty", overrides)
	}
}

// TestParseEmptyValueIgnored tests that a bare "key:" with nothing after it is
// neither collected nor stripped.
func TestParseEmptyValueIgnored(t *testing.T) {
	cleaned, overrides := Parse("a city skyline, width:")

	if len(overrides) != 0 {
		t.Errorf("overrides = %v, want empty", overrides)
	}
	if !strings.Contains(cleaned, "width:") {
		t.Errorf("cleaned = %q, want the bare token left in place", cleaned)
	}
}

// TestParseCfgScale tests that underscore keys match as a whole.
func TestParseCfgScale(t *testing.T) {
	cleaned, overrides := Parse("a temple, cfg_scale: 12")

	if v, ok := overrides.Int("cfg_scale"); !ok || v != 12 {
		t.Errorf("cfg_scale = %v (ok=%v), want 12", v, ok)
	}
	if strings.Contains(cleaned, "cfg_scale") {
		t.Errorf("cleaned = %q, token should be stripped", cleaned)
	}
}
