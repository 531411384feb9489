// Package prompt parses inline parameter overrides out of free-form prompt text.
package prompt

import (
	"regexp"
	"strconv"
	"strings"
)

// tokenPattern matches a candidate override token key ("word-characters colon
// optional-whitespace"). The value run is resolved by span tracking rather than
// by the pattern itself, so values may contain commas and spaces.
var tokenPattern = regexp.MustCompile(`(\w+):\s*`)

// numericKeys are the override keys whose values must convert to integers.
var numericKeys = map[string]bool{
	"width":     true,
	"height":    true,
	"steps":     true,
	"seed":      true,
	"cfg_scale": true,
}

// recognisedKeys is the allowlist of override keys. Anything else is left
// untouched in the prompt.
var recognisedKeys = map[string]bool{
	"width":           true,
	"height":          true,
	"steps":           true,
	"seed":            true,
	"cfg_scale":       true,
	"style_preset":    true,
	"negative_prompt": true,
}

// Overrides maps recognised override keys to their parsed values: int for the
// numeric keys, string otherwise. Later occurrences of a key overwrite earlier
// ones.
type Overrides map[string]any

// Int returns the integer value for key, if present.
func (o Overrides) Int(key string) (int, bool) {
	v, ok := o[key].(int)
	return v, ok
}

// String returns the string value for key, if present.
func (o Overrides) String(key string) (string, bool) {
	v, ok := o[key].(string)
	return v, ok
}

type span struct {
	start, end int
}

// Parse scans the prompt for recognised `key: value` override tokens, collects
// them, and returns the prompt with those tokens removed plus the collected
// overrides. A token's value runs until the next candidate token or newline.
// Unrecognised keys are ignored entirely. Numeric keys whose value fails to
// convert are dropped from the overrides, but their token text is still
// stripped from the cleaned prompt. Pure function: no I/O, deterministic.
func Parse(prompt string) (string, Overrides) {
	overrides := make(Overrides)

	matches := tokenPattern.FindAllStringSubmatchIndex(prompt, -1)
	if len(matches) == 0 {
		return strings.TrimSpace(prompt), overrides
	}

	var removed []span
	for i, m := range matches {
		key := strings.ToLower(prompt[m[2]:m[3]])
		if !recognisedKeys[key] {
			continue
		}

		valueStart := m[1]
		valueEnd := len(prompt)
		if i+1 < len(matches) {
			valueEnd = matches[i+1][0]
		}
		if nl := strings.IndexByte(prompt[valueStart:valueEnd], '\n'); nl >= 0 {
			valueEnd = valueStart + nl
		}

		value := trimValue(prompt[valueStart:valueEnd])
		if value == "" {
			continue
		}

		// The token is stripped even when a numeric value fails to parse;
		// only the override itself is dropped.
		removed = append(removed, span{start: m[0], end: valueEnd})

		if numericKeys[key] {
			n, err := strconv.Atoi(value)
			if err != nil {
				continue
			}
			overrides[key] = n
			continue
		}
		overrides[key] = value
	}

	return removeSpans(prompt, removed), overrides
}

// trimValue strips surrounding whitespace and a trailing separator comma from
// a raw value run.
func trimValue(raw string) string {
	v := strings.TrimSpace(raw)
	v = strings.TrimRight(v, ",")
	return strings.TrimSpace(v)
}

// removeSpans rebuilds the prompt without the given spans. Spans are produced
// in order and never overlap.
func removeSpans(prompt string, spans []span) string {
	if len(spans) == 0 {
		return strings.TrimSpace(prompt)
	}

	var b strings.Builder
	last := 0
	for _, s := range spans {
		b.WriteString(prompt[last:s.start])
		last = s.end
	}
	b.WriteString(prompt[last:])

	return strings.TrimSpace(b.String())
}
