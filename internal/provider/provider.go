// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package provider holds the outbound boundary to hosted model APIs:
// a text-generation client and an image-generation hook. Everything a
// provider returns is treated as untrusted text; the JSON path strips
// code-fence wrapping and repairs malformed payloads before decoding.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// GenerateOptions tunes a single text-generation call. Nil means the
// client's configured defaults.
type GenerateOptions struct {
	// Temperature overrides the sampling temperature when non-nil.
	Temperature *float64

	// MaxOutputTokens overrides the completion cap when positive.
	MaxOutputTokens int
}

// TextGenerator is the text-generation provider boundary. Generate returns
// raw model text; GenerateJSON additionally instructs the model to emit
// JSON, strips formatting artifacts, and decodes the payload into v.
type TextGenerator interface {
	Generate(ctx context.Context, system, user string, opts *GenerateOptions) (string, error)
	GenerateJSON(ctx context.Context, system, user string, v any) error
}

// ImageGenerator is the image-generation provider boundary, consumed only
// by the visual task. It returns a displayable image reference (URL or
// data URI). An empty reference and an error are both acceptable non-fatal
// outcomes; the visual task degrades instead of aborting.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt, label string) (string, error)
}

// Temperature is a convenience for building GenerateOptions literals.
func Temperature(t float64) *float64 { return &t }

// StripFences removes a surrounding Markdown code fence (``` or ```lang)
// from model output. Models regularly wrap JSON in fences despite being
// told not to; the payload inside is returned unchanged. Text without a
// leading fence is returned as-is.
func StripFences(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	// Drop the opening fence line, including any language tag.
	rest := strings.TrimPrefix(trimmed, "```")
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		rest = rest[i+1:]
	} else {
		// Fence with no newline: nothing inside.
		rest = strings.TrimPrefix(rest, "json")
	}

	// Drop a trailing closing fence if present.
	rest = strings.TrimSpace(rest)
	rest = strings.TrimSuffix(rest, "```")
	return strings.TrimSpace(rest)
}

// DecodeJSON decodes model output into v. It strips code fences, tries a
// plain unmarshal, and on failure repairs the payload (unquoted keys,
// trailing commas, single quotes) and retries. The returned error carries
// a truncated excerpt of the raw output for diagnosis.
func DecodeJSON(raw string, v any) error {
	cleaned := StripFences(raw)

	if err := json.Unmarshal([]byte(cleaned), v); err == nil {
		return nil
	}

	repaired, repairErr := jsonrepair.JSONRepair(cleaned)
	if repairErr != nil {
		return fmt.Errorf("decoding provider JSON (raw: %s): %w", excerpt(raw), repairErr)
	}
	if err := json.Unmarshal([]byte(repaired), v); err != nil {
		return fmt.Errorf("decoding repaired provider JSON (raw: %s): %w", excerpt(raw), err)
	}
	return nil
}

// excerptLen bounds how much raw provider output an error message carries.
const excerptLen = 280

func excerpt(s string) string {
	s = strings.TrimSpace(s)
	if len(s) <= excerptLen {
		return s
	}
	return s[:excerptLen] + "..."
}
