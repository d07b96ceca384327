// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package provider

import (
	"context"

	"go.uber.org/zap"
)

// NoopImageGenerator is the shipped image backend: it declines every
// request. The visual task treats an empty reference as "no image" and
// falls back to diagram markup, so wiring a real raster backend later is
// a drop-in replacement of this type.
type NoopImageGenerator struct {
	log *zap.SugaredLogger
}

// NewNoopImageGenerator returns an image backend that always declines.
func NewNoopImageGenerator(log *zap.SugaredLogger) *NoopImageGenerator {
	return &NoopImageGenerator{log: log}
}

// GenerateImage logs the request and returns an empty reference.
func (n *NoopImageGenerator) GenerateImage(_ context.Context, prompt, label string) (string, error) {
	if n.log != nil {
		n.log.Debugw("image generation not configured, skipping",
			"label", label,
			"prompt_length", len(prompt),
		)
	}
	return "", nil
}
