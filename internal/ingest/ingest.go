// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ingest turns an uploaded document into normalized plain text.
// It dispatches on file extension, extracts best-effort text, and enforces
// the minimum-content threshold that guards the rest of the pipeline.
package ingest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"

	"github.com/clarifyhq/clarify/pkg/types"
)

// defaultMinContentLength is the minimum normalized text length in
// characters accepted by Preprocess.
const defaultMinContentLength = 50

// Ingestor reads uploaded documents and produces clean text. It never
// deletes its input; the caller owns the source file and its cleanup.
type Ingestor struct {
	minLength int
}

// New builds an Ingestor from configuration.
func New(cfg types.IngestConfig) *Ingestor {
	minLength := cfg.MinContentLength
	if minLength <= 0 {
		minLength = defaultMinContentLength
	}
	return &Ingestor{minLength: minLength}
}

// Parse extracts raw text from the file at path based on its extension.
// Unknown extensions fail with ErrUnsupportedFormat; decode problems in
// page-based formats fail with ErrParseFailure.
func (i *Ingestor) Parse(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".pdf":
		return i.parsePDF(path)
	case ".txt":
		return i.parseText(path)
	default:
		return "", fmt.Errorf("%w: %s", types.ErrUnsupportedFormat, ext)
	}
}

// parsePDF extracts the concatenated page text of a PDF document.
func (i *Ingestor) parsePDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: opening pdf: %w", types.ErrParseFailure, err)
	}
	defer f.Close()

	reader, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: extracting pdf text: %w", types.ErrParseFailure, err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(reader); err != nil {
		return "", fmt.Errorf("%w: reading pdf text: %w", types.ErrParseFailure, err)
	}

	return buf.String(), nil
}

// parseText reads a plain-text file.
func (i *Ingestor) parseText(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: reading text file: %w", types.ErrParseFailure, err)
	}
	return strings.TrimSpace(string(content)), nil
}

// Preprocess normalizes raw extracted text: whitespace runs collapse to
// single spaces, control characters are stripped, and the result is
// trimmed. Text below the minimum length fails with ErrContentTooShort.
// Every entry point into the pipeline runs through this check — direct
// text submission cannot bypass it.
func (i *Ingestor) Preprocess(raw string) (string, error) {
	cleaned := strings.Join(strings.Fields(raw), " ")
	cleaned = strings.Map(dropControl, cleaned)
	cleaned = strings.TrimSpace(cleaned)

	if utf8.RuneCountInString(cleaned) < i.minLength {
		return "", fmt.Errorf("%w: need at least %d characters, got %d",
			types.ErrContentTooShort, i.minLength, utf8.RuneCountInString(cleaned))
	}

	return cleaned, nil
}

// dropControl removes C0 and C1 control characters plus DEL.
func dropControl(r rune) rune {
	if r < 0x20 || (r >= 0x7F && r <= 0x9F) {
		return -1
	}
	return r
}
