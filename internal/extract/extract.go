// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract builds the canonical knowledge graph from normalized
// document text by prompting the text-generation provider and decoding
// its structured payload.
package extract

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/clarifyhq/clarify/internal/provider"
	"github.com/clarifyhq/clarify/pkg/types"
)

// payload is the extraction response shape requested from the provider.
// Relationships reference concepts by name; resolution to IDs happens
// during graph construction.
type payload struct {
	Concepts      []conceptPayload      `json:"concepts"`
	Relationships []relationshipPayload `json:"relationships"`
	Metadata      types.Metadata        `json:"metadata"`
}

type conceptPayload struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Complexity    string   `json:"complexity"`
	Prerequisites []string `json:"prerequisites"`
	Examples      []string `json:"examples"`
}

type relationshipPayload struct {
	From string `json:"from"`
	To   string `json:"to"`
	Type string `json:"type"`
}

// Analyzer is the knowledge extractor. It is safe for concurrent use as
// long as the underlying provider is.
type Analyzer struct {
	gen provider.TextGenerator
	log *zap.SugaredLogger
}

// NewAnalyzer builds an Analyzer on top of a text-generation provider.
func NewAnalyzer(gen provider.TextGenerator, log *zap.SugaredLogger) *Analyzer {
	return &Analyzer{gen: gen, log: log}
}

// Analyze sends the document text to the provider and builds a knowledge
// graph from the response. Construction order is fixed: concepts first
// (assigned sequential IDs), then relationships resolved by name lookup
// against those concepts, then metadata copied as-is.
//
// A provider or decode failure is reported as ErrExtractionFailure. A
// structurally decodable response with zero usable concepts still returns
// a graph; rejecting an empty graph is the caller's decision.
func (a *Analyzer) Analyze(ctx context.Context, cleanText string) (*types.KnowledgeGraph, error) {
	userPrompt, err := renderUserPrompt(cleanText)
	if err != nil {
		return nil, fmt.Errorf("rendering analyzer prompt: %w", err)
	}

	var p payload
	if err := a.gen.GenerateJSON(ctx, analyzerSystemPrompt, userPrompt, &p); err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrExtractionFailure, err)
	}

	graph := types.NewKnowledgeGraph()

	for _, c := range p.Concepts {
		if c.Name == "" || c.Description == "" {
			a.log.Debugw("dropping concept with missing name or description", "name", c.Name)
			continue
		}
		graph.AddConcept(types.Concept{
			Name:          c.Name,
			Description:   c.Description,
			Complexity:    types.Complexity(c.Complexity),
			Prerequisites: c.Prerequisites,
			Examples:      c.Examples,
		})
	}

	for _, r := range p.Relationships {
		from := graph.FindConcept(r.From)
		to := graph.FindConcept(r.To)
		if from == nil || to == nil {
			// Unresolved names are dropped, not errored: extraction
			// output routinely references concepts it never listed.
			a.log.Debugw("dropping relationship with unresolved concept name",
				"from", r.From, "to", r.To, "type", r.Type)
			continue
		}
		graph.AddRelationship(from.ID, to.ID, r.Type)
	}

	graph.Metadata = p.Metadata

	a.log.Infow("knowledge graph extracted",
		"concepts", len(graph.Concepts),
		"relationships", len(graph.Relationships),
		"topic", graph.Metadata.MainTopic,
	)

	return graph, nil
}
