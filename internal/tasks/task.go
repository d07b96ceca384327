// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tasks holds the generation task set: independent consumers of
// one read-only knowledge graph, each producing a single learning
// artifact. Tasks never depend on each other's output, which is what lets
// the orchestrator run them concurrently.
package tasks

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/clarifyhq/clarify/internal/provider"
	"github.com/clarifyhq/clarify/pkg/types"
)

// Task names double as output keys in the aggregated pipeline result.
const (
	NameSimplified = "simplified"
	NameDeepDive   = "deepDive"
	NameVisual     = "visual"
	NameFlashcards = "flashcards"
	NameVideos     = "videos"
)

// Neutral defaults for metadata fields the extractor left unknown.
const (
	defaultTopic  = "Educational Content"
	defaultDomain = "General"
)

// Task is one member of the generation task set. Run must be safe to
// execute concurrently with the other tasks against the same graph, and
// must not mutate the graph.
type Task interface {
	Name() string
	Run(ctx context.Context, g *types.KnowledgeGraph) (types.Artifact, error)
}

// DefaultSet builds the full task set wired to the given providers.
func DefaultSet(gen provider.TextGenerator, img provider.ImageGenerator, cfg types.TasksConfig, log *zap.SugaredLogger) []Task {
	return []Task{
		NewSimplifier(gen, cfg.SimplifierLength, log),
		NewDeepDive(gen, log),
		NewVisual(gen, img, log),
		NewFlashcards(gen, cfg.FlashcardCount, log),
		NewVideos(log),
	}
}

// Filter returns the tasks whose names appear in enabled, preserving the
// set's order. An empty enabled list means every task.
func Filter(set []Task, enabled []string) []Task {
	if len(enabled) == 0 {
		return set
	}
	want := make(map[string]bool, len(enabled))
	for _, name := range enabled {
		want[name] = true
	}
	var out []Task
	for _, t := range set {
		if want[t.Name()] {
			out = append(out, t)
		}
	}
	return out
}

// summarizeConcepts renders the graph's concepts as prompt bullet lines.
// Complexity tags and prerequisite/example lists are included when the
// corresponding flags are set.
func summarizeConcepts(g *types.KnowledgeGraph, withComplexity, withPrereqs, withExamples bool) string {
	var b strings.Builder
	for _, c := range g.Concepts {
		if withComplexity {
			fmt.Fprintf(&b, "- %s [%s]: %s", c.Name, c.Complexity, c.Description)
		} else {
			fmt.Fprintf(&b, "- %s: %s", c.Name, c.Description)
		}
		if withPrereqs && len(c.Prerequisites) > 0 {
			fmt.Fprintf(&b, "\n  Prerequisites: %s", strings.Join(c.Prerequisites, ", "))
		}
		if withExamples && len(c.Examples) > 0 {
			fmt.Fprintf(&b, "\n  Examples: %s", strings.Join(c.Examples, ", "))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// summarizeRelationships renders relationship triples as prompt lines,
// resolving concept IDs back to names.
func summarizeRelationships(g *types.KnowledgeGraph) string {
	var b strings.Builder
	for _, r := range g.Relationships {
		from := g.ConceptByID(r.From)
		to := g.ConceptByID(r.To)
		if from == nil || to == nil {
			continue
		}
		fmt.Fprintf(&b, "  %s -> %s -> %s\n", from.Name, r.Type, to.Name)
	}
	return strings.TrimRight(b.String(), "\n")
}
