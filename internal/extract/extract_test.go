// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/clarifyhq/clarify/internal/provider"
	"github.com/clarifyhq/clarify/pkg/types"
)

// stubGenerator replays a canned JSON payload through the same decode path
// the real client uses.
type stubGenerator struct {
	response string
	err      error
	calls    int
}

func (s *stubGenerator) Generate(ctx context.Context, system, user string, opts *provider.GenerateOptions) (string, error) {
	s.calls++
	return s.response, s.err
}

func (s *stubGenerator) GenerateJSON(ctx context.Context, system, user string, v any) error {
	s.calls++
	if s.err != nil {
		return s.err
	}
	return provider.DecodeJSON(s.response, v)
}

const photosynthesisPayload = `{
	"concepts": [
		{"name": "Photosynthesis", "description": "How plants make food from light.", "complexity": "medium", "prerequisites": [], "examples": ["leaves in sunlight"]},
		{"name": "Chlorophyll", "description": "The green pigment that absorbs light.", "complexity": "low", "prerequisites": ["Photosynthesis"], "examples": []},
		{"name": "Sunlight", "description": "The energy source driving the reaction."}
	],
	"relationships": [
		{"from": "Chlorophyll", "to": "Sunlight", "type": "requires"},
		{"from": "Photosynthesis", "to": "Calvin Cycle", "type": "includes"}
	],
	"metadata": {"domain": "Biology", "mainTopic": "Photosynthesis", "targetAudience": "students"}
}`

func testAnalyzer(gen provider.TextGenerator) *Analyzer {
	return NewAnalyzer(gen, zap.NewNop().Sugar())
}

func TestAnalyzeBuildsGraph(t *testing.T) {
	gen := &stubGenerator{response: photosynthesisPayload}
	graph, err := testAnalyzer(gen).Analyze(context.Background(), "some document text")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if len(graph.Concepts) != 3 {
		t.Fatalf("expected 3 concepts, got %d", len(graph.Concepts))
	}
	for i, c := range graph.Concepts {
		if c.ID != i {
			t.Errorf("concept %q: expected ID %d, got %d", c.Name, i, c.ID)
		}
	}

	// Unspecified complexity falls back to medium.
	if got := graph.Concepts[2].Complexity; got != types.ComplexityMedium {
		t.Errorf("expected default complexity medium, got %q", got)
	}

	// The second relationship references a concept that was never listed
	// and is dropped without error.
	if len(graph.Relationships) != 1 {
		t.Fatalf("expected 1 resolved relationship, got %d", len(graph.Relationships))
	}
	rel := graph.Relationships[0]
	if rel.From != 1 || rel.To != 2 || rel.Type != "requires" {
		t.Errorf("unexpected relationship %+v", rel)
	}

	if graph.Metadata.MainTopic != "Photosynthesis" || graph.Metadata.Domain != "Biology" {
		t.Errorf("metadata not carried over: %+v", graph.Metadata)
	}
}

func TestAnalyzeDropsIncompleteConcepts(t *testing.T) {
	gen := &stubGenerator{response: `{
		"concepts": [
			{"name": "", "description": "nameless"},
			{"name": "Kept", "description": "complete"},
			{"name": "NoDescription", "description": ""}
		],
		"relationships": [],
		"metadata": {}
	}`}

	graph, err := testAnalyzer(gen).Analyze(context.Background(), "text")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(graph.Concepts) != 1 || graph.Concepts[0].Name != "Kept" {
		t.Errorf("expected only the complete concept, got %+v", graph.Concepts)
	}
	if graph.Concepts[0].ID != 0 {
		t.Errorf("IDs must restart from 0 after drops, got %d", graph.Concepts[0].ID)
	}
}

func TestAnalyzeFencedResponse(t *testing.T) {
	gen := &stubGenerator{response: "```json\n" + photosynthesisPayload + "\n```"}
	graph, err := testAnalyzer(gen).Analyze(context.Background(), "text")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(graph.Concepts) != 3 {
		t.Errorf("expected 3 concepts, got %d", len(graph.Concepts))
	}
}

func TestAnalyzeProviderFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("boom")}
	_, err := testAnalyzer(gen).Analyze(context.Background(), "text")
	if !errors.Is(err, types.ErrExtractionFailure) {
		t.Errorf("expected ErrExtractionFailure, got %v", err)
	}
}

func TestAnalyzeUndecodableResponse(t *testing.T) {
	gen := &stubGenerator{response: "the model rambled instead of answering"}
	_, err := testAnalyzer(gen).Analyze(context.Background(), "text")
	if !errors.Is(err, types.ErrExtractionFailure) {
		t.Errorf("expected ErrExtractionFailure, got %v", err)
	}
}

func TestAnalyzeDeterministicForFixedResponse(t *testing.T) {
	gen := &stubGenerator{response: photosynthesisPayload}
	a := testAnalyzer(gen)

	first, err := a.Analyze(context.Background(), "text")
	if err != nil {
		t.Fatal(err)
	}
	second, err := a.Analyze(context.Background(), "text")
	if err != nil {
		t.Fatal(err)
	}

	if len(first.Concepts) != len(second.Concepts) || len(first.Relationships) != len(second.Relationships) {
		t.Errorf("repeated runs diverged: %d/%d vs %d/%d",
			len(first.Concepts), len(first.Relationships),
			len(second.Concepts), len(second.Relationships))
	}
	for i := range first.Concepts {
		if first.Concepts[i].ID != second.Concepts[i].ID || first.Concepts[i].Name != second.Concepts[i].Name {
			t.Errorf("concept %d differs between runs", i)
		}
	}
}
