// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/clarifyhq/clarify/internal/ingest"
	"github.com/clarifyhq/clarify/internal/tasks"
	"github.com/clarifyhq/clarify/pkg/types"
)

// stubAnalyzer returns a fixed graph and counts calls.
type stubAnalyzer struct {
	graph *types.KnowledgeGraph
	err   error
	calls atomic.Int32
}

func (s *stubAnalyzer) Analyze(ctx context.Context, cleanText string) (*types.KnowledgeGraph, error) {
	s.calls.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	return s.graph, nil
}

// stubTask returns a fixed artifact after an optional delay.
type stubTask struct {
	name     string
	artifact types.Artifact
	err      error
	delay    time.Duration
}

func (s *stubTask) Name() string { return s.name }

func (s *stubTask) Run(ctx context.Context, g *types.KnowledgeGraph) (types.Artifact, error) {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	return s.artifact, s.err
}

func photosynthesisGraph() *types.KnowledgeGraph {
	g := types.NewKnowledgeGraph()
	g.AddConcept(types.Concept{Name: "Photosynthesis", Description: "How plants make food."})
	g.AddConcept(types.Concept{Name: "Chlorophyll", Description: "Green pigment."})
	g.AddConcept(types.Concept{Name: "Sunlight", Description: "Energy source."})
	g.AddRelationship(1, 2, "requires")
	g.Metadata = types.Metadata{Domain: "Biology", MainTopic: "Photosynthesis"}
	return g
}

func longText() string {
	return strings.Repeat("photosynthesis converts light into chemical energy ", 3)
}

func testPipeline(analyzer Analyzer, taskSet []tasks.Task) *Pipeline {
	return New(ingest.New(types.IngestConfig{}), analyzer, taskSet, zap.NewNop().Sugar())
}

func TestProcessTextShortInputRejectedBeforeExtraction(t *testing.T) {
	analyzer := &stubAnalyzer{graph: photosynthesisGraph()}
	p := testPipeline(analyzer, nil)

	_, err := p.ProcessText(context.Background(), "too short")
	if !errors.Is(err, types.ErrContentTooShort) {
		t.Fatalf("expected ErrContentTooShort, got %v", err)
	}
	if analyzer.calls.Load() != 0 {
		t.Errorf("extractor must not run on rejected input, got %d calls", analyzer.calls.Load())
	}
}

func TestProcessTextEmptyGraphRejected(t *testing.T) {
	analyzer := &stubAnalyzer{graph: types.NewKnowledgeGraph()}
	p := testPipeline(analyzer, nil)

	_, err := p.ProcessText(context.Background(), longText())
	if !errors.Is(err, types.ErrEmptyKnowledge) {
		t.Errorf("expected ErrEmptyKnowledge, got %v", err)
	}
}

func TestProcessTextExtractionFailurePropagates(t *testing.T) {
	analyzer := &stubAnalyzer{err: types.ErrExtractionFailure}
	p := testPipeline(analyzer, nil)

	_, err := p.ProcessText(context.Background(), longText())
	if !errors.Is(err, types.ErrExtractionFailure) {
		t.Errorf("expected ErrExtractionFailure, got %v", err)
	}
}

func TestProcessTextAggregatesAllTasks(t *testing.T) {
	taskSet := []tasks.Task{
		&stubTask{name: "simplified", artifact: types.TextArtifact("simple")},
		&stubTask{name: "deepDive", artifact: types.TextArtifact("deep")},
		&stubTask{name: "videos", artifact: types.Artifact{Type: types.ArtifactVideos}},
	}
	p := testPipeline(&stubAnalyzer{graph: photosynthesisGraph()}, taskSet)

	result, err := p.ProcessText(context.Background(), longText())
	if err != nil {
		t.Fatalf("ProcessText: %v", err)
	}
	if !result.Success {
		t.Error("expected a successful result")
	}
	if len(result.Outputs) != 3 {
		t.Fatalf("expected 3 outputs, got %d", len(result.Outputs))
	}
	if result.Outputs["simplified"].Text != "simple" {
		t.Errorf("unexpected simplified output %+v", result.Outputs["simplified"])
	}
	if result.KnowledgeGraph == nil || len(result.KnowledgeGraph.Concepts) != 3 {
		t.Errorf("expected the knowledge graph in the result")
	}
}

func TestTaskFailureBecomesErrorArtifact(t *testing.T) {
	taskSet := []tasks.Task{
		&stubTask{name: "simplified", artifact: types.TextArtifact("ok")},
		&stubTask{name: "deepDive", err: &types.ProviderError{Provider: "groq", StatusCode: 500}},
		&stubTask{name: "flashcards", err: errors.New("unexpected")},
	}
	p := testPipeline(&stubAnalyzer{graph: photosynthesisGraph()}, taskSet)

	result, err := p.ProcessText(context.Background(), longText())
	if err != nil {
		t.Fatalf("one failed task must not fail the run: %v", err)
	}

	if !result.Outputs["deepDive"].IsError() {
		t.Errorf("expected an error artifact, got %+v", result.Outputs["deepDive"])
	}
	if got := result.Outputs["deepDive"].Error; got != "groq provider returned status 500" {
		t.Errorf("unexpected sanitized message %q", got)
	}
	if got := result.Outputs["flashcards"].Error; got != "generation failed" {
		t.Errorf("expected the generic message for unknown errors, got %q", got)
	}
	if result.Outputs["simplified"].Text != "ok" {
		t.Errorf("healthy tasks must be unaffected")
	}
}

func TestGenerateRunsTasksConcurrently(t *testing.T) {
	const delay = 50 * time.Millisecond
	taskSet := []tasks.Task{
		&stubTask{name: "a", artifact: types.TextArtifact("a"), delay: delay},
		&stubTask{name: "b", artifact: types.TextArtifact("b"), delay: delay},
		&stubTask{name: "c", artifact: types.TextArtifact("c"), delay: delay},
		&stubTask{name: "d", artifact: types.TextArtifact("d"), delay: delay},
	}
	p := testPipeline(&stubAnalyzer{graph: photosynthesisGraph()}, taskSet)

	start := time.Now()
	result, err := p.ProcessText(context.Background(), longText())
	elapsed := time.Since(start)

	if err != nil {
		t.Fatal(err)
	}
	if len(result.Outputs) != 4 {
		t.Fatalf("expected 4 outputs, got %d", len(result.Outputs))
	}
	// Sequential execution would take at least 4 * delay.
	if elapsed >= 4*delay {
		t.Errorf("tasks appear to run sequentially: %v elapsed", elapsed)
	}
}

func TestDurationFormat(t *testing.T) {
	p := testPipeline(&stubAnalyzer{graph: photosynthesisGraph()}, nil)

	base := time.Now()
	ticks := []time.Time{base, base.Add(1500 * time.Millisecond)}
	p.now = func() time.Time {
		next := ticks[0]
		if len(ticks) > 1 {
			ticks = ticks[1:]
		}
		return next
	}

	result, err := p.ProcessText(context.Background(), longText())
	if err != nil {
		t.Fatal(err)
	}
	if result.Duration != "1.50" {
		t.Errorf("expected duration \"1.50\", got %q", result.Duration)
	}
}

func TestProcessFileParseFailure(t *testing.T) {
	p := testPipeline(&stubAnalyzer{graph: photosynthesisGraph()}, nil)

	_, err := p.ProcessFile(context.Background(), "nope.docx")
	if !errors.Is(err, types.ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}
