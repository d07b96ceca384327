// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline sequences the document-to-artifacts run: ingest,
// extract, concurrent generation fan-out, and aggregation.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/clarifyhq/clarify/internal/tasks"
	"github.com/clarifyhq/clarify/pkg/types"
)

// Ingestor is the stage-1 contract: extract raw text from a file, then
// normalize and length-check it. Satisfied by *ingest.Ingestor.
type Ingestor interface {
	Parse(path string) (string, error)
	Preprocess(raw string) (string, error)
}

// Analyzer is the stage-2 contract: build a knowledge graph from clean
// text. Satisfied by *extract.Analyzer.
type Analyzer interface {
	Analyze(ctx context.Context, cleanText string) (*types.KnowledgeGraph, error)
}

// Pipeline is the orchestrator. Stages 1 (ingest) and 2 (extract) run
// sequentially and abort the run on failure. Stage 3 fans every enabled
// task out concurrently against the same read-only graph under a
// best-effort join: a failed task contributes an error artifact in its
// slot and the run still succeeds. The policy is uniform across tasks.
type Pipeline struct {
	ingestor Ingestor
	analyzer Analyzer
	tasks    []tasks.Task
	log      *zap.SugaredLogger

	// now is injectable so duration tests control the clock.
	now func() time.Time
}

// New builds a pipeline over the given stages and task set.
func New(ingestor Ingestor, analyzer Analyzer, taskSet []tasks.Task, log *zap.SugaredLogger) *Pipeline {
	return &Pipeline{
		ingestor: ingestor,
		analyzer: analyzer,
		tasks:    taskSet,
		log:      log,
		now:      time.Now,
	}
}

// ProcessFile runs the full pipeline on an uploaded document. The caller
// owns the file and its cleanup; the pipeline only reads it.
func (p *Pipeline) ProcessFile(ctx context.Context, path string) (*types.PipelineResult, error) {
	start := p.now()

	raw, err := p.ingestor.Parse(path)
	if err != nil {
		return nil, err
	}

	return p.run(ctx, start, raw)
}

// ProcessText runs the pipeline on directly submitted text. The text goes
// through the same preprocessing and minimum-length check as an upload.
func (p *Pipeline) ProcessText(ctx context.Context, raw string) (*types.PipelineResult, error) {
	return p.run(ctx, p.now(), raw)
}

// run executes preprocess, extract, fan-out, and aggregation.
func (p *Pipeline) run(ctx context.Context, start time.Time, raw string) (*types.PipelineResult, error) {
	clean, err := p.ingestor.Preprocess(raw)
	if err != nil {
		return nil, err
	}
	p.log.Infow("document ingested", "characters", len(clean))

	graph, err := p.analyzer.Analyze(ctx, clean)
	if err != nil {
		return nil, err
	}
	if !graph.Valid() {
		return nil, fmt.Errorf("%w: cannot generate artifacts from an empty graph", types.ErrEmptyKnowledge)
	}

	outputs := p.generate(ctx, graph)

	elapsed := p.now().Sub(start)
	result := &types.PipelineResult{
		Success:        true,
		Duration:       fmt.Sprintf("%.2f", elapsed.Seconds()),
		KnowledgeGraph: graph,
		Outputs:        outputs,
	}

	p.log.Infow("pipeline complete",
		"duration", result.Duration,
		"concepts", len(graph.Concepts),
		"tasks", len(outputs),
	)
	return result, nil
}

// generate fans the task set out concurrently and joins best-effort.
// Each goroutine writes only its own slot, and the graph is read-only,
// so no locking is needed.
func (p *Pipeline) generate(ctx context.Context, graph *types.KnowledgeGraph) map[string]types.Artifact {
	slots := make([]types.Artifact, len(p.tasks))

	var g errgroup.Group
	for i, task := range p.tasks {
		g.Go(func() error {
			artifact, err := task.Run(ctx, graph)
			if err != nil {
				p.log.Warnw("generation task failed", "task", task.Name(), "error", err)
				artifact = types.ErrorArtifact(sanitize(err))
			}
			slots[i] = artifact
			return nil
		})
	}
	// Tasks report failure through their slot, never through the group.
	_ = g.Wait()

	outputs := make(map[string]types.Artifact, len(p.tasks))
	for i, task := range p.tasks {
		outputs[task.Name()] = slots[i]
	}
	return outputs
}

// sanitize reduces a task error to a caller-safe message: the error class
// plus the provider status when present, never a raw body or stack.
func sanitize(err error) string {
	var perr *types.ProviderError
	if errors.As(err, &perr) {
		if perr.StatusCode != 0 {
			return fmt.Sprintf("%s provider returned status %d", perr.Provider, perr.StatusCode)
		}
		return fmt.Sprintf("%s provider call failed", perr.Provider)
	}
	return "generation failed"
}
