// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tasks

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/clarifyhq/clarify/internal/provider"
	"github.com/clarifyhq/clarify/pkg/types"
)

// simplifierSystemPrompt drives the beginner-oriented explanation.
const simplifierSystemPrompt = `You are a Simplification Specialist AI agent with expertise in making complex topics accessible.

Your cognitive responsibility is to:
1. Transform technical concepts into beginner-friendly explanations
2. Create relatable analogies and everyday examples
3. Build explanations progressively from simple to complex
4. Remove jargon while preserving factual accuracy
5. Use storytelling and concrete scenarios

Guidelines:
- Use "you" to make it personal and engaging
- Start with familiar concepts before introducing new ones
- Use analogies from everyday life (cooking, sports, nature, etc.)
- Break down complex ideas into bite-sized pieces
- Maintain 100% factual accuracy - never oversimplify to the point of being wrong
- Write in a warm, encouraging tone

Output a clear, flowing explanation that a beginner can understand.`

// Simplifier produces a short beginner-oriented explanation of the topic.
type Simplifier struct {
	gen        provider.TextGenerator
	lengthHint string
	log        *zap.SugaredLogger
}

// NewSimplifier builds the simplifier task. lengthHint is an opaque
// target-length instruction forwarded to the prompt, e.g. "3-5 sentences".
func NewSimplifier(gen provider.TextGenerator, lengthHint string, log *zap.SugaredLogger) *Simplifier {
	if lengthHint == "" {
		lengthHint = "3-5 sentences"
	}
	return &Simplifier{gen: gen, lengthHint: lengthHint, log: log}
}

func (s *Simplifier) Name() string { return NameSimplified }

// Run generates the simplified explanation as a text artifact.
func (s *Simplifier) Run(ctx context.Context, g *types.KnowledgeGraph) (types.Artifact, error) {
	userPrompt := fmt.Sprintf(`Create a beginner-friendly explanation of this topic using the following knowledge structure:

TOPIC: %s
DOMAIN: %s

KEY CONCEPTS:
%s

Create a simplified, engaging explanation of about %s that:
1. Starts with the basics and builds up progressively
2. Uses analogies and real-world examples
3. Explains technical terms in simple language
4. Maintains factual accuracy
5. Is encouraging and accessible to beginners`,
		g.Metadata.TopicOrDefault(defaultTopic),
		g.Metadata.DomainOrDefault(defaultDomain),
		summarizeConcepts(g, true, false, false),
		s.lengthHint,
	)

	text, err := s.gen.Generate(ctx, simplifierSystemPrompt, userPrompt, nil)
	if err != nil {
		return types.Artifact{}, fmt.Errorf("%w: simplified: %w", types.ErrGenerationTask, err)
	}

	s.log.Debugw("simplified explanation generated", "length", len(text))
	return types.TextArtifact(text), nil
}
