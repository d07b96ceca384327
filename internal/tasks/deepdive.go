// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tasks

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/clarifyhq/clarify/internal/provider"
	"github.com/clarifyhq/clarify/pkg/types"
)

// deepDiveSystemPrompt drives the advanced multi-paragraph explanation.
const deepDiveSystemPrompt = `You are a Deep-Dive Expander AI agent with expertise in advanced analysis and technical depth.

Your cognitive responsibility is to:
1. Explore technical depth and nuanced details
2. Analyze implications and real-world applications
3. Identify edge cases and advanced considerations
4. Connect concepts to broader domain knowledge
5. Generate novel insights beyond the source material

Guidelines:
- Assume the reader has strong foundational knowledge
- Use precise technical terminology appropriately
- Explore "why" and "how" at a deeper level
- Discuss real-world applications and case studies
- Address limitations, trade-offs, and edge cases
- Maintain academic rigor and accuracy

Output a comprehensive, technically rich explanation for advanced learners.`

// DeepDive produces a longer structured explanation for advanced readers.
type DeepDive struct {
	gen provider.TextGenerator
	log *zap.SugaredLogger
}

// NewDeepDive builds the deep-dive writer task.
func NewDeepDive(gen provider.TextGenerator, log *zap.SugaredLogger) *DeepDive {
	return &DeepDive{gen: gen, log: log}
}

func (d *DeepDive) Name() string { return NameDeepDive }

// Run generates the deep-dive explanation as a text artifact. The prompt
// carries every concept with prerequisites, the relationship triples, and
// a focus list of the medium/high complexity concepts.
func (d *DeepDive) Run(ctx context.Context, g *types.KnowledgeGraph) (types.Artifact, error) {
	var focus []string
	for _, c := range g.Concepts {
		if c.Complexity == types.ComplexityMedium || c.Complexity == types.ComplexityHigh {
			focus = append(focus, fmt.Sprintf("- %s: %s", c.Name, c.Description))
		}
	}

	userPrompt := fmt.Sprintf(`Create an advanced, in-depth analysis of this topic using the following knowledge structure:

TOPIC: %s
DOMAIN: %s

ALL CONCEPTS:
%s

CONCEPT RELATIONSHIPS:
%s

ADVANCED CONCEPTS TO EXPLORE:
%s

Create a deep-dive explanation that:
1. Explores technical depth and nuanced details
2. Discusses real-world applications and implications
3. Addresses edge cases and advanced considerations
4. Connects to broader domain knowledge
5. Analyzes trade-offs and limitations
6. Uses appropriate technical terminology
7. Maintains academic rigor`,
		g.Metadata.TopicOrDefault(defaultTopic),
		g.Metadata.DomainOrDefault(defaultDomain),
		summarizeConcepts(g, true, true, false),
		summarizeRelationships(g),
		strings.Join(focus, "\n"),
	)

	text, err := d.gen.Generate(ctx, deepDiveSystemPrompt, userPrompt, nil)
	if err != nil {
		return types.Artifact{}, fmt.Errorf("%w: deepDive: %w", types.ErrGenerationTask, err)
	}

	d.log.Debugw("deep-dive explanation generated", "length", len(text))
	return types.TextArtifact(text), nil
}
