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

// visualSystemPrompt drives Mermaid diagram generation.
const visualSystemPrompt = `You are an expert at creating educational Mermaid diagrams.

STRICT OUTPUT RULES:
1. Generate ONLY valid Mermaid syntax
2. Use simple, clean diagrams
3. Choose diagram type based on content:
   - Processes/Steps: flowchart (graph TD or graph LR)
   - Concepts/Relationships: mind map or graph
   - Comparisons: simple flowchart

4. Styling rules:
   - Use hex colors: #6366f1, #8b5cf6, #06b6d4, #10b981
   - Keep node labels SHORT (max 3-4 words)
   - Use simple arrows: --> or ---
   - Maximum 6-8 nodes

CRITICAL: Output ONLY the mermaid code block. No explanations.`

// visualConceptLimit caps how many concepts feed the diagram prompt.
const visualConceptLimit = 5

// Visual produces the visual-content artifact: a generated raster image
// when the image provider supplies one, otherwise Mermaid diagram markup.
// The task degrades rather than failing: a dead image provider falls back
// to the diagram path, and a dead text provider falls back to a canned
// diagram.
type Visual struct {
	gen provider.TextGenerator
	img provider.ImageGenerator
	log *zap.SugaredLogger
}

// NewVisual builds the visual-content task. img may be nil when no image
// backend is configured.
func NewVisual(gen provider.TextGenerator, img provider.ImageGenerator, log *zap.SugaredLogger) *Visual {
	return &Visual{gen: gen, img: img, log: log}
}

func (v *Visual) Name() string { return NameVisual }

// Run produces the visual artifact. It never returns an error artifact
// unless both the image and diagram paths are unusable and no fallback
// can be built.
func (v *Visual) Run(ctx context.Context, g *types.KnowledgeGraph) (types.Artifact, error) {
	topic := g.Metadata.TopicOrDefault(defaultTopic)

	if v.img != nil {
		prompt := fmt.Sprintf("A clean educational diagram explaining %s, flat design, labeled boxes and arrows", topic)
		ref, err := v.img.GenerateImage(ctx, prompt, topic)
		switch {
		case err != nil:
			v.log.Warnw("image generation failed, falling back to diagram markup", "error", err)
		case ref != "":
			return types.Artifact{Type: types.ArtifactImage, ImageURL: ref, Text: topic}, nil
		}
	}

	names := make([]string, 0, visualConceptLimit)
	for _, c := range g.TopConcepts(visualConceptLimit) {
		names = append(names, truncate(c.Name, 20))
	}

	userPrompt := fmt.Sprintf(`Create a Mermaid flowchart for: %s

Main concepts: %s

Generate a simple flowchart showing how these concepts relate.
Use graph LR (left to right).
Keep labels under 4 words.
Output ONLY the mermaid code block.`, topic, strings.Join(names, ", "))

	text, err := v.gen.Generate(ctx, visualSystemPrompt, userPrompt, nil)
	if err != nil {
		v.log.Warnw("diagram generation failed, using fallback diagram", "error", err)
		return types.Artifact{Type: types.ArtifactMermaid, Text: fallbackDiagram(topic)}, nil
	}

	return types.Artifact{Type: types.ArtifactMermaid, Text: strings.TrimSpace(text)}, nil
}

// fallbackDiagram is the canned learn/practice/master flowchart shown when
// the provider cannot produce one.
func fallbackDiagram(topic string) string {
	return fmt.Sprintf("```mermaid\n"+
		"graph LR\n"+
		"    A[%s] --> B[Learn]\n"+
		"    B --> C[Practice]\n"+
		"    C --> D[Master]\n"+
		"    style A fill:#6366f1,stroke:#fff,color:#fff\n"+
		"    style B fill:#8b5cf6,stroke:#fff,color:#fff\n"+
		"    style C fill:#06b6d4,stroke:#fff,color:#fff\n"+
		"    style D fill:#10b981,stroke:#fff,color:#fff\n"+
		"```", topic)
}

// truncate clips s to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
