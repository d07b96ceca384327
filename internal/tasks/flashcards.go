// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/clarifyhq/clarify/internal/provider"
	"github.com/clarifyhq/clarify/pkg/types"
)

// flashcardsSystemPromptTmpl drives exam-oriented flashcard generation.
// The count is injected so the configured deck size and the instruction
// never drift apart.
const flashcardsSystemPromptTmpl = `You are an expert at creating exam-ready flashcards for effective learning.

Your STRICT requirements:
1. Generate EXACTLY %d flashcards. No more, no less.
2. Each flashcard should have:
   - A clear, specific question or term
   - A concise, memorable answer (1-2 sentences max)
3. Questions must be exam-oriented and test recall
4. Answers must be factually accurate and easy to memorize

Output as JSON array:
[
  {"question": "What is X?", "answer": "X is..."},
  {"question": "Define Y", "answer": "Y is defined as..."}
]

Do NOT include explanations or commentary.
Focus on the %d most important concepts for memorization.`

// defaultFlashcardCount is the deck size when none is configured.
const defaultFlashcardCount = 4

// Flashcards produces a fixed-size deck of question/answer pairs. The
// exact-count guarantee is enforced here, not by the orchestrator: extra
// provider cards are truncated, missing ones padded with placeholders.
type Flashcards struct {
	gen   provider.TextGenerator
	count int
	log   *zap.SugaredLogger
}

// NewFlashcards builds the flashcard task with the configured deck size.
func NewFlashcards(gen provider.TextGenerator, count int, log *zap.SugaredLogger) *Flashcards {
	if count <= 0 {
		count = defaultFlashcardCount
	}
	return &Flashcards{gen: gen, count: count, log: log}
}

func (f *Flashcards) Name() string { return NameFlashcards }

// flashcardsPayload tolerates the two shapes providers actually return:
// a bare array, or an object with a "flashcards" key.
type flashcardsPayload struct {
	cards []types.Flashcard
}

func (p *flashcardsPayload) UnmarshalJSON(data []byte) error {
	var bare []types.Flashcard
	if err := json.Unmarshal(data, &bare); err == nil {
		p.cards = bare
		return nil
	}
	var wrapped struct {
		Flashcards []types.Flashcard `json:"flashcards"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	p.cards = wrapped.Flashcards
	return nil
}

// Run generates the deck and normalizes it to exactly the configured count.
func (f *Flashcards) Run(ctx context.Context, g *types.KnowledgeGraph) (types.Artifact, error) {
	userPrompt := fmt.Sprintf(`Create exam-ready flashcards for this topic:

TOPIC: %s

KEY CONCEPTS (top %d):
%s

Generate EXACTLY %d flashcards as a JSON array.`,
		g.Metadata.TopicOrDefault(defaultTopic),
		f.count,
		summarizeTopConcepts(g, f.count),
		f.count,
	)

	systemPrompt := fmt.Sprintf(flashcardsSystemPromptTmpl, f.count, f.count)

	var p flashcardsPayload
	if err := f.gen.GenerateJSON(ctx, systemPrompt, userPrompt, &p); err != nil {
		return types.Artifact{}, fmt.Errorf("%w: flashcards: %w", types.ErrGenerationTask, err)
	}

	cards := p.cards
	if len(cards) > f.count {
		cards = cards[:f.count]
	}
	for len(cards) < f.count {
		cards = append(cards, types.Flashcard{
			Question: fmt.Sprintf("Key Concept %d", len(cards)+1),
			Answer:   "Important information about this topic.",
		})
	}

	f.log.Debugw("flashcards generated", "count", len(cards))
	return types.Artifact{Type: types.ArtifactFlashcards, Flashcards: cards}, nil
}

// summarizeTopConcepts renders the first n concepts as prompt bullets.
func summarizeTopConcepts(g *types.KnowledgeGraph, n int) string {
	sub := types.KnowledgeGraph{Concepts: g.TopConcepts(n)}
	return summarizeConcepts(&sub, false, false, false)
}
