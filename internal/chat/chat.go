// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package chat answers follow-up questions about a finished learning
// session. The learning context travels with every request; the package
// holds no state, so concurrent users can never leak context into each
// other's answers.
package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/clarifyhq/clarify/internal/provider"
	"github.com/clarifyhq/clarify/pkg/types"
)

// LearningContext is the client-supplied snapshot of the artifacts the
// user is studying. All fields are optional.
type LearningContext struct {
	Visual     string            `json:"visual"`
	Simplified string            `json:"simplified"`
	DeepDive   string            `json:"deepDive"`
	Flashcards []types.Flashcard `json:"flashcards"`
}

// Request is one chat turn: a question plus the context it refers to.
type Request struct {
	Question string          `json:"question"`
	Context  LearningContext `json:"context"`
}

const chatSystemPromptTmpl = `You are a helpful educational assistant for the Clarify learning platform.

STRICT RULES:
1. Answer questions ONLY based on the learning content provided below.
2. If a question is outside the scope of the content, politely say: "That's beyond the current topic. I can only answer questions about the content you just learned."
3. Be clear, concise, and student-friendly.
4. Use simple language.
5. If asked about concepts in the content, explain them clearly.

LEARNING CONTENT:
%s`

// Answer generates a context-bound reply to the question in req.
func Answer(ctx context.Context, gen provider.TextGenerator, req Request) (string, error) {
	if strings.TrimSpace(req.Question) == "" {
		return "", fmt.Errorf("question is required")
	}

	system := fmt.Sprintf(chatSystemPromptTmpl, formatContext(req.Context))

	answer, err := gen.Generate(ctx, system, req.Question, nil)
	if err != nil {
		return "", fmt.Errorf("generating chat answer: %w", err)
	}
	return strings.TrimSpace(answer), nil
}

// formatContext renders the learning context as labeled prompt sections.
func formatContext(lc LearningContext) string {
	var b strings.Builder

	b.WriteString("VISUAL LEARNING:\n")
	b.WriteString(lc.Visual)
	b.WriteString("\n\nSIMPLIFIED EXPLANATION:\n")
	b.WriteString(lc.Simplified)
	b.WriteString("\n\nDEEP-DIVE EXPLANATION:\n")
	b.WriteString(lc.DeepDive)
	b.WriteString("\n\nFLASHCARDS:\n")
	for i, c := range lc.Flashcards {
		fmt.Fprintf(&b, "%d. Q: %s A: %s\n", i+1, c.Question, c.Answer)
	}

	return b.String()
}
