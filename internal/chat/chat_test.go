// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package chat

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/clarifyhq/clarify/internal/provider"
	"github.com/clarifyhq/clarify/pkg/types"
)

type stubGen struct {
	response   string
	err        error
	lastSystem string
	lastUser   string
}

func (s *stubGen) Generate(ctx context.Context, system, user string, opts *provider.GenerateOptions) (string, error) {
	s.lastSystem, s.lastUser = system, user
	return s.response, s.err
}

func (s *stubGen) GenerateJSON(ctx context.Context, system, user string, v any) error {
	return errors.New("not used")
}

func TestAnswer(t *testing.T) {
	gen := &stubGen{response: "  Chlorophyll absorbs light.  "}

	req := Request{
		Question: "What does chlorophyll do?",
		Context: LearningContext{
			Simplified: "Plants eat sunlight.",
			DeepDive:   "The Calvin cycle fixes carbon.",
			Flashcards: []types.Flashcard{{Question: "What is chlorophyll?", Answer: "A green pigment."}},
		},
	}

	answer, err := Answer(context.Background(), gen, req)
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if answer != "Chlorophyll absorbs light." {
		t.Errorf("expected trimmed answer, got %q", answer)
	}
	if gen.lastUser != req.Question {
		t.Errorf("question not forwarded, got %q", gen.lastUser)
	}

	for _, want := range []string{
		"Plants eat sunlight.",
		"The Calvin cycle fixes carbon.",
		"Q: What is chlorophyll? A: A green pigment.",
	} {
		if !strings.Contains(gen.lastSystem, want) {
			t.Errorf("expected %q in the system prompt", want)
		}
	}
}

func TestAnswerEmptyQuestion(t *testing.T) {
	for _, q := range []string{"", "   ", "\n\t"} {
		_, err := Answer(context.Background(), &stubGen{response: "x"}, Request{Question: q})
		if err == nil {
			t.Errorf("question %q: expected an error", q)
		}
	}
}

func TestAnswerProviderFailure(t *testing.T) {
	_, err := Answer(context.Background(), &stubGen{err: errors.New("boom")}, Request{Question: "q"})
	if err == nil {
		t.Fatal("expected an error")
	}
}

func TestFormatContextSections(t *testing.T) {
	got := formatContext(LearningContext{
		Visual:     "graph LR",
		Simplified: "simple",
		DeepDive:   "deep",
		Flashcards: []types.Flashcard{
			{Question: "Q1", Answer: "A1"},
			{Question: "Q2", Answer: "A2"},
		},
	})

	for _, section := range []string{
		"VISUAL LEARNING:\ngraph LR",
		"SIMPLIFIED EXPLANATION:\nsimple",
		"DEEP-DIVE EXPLANATION:\ndeep",
		"1. Q: Q1 A: A1",
		"2. Q: Q2 A: A2",
	} {
		if !strings.Contains(got, section) {
			t.Errorf("missing section %q in:\n%s", section, got)
		}
	}
}
