// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ArtifactType discriminates the variants of a generation artifact.
// Consumers switch on Type once; they never sniff the payload shape.
type ArtifactType string

const (
	// ArtifactText is plain prose (simplified or deep-dive explanations).
	ArtifactText ArtifactType = "text"
	// ArtifactMermaid is Mermaid diagram markup, usually inside a fenced block.
	ArtifactMermaid ArtifactType = "mermaid"
	// ArtifactImage is a reference (URL or data URI) to a generated raster image.
	ArtifactImage ArtifactType = "image"
	// ArtifactFlashcards is a fixed-size deck of question/answer pairs.
	ArtifactFlashcards ArtifactType = "flashcards"
	// ArtifactVideos is a curated list of video recommendations.
	ArtifactVideos ArtifactType = "videos"
	// ArtifactError marks a task that failed under the best-effort join.
	ArtifactError ArtifactType = "error"
)

// Flashcard is one question/answer pair in a deck.
type Flashcard struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

// Video is one curated video recommendation.
type Video struct {
	ID       string `json:"id" yaml:"id"`
	Title    string `json:"title" yaml:"title"`
	Level    string `json:"level" yaml:"level"`
	Duration string `json:"duration" yaml:"duration"`
	Channel  string `json:"channel" yaml:"channel"`
}

// Artifact is the tagged output of one generation task. Exactly one
// payload field is populated, selected by Type: Text for text, mermaid
// and image variants; Flashcards for flashcards; Videos for videos;
// Error for a failed task's sanitized message.
type Artifact struct {
	Type       ArtifactType `json:"type" yaml:"type"`
	Text       string       `json:"text,omitempty" yaml:"text,omitempty"`
	ImageURL   string       `json:"imageUrl,omitempty" yaml:"image_url,omitempty"`
	Flashcards []Flashcard  `json:"flashcards,omitempty" yaml:"flashcards,omitempty"`
	Videos     []Video      `json:"videos,omitempty" yaml:"videos,omitempty"`
	Error      string       `json:"error,omitempty" yaml:"error,omitempty"`
}

// TextArtifact wraps prose in a text artifact.
func TextArtifact(text string) Artifact {
	return Artifact{Type: ArtifactText, Text: text}
}

// ErrorArtifact wraps a sanitized failure message in an error artifact.
func ErrorArtifact(msg string) Artifact {
	return Artifact{Type: ArtifactError, Error: msg}
}

// IsError reports whether the artifact marks a failed task.
func (a Artifact) IsError() bool {
	return a.Type == ArtifactError
}

// PipelineResult is the aggregate outcome of one pipeline run.
type PipelineResult struct {
	Success bool `json:"success" yaml:"success"`

	// Duration is elapsed wall-clock time from the start of ingestion to
	// the end of aggregation, in seconds with two decimals (e.g. "4.21").
	Duration string `json:"duration" yaml:"duration"`

	KnowledgeGraph *KnowledgeGraph `json:"knowledgeGraph" yaml:"knowledge_graph"`

	// Outputs maps task name to that task's artifact. The key set is the
	// enabled-task configuration, not a fixed constant.
	Outputs map[string]Artifact `json:"outputs" yaml:"outputs"`
}
