// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ServerConfig holds settings for the HTTP delivery layer.
type ServerConfig struct {
	// Port is the TCP port the server listens on (default 3000).
	Port int `json:"port" yaml:"port" mapstructure:"port"`

	// Mode selects gin's mode: "debug" or "release" (default "release").
	Mode string `json:"mode" yaml:"mode" mapstructure:"mode"`

	// ShutdownTimeout bounds graceful shutdown (default 10s).
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// UploadConfig holds settings for uploaded-document handling.
type UploadConfig struct {
	// Dir is the directory for temporary uploads (default "uploads").
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`

	// MaxFileSize is the upload size cap in bytes (default 10 MiB).
	MaxFileSize int64 `json:"max_file_size" yaml:"max_file_size" mapstructure:"max_file_size"`

	// AllowedTypes lists accepted MIME types
	// (default application/pdf and text/plain).
	AllowedTypes []string `json:"allowed_types" yaml:"allowed_types" mapstructure:"allowed_types"`
}

// AIConfig holds shared settings for calls to the text-generation provider.
type AIConfig struct {
	// Model is the provider model identifier
	// (default "llama-3.3-70b-versatile").
	Model string `json:"model" yaml:"model" mapstructure:"model"`

	// APIKey authenticates against the provider. Usually loaded from
	// .secrets/groq-api-key rather than the config file.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`

	// Temperature is the default sampling temperature (default 0.7).
	Temperature float64 `json:"temperature" yaml:"temperature" mapstructure:"temperature"`

	// MaxOutputTokens caps completion length (default 2048).
	MaxOutputTokens int `json:"max_output_tokens" yaml:"max_output_tokens" mapstructure:"max_output_tokens"`

	// Timeout is the per-request HTTP timeout (default 90s).
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// MaxRetries is the retry budget for rate-limited calls (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`
}

// IngestConfig holds settings for the document ingestor.
type IngestConfig struct {
	// MinContentLength is the minimum normalized text length accepted,
	// in characters (default 50). Enforced for uploads and for direct
	// text submission alike.
	MinContentLength int `json:"min_content_length" yaml:"min_content_length" mapstructure:"min_content_length"`
}

// TasksConfig holds settings for the generation task set.
type TasksConfig struct {
	// Enabled lists the task names to run. An empty list enables every
	// registered task.
	Enabled []string `json:"enabled" yaml:"enabled" mapstructure:"enabled"`

	// FlashcardCount is the exact deck size the flashcard task produces
	// (default 4). Too few provider cards are padded, too many truncated.
	FlashcardCount int `json:"flashcard_count" yaml:"flashcard_count" mapstructure:"flashcard_count"`

	// SimplifierLength is an opaque target-length hint forwarded to the
	// simplifier prompt (default "3-5 sentences").
	SimplifierLength string `json:"simplifier_length" yaml:"simplifier_length" mapstructure:"simplifier_length"`
}

// Config groups all component configurations for the service.
type Config struct {
	Server ServerConfig `json:"server" yaml:"server" mapstructure:"server"`
	Upload UploadConfig `json:"upload" yaml:"upload" mapstructure:"upload"`
	AI     AIConfig     `json:"ai" yaml:"ai" mapstructure:"ai"`
	Ingest IngestConfig `json:"ingest" yaml:"ingest" mapstructure:"ingest"`
	Tasks  TasksConfig  `json:"tasks" yaml:"tasks" mapstructure:"tasks"`
}

// ApplyDefaults fills zero-valued fields with their documented defaults.
func (c *Config) ApplyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 3000
	}
	if c.Server.Mode == "" {
		c.Server.Mode = "release"
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Upload.Dir == "" {
		c.Upload.Dir = "uploads"
	}
	if c.Upload.MaxFileSize == 0 {
		c.Upload.MaxFileSize = 10 << 20
	}
	if len(c.Upload.AllowedTypes) == 0 {
		c.Upload.AllowedTypes = []string{"application/pdf", "text/plain"}
	}
	if c.AI.Model == "" {
		c.AI.Model = "llama-3.3-70b-versatile"
	}
	if c.AI.Temperature == 0 {
		c.AI.Temperature = 0.7
	}
	if c.AI.MaxOutputTokens == 0 {
		c.AI.MaxOutputTokens = 2048
	}
	if c.AI.Timeout == 0 {
		c.AI.Timeout = 90 * time.Second
	}
	if c.AI.MaxRetries == 0 {
		c.AI.MaxRetries = 3
	}
	if c.Ingest.MinContentLength == 0 {
		c.Ingest.MinContentLength = 50
	}
	if c.Tasks.FlashcardCount == 0 {
		c.Tasks.FlashcardCount = 4
	}
	if c.Tasks.SimplifierLength == "" {
		c.Tasks.SimplifierLength = "3-5 sentences"
	}
}
