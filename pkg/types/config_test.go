// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"
	"time"
)

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	if cfg.Server.Port != 3000 || cfg.Server.Mode != "release" {
		t.Errorf("unexpected server defaults %+v", cfg.Server)
	}
	if cfg.Upload.MaxFileSize != 10<<20 || cfg.Upload.Dir != "uploads" {
		t.Errorf("unexpected upload defaults %+v", cfg.Upload)
	}
	if len(cfg.Upload.AllowedTypes) != 2 {
		t.Errorf("unexpected allowed types %v", cfg.Upload.AllowedTypes)
	}
	if cfg.AI.Model != "llama-3.3-70b-versatile" || cfg.AI.Temperature != 0.7 {
		t.Errorf("unexpected AI defaults %+v", cfg.AI)
	}
	if cfg.AI.Timeout != 90*time.Second || cfg.AI.MaxRetries != 3 {
		t.Errorf("unexpected AI defaults %+v", cfg.AI)
	}
	if cfg.Ingest.MinContentLength != 50 {
		t.Errorf("unexpected ingest defaults %+v", cfg.Ingest)
	}
	if cfg.Tasks.FlashcardCount != 4 || cfg.Tasks.SimplifierLength != "3-5 sentences" {
		t.Errorf("unexpected task defaults %+v", cfg.Tasks)
	}
}

func TestApplyDefaultsPreservesExplicitValues(t *testing.T) {
	cfg := Config{
		Server: ServerConfig{Port: 8080, Mode: "debug"},
		AI:     AIConfig{Model: "other-model", Temperature: 0.1},
		Tasks:  TasksConfig{FlashcardCount: 8},
	}
	cfg.ApplyDefaults()

	if cfg.Server.Port != 8080 || cfg.Server.Mode != "debug" {
		t.Errorf("explicit server settings overwritten: %+v", cfg.Server)
	}
	if cfg.AI.Model != "other-model" || cfg.AI.Temperature != 0.1 {
		t.Errorf("explicit AI settings overwritten: %+v", cfg.AI)
	}
	if cfg.Tasks.FlashcardCount != 8 {
		t.Errorf("explicit flashcard count overwritten: %+v", cfg.Tasks)
	}
}
