// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tasks

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/clarifyhq/clarify/pkg/types"
)

// categoryKeywords maps topic keywords to catalog categories. Matching is
// first-hit over this ordered list against the lowercased main topic.
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{"ai", []string{"ai", "machine learning", "neural"}},
	{"math", []string{"math", "calculus", "algebra"}},
	{"physics", []string{"physics", "quantum", "gravity"}},
	{"biology", []string{"biology", "cell", "dna", "photosynthesis"}},
	{"chemistry", []string{"chemistry", "chemical", "molecule"}},
	{"science", []string{"science"}},
}

// videoCatalog is the curated set of verified public educational videos.
// The "general" entry doubles as the fallback for unmatched topics.
var videoCatalog = map[string][]types.Video{
	"ai": {
		{ID: "aircAruvnKk", Title: "But what is a neural network?", Level: "Beginner", Duration: "19:13", Channel: "3Blue1Brown"},
		{ID: "IHZwWFHWa-w", Title: "Machine Learning & Artificial Intelligence", Level: "Beginner", Duration: "11:50", Channel: "CrashCourse"},
		{ID: "R9OHn5ZF4Uo", Title: "MarI/O - Machine Learning for Video Games", Level: "Intermediate", Duration: "5:58", Channel: "SethBling"},
	},
	"science": {
		{ID: "yaqe1qesQ8c", Title: "The Immune System Explained", Level: "Beginner", Duration: "7:38", Channel: "Kurzgesagt"},
		{ID: "wvJAgrUBF4w", Title: "What Is Light?", Level: "Beginner", Duration: "5:23", Channel: "MinutePhysics"},
		{ID: "Xmq_FJd1oUQ", Title: "How Evolution Works", Level: "Intermediate", Duration: "12:15", Channel: "Kurzgesagt"},
	},
	"math": {
		{ID: "WUvTyaaNkzM", Title: "The Essence of Calculus", Level: "Beginner", Duration: "17:04", Channel: "3Blue1Brown"},
		{ID: "spUNpyF58BY", Title: "But what is a Fourier series?", Level: "Intermediate", Duration: "20:45", Channel: "3Blue1Brown"},
		{ID: "fNk_zzaMoSs", Title: "Dimensions", Level: "Advanced", Duration: "13:00", Channel: "Numberphile"},
	},
	"physics": {
		{ID: "1yaqUI4b974", Title: "What is Gravity?", Level: "Beginner", Duration: "6:22", Channel: "Veritasium"},
		{ID: "MO_Q_f1WgQI", Title: "Quantum Mechanics", Level: "Intermediate", Duration: "9:45", Channel: "MinutePhysics"},
		{ID: "p_o4aY7xkXg", Title: "Special Relativity", Level: "Advanced", Duration: "18:30", Channel: "SciShow"},
	},
	"biology": {
		{ID: "QImCld9YubE", Title: "DNA Structure and Replication", Level: "Beginner", Duration: "7:22", Channel: "CrashCourse"},
		{ID: "ydqReeTV_vk", Title: "Photosynthesis", Level: "Beginner", Duration: "13:37", Channel: "CrashCourse"},
		{ID: "dFCbJmgeHmA", Title: "Evolution: It's a Thing", Level: "Intermediate", Duration: "11:52", Channel: "CrashCourse"},
	},
	"chemistry": {
		{ID: "FSyAehMdpyI", Title: "The Periodic Table", Level: "Beginner", Duration: "11:23", Channel: "CrashCourse"},
		{ID: "yQP4UJhNn0I", Title: "Chemical Reactions", Level: "Beginner", Duration: "10:15", Channel: "CrashCourse"},
		{ID: "dqTTojTija8", Title: "Organic Chemistry", Level: "Advanced", Duration: "12:45", Channel: "Khan Academy"},
	},
	"general": {
		{ID: "aircAruvnKk", Title: "Introduction to Neural Networks", Level: "Beginner", Duration: "19:13", Channel: "3Blue1Brown"},
		{ID: "yaqe1qesQ8c", Title: "The Immune System Explained", Level: "Beginner", Duration: "7:38", Channel: "Kurzgesagt"},
		{ID: "WUvTyaaNkzM", Title: "The Essence of Calculus", Level: "Intermediate", Duration: "17:04", Channel: "3Blue1Brown"},
		{ID: "1yaqUI4b974", Title: "What is Gravity?", Level: "Intermediate", Duration: "6:22", Channel: "Veritasium"},
		{ID: "QImCld9YubE", Title: "DNA Structure and Replication", Level: "Advanced", Duration: "7:22", Channel: "CrashCourse"},
	},
}

// Videos recommends curated videos by keyword-matching the graph's main
// topic against a fixed category list. It makes no external calls and
// cannot fail: an unmatched or empty topic gets the general list.
type Videos struct {
	log *zap.SugaredLogger
}

// NewVideos builds the video recommender task.
func NewVideos(log *zap.SugaredLogger) *Videos {
	return &Videos{log: log}
}

func (v *Videos) Name() string { return NameVideos }

// Run selects the category list for the graph's topic.
func (v *Videos) Run(_ context.Context, g *types.KnowledgeGraph) (types.Artifact, error) {
	category := classifyTopic(g.Metadata.MainTopic)

	videos, ok := videoCatalog[category]
	if !ok {
		videos = videoCatalog["general"]
	}

	v.log.Debugw("curated videos selected", "category", category, "count", len(videos))
	return types.Artifact{Type: types.ArtifactVideos, Videos: videos}, nil
}

// classifyTopic maps a free-text topic to a catalog category.
func classifyTopic(topic string) string {
	lowered := strings.ToLower(topic)
	for _, entry := range categoryKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lowered, kw) {
				return entry.category
			}
		}
	}
	return "general"
}
