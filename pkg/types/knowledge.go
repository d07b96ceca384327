// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Complexity grades how advanced a concept is for a learner.
type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// Valid reports whether c is one of the three known complexity tiers.
func (c Complexity) Valid() bool {
	return c == ComplexityLow || c == ComplexityMedium || c == ComplexityHigh
}

// Concept is a single extracted idea from a source document.
type Concept struct {
	// ID is the concept's position in the graph at insertion time.
	// IDs are never reused or renumbered once assigned.
	ID int `json:"id" yaml:"id"`

	// Name is the concept's label as extracted. Required.
	Name string `json:"name" yaml:"name"`

	// Description is a short factual description. Required.
	Description string `json:"description" yaml:"description"`

	// Complexity is low, medium, or high. Extraction output that omits
	// or mangles the field defaults to medium.
	Complexity Complexity `json:"complexity" yaml:"complexity"`

	// Prerequisites holds free-text concept names the learner should know
	// first. Names are not validated against the graph.
	Prerequisites []string `json:"prerequisites" yaml:"prerequisites"`

	// Examples holds concrete examples lifted from the document.
	Examples []string `json:"examples" yaml:"examples"`
}

// Relationship links two concepts by their IDs.
type Relationship struct {
	From int `json:"from" yaml:"from"`
	To   int `json:"to" yaml:"to"`

	// Type is a free-text label such as "requires", "enables", or
	// "relates_to". Any extractor-supplied value is kept as-is.
	Type string `json:"type" yaml:"type"`
}

// Metadata describes the document as a whole. Empty fields mean the
// extractor could not determine a value; consumers supply their own
// neutral defaults.
type Metadata struct {
	Domain         string `json:"domain,omitempty" yaml:"domain,omitempty"`
	MainTopic      string `json:"mainTopic,omitempty" yaml:"main_topic,omitempty"`
	TargetAudience string `json:"targetAudience,omitempty" yaml:"target_audience,omitempty"`
}

// TopicOrDefault returns the main topic, or fallback when unknown.
func (m Metadata) TopicOrDefault(fallback string) string {
	if m.MainTopic == "" {
		return fallback
	}
	return m.MainTopic
}

// DomainOrDefault returns the domain, or fallback when unknown.
func (m Metadata) DomainOrDefault(fallback string) string {
	if m.Domain == "" {
		return fallback
	}
	return m.Domain
}

// KnowledgeGraph is the structured knowledge extracted from one document.
// It is built once per pipeline run, in construction order: concepts,
// then relationships, then metadata. After construction every consumer
// treats it as read-only, which is what makes the generation fan-out
// safe without locks.
type KnowledgeGraph struct {
	Concepts      []Concept      `json:"concepts" yaml:"concepts"`
	Relationships []Relationship `json:"relationships" yaml:"relationships"`
	Metadata      Metadata       `json:"metadata" yaml:"metadata"`
}

// NewKnowledgeGraph returns an empty graph with non-nil slices so the
// JSON form always carries concepts/relationships arrays.
func NewKnowledgeGraph() *KnowledgeGraph {
	return &KnowledgeGraph{
		Concepts:      []Concept{},
		Relationships: []Relationship{},
	}
}

// AddConcept appends a concept and assigns it the next sequential ID.
// The caller-supplied ID field is ignored.
func (g *KnowledgeGraph) AddConcept(c Concept) int {
	c.ID = len(g.Concepts)
	if !c.Complexity.Valid() {
		c.Complexity = ComplexityMedium
	}
	if c.Prerequisites == nil {
		c.Prerequisites = []string{}
	}
	if c.Examples == nil {
		c.Examples = []string{}
	}
	g.Concepts = append(g.Concepts, c)
	return c.ID
}

// AddRelationship appends a relationship between two concept IDs.
// Name resolution against the concept list happens before this call;
// IDs are trusted here.
func (g *KnowledgeGraph) AddRelationship(from, to int, relType string) {
	g.Relationships = append(g.Relationships, Relationship{From: from, To: to, Type: relType})
}

// FindConcept returns the first concept with the given name, or nil.
func (g *KnowledgeGraph) FindConcept(name string) *Concept {
	for i := range g.Concepts {
		if g.Concepts[i].Name == name {
			return &g.Concepts[i]
		}
	}
	return nil
}

// ConceptByID returns the concept with the given ID, or nil.
func (g *KnowledgeGraph) ConceptByID(id int) *Concept {
	if id < 0 || id >= len(g.Concepts) {
		return nil
	}
	return &g.Concepts[id]
}

// ConceptsByComplexity returns the concepts at the given tier, in
// insertion order.
func (g *KnowledgeGraph) ConceptsByComplexity(level Complexity) []Concept {
	var out []Concept
	for _, c := range g.Concepts {
		if c.Complexity == level {
			out = append(out, c)
		}
	}
	return out
}

// TopConcepts returns the first n concepts. Insertion order doubles as an
// importance ranking: extraction lists the most important concepts first.
func (g *KnowledgeGraph) TopConcepts(n int) []Concept {
	if n > len(g.Concepts) {
		n = len(g.Concepts)
	}
	return g.Concepts[:n]
}

// Valid reports whether the graph can be handed to the generation tasks:
// at least one concept, and every concept has a non-empty name and
// description.
func (g *KnowledgeGraph) Valid() bool {
	if len(g.Concepts) == 0 {
		return false
	}
	for _, c := range g.Concepts {
		if c.Name == "" || c.Description == "" {
			return false
		}
	}
	return true
}
