package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// Catalog holds every fixed table the demo draws from.
type Catalog struct {
	Version        int         `yaml:"version" json:"version"`
	Personas       []Persona   `yaml:"personas" json:"personas"`
	DefaultSkills  []string    `yaml:"default_skills" json:"default_skills"`
	FallbackSkills []string    `yaml:"fallback_skills" json:"fallback_skills"`
	InferredSkills []string    `yaml:"inferred_skills" json:"inferred_skills"`
	Signals        Signals     `yaml:"signals" json:"signals"`
	Careers        []Career    `yaml:"careers" json:"careers"`
	Gaps           Gaps        `yaml:"gaps" json:"gaps"`
	Roadmap        []Phase     `yaml:"roadmap" json:"roadmap"`
	Chat           ChatContent `yaml:"chat" json:"chat"`
	Landing        Landing     `yaml:"landing" json:"landing"`
}

// Persona is a selectable user role. It is display-only.
type Persona struct {
	ID    string `yaml:"id" json:"id"`
	Label string `yaml:"label" json:"label"`
	Blurb string `yaml:"blurb" json:"blurb"`
}

// Signals are the vocabularies that decide whether career matches are penalized.
type Signals struct {
	Code []string `yaml:"code" json:"code"`
	Data []string `yaml:"data" json:"data"`
}

// Career is one entry of the career catalogue.
type Career struct {
	Title       string   `yaml:"title" json:"title"`
	Match       int      `yaml:"match" json:"match"`
	Tier        string   `yaml:"tier" json:"tier"`
	Description string   `yaml:"description" json:"description"`
	Tags        []string `yaml:"tags" json:"tags"`
}

// Gaps holds the static gap-analysis buckets.
type Gaps struct {
	Develop []string `yaml:"develop" json:"develop"`
	Acquire []string `yaml:"acquire" json:"acquire"`
}

// Phase is one roadmap phase.
type Phase struct {
	Label string `yaml:"label" json:"label"`
	Title string `yaml:"title" json:"title"`
	Done  bool   `yaml:"done" json:"done"`
	Items []Item `yaml:"items" json:"items"`
}

// Item is one row inside a roadmap phase.
type Item struct {
	Icon   string `yaml:"icon" json:"icon"`
	Name   string `yaml:"name" json:"name"`
	Detail string `yaml:"detail" json:"detail"`
	Badge  string `yaml:"badge" json:"badge"`
}

// ChatContent holds the counselor's canned material.
type ChatContent struct {
	Greeting string `yaml:"greeting" json:"greeting"`
	Canned   []QA   `yaml:"canned" json:"canned"`
	Rules    []Rule `yaml:"rules" json:"rules"`
	Fallback string `yaml:"fallback" json:"fallback"`
}

// QA is a canned question and its verbatim answer.
type QA struct {
	Question string `yaml:"question" json:"question"`
	Answer   string `yaml:"answer" json:"answer"`
}

// Rule is a keyword fallback. Keywords are matched as substrings of the
// lowercased message.
type Rule struct {
	Name     string   `yaml:"name" json:"name"`
	Keywords []string `yaml:"keywords" json:"keywords"`
	Reply    string   `yaml:"reply" json:"reply"`
}

// Landing is the content of the welcome screen.
type Landing struct {
	Headline string    `yaml:"headline" json:"headline"`
	Tagline  string    `yaml:"tagline" json:"tagline"`
	Features []Feature `yaml:"features" json:"features"`
	Stats    []Stat    `yaml:"stats" json:"stats"`
}

// Feature is a blurb on the landing screen.
type Feature struct {
	Title string `yaml:"title" json:"title"`
	Text  string `yaml:"text" json:"text"`
}

// Stat is a landing-screen counter and its final display text.
type Stat struct {
	Label string `yaml:"label" json:"label"`
	Value string `yaml:"value" json:"value"`
}

// StatTexts returns the final counter texts in display order.
func (c *Catalog) StatTexts() []string {
	out := make([]string, len(c.Landing.Stats))
	for i, s := range c.Landing.Stats {
		out[i] = s.Value
	}
	return out
}

// Questions returns the canned questions in quick-prompt order.
func (c *Catalog) Questions() []string {
	out := make([]string, len(c.Chat.Canned))
	for i, qa := range c.Chat.Canned {
		out[i] = qa.Question
	}
	return out
}

// PersonaByID looks up a persona, returning false when unknown.
func (c *Catalog) PersonaByID(id string) (Persona, bool) {
	for _, p := range c.Personas {
		if p.ID == id {
			return p, true
		}
	}
	return Persona{}, false
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
)

// Default returns the embedded catalogue. The embedded file is part of the
// build, so a decode failure here is a programming error.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(embeddedCatalog)
		if err != nil {
			panic(fmt.Sprintf("embedded catalog: %v", err))
		}
		defaultCat = c
	})
	return defaultCat
}

// Embedded returns the raw embedded YAML.
func Embedded() []byte {
	return embeddedCatalog
}

// Load returns the embedded catalogue when path is empty, otherwise it reads
// and validates the YAML file at path.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes and validates catalogue YAML.
func Parse(raw []byte) (*Catalog, error) {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, &ErrInvalidCatalog{Err: fmt.Errorf("parse yaml: %w", err)}
	}

	// The schema validator works on JSON values, so round-trip the YAML tree.
	jsonBytes, err := json.Marshal(doc)
	if err != nil {
		return nil, &ErrInvalidCatalog{Err: fmt.Errorf("convert to json: %w", err)}
	}
	var jsonDoc any
	if err := json.Unmarshal(jsonBytes, &jsonDoc); err != nil {
		return nil, &ErrInvalidCatalog{Err: fmt.Errorf("convert to json: %w", err)}
	}
	if err := validate(jsonDoc); err != nil {
		return nil, err
	}

	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, &ErrInvalidCatalog{Err: fmt.Errorf("decode catalog: %w", err)}
	}
	return &c, nil
}
