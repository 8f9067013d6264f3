// Package analysis turns a skill list into proficiency bars, career matches
// and a gap breakdown. Nothing here is real inference: proficiency is random
// and careers come from the catalogue.
package analysis

import (
	"cmp"
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/abhisek/pathwise/internal/catalog"
)

const (
	maxScoredSkills = 6
	maxSkillBars    = 7

	// Penalty applied to every career when no code or data signal is present.
	penalty     = 30
	penaltyBase = 30

	maxCareers   = 4
	maxStrengths = 3
)

// SkillScore is one proficiency bar.
type SkillScore struct {
	Name string
	Pct  int
}

// CareerMatch is a career card as shown to the user.
type CareerMatch struct {
	Title       string
	Match       int
	Tier        string
	Description string
	Tags        []string
}

// GapKind names a gap bucket.
type GapKind string

const (
	GapStrengths GapKind = "strengths"
	GapDevelop   GapKind = "develop"
	GapAcquire   GapKind = "acquire"
)

// GapBucket is one column of the gap breakdown.
type GapBucket struct {
	Kind   GapKind
	Icon   string
	Label  string
	Prefix string
	Items  []string
}

// Result is the full output of one analysis.
type Result struct {
	Skills    []string
	Bars      []SkillScore
	Careers   []CareerMatch
	Gaps      []GapBucket
	Penalized bool
}

// TopCareer returns the pre-selected career title, or "" when there are none.
func (r Result) TopCareer() string {
	if len(r.Careers) == 0 {
		return ""
	}
	return r.Careers[0].Title
}

// Generator produces results from a catalogue and a random source. It is
// safe for concurrent use.
type Generator struct {
	cat *catalog.Catalog

	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator returns a generator drawing from src.
func NewGenerator(cat *catalog.Catalog, src rand.Source) *Generator {
	return &Generator{cat: cat, rng: rand.New(src)}
}

// NewSource returns a PCG source for seed, or a randomly seeded one when
// seed is zero.
func NewSource(seed uint64) rand.Source {
	if seed == 0 {
		return rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}

func (g *Generator) intn(lo, span int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return lo + g.rng.IntN(span)
}

// BuildSkillData scores up to six skills in [50,90), then adds inferred
// soft skills in [45,75) while fewer than seven bars exist and the user
// has not listed them. Bars are sorted by score, highest first; ties keep
// insertion order.
func (g *Generator) BuildSkillData(skills []string) []SkillScore {
	n := min(len(skills), maxScoredSkills)
	data := make([]SkillScore, 0, maxSkillBars)
	for _, name := range skills[:n] {
		data = append(data, SkillScore{Name: name, Pct: g.intn(50, 40)})
	}

	for _, name := range g.cat.InferredSkills {
		if len(data) < maxSkillBars && !slices.Contains(skills, name) {
			data = append(data, SkillScore{Name: name, Pct: g.intn(45, 30)})
		}
	}

	slices.SortStableFunc(data, func(a, b SkillScore) int {
		return cmp.Compare(b.Pct, a.Pct)
	})
	return data
}

// Penalized reports whether skills lack both a code and a data signal.
func (g *Generator) Penalized(skills []string) bool {
	for _, s := range skills {
		if slices.Contains(g.cat.Signals.Code, s) || slices.Contains(g.cat.Signals.Data, s) {
			return false
		}
	}
	return true
}

// CareerMatches returns the first four catalogue careers, in catalogue
// order. Without a code or data signal every match drops by 30, floored at
// 30. The catalogue itself is never modified.
func (g *Generator) CareerMatches(skills []string) []CareerMatch {
	penalized := g.Penalized(skills)

	n := min(len(g.cat.Careers), maxCareers)
	out := make([]CareerMatch, n)
	for i, c := range g.cat.Careers[:n] {
		match := c.Match
		if penalized {
			match = max(penaltyBase, match-penalty)
		}
		out[i] = CareerMatch{
			Title:       c.Title,
			Match:       match,
			Tier:        c.Tier,
			Description: c.Description,
			Tags:        slices.Clone(c.Tags),
		}
	}
	return out
}

// GapAnalysis returns the strengths, develop and acquire buckets.
func (g *Generator) GapAnalysis(skills []string) []GapBucket {
	n := min(len(skills), maxStrengths)
	return []GapBucket{
		{Kind: GapStrengths, Icon: "💪", Label: "Strengths", Prefix: "✓", Items: slices.Clone(skills[:n])},
		{Kind: GapDevelop, Icon: "🔧", Label: "Develop Further", Prefix: "→", Items: slices.Clone(g.cat.Gaps.Develop)},
		{Kind: GapAcquire, Icon: "🎯", Label: "Acquire New", Prefix: "+", Items: slices.Clone(g.cat.Gaps.Acquire)},
	}
}

// Generate runs all three steps. An empty list is replaced by the
// catalogue's fallback skills.
func (g *Generator) Generate(skills []string) Result {
	if len(skills) == 0 {
		skills = g.cat.FallbackSkills
	}
	skills = slices.Clone(skills)
	return Result{
		Skills:    skills,
		Bars:      g.BuildSkillData(skills),
		Careers:   g.CareerMatches(skills),
		Gaps:      g.GapAnalysis(skills),
		Penalized: g.Penalized(skills),
	}
}
