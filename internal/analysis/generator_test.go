package analysis

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/pathwise/internal/catalog"
)

func newTestGenerator(seed uint64) *Generator {
	return NewGenerator(catalog.Default(), rand.NewPCG(seed, seed+1))
}

var fillers = []string{"Problem Solving", "Analytical Thinking"}

func TestBuildSkillDataProperties(t *testing.T) {
	inputs := [][]string{
		nil,
		{"Python"},
		{"Go", "Rust"},
		{"Python", "Problem Solving"},
		{"A", "B", "C", "D", "E"},
		{"A", "B", "C", "D", "E", "F"},
		{"Analytical Thinking", "Problem Solving", "SQL"},
	}

	for seed := uint64(1); seed <= 50; seed++ {
		g := newTestGenerator(seed)
		for _, skills := range inputs {
			data := g.BuildSkillData(skills)

			require.LessOrEqual(t, len(data), 7)
			fillerCount := 0
			for _, d := range data {
				if slices.Contains(skills, d.Name) {
					assert.GreaterOrEqual(t, d.Pct, 50, "skill %q", d.Name)
					assert.Less(t, d.Pct, 90, "skill %q", d.Name)
					continue
				}
				require.Contains(t, fillers, d.Name, "unexpected entry %q", d.Name)
				fillerCount++
				assert.GreaterOrEqual(t, d.Pct, 45, "filler %q", d.Name)
				assert.Less(t, d.Pct, 75, "filler %q", d.Name)
			}
			assert.LessOrEqual(t, fillerCount, 2)

			for i := 1; i < len(data); i++ {
				assert.GreaterOrEqual(t, data[i-1].Pct, data[i].Pct, "not sorted: %v", data)
			}
		}
	}
}

func TestBuildSkillDataCounts(t *testing.T) {
	g := newTestGenerator(7)

	tests := []struct {
		name   string
		skills []string
		want   int
	}{
		{"empty gets both fillers", nil, 2},
		{"one skill", []string{"Python"}, 3},
		{"five skills fill to seven", []string{"A", "B", "C", "D", "E"}, 7},
		{"six skills take one filler", []string{"A", "B", "C", "D", "E", "F"}, 7},
		{"only first six scored", []string{"A", "B", "C", "D", "E", "F", "G", "H"}, 7},
		{"listed filler not repeated", []string{"Problem Solving"}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := g.BuildSkillData(tt.skills)
			assert.Len(t, data, tt.want)

			names := make([]string, len(data))
			for i, d := range data {
				names[i] = d.Name
			}
			assert.NotContains(t, names, "G")
			assert.NotContains(t, names, "H")
		})
	}
}

func TestBuildSkillDataFillerNotInUserList(t *testing.T) {
	g := newTestGenerator(3)
	// The filler appears beyond the first six skills; it must still be
	// treated as user-listed.
	skills := []string{"A", "B", "C", "D", "E", "F", "Problem Solving"}
	data := g.BuildSkillData(skills)

	var names []string
	for _, d := range data {
		names = append(names, d.Name)
	}
	assert.Len(t, data, 7)
	assert.NotContains(t, names, "Problem Solving")
	assert.Contains(t, names, "Analytical Thinking")
}

func TestBuildSkillDataDeterministicWithSeed(t *testing.T) {
	skills := []string{"Python", "SQL", "Excel"}
	a := newTestGenerator(99).BuildSkillData(skills)
	b := newTestGenerator(99).BuildSkillData(skills)
	assert.Equal(t, a, b)
}

func TestCareerMatchesPenalty(t *testing.T) {
	g := newTestGenerator(1)
	cat := catalog.Default()

	tests := []struct {
		name      string
		skills    []string
		penalized bool
	}{
		{"code signal", []string{"JavaScript"}, false},
		{"data signal", []string{"Statistics"}, false},
		{"both", []string{"SQL"}, false},
		{"signal among others", []string{"Painting", "C++"}, false},
		{"no signal", []string{"Communication", "Leadership"}, true},
		{"empty", nil, true},
		{"case mismatch is no signal", []string{"python"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.CareerMatches(tt.skills)
			require.Len(t, got, 4)
			for i, c := range got {
				want := cat.Careers[i].Match
				if tt.penalized {
					want = max(30, want-30)
				}
				assert.Equal(t, cat.Careers[i].Title, c.Title)
				assert.Equal(t, want, c.Match, "career %q", c.Title)
			}
			assert.Equal(t, tt.penalized, g.Penalized(tt.skills))
		})
	}
}

func TestCareerMatchesDoesNotMutateCatalog(t *testing.T) {
	g := newTestGenerator(1)
	before := catalog.Default().Careers[0].Match

	got := g.CareerMatches([]string{"Painting"})
	got[0].Tags[0] = "changed"

	assert.Equal(t, before, catalog.Default().Careers[0].Match)
	assert.Equal(t, "Python", catalog.Default().Careers[0].Tags[0])

	// A later unpenalized call sees the original values.
	assert.Equal(t, 91, g.CareerMatches([]string{"Python"})[0].Match)
}

func TestCareerMatchesPenaltyFloor(t *testing.T) {
	cat := *catalog.Default()
	cat.Careers = []catalog.Career{{Title: "Low", Match: 45, Tier: "low", Description: "d"}}
	g := NewGenerator(&cat, rand.NewPCG(1, 2))

	got := g.CareerMatches(nil)
	require.Len(t, got, 1)
	assert.Equal(t, 30, got[0].Match)
}

func TestGapAnalysis(t *testing.T) {
	g := newTestGenerator(1)
	cat := catalog.Default()

	inputs := [][]string{
		nil,
		{"Python"},
		{"Python", "SQL"},
		{"Python", "SQL", "Excel"},
		{"Python", "SQL", "Excel", "Go", "Rust"},
	}
	for _, skills := range inputs {
		gaps := g.GapAnalysis(skills)
		require.Len(t, gaps, 3)

		n := min(3, len(skills))
		assert.Equal(t, GapStrengths, gaps[0].Kind)
		assert.Equal(t, len(skills[:n]), len(gaps[0].Items))
		for i := 0; i < n; i++ {
			assert.Equal(t, skills[i], gaps[0].Items[i])
		}
		assert.Equal(t, cat.Gaps.Develop, gaps[1].Items)
		assert.Equal(t, cat.Gaps.Acquire, gaps[2].Items)
		assert.Equal(t, "✓", gaps[0].Prefix)
		assert.Equal(t, "→", gaps[1].Prefix)
		assert.Equal(t, "+", gaps[2].Prefix)
	}
}

func TestGenerateUsesFallbackForEmptyList(t *testing.T) {
	g := newTestGenerator(5)
	res := g.Generate(nil)

	assert.Equal(t, []string{"Python", "Data Analysis", "Excel"}, res.Skills)
	assert.False(t, res.Penalized)
	assert.Equal(t, "Data Scientist", res.TopCareer())
	assert.Equal(t, []string{"Python", "Data Analysis", "Excel"}, res.Gaps[0].Items)
	assert.Len(t, res.Bars, 5)
}

func TestTopCareerEmpty(t *testing.T) {
	assert.Equal(t, "", Result{}.TopCareer())
}
