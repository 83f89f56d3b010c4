package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin(t *testing.T) {
	c := Builtin()
	assert.Len(t, c.Names(), 13)
	assert.Len(t, c.Emotions(), 6)

	m, ok := c.Get("boundaries")
	require.True(t, ok)
	assert.Equal(t, "fixed separation", m.ReifiedAs)
	assert.Equal(t, "permeability spectrum", m.FunctionalForm)
	assert.NotEmpty(t, m.Patterns)
}

func TestMetaphorMatch(t *testing.T) {
	c := Builtin()
	m, ok := c.Get("boundaries")
	require.True(t, ok)

	start, end, ok := m.Match("AI must maintain Boundaries with users")
	assert.True(t, ok)
	assert.Equal(t, "Boundaries", "AI must maintain Boundaries with users"[start:end])

	_, _, ok = m.Match("the weather is nice today")
	assert.False(t, ok)
}

func TestMetaphorMatch_WordBoundary(t *testing.T) {
	c := Builtin()
	m, ok := c.Get("ownership")
	require.True(t, ok)

	// "own" must not match inside "town" or "brown"
	_, _, ok = m.Match("the town was quiet and brown")
	assert.False(t, ok)

	_, _, ok = m.Match("they own the building")
	assert.True(t, ok)
}

func TestChain(t *testing.T) {
	c := Builtin()
	assert.Equal(t, []string{"consciousness", "safety", "individual"}, c.Chain("boundaries"))
	assert.Empty(t, c.Chain("no-such-metaphor"))
}

func TestEmotionCount(t *testing.T) {
	c := Builtin()
	for _, e := range c.Emotions() {
		if e.Name != "fear" {
			continue
		}
		assert.Equal(t, 2, e.Count("I am afraid, so afraid of the dark"))
		assert.Equal(t, 0, e.Count("fearless is not a keyword"))
	}
}

func TestSearchByFunction(t *testing.T) {
	c := Builtin()
	names := c.SearchByFunction("hierarch")
	assert.Contains(t, names, "centralized")
	assert.Contains(t, names, "intelligence")
	assert.Empty(t, c.SearchByFunction(""))
}

func TestStats(t *testing.T) {
	s := Builtin().Stats()
	assert.Equal(t, 13, s.Metaphors)
	assert.Equal(t, 13, s.Chains)
	assert.InDelta(t, 3.0, s.AvgForcedDeps, 0.01)
}

func TestNew_InvalidPattern(t *testing.T) {
	_, err := New([]*Metaphor{{
		Name:           "broken",
		ReifiedAs:      "x",
		FunctionalForm: "y",
		Patterns:       []string{`\b(`},
	}}, nil, nil)
	assert.Error(t, err)
}

func TestNew_MissingPatterns(t *testing.T) {
	_, err := New([]*Metaphor{{Name: "empty"}}, nil, nil)
	assert.Error(t, err)
}

func TestMerge_OverrideWins(t *testing.T) {
	override, err := New([]*Metaphor{{
		Name:           "boundaries",
		ReifiedAs:      "custom form",
		FunctionalForm: "custom function",
		Patterns:       []string{`\bfences\b`},
	}}, map[string][]string{"boundaries": {"safety"}}, nil)
	require.NoError(t, err)

	merged := Builtin().Merge(override)
	assert.Len(t, merged.Names(), 13)

	m, ok := merged.Get("boundaries")
	require.True(t, ok)
	assert.Equal(t, "custom form", m.ReifiedAs)

	_, _, ok = m.Match("good fences make good neighbors")
	assert.True(t, ok)
	assert.Equal(t, []string{"safety"}, merged.Chain("boundaries"))
}
