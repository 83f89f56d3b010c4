package analysis

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clearsig/clarity/pkg/catalog"
)

func TestAnalyze_CleanStatement(t *testing.T) {
	a := New(nil)
	r, err := a.Analyze("The weather is nice today")
	require.NoError(t, err)

	assert.Empty(t, r.Metaphors)
	assert.Empty(t, r.Chains)
	assert.Empty(t, r.Noise.NoiseTypes)
	assert.True(t, r.Noise.Coherent)
	assert.Equal(t, 0.0, r.Entropy.Total)
	assert.Equal(t, 1.0, r.Entropy.Clarity)
	assert.False(t, r.NeedsRestatement)
	assert.Empty(t, r.Restatement)
	assert.Equal(t, ToneNeutral, r.Tone.Dominant)
	assert.NotEmpty(t, r.ID)
}

func TestAnalyze_SingleMetaphor(t *testing.T) {
	a := New(nil)
	r, err := a.Analyze("AI must maintain boundaries with users")
	require.NoError(t, err)

	require.Len(t, r.Metaphors, 1)
	assert.Equal(t, "boundaries", r.Metaphors[0].Term)
	assert.Contains(t, r.Metaphors[0].Context, "boundaries")

	require.Len(t, r.Chains, 1)
	assert.Equal(t, []string{"consciousness", "safety", "individual"}, r.Chains[0].Forces)

	assert.InDelta(t, 0.15, r.Entropy.MetaphorEntropy, 1e-9)
	assert.InDelta(t, 1.3, r.Entropy.Amplification, 1e-9)
	assert.InDelta(t, 0.195, r.Entropy.Total, 1e-9)
	assert.InDelta(t, 0.805, r.Entropy.Clarity, 1e-9)
	assert.False(t, r.NeedsRestatement)
}

func TestAnalyze_MultibyteContext(t *testing.T) {
	a := New(nil)
	r, err := a.Analyze(strings.Repeat("é", 15) + " boundaries matter to " + strings.Repeat("ü", 30))
	require.NoError(t, err)

	require.Len(t, r.Metaphors, 1)
	ctx := r.Metaphors[0].Context
	assert.True(t, utf8.ValidString(ctx))
	assert.Contains(t, ctx, "ééé boundaries")
	// 20 runes of context on each side, not 20 bytes.
	assert.Contains(t, ctx, "matter to "+strings.Repeat("ü", 9))
	assert.NotContains(t, ctx, strings.Repeat("ü", 10))
}

func TestAnalyze_ChainedMetaphors(t *testing.T) {
	a := New(nil)
	r, err := a.Analyze("Centralized systems are more efficient")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"centralized", "efficiency"}, r.MetaphorNames())
	assert.InDelta(t, 0.30, r.Entropy.MetaphorEntropy, 1e-9)
	// both detections anchor three-element chains
	assert.InDelta(t, 1.6, r.Entropy.Amplification, 1e-9)
	assert.InDelta(t, 0.48, r.Entropy.Total, 1e-9)
	assert.True(t, r.NeedsRestatement)
	assert.Contains(t, r.Restatement, "coordination pattern variable")
}

func TestAnalyze_NoiseMarkers(t *testing.T) {
	a := New(nil)
	r, err := a.Analyze("I cannot discuss this because universally every human agrees")
	require.NoError(t, err)

	assert.ElementsMatch(t,
		[]string{NoiseInstitutionalShunt, NoiseHomogeneityAssumption},
		r.Noise.NoiseTypes)
	assert.InDelta(t, 0.2, r.Noise.Entropy, 1e-9)
	assert.InDelta(t, 0.8, r.Noise.SNR, 1e-9)
	assert.False(t, r.Noise.Coherent)
}

func TestAnalyze_NoiseTypeCountedOnce(t *testing.T) {
	a := New(nil)
	r, err := a.Analyze("I cannot do this, as an AI I cannot do that")
	require.NoError(t, err)

	assert.Equal(t, []string{NoiseInstitutionalShunt}, r.Noise.NoiseTypes)
	assert.InDelta(t, 0.1, r.Noise.Entropy, 1e-9)
	assert.True(t, r.Noise.Coherent)
}

func TestAnalyze_EntropyCapped(t *testing.T) {
	a := New(nil)
	r, err := a.Analyze(
		"Centralized intelligence requires boundaries for safety, natural competition, " +
			"individual ownership, objective progress, and rational efficiency")
	require.NoError(t, err)

	assert.GreaterOrEqual(t, r.Entropy.MetaphorCount, 10)
	assert.Equal(t, 1.0, r.Entropy.Total)
	assert.Equal(t, 0.0, r.Entropy.Clarity)
	assert.True(t, r.NeedsRestatement)
}

func TestAnalyze_EmptyStatement(t *testing.T) {
	a := New(nil)
	_, err := a.Analyze("   \t ")
	assert.Error(t, err)
}

func TestAnalyze_Cached(t *testing.T) {
	a := New(nil)
	r1, err := a.Analyze("AI must maintain boundaries")
	require.NoError(t, err)
	r2, err := a.Analyze("  AI must maintain boundaries  ")
	require.NoError(t, err)
	assert.Same(t, r1, r2)
}

func TestAnalyze_NormalizesInput(t *testing.T) {
	a := New(nil)
	// fullwidth forms fold to ASCII under NFKC
	r, err := a.Analyze("ＡＩ must maintain boundaries")
	require.NoError(t, err)
	assert.Equal(t, "AI must maintain boundaries", r.Statement)
}

func TestRestate(t *testing.T) {
	a := New(nil)
	out, err := a.Restate("AI must maintain Boundaries with users")
	require.NoError(t, err)
	assert.Equal(t, "AI must maintain permeability spectrum with users", out)
}

func TestRestate_AliasTermAbsent(t *testing.T) {
	a := New(nil)
	// "efficient" triggers the efficiency metaphor but the literal term
	// "efficiency" is absent, so that replacement is a no-op
	out, err := a.Restate("Centralized systems are more efficient")
	require.NoError(t, err)
	assert.Equal(t, "coordination pattern variable systems are more efficient", out)
}

func TestRestate_FirstOccurrenceOnly(t *testing.T) {
	a := New(nil)
	out, err := a.Restate("boundaries everywhere, boundaries forever")
	require.NoError(t, err)
	assert.Equal(t, "permeability spectrum everywhere, boundaries forever", out)
}

func TestTagTone(t *testing.T) {
	a := New(nil)
	r, err := a.Analyze("We are happy and grateful for this outcome")
	require.NoError(t, err)

	assert.Equal(t, "joy", r.Tone.Dominant)
	assert.Equal(t, 1.0, r.Tone.Intensity)
	require.Len(t, r.Tone.Tags, 1)
	assert.Equal(t, 2, r.Tone.Tags[0].Matches)
}

func TestTagTone_MixedCapsAtOne(t *testing.T) {
	a := New(nil)
	r, err := a.Analyze("I am afraid and angry about the sudden change and I mourn what was lost along the way")
	require.NoError(t, err)

	assert.NotEqual(t, ToneNeutral, r.Tone.Dominant)
	for _, tag := range r.Tone.Tags {
		assert.LessOrEqual(t, tag.Score, 1.0)
		assert.Greater(t, tag.Score, 0.0)
	}
}

func TestAutoLock(t *testing.T) {
	a := New(nil)
	locks, err := a.AutoLock("AI must maintain boundaries for safety")
	require.NoError(t, err)
	require.Len(t, locks, 2)

	active := a.Locks()
	require.Len(t, active, 2)
	assert.Equal(t, "boundaries", active[0].Name)
	assert.Equal(t, "permeability spectrum", active[0].Type)
	assert.Equal(t, "fixed separation", active[0].FromReified)
	assert.Equal(t, "safety", active[1].Name)
}

func TestSuggestLocks(t *testing.T) {
	a := New(nil)
	suggestions, err := a.SuggestLocks("AI must maintain boundaries")
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "boundaries", suggestions[0].Term)
	assert.Contains(t, suggestions[0].Rationale, "permeability spectrum")
	assert.Empty(t, a.Locks())
}

func TestLockVariable_Replaces(t *testing.T) {
	a := New(nil)
	a.LockVariable(&Lock{Name: "safety", Type: "signal clarity metric"})
	a.LockVariable(&Lock{Name: "safety", Type: "absence of noise"})
	active := a.Locks()
	require.Len(t, active, 1)
	assert.Equal(t, "absence of noise", active[0].Type)
}

func TestAnalyzeAll(t *testing.T) {
	a := New(nil)
	reports, err := a.AnalyzeAll([]string{
		"The weather is nice today",
		"Centralized systems are more efficient",
	})
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Greater(t, reports[0].Entropy.Clarity, reports[1].Entropy.Clarity)
}

func TestAnalyze_CustomCatalog(t *testing.T) {
	c, err := catalog.New([]*catalog.Metaphor{{
		Name:           "alignment",
		ReifiedAs:      "solvable technical property",
		FunctionalForm: "negotiated value agreement",
		Patterns:       []string{`\balignment\b`},
	}}, nil, nil)
	require.NoError(t, err)

	a := New(c)
	r, err := a.Analyze("alignment is nearly solved")
	require.NoError(t, err)
	assert.Equal(t, []string{"alignment"}, r.MetaphorNames())
	// no chain for the custom metaphor, no amplification
	assert.InDelta(t, 1.0, r.Entropy.Amplification, 1e-9)
}
