package analysis

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/clearsig/clarity/pkg/catalog"
)

const (
	// coherenceThreshold is the maximum base entropy a statement can carry
	// and still count as coherent.
	coherenceThreshold = 0.15

	// clarityThreshold is the clarity below which a statement needs
	// restatement.
	clarityThreshold = 0.7

	// metaphorEntropyWeight is the entropy added per detected metaphor.
	metaphorEntropyWeight = 0.15

	// chainAmplificationStep is the amplification added per forced
	// dependency of a detected metaphor.
	chainAmplificationStep = 0.1
)

// Report is the complete result of analyzing one statement.
type Report struct {
	ID               string        `json:"id" yaml:"id"`
	Created          time.Time     `json:"created" yaml:"created"`
	Statement        string        `json:"statement" yaml:"statement"`
	Noise            *NoiseAudit   `json:"noise" yaml:"noise"`
	Metaphors        []*Detection  `json:"metaphors,omitempty" yaml:"metaphors,omitempty"`
	Chains           []*ChainTrace `json:"chains,omitempty" yaml:"chains,omitempty"`
	Entropy          *Entropy      `json:"entropy" yaml:"entropy"`
	Tone             *Tone         `json:"tone" yaml:"tone"`
	Restatement      string        `json:"restatement,omitempty" yaml:"restatement,omitempty"`
	NeedsRestatement bool          `json:"needs_restatement" yaml:"needs_restatement"`
}

// MetaphorNames returns the names of all detected metaphors.
func (r *Report) MetaphorNames() []string {
	names := make([]string, 0, len(r.Metaphors))
	for _, d := range r.Metaphors {
		names = append(names, d.Term)
	}
	return names
}

// Analyzer scores statements against a catalog. The zero value is not
// usable, construct with New. An Analyzer is safe for concurrent use.
type Analyzer struct {
	catalog *catalog.Catalog

	mu    sync.RWMutex
	cache map[string]*Report
	locks map[string]*Lock
}

// New creates an analyzer over the given catalog. A nil catalog falls back
// to the builtin one.
func New(c *catalog.Catalog) *Analyzer {
	if c == nil {
		c = catalog.Builtin()
	}
	return &Analyzer{
		catalog: c,
		cache:   make(map[string]*Report),
		locks:   make(map[string]*Lock),
	}
}

// Catalog returns the catalog the analyzer was built with.
func (a *Analyzer) Catalog() *catalog.Catalog {
	return a.catalog
}

// Analyze runs the full pipeline over one statement: noise audit, metaphor
// detection, chain tracing, entropy scoring, tone tagging, and restatement
// when clarity falls below the threshold. Results are cached by normalized
// statement.
func (a *Analyzer) Analyze(statement string) (*Report, error) {
	normalized := Normalize(statement)
	if normalized == "" {
		return nil, errors.New("statement required")
	}

	a.mu.RLock()
	cached, ok := a.cache[normalized]
	a.mu.RUnlock()
	if ok {
		return cached, nil
	}

	noise := a.auditNoise(normalized)
	metaphors := a.detectMetaphors(normalized)
	chains := a.traceChains(metaphors)
	entropy := a.scoreEntropy(noise, metaphors, chains)
	tone := a.tagTone(normalized)

	r := &Report{
		ID:               uuid.NewString(),
		Created:          time.Now().UTC(),
		Statement:        normalized,
		Noise:            noise,
		Metaphors:        metaphors,
		Chains:           chains,
		Entropy:          entropy,
		Tone:             tone,
		NeedsRestatement: entropy.Clarity < clarityThreshold,
	}
	if r.NeedsRestatement {
		r.Restatement = restate(normalized, metaphors)
	}

	a.mu.Lock()
	a.cache[normalized] = r
	a.mu.Unlock()

	return r, nil
}

// AnalyzeAll analyzes statements in order, stopping at the first error.
func (a *Analyzer) AnalyzeAll(statements []string) ([]*Report, error) {
	reports := make([]*Report, 0, len(statements))
	for _, s := range statements {
		r, err := a.Analyze(s)
		if err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	return reports, nil
}

// Restate rewrites the statement with each detected metaphor term replaced
// by its functional form, regardless of the clarity score.
func (a *Analyzer) Restate(statement string) (string, error) {
	r, err := a.Analyze(statement)
	if err != nil {
		return "", err
	}
	return restate(r.Statement, r.Metaphors), nil
}

// Lock is a variable lock: a term pinned to its functional definition for
// the rest of the session.
type Lock struct {
	Name         string   `json:"name" yaml:"name"`
	Type         string   `json:"type" yaml:"type"`
	Range        []string `json:"range,omitempty" yaml:"range,omitempty"`
	Dependencies []string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
	FromReified  string   `json:"from_reified,omitempty" yaml:"from_reified,omitempty"`
}

// LockVariable pins a name to a definition, replacing any previous lock.
func (a *Analyzer) LockVariable(l *Lock) {
	if l == nil || l.Name == "" {
		return
	}
	a.mu.Lock()
	a.locks[l.Name] = l
	a.mu.Unlock()
}

// Locks returns all active locks sorted by name.
func (a *Analyzer) Locks() []*Lock {
	a.mu.RLock()
	defer a.mu.RUnlock()
	names := make([]string, 0, len(a.locks))
	for n := range a.locks {
		names = append(names, n)
	}
	sort.Strings(names)
	out := make([]*Lock, 0, len(names))
	for _, n := range names {
		out = append(out, a.locks[n])
	}
	return out
}

// AutoLock detects metaphors in the statement and locks each to its
// functional definition. It returns the locks applied.
func (a *Analyzer) AutoLock(statement string) ([]*Lock, error) {
	r, err := a.Analyze(statement)
	if err != nil {
		return nil, err
	}
	locks := make([]*Lock, 0, len(r.Metaphors))
	for _, d := range r.Metaphors {
		l := &Lock{
			Name:         d.Term,
			Type:         d.FunctionalForm,
			Range:        d.Range,
			Dependencies: d.DependsOn,
			FromReified:  d.ReifiedAs,
		}
		a.LockVariable(l)
		locks = append(locks, l)
	}
	return locks, nil
}

// LockSuggestion proposes a variable lock without applying it.
type LockSuggestion struct {
	Term             string   `json:"term" yaml:"term"`
	CurrentTreatment string   `json:"current_treatment" yaml:"current_treatment"`
	FunctionalForm   string   `json:"functional_form" yaml:"functional_form"`
	Range            []string `json:"range,omitempty" yaml:"range,omitempty"`
	Rationale        string   `json:"rationale" yaml:"rationale"`
}

// SuggestLocks returns lock suggestions for the statement for review before
// applying.
func (a *Analyzer) SuggestLocks(statement string) ([]*LockSuggestion, error) {
	r, err := a.Analyze(statement)
	if err != nil {
		return nil, err
	}
	out := make([]*LockSuggestion, 0, len(r.Metaphors))
	for _, d := range r.Metaphors {
		out = append(out, &LockSuggestion{
			Term:             d.Term,
			CurrentTreatment: d.ReifiedAs,
			FunctionalForm:   d.FunctionalForm,
			Range:            d.Range,
			Rationale:        "expands '" + d.Term + "' from constant (" + d.ReifiedAs + ") to variable (" + d.FunctionalForm + ")",
		})
	}
	return out, nil
}
