package catalog

import (
	"regexp"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Metaphor describes a single reified metaphor: an abstract concept that a
// statement treats as a fixed constant instead of the variable it is. The
// detection patterns are regular expressions compiled case-insensitively
// when the metaphor is added to a catalog.
type Metaphor struct {
	Name           string   `json:"name" yaml:"name"`
	ReifiedAs      string   `json:"reified_as" yaml:"reified_as"`
	FunctionalForm string   `json:"functional_form" yaml:"functional_form"`
	Range          []string `json:"range,omitempty" yaml:"range,omitempty"`
	DependsOn      []string `json:"depends_on,omitempty" yaml:"depends_on,omitempty"`
	Function       string   `json:"function,omitempty" yaml:"function,omitempty"`
	Patterns       []string `json:"patterns" yaml:"patterns"`

	compiled []*regexp.Regexp
}

// Match returns the indices of the first pattern match in the statement.
func (m *Metaphor) Match(statement string) (start, end int, ok bool) {
	for _, re := range m.compiled {
		if loc := re.FindStringIndex(statement); loc != nil {
			return loc[0], loc[1], true
		}
	}
	return 0, 0, false
}

func (m *Metaphor) compile() error {
	if m.Name == "" {
		return errors.New("metaphor name required")
	}
	if len(m.Patterns) == 0 {
		return errors.Errorf("metaphor %q has no detection patterns", m.Name)
	}
	m.compiled = make([]*regexp.Regexp, 0, len(m.Patterns))
	for _, p := range m.Patterns {
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			return errors.Wrapf(err, "invalid pattern %q for metaphor %q", p, m.Name)
		}
		m.compiled = append(m.compiled, re)
	}
	return nil
}

// Emotion is a weighted keyword rule used for tone tagging. All keywords are
// matched case-insensitively on word boundaries.
type Emotion struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Weight      float64  `json:"weight" yaml:"weight"`
	Keywords    []string `json:"keywords" yaml:"keywords"`

	compiled *regexp.Regexp
}

// Count returns the number of keyword occurrences in the statement.
func (e *Emotion) Count(statement string) int {
	if e.compiled == nil {
		return 0
	}
	return len(e.compiled.FindAllStringIndex(statement, -1))
}

func (e *Emotion) compile() error {
	if e.Name == "" {
		return errors.New("emotion name required")
	}
	if len(e.Keywords) == 0 {
		return errors.Errorf("emotion %q has no keywords", e.Name)
	}
	quoted := make([]string, 0, len(e.Keywords))
	for _, k := range e.Keywords {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(strings.ToLower(k)))
	}
	if len(quoted) == 0 {
		return errors.Errorf("emotion %q has only empty keywords", e.Name)
	}
	re, err := regexp.Compile(`(?i)\b(` + strings.Join(quoted, "|") + `)\b`)
	if err != nil {
		return errors.Wrapf(err, "failed to compile keywords for emotion %q", e.Name)
	}
	e.compiled = re
	return nil
}

// Catalog holds the metaphor table, the dependency chains between metaphors,
// and the emotion lexicon. A catalog is immutable after construction, so it
// is safe to share between goroutines.
type Catalog struct {
	metaphors map[string]*Metaphor
	chains    map[string][]string
	emotions  map[string]*Emotion
}

// New builds a catalog and compiles all detection patterns.
func New(metaphors []*Metaphor, chains map[string][]string, emotions []*Emotion) (*Catalog, error) {
	c := &Catalog{
		metaphors: make(map[string]*Metaphor, len(metaphors)),
		chains:    make(map[string][]string, len(chains)),
		emotions:  make(map[string]*Emotion, len(emotions)),
	}
	for _, m := range metaphors {
		if err := m.compile(); err != nil {
			return nil, err
		}
		c.metaphors[m.Name] = m
	}
	for name, forces := range chains {
		c.chains[name] = append([]string(nil), forces...)
	}
	for _, e := range emotions {
		if err := e.compile(); err != nil {
			return nil, err
		}
		c.emotions[e.Name] = e
	}
	return c, nil
}

// Get returns the named metaphor.
func (c *Catalog) Get(name string) (*Metaphor, bool) {
	m, ok := c.metaphors[name]
	return m, ok
}

// Names returns all metaphor names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.metaphors))
	for n := range c.metaphors {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Metaphors returns all metaphors sorted by name.
func (c *Catalog) Metaphors() []*Metaphor {
	out := make([]*Metaphor, 0, len(c.metaphors))
	for _, n := range c.Names() {
		out = append(out, c.metaphors[n])
	}
	return out
}

// Chain returns the metaphors forced by the named metaphor. The returned
// slice is empty when the metaphor anchors no chain.
func (c *Catalog) Chain(name string) []string {
	return append([]string(nil), c.chains[name]...)
}

// Emotions returns the emotion lexicon sorted by name.
func (c *Catalog) Emotions() []*Emotion {
	names := make([]string, 0, len(c.emotions))
	for n := range c.emotions {
		names = append(names, n)
	}
	sort.Strings(names)
	out := make([]*Emotion, 0, len(names))
	for _, n := range names {
		out = append(out, c.emotions[n])
	}
	return out
}

// SearchByFunction returns names of metaphors whose institutional function
// contains the given keyword.
func (c *Catalog) SearchByFunction(keyword string) []string {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return nil
	}
	var matches []string
	for _, n := range c.Names() {
		if strings.Contains(strings.ToLower(c.metaphors[n].Function), keyword) {
			matches = append(matches, n)
		}
	}
	return matches
}

// Stats summarizes the catalog content.
type Stats struct {
	Metaphors     int      `json:"metaphors" yaml:"metaphors"`
	Chains        int      `json:"chains" yaml:"chains"`
	Emotions      int      `json:"emotions" yaml:"emotions"`
	AvgForcedDeps float64  `json:"avg_forced_deps" yaml:"avg_forced_deps"`
	MetaphorNames []string `json:"metaphor_names" yaml:"metaphor_names"`
}

// Stats returns summary statistics for the catalog.
func (c *Catalog) Stats() *Stats {
	s := &Stats{
		Metaphors:     len(c.metaphors),
		Chains:        len(c.chains),
		Emotions:      len(c.emotions),
		MetaphorNames: c.Names(),
	}
	if len(c.chains) > 0 {
		total := 0
		for _, forces := range c.chains {
			total += len(forces)
		}
		s.AvgForcedDeps = float64(total) / float64(len(c.chains))
	}
	return s
}

// Merge returns a new catalog with entries from the override applied on top
// of the receiver. Override entries replace builtin entries of the same name.
func (c *Catalog) Merge(override *Catalog) *Catalog {
	merged := &Catalog{
		metaphors: make(map[string]*Metaphor, len(c.metaphors)),
		chains:    make(map[string][]string, len(c.chains)),
		emotions:  make(map[string]*Emotion, len(c.emotions)),
	}
	for n, m := range c.metaphors {
		merged.metaphors[n] = m
	}
	for n, f := range c.chains {
		merged.chains[n] = f
	}
	for n, e := range c.emotions {
		merged.emotions[n] = e
	}
	if override != nil {
		for n, m := range override.metaphors {
			merged.metaphors[n] = m
		}
		for n, f := range override.chains {
			merged.chains[n] = f
		}
		for n, e := range override.emotions {
			merged.emotions[n] = e
		}
	}
	return merged
}
