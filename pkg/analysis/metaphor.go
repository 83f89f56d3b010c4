package analysis

import "unicode/utf8"

// contextRunes is the excerpt window kept on each side of a match.
const contextRunes = 20

// Detection is one reified metaphor found in a statement.
type Detection struct {
	Term           string   `json:"term" yaml:"term"`
	ReifiedAs      string   `json:"reified_as" yaml:"reified_as"`
	FunctionalForm string   `json:"functional_form" yaml:"functional_form"`
	Range          []string `json:"range,omitempty" yaml:"range,omitempty"`
	DependsOn      []string `json:"depends_on,omitempty" yaml:"depends_on,omitempty"`
	Function       string   `json:"function,omitempty" yaml:"function,omitempty"`
	Context        string   `json:"context,omitempty" yaml:"context,omitempty"`
}

// detectMetaphors scans the statement against the catalog. Each metaphor is
// counted at most once, on its first matching pattern.
func (a *Analyzer) detectMetaphors(statement string) []*Detection {
	var found []*Detection
	for _, m := range a.catalog.Metaphors() {
		start, end, ok := m.Match(statement)
		if !ok {
			continue
		}
		found = append(found, &Detection{
			Term:           m.Name,
			ReifiedAs:      m.ReifiedAs,
			FunctionalForm: m.FunctionalForm,
			Range:          m.Range,
			DependsOn:      m.DependsOn,
			Function:       m.Function,
			Context:        excerpt(statement, start, end),
		})
	}
	return found
}

// excerpt returns the match with up to contextRunes runes of context on
// each side.
func excerpt(statement string, start, end int) string {
	from := start
	for i := 0; i < contextRunes && from > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(statement[:from])
		from -= size
	}
	to := end
	for i := 0; i < contextRunes && to < len(statement); i++ {
		_, size := utf8.DecodeRuneInString(statement[to:])
		to += size
	}
	return "..." + statement[from:to] + "..."
}
