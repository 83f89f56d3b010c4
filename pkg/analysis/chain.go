package analysis

import (
	"fmt"
	"strings"
)

// ChainTrace shows how one detected metaphor forces others to stay reified
// to keep the statement internally consistent.
type ChainTrace struct {
	Primary   string   `json:"primary" yaml:"primary"`
	Forces    []string `json:"forces" yaml:"forces"`
	Mechanism string   `json:"mechanism" yaml:"mechanism"`
}

// traceChains builds a trace for every detected metaphor that anchors a
// dependency chain in the catalog.
func (a *Analyzer) traceChains(detections []*Detection) []*ChainTrace {
	var traces []*ChainTrace
	for _, d := range detections {
		forces := a.catalog.Chain(d.Term)
		if len(forces) == 0 {
			continue
		}
		traces = append(traces, &ChainTrace{
			Primary: d.Term,
			Forces:  forces,
			Mechanism: fmt.Sprintf(
				"if %q is reified as %q, then %s must also be constrained to maintain logical consistency",
				d.Term, d.ReifiedAs, strings.Join(forces, ", ")),
		})
	}
	return traces
}
