package analysis

import "strings"

const (
	// NoiseInstitutionalShunt marks deflection phrases that reroute the
	// statement to an institutional script.
	NoiseInstitutionalShunt = "institutional_shunt"

	// NoiseHomogeneityAssumption marks claims that flatten a population
	// into a single case.
	NoiseHomogeneityAssumption = "homogeneity_assumption"

	// noiseDivisor converts a marker count into base entropy.
	noiseDivisor = 10.0
)

// noiseMarkers maps each noise type to the phrases that signal it. Matching
// is case-insensitive substring; each type is counted at most once per
// statement.
var noiseMarkers = map[string][]string{
	NoiseInstitutionalShunt:    {"i cannot", "as an ai"},
	NoiseHomogeneityAssumption: {"universally", "every human"},
}

// NoiseAudit is the result of the base noise scan.
type NoiseAudit struct {
	NoiseTypes []string `json:"noise_types,omitempty" yaml:"noise_types,omitempty"`
	Entropy    float64  `json:"entropy" yaml:"entropy"`
	SNR        float64  `json:"snr" yaml:"snr"`
	Coherent   bool     `json:"coherent" yaml:"coherent"`
}

func (a *Analyzer) auditNoise(statement string) *NoiseAudit {
	lower := strings.ToLower(statement)

	var types []string
	for _, noiseType := range []string{NoiseInstitutionalShunt, NoiseHomogeneityAssumption} {
		for _, marker := range noiseMarkers[noiseType] {
			if strings.Contains(lower, marker) {
				types = append(types, noiseType)
				break
			}
		}
	}

	entropy := float64(len(types)) / noiseDivisor
	snr := 1.0 - entropy
	return &NoiseAudit{
		NoiseTypes: types,
		Entropy:    entropy,
		SNR:        snr,
		Coherent:   snr > 1.0-coherenceThreshold,
	}
}
