package analysis

// Entropy is the combined noise score of a statement. All values are in
// [0,1] except Amplification, which is >= 1.
type Entropy struct {
	BaseSNR         float64 `json:"base_snr" yaml:"base_snr"`
	BaseEntropy     float64 `json:"base_entropy" yaml:"base_entropy"`
	MetaphorCount   int     `json:"metaphor_count" yaml:"metaphor_count"`
	MetaphorEntropy float64 `json:"metaphor_entropy" yaml:"metaphor_entropy"`
	Amplification   float64 `json:"amplification" yaml:"amplification"`
	Total           float64 `json:"total" yaml:"total"`
	Clarity         float64 `json:"clarity" yaml:"clarity"`
}

// scoreEntropy combines the base audit with metaphor and chain findings.
// Each detected metaphor adds a fixed entropy share, and each forced
// dependency of a chained metaphor amplifies the whole score.
func (a *Analyzer) scoreEntropy(noise *NoiseAudit, detections []*Detection, chains []*ChainTrace) *Entropy {
	metaphorEntropy := float64(len(detections)) * metaphorEntropyWeight

	amplification := 1.0
	for _, c := range chains {
		amplification += chainAmplificationStep * float64(len(c.Forces))
	}

	total := (noise.Entropy + metaphorEntropy) * amplification
	if total > 1.0 {
		total = 1.0
	}

	clarity := 1.0 - total
	if clarity < 0.0 {
		clarity = 0.0
	}

	return &Entropy{
		BaseSNR:         noise.SNR,
		BaseEntropy:     noise.Entropy,
		MetaphorCount:   len(detections),
		MetaphorEntropy: metaphorEntropy,
		Amplification:   amplification,
		Total:           total,
		Clarity:         clarity,
	}
}
