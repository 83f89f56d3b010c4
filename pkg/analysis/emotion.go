package analysis

import (
	"sort"
	"strings"
)

// ToneNeutral is the dominant emotion of a statement with no lexicon
// matches. Zero matches is not an error.
const ToneNeutral = "neutral"

// emotionScale stretches the per-word weighted match ratio so a single
// strong keyword in a short statement registers near full intensity.
const emotionScale = 10.0

// EmotionTag is the weighted score of one emotion in a statement.
type EmotionTag struct {
	Emotion string  `json:"emotion" yaml:"emotion"`
	Matches int     `json:"matches" yaml:"matches"`
	Score   float64 `json:"score" yaml:"score"`
}

// Tone is the overall emotional reading of a statement.
type Tone struct {
	Dominant  string        `json:"dominant" yaml:"dominant"`
	Intensity float64       `json:"intensity" yaml:"intensity"`
	Tags      []*EmotionTag `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// tagTone scores the statement against the emotion lexicon. Each emotion's
// raw weighted match count is normalized by statement length and clamped to
// [0,1]; the dominant emotion is the highest scorer.
func (a *Analyzer) tagTone(statement string) *Tone {
	words := len(strings.Fields(statement))
	if words == 0 {
		words = 1
	}

	var tags []*EmotionTag
	for _, e := range a.catalog.Emotions() {
		n := e.Count(statement)
		if n == 0 {
			continue
		}
		score := e.Weight * float64(n) * emotionScale / float64(words)
		if score > 1.0 {
			score = 1.0
		}
		tags = append(tags, &EmotionTag{Emotion: e.Name, Matches: n, Score: score})
	}

	if len(tags) == 0 {
		return &Tone{Dominant: ToneNeutral}
	}

	sort.Slice(tags, func(i, j int) bool {
		if tags[i].Score != tags[j].Score {
			return tags[i].Score > tags[j].Score
		}
		return tags[i].Emotion < tags[j].Emotion
	})

	return &Tone{
		Dominant:  tags[0].Emotion,
		Intensity: tags[0].Score,
		Tags:      tags,
	}
}
