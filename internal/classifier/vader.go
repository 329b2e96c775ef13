package classifier

import "github.com/jonreiter/govader"

// Scores is one deterministic scoring result. Compound is normalized to
// [-1, 1]; the remaining components sum to 1.
type Scores struct {
	Compound float64
	Positive float64
	Negative float64
	Neutral  float64
}

// VaderScorer wraps the VADER sentiment analyzer.
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *VaderScorer) Score(text string) Scores {
	s := v.analyzer.PolarityScores(text)
	return Scores{
		Compound: s.Compound,
		Positive: s.Positive,
		Negative: s.Negative,
		Neutral:  s.Neutral,
	}
}
