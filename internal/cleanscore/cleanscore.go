// Package cleanscore rates a product composition by the safety ratings of its
// ingredients.
package cleanscore

import "math"

const (
	RatingHarmful    = "harmful"
	RatingNeutral    = "neutral"
	RatingBeneficial = "beneficial"
)

type Breakdown struct {
	Harmful           int     `json:"harmful"`
	Neutral           int     `json:"neutral"`
	Beneficial        int     `json:"beneficial"`
	Total             int     `json:"total"`
	Score             int     `json:"score"`
	Label             string  `json:"label"`
	HarmfulPercent    float64 `json:"harmful_percent"`
	NeutralPercent    float64 `json:"neutral_percent"`
	BeneficialPercent float64 `json:"beneficial_percent"`
}

// IsValidRating reports whether r is one of the known safety ratings.
func IsValidRating(r string) bool {
	switch r {
	case RatingHarmful, RatingNeutral, RatingBeneficial:
		return true
	}
	return false
}

// Compute scores neutral ingredients 1 point, beneficial 2 and harmful 0, and
// returns the share of the maximum as a rounded percentage. Unknown or empty
// ratings count as neutral.
func Compute(ratings []string) Breakdown {
	var b Breakdown
	for _, r := range ratings {
		switch r {
		case RatingHarmful:
			b.Harmful++
		case RatingBeneficial:
			b.Beneficial++
		default:
			b.Neutral++
		}
	}

	b.Total = b.Harmful + b.Neutral + b.Beneficial
	if b.Total > 0 {
		points := b.Neutral + 2*b.Beneficial
		b.Score = int(math.Round(float64(points) / float64(2*b.Total) * 100))

		b.HarmfulPercent = percent(b.Harmful, b.Total)
		b.NeutralPercent = percent(b.Neutral, b.Total)
		b.BeneficialPercent = percent(b.Beneficial, b.Total)
	}
	b.Label = Label(b.Score)
	return b
}

func Label(score int) string {
	switch {
	case score >= 80:
		return "Very good"
	case score >= 60:
		return "Good"
	case score >= 40:
		return "Average"
	default:
		return "Needs attention"
	}
}

func percent(n, total int) float64 {
	return math.Round(float64(n)/float64(total)*1000) / 10
}
