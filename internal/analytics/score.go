package analytics

import "math"

const (
	NeutralScore = 50
	MinScore     = 0
	MaxScore     = 100
)

// Score rewards using less than predicted and penalizes using more.
// The raw value is clamped before rounding; halves round to even.
func Score(latest, predicted float64) int {
	if predicted == 0 || math.IsNaN(predicted) || math.IsInf(predicted, 0) || math.IsNaN(latest) {
		return NeutralScore
	}
	s := 50 + 50*(predicted-latest)/predicted
	s = math.Max(MinScore, math.Min(MaxScore, s))
	return int(math.RoundToEven(s))
}

// EcoScore scores latest against p, neutral without a baseline.
func EcoScore(latest float64, p Prediction) int {
	if !p.Available {
		return NeutralScore
	}
	return Score(latest, p.Value)
}
