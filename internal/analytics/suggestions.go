package analytics

import (
	"fmt"

	"github.com/limbo/ecosaver/pkg/entity"
)

const (
	// Share of the excess over prediction a user can realistically save.
	SavingsFactor = 0.15

	StrongWaterThreshold = 150.0
	MildWaterThreshold   = 100.0
)

const (
	TipInsufficientHistory = "Insufficient history to predict, add more daily records."
	TipStrongWater         = "Shorten showers by 2-3 mins or install a low-flow head, saves 20-40 L/day per person."
	TipMildWater           = "Fix small leaks and try one short shower a day to cut water use."
	TipGenericEfficiency   = "Unplug chargers at night. Replace bulbs with LEDs. Use natural light where possible."
)

// Suggestions builds conservation tips for the latest day. The generic
// efficiency tip is always the last element.
func Suggestions(latest float64, p Prediction, last *entity.UsageRecord) []string {
	suggestions := make([]string, 0, 3)
	switch {
	case !p.Available:
		suggestions = append(suggestions, TipInsufficientHistory)
	case latest > p.Value:
		excess := latest - p.Value
		suggestions = append(suggestions, fmt.Sprintf(
			"You used %.2f kWh more than predicted. Try reducing AC/heavy loads by 30 min to save approx %.2f kWh.",
			excess, excess*SavingsFactor,
		))
	default:
		suggestions = append(suggestions, fmt.Sprintf(
			"Good work, you're %.2f kWh under prediction. Keep that habit!", p.Value-latest,
		))
	}
	if last != nil {
		switch perPerson := WaterPerPerson(*last); {
		case perPerson > StrongWaterThreshold:
			suggestions = append(suggestions, TipStrongWater)
		case perPerson > MildWaterThreshold:
			suggestions = append(suggestions, TipMildWater)
		}
	}
	return append(suggestions, TipGenericEfficiency)
}

// WaterPerPerson divides a day's water by the household size, treating a
// non-positive size as a single person.
func WaterPerPerson(r entity.UsageRecord) float64 {
	size := r.HouseholdSize
	if size <= 0 {
		size = 1
	}
	return float64(r.WaterLiters) / float64(size)
}
