package analytics_test

import (
	"testing"

	"github.com/limbo/ecosaver/internal/analytics"
	"github.com/limbo/ecosaver/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func TestSuggestions(t *testing.T) {
	available := func(v float64) analytics.Prediction {
		return analytics.Prediction{Value: v, Available: true, Source: analytics.SourceUserTrend}
	}
	testCases := []struct {
		Desc       string
		Latest     float64
		Prediction analytics.Prediction
		Last       *entity.UsageRecord
		Expected   []string
	}{
		{
			Desc:       "no prediction",
			Latest:     4,
			Prediction: analytics.Unavailable,
			Last:       &entity.UsageRecord{WaterLiters: 90, HouseholdSize: 1},
			Expected: []string{
				analytics.TipInsufficientHistory,
				analytics.TipGenericEfficiency,
			},
		},
		{
			Desc:       "over prediction with heavy water use",
			Latest:     12,
			Prediction: available(10),
			Last:       &entity.UsageRecord{WaterLiters: 480, HouseholdSize: 3},
			Expected: []string{
				"You used 2.00 kWh more than predicted. Try reducing AC/heavy loads by 30 min to save approx 0.30 kWh.",
				analytics.TipStrongWater,
				analytics.TipGenericEfficiency,
			},
		},
		{
			Desc:       "under prediction with moderate water use",
			Latest:     8,
			Prediction: available(10),
			Last:       &entity.UsageRecord{WaterLiters: 330, HouseholdSize: 3},
			Expected: []string{
				"Good work, you're 2.00 kWh under prediction. Keep that habit!",
				analytics.TipMildWater,
				analytics.TipGenericEfficiency,
			},
		},
		{
			Desc:       "water exactly on the mild threshold",
			Latest:     10,
			Prediction: available(10),
			Last:       &entity.UsageRecord{WaterLiters: 300, HouseholdSize: 3},
			Expected: []string{
				"Good work, you're 0.00 kWh under prediction. Keep that habit!",
				analytics.TipGenericEfficiency,
			},
		},
		{
			Desc:       "zero household size counts as one person",
			Latest:     10,
			Prediction: analytics.Unavailable,
			Last:       &entity.UsageRecord{WaterLiters: 120, HouseholdSize: 0},
			Expected: []string{
				analytics.TipInsufficientHistory,
				analytics.TipMildWater,
				analytics.TipGenericEfficiency,
			},
		},
		{
			Desc:       "no record",
			Latest:     10,
			Prediction: available(11),
			Last:       nil,
			Expected: []string{
				"Good work, you're 1.00 kWh under prediction. Keep that habit!",
				analytics.TipGenericEfficiency,
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			result := analytics.Suggestions(tc.Latest, tc.Prediction, tc.Last)
			assert.Equal(t, tc.Expected, result)
			assert.Equal(t, analytics.TipGenericEfficiency, result[len(result)-1])
		})
	}
}

func TestWaterPerPerson(t *testing.T) {
	assert.Equal(t, 50.0, analytics.WaterPerPerson(entity.UsageRecord{WaterLiters: 200, HouseholdSize: 4}))
	assert.Equal(t, 200.0, analytics.WaterPerPerson(entity.UsageRecord{WaterLiters: 200, HouseholdSize: -2}))
}
