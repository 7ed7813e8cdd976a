package analytics_test

import (
	"math"
	"testing"

	"github.com/limbo/ecosaver/internal/analytics"
	"github.com/limbo/ecosaver/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func TestEstimateUsage(t *testing.T) {
	testCases := []struct {
		Desc          string
		Activity      entity.Activity
		HouseholdSize int
		Electricity   float64
		Water         int
	}{
		{
			Desc:          "nothing reported",
			Activity:      entity.Activity{},
			HouseholdSize: 3,
			Electricity:   0.1,
			Water:         150,
		},
		{
			Desc: "every appliance",
			Activity: entity.Activity{
				NumACs:              2,
				ACHours:             4,
				NumHeaters:          1,
				HeaterHours:         2,
				MicrowaveHours:      0.25,
				InductionStoveHours: 0.5,
				WaterPumpHours:      0.5,
				NumFans:             3,
				NumLights:           5,
			},
			HouseholdSize: 2,
			Electricity:   19.3,
			Water:         250,
		},
		{
			Desc:          "ac count without hours",
			Activity:      entity.Activity{NumACs: 3},
			HouseholdSize: 1,
			Electricity:   0.1,
			Water:         50,
		},
		{
			Desc:          "negative and non-finite inputs count as zero",
			Activity:      entity.Activity{NumACs: -2, ACHours: 5, WaterPumpHours: math.NaN(), NumLights: math.Inf(1)},
			HouseholdSize: 2,
			Electricity:   0.1,
			Water:         100,
		},
		{
			Desc:          "household size below one",
			Activity:      entity.Activity{WaterPumpHours: 1},
			HouseholdSize: 0,
			Electricity:   1,
			Water:         350,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			e := analytics.EstimateUsage(tc.Activity, tc.HouseholdSize, analytics.DefaultRates)
			assert.InDelta(t, tc.Electricity, e.ElectricityKWh, 1e-9)
			assert.Equal(t, tc.Water, e.WaterLiters)
		})
	}
}

func TestEstimateUsageFloor(t *testing.T) {
	e := analytics.EstimateUsage(entity.Activity{}, 4, analytics.DefaultRates)
	assert.Equal(t, analytics.DefaultRates.MinElectricityKWh, e.ElectricityKWh)
	assert.Equal(t, 4*50, e.WaterLiters)

	rates := analytics.DefaultRates
	rates.MinElectricityKWh = 0.5
	e = analytics.EstimateUsage(entity.Activity{NumLights: 1}, 1, rates)
	assert.Equal(t, 0.5, e.ElectricityKWh)
}
