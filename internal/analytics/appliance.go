package analytics

import (
	"math"

	"github.com/limbo/ecosaver/pkg/entity"
)

// Rates are the per-appliance consumption constants used to turn an
// activity description into daily totals.
type Rates struct {
	ACKWhPerHour             float64
	HeaterKWhPerHour         float64
	MicrowaveKWhPerHour      float64
	InductionStoveKWhPerHour float64
	WaterPumpKWhPerHour      float64
	WaterPumpLitersPerHour   float64
	FanKWhPerHour            float64
	LightKWhPerHour          float64
	AmbientHours             float64 // daily run time of every fan and light
	BaselineLitersPerPerson  float64
	MinElectricityKWh        float64
}

var DefaultRates = Rates{
	ACKWhPerHour:             1.5,
	HeaterKWhPerHour:         2.0,
	MicrowaveKWhPerHour:      0.8,
	InductionStoveKWhPerHour: 2.0,
	WaterPumpKWhPerHour:      1.0,
	WaterPumpLitersPerHour:   300,
	FanKWhPerHour:            0.05,
	LightKWhPerHour:          0.01,
	AmbientHours:             8,
	BaselineLitersPerPerson:  50,
	MinElectricityKWh:        0.1,
}

type Estimate struct {
	ElectricityKWh float64 `json:"electricity_units"`
	WaterLiters    int     `json:"water_liters"`
}

// EstimateUsage converts an activity into daily electricity and water totals.
// Negative inputs count as zero and household sizes below one count as one.
func EstimateUsage(a entity.Activity, householdSize int, rates Rates) Estimate {
	if householdSize < 1 {
		householdSize = 1
	}
	elec := nonNeg(a.NumACs)*nonNeg(a.ACHours)*rates.ACKWhPerHour +
		nonNeg(a.NumHeaters)*nonNeg(a.HeaterHours)*rates.HeaterKWhPerHour +
		nonNeg(a.MicrowaveHours)*rates.MicrowaveKWhPerHour +
		nonNeg(a.InductionStoveHours)*rates.InductionStoveKWhPerHour +
		nonNeg(a.WaterPumpHours)*rates.WaterPumpKWhPerHour +
		nonNeg(a.NumFans)*rates.FanKWhPerHour*rates.AmbientHours +
		nonNeg(a.NumLights)*rates.LightKWhPerHour*rates.AmbientHours
	if !(elec > rates.MinElectricityKWh) {
		elec = rates.MinElectricityKWh
	}
	water := int(nonNeg(a.WaterPumpHours)*rates.WaterPumpLitersPerHour) +
		int(float64(householdSize)*rates.BaselineLitersPerPerson)
	return Estimate{ElectricityKWh: elec, WaterLiters: water}
}

func nonNeg(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
