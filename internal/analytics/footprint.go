package analytics

const (
	CO2PerKWh       = 0.82    // kg CO2 per kWh
	CO2PerLiter     = 0.00035 // kg CO2 per liter of water
	ACHourKWh       = 0.8     // saved per hour of AC/heavy load avoided
	LEDSwitchKWh    = 0.5     // daily effect of swapping three bulbs to LED
	ShowerMinuteLit = 10      // liters per shower minute
)

// Footprint is the estimated kg of CO2 for a day's consumption.
func Footprint(electricityKWh float64, waterLiters int) float64 {
	return electricityKWh*CO2PerKWh + float64(waterLiters)*CO2PerLiter
}

type WhatIf struct {
	ACHoursReduced       float64 `json:"ac_hours_reduced" validate:"gte=0,lte=24"`
	ShowerMinutesReduced int     `json:"shower_minutes_reduced" validate:"gte=0,lte=120"`
	SwitchToLED          bool    `json:"switch_to_led"`
}

type Savings struct {
	ElectricityKWh float64 `json:"electricity_kwh"`
	WaterLiters    int     `json:"water_liters"`
	CO2Kg          float64 `json:"co2_kg"`
}

// EstimateSavings converts behavior changes into daily savings.
func EstimateSavings(w WhatIf) Savings {
	elec := nonNeg(w.ACHoursReduced) * ACHourKWh
	if w.SwitchToLED {
		elec += LEDSwitchKWh
	}
	water := 0
	if w.ShowerMinutesReduced > 0 {
		water = w.ShowerMinutesReduced * ShowerMinuteLit
	}
	return Savings{
		ElectricityKWh: elec,
		WaterLiters:    water,
		CO2Kg:          Footprint(elec, water),
	}
}
