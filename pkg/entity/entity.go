package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
}

// UsageRecord is one day of household consumption. Date carries no time component.
type UsageRecord struct {
	ID               int64     `json:"id"`
	UserID           uuid.UUID `json:"uid"`
	Username         string    `json:"username,omitempty"`
	Date             time.Time `json:"date"`
	ElectricityUnits float64   `json:"electricity_units"`
	WaterLiters      int       `json:"water_liters"`
	HouseholdSize    int       `json:"household_size"`
	CreatedAt        time.Time `json:"created_at"`
}

// UsageFilter narrows a store query. Nil fields are not applied.
type UsageFilter struct {
	UserID *uuid.UUID
	From   *time.Time
	To     *time.Time
}

// Activity is the typed form of an appliance extraction. Every field
// defaults to zero when the extraction did not provide a usable number.
type Activity struct {
	NumACs              float64  `json:"num_acs"`
	ACHours             float64  `json:"duration_ac_hours"`
	NumHeaters          float64  `json:"num_heaters"`
	HeaterHours         float64  `json:"duration_heater_hours"`
	MicrowaveHours      float64  `json:"duration_microwave_hours"`
	InductionStoveHours float64  `json:"duration_induction_stove_hours"`
	WaterPumpHours      float64  `json:"duration_water_pump_motors"`
	NumFans             float64  `json:"num_fans"`
	NumLights           float64  `json:"num_lights"`
	MissingFields       []string `json:"missing_fields,omitempty"`
}

// Day truncates t to its calendar day in UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
