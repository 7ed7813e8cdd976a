package extraction

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/limbo/ecosaver/pkg/entity"
)

// Keys the extraction service is asked to fill.
const (
	KeyNumACs              = "num_acs"
	KeyACHours             = "duration_ac_hours"
	KeyNumHeaters          = "num_heaters"
	KeyHeaterHours         = "duration_heater_hours"
	KeyMicrowaveHours      = "duration_microwave_hours"
	KeyInductionStoveHours = "duration_induction_stove_hours"
	KeyWaterPumpHours      = "duration_water_pump_motors"
	KeyNumFans             = "num_fans"
	KeyNumLights           = "num_lights"
)

var Keys = []string{
	KeyNumACs,
	KeyACHours,
	KeyNumHeaters,
	KeyHeaterHours,
	KeyMicrowaveHours,
	KeyInductionStoveHours,
	KeyWaterPumpHours,
	KeyNumFans,
	KeyNumLights,
}

// ParseActivity decodes an extraction payload. Markdown code fences around
// the JSON object are tolerated. Only a payload that is not a JSON object at
// all is an error; bad fields become zero.
func ParseActivity(payload []byte) (entity.Activity, error) {
	raw := make(map[string]any)
	if err := sonic.Unmarshal(stripFences(payload), &raw); err != nil {
		return entity.Activity{}, err
	}
	return ActivityFromMap(raw), nil
}

// ActivityFromMap coerces an untyped extraction result into an Activity.
// Absent, non-numeric, negative or non-finite values are set to zero and
// their keys collected in MissingFields.
func ActivityFromMap(raw map[string]any) entity.Activity {
	var a entity.Activity
	targets := map[string]*float64{
		KeyNumACs:              &a.NumACs,
		KeyACHours:             &a.ACHours,
		KeyNumHeaters:          &a.NumHeaters,
		KeyHeaterHours:         &a.HeaterHours,
		KeyMicrowaveHours:      &a.MicrowaveHours,
		KeyInductionStoveHours: &a.InductionStoveHours,
		KeyWaterPumpHours:      &a.WaterPumpHours,
		KeyNumFans:             &a.NumFans,
		KeyNumLights:           &a.NumLights,
	}
	for _, key := range Keys {
		v, ok := toNumber(raw[key])
		if !ok {
			a.MissingFields = append(a.MissingFields, key)
			continue
		}
		*targets[key] = v
	}
	return a
}

func toNumber(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0, false
	}
	return f, true
}

func stripFences(payload []byte) []byte {
	s := strings.TrimSpace(string(payload))
	if !strings.HasPrefix(s, "```") {
		return []byte(s)
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return []byte(strings.TrimSpace(s))
}
