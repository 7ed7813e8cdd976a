package analytics

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/ecosaver/pkg/entity"
	"gonum.org/v1/gonum/stat"
)

// HistoryDays bounds the default analysis window, counted back from the
// newest record in the data set.
const HistoryDays = 30

// RecentHistory keeps the records dated within HistoryDays of the newest one.
func RecentHistory(records []entity.UsageRecord) []entity.UsageRecord {
	if len(records) == 0 {
		return records
	}
	newest := entity.Day(records[0].Date)
	for _, r := range records[1:] {
		if d := entity.Day(r.Date); d.After(newest) {
			newest = d
		}
	}
	limit := newest.AddDate(0, 0, -HistoryDays)
	result := make([]entity.UsageRecord, 0, len(records))
	for _, r := range records {
		if !entity.Day(r.Date).Before(limit) {
			result = append(result, r)
		}
	}
	return result
}

type UserStat struct {
	UserID         uuid.UUID `json:"uid"`
	Username       string    `json:"username"`
	Records        int       `json:"records"`
	AvgElectricity float64   `json:"avg_kwh"`
	AvgWater       float64   `json:"avg_water_liters"`
}

// UserStats summarizes every user in records, ordered by username.
func UserStats(records []entity.UsageRecord) []UserStat {
	grouped := make(map[uuid.UUID][]entity.UsageRecord)
	for _, r := range records {
		grouped[r.UserID] = append(grouped[r.UserID], r)
	}
	result := make([]UserStat, 0, len(grouped))
	for uid, rs := range grouped {
		elec, _ := MeanValue(ElectricitySeries(rs))
		water, _ := MeanValue(WaterSeries(rs))
		result = append(result, UserStat{
			UserID:         uid,
			Username:       rs[0].Username,
			Records:        len(rs),
			AvgElectricity: elec,
			AvgWater:       water,
		})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Username != result[j].Username {
			return result[i].Username < result[j].Username
		}
		return result[i].UserID.String() < result[j].UserID.String()
	})
	return result
}

type DailyAverage struct {
	Date           time.Time `json:"date"`
	AvgElectricity float64   `json:"avg_kwh"`
	AvgWater       float64   `json:"avg_water_liters"`
}

// DailyAverages averages all users' records per calendar day, ascending.
func DailyAverages(records []entity.UsageRecord) []DailyAverage {
	type acc struct {
		elec, water []float64
	}
	days := make(map[time.Time]*acc)
	for _, r := range records {
		d := entity.Day(r.Date)
		a, ok := days[d]
		if !ok {
			a = &acc{}
			days[d] = a
		}
		a.elec = append(a.elec, r.ElectricityUnits)
		a.water = append(a.water, float64(r.WaterLiters))
	}
	result := make([]DailyAverage, 0, len(days))
	for d, a := range days {
		result = append(result, DailyAverage{
			Date:           d,
			AvgElectricity: stat.Mean(a.elec, nil),
			AvgWater:       stat.Mean(a.water, nil),
		})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})
	return result
}
