package analytics_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/limbo/ecosaver/internal/analytics"
	"github.com/limbo/ecosaver/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecentHistory(t *testing.T) {
	uid := uuid.New()
	records := []entity.UsageRecord{
		{ID: 1, UserID: uid, Date: day(0)},
		{ID: 2, UserID: uid, Date: day(10)},
		{ID: 3, UserID: uid, Date: day(40)},
		{ID: 4, UserID: uid, Date: day(25)},
	}
	recent := analytics.RecentHistory(records)
	ids := make([]int64, 0, len(recent))
	for _, r := range recent {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []int64{2, 3, 4}, ids)
	assert.Empty(t, analytics.RecentHistory(nil))
}

func TestUserStats(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	records := append(userRecords(b, "bob", 1, 2, 3), userRecords(a, "ann", 4)...)
	stats := analytics.UserStats(records)
	require.Len(t, stats, 2)
	assert.Equal(t, analytics.UserStat{UserID: a, Username: "ann", Records: 1, AvgElectricity: 4, AvgWater: 100}, stats[0])
	assert.Equal(t, "bob", stats[1].Username)
	assert.Equal(t, 3, stats[1].Records)
	assert.InDelta(t, 2.0, stats[1].AvgElectricity, 1e-9)
}

func TestDailyAverages(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	records := append(userRecords(a, "ann", 2, 4), userRecords(b, "bob", 4)...)
	records[2].WaterLiters = 300
	avg := analytics.DailyAverages(records)
	require.Len(t, avg, 2)
	assert.Equal(t, day(0), avg[0].Date)
	assert.InDelta(t, 3.0, avg[0].AvgElectricity, 1e-9)
	assert.InDelta(t, 200.0, avg[0].AvgWater, 1e-9)
	assert.Equal(t, day(1), avg[1].Date)
	assert.InDelta(t, 4.0, avg[1].AvgElectricity, 1e-9)
}

func TestFootprintAndSavings(t *testing.T) {
	assert.InDelta(t, 8.55, analytics.Footprint(10, 1000), 1e-9)

	s := analytics.EstimateSavings(analytics.WhatIf{ACHoursReduced: 2, ShowerMinutesReduced: 3, SwitchToLED: true})
	assert.InDelta(t, 2.1, s.ElectricityKWh, 1e-9)
	assert.Equal(t, 30, s.WaterLiters)
	assert.InDelta(t, 1.7325, s.CO2Kg, 1e-9)

	assert.Equal(t, analytics.Savings{}, analytics.EstimateSavings(analytics.WhatIf{ACHoursReduced: -1, ShowerMinutesReduced: -4}))
}
