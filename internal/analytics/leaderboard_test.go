package analytics_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/ecosaver/internal/analytics"
	"github.com/limbo/ecosaver/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userRecords(uid uuid.UUID, name string, values ...float64) []entity.UsageRecord {
	records := make([]entity.UsageRecord, 0, len(values))
	for i, v := range values {
		records = append(records, entity.UsageRecord{
			UserID:           uid,
			Username:         name,
			Date:             day(i),
			ElectricityUnits: v,
			WaterLiters:      100,
			HouseholdSize:    1,
		})
	}
	return records
}

func TestLeaderboard(t *testing.T) {
	alice, bob, carol := uuid.New(), uuid.New(), uuid.New()
	records := append(userRecords(alice, "alice", 2, 4, 6, 8, 10), userRecords(bob, "bob", 10, 9, 8, 7, 6)...)
	records = append(records, entity.UsageRecord{
		UserID:           carol,
		Username:         "carol",
		Date:             day(4),
		ElectricityUnits: 5,
		WaterLiters:      80,
		HouseholdSize:    2,
	})

	board := analytics.Leaderboard(records)
	require.Len(t, board, 3)

	byName := make(map[string]analytics.LeaderboardEntry)
	for i, e := range board {
		assert.Equal(t, i+1, e.Rank)
		byName[e.Username] = e
		if i > 0 {
			assert.GreaterOrEqual(t, board[i-1].Score, e.Score)
		}
	}

	assert.Equal(t, 58, byName["alice"].Score)
	assert.Equal(t, 10.0, byName["alice"].LatestValue)
	assert.Equal(t, 12.0, byName["alice"].PredictedValue)
	assert.Equal(t, analytics.SourceUserTrend, byName["alice"].Source)

	assert.Equal(t, 40, byName["bob"].Score)
	assert.Equal(t, 5.0, byName["bob"].PredictedValue)

	// Pooled line over all 11 points predicts 7.58 for carol's single day
	assert.Equal(t, analytics.SourceGlobalTrend, byName["carol"].Source)
	assert.Equal(t, 5.0, byName["carol"].LatestValue)
	assert.Equal(t, 7.58, byName["carol"].PredictedValue)
	assert.Equal(t, 67, byName["carol"].Score)

	assert.Equal(t, []uuid.UUID{carol, alice, bob}, []uuid.UUID{board[0].UserID, board[1].UserID, board[2].UserID})
}

func TestLeaderboardTies(t *testing.T) {
	zed, anna, mike := uuid.New(), uuid.New(), uuid.New()
	records := append(userRecords(zed, "zed", 4), userRecords(anna, "anna", 4)...)
	records = append(records, userRecords(mike, "mike", 4)...)

	first := analytics.Leaderboard(records)
	require.Len(t, first, 3)
	for _, e := range first {
		assert.Equal(t, analytics.NeutralScore, e.Score)
		assert.Equal(t, analytics.SourceGlobalMean, e.Source)
	}
	assert.Equal(t, []string{"anna", "mike", "zed"}, []string{first[0].Username, first[1].Username, first[2].Username})
	for range 20 {
		assert.Equal(t, first, analytics.Leaderboard(records))
	}
}

func TestLeaderboardExcludesAbsentUsers(t *testing.T) {
	assert.Empty(t, analytics.Leaderboard(nil))

	present := uuid.New()
	board := analytics.Leaderboard(userRecords(present, "present", 3))
	require.Len(t, board, 1)
	assert.Equal(t, present, board[0].UserID)
	assert.Equal(t, analytics.SourceGlobalMean, board[0].Source)
	assert.Equal(t, analytics.NeutralScore, board[0].Score)
}

func TestLeaderboardWindow(t *testing.T) {
	from, to := analytics.LeaderboardWindow(time.Date(2026, time.October, 14, 15, 30, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2026, time.October, 7, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, time.October, 14, 0, 0, 0, 0, time.UTC), to)
}

func TestLatestRecord(t *testing.T) {
	uid := uuid.New()
	records := []entity.UsageRecord{
		{ID: 1, UserID: uid, Date: day(3)},
		{ID: 2, UserID: uid, Date: day(1)},
		{ID: 3, UserID: uid, Date: day(3)},
		{ID: 4, UserID: uid, Date: day(2)},
	}
	assert.Equal(t, int64(3), analytics.LatestRecord(records).ID)
}
