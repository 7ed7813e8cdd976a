package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/ecosaver/pkg/entity"
)

// LeaderboardWindowDays is the trailing window the leaderboard ranks over.
const LeaderboardWindowDays = 7

type LeaderboardEntry struct {
	Rank           int       `json:"rank"`
	UserID         uuid.UUID `json:"uid"`
	Username       string    `json:"username"`
	Score          int       `json:"score"`
	LatestValue    float64   `json:"latest_kwh"`
	PredictedValue float64   `json:"predicted_kwh"`
	Source         Source    `json:"source"`
}

// LeaderboardWindow returns the inclusive calendar-day range ending today.
func LeaderboardWindow(today time.Time) (from, to time.Time) {
	to = entity.Day(today)
	return to.AddDate(0, 0, -LeaderboardWindowDays), to
}

// Leaderboard scores every user present in records and ranks them by score
// descending. Records are expected to be restricted to the window already.
// Ties are broken by username, then user id.
func Leaderboard(records []entity.UsageRecord) []LeaderboardEntry {
	pool := ElectricitySeries(records)
	byUser := make(map[uuid.UUID][]entity.UsageRecord)
	names := make(map[uuid.UUID]string)
	for _, r := range records {
		byUser[r.UserID] = append(byUser[r.UserID], r)
		if r.Username != "" {
			names[r.UserID] = r.Username
		}
	}

	entries := make([]LeaderboardEntry, 0, len(byUser))
	for uid, userRecords := range byUser {
		latest := LatestRecord(userRecords)
		p := Chain(
			TrendStrategy(ElectricitySeries(userRecords), SourceUserTrend),
			TrendStrategy(pool, SourceGlobalTrend),
			MeanStrategy(pool, SourceGlobalMean),
			ConstantStrategy(latest.ElectricityUnits, SourceLatest),
		)
		entries = append(entries, LeaderboardEntry{
			UserID:         uid,
			Username:       names[uid],
			Score:          EcoScore(latest.ElectricityUnits, p),
			LatestValue:    latest.ElectricityUnits,
			PredictedValue: math.Round(p.Value*100) / 100,
			Source:         p.Source,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Username != b.Username {
			return a.Username < b.Username
		}
		return a.UserID.String() < b.UserID.String()
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// LatestRecord returns the chronologically last record. Among records of the
// same day the one appearing last in the slice wins. records must not be empty.
func LatestRecord(records []entity.UsageRecord) entity.UsageRecord {
	latest := records[0]
	for _, r := range records[1:] {
		if !entity.Day(r.Date).Before(entity.Day(latest.Date)) {
			latest = r
		}
	}
	return latest
}
