package service

import (
	"context"
	"errors"
	"log"
	"log/slog"

	"github.com/google/uuid"
	"github.com/limbo/ecosaver/internal/analytics"
	errorvalues "github.com/limbo/ecosaver/internal/error_values"
	"github.com/limbo/ecosaver/internal/repository"
	"github.com/limbo/ecosaver/pkg/entity"
)

// AnalyticsService computes every view over a snapshot fetched at the start
// of the call. It keeps no state between calls.
type AnalyticsService struct {
	repo repository.UsageRepositoryI
	opts options
}

func NewAnalyticsService(usageRepo repository.UsageRepositoryI, opts ...Option) *AnalyticsService {
	if usageRepo == nil {
		log.Fatal("provided nil usageRepo")
	}
	return &AnalyticsService{
		repo: usageRepo,
		opts: newOptions(opts),
	}
}

func (s *AnalyticsService) history(ctx context.Context) ([]entity.UsageRecord, error) {
	records, err := s.repo.Fetch(ctx, entity.UsageFilter{})
	if err != nil {
		return nil, errors.New("usage repository error: " + err.Error())
	}
	return analytics.RecentHistory(records), nil
}

func (s *AnalyticsService) Insights(ctx context.Context, uid uuid.UUID) (*Insights, error) {
	history, err := s.history(ctx)
	if err != nil {
		return nil, err
	}
	user := recordsOf(history, uid)
	if len(user) == 0 {
		return nil, errorvalues.ErrNoUsageRecords
	}
	latest := analytics.LatestRecord(user)
	p := predictFor(user, history)
	s.opts.logger.Debug("insights prediction",
		slog.String("uid", uid.String()),
		slog.String("source", string(p.Source)),
		slog.Int("user_points", len(user)),
		slog.Int("pool_points", len(history)),
	)
	return &Insights{
		Latest:         latest,
		Prediction:     p,
		EcoScore:       analytics.EcoScore(latest.ElectricityUnits, p),
		FootprintKg:    analytics.Footprint(latest.ElectricityUnits, latest.WaterLiters),
		WaterPerPerson: analytics.WaterPerPerson(latest),
		Suggestions:    analytics.Suggestions(latest.ElectricityUnits, p, &latest),
	}, nil
}

func (s *AnalyticsService) Forecast(ctx context.Context) (*Forecast, error) {
	history, err := s.history(ctx)
	if err != nil {
		return nil, err
	}
	p := analytics.GlobalPrediction(analytics.ElectricitySeries(history))
	s.opts.logger.Debug("global forecast", slog.String("source", string(p.Source)), slog.Int("pool_points", len(history)))
	return &Forecast{
		Prediction: p,
		Daily:      analytics.DailyAverages(history),
	}, nil
}

func (s *AnalyticsService) Leaderboard(ctx context.Context) ([]analytics.LeaderboardEntry, error) {
	from, to := analytics.LeaderboardWindow(s.opts.now())
	records, err := s.repo.Fetch(ctx, entity.UsageFilter{From: &from, To: &to})
	if err != nil {
		return nil, errors.New("usage repository error: " + err.Error())
	}
	return analytics.Leaderboard(records), nil
}

func (s *AnalyticsService) Stats(ctx context.Context) ([]analytics.UserStat, error) {
	history, err := s.history(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.UserStats(history), nil
}

func (s *AnalyticsService) Savings(w analytics.WhatIf) (analytics.Savings, error) {
	if err := validateStruct(&w, errorvalues.ErrInvalidScenario); err != nil {
		return analytics.Savings{}, err
	}
	return analytics.EstimateSavings(w), nil
}

func recordsOf(records []entity.UsageRecord, uid uuid.UUID) []entity.UsageRecord {
	result := make([]entity.UsageRecord, 0)
	for _, r := range records {
		if r.UserID == uid {
			result = append(result, r)
		}
	}
	return result
}

// predictFor runs the user chain with the whole history as the pool.
func predictFor(user, pool []entity.UsageRecord) analytics.Prediction {
	return analytics.UserPrediction(analytics.ElectricitySeries(user), analytics.ElectricitySeries(pool))
}
