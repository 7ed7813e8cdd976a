package service

import (
	"context"
	"errors"
	"log"
	"log/slog"

	"github.com/google/uuid"
	"github.com/limbo/ecosaver/internal/analytics"
	errorvalues "github.com/limbo/ecosaver/internal/error_values"
	"github.com/limbo/ecosaver/internal/extraction"
	"github.com/limbo/ecosaver/internal/repository"
	"github.com/limbo/ecosaver/pkg/entity"
)

type EstimationService struct {
	repo      repository.UsageRepositoryI
	extractor extraction.ExtractorI
	rates     analytics.Rates
	opts      options
}

func NewEstimationService(usageRepo repository.UsageRepositoryI, extractor extraction.ExtractorI, opts ...Option) *EstimationService {
	if usageRepo == nil || extractor == nil {
		log.Fatal("on estimation service provided nil dependencies")
	}
	return &EstimationService{
		repo:      usageRepo,
		extractor: extractor,
		rates:     analytics.DefaultRates,
		opts:      newOptions(opts),
	}
}

// EstimateAndSave scores the new record against the prediction made before it was stored.
func (s *EstimationService) EstimateAndSave(ctx context.Context, uid uuid.UUID, req *EstimateRequest) (*EstimateResult, error) {
	if req == nil {
		return nil, errorvalues.ErrInvalidUsage
	}
	if err := validateStruct(req, errorvalues.ErrInvalidUsage); err != nil {
		return nil, err
	}
	if isFuture(req.Date, s.opts.now()) {
		return nil, errorvalues.ErrDateNotAllowed
	}
	activity, err := s.extractor.Extract(ctx, req.Text)
	if err != nil {
		return nil, err
	}
	if len(activity.MissingFields) > 0 {
		s.opts.logger.Info("extraction defaulted fields to zero", slog.Any("fields", activity.MissingFields))
	}
	estimate := analytics.EstimateUsage(activity, req.HouseholdSize, s.rates)

	records, err := s.repo.Fetch(ctx, entity.UsageFilter{})
	if err != nil {
		return nil, errors.New("usage repository error: " + err.Error())
	}
	history := analytics.RecentHistory(records)
	p := predictFor(recordsOf(history, uid), history)

	record := &entity.UsageRecord{
		UserID:           uid,
		Date:             entity.Day(req.Date),
		ElectricityUnits: estimate.ElectricityKWh,
		WaterLiters:      estimate.WaterLiters,
		HouseholdSize:    req.HouseholdSize,
	}
	if err = s.repo.Append(ctx, record); err != nil {
		return nil, appendError(err)
	}
	s.opts.logger.Debug("estimated usage stored",
		slog.String("uid", uid.String()),
		slog.Float64("electricity_units", record.ElectricityUnits),
		slog.Int("water_liters", record.WaterLiters),
		slog.String("source", string(p.Source)),
	)
	return &EstimateResult{
		Record:      *record,
		Activity:    activity,
		Prediction:  p,
		EcoScore:    analytics.EcoScore(record.ElectricityUnits, p),
		Suggestions: analytics.Suggestions(record.ElectricityUnits, p, record),
	}, nil
}
