package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/ecosaver/internal/error_values"
	"github.com/limbo/ecosaver/internal/repository"
	"github.com/limbo/ecosaver/pkg/entity"
)

type UsageService struct {
	repo repository.UsageRepositoryI
	opts options
}

func NewUsageService(usageRepo repository.UsageRepositoryI, opts ...Option) *UsageService {
	if usageRepo == nil {
		log.Fatal("provided nil usageRepo")
	}
	return &UsageService{
		repo: usageRepo,
		opts: newOptions(opts),
	}
}

func (s *UsageService) AddUsage(ctx context.Context, uid uuid.UUID, req *AddUsageRequest) (*entity.UsageRecord, error) {
	if req == nil {
		return nil, errorvalues.ErrInvalidUsage
	}
	if err := validateStruct(req, errorvalues.ErrInvalidUsage); err != nil {
		return nil, err
	}
	if isFuture(req.Date, s.opts.now()) {
		return nil, errorvalues.ErrDateNotAllowed
	}
	record := &entity.UsageRecord{
		UserID:           uid,
		Date:             entity.Day(req.Date),
		ElectricityUnits: req.ElectricityUnits,
		WaterLiters:      req.WaterLiters,
		HouseholdSize:    req.HouseholdSize,
	}
	if err := s.repo.Append(ctx, record); err != nil {
		return nil, appendError(err)
	}
	return record, nil
}

func (s *UsageService) GetUsage(ctx context.Context, uid uuid.UUID, from, to *time.Time) ([]entity.UsageRecord, error) {
	if from != nil && to != nil && entity.Day(*from).After(entity.Day(*to)) {
		return nil, errorvalues.ErrInvalidDateSpan
	}
	records, err := s.repo.Fetch(ctx, entity.UsageFilter{
		UserID: &uid,
		From:   from,
		To:     to,
	})
	if err != nil {
		return nil, errors.New("usage repository error: " + err.Error())
	}
	return records, nil
}

// isFuture compares calendar days, so any time today is allowed.
func isFuture(date, now time.Time) bool {
	return entity.Day(date).After(entity.Day(now))
}

func appendError(err error) error {
	switch {
	case errors.Is(err, errorvalues.ErrUserNotFound):
		return errorvalues.ErrUserNotFound
	case errors.Is(err, errorvalues.ErrInvalidUsage):
		return errorvalues.ErrInvalidUsage
	}
	return errors.New("usage repository error: " + err.Error())
}
