package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/ecosaver/internal/analytics"
	"github.com/limbo/ecosaver/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/service_mock.go -package=mocks

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type AddUsageRequest struct {
	Date             time.Time `validate:"required"`
	ElectricityUnits float64   `validate:"gte=0"`
	WaterLiters      int       `validate:"gte=0"`
	HouseholdSize    int       `validate:"gte=1"`
}

type EstimateRequest struct {
	Text          string    `validate:"required,max=4000"`
	Date          time.Time `validate:"required"`
	HouseholdSize int       `validate:"gte=1"`
}

type Insights struct {
	Latest         entity.UsageRecord   `json:"latest"`
	Prediction     analytics.Prediction `json:"prediction"`
	EcoScore       int                  `json:"eco_score"`
	FootprintKg    float64              `json:"co2_kg"`
	WaterPerPerson float64              `json:"water_per_person"`
	Suggestions    []string             `json:"suggestions"`
}

type Forecast struct {
	Prediction analytics.Prediction     `json:"prediction"`
	Daily      []analytics.DailyAverage `json:"daily"`
}

type EstimateResult struct {
	Record      entity.UsageRecord   `json:"record"`
	Activity    entity.Activity      `json:"activity"`
	Prediction  analytics.Prediction `json:"prediction"`
	EcoScore    int                  `json:"eco_score"`
	Suggestions []string             `json:"suggestions"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

type UsageServiceI interface {
	// Validates and appends a daily record for the user
	AddUsage(ctx context.Context, uid uuid.UUID, req *AddUsageRequest) (*entity.UsageRecord, error)
	// Returns user's records ascending by date. Nil bounds are open
	GetUsage(ctx context.Context, uid uuid.UUID, from, to *time.Time) ([]entity.UsageRecord, error)
}

type AnalyticsServiceI interface {
	Insights(ctx context.Context, uid uuid.UUID) (*Insights, error)
	Forecast(ctx context.Context) (*Forecast, error)
	Leaderboard(ctx context.Context) ([]analytics.LeaderboardEntry, error)
	Stats(ctx context.Context) ([]analytics.UserStat, error)
	Savings(w analytics.WhatIf) (analytics.Savings, error)
}

type EstimationServiceI interface {
	// Extracts activity from free text, estimates usage and stores it as a new record
	EstimateAndSave(ctx context.Context, uid uuid.UUID, req *EstimateRequest) (*EstimateResult, error)
}
