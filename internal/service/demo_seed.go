package service

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"math/rand/v2"

	"github.com/limbo/ecosaver/internal/repository"
	"github.com/limbo/ecosaver/pkg/entity"
)

const (
	DemoDays     = 10
	DemoPassword = "ecosaver_demo"
)

type demoProfile struct {
	name          string
	householdSize int
	electricity   float64
	water         float64
}

var demoProfiles = []demoProfile{
	{name: "arya", householdSize: 3, electricity: 3.5, water: 120},
	{name: "dev", householdSize: 3, electricity: 5.0, water: 180},
	{name: "mira", householdSize: 1, electricity: 2.5, water: 80},
}

type DemoSeeder struct {
	users repository.UsersRepositoryI
	usage repository.UsageRepositoryI
	opts  options
}

func NewDemoSeeder(usersRepo repository.UsersRepositoryI, usageRepo repository.UsageRepositoryI, opts ...Option) *DemoSeeder {
	return &DemoSeeder{
		users: usersRepo,
		usage: usageRepo,
		opts:  newOptions(opts),
	}
}

// Seed fills an empty store with demo users and DemoDays of usage ending
// today. The values are the same on every run. Reports whether it seeded.
func (d *DemoSeeder) Seed(ctx context.Context) (bool, error) {
	count, err := d.users.Count(ctx)
	if err != nil {
		return false, errors.New("users repository error: " + err.Error())
	}
	if count > 0 {
		return false, nil
	}
	passwordHash, err := Hash(DemoPassword)
	if err != nil {
		return false, errors.New("hashing password error: " + err.Error())
	}
	rng := rand.New(rand.NewPCG(1, 1))
	start := entity.Day(d.opts.now()).AddDate(0, 0, -(DemoDays - 1))
	for _, profile := range demoProfiles {
		err = d.users.Create(ctx, &entity.User{Name: profile.name, PasswordHash: passwordHash})
		if err != nil {
			return false, errors.New("creating demo user error: " + err.Error())
		}
		user, err := d.users.FindByName(ctx, profile.name)
		if err != nil {
			return false, errors.New("searching demo user error: " + err.Error())
		}
		for i := range DemoDays {
			record := &entity.UsageRecord{
				UserID:           user.ID,
				Date:             start.AddDate(0, 0, i),
				ElectricityUnits: math.Max(0.5, math.Round(normal(rng, profile.electricity, 0.8)*100)/100),
				WaterLiters:      int(math.Max(40, normal(rng, profile.water, 25))),
				HouseholdSize:    profile.householdSize,
			}
			if err = d.usage.Append(ctx, record); err != nil {
				return false, errors.New("appending demo usage error: " + err.Error())
			}
		}
	}
	d.opts.logger.Info("demo data seeded", slog.Int("users", len(demoProfiles)), slog.Int("days", DemoDays))
	return true, nil
}

func normal(rng *rand.Rand, mean, stddev float64) float64 {
	return mean + stddev*rng.NormFloat64()
}
