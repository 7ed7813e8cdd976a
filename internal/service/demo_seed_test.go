package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/ecosaver/internal/repository/mocks"
	"github.com/limbo/ecosaver/internal/service"
	"github.com/limbo/ecosaver/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoSeed(t *testing.T) {
	ctx := context.Background()

	t.Run("skipped on populated store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mocks.NewMockUsersRepositoryI(ctrl)
		usage := mocks.NewMockUsageRepositoryI(ctrl)
		users.EXPECT().Count(gomock.Any()).Return(1, nil)
		seeded, err := service.NewDemoSeeder(users, usage, clock).Seed(ctx)
		require.NoError(t, err)
		assert.False(t, seeded)
	})

	run := func(t *testing.T) []entity.UsageRecord {
		ctrl := gomock.NewController(t)
		users := mocks.NewMockUsersRepositoryI(ctrl)
		usage := mocks.NewMockUsageRepositoryI(ctrl)
		stored := make([]entity.UsageRecord, 0)
		users.EXPECT().Count(gomock.Any()).Return(0, nil)
		users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(3)
		users.EXPECT().FindByName(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, name string) (*entity.User, error) {
			return &entity.User{ID: uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)), Name: name}, nil
		}).Times(3)
		usage.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r *entity.UsageRecord) error {
			stored = append(stored, *r)
			return nil
		}).Times(3 * service.DemoDays)
		seeded, err := service.NewDemoSeeder(users, usage, clock).Seed(ctx)
		require.NoError(t, err)
		assert.True(t, seeded)
		return stored
	}

	t.Run("deterministic data ending today", func(t *testing.T) {
		first := run(t)
		second := run(t)
		assert.Equal(t, first, second)
		assert.Equal(t, day(-(service.DemoDays - 1)), first[0].Date)
		assert.Equal(t, day(0), first[service.DemoDays-1].Date)
		for _, r := range first {
			assert.GreaterOrEqual(t, r.ElectricityUnits, 0.5)
			assert.GreaterOrEqual(t, r.WaterLiters, 40)
		}
	})
}
