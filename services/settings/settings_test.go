package settings_test

import (
	"context"
	"testing"

	"pictocat/models/postgres"
	"pictocat/services/apperr"
	"pictocat/services/settings"
	"pictocat/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetReturnsSeededRow(t *testing.T) {
	db := testutil.NewDB(t)
	svc := settings.NewService(db, nil, zap.NewNop())

	got, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 500, got.StartingCoins)
	assert.Equal(t, 3, got.DailyMissionCount)
	assert.InDelta(t, 0.666, got.FriendBonusStep, 1e-9)
	assert.True(t, got.TradeRequiresFriendship)
}

func TestUpdate(t *testing.T) {
	db := testutil.NewDB(t)
	svc := settings.NewService(db, nil, zap.NewNop())
	ctx := context.Background()

	current, err := svc.Get(ctx)
	require.NoError(t, err)
	current.StartingCoins = 750
	current.TradeRequiresFriendship = false

	_, err = svc.Update(ctx, current)
	require.NoError(t, err)

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 750, got.StartingCoins)
	assert.False(t, got.TradeRequiresFriendship)

	var count int64
	require.NoError(t, db.Model(&postgres.EconomySettings{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpdateRejectsInvalidValues(t *testing.T) {
	db := testutil.NewDB(t)
	svc := settings.NewService(db, nil, zap.NewNop())

	_, err := svc.Update(context.Background(), postgres.EconomySettings{StartingCoins: -1})
	assert.True(t, apperr.Is(err, apperr.InvalidInput))

	_, err = svc.Update(context.Background(), postgres.EconomySettings{DailyMissionCount: 99})
	assert.True(t, apperr.Is(err, apperr.InvalidInput))
}
