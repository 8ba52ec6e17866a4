package economy_test

import (
	"context"
	"testing"

	"pictocat/models/postgres"
	"pictocat/services/apperr"
	"pictocat/services/economy"
	"pictocat/services/missions"
	"pictocat/services/settings"
	"pictocat/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newService(t *testing.T) (*economy.Service, *gorm.DB) {
	db := testutil.NewDB(t)
	m := missions.NewService(db, settings.NewService(db, nil, zap.NewNop()), zap.NewNop())
	return economy.NewService(db, nil, m, zap.NewNop()), db
}

func ownedIDs(t *testing.T, db *gorm.DB, id string) []int {
	var ids []int
	require.NoError(t, db.Model(&postgres.UnlockedItem{}).Where("player_id = ?", id).Order("item_id").Pluck("item_id", &ids).Error)
	return ids
}

func coins(t *testing.T, db *gorm.DB, id string) int {
	var p postgres.Player
	require.NoError(t, db.Where("id = ?", id).First(&p).Error)
	return p.Coins
}

func TestPurchaseFullEnvelope(t *testing.T) {
	svc, db := newService(t)
	testutil.CatalogItems(t, db, "cats", 10)
	testutil.Player(t, db, "alice", nil)

	res, err := svc.Purchase(context.Background(), "alice", "bronze")
	require.NoError(t, err)
	assert.Equal(t, 400, res.NewCoins)
	assert.Equal(t, 100, res.Cost)
	assert.Len(t, res.NewImages, 3)
	assert.Equal(t, 400, coins(t, db, "alice"))
	assert.Len(t, ownedIDs(t, db, "alice"), 3)
}

func TestPurchaseProratesLastImages(t *testing.T) {
	svc, db := newService(t)
	items := testutil.CatalogItems(t, db, "cats", 4)
	testutil.Player(t, db, "alice", nil)
	testutil.Unlock(t, db, "alice", items[0].ID, items[1].ID, items[2].ID)

	res, err := svc.Purchase(context.Background(), "alice", "bronze")
	require.NoError(t, err)
	assert.Equal(t, 34, res.Cost)
	assert.Equal(t, 466, res.NewCoins)
	require.Len(t, res.NewImages, 1)
	assert.Equal(t, items[3].ID, res.NewImages[0].ID)
}

func TestPurchaseExhaustedEnvelope(t *testing.T) {
	svc, db := newService(t)
	items := testutil.CatalogItems(t, db, "cats", 2)
	testutil.Player(t, db, "alice", nil)
	testutil.Unlock(t, db, "alice", items[0].ID, items[1].ID)

	_, err := svc.Purchase(context.Background(), "alice", "bronze")
	assert.True(t, apperr.Is(err, apperr.OfferExhausted))
	assert.Equal(t, 500, coins(t, db, "alice"))
}

func TestPurchaseInsufficientFunds(t *testing.T) {
	svc, db := newService(t)
	testutil.CatalogItems(t, db, "cats", 10)
	testutil.Player(t, db, "alice", func(p *postgres.Player) { p.Coins = 99 })

	_, err := svc.Purchase(context.Background(), "alice", "bronze")
	assert.True(t, apperr.Is(err, apperr.InsufficientFunds))
	assert.Equal(t, 99, coins(t, db, "alice"))
	assert.Empty(t, ownedIDs(t, db, "alice"))
}

func TestPurchaseUnknownEnvelope(t *testing.T) {
	svc, db := newService(t)
	testutil.Player(t, db, "alice", nil)

	_, err := svc.Purchase(context.Background(), "alice", "platinum")
	assert.True(t, apperr.Is(err, apperr.InvalidOffer))
}

func TestPurchaseRespectsThemePool(t *testing.T) {
	svc, db := newService(t)
	space := testutil.CatalogItems(t, db, "space", 3)
	testutil.CatalogItems(t, db, "food", 5)
	testutil.Player(t, db, "alice", func(p *postgres.Player) { p.Coins = 1000 })

	themed := postgres.Envelope{ID: "cosmic", Name: "Cosmic", BaseCost: 100, ImageCount: 3, XP: 120}
	themed.SetThemes([]string{"space"})
	require.NoError(t, db.Create(&themed).Error)

	res, err := svc.Purchase(context.Background(), "alice", "cosmic")
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{space[0].ID, space[1].ID, space[2].ID}, ownedIDs(t, db, "alice"))
	assert.Equal(t, 2, res.PlayerStats.Level, "envelope xp levels the player up")
	assert.Equal(t, 20, res.PlayerStats.XP)
}

func TestRepeatedPurchasesNeverDuplicate(t *testing.T) {
	svc, db := newService(t)
	testutil.CatalogItems(t, db, "cats", 7)
	testutil.Player(t, db, "alice", func(p *postgres.Player) { p.Coins = 10000 })
	ctx := context.Background()

	total := 0
	for i := 0; i < 3; i++ {
		res, err := svc.Purchase(ctx, "alice", "bronze")
		require.NoError(t, err)
		total += len(res.NewImages)
	}
	assert.Equal(t, 7, total, "3 + 3 + 1")
	assert.Len(t, ownedIDs(t, db, "alice"), 7)

	_, err := svc.Purchase(ctx, "alice", "bronze")
	assert.True(t, apperr.Is(err, apperr.OfferExhausted))
}

func TestPurchaseRecordsOpenEnvelopeMission(t *testing.T) {
	svc, db := newService(t)
	testutil.CatalogItems(t, db, "cats", 5)
	testutil.Player(t, db, "alice", func(p *postgres.Player) {
		p.SetDailyMissions([]postgres.DailyMission{{ID: "open_1_envelope", Type: "OPEN_ENVELOPE", Goal: 1}})
	})

	_, err := svc.Purchase(context.Background(), "alice", "bronze")
	require.NoError(t, err)

	var p postgres.Player
	require.NoError(t, db.Where("id = ?", "alice").First(&p).Error)
	list, err := p.GetDailyMissions()
	require.NoError(t, err)
	assert.Equal(t, 1, list[0].Progress)
}

func TestShopDataIsSorted(t *testing.T) {
	svc, _ := newService(t)

	data, err := svc.ShopData(context.Background())
	require.NoError(t, err)
	require.Len(t, data.Envelopes, 3)
	assert.Equal(t, "bronze", data.Envelopes[0].ID)
	assert.Equal(t, "gold", data.Envelopes[2].ID)
	require.Len(t, data.Upgrades, 3)
	assert.Equal(t, "goldenPaw", data.Upgrades[0].ID)
}
