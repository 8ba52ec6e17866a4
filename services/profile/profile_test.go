package profile_test

import (
	"context"
	"errors"
	"testing"

	"pictocat/models/postgres"
	"pictocat/services/apperr"
	"pictocat/services/missions"
	"pictocat/services/profile"
	"pictocat/services/settings"
	"pictocat/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const adminSubject = "google-oauth2|admin"

func newService(t *testing.T) (*profile.Service, *gorm.DB) {
	db := testutil.NewDB(t)
	cfg := settings.NewService(db, nil, zap.NewNop())
	m := missions.NewService(db, cfg, zap.NewNop())
	return profile.NewService(db, cfg, m, zap.NewNop(), adminSubject), db
}

func TestEnsureCreatesDefaultProfile(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	p, err := svc.Ensure(ctx, profile.Identity{Subject: "auth0|1", Email: "gatito@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "gatito", p.Username)
	assert.Equal(t, "user", p.Role)
	assert.Equal(t, 500, p.Data.Coins)
	assert.Len(t, p.Data.Phrases, 5)
	assert.Empty(t, p.Data.UnlockedImageIDs)
	assert.Equal(t, 1, p.Data.PlayerStats.Level)
	assert.Len(t, p.Data.DailyMissions, 3, "first sight rolls the daily missions")

	again, err := svc.Ensure(ctx, profile.Identity{Subject: "auth0|1", Email: "gatito@example.com"})
	require.NoError(t, err)
	assert.Equal(t, p.Data.DailyMissions, again.Data.DailyMissions, "no second rollover on the same day")
}

func TestEnsureDeduplicatesUsernames(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	first, err := svc.Ensure(ctx, profile.Identity{Subject: "auth0|1", Email: "gatito@example.com"})
	require.NoError(t, err)
	second, err := svc.Ensure(ctx, profile.Identity{Subject: "auth0|2", Email: "gatito@other.org"})
	require.NoError(t, err)

	assert.NotEqual(t, first.Username, second.Username)
	assert.True(t, profile.ValidUsername(second.Username))
}

func TestEnsurePromotesAdminSubject(t *testing.T) {
	svc, db := newService(t)
	testutil.Player(t, db, adminSubject, func(p *postgres.Player) { p.Username = "boss" })

	p, err := svc.Ensure(context.Background(), profile.Identity{Subject: adminSubject})
	require.NoError(t, err)
	assert.Equal(t, "admin", p.Role)
}

func TestUpdateProfile(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()
	testutil.Player(t, db, "alice", nil)
	testutil.Player(t, db, "bob", nil)
	require.NoError(t, db.Create(&postgres.PublicPhrase{UserID: "alice", PhraseID: "p1", Text: "Hola", Username: "alice"}).Error)

	err := svc.UpdateProfile(ctx, "alice", "a!", "bio")
	assert.True(t, apperr.Is(err, apperr.InvalidInput))

	err = svc.UpdateProfile(ctx, "alice", "bob", "bio")
	assert.True(t, apperr.Is(err, apperr.Conflict))

	require.NoError(t, svc.UpdateProfile(ctx, "alice", "alice_cat", "Me gustan los gatos"))
	p, err := svc.Profile(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice_cat", p.Username)
	assert.Equal(t, "Me gustan los gatos", p.Data.Bio)

	var phrase postgres.PublicPhrase
	require.NoError(t, db.Where("user_id = ?", "alice").First(&phrase).Error)
	assert.Equal(t, "alice_cat", phrase.Username)
}

func TestSaveDataSyncsPublicPhrases(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()
	items := testutil.CatalogItems(t, db, "space", 2)
	testutil.Player(t, db, "alice", nil)
	testutil.Unlock(t, db, "alice", items[0].ID)

	owned, notOwned := items[0].ID, items[1].ID
	phrases := []postgres.Phrase{
		{ID: "yes", Text: "Sí"},
		{ID: "c1", Text: "Quiero jugar", IsCustom: true, IsPublic: true, SelectedImageID: &owned},
		{ID: "c2", Text: "Privada", IsCustom: true, SelectedImageID: &owned},
		{ID: "c3", Text: "Robada", IsCustom: true, IsPublic: true, SelectedImageID: &notOwned},
	}
	require.NoError(t, svc.SaveData(ctx, "alice", phrases))

	var public []postgres.PublicPhrase
	require.NoError(t, db.Find(&public).Error)
	require.Len(t, public, 1)
	assert.Equal(t, "c1", public[0].PhraseID)
	assert.Equal(t, items[0].URL, public[0].ImageURL)
	assert.Equal(t, "space", public[0].ImageTheme)

	p, err := svc.Profile(ctx, "alice")
	require.NoError(t, err)
	assert.Nil(t, p.Data.Phrases[3].SelectedImageID, "unowned selection cleared")

	// making it private removes it from the feed
	phrases[1].IsPublic = false
	require.NoError(t, svc.SaveData(ctx, "alice", phrases))
	var count int64
	require.NoError(t, db.Model(&postgres.PublicPhrase{}).Count(&count).Error)
	assert.Zero(t, count)

	err = svc.SaveData(ctx, "alice", []postgres.Phrase{{ID: "a", Text: "x"}, {ID: "a", Text: "y"}})
	assert.True(t, apperr.Is(err, apperr.InvalidInput))
}

func TestSetAvatar(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()
	items := testutil.CatalogItems(t, db, "space", 2)
	testutil.Player(t, db, "alice", nil)
	testutil.Unlock(t, db, "alice", items[0].ID)

	err := svc.SetAvatar(ctx, "alice", &items[1].ID)
	assert.True(t, apperr.Is(err, apperr.InvalidItems))

	require.NoError(t, svc.SetAvatar(ctx, "alice", &items[0].ID))
	p, err := svc.Profile(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, p.Data.AvatarItemID)
	assert.Equal(t, items[0].ID, *p.Data.AvatarItemID)

	require.NoError(t, svc.SetAvatar(ctx, "alice", nil))
	p, err = svc.Profile(ctx, "alice")
	require.NoError(t, err)
	assert.Nil(t, p.Data.AvatarItemID)
}

func TestPurchaseUpgrade(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()
	testutil.Player(t, db, "rich", func(p *postgres.Player) { p.Coins = 5000; p.Level = 4 })
	testutil.Player(t, db, "poor", func(p *postgres.Player) { p.Coins = 10; p.Level = 4 })

	_, err := svc.PurchaseUpgrade(ctx, "rich", "nope")
	assert.True(t, apperr.Is(err, apperr.NotFound))

	_, err = svc.PurchaseUpgrade(ctx, "rich", "extraTime")
	assert.True(t, apperr.Is(err, apperr.Forbidden), "level 7 required")

	_, err = svc.PurchaseUpgrade(ctx, "poor", "goldenPaw")
	assert.True(t, apperr.Is(err, apperr.InsufficientFunds))

	res, err := svc.PurchaseUpgrade(ctx, "rich", "goldenPaw")
	require.NoError(t, err)
	assert.Equal(t, 4000, res.NewCoins)
	assert.Equal(t, []string{"goldenPaw"}, res.PurchasedUpgrades)

	_, err = svc.PurchaseUpgrade(ctx, "rich", "goldenPaw")
	assert.True(t, apperr.Is(err, apperr.Conflict))
}

func TestMigrateLegacyFriends(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()
	testutil.Player(t, db, "alice", func(p *postgres.Player) { p.SetLegacyFriends([]string{"bob", "carol", "ghost", "alice"}) })
	testutil.Player(t, db, "bob", func(p *postgres.Player) { p.SetLegacyFriends([]string{"alice"}) })
	testutil.Player(t, db, "carol", nil)

	created, err := svc.MigrateLegacyFriends(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, created)

	created, err = svc.MigrateLegacyFriends(ctx)
	require.NoError(t, err)
	assert.Zero(t, created)

	var friendships []postgres.Friendship
	require.NoError(t, db.Find(&friendships).Error)
	assert.Len(t, friendships, 2)
	for _, f := range friendships {
		assert.Less(t, f.User1ID, f.User2ID)
		assert.Equal(t, 1, f.Level)
	}

	var alice postgres.Player
	require.NoError(t, db.Where("id = ?", "alice").First(&alice).Error)
	legacy, err := alice.GetLegacyFriends()
	require.NoError(t, err)
	assert.Empty(t, legacy)
}

func TestRepairAll(t *testing.T) {
	svc, db := newService(t)
	testutil.Player(t, db, "broken", func(p *postgres.Player) { p.Phrases = nil; p.Level = 0 })
	testutil.Player(t, db, "fine", func(p *postgres.Player) { p.SchemaVersion = 2 })

	repaired, err := svc.RepairAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, repaired)

	p, err := svc.Profile(context.Background(), "broken")
	require.NoError(t, err)
	assert.Len(t, p.Data.Phrases, 5)
	assert.Equal(t, 1, p.Data.PlayerStats.Level)
}

func TestRepairAllStopsAtFailedWrite(t *testing.T) {
	svc, db := newService(t)
	broken := func(p *postgres.Player) { p.Phrases = nil; p.Level = 0 }
	testutil.Player(t, db, "a-broken", broken)
	testutil.Player(t, db, "b-broken", broken)

	err := db.Callback().Update().Before("gorm:update").Register("test:fail_b", func(tx *gorm.DB) {
		if p, ok := tx.Statement.Model.(*postgres.Player); ok && p.ID == "b-broken" {
			_ = tx.AddError(errors.New("disk full"))
		}
	})
	require.NoError(t, err)

	repaired, err := svc.RepairAll(context.Background())
	assert.ErrorContains(t, err, "repairing b-broken")
	assert.Equal(t, 1, repaired)
}
