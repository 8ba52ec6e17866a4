package community_test

import (
	"context"
	"testing"

	game_constants "pictocat/constants/game"
	"pictocat/models/postgres"
	"pictocat/services/apperr"
	"pictocat/services/community"
	"pictocat/services/friendship"
	"pictocat/services/missions"
	"pictocat/services/settings"
	"pictocat/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fixture struct {
	svc     *community.Service
	friends *friendship.Service
	db      *gorm.DB
	items   []postgres.CatalogItem
}

func newFixture(t *testing.T) fixture {
	db := testutil.NewDB(t)
	cfg := settings.NewService(db, nil, zap.NewNop())
	friends := friendship.NewService(db, cfg, nil, zap.NewNop())
	svc := community.NewService(db, nil, missions.NewService(db, cfg, zap.NewNop()), friends, zap.NewNop())
	items := testutil.CatalogItems(t, db, "cats", 3)
	return fixture{svc: svc, friends: friends, db: db, items: items}
}

func imageID(id int) *int { return &id }

// publish stores phrases for the player and syncs them like a profile save does.
func publish(t *testing.T, db *gorm.DB, player *postgres.Player, phrases []postgres.Phrase) {
	player.SetPhrases(phrases)
	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(player).Update("phrases", player.Phrases).Error; err != nil {
			return err
		}
		return community.SyncPublicPhrases(tx, player)
	}))
}

func publicPhrases(t *testing.T, db *gorm.DB, userID string) []postgres.PublicPhrase {
	var rows []postgres.PublicPhrase
	require.NoError(t, db.Where("user_id = ?", userID).Order("phrase_id").Find(&rows).Error)
	return rows
}

func TestSyncPublicPhrases(t *testing.T) {
	f := newFixture(t)
	alice := testutil.Player(t, f.db, "alice", func(p *postgres.Player) { p.IsVerified = true })
	testutil.Unlock(t, f.db, "alice", f.items[0].ID)

	publish(t, f.db, alice, []postgres.Phrase{
		{ID: "p1", Text: "Tengo hambre", SelectedImageID: imageID(f.items[0].ID), IsCustom: true, IsPublic: true},
		{ID: "p2", Text: "Private", SelectedImageID: imageID(f.items[0].ID), IsCustom: true},
		{ID: "p3", Text: "No image", IsCustom: true, IsPublic: true},
		{ID: "p4", Text: "Default", SelectedImageID: imageID(f.items[0].ID), IsPublic: true},
	})
	rows := publicPhrases(t, f.db, "alice")
	require.Len(t, rows, 1)
	assert.Equal(t, "p1", rows[0].PhraseID)
	assert.Equal(t, f.items[0].URL, rows[0].ImageURL)
	assert.Equal(t, "alice", rows[0].Username)
	assert.True(t, rows[0].IsUserVerified)

	// re-sync updates in place and keeps the row id
	publish(t, f.db, alice, []postgres.Phrase{
		{ID: "p1", Text: "Tengo sueño", SelectedImageID: imageID(f.items[0].ID), IsCustom: true, IsPublic: true},
	})
	updated := publicPhrases(t, f.db, "alice")
	require.Len(t, updated, 1)
	assert.Equal(t, rows[0].ID, updated[0].ID)
	assert.Equal(t, "Tengo sueño", updated[0].Text)

	require.NoError(t, f.db.Create(&postgres.PhraseLike{PublicPhraseID: rows[0].ID, PlayerID: "bob"}).Error)
	publish(t, f.db, alice, []postgres.Phrase{{ID: "p1", Text: "Tengo sueño", IsCustom: true}})
	assert.Empty(t, publicPhrases(t, f.db, "alice"))

	var likes int64
	require.NoError(t, f.db.Model(&postgres.PhraseLike{}).Count(&likes).Error)
	assert.Zero(t, likes)
}

func TestToggleLike(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	alice := testutil.Player(t, f.db, "alice", nil)
	testutil.Player(t, f.db, "bob", func(p *postgres.Player) {
		p.SetDailyMissions([]postgres.DailyMission{{
			ID: "like_3_phrases", Type: game_constants.MISSION_LIKE_PUBLIC_PHRASE, Goal: 3, RewardCoins: 50,
		}})
	})
	testutil.Unlock(t, f.db, "alice", f.items[0].ID)
	publish(t, f.db, alice, []postgres.Phrase{
		{ID: "p1", Text: "Miau", SelectedImageID: imageID(f.items[0].ID), IsCustom: true, IsPublic: true},
	})
	phrase := publicPhrases(t, f.db, "alice")[0]

	fs := testutil.Friends(t, f.db, "alice", "bob", 1)
	_, err := f.friends.StartMission(ctx, "bob", fs.ID, "like_5_phrases")
	require.NoError(t, err)

	_, err = f.svc.ToggleLike(ctx, "bob", "missing")
	assert.True(t, apperr.Is(err, apperr.NotFound))

	res, err := f.svc.ToggleLike(ctx, "bob", phrase.ID)
	require.NoError(t, err)
	assert.True(t, res.Liked)
	assert.Equal(t, 1, res.LikeCount)

	res, err = f.svc.ToggleLike(ctx, "bob", phrase.ID)
	require.NoError(t, err)
	assert.False(t, res.Liked)
	assert.Equal(t, 0, res.LikeCount)

	// self likes count as likes but advance no mission
	res, err = f.svc.ToggleLike(ctx, "alice", phrase.ID)
	require.NoError(t, err)
	assert.True(t, res.Liked)
	assert.Equal(t, 1, res.LikeCount)

	var bob postgres.Player
	require.NoError(t, f.db.First(&bob, "id = ?", "bob").Error)
	daily, err := bob.GetDailyMissions()
	require.NoError(t, err)
	assert.Equal(t, 1, daily[0].Progress, "only the like counts, not the unlike")

	var stored postgres.Friendship
	require.NoError(t, f.db.First(&stored, "id = ?", fs.ID).Error)
	assert.Equal(t, 1, stored.MissionProgress)
}

func TestFeedAndPublicProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	alice := testutil.Player(t, f.db, "alice", func(p *postgres.Player) {
		p.Bio = "cat person"
		p.AvatarItemID = imageID(f.items[1].ID)
	})
	testutil.Player(t, f.db, "bob", nil)
	testutil.Unlock(t, f.db, "alice", f.items[0].ID, f.items[1].ID)
	publish(t, f.db, alice, []postgres.Phrase{
		{ID: "p1", Text: "Uno", SelectedImageID: imageID(f.items[0].ID), IsCustom: true, IsPublic: true},
		{ID: "p2", Text: "Dos", SelectedImageID: imageID(f.items[1].ID), IsCustom: true, IsPublic: true},
	})
	rows := publicPhrases(t, f.db, "alice")
	_, err := f.svc.ToggleLike(ctx, "bob", rows[0].ID)
	require.NoError(t, err)

	feed, err := f.svc.Feed(ctx, "bob", 0)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	likes := map[string]bool{}
	for _, p := range feed {
		assert.Equal(t, "alice", p.Username)
		likes[p.PublicPhraseID] = p.IsLikedByMe
	}
	assert.True(t, likes[rows[0].ID])
	assert.False(t, likes[rows[1].ID])

	anonymous, err := f.svc.Feed(ctx, "", 1)
	require.NoError(t, err)
	require.Len(t, anonymous, 1)
	assert.False(t, anonymous[0].IsLikedByMe)

	profile, err := f.svc.PublicProfile(ctx, "bob", "alice")
	require.NoError(t, err)
	assert.Equal(t, "cat person", profile.Bio)
	assert.Equal(t, f.items[1].URL, profile.AvatarURL)
	assert.Len(t, profile.Phrases, 2)
	assert.Len(t, profile.UnlockedImages, 2)

	_, err = f.svc.PublicProfile(ctx, "bob", "nobody")
	assert.True(t, apperr.Is(err, apperr.NotFound))
}

func TestSearch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for _, name := range []string{"Gatito", "gato_loco", "perro", "ga%s"} {
		testutil.Player(t, f.db, name, nil)
	}

	found, err := f.svc.Search(ctx, "g")
	require.NoError(t, err)
	assert.Empty(t, found, "too short")

	found, err = f.svc.Search(ctx, "GAT")
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "Gatito", found[0].Username)
	assert.Equal(t, "gato_loco", found[1].Username)

	found, err = f.svc.Search(ctx, "ga%")
	require.NoError(t, err)
	require.Len(t, found, 1, "wildcards are literal")
	assert.Equal(t, "ga%s", found[0].Username)
}

func TestCatalog(t *testing.T) {
	f := newFixture(t)
	items, err := f.svc.Catalog(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Less(t, items[0].ID, items[1].ID)
}
