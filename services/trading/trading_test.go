package trading_test

import (
	"context"
	"testing"

	game_constants "pictocat/constants/game"
	"pictocat/models/postgres"
	"pictocat/services/apperr"
	"pictocat/services/friendship"
	"pictocat/services/settings"
	"pictocat/services/trading"
	"pictocat/testutil"
	"pictocat/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fixture struct {
	svc   *trading.Service
	db    *gorm.DB
	items []postgres.CatalogItem
}

func newFixture(t *testing.T) fixture {
	db := testutil.NewDB(t)
	cfg := settings.NewService(db, nil, zap.NewNop())
	friends := friendship.NewService(db, cfg, nil, zap.NewNop())
	svc := trading.NewService(db, cfg, friends, nil, zap.NewNop())

	testutil.Player(t, db, "alice", nil)
	testutil.Player(t, db, "bob", nil)
	testutil.Player(t, db, "carol", nil)
	testutil.Friends(t, db, "alice", "bob", 1)

	items := testutil.CatalogItems(t, db, "cats", 4)
	testutil.Unlock(t, db, "alice", items[0].ID, items[1].ID)
	testutil.Unlock(t, db, "bob", items[2].ID, items[3].ID)
	return fixture{svc: svc, db: db, items: items}
}

func owned(t *testing.T, db *gorm.DB, id string) []int {
	ids, err := utils.UnlockedItemIDs(db, id)
	require.NoError(t, err)
	return ids
}

func TestValidateItems(t *testing.T) {
	offered, requested, err := trading.ValidateItems([]int{1, 1, 2}, []int{3})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, offered)
	assert.Equal(t, []int{3}, requested)

	_, _, err = trading.ValidateItems(nil, nil)
	assert.True(t, apperr.Is(err, apperr.InvalidItems))

	_, _, err = trading.ValidateItems([]int{1}, []int{1})
	assert.True(t, apperr.Is(err, apperr.InvalidItems))
}

func TestCreateChecks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, "alice", "carol", []int{f.items[0].ID}, nil)
	assert.True(t, apperr.Is(err, apperr.NotFriends))

	_, err = f.svc.Create(ctx, "alice", "bob", []int{f.items[2].ID}, nil)
	assert.True(t, apperr.Is(err, apperr.InvalidItems), "alice does not own what she offers")

	_, err = f.svc.Create(ctx, "alice", "bob", nil, []int{f.items[0].ID})
	assert.True(t, apperr.Is(err, apperr.InvalidItems), "bob does not own what is requested")

	_, err = f.svc.Create(ctx, "alice", "ghost", []int{f.items[0].ID}, nil)
	assert.True(t, apperr.Is(err, apperr.NotFound))

	trade, err := f.svc.Create(ctx, "alice", "bob", []int{f.items[0].ID}, []int{f.items[2].ID})
	require.NoError(t, err)
	assert.Equal(t, game_constants.TRADE_PENDING, trade.Status)

	var bob postgres.Player
	require.NoError(t, f.db.First(&bob, "id = ?", "bob").Error)
	assert.Equal(t, 1, bob.TradeNotifications)
}

func TestCreateWithLegacyFriend(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.db.Model(&postgres.Player{}).Where("id = ?", "alice").
		Update("legacy_friends", postgres.MustEncodeJSON([]string{"carol"})).Error)

	_, err := f.svc.Create(ctx, "alice", "carol", []int{f.items[0].ID}, nil)
	assert.NoError(t, err)
}

func TestAcceptSwapsItems(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	avatar := f.items[0].ID
	require.NoError(t, f.db.Model(&postgres.Player{}).Where("id = ?", "alice").Update("avatar_item_id", avatar).Error)

	trade, err := f.svc.Create(ctx, "alice", "bob", []int{f.items[0].ID}, []int{f.items[2].ID, f.items[3].ID})
	require.NoError(t, err)

	_, err = f.svc.Respond(ctx, "alice", trade.ID, true)
	assert.True(t, apperr.Is(err, apperr.NotFound), "only the recipient responds")

	done, err := f.svc.Respond(ctx, "bob", trade.ID, true)
	require.NoError(t, err)
	assert.Equal(t, game_constants.TRADE_ACCEPTED, done.Status)

	assert.Equal(t, []int{f.items[1].ID, f.items[2].ID, f.items[3].ID}, owned(t, f.db, "alice"))
	assert.Equal(t, []int{f.items[0].ID}, owned(t, f.db, "bob"))

	var alice postgres.Player
	require.NoError(t, f.db.First(&alice, "id = ?", "alice").Error)
	assert.Nil(t, alice.AvatarItemID)

	_, err = f.svc.Respond(ctx, "bob", trade.ID, true)
	assert.True(t, apperr.Is(err, apperr.NotFound), "an accepted trade is final")
}

func TestCreateRejectsItemsTheReceiverOwns(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	testutil.Unlock(t, f.db, "alice", f.items[2].ID)
	testutil.Unlock(t, f.db, "bob", f.items[1].ID)

	_, err := f.svc.Create(ctx, "alice", "bob", []int{f.items[0].ID}, []int{f.items[2].ID})
	assert.True(t, apperr.Is(err, apperr.InvalidItems), "alice already has the requested item")

	_, err = f.svc.Create(ctx, "alice", "bob", []int{f.items[1].ID}, []int{f.items[3].ID})
	assert.True(t, apperr.Is(err, apperr.InvalidItems), "bob already has the offered item")
}

func TestAcceptConservesItems(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	trade, err := f.svc.Create(ctx, "alice", "bob", []int{f.items[0].ID}, []int{f.items[2].ID})
	require.NoError(t, err)

	// alice gets her own copy of the requested item before bob answers
	testutil.Unlock(t, f.db, "alice", f.items[2].ID)
	before := len(owned(t, f.db, "alice")) + len(owned(t, f.db, "bob"))

	stale, err := f.svc.Respond(ctx, "bob", trade.ID, true)
	assert.True(t, apperr.Is(err, apperr.Conflict))
	assert.Equal(t, game_constants.TRADE_REJECTED, stale.Status)
	assert.Equal(t, game_constants.TRADE_REASON_STALE, stale.Reason)

	after := len(owned(t, f.db, "alice")) + len(owned(t, f.db, "bob"))
	assert.Equal(t, before, after)
	assert.Equal(t, []int{f.items[0].ID, f.items[1].ID, f.items[2].ID}, owned(t, f.db, "alice"))
	assert.Equal(t, []int{f.items[2].ID, f.items[3].ID}, owned(t, f.db, "bob"))
}

func TestCorruptLegacyFriendsIsAnError(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.db.Model(&postgres.Player{}).Where("id = ?", "alice").
		Update("legacy_friends", `{"carol":true}`).Error)

	_, err := f.svc.Create(context.Background(), "alice", "carol", []int{f.items[0].ID}, nil)
	require.Error(t, err)
	assert.False(t, apperr.Is(err, apperr.NotFriends))
}

func TestAcceptStaleTradeIsRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.svc.Create(ctx, "alice", "bob", []int{f.items[0].ID}, nil)
	require.NoError(t, err)
	second, err := f.svc.Create(ctx, "alice", "bob", []int{f.items[0].ID}, []int{f.items[2].ID})
	require.NoError(t, err)

	_, err = f.svc.Respond(ctx, "bob", first.ID, true)
	require.NoError(t, err)

	stale, err := f.svc.Respond(ctx, "bob", second.ID, true)
	assert.True(t, apperr.Is(err, apperr.Conflict))
	assert.Equal(t, game_constants.TRADE_REJECTED, stale.Status)

	var stored postgres.Trade
	require.NoError(t, f.db.First(&stored, "id = ?", second.ID).Error)
	assert.Equal(t, game_constants.TRADE_REJECTED, stored.Status)
	assert.Equal(t, game_constants.TRADE_REASON_STALE, stored.Reason)

	assert.Equal(t, []int{f.items[0].ID, f.items[2].ID, f.items[3].ID}, owned(t, f.db, "bob"))
}

func TestRejectAndCancel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	trade, err := f.svc.Create(ctx, "alice", "bob", []int{f.items[0].ID}, nil)
	require.NoError(t, err)
	done, err := f.svc.Respond(ctx, "bob", trade.ID, false)
	require.NoError(t, err)
	assert.Equal(t, game_constants.TRADE_REJECTED, done.Status)
	assert.Equal(t, []int{f.items[0].ID, f.items[1].ID}, owned(t, f.db, "alice"))

	trade, err = f.svc.Create(ctx, "alice", "bob", []int{f.items[1].ID}, nil)
	require.NoError(t, err)
	assert.True(t, apperr.Is(f.svc.Cancel(ctx, "bob", trade.ID), apperr.NotFound))
	require.NoError(t, f.svc.Cancel(ctx, "alice", trade.ID))
	assert.True(t, apperr.Is(f.svc.Cancel(ctx, "alice", trade.ID), apperr.NotFound))
}

func TestListPending(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, "alice", "bob", []int{f.items[0].ID}, nil)
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, "alice", "bob", []int{f.items[1].ID}, []int{f.items[3].ID})
	require.NoError(t, err)

	offers, err := f.svc.ListPending(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, offers, 2)
	for _, offer := range offers {
		assert.Equal(t, "alice", offer.FromUsername)
		assert.Equal(t, "bob", offer.ToUsername)
		assert.Len(t, offer.OfferedImages, 1)
	}

	var bob postgres.Player
	require.NoError(t, f.db.First(&bob, "id = ?", "bob").Error)
	assert.Zero(t, bob.TradeNotifications)

	mine, err := f.svc.ListPending(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	all, err := f.svc.ListByStatus(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.NoError(t, f.svc.ForceCancel(ctx, all[0].ID))
	pending, err := f.svc.ListByStatus(ctx, game_constants.TRADE_PENDING)
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}

func TestListPendingReportsCorruptItems(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	trade, err := f.svc.Create(ctx, "alice", "bob", []int{f.items[0].ID}, nil)
	require.NoError(t, err)
	require.NoError(t, f.db.Model(&postgres.Trade{}).Where("id = ?", trade.ID).
		Update("offered_item_ids", `{"id":1}`).Error)

	_, err = f.svc.ListPending(ctx, "bob")
	assert.ErrorContains(t, err, "decoding offered items")
}
