package friendship_test

import (
	"context"
	"sync"
	"testing"

	"pictocat/models/postgres"
	"pictocat/services/apperr"
	"pictocat/services/friendship"
	"pictocat/services/settings"
	"pictocat/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type event struct {
	subject, name string
}

type recorder struct {
	mu     sync.Mutex
	events []event
}

func (r *recorder) Notify(subject, name string, _ interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event{subject, name})
}

func newService(t *testing.T) (*friendship.Service, *gorm.DB, *recorder) {
	db := testutil.NewDB(t)
	rec := &recorder{}
	svc := friendship.NewService(db, settings.NewService(db, nil, zap.NewNop()), rec, zap.NewNop())
	testutil.Player(t, db, "alice", nil)
	testutil.Player(t, db, "bob", nil)
	testutil.Player(t, db, "carol", nil)
	return svc, db, rec
}

func TestRequestLifecycle(t *testing.T) {
	svc, db, rec := newService(t)
	ctx := context.Background()

	accepted, err := svc.SendRequest(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.False(t, accepted)
	assert.Equal(t, []event{{"bob", "friend_request"}}, rec.events)

	_, err = svc.SendRequest(ctx, "alice", "bob")
	assert.True(t, apperr.Is(err, apperr.Conflict))

	_, err = svc.SendRequest(ctx, "alice", "alice")
	assert.True(t, apperr.Is(err, apperr.InvalidInput))

	_, err = svc.SendRequest(ctx, "alice", "nobody")
	assert.True(t, apperr.Is(err, apperr.NotFound))

	data, err := svc.List(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, data.Requests, 1)
	assert.Equal(t, "alice", data.Requests[0].UserID)

	require.NoError(t, svc.Respond(ctx, "bob", "alice", true))
	data, err = svc.List(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, data.Requests)
	require.Len(t, data.Friends, 1)
	assert.Equal(t, "alice", data.Friends[0].UserID)
	assert.Equal(t, 1, data.Friends[0].Friendship.Level)

	_, err = svc.SendRequest(ctx, "bob", "alice")
	assert.True(t, apperr.Is(err, apperr.Conflict), "already friends")

	var count int64
	require.NoError(t, db.Model(&postgres.FriendshipRequest{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCrossedRequestsBecomeFriends(t *testing.T) {
	svc, db, _ := newService(t)
	ctx := context.Background()

	_, err := svc.SendRequest(ctx, "alice", "bob")
	require.NoError(t, err)
	accepted, err := svc.SendRequest(ctx, "bob", "alice")
	require.NoError(t, err)
	assert.True(t, accepted)

	var friendships []postgres.Friendship
	require.NoError(t, db.Find(&friendships).Error)
	require.Len(t, friendships, 1)
	assert.Equal(t, "alice", friendships[0].User1ID)
	assert.Equal(t, "bob", friendships[0].User2ID)
}

func TestRejectAndRemove(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	_, err := svc.SendRequest(ctx, "alice", "bob")
	require.NoError(t, err)
	require.NoError(t, svc.Respond(ctx, "bob", "alice", false))
	assert.True(t, apperr.Is(svc.Respond(ctx, "bob", "alice", true), apperr.NotFound))

	assert.True(t, apperr.Is(svc.Remove(ctx, "alice", "bob"), apperr.NotFound))

	_, err = svc.SendRequest(ctx, "carol", "bob")
	require.NoError(t, err)
	require.NoError(t, svc.Respond(ctx, "bob", "carol", true))
	require.NoError(t, svc.Remove(ctx, "bob", "carol"))

	data, err := svc.List(ctx, "carol")
	require.NoError(t, err)
	assert.Empty(t, data.Friends)
}

func TestUniquePairIndex(t *testing.T) {
	_, db, _ := newService(t)
	testutil.Friends(t, db, "alice", "bob", 1)

	err := db.Create(&postgres.Friendship{User1ID: "bob", User2ID: "alice"}).Error
	assert.Error(t, err, "one friendship per unordered pair")

	err = db.Create(&postgres.Friendship{User1ID: "carol", User2ID: "carol"}).Error
	assert.Error(t, err, "no self friendship")
}
