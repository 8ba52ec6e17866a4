// Package friendship manages friend requests, the friendship ledger and friendship missions.
package friendship

import (
	"context"
	"errors"
	"fmt"

	"pictocat/models"
	"pictocat/models/postgres"
	"pictocat/services/apperr"
	"pictocat/services/settings"
	socketio_types "pictocat/services/socket_io/types"
	"pictocat/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Service struct {
	db       *gorm.DB
	settings *settings.Service
	notifier socketio_types.Notifier
	log      *zap.Logger
}

func NewService(db *gorm.DB, settings *settings.Service, notifier socketio_types.Notifier, log *zap.Logger) *Service {
	return &Service{
		db:       db,
		settings: settings,
		notifier: socketio_types.OrNop(notifier),
		log:      log.Named("friendship"),
	}
}

// SendRequest asks to to become friends with from. When to already asked from, the
// pending request is accepted instead and accepted is true.
func (s *Service) SendRequest(ctx context.Context, from, to string) (accepted bool, err error) {
	if to == "" || from == to {
		return false, apperr.New(apperr.InvalidInput, "invalid target user")
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := utils.LockPlayers(tx, from, to); err != nil {
			if apperr.Is(err, apperr.NotFound) {
				return apperr.New(apperr.NotFound, "target user not found")
			}
			return err
		}

		friends, err := utils.AreFriends(tx, from, to)
		if err != nil {
			return err
		}
		sent, err := utils.RequestPending(tx, from, to)
		if err != nil {
			return err
		}
		if friends || sent {
			return apperr.New(apperr.Conflict, "already friends or request sent")
		}

		reverse, err := utils.RequestPending(tx, to, from)
		if err != nil {
			return err
		}
		if reverse {
			accepted = true
			return s.befriend(tx, to, from)
		}
		return tx.Create(&postgres.FriendshipRequest{SenderID: from, RecipientID: to}).Error
	})
	if err != nil {
		return false, err
	}

	if accepted {
		s.notifier.Notify(to, socketio_types.EventFriendAccepted, map[string]string{"userId": from})
	} else {
		s.notifier.Notify(to, socketio_types.EventFriendRequest, map[string]string{"userId": from})
	}
	return accepted, nil
}

// Respond resolves the request sender sent to recipient. The request is always removed;
// accepting creates the friendship.
func (s *Service) Respond(ctx context.Context, recipient, sender string, accept bool) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("sender_id = ? AND recipient_id = ?", sender, recipient).Delete(&postgres.FriendshipRequest{})
		if res.Error != nil {
			return fmt.Errorf("deleting request: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return apperr.New(apperr.NotFound, "friend request not found")
		}
		if !accept {
			return nil
		}
		return s.befriend(tx, sender, recipient)
	})
	if err != nil {
		return err
	}
	if accept {
		s.notifier.Notify(sender, socketio_types.EventFriendAccepted, map[string]string{"userId": recipient})
	}
	return nil
}

// befriend deletes pending requests in both directions and creates the friendship.
func (s *Service) befriend(tx *gorm.DB, a, b string) error {
	if err := tx.Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)", a, b, b, a).
		Delete(&postgres.FriendshipRequest{}).Error; err != nil {
		return fmt.Errorf("clearing requests: %w", err)
	}
	friendship := postgres.Friendship{User1ID: a, User2ID: b, Level: 1}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&friendship).Error; err != nil {
		return fmt.Errorf("creating friendship: %w", err)
	}
	s.log.Info("friendship created", zap.String("a", a), zap.String("b", b))
	return nil
}

// Remove ends the friendship of a and b, active mission included.
func (s *Service) Remove(ctx context.Context, a, b string) error {
	if a == b {
		return apperr.New(apperr.InvalidInput, "invalid target user")
	}
	user1, user2 := postgres.OrderedPair(a, b)
	res := s.db.WithContext(ctx).
		Where("user1_id = ? AND user2_id = ?", user1, user2).
		Delete(&postgres.Friendship{})
	if res.Error != nil {
		return fmt.Errorf("deleting friendship: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.NotFound, "friendship not found")
	}
	s.notifier.Notify(b, socketio_types.EventFriendRemoved, map[string]string{"userId": a})
	return nil
}

// List returns the caller's friends with their friendship, and pending requests both ways.
func (s *Service) List(ctx context.Context, subject string) (*models.FriendData, error) {
	db := s.db.WithContext(ctx)
	friendships, err := utils.FriendshipsOf(db, subject)
	if err != nil {
		return nil, err
	}
	var incoming, outgoing []postgres.FriendshipRequest
	if err := db.Where("recipient_id = ?", subject).Order("created_at").Find(&incoming).Error; err != nil {
		return nil, fmt.Errorf("loading incoming requests: %w", err)
	}
	if err := db.Where("sender_id = ?", subject).Order("created_at").Find(&outgoing).Error; err != nil {
		return nil, fmt.Errorf("loading outgoing requests: %w", err)
	}

	ids := make([]string, 0, len(friendships)+len(incoming)+len(outgoing))
	for i := range friendships {
		ids = append(ids, friendships[i].Other(subject))
	}
	for _, r := range incoming {
		ids = append(ids, r.SenderID)
	}
	for _, r := range outgoing {
		ids = append(ids, r.RecipientID)
	}
	players := map[string]postgres.Player{}
	if len(ids) > 0 {
		var rows []postgres.Player
		if err := db.Select("id", "username", "is_verified", "role").Where("id IN ?", ids).Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("loading friends: %w", err)
		}
		for _, p := range rows {
			players[p.ID] = p
		}
	}

	data := &models.FriendData{
		Friends:  []models.Friend{},
		Requests: []models.FriendRequest{},
		Sent:     []models.FriendRequest{},
	}
	for i := range friendships {
		other := friendships[i].Other(subject)
		p, ok := players[other]
		if !ok {
			continue
		}
		view := models.ViewFriendship(&friendships[i], subject)
		data.Friends = append(data.Friends, models.Friend{
			UserID:     other,
			Username:   p.Username,
			IsVerified: p.IsVerified,
			Role:       p.Role,
			Friendship: &view,
		})
	}
	for _, r := range incoming {
		if p, ok := players[r.SenderID]; ok {
			data.Requests = append(data.Requests, models.FriendRequest{UserID: p.ID, Username: p.Username})
		}
	}
	for _, r := range outgoing {
		if p, ok := players[r.RecipientID]; ok {
			data.Sent = append(data.Sent, models.FriendRequest{UserID: p.ID, Username: p.Username})
		}
	}
	return data, nil
}

// lockMembership loads a friendship FOR UPDATE and checks subject belongs to it.
func lockMembership(tx *gorm.DB, subject, friendshipID string) (*postgres.Friendship, error) {
	var friendship postgres.Friendship
	err := utils.ForUpdate(tx).Where("id = ?", friendshipID).First(&friendship).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "friendship not found")
	}
	if err != nil {
		return nil, fmt.Errorf("loading friendship: %w", err)
	}
	if !friendship.Has(subject) {
		return nil, apperr.New(apperr.NotFound, "friendship not found")
	}
	return &friendship, nil
}
