// Package profile owns the player document: creation on first sight, repair,
// legacy migration and the client-editable fields.
package profile

import (
	"context"
	"fmt"

	game_constants "pictocat/constants/game"
	"pictocat/models"
	"pictocat/models/postgres"
	"pictocat/services/apperr"
	"pictocat/services/missions"
	"pictocat/services/settings"
	"pictocat/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Identity is the verified caller.
type Identity struct {
	Subject string
	Email   string
}

type Service struct {
	db           *gorm.DB
	settings     *settings.Service
	missions     *missions.Service
	log          *zap.Logger
	adminSubject string
}

func NewService(db *gorm.DB, settings *settings.Service, missions *missions.Service, log *zap.Logger, adminSubject string) *Service {
	return &Service{
		db:           db,
		settings:     settings,
		missions:     missions,
		log:          log.Named("profile"),
		adminSubject: adminSubject,
	}
}

const maxUsernameAttempts = 10

// Ensure returns the caller's profile, creating it with the canonical defaults on first
// sight and applying the daily mission rollover when a new UTC day started.
func (s *Service) Ensure(ctx context.Context, identity Identity) (*models.UserProfile, error) {
	if identity.Subject == "" {
		return nil, apperr.New(apperr.Unauthenticated, "missing identity")
	}
	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	count, err := s.missions.MissionCount(ctx)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		player, err := utils.LockPlayer(tx, identity.Subject)
		if apperr.Is(err, apperr.NotFound) {
			player, err = s.create(tx, identity, cfg.StartingCoins)
		}
		if err != nil {
			return err
		}

		updates := map[string]interface{}{}
		if identity.Subject == s.adminSubject && player.Role != game_constants.ROLE_ADMIN {
			player.Role = game_constants.ROLE_ADMIN
			updates["role"] = player.Role
		}
		if player.Email == "" && identity.Email != "" {
			player.Email = identity.Email
			updates["email"] = player.Email
		}
		if len(updates) > 0 {
			if err := tx.Model(player).Updates(updates).Error; err != nil {
				return fmt.Errorf("updating player: %w", err)
			}
		}

		_, err = s.missions.RollIfDue(tx, player, count)
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.Profile(ctx, identity.Subject)
}

// create inserts the default profile and returns it locked. A concurrent first request
// for the same subject makes the insert a no-op.
func (s *Service) create(tx *gorm.DB, identity Identity, startingCoins int) (*postgres.Player, error) {
	base := UsernameBase(identity.Email, identity.Subject)
	username := ""
	for attempt := 0; attempt < maxUsernameAttempts; attempt++ {
		candidate := UsernameCandidate(base, attempt)
		var count int64
		if err := tx.Model(&postgres.Player{}).Where("username = ?", candidate).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("checking username: %w", err)
		}
		if count == 0 {
			username = candidate
			break
		}
	}
	if username == "" {
		return nil, apperr.New(apperr.Conflict, "could not allocate a username")
	}

	player := NewPlayer(identity, username, startingCoins, s.adminSubject)
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&player).Error; err != nil {
		return nil, fmt.Errorf("creating player: %w", err)
	}
	s.log.Info("player created", zap.String("subject", identity.Subject), zap.String("username", username))
	return utils.LockPlayer(tx, identity.Subject)
}

// Profile assembles the full profile of subject without modifying it.
func (s *Service) Profile(ctx context.Context, subject string) (*models.UserProfile, error) {
	db := s.db.WithContext(ctx)
	player, err := utils.FindPlayer(db, subject)
	if err != nil {
		return nil, err
	}
	unlocked, err := utils.UnlockedItemIDs(db, subject)
	if err != nil {
		return nil, err
	}
	friendships, err := utils.FriendshipsOf(db, subject)
	if err != nil {
		return nil, err
	}

	sent := []string{}
	if err := db.Model(&postgres.FriendshipRequest{}).Where("sender_id = ?", subject).
		Order("created_at").Pluck("recipient_id", &sent).Error; err != nil {
		return nil, fmt.Errorf("loading sent requests: %w", err)
	}
	received := []string{}
	if err := db.Model(&postgres.FriendshipRequest{}).Where("recipient_id = ?", subject).
		Order("created_at").Pluck("sender_id", &received).Error; err != nil {
		return nil, fmt.Errorf("loading received requests: %w", err)
	}

	return BuildProfile(player, unlocked, friendships, sent, received)
}

// BuildProfile renders the stored rows as the profile document clients expect.
func BuildProfile(player *postgres.Player, unlocked []int, friendships []postgres.Friendship, sent, received []string) (*models.UserProfile, error) {
	phrases, err := player.GetPhrases()
	if err != nil {
		return nil, fmt.Errorf("decoding phrases: %w", err)
	}
	upgrades, err := player.GetPurchasedUpgrades()
	if err != nil {
		return nil, fmt.Errorf("decoding upgrades: %w", err)
	}
	daily, err := player.GetDailyMissions()
	if err != nil {
		return nil, fmt.Errorf("decoding daily missions: %w", err)
	}

	views := make([]models.FriendshipView, 0, len(friendships))
	for i := range friendships {
		views = append(views, models.ViewFriendship(&friendships[i], player.ID))
	}
	if unlocked == nil {
		unlocked = []int{}
	}
	if sent == nil {
		sent = []string{}
	}
	if received == nil {
		received = []string{}
	}

	return &models.UserProfile{
		ID:         player.ID,
		Username:   player.Username,
		Email:      player.Email,
		Role:       player.Role,
		IsVerified: player.IsVerified,
		Data: models.UserData{
			Coins:                  player.Coins,
			Phrases:                phrases,
			UnlockedImageIDs:       unlocked,
			PlayerStats:            models.StatsOf(player),
			PurchasedUpgrades:      upgrades,
			Bio:                    player.Bio,
			AvatarItemID:           player.AvatarItemID,
			Friendships:            views,
			FriendRequestsSent:     sent,
			FriendRequestsReceived: received,
			TradeNotifications:     player.TradeNotifications,
			DailyMissions:          daily,
			LastMissionReset:       player.LastMissionReset,
		},
	}, nil
}

// Player loads the stored row of subject.
func (s *Service) Player(ctx context.Context, subject string) (*postgres.Player, error) {
	return utils.FindPlayer(s.db.WithContext(ctx), subject)
}
