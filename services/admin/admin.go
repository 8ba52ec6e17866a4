// Package admin backs the admin console: moderation of users and phrases and
// maintenance of the catalog, the shop, trades and economy settings.
package admin

import (
	"context"
	"errors"
	"fmt"

	game_constants "pictocat/constants/game"
	"pictocat/models"
	"pictocat/models/postgres"
	"pictocat/services/apperr"
	"pictocat/services/redis"
	"pictocat/services/settings"
	"pictocat/services/storage"
	"pictocat/services/trading"
	"pictocat/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	db       *gorm.DB
	cache    *redis.RedisClient
	settings *settings.Service
	trading  *trading.Service
	uploader storage.Uploader
	log      *zap.Logger
}

// NewService accepts a nil uploader; uploads then fail with storage.ErrNotConfigured.
func NewService(db *gorm.DB, cache *redis.RedisClient, settings *settings.Service, trading *trading.Service, uploader storage.Uploader, log *zap.Logger) *Service {
	return &Service{
		db:       db,
		cache:    cache,
		settings: settings,
		trading:  trading,
		uploader: uploader,
		log:      log.Named("admin"),
	}
}

func (s *Service) ListUsers(ctx context.Context) ([]models.AdminUserView, error) {
	users := []models.AdminUserView{}
	err := s.db.WithContext(ctx).Model(&postgres.Player{}).
		Select("id, username, email, role, is_verified, coins, level").
		Order("username").
		Scan(&users).Error
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}

// SetVerified flips the verification badge, including the copies on the user's public phrases.
func (s *Service) SetVerified(ctx context.Context, userID string, verified bool) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&postgres.Player{}).Where("id = ?", userID).Update("is_verified", verified)
		if res.Error != nil {
			return fmt.Errorf("updating player: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return apperr.New(apperr.NotFound, "user not found")
		}
		return tx.Model(&postgres.PublicPhrase{}).Where("user_id = ?", userID).Update("is_user_verified", verified).Error
	})
	if err == nil {
		s.log.Info("user verification changed", zap.String("user", userID), zap.Bool("verified", verified))
	}
	return err
}

func (s *Service) SetRole(ctx context.Context, userID, role string) error {
	switch role {
	case game_constants.ROLE_USER, game_constants.ROLE_MOD, game_constants.ROLE_ADMIN:
	default:
		return apperr.Newf(apperr.InvalidInput, "unknown role %q", role)
	}
	res := s.db.WithContext(ctx).Model(&postgres.Player{}).Where("id = ?", userID).Update("role", role)
	if res.Error != nil {
		return fmt.Errorf("updating role: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.NotFound, "user not found")
	}
	s.log.Info("user role changed", zap.String("user", userID), zap.String("role", role))
	return nil
}

// GrantCoins adds amount (possibly negative) to the user's balance, which may not go below zero.
func (s *Service) GrantCoins(ctx context.Context, userID string, amount int) (int, error) {
	var balance int
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		player, err := utils.LockPlayer(tx, userID)
		if err != nil {
			return err
		}
		if player.Coins+amount < 0 {
			return apperr.New(apperr.InvalidInput, "balance cannot become negative")
		}
		balance = player.Coins + amount
		return tx.Model(player).Update("coins", balance).Error
	})
	if err != nil {
		return 0, err
	}
	s.log.Info("coins granted", zap.String("user", userID), zap.Int("amount", amount), zap.Int("balance", balance))
	return balance, nil
}

type phraseLikes struct {
	PublicPhraseID string
	Count          int
}

func (s *Service) ListPhrases(ctx context.Context) ([]models.AdminPublicPhrase, error) {
	db := s.db.WithContext(ctx)
	var phrases []postgres.PublicPhrase
	if err := db.Order("created_at DESC").Find(&phrases).Error; err != nil {
		return nil, fmt.Errorf("listing public phrases: %w", err)
	}

	var counts []phraseLikes
	err := db.Model(&postgres.PhraseLike{}).
		Select("public_phrase_id, COUNT(*) AS count").
		Group("public_phrase_id").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("counting likes: %w", err)
	}
	likes := make(map[string]int, len(counts))
	for _, c := range counts {
		likes[c.PublicPhraseID] = c.Count
	}

	out := make([]models.AdminPublicPhrase, 0, len(phrases))
	for _, p := range phrases {
		out = append(out, models.AdminPublicPhrase{
			PublicPhraseID: p.ID,
			UserID:         p.UserID,
			Username:       p.Username,
			Text:           p.Text,
			ImageURL:       p.ImageURL,
			ImageTheme:     p.ImageTheme,
			LikeCount:      likes[p.ID],
		})
	}
	return out, nil
}

// CensorPhrase removes a phrase from the feed and makes the owner's phrase private.
func (s *Service) CensorPhrase(ctx context.Context, publicPhraseID string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var phrase postgres.PublicPhrase
		err := tx.Where("id = ?", publicPhraseID).First(&phrase).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.New(apperr.NotFound, "phrase not found")
		}
		if err != nil {
			return fmt.Errorf("loading phrase: %w", err)
		}
		if err := tx.Where("public_phrase_id = ?", phrase.ID).Delete(&postgres.PhraseLike{}).Error; err != nil {
			return fmt.Errorf("deleting likes: %w", err)
		}
		if err := tx.Delete(&phrase).Error; err != nil {
			return fmt.Errorf("deleting phrase: %w", err)
		}

		owner, err := utils.LockPlayer(tx, phrase.UserID)
		if apperr.Is(err, apperr.NotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		phrases, err := owner.GetPhrases()
		if err != nil {
			return fmt.Errorf("decoding phrases: %w", err)
		}
		for i := range phrases {
			if phrases[i].ID == phrase.PhraseID {
				phrases[i].IsPublic = false
			}
		}
		owner.SetPhrases(phrases)
		return tx.Model(owner).Update("phrases", owner.Phrases).Error
	})
	if err == nil {
		s.log.Info("phrase censored", zap.String("phrase", publicPhraseID))
	}
	return err
}

func (s *Service) ListTrades(ctx context.Context, status string) ([]models.TradeOffer, error) {
	switch status {
	case "", game_constants.TRADE_PENDING, game_constants.TRADE_ACCEPTED, game_constants.TRADE_REJECTED, game_constants.TRADE_CANCELLED:
	default:
		return nil, apperr.Newf(apperr.InvalidInput, "unknown trade status %q", status)
	}
	return s.trading.ListByStatus(ctx, status)
}

func (s *Service) CancelTrade(ctx context.Context, tradeID string) error {
	if err := s.trading.ForceCancel(ctx, tradeID); err != nil {
		return err
	}
	s.log.Info("trade force-cancelled", zap.String("trade", tradeID))
	return nil
}

func (s *Service) Settings(ctx context.Context) (postgres.EconomySettings, error) {
	return s.settings.Get(ctx)
}

func (s *Service) UpdateSettings(ctx context.Context, in postgres.EconomySettings) (postgres.EconomySettings, error) {
	return s.settings.Update(ctx, in)
}

func (s *Service) invalidate(ctx context.Context, keys []string) {
	if err := s.cache.Invalidate(ctx, keys...); err != nil {
		s.log.Warn("cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
	}
}
