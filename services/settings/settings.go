// Package settings serves the admin-tunable economy settings row.
package settings

import (
	"context"
	"errors"
	"fmt"

	"pictocat/config"
	game_constants "pictocat/constants/game"
	"pictocat/models/postgres"
	"pictocat/services/apperr"
	"pictocat/services/redis"
	redis_utils "pictocat/services/redis/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	db    *gorm.DB
	cache *redis.RedisClient
	log   *zap.Logger
}

func NewService(db *gorm.DB, cache *redis.RedisClient, log *zap.Logger) *Service {
	return &Service{db: db, cache: cache, log: log}
}

// Get returns the settings row, falling back to the built-in defaults when it was never seeded.
func (s *Service) Get(ctx context.Context) (postgres.EconomySettings, error) {
	var settings postgres.EconomySettings
	if hit, err := s.cache.GetJSON(ctx, redis_utils.SettingsKey, &settings); err != nil {
		s.log.Warn("settings cache read failed", zap.Error(err))
	} else if hit {
		return settings, nil
	}

	err := s.db.WithContext(ctx).Where("id = ?", 1).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return config.DefaultEconomySettings(), nil
	}
	if err != nil {
		return settings, fmt.Errorf("loading economy settings: %w", err)
	}

	if err := s.cache.SetJSON(ctx, redis_utils.SettingsKey, settings, game_constants.SETTINGS_CACHE_TTL); err != nil {
		s.log.Warn("settings cache write failed", zap.Error(err))
	}
	return settings, nil
}

// Update validates and stores the settings row, then drops the cached copy.
func (s *Service) Update(ctx context.Context, in postgres.EconomySettings) (postgres.EconomySettings, error) {
	if in.StartingCoins < 0 {
		return in, apperr.New(apperr.InvalidInput, "startingCoins must not be negative")
	}
	if in.DailyMissionCount < 0 || in.DailyMissionCount > len(game_constants.DAILY_MISSIONS) {
		return in, apperr.Newf(apperr.InvalidInput, "dailyMissionCount must be between 0 and %d", len(game_constants.DAILY_MISSIONS))
	}
	if in.FriendBonusBase < 0 || in.FriendBonusStep < 0 || in.FriendBonusCap < 0 {
		return in, apperr.New(apperr.InvalidInput, "friend bonus values must not be negative")
	}

	in.ID = 1
	if err := s.db.WithContext(ctx).Save(&in).Error; err != nil {
		return in, fmt.Errorf("saving economy settings: %w", err)
	}
	if err := s.cache.Invalidate(ctx, redis_utils.SettingsKey); err != nil {
		s.log.Warn("settings cache invalidation failed", zap.Error(err))
	}
	return in, nil
}
