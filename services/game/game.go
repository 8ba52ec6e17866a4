// Package game records the outcome of minigame sessions.
package game

import (
	"context"

	game_constants "pictocat/constants/game"
	"pictocat/models"
	"pictocat/services/apperr"
	"pictocat/services/friendship"
	"pictocat/services/missions"
	"pictocat/services/progression"
	"pictocat/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Session earnings above these are rejected as tampered.
const (
	maxCoinsPerSession = 5000
	maxXPPerSession    = 5000
)

type Service struct {
	db         *gorm.DB
	friendship *friendship.Service
	missions   *missions.Service
	log        *zap.Logger
}

func NewService(db *gorm.DB, friendship *friendship.Service, missions *missions.Service, log *zap.Logger) *Service {
	return &Service{db: db, friendship: friendship, missions: missions, log: log.Named("game")}
}

// SaveResults credits a finished session to subject and feeds the social side effects:
// friend coin bonus, PLAY_GAMES friendship progress and the PLAY_ANY_GAME daily mission.
func (s *Service) SaveResults(ctx context.Context, subject string, coinsEarned, xpEarned int) (*models.GameResultsResponse, error) {
	if coinsEarned < 0 || xpEarned < 0 {
		return nil, apperr.New(apperr.InvalidInput, "invalid game results")
	}
	if coinsEarned > maxCoinsPerSession || xpEarned > maxXPPerSession {
		return nil, apperr.New(apperr.InvalidInput, "game results out of range")
	}

	var result models.GameResultsResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		player, err := utils.LockPlayer(tx, subject)
		if err != nil {
			return err
		}
		player.Coins += coinsEarned
		progression.GrantPlayerXP(player, xpEarned)
		if err := tx.Model(player).Updates(map[string]interface{}{
			"coins":            player.Coins,
			"level":            player.Level,
			"xp":               player.XP,
			"xp_to_next_level": player.XPToNextLevel,
		}).Error; err != nil {
			return err
		}
		result = models.GameResultsResponse{
			Success:     true,
			NewCoins:    player.Coins,
			PlayerStats: models.StatsOf(player),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Debug("game results saved",
		zap.String("subject", subject), zap.Int("coins", coinsEarned), zap.Int("xp", xpEarned))
	if err := s.friendship.DistributeBonus(ctx, subject, coinsEarned); err != nil {
		s.log.Warn("distributing friend bonus failed", zap.String("subject", subject), zap.Error(err))
	}
	s.friendship.ProgressWithAll(ctx, subject, game_constants.FRIEND_MISSION_PLAY_GAMES, 1)
	s.missions.Record(ctx, subject, game_constants.MISSION_PLAY_ANY_GAME, 1)
	return &result, nil
}
