// Package missions tracks the per-player daily missions.
package missions

import (
	"context"
	"fmt"
	"time"

	"pictocat/models/postgres"
	"pictocat/services/apperr"
	"pictocat/services/progression"
	"pictocat/services/settings"
	"pictocat/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	db       *gorm.DB
	settings *settings.Service
	log      *zap.Logger

	Now     func() time.Time
	Shuffle Shuffler
}

func NewService(db *gorm.DB, settings *settings.Service, log *zap.Logger) *Service {
	return &Service{
		db:       db,
		settings: settings,
		log:      log.Named("missions"),
		Now:      time.Now,
	}
}

// RecordActivity advances the caller's unclaimed missions of missionType.
func (s *Service) RecordActivity(ctx context.Context, subject, missionType string, amount int) error {
	if amount <= 0 {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		player, err := utils.LockPlayer(tx, subject)
		if err != nil {
			return err
		}
		missions, err := player.GetDailyMissions()
		if err != nil {
			return fmt.Errorf("decoding daily missions: %w", err)
		}
		if !Advance(missions, missionType, amount) {
			return nil
		}
		player.SetDailyMissions(missions)
		return tx.Model(player).Update("daily_missions", player.DailyMissions).Error
	})
}

// Record is RecordActivity for side effects: failures are logged, never returned.
func (s *Service) Record(ctx context.Context, subject, missionType string, amount int) {
	if err := s.RecordActivity(ctx, subject, missionType, amount); err != nil {
		s.log.Warn("recording daily mission progress failed",
			zap.String("subject", subject), zap.String("type", missionType), zap.Error(err))
	}
}

// Claim pays out a completed mission and marks it claimed.
func (s *Service) Claim(ctx context.Context, subject, missionID string) (*postgres.Player, error) {
	var player *postgres.Player
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		player, err = utils.LockPlayer(tx, subject)
		if err != nil {
			return err
		}
		missions, err := player.GetDailyMissions()
		if err != nil {
			return fmt.Errorf("decoding daily missions: %w", err)
		}

		idx := -1
		for i := range missions {
			if missions[i].ID == missionID {
				idx = i
				break
			}
		}
		if idx < 0 || missions[idx].IsClaimed || missions[idx].Progress < missions[idx].Goal {
			return apperr.New(apperr.NothingToClaim, "mission not available to claim")
		}

		mission := &missions[idx]
		mission.IsClaimed = true
		player.Coins += mission.RewardCoins
		progression.GrantPlayerXP(player, mission.RewardXP)
		player.SetDailyMissions(missions)

		return tx.Model(player).Updates(map[string]interface{}{
			"coins":            player.Coins,
			"level":            player.Level,
			"xp":               player.XP,
			"xp_to_next_level": player.XPToNextLevel,
			"daily_missions":   player.DailyMissions,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("daily mission claimed", zap.String("subject", subject), zap.String("mission", missionID))
	return player, nil
}

// RollIfDue applies the daily rollover to an already locked player row inside tx.
// count comes from MissionCount, read before the transaction started.
func (s *Service) RollIfDue(tx *gorm.DB, player *postgres.Player, count int) (bool, error) {
	if !Roll(player, count, s.Now(), false, s.Shuffle) {
		return false, nil
	}
	err := tx.Model(player).Updates(map[string]interface{}{
		"daily_missions":     player.DailyMissions,
		"last_mission_reset": player.LastMissionReset,
	}).Error
	return true, err
}

// ResetAll rolls every player whose missions are from a previous day, or every player when force is set.
// It returns how many players were rolled.
func (s *Service) ResetAll(ctx context.Context, force bool) (int, error) {
	count, err := s.MissionCount(ctx)
	if err != nil {
		return 0, err
	}
	now := s.Now()

	var ids []string
	query := s.db.WithContext(ctx).Model(&postgres.Player{})
	if !force {
		query = query.Where("last_mission_reset < ?", DayStart(now))
	}
	if err := query.Order("id").Pluck("id", &ids).Error; err != nil {
		return 0, fmt.Errorf("listing players: %w", err)
	}

	rolled := 0
	for _, id := range ids {
		changed := false
		err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			player, err := utils.LockPlayer(tx, id)
			if err != nil {
				return err
			}
			changed = Roll(player, count, now, force, s.Shuffle)
			if !changed {
				return nil
			}
			return tx.Model(player).Updates(map[string]interface{}{
				"daily_missions":     player.DailyMissions,
				"last_mission_reset": player.LastMissionReset,
			}).Error
		})
		if err != nil {
			s.log.Error("daily mission reset failed", zap.String("subject", id), zap.Error(err))
			continue
		}
		if changed {
			rolled++
		}
	}
	s.log.Info("daily missions reset", zap.Int("players", rolled), zap.Bool("forced", force))
	return rolled, nil
}

// MissionCount is how many templates a rollover draws.
func (s *Service) MissionCount(ctx context.Context) (int, error) {
	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return 0, err
	}
	return cfg.DailyMissionCount, nil
}
