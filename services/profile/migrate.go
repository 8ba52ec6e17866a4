package profile

import (
	"context"
	"fmt"

	"pictocat/models/postgres"
	"pictocat/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RepairAll runs Repair over every stored player. It returns how many rows changed.
func (s *Service) RepairAll(ctx context.Context) (int, error) {
	var ids []string
	if err := s.db.WithContext(ctx).Model(&postgres.Player{}).Order("id").Pluck("id", &ids).Error; err != nil {
		return 0, fmt.Errorf("listing players: %w", err)
	}

	repaired := 0
	for _, id := range ids {
		changed := false
		err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			player, err := utils.LockPlayer(tx, id)
			if err != nil {
				return err
			}
			changed = Repair(player)
			if !changed {
				return nil
			}
			return tx.Save(player).Error
		})
		if err != nil {
			return repaired, fmt.Errorf("repairing %s: %w", id, err)
		}
		if changed {
			repaired++
		}
	}
	s.log.Info("profiles repaired", zap.Int("changed", repaired), zap.Int("total", len(ids)))
	return repaired, nil
}

// MigrateLegacyFriends turns every legacy friend id into a friendship row and clears
// the legacy list. Running it twice is harmless.
func (s *Service) MigrateLegacyFriends(ctx context.Context) (int, error) {
	var players []postgres.Player
	err := s.db.WithContext(ctx).
		Where("legacy_friends IS NOT NULL").
		Find(&players).Error
	if err != nil {
		return 0, fmt.Errorf("listing players: %w", err)
	}

	created := 0
	for i := range players {
		friends, err := players[i].GetLegacyFriends()
		if err != nil || len(friends) == 0 {
			continue
		}
		err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			for _, friendID := range friends {
				if friendID == "" || friendID == players[i].ID {
					continue
				}
				if _, err := utils.FindPlayer(tx, friendID); err != nil {
					s.log.Warn("legacy friend does not exist", zap.String("subject", players[i].ID), zap.String("friend", friendID))
					continue
				}
				friendship := postgres.Friendship{User1ID: players[i].ID, User2ID: friendID}
				res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&friendship)
				if res.Error != nil {
					return fmt.Errorf("creating friendship: %w", res.Error)
				}
				created += int(res.RowsAffected)
			}
			players[i].SetLegacyFriends(nil)
			return tx.Model(&players[i]).Update("legacy_friends", players[i].LegacyFriends).Error
		})
		if err != nil {
			return created, err
		}
	}
	s.log.Info("legacy friends migrated", zap.Int("friendships", created))
	return created, nil
}
