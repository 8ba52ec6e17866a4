package friendship

import (
	"context"
	"fmt"

	game_constants "pictocat/constants/game"
	"pictocat/models"
	"pictocat/models/postgres"
	"pictocat/services/apperr"
	"pictocat/services/progression"
	socketio_types "pictocat/services/socket_io/types"
	"pictocat/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// StartMission assigns templateID as the active mission of the friendship.
// A friendship holds one mission at a time; a completed one must be claimed first.
func (s *Service) StartMission(ctx context.Context, subject, friendshipID, templateID string) (*models.FriendshipView, error) {
	tpl, ok := game_constants.FindFriendshipMission(templateID)
	if !ok {
		return nil, apperr.New(apperr.NotFound, "mission not found")
	}

	var view models.FriendshipView
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		friendship, err := lockMembership(tx, subject, friendshipID)
		if err != nil {
			return err
		}
		if friendship.HasMission() {
			if friendship.MissionCompleted {
				return apperr.New(apperr.Conflict, "claim the completed mission first")
			}
			return apperr.New(apperr.Conflict, "a mission is already active")
		}

		id := tpl.ID
		friendship.MissionID = &id
		friendship.MissionType = tpl.Type
		friendship.MissionGoal = tpl.Goal
		friendship.MissionRewardXP = tpl.RewardXP
		friendship.MissionProgress = 0
		friendship.MissionCompleted = false
		if err := tx.Save(friendship).Error; err != nil {
			return fmt.Errorf("saving mission: %w", err)
		}
		view = models.ViewFriendship(friendship, subject)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// RecordProgress advances the active mission of the a-b friendship when it has missionType.
func (s *Service) RecordProgress(ctx context.Context, a, b, missionType string, amount int) error {
	if a == b || amount <= 0 {
		return nil
	}
	completed := false
	var friendshipID string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user1, user2 := postgres.OrderedPair(a, b)
		var friendship postgres.Friendship
		res := utils.ForUpdate(tx).Where("user1_id = ? AND user2_id = ?", user1, user2).Limit(1).Find(&friendship)
		if res.Error != nil {
			return fmt.Errorf("loading friendship: %w", res.Error)
		}
		if res.RowsAffected == 0 || !friendship.HasMission() || friendship.MissionCompleted || friendship.MissionType != missionType {
			return nil
		}

		friendship.MissionProgress = progression.AdvanceProgress(friendship.MissionProgress, amount, friendship.MissionGoal)
		if friendship.MissionProgress >= friendship.MissionGoal {
			friendship.MissionCompleted = true
			completed = true
			friendshipID = friendship.ID
		}
		return tx.Model(&friendship).Updates(map[string]interface{}{
			"mission_progress":  friendship.MissionProgress,
			"mission_completed": friendship.MissionCompleted,
		}).Error
	})
	if err != nil {
		return err
	}
	if completed {
		payload := map[string]string{"friendshipId": friendshipID}
		s.notifier.Notify(a, socketio_types.EventMissionComplete, payload)
		s.notifier.Notify(b, socketio_types.EventMissionComplete, payload)
	}
	return nil
}

// Progress is RecordProgress for side effects: failures are logged, never returned.
func (s *Service) Progress(ctx context.Context, a, b, missionType string, amount int) {
	if err := s.RecordProgress(ctx, a, b, missionType, amount); err != nil {
		s.log.Warn("recording friendship mission progress failed",
			zap.String("a", a), zap.String("b", b), zap.String("type", missionType), zap.Error(err))
	}
}

// ProgressWithAll records progress on every friendship of actor.
func (s *Service) ProgressWithAll(ctx context.Context, actor, missionType string, amount int) {
	friendships, err := utils.FriendshipsOf(s.db.WithContext(ctx), actor)
	if err != nil {
		s.log.Warn("listing friendships failed", zap.String("subject", actor), zap.Error(err))
		return
	}
	for i := range friendships {
		s.Progress(ctx, actor, friendships[i].Other(actor), missionType, amount)
	}
}

// ClaimReward pays the completed mission's xp into the friendship and clears the mission.
func (s *Service) ClaimReward(ctx context.Context, subject, friendshipID string) (*models.FriendshipReward, error) {
	var reward models.FriendshipReward
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		friendship, err := lockMembership(tx, subject, friendshipID)
		if err != nil {
			return err
		}
		if !friendship.HasMission() || !friendship.MissionCompleted {
			return apperr.New(apperr.NothingToClaim, "no completed mission to claim")
		}

		rewardXP := friendship.MissionRewardXP
		if tpl, ok := game_constants.FindFriendshipMission(*friendship.MissionID); ok && rewardXP == 0 {
			rewardXP = tpl.RewardXP
		}
		friendship.Level, friendship.XP = progression.ApplyFriendshipXP(friendship.Level, friendship.XP, rewardXP)
		friendship.ClearMission()
		if err := tx.Save(friendship).Error; err != nil {
			return fmt.Errorf("saving friendship: %w", err)
		}

		reward = models.FriendshipReward{
			FriendshipID: friendship.ID,
			Level:        friendship.Level,
			XP:           friendship.XP,
			RewardXP:     rewardXP,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("friendship mission claimed", zap.String("friendship", friendshipID), zap.Int("level", reward.Level))
	return &reward, nil
}

// DistributeBonus credits each friend of actor with their share of earned coins.
func (s *Service) DistributeBonus(ctx context.Context, actor string, earned int) error {
	if earned <= 0 {
		return nil
	}
	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return err
	}
	db := s.db.WithContext(ctx)
	friendships, err := utils.FriendshipsOf(db, actor)
	if err != nil {
		return err
	}
	for i := range friendships {
		bonus := progression.FriendBonus(earned, friendships[i].Level, cfg)
		if bonus <= 0 {
			continue
		}
		err := db.Model(&postgres.Player{}).
			Where("id = ?", friendships[i].Other(actor)).
			Update("coins", gorm.Expr("coins + ?", bonus)).Error
		if err != nil {
			return fmt.Errorf("crediting friend bonus: %w", err)
		}
	}
	return nil
}

// MissionTemplates lists the missions a friendship can start.
func MissionTemplates() []game_constants.FriendshipMissionTemplate {
	return game_constants.FRIENDSHIP_MISSIONS
}
