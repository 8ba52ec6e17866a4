package profile

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"pictocat/models"
	"pictocat/models/postgres"
	"pictocat/services/apperr"
	"pictocat/services/community"
	"pictocat/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	maxPhraseLength = 280
	maxBioLength    = 280
	maxPhrases      = 200
)

// SaveData replaces the caller's phrases and re-syncs their public phrases. Selections of
// images the caller does not own are cleared.
func (s *Service) SaveData(ctx context.Context, subject string, phrases []postgres.Phrase) error {
	if phrases == nil {
		return apperr.New(apperr.InvalidInput, "no data provided to update")
	}
	if len(phrases) > maxPhrases {
		return apperr.Newf(apperr.InvalidInput, "at most %d phrases are allowed", maxPhrases)
	}
	seen := make(map[string]bool, len(phrases))
	for i := range phrases {
		p := &phrases[i]
		p.Text = strings.TrimSpace(p.Text)
		if p.ID == "" || seen[p.ID] {
			return apperr.New(apperr.InvalidInput, "every phrase needs a unique id")
		}
		seen[p.ID] = true
		if p.Text == "" || utf8.RuneCountInString(p.Text) > maxPhraseLength {
			return apperr.Newf(apperr.InvalidInput, "phrase text must have 1 to %d characters", maxPhraseLength)
		}
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		player, err := utils.LockPlayer(tx, subject)
		if err != nil {
			return err
		}
		owned, err := utils.UnlockedItemIDs(tx, subject)
		if err != nil {
			return err
		}
		for i := range phrases {
			if id := phrases[i].SelectedImageID; id != nil && !slices.Contains(owned, *id) {
				phrases[i].SelectedImageID = nil
			}
		}

		player.SetPhrases(phrases)
		if err := tx.Model(player).Update("phrases", player.Phrases).Error; err != nil {
			return fmt.Errorf("saving phrases: %w", err)
		}
		return community.SyncPublicPhrases(tx, player)
	})
}

// UpdateProfile changes username and bio. The new username is copied onto the caller's public phrases.
func (s *Service) UpdateProfile(ctx context.Context, subject, username, bio string) error {
	username = strings.TrimSpace(username)
	bio = strings.TrimSpace(bio)
	if !ValidUsername(username) {
		return apperr.New(apperr.InvalidInput, "invalid username format")
	}
	if utf8.RuneCountInString(bio) > maxBioLength {
		return apperr.Newf(apperr.InvalidInput, "bio must have at most %d characters", maxBioLength)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		player, err := utils.LockPlayer(tx, subject)
		if err != nil {
			return err
		}

		other, err := utils.FindPlayerByUsername(tx, username)
		if err == nil && other.ID != subject {
			return apperr.New(apperr.Conflict, "username is already taken")
		}
		if err != nil && !apperr.Is(err, apperr.NotFound) {
			return err
		}

		if err := tx.Model(player).Updates(map[string]interface{}{"username": username, "bio": bio}).Error; err != nil {
			return fmt.Errorf("updating profile: %w", err)
		}
		return tx.Model(&postgres.PublicPhrase{}).
			Where("user_id = ?", subject).
			Update("username", username).Error
	})
}

// SetAvatar selects one of the caller's unlocked items as avatar; nil clears it.
func (s *Service) SetAvatar(ctx context.Context, subject string, itemID *int) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		player, err := utils.LockPlayer(tx, subject)
		if err != nil {
			return err
		}
		if itemID != nil {
			owns, err := utils.OwnsAll(tx, subject, []int{*itemID})
			if err != nil {
				return err
			}
			if !owns {
				return apperr.New(apperr.InvalidItems, "avatar must be an unlocked item")
			}
		}
		return tx.Model(player).Update("avatar_item_id", itemID).Error
	})
}

// PurchaseUpgrade debits the upgrade cost and records it as owned.
func (s *Service) PurchaseUpgrade(ctx context.Context, subject, upgradeID string) (*models.UpgradePurchaseResult, error) {
	var result models.UpgradePurchaseResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var upgrade postgres.Upgrade
		err := tx.Where("id = ?", upgradeID).First(&upgrade).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.New(apperr.NotFound, "upgrade not found")
		}
		if err != nil {
			return fmt.Errorf("loading upgrade: %w", err)
		}

		player, err := utils.LockPlayer(tx, subject)
		if err != nil {
			return err
		}
		owned, err := player.GetPurchasedUpgrades()
		if err != nil {
			return fmt.Errorf("decoding upgrades: %w", err)
		}
		if slices.Contains(owned, upgrade.ID) {
			return apperr.New(apperr.Conflict, "upgrade already purchased")
		}
		if player.Level < upgrade.LevelRequired {
			return apperr.Newf(apperr.Forbidden, "level %d required", upgrade.LevelRequired)
		}
		if player.Coins < upgrade.Cost {
			return apperr.New(apperr.InsufficientFunds, "not enough coins")
		}

		player.Coins -= upgrade.Cost
		owned = append(owned, upgrade.ID)
		player.SetPurchasedUpgrades(owned)
		if err := tx.Model(player).Updates(map[string]interface{}{
			"coins":              player.Coins,
			"purchased_upgrades": player.PurchasedUpgrades,
		}).Error; err != nil {
			return fmt.Errorf("saving upgrade purchase: %w", err)
		}

		result = models.UpgradePurchaseResult{NewCoins: player.Coins, PurchasedUpgrades: owned}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("upgrade purchased", zap.String("subject", subject), zap.String("upgrade", upgradeID))
	return &result, nil
}
