package admin

import (
	"context"
	"fmt"
	"strings"

	"pictocat/models/postgres"
	"pictocat/services/apperr"
	redis_utils "pictocat/services/redis/utils"

	"github.com/gosimple/slug"
	"go.uber.org/zap"
)

func (s *Service) ListEnvelopes(ctx context.Context) ([]postgres.Envelope, error) {
	envelopes := []postgres.Envelope{}
	if err := s.db.WithContext(ctx).Order("base_cost").Find(&envelopes).Error; err != nil {
		return nil, fmt.Errorf("listing envelopes: %w", err)
	}
	return envelopes, nil
}

// SaveEnvelope creates or replaces an envelope. A missing id is derived from the name.
func (s *Service) SaveEnvelope(ctx context.Context, envelope postgres.Envelope) (*postgres.Envelope, error) {
	envelope.Name = strings.TrimSpace(envelope.Name)
	if envelope.Name == "" {
		return nil, apperr.New(apperr.InvalidInput, "name is required")
	}
	if envelope.ID == "" {
		envelope.ID = slug.Make(envelope.Name)
	}
	if envelope.ID == "" {
		return nil, apperr.New(apperr.InvalidInput, "cannot derive an id from the name")
	}
	if envelope.BaseCost < 0 || envelope.CostIncreasePerLevel < 0 || envelope.XP < 0 {
		return nil, apperr.New(apperr.InvalidInput, "costs and xp must not be negative")
	}
	if envelope.ImageCount < 1 {
		return nil, apperr.New(apperr.InvalidInput, "imageCount must be at least 1")
	}
	themes, err := envelope.Themes()
	if err != nil {
		return nil, apperr.New(apperr.InvalidInput, "catThemePool must be a list of themes")
	}
	envelope.SetThemes(themes)

	if err := s.db.WithContext(ctx).Save(&envelope).Error; err != nil {
		return nil, fmt.Errorf("saving envelope: %w", err)
	}
	s.invalidate(ctx, redis_utils.ShopKeys())
	s.log.Info("envelope saved", zap.String("envelope", envelope.ID))
	return &envelope, nil
}

func (s *Service) DeleteEnvelope(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&postgres.Envelope{})
	if res.Error != nil {
		return fmt.Errorf("deleting envelope: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.NotFound, "envelope not found")
	}
	s.invalidate(ctx, redis_utils.ShopKeys())
	return nil
}

func (s *Service) ListUpgrades(ctx context.Context) ([]postgres.Upgrade, error) {
	upgrades := []postgres.Upgrade{}
	if err := s.db.WithContext(ctx).Order("level_required").Find(&upgrades).Error; err != nil {
		return nil, fmt.Errorf("listing upgrades: %w", err)
	}
	return upgrades, nil
}

// SaveUpgrade creates or replaces an upgrade. A missing id is derived from the name.
func (s *Service) SaveUpgrade(ctx context.Context, upgrade postgres.Upgrade) (*postgres.Upgrade, error) {
	upgrade.Name = strings.TrimSpace(upgrade.Name)
	if upgrade.Name == "" {
		return nil, apperr.New(apperr.InvalidInput, "name is required")
	}
	if upgrade.ID == "" {
		upgrade.ID = slug.Make(upgrade.Name)
	}
	if upgrade.ID == "" {
		return nil, apperr.New(apperr.InvalidInput, "cannot derive an id from the name")
	}
	if upgrade.Cost < 0 || upgrade.LevelRequired < 0 {
		return nil, apperr.New(apperr.InvalidInput, "cost and levelRequired must not be negative")
	}
	if err := s.db.WithContext(ctx).Save(&upgrade).Error; err != nil {
		return nil, fmt.Errorf("saving upgrade: %w", err)
	}
	s.invalidate(ctx, redis_utils.ShopKeys())
	s.log.Info("upgrade saved", zap.String("upgrade", upgrade.ID))
	return &upgrade, nil
}

func (s *Service) DeleteUpgrade(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&postgres.Upgrade{})
	if res.Error != nil {
		return fmt.Errorf("deleting upgrade: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.NotFound, "upgrade not found")
	}
	s.invalidate(ctx, redis_utils.ShopKeys())
	return nil
}
