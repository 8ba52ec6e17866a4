package admin

import (
	"context"
	"fmt"
	"io"
	"strings"

	game_constants "pictocat/constants/game"
	"pictocat/models/postgres"
	"pictocat/services/apperr"
	redis_utils "pictocat/services/redis/utils"
	"pictocat/services/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func validRarity(rarity string) bool {
	switch rarity {
	case game_constants.RARITY_COMMON, game_constants.RARITY_RARE, game_constants.RARITY_EPIC:
		return true
	}
	return false
}

func normalizeItem(item *postgres.CatalogItem) error {
	item.URL = strings.TrimSpace(item.URL)
	item.Theme = strings.TrimSpace(item.Theme)
	if item.Rarity == "" {
		item.Rarity = game_constants.RARITY_COMMON
	}
	if item.URL == "" || item.Theme == "" {
		return apperr.New(apperr.InvalidInput, "url and theme are required")
	}
	if !validRarity(item.Rarity) {
		return apperr.Newf(apperr.InvalidInput, "unknown rarity %q", item.Rarity)
	}
	return nil
}

func (s *Service) ListCatalog(ctx context.Context) ([]postgres.CatalogItem, error) {
	items := []postgres.CatalogItem{}
	if err := s.db.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("listing catalog: %w", err)
	}
	return items, nil
}

func (s *Service) AddCatalogItem(ctx context.Context, item postgres.CatalogItem) (*postgres.CatalogItem, error) {
	item.ID = 0
	if err := normalizeItem(&item); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, fmt.Errorf("creating catalog item: %w", err)
	}
	s.invalidate(ctx, redis_utils.CatalogKeys())
	s.log.Info("catalog item added", zap.Int("item", item.ID), zap.String("theme", item.Theme))
	return &item, nil
}

// UploadCatalogItem stores the image in R2 and adds it to the catalog.
func (s *Service) UploadCatalogItem(ctx context.Context, item postgres.CatalogItem, filename, contentType string, body io.Reader) (*postgres.CatalogItem, error) {
	if s.uploader == nil {
		return nil, storage.ErrNotConfigured
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, apperr.New(apperr.InvalidInput, "only images can be uploaded")
	}
	if strings.TrimSpace(item.Theme) == "" {
		return nil, apperr.New(apperr.InvalidInput, "theme is required")
	}
	url, err := s.uploader.Upload(ctx, storage.ObjectKey(item.Theme, filename), contentType, body)
	if err != nil {
		return nil, err
	}
	item.URL = url
	return s.AddCatalogItem(ctx, item)
}

func (s *Service) UpdateCatalogItem(ctx context.Context, id int, item postgres.CatalogItem) (*postgres.CatalogItem, error) {
	if err := normalizeItem(&item); err != nil {
		return nil, err
	}
	res := s.db.WithContext(ctx).Model(&postgres.CatalogItem{}).Where("id = ?", id).Updates(map[string]interface{}{
		"url":      item.URL,
		"theme":    item.Theme,
		"rarity":   item.Rarity,
		"is_shiny": item.IsShiny,
	})
	if res.Error != nil {
		return nil, fmt.Errorf("updating catalog item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.New(apperr.NotFound, "catalog item not found")
	}
	item.ID = id
	s.invalidate(ctx, redis_utils.CatalogKeys())
	return &item, nil
}

// DeleteCatalogItem refuses to remove an item some player owns.
func (s *Service) DeleteCatalogItem(ctx context.Context, id int) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owners int64
		if err := tx.Model(&postgres.UnlockedItem{}).Where("item_id = ?", id).Count(&owners).Error; err != nil {
			return fmt.Errorf("counting owners: %w", err)
		}
		if owners > 0 {
			return apperr.Newf(apperr.Conflict, "item is owned by %d players", owners)
		}
		res := tx.Delete(&postgres.CatalogItem{}, id)
		if res.Error != nil {
			return fmt.Errorf("deleting catalog item: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return apperr.New(apperr.NotFound, "catalog item not found")
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.invalidate(ctx, redis_utils.CatalogKeys())
	s.log.Info("catalog item deleted", zap.Int("item", id))
	return nil
}

// Themes lists the distinct catalog themes in alphabetical order.
func (s *Service) Themes(ctx context.Context) ([]string, error) {
	themes := []string{}
	err := s.db.WithContext(ctx).Model(&postgres.CatalogItem{}).
		Distinct("theme").
		Order("theme").
		Pluck("theme", &themes).Error
	if err != nil {
		return nil, fmt.Errorf("listing themes: %w", err)
	}
	return themes, nil
}
