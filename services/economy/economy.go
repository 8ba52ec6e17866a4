// Package economy sells envelopes of catalog images and serves the shop.
package economy

import (
	"context"
	"errors"
	"fmt"
	"sort"

	game_constants "pictocat/constants/game"
	"pictocat/models"
	"pictocat/models/postgres"
	"pictocat/services/apperr"
	"pictocat/services/missions"
	"pictocat/services/progression"
	"pictocat/services/redis"
	redis_utils "pictocat/services/redis/utils"
	"pictocat/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	db       *gorm.DB
	cache    *redis.RedisClient
	missions *missions.Service
	log      *zap.Logger

	Shuffle func(n int, swap func(i, j int))
}

func NewService(db *gorm.DB, cache *redis.RedisClient, missions *missions.Service, log *zap.Logger) *Service {
	return &Service{db: db, cache: cache, missions: missions, log: log.Named("economy")}
}

// Purchase sells one envelope to subject. Debit, grant and xp award happen in one
// transaction with the player row locked; nothing changes on failure.
func (s *Service) Purchase(ctx context.Context, subject, envelopeID string) (*models.PurchaseResult, error) {
	var result models.PurchaseResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var envelope postgres.Envelope
		err := tx.Where("id = ?", envelopeID).First(&envelope).Error
		if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && envelope.ImageCount <= 0) {
			return apperr.New(apperr.InvalidOffer, "invalid envelopeId")
		}
		if err != nil {
			return fmt.Errorf("loading envelope: %w", err)
		}
		themes, err := envelope.Themes()
		if err != nil {
			return fmt.Errorf("decoding theme pool: %w", err)
		}

		player, err := utils.LockPlayer(tx, subject)
		if err != nil {
			return err
		}

		var pool []postgres.CatalogItem
		query := tx.Order("id")
		if len(themes) > 0 {
			query = query.Where("theme IN ?", themes)
		}
		if err := query.Find(&pool).Error; err != nil {
			return fmt.Errorf("loading pool: %w", err)
		}
		unlocked, err := utils.UnlockedItemIDs(tx, subject)
		if err != nil {
			return err
		}

		remaining := RemainingPool(pool, unlocked)
		if len(remaining) == 0 {
			return apperr.New(apperr.OfferExhausted, "you already own every image in this envelope")
		}
		granted := envelope.ImageCount
		if len(remaining) < granted {
			granted = len(remaining)
		}
		cost := ProratedCost(EnvelopeCost(&envelope, player.Level), granted, envelope.ImageCount)
		if player.Coins < cost {
			return apperr.New(apperr.InsufficientFunds, "not enough coins")
		}

		drawn := Draw(remaining, granted, s.Shuffle)
		rows := make([]postgres.UnlockedItem, 0, len(drawn))
		for _, item := range drawn {
			rows = append(rows, postgres.UnlockedItem{PlayerID: subject, ItemID: item.ID})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("granting items: %w", err)
		}

		player.Coins -= cost
		progression.GrantPlayerXP(player, envelope.XP)
		if err := tx.Model(player).Updates(map[string]interface{}{
			"coins":            player.Coins,
			"level":            player.Level,
			"xp":               player.XP,
			"xp_to_next_level": player.XPToNextLevel,
		}).Error; err != nil {
			return fmt.Errorf("debiting player: %w", err)
		}

		result = models.PurchaseResult{
			NewCoins:    player.Coins,
			NewImages:   drawn,
			Cost:        cost,
			PlayerStats: models.StatsOf(player),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("envelope purchased",
		zap.String("subject", subject), zap.String("envelope", envelopeID),
		zap.Int("granted", len(result.NewImages)), zap.Int("cost", result.Cost))
	s.missions.Record(ctx, subject, game_constants.MISSION_OPEN_ENVELOPE, 1)
	return &result, nil
}

// ShopData lists envelopes by base cost and upgrades by required level.
func (s *Service) ShopData(ctx context.Context) (*models.ShopData, error) {
	var data models.ShopData
	if hit, err := s.cache.GetJSON(ctx, redis_utils.ShopKey, &data); err != nil {
		s.log.Warn("shop cache read failed", zap.Error(err))
	} else if hit {
		return &data, nil
	}

	db := s.db.WithContext(ctx)
	if err := db.Order("id").Find(&data.Envelopes).Error; err != nil {
		return nil, fmt.Errorf("loading envelopes: %w", err)
	}
	if err := db.Order("id").Find(&data.Upgrades).Error; err != nil {
		return nil, fmt.Errorf("loading upgrades: %w", err)
	}
	sort.SliceStable(data.Envelopes, func(i, j int) bool {
		return data.Envelopes[i].BaseCost < data.Envelopes[j].BaseCost
	})
	sort.SliceStable(data.Upgrades, func(i, j int) bool {
		return data.Upgrades[i].LevelRequired < data.Upgrades[j].LevelRequired
	})

	if err := s.cache.SetJSON(ctx, redis_utils.ShopKey, data, game_constants.SHOP_CACHE_TTL); err != nil {
		s.log.Warn("shop cache write failed", zap.Error(err))
	}
	return &data, nil
}
