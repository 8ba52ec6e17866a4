package config

import (
	"errors"
	"fmt"

	game_constants "pictocat/constants/game"
	"pictocat/models/postgres"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func DefaultEnvelopes() []postgres.Envelope {
	bronze := postgres.Envelope{ID: "bronze", Name: "Sobre de Bronce", BaseCost: 100, CostIncreasePerLevel: 10,
		ImageCount: 3, XP: 10, Color: "from-amber-600 to-amber-800", Description: "Un sobre básico con 3 imágenes."}
	silver := postgres.Envelope{ID: "silver", Name: "Sobre de Plata", BaseCost: 250, CostIncreasePerLevel: 25,
		ImageCount: 5, XP: 25, Color: "from-slate-400 to-slate-600", Description: "Un sobre mejorado con 5 imágenes."}
	gold := postgres.Envelope{ID: "gold", Name: "Sobre de Oro", BaseCost: 500, CostIncreasePerLevel: 50,
		ImageCount: 8, XP: 50, Color: "from-yellow-400 to-yellow-600", Description: "Un sobre premium con 8 imágenes.", IsFeatured: true}
	envelopes := []postgres.Envelope{bronze, silver, gold}
	for i := range envelopes {
		envelopes[i].SetThemes(nil)
	}
	return envelopes
}

func DefaultUpgrades() []postgres.Upgrade {
	return []postgres.Upgrade{
		{ID: "goldenPaw", Name: "Pata Dorada", Description: "Gana un 10% más de monedas en los minijuegos.", Cost: 1000, LevelRequired: 3, Icon: "coin"},
		{ID: "betterBait", Name: "Mejor Cebo", Description: "Aparecen más ratones en la caza.", Cost: 1500, LevelRequired: 5, Icon: "mouse"},
		{ID: "extraTime", Name: "Tiempo Extra", Description: "5 segundos más en cada minijuego.", Cost: 2000, LevelRequired: 7, Icon: "time"},
	}
}

func DefaultEconomySettings() postgres.EconomySettings {
	return postgres.EconomySettings{
		ID:                      1,
		StartingCoins:           game_constants.STARTING_COINS,
		DailyMissionCount:       game_constants.DAILY_MISSION_COUNT,
		FriendBonusBase:         game_constants.FRIEND_BONUS_BASE,
		FriendBonusStep:         game_constants.FRIEND_BONUS_STEP,
		FriendBonusCap:          game_constants.FRIEND_BONUS_CAP,
		TradeRequiresFriendship: true,
	}
}

// SeedDefaults inserts the default shop and the settings row when they are missing.
// Existing rows are never overwritten.
func SeedDefaults(db *gorm.DB, log *zap.Logger) error {
	return db.Transaction(func(tx *gorm.DB) error {
		envelopes := DefaultEnvelopes()
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&envelopes).Error; err != nil {
			return fmt.Errorf("seeding envelopes: %w", err)
		}
		upgrades := DefaultUpgrades()
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&upgrades).Error; err != nil {
			return fmt.Errorf("seeding upgrades: %w", err)
		}

		var settings postgres.EconomySettings
		err := tx.Where("id = ?", 1).First(&settings).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			settings = DefaultEconomySettings()
			if err := tx.Create(&settings).Error; err != nil {
				return fmt.Errorf("seeding economy settings: %w", err)
			}
			log.Info("seeded economy settings")
		} else if err != nil {
			return fmt.Errorf("loading economy settings: %w", err)
		}
		return nil
	})
}
