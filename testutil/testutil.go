// Package testutil opens throwaway databases for service tests.
package testutil

import (
	"fmt"
	"testing"

	"pictocat/config"
	"pictocat/models/postgres"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB returns a migrated and seeded in-memory SQLite database private to t.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, config.MigrateDatabase(db, zap.NewNop()))
	require.NoError(t, config.SeedDefaults(db, zap.NewNop()))
	return db
}

// Player inserts a player with sane defaults; mutate customizes it before insert.
func Player(t *testing.T, db *gorm.DB, id string, mutate func(*postgres.Player)) *postgres.Player {
	t.Helper()

	player := &postgres.Player{
		ID:            id,
		Username:      id,
		Role:          "user",
		Coins:         500,
		Level:         1,
		XPToNextLevel: 100,
	}
	player.SetPhrases(nil)
	player.SetPurchasedUpgrades(nil)
	player.SetDailyMissions(nil)
	player.SetLegacyFriends(nil)
	if mutate != nil {
		mutate(player)
	}
	require.NoError(t, db.Create(player).Error)
	return player
}

// CatalogItems inserts n items of theme and returns them.
func CatalogItems(t *testing.T, db *gorm.DB, theme string, n int) []postgres.CatalogItem {
	t.Helper()

	items := make([]postgres.CatalogItem, n)
	for i := range items {
		items[i] = postgres.CatalogItem{
			URL:    fmt.Sprintf("https://cdn.example.com/%s/%d.png", theme, i),
			Theme:  theme,
			Rarity: "common",
		}
	}
	require.NoError(t, db.Create(&items).Error)
	return items
}

// Unlock adds item ids to a player's unlocked set.
func Unlock(t *testing.T, db *gorm.DB, playerID string, itemIDs ...int) {
	t.Helper()

	for _, id := range itemIDs {
		require.NoError(t, db.Create(&postgres.UnlockedItem{PlayerID: playerID, ItemID: id}).Error)
	}
}

// Friends creates a friendship between a and b.
func Friends(t *testing.T, db *gorm.DB, a, b string, level int) *postgres.Friendship {
	t.Helper()

	friendship := &postgres.Friendship{User1ID: a, User2ID: b, Level: level}
	require.NoError(t, db.Create(friendship).Error)
	return friendship
}
