package utils

import (
	"errors"
	"fmt"
	"sort"

	"pictocat/models/postgres"
	"pictocat/services/apperr"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ForUpdate adds a row lock when the dialect supports it.
func ForUpdate(tx *gorm.DB) *gorm.DB {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// Function to load a player by subject, NotFound when absent
func FindPlayer(db *gorm.DB, id string) (*postgres.Player, error) {
	var player postgres.Player
	if err := db.Where("id = ?", id).First(&player).Error; err != nil {
		return nil, playerLookupError(err)
	}
	return &player, nil
}

func FindPlayerByUsername(db *gorm.DB, username string) (*postgres.Player, error) {
	var player postgres.Player
	if err := db.Where("username = ?", username).First(&player).Error; err != nil {
		return nil, playerLookupError(err)
	}
	return &player, nil
}

// LockPlayer loads a player with SELECT ... FOR UPDATE. Must be called inside a transaction.
func LockPlayer(tx *gorm.DB, id string) (*postgres.Player, error) {
	var player postgres.Player
	if err := ForUpdate(tx).Where("id = ?", id).First(&player).Error; err != nil {
		return nil, playerLookupError(err)
	}
	return &player, nil
}

// LockPlayers locks every id in ascending order so concurrent callers never deadlock.
func LockPlayers(tx *gorm.DB, ids ...string) (map[string]*postgres.Player, error) {
	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)

	players := make(map[string]*postgres.Player, len(sorted))
	for _, id := range sorted {
		if _, done := players[id]; done {
			continue
		}
		player, err := LockPlayer(tx, id)
		if err != nil {
			return nil, err
		}
		players[id] = player
	}
	return players, nil
}

func playerLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.New(apperr.NotFound, "user not found")
	}
	return fmt.Errorf("loading player: %w", err)
}

// UnlockedItemIDs returns the unlocked set of a player, sorted.
func UnlockedItemIDs(db *gorm.DB, playerID string) ([]int, error) {
	ids := []int{}
	err := db.Model(&postgres.UnlockedItem{}).
		Where("player_id = ?", playerID).
		Order("item_id").
		Pluck("item_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("loading unlocked items: %w", err)
	}
	return ids, nil
}

// OwnsAll reports whether every id in itemIDs is in the player's unlocked set.
func OwnsAll(db *gorm.DB, playerID string, itemIDs []int) (bool, error) {
	if len(itemIDs) == 0 {
		return true, nil
	}
	var count int64
	err := db.Model(&postgres.UnlockedItem{}).
		Where("player_id = ? AND item_id IN ?", playerID, itemIDs).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("checking ownership: %w", err)
	}
	return int(count) == len(Dedupe(itemIDs)), nil
}

// OwnsAny reports whether at least one id in itemIDs is in the player's unlocked set.
func OwnsAny(db *gorm.DB, playerID string, itemIDs []int) (bool, error) {
	if len(itemIDs) == 0 {
		return false, nil
	}
	var count int64
	err := db.Model(&postgres.UnlockedItem{}).
		Where("player_id = ? AND item_id IN ?", playerID, itemIDs).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("checking ownership: %w", err)
	}
	return count > 0, nil
}

// CatalogItemsByID resolves ids into records, preserving the order of ids and skipping unknown ones.
func CatalogItemsByID(db *gorm.DB, ids []int) ([]postgres.CatalogItem, error) {
	items := []postgres.CatalogItem{}
	if len(ids) == 0 {
		return items, nil
	}
	var found []postgres.CatalogItem
	if err := db.Where("id IN ?", ids).Find(&found).Error; err != nil {
		return nil, fmt.Errorf("loading catalog items: %w", err)
	}
	byID := make(map[int]postgres.CatalogItem, len(found))
	for _, item := range found {
		byID[item.ID] = item
	}
	for _, id := range ids {
		if item, ok := byID[id]; ok {
			items = append(items, item)
		}
	}
	return items, nil
}

// Dedupe keeps the first occurrence of each id.
func Dedupe(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
