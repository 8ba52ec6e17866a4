package community

import (
	"fmt"

	"pictocat/models/postgres"
	"pictocat/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SyncPublicPhrases mirrors the player's public custom phrases with a selected image into
// public_phrases and removes every other public phrase of the player, with its likes.
// Call it inside the transaction that saved the phrases.
func SyncPublicPhrases(tx *gorm.DB, player *postgres.Player) error {
	phrases, err := player.GetPhrases()
	if err != nil {
		return fmt.Errorf("decoding phrases: %w", err)
	}

	var imageIDs []int
	for _, p := range phrases {
		if p.IsPublic && p.IsCustom && p.SelectedImageID != nil {
			imageIDs = append(imageIDs, *p.SelectedImageID)
		}
	}
	items, err := utils.CatalogItemsByID(tx, imageIDs)
	if err != nil {
		return err
	}
	byID := make(map[int]postgres.CatalogItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	keep := []string{}
	for _, p := range phrases {
		if !p.IsPublic || !p.IsCustom || p.SelectedImageID == nil {
			continue
		}
		item, ok := byID[*p.SelectedImageID]
		if !ok {
			continue
		}
		row := postgres.PublicPhrase{
			UserID:         player.ID,
			PhraseID:       p.ID,
			Text:           p.Text,
			ImageURL:       item.URL,
			ImageTheme:     item.Theme,
			Username:       player.Username,
			IsUserVerified: player.IsVerified,
		}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "phrase_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"text", "image_url", "image_theme", "username", "is_user_verified"}),
		}).Create(&row).Error
		if err != nil {
			return fmt.Errorf("upserting public phrase %s: %w", p.ID, err)
		}
		keep = append(keep, p.ID)
	}

	stale := tx.Model(&postgres.PublicPhrase{}).Where("user_id = ?", player.ID)
	if len(keep) > 0 {
		stale = stale.Where("phrase_id NOT IN ?", keep)
	}
	var staleIDs []string
	if err := stale.Pluck("id", &staleIDs).Error; err != nil {
		return fmt.Errorf("listing stale public phrases: %w", err)
	}
	if len(staleIDs) == 0 {
		return nil
	}
	if err := tx.Where("public_phrase_id IN ?", staleIDs).Delete(&postgres.PhraseLike{}).Error; err != nil {
		return fmt.Errorf("deleting likes: %w", err)
	}
	if err := tx.Where("id IN ?", staleIDs).Delete(&postgres.PublicPhrase{}).Error; err != nil {
		return fmt.Errorf("deleting public phrases: %w", err)
	}
	return nil
}
