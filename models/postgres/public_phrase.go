package postgres

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/*
 * 'PublicPhrase' is a denormalized copy of a player's public custom phrase,
 * snapshotting the author and image so the feed needs no joins.
 */
type PublicPhrase struct {
	ID             string `gorm:"primaryKey;size:36;not null"`
	UserID         string `gorm:"size:128;not null;uniqueIndex:idx_public_phrases_owner"`
	PhraseID       string `gorm:"size:64;not null;uniqueIndex:idx_public_phrases_owner"`
	Text           string `gorm:"size:280;not null"`
	ImageURL       string `gorm:"size:512"`
	ImageTheme     string `gorm:"size:64"`
	Username       string `gorm:"size:20;not null"`
	IsUserVerified bool
	CreatedAt      time.Time `gorm:"index"`
}

func (p *PublicPhrase) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

type PhraseLike struct {
	PublicPhraseID string `gorm:"primaryKey;size:36;not null"`
	PlayerID       string `gorm:"primaryKey;size:128;not null;index"`
	CreatedAt      time.Time
}
