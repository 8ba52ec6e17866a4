package postgres

import (
	"gorm.io/datatypes"
)

// CatalogItem is a collectible image.
type CatalogItem struct {
	ID      int    `gorm:"primaryKey;autoIncrement" json:"id"`
	URL     string `gorm:"size:512;not null" json:"url"`
	Theme   string `gorm:"size:64;not null;index" json:"theme"`
	Rarity  string `gorm:"size:16;not null" json:"rarity"`
	IsShiny bool   `gorm:"not null" json:"isShiny"`
}

/*
 * 'Envelope' is a purchasable pack drawing images from the catalog. An empty
 * theme pool draws from the whole catalog.
 */
type Envelope struct {
	ID                   string         `gorm:"primaryKey;size:64;not null" json:"id"`
	Name                 string         `gorm:"size:100;not null" json:"name"`
	BaseCost             int            `gorm:"not null" json:"baseCost"`
	CostIncreasePerLevel int            `gorm:"not null" json:"costIncreasePerLevel"`
	ImageCount           int            `gorm:"not null" json:"imageCount"`
	XP                   int            `gorm:"not null" json:"xp"`
	Color                string         `gorm:"size:32" json:"color"`
	Description          string         `gorm:"size:280" json:"description"`
	IsFeatured           bool           `gorm:"not null" json:"isFeatured"`
	ThemePool            datatypes.JSON `json:"catThemePool"`
}

func (e *Envelope) Themes() ([]string, error) {
	themes := []string{}
	err := decodeJSON(e.ThemePool, &themes)
	return themes, err
}

func (e *Envelope) SetThemes(themes []string) {
	if themes == nil {
		themes = []string{}
	}
	e.ThemePool = MustEncodeJSON(themes)
}

// Upgrade is a permanent perk bought once with coins.
type Upgrade struct {
	ID            string `gorm:"primaryKey;size:64;not null" json:"id"`
	Name          string `gorm:"size:100;not null" json:"name"`
	Description   string `gorm:"size:280" json:"description"`
	Cost          int    `gorm:"not null" json:"cost"`
	LevelRequired int    `gorm:"not null" json:"levelRequired"`
	Icon          string `gorm:"size:64" json:"icon"`
}
