package postgres

import "time"

// EconomySettings is a single row (ID 1) of tunables editable by admins.
type EconomySettings struct {
	ID                      uint      `gorm:"primaryKey" json:"-"`
	StartingCoins           int       `gorm:"not null" json:"startingCoins"`
	DailyMissionCount       int       `gorm:"not null" json:"dailyMissionCount"`
	FriendBonusBase         float64   `gorm:"not null" json:"friendBonusBase"`
	FriendBonusStep         float64   `gorm:"not null" json:"friendBonusStep"`
	FriendBonusCap          float64   `gorm:"not null" json:"friendBonusCap"`
	TradeRequiresFriendship bool      `gorm:"not null" json:"tradeRequiresFriendship"`
	UpdatedAt               time.Time `json:"updatedAt"`
}

func (EconomySettings) TableName() string {
	return "economy_settings"
}

// All returns every model, in migration order.
func All() []interface{} {
	return []interface{}{
		&Player{},
		&UnlockedItem{},
		&CatalogItem{},
		&Envelope{},
		&Upgrade{},
		&Friendship{},
		&FriendshipRequest{},
		&Trade{},
		&PublicPhrase{},
		&PhraseLike{},
		&EconomySettings{},
	}
}
