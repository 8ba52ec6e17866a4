package postgres

import (
	"time"

	"gorm.io/datatypes"
)

/*
 * 'Player' is the persisted profile of an authenticated identity. The primary key is the
 * identity subject. Unlocked items, friendships and friend requests live in their own tables.
 */
type Player struct {
	ID                 string `gorm:"primaryKey;size:128;not null"`
	Username           string `gorm:"size:20;not null;uniqueIndex"`
	Email              string `gorm:"size:255"`
	Role               string `gorm:"size:10;not null"`
	IsVerified         bool   `gorm:"not null"`
	Coins              int    `gorm:"not null"`
	Level              int    `gorm:"not null"`
	XP                 int    `gorm:"not null"`
	XPToNextLevel      int    `gorm:"not null"`
	Bio                string `gorm:"size:280"`
	AvatarItemID       *int
	TradeNotifications int `gorm:"not null"`

	// JSON documents embedded in the profile
	Phrases           datatypes.JSON
	PurchasedUpgrades datatypes.JSON
	DailyMissions     datatypes.JSON
	LastMissionReset  time.Time

	// Friend ids written by older clients; only read by the migration
	LegacyFriends datatypes.JSON

	SchemaVersion int `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Phrase struct {
	ID              string `json:"id"`
	Text            string `json:"text"`
	SelectedImageID *int   `json:"selectedImageId"`
	IsCustom        bool   `json:"isCustom"`
	IsPublic        bool   `json:"isPublic"`
}

type DailyMission struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Goal        int    `json:"goal"`
	RewardCoins int    `json:"rewardCoins"`
	RewardXP    int    `json:"rewardXp"`
	Description string `json:"description"`
	Progress    int    `json:"progress"`
	IsClaimed   bool   `json:"isClaimed"`
}

func (p *Player) GetPhrases() ([]Phrase, error) {
	phrases := []Phrase{}
	err := decodeJSON(p.Phrases, &phrases)
	return phrases, err
}

func (p *Player) SetPhrases(phrases []Phrase) {
	if phrases == nil {
		phrases = []Phrase{}
	}
	p.Phrases = MustEncodeJSON(phrases)
}

func (p *Player) GetPurchasedUpgrades() ([]string, error) {
	upgrades := []string{}
	err := decodeJSON(p.PurchasedUpgrades, &upgrades)
	return upgrades, err
}

func (p *Player) SetPurchasedUpgrades(upgrades []string) {
	if upgrades == nil {
		upgrades = []string{}
	}
	p.PurchasedUpgrades = MustEncodeJSON(upgrades)
}

func (p *Player) GetDailyMissions() ([]DailyMission, error) {
	missions := []DailyMission{}
	err := decodeJSON(p.DailyMissions, &missions)
	return missions, err
}

func (p *Player) SetDailyMissions(missions []DailyMission) {
	if missions == nil {
		missions = []DailyMission{}
	}
	p.DailyMissions = MustEncodeJSON(missions)
}

func (p *Player) GetLegacyFriends() ([]string, error) {
	friends := []string{}
	err := decodeJSON(p.LegacyFriends, &friends)
	return friends, err
}

func (p *Player) SetLegacyFriends(friends []string) {
	if friends == nil {
		friends = []string{}
	}
	p.LegacyFriends = MustEncodeJSON(friends)
}

// UnlockedItem is one element of a player's unlocked set.
type UnlockedItem struct {
	PlayerID  string `gorm:"primaryKey;size:128;not null"`
	ItemID    int    `gorm:"primaryKey;not null;index"`
	CreatedAt time.Time
}
