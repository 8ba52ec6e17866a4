package postgres

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/*
 * 'Friendship' represents a friendship between two players. The pair is stored
 * ordered (User1ID < User2ID) so the unique index covers the unordered pair.
 * The active friendship mission is inlined, at most one per friendship.
 */
type Friendship struct {
	ID      string `gorm:"primaryKey;size:36;not null"`
	User1ID string `gorm:"size:128;not null;uniqueIndex:idx_friendships_pair"`
	User2ID string `gorm:"size:128;not null;uniqueIndex:idx_friendships_pair;index"`
	Level   int    `gorm:"not null"`
	XP      int    `gorm:"not null"`

	MissionID        *string `gorm:"size:64"`
	MissionType      string  `gorm:"size:32"`
	MissionProgress  int
	MissionGoal      int
	MissionRewardXP  int
	MissionCompleted bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderedPair returns both ids sorted, the way they are stored.
func OrderedPair(a, b string) (string, string) {
	if a < b {
		return a, b
	}
	return b, a
}

// Other returns the member that is not id.
func (f *Friendship) Other(id string) string {
	if f.User1ID == id {
		return f.User2ID
	}
	return f.User1ID
}

func (f *Friendship) Has(id string) bool {
	return f.User1ID == id || f.User2ID == id
}

func (f *Friendship) HasMission() bool {
	return f.MissionID != nil
}

func (f *Friendship) ClearMission() {
	f.MissionID = nil
	f.MissionType = ""
	f.MissionProgress = 0
	f.MissionGoal = 0
	f.MissionRewardXP = 0
	f.MissionCompleted = false
}

func (f *Friendship) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	f.User1ID, f.User2ID = OrderedPair(f.User1ID, f.User2ID)
	if f.Level == 0 {
		f.Level = 1
	}
	return nil
}

// GORM hook to ensure that both members are different
func (f *Friendship) BeforeSave(tx *gorm.DB) error {
	if f.User1ID == f.User2ID {
		return errors.New("cannot create a friendship between a player and themselves")
	}
	return nil
}

// FriendshipRequest is a pending request from SenderID to RecipientID.
type FriendshipRequest struct {
	SenderID    string `gorm:"primaryKey;size:128;not null"`
	RecipientID string `gorm:"primaryKey;size:128;not null;index"`
	CreatedAt   time.Time
}
