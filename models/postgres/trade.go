package postgres

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Trade struct {
	ID               string         `gorm:"primaryKey;size:36;not null"`
	FromUserID       string         `gorm:"size:128;not null;index"`
	ToUserID         string         `gorm:"size:128;not null;index"`
	OfferedItemIDs   datatypes.JSON `gorm:"not null"`
	RequestedItemIDs datatypes.JSON `gorm:"not null"`
	Status           string         `gorm:"size:16;not null;index"`
	Reason           string         `gorm:"size:128"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (t *Trade) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

func (t *Trade) Offered() ([]int, error) {
	ids := []int{}
	err := decodeJSON(t.OfferedItemIDs, &ids)
	return ids, err
}

func (t *Trade) Requested() ([]int, error) {
	ids := []int{}
	err := decodeJSON(t.RequestedItemIDs, &ids)
	return ids, err
}
