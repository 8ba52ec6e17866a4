package utils

import (
	"errors"
	"fmt"

	"pictocat/models/postgres"
	"pictocat/services/apperr"

	"gorm.io/gorm"
)

// FindFriendship looks up the friendship of an unordered pair, NotFound when absent.
func FindFriendship(db *gorm.DB, a, b string) (*postgres.Friendship, error) {
	user1, user2 := postgres.OrderedPair(a, b)
	var friendship postgres.Friendship
	err := db.Where("user1_id = ? AND user2_id = ?", user1, user2).First(&friendship).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "friendship not found")
	}
	if err != nil {
		return nil, fmt.Errorf("loading friendship: %w", err)
	}
	return &friendship, nil
}

// Check if two players are friends
func AreFriends(db *gorm.DB, a, b string) (bool, error) {
	if a == b {
		return false, nil
	}
	user1, user2 := postgres.OrderedPair(a, b)
	var count int64
	err := db.Model(&postgres.Friendship{}).
		Where("user1_id = ? AND user2_id = ?", user1, user2).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("checking friendship: %w", err)
	}
	return count > 0, nil
}

// Check if a request from sender to recipient is pending
func RequestPending(db *gorm.DB, sender, recipient string) (bool, error) {
	var count int64
	err := db.Model(&postgres.FriendshipRequest{}).
		Where("sender_id = ? AND recipient_id = ?", sender, recipient).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("checking friend request: %w", err)
	}
	return count > 0, nil
}

// FriendshipsOf returns every friendship the player belongs to.
func FriendshipsOf(db *gorm.DB, playerID string) ([]postgres.Friendship, error) {
	var friendships []postgres.Friendship
	err := db.Where("user1_id = ? OR user2_id = ?", playerID, playerID).
		Order("created_at").
		Find(&friendships).Error
	if err != nil {
		return nil, fmt.Errorf("loading friendships: %w", err)
	}
	return friendships, nil
}
