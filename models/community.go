package models

import "pictocat/models/postgres"

type SearchableUser struct {
	Username   string `json:"username"`
	IsVerified bool   `json:"isVerified"`
}

type PublicProfilePhrase struct {
	PublicPhraseID string `json:"publicPhraseId"`
	Text           string `json:"text"`
	ImageURL       string `json:"imageUrl"`
	ImageTheme     string `json:"imageTheme"`
	LikeCount      int    `json:"likeCount"`
	IsLikedByMe    bool   `json:"isLikedByMe"`
	UserID         string `json:"userId"`
	Username       string `json:"username,omitempty"`
	IsUserVerified bool   `json:"isUserVerified,omitempty"`
}

type PublicProfileData struct {
	UserID         string                 `json:"userId"`
	Username       string                 `json:"username"`
	Role           string                 `json:"role"`
	IsVerified     bool                   `json:"isVerified"`
	Bio            string                 `json:"bio"`
	AvatarURL      string                 `json:"avatarUrl,omitempty"`
	Phrases        []PublicProfilePhrase  `json:"phrases"`
	UnlockedImages []postgres.CatalogItem `json:"unlockedImages"`
}

type LikeResult struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"likeCount"`
}

type Friend struct {
	UserID     string          `json:"userId"`
	Username   string          `json:"username"`
	IsVerified bool            `json:"isVerified"`
	Role       string          `json:"role"`
	Friendship *FriendshipView `json:"friendship"`
}

type FriendRequest struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

type FriendData struct {
	Friends  []Friend        `json:"friends"`
	Requests []FriendRequest `json:"requests"`
	Sent     []FriendRequest `json:"sent"`
}

type FriendshipReward struct {
	FriendshipID string `json:"friendshipId"`
	Level        int    `json:"level"`
	XP           int    `json:"xp"`
	RewardXP     int    `json:"rewardXp"`
}

// AdminUserView is the row shown in the admin user list.
type AdminUserView struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	IsVerified bool   `json:"isVerified"`
	Coins      int    `json:"coins"`
	Level      int    `json:"level"`
}

type AdminPublicPhrase struct {
	PublicPhraseID string `json:"publicPhraseId"`
	UserID         string `json:"userId"`
	Username       string `json:"username"`
	Text           string `json:"text"`
	ImageURL       string `json:"imageUrl"`
	ImageTheme     string `json:"imageTheme"`
	LikeCount      int    `json:"likeCount"`
}
