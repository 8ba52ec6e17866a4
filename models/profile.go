package models

import (
	"time"

	"pictocat/models/postgres"
)

type PlayerStats struct {
	Level         int `json:"level"`
	XP            int `json:"xp"`
	XPToNextLevel int `json:"xpToNextLevel"`
}

type FriendshipMission struct {
	MissionID   string `json:"missionId"`
	Progress    int    `json:"progress"`
	Goal        int    `json:"goal"`
	IsCompleted bool   `json:"isCompleted"`
}

// FriendshipView is a friendship seen from one of its members; UserID is the other member.
type FriendshipView struct {
	ID            string             `json:"_id"`
	UserID        string             `json:"userId"`
	Level         int                `json:"level"`
	XP            int                `json:"xp"`
	ActiveMission *FriendshipMission `json:"activeMission"`
}

type UserData struct {
	Coins                  int                     `json:"coins"`
	Phrases                []postgres.Phrase       `json:"phrases"`
	UnlockedImageIDs       []int                   `json:"unlockedImageIds"`
	PlayerStats            PlayerStats             `json:"playerStats"`
	PurchasedUpgrades      []string                `json:"purchasedUpgrades"`
	Bio                    string                  `json:"bio"`
	AvatarItemID           *int                    `json:"avatarItemId"`
	Friendships            []FriendshipView        `json:"friendships"`
	FriendRequestsSent     []string                `json:"friendRequestsSent"`
	FriendRequestsReceived []string                `json:"friendRequestsReceived"`
	TradeNotifications     int                     `json:"tradeNotifications"`
	DailyMissions          []postgres.DailyMission `json:"dailyMissions"`
	LastMissionReset       time.Time               `json:"lastMissionReset"`
}

type UserProfile struct {
	ID         string   `json:"id"`
	Username   string   `json:"username"`
	Email      string   `json:"email"`
	Role       string   `json:"role"`
	IsVerified bool     `json:"isVerified"`
	Data       UserData `json:"data"`
}

func StatsOf(p *postgres.Player) PlayerStats {
	return PlayerStats{Level: p.Level, XP: p.XP, XPToNextLevel: p.XPToNextLevel}
}

// ViewFriendship renders f from the point of view of member id.
func ViewFriendship(f *postgres.Friendship, id string) FriendshipView {
	view := FriendshipView{
		ID:     f.ID,
		UserID: f.Other(id),
		Level:  f.Level,
		XP:     f.XP,
	}
	if f.MissionID != nil {
		view.ActiveMission = &FriendshipMission{
			MissionID:   *f.MissionID,
			Progress:    f.MissionProgress,
			Goal:        f.MissionGoal,
			IsCompleted: f.MissionCompleted,
		}
	}
	return view
}
