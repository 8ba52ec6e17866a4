package models

import (
	"time"

	"pictocat/models/postgres"
)

type ShopData struct {
	Envelopes []postgres.Envelope `json:"envelopes"`
	Upgrades  []postgres.Upgrade  `json:"upgrades"`
}

type PurchaseResult struct {
	NewCoins    int                    `json:"newCoins"`
	NewImages   []postgres.CatalogItem `json:"newImages"`
	Cost        int                    `json:"cost"`
	PlayerStats PlayerStats            `json:"playerStats"`
}

type UpgradePurchaseResult struct {
	NewCoins          int      `json:"newCoins"`
	PurchasedUpgrades []string `json:"purchasedUpgrades"`
}

type GameResultsResponse struct {
	Success     bool        `json:"success"`
	NewCoins    int         `json:"newCoins"`
	PlayerStats PlayerStats `json:"playerStats"`
}

type TradeOffer struct {
	ID               string                 `json:"_id"`
	FromUserID       string                 `json:"fromUserId"`
	FromUsername     string                 `json:"fromUsername"`
	FromUserVerified bool                   `json:"fromUserVerified"`
	FromAvatarURL    string                 `json:"fromAvatarUrl,omitempty"`
	ToUserID         string                 `json:"toUserId"`
	ToUsername       string                 `json:"toUsername"`
	ToUserVerified   bool                   `json:"toUserVerified"`
	ToAvatarURL      string                 `json:"toAvatarUrl,omitempty"`
	OfferedImages    []postgres.CatalogItem `json:"offeredImages"`
	RequestedImages  []postgres.CatalogItem `json:"requestedImages"`
	Status           string                 `json:"status"`
	Reason           string                 `json:"reason,omitempty"`
	CreatedAt        time.Time              `json:"createdAt"`
}

type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}
