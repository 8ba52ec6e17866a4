package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pictocat/config"
	"pictocat/middleware"
	"pictocat/models"
	"pictocat/models/postgres"
	"pictocat/routes"
	"pictocat/services/admin"
	"pictocat/services/assistant"
	"pictocat/services/community"
	"pictocat/services/economy"
	"pictocat/services/friendship"
	"pictocat/services/game"
	"pictocat/services/missions"
	"pictocat/services/profile"
	"pictocat/services/settings"
	"pictocat/services/trading"
	"pictocat/testutil"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const secret = "controller-secret"

type api struct {
	router *gin.Engine
	db     *gorm.DB
	t      *testing.T
}

func newAPI(t *testing.T) *api {
	gin.SetMode(gin.TestMode)
	db := testutil.NewDB(t)
	log := zap.NewNop()

	verifier, err := middleware.NewVerifier(config.Settings{JWTSecret: secret})
	require.NoError(t, err)

	settingsService := settings.NewService(db, nil, log)
	missionService := missions.NewService(db, settingsService, log)
	profiles := profile.NewService(db, settingsService, missionService, log, "admin")
	friendshipService := friendship.NewService(db, settingsService, nil, log)
	tradingService := trading.NewService(db, settingsService, friendshipService, nil, log)

	router := gin.New()
	routes.SetupRoutes(router, verifier, routes.Services{
		Profiles:   profiles,
		Economy:    economy.NewService(db, nil, missionService, log),
		Missions:   missionService,
		Friendship: friendshipService,
		Trading:    tradingService,
		Community:  community.NewService(db, nil, missionService, friendshipService, log),
		Game:       game.NewService(db, friendshipService, missionService, log),
		Assistant:  assistant.NewService(nil, missionService, log),
		Admin:      admin.NewService(db, nil, settingsService, tradingService, nil, log),
	}, log)
	return &api{router: router, db: db, t: t}
}

func token(t *testing.T, subject string) string {
	claims := middleware.Claims{
		Email: subject + "@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

// do sends body as JSON on behalf of subject (anonymous when empty) and decodes the answer into out.
func (a *api) do(method, path, subject string, body interface{}, out interface{}) int {
	a.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(a.t, err)
	req.Header.Set("Content-Type", "application/json")
	if subject != "" {
		req.Header.Set("Authorization", "Bearer "+token(a.t, subject))
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	if out != nil {
		require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
	}
	return w.Code
}

func TestPing(t *testing.T) {
	a := newAPI(t)

	var response struct {
		Message string `json:"message"`
	}
	assert.Equal(t, http.StatusOK, a.do(http.MethodGet, "/ping", "", nil, &response))
	assert.Equal(t, "pong, miau", response.Message)
}

func TestAuthentication(t *testing.T) {
	a := newAPI(t)

	var errBody map[string]string
	assert.Equal(t, http.StatusUnauthorized, a.do(http.MethodGet, "/api/profile", "", nil, &errBody))
	assert.Equal(t, "Unauthenticated", errBody["error"])

	var shop models.ShopData
	assert.Equal(t, http.StatusOK, a.do(http.MethodGet, "/api/shop?resource=data", "", nil, &shop))
	assert.Len(t, shop.Envelopes, 3)
	assert.Equal(t, http.StatusBadRequest, a.do(http.MethodGet, "/api/shop?resource=other", "", nil, nil))

	assert.Equal(t, http.StatusOK, a.do(http.MethodGet, "/api/community?resource=catalog", "", nil, nil))
	assert.Equal(t, http.StatusUnauthorized, a.do(http.MethodGet, "/api/community?resource=feed", "", nil, nil))
}

func TestProfileCreatedOnFirstVisit(t *testing.T) {
	a := newAPI(t)

	var p models.UserProfile
	require.Equal(t, http.StatusOK, a.do(http.MethodGet, "/api/profile", "auth0|new", nil, &p))
	assert.Equal(t, "auth0|new", p.ID)
	assert.Equal(t, "auth0|new@example.com", p.Email)
	assert.NotEmpty(t, p.Username)

	var again models.UserProfile
	require.Equal(t, http.StatusOK, a.do(http.MethodGet, "/api/profile", "auth0|new", nil, &again))
	assert.Equal(t, p.Username, again.Username)
}

func TestPurchaseEnvelope(t *testing.T) {
	a := newAPI(t)
	testutil.Player(t, a.db, "alice", nil)
	testutil.Player(t, a.db, "broke", func(p *postgres.Player) { p.Coins = 0 })
	testutil.CatalogItems(t, a.db, "gatos", 10)

	var result models.PurchaseResult
	status := a.do(http.MethodPost, "/api/shop", "alice", gin.H{"action": "purchaseEnvelope", "envelopeId": "bronze"}, &result)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 400, result.NewCoins)
	assert.Len(t, result.NewImages, 3)

	var errBody map[string]string
	status = a.do(http.MethodPost, "/api/shop", "broke", gin.H{"action": "purchaseEnvelope", "envelopeId": "bronze"}, &errBody)
	assert.Equal(t, http.StatusPaymentRequired, status)
	assert.NotEmpty(t, errBody["error"])

	assert.Equal(t, http.StatusBadRequest,
		a.do(http.MethodPost, "/api/shop", "alice", gin.H{"action": "purchaseEnvelope", "envelopeId": "platinum"}, nil))
	assert.Equal(t, http.StatusBadRequest,
		a.do(http.MethodPost, "/api/shop", "alice", gin.H{"action": "steal"}, nil))
}

func TestTradeRoundTrip(t *testing.T) {
	a := newAPI(t)
	testutil.Player(t, a.db, "alice", nil)
	testutil.Player(t, a.db, "bob", nil)
	testutil.Friends(t, a.db, "alice", "bob", 1)
	items := testutil.CatalogItems(t, a.db, "gatos", 2)
	testutil.Unlock(t, a.db, "alice", items[0].ID)
	testutil.Unlock(t, a.db, "bob", items[1].ID)

	var created struct {
		Success bool   `json:"success"`
		TradeID string `json:"tradeId"`
	}
	status := a.do(http.MethodPost, "/api/trades", "alice", gin.H{
		"toUserId":          "bob",
		"offeredImageIds":   []int{items[0].ID},
		"requestedImageIds": []int{items[1].ID},
	}, &created)
	require.Equal(t, http.StatusOK, status)
	require.True(t, created.Success)
	require.NotEmpty(t, created.TradeID)

	var pending []models.TradeOffer
	require.Equal(t, http.StatusOK, a.do(http.MethodGet, "/api/trades", "bob", nil, &pending))
	require.Len(t, pending, 1)
	assert.Equal(t, created.TradeID, pending[0].ID)

	// Only the recipient may answer.
	assert.Equal(t, http.StatusNotFound,
		a.do(http.MethodPut, "/api/trades", "alice", gin.H{"tradeId": created.TradeID, "action": "accept"}, nil))

	var answered map[string]interface{}
	require.Equal(t, http.StatusOK,
		a.do(http.MethodPut, "/api/trades", "bob", gin.H{"tradeId": created.TradeID, "action": "accept"}, &answered))
	assert.Equal(t, "accepted", answered["status"])

	var owner postgres.UnlockedItem
	require.NoError(t, a.db.Where("item_id = ?", items[0].ID).First(&owner).Error)
	assert.Equal(t, "bob", owner.PlayerID)
}

func TestGameAndMissions(t *testing.T) {
	a := newAPI(t)
	testutil.Player(t, a.db, "alice", nil)

	var result models.GameResultsResponse
	status := a.do(http.MethodPost, "/api/game", "alice", gin.H{
		"action":  "saveResults",
		"results": gin.H{"coinsEarned": 30, "xpEarned": 5},
	}, &result)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, result.Success)
	assert.Equal(t, 530, result.NewCoins)

	assert.Equal(t, http.StatusBadRequest, a.do(http.MethodPost, "/api/game", "alice", gin.H{"action": "saveResults"}, nil))
	assert.Equal(t, http.StatusBadRequest, a.do(http.MethodPost, "/api/game", "alice", gin.H{
		"action":  "saveResults",
		"results": gin.H{"coinsEarned": -1, "xpEarned": 0},
	}, nil))

	var reply struct {
		Reply string `json:"reply"`
	}
	status = a.do(http.MethodPost, "/api/missions", "alice", gin.H{
		"action":  "chat",
		"history": []models.ChatMessage{{Role: "user", Text: "hola"}},
	}, &reply)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, assistant.Fallback, reply.Reply)

	assert.Equal(t, http.StatusBadRequest, a.do(http.MethodPost, "/api/missions", "alice", gin.H{"action": "dance"}, nil))
}

func TestFriendRequestFlow(t *testing.T) {
	a := newAPI(t)
	testutil.Player(t, a.db, "alice", nil)
	testutil.Player(t, a.db, "bob", nil)

	var sent map[string]interface{}
	require.Equal(t, http.StatusOK, a.do(http.MethodPost, "/api/friends", "alice", gin.H{"action": "add", "targetUserId": "bob"}, &sent))
	assert.Equal(t, false, sent["accepted"])

	require.Equal(t, http.StatusOK, a.do(http.MethodPut, "/api/friends", "bob", gin.H{"targetUserId": "alice", "action": "accept"}, nil))

	var data models.FriendData
	require.Equal(t, http.StatusOK, a.do(http.MethodGet, "/api/friends", "alice", nil, &data))
	require.Len(t, data.Friends, 1)
	assert.Equal(t, "bob", data.Friends[0].UserID)

	assert.Equal(t, http.StatusBadRequest, a.do(http.MethodPut, "/api/friends", "bob", gin.H{"targetUserId": "alice", "action": "maybe"}, nil))
	require.Equal(t, http.StatusOK, a.do(http.MethodDelete, "/api/friends", "bob", gin.H{"targetUserId": "alice"}, nil))
}

func TestAdminRoutes(t *testing.T) {
	a := newAPI(t)
	testutil.Player(t, a.db, "alice", nil)
	testutil.Player(t, a.db, "root", func(p *postgres.Player) { p.Role = "admin" })

	var errBody map[string]string
	assert.Equal(t, http.StatusForbidden, a.do(http.MethodGet, "/api/admin?resource=users", "alice", nil, &errBody))
	assert.Equal(t, "Forbidden: Admins only.", errBody["error"])

	var users []models.AdminUserView
	require.Equal(t, http.StatusOK, a.do(http.MethodGet, "/api/admin?resource=users", "root", nil, &users))
	assert.Len(t, users, 2)

	var granted map[string]interface{}
	require.Equal(t, http.StatusOK,
		a.do(http.MethodPost, "/api/admin", "root", gin.H{"action": "grantCoins", "userId": "alice", "amount": 250}, &granted))
	assert.Equal(t, float64(750), granted["coins"])

	assert.Equal(t, http.StatusBadRequest, a.do(http.MethodGet, "/api/admin?resource=secrets", "root", nil, nil))
	assert.Equal(t, http.StatusBadRequest, a.do(http.MethodPost, "/api/admin", "root", gin.H{"action": "saveEnvelope"}, nil))
	assert.Equal(t, http.StatusNotFound, a.do(http.MethodDelete, "/api/admin/upgrades/nope", "root", nil, nil))
	assert.Equal(t, http.StatusBadRequest, a.do(http.MethodDelete, "/api/admin/catalog/abc", "root", nil, nil))
}
