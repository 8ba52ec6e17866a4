package routes

import (
	"pictocat/controllers"
	"pictocat/middleware"
	"pictocat/services/admin"
	"pictocat/services/assistant"
	"pictocat/services/community"
	"pictocat/services/economy"
	"pictocat/services/friendship"
	"pictocat/services/game"
	"pictocat/services/missions"
	"pictocat/services/profile"
	"pictocat/services/trading"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Services groups everything the HTTP layer calls into.
type Services struct {
	Profiles   *profile.Service
	Economy    *economy.Service
	Missions   *missions.Service
	Friendship *friendship.Service
	Trading    *trading.Service
	Community  *community.Service
	Game       *game.Service
	Assistant  *assistant.Service
	Admin      *admin.Service
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, verifier *middleware.Verifier, svc Services, log *zap.Logger) {
	profileController := &controllers.ProfileController{Profiles: svc.Profiles, Log: log}
	shopController := &controllers.ShopController{Economy: svc.Economy, Profiles: svc.Profiles, Log: log}
	communityController := &controllers.CommunityController{Community: svc.Community, Log: log}
	friendsController := &controllers.FriendsController{Friendship: svc.Friendship, Community: svc.Community, Log: log}
	tradesController := &controllers.TradesController{Trading: svc.Trading, Log: log}
	missionsController := &controllers.MissionsController{Missions: svc.Missions, Profiles: svc.Profiles, Assistant: svc.Assistant, Log: log}
	gameController := &controllers.GameController{Game: svc.Game, Log: log}
	adminController := &controllers.AdminController{Admin: svc.Admin, Log: log}

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/ping", controllers.Ping)

	api := router.Group("/api")

	// Public, the community catalog is readable without a token
	api.GET("/shop", shopController.GetShop)
	api.GET("/community", middleware.OptionalAuth(verifier), communityController.GetCommunity)

	authenticated := api.Group("/")
	authenticated.Use(middleware.AuthRequired(verifier))
	{
		authenticated.GET("/profile", profileController.GetProfile)
		authenticated.POST("/profile", profileController.SaveData)
		authenticated.PUT("/profile", profileController.UpdateProfile)
		authenticated.POST("/profile/avatar", profileController.SetAvatar)

		authenticated.POST("/shop", shopController.PostShop)

		authenticated.GET("/friends", friendsController.ListFriends)
		authenticated.POST("/friends", friendsController.PostFriends)
		authenticated.PUT("/friends", friendsController.RespondRequest)
		authenticated.DELETE("/friends", friendsController.RemoveFriend)
		authenticated.GET("/friends/missions", friendsController.ListMissions)
		authenticated.POST("/friends/missions", friendsController.PostMission)

		authenticated.GET("/trades", tradesController.ListTrades)
		authenticated.POST("/trades", tradesController.CreateTrade)
		authenticated.PUT("/trades", tradesController.RespondTrade)
		authenticated.DELETE("/trades", tradesController.CancelTrade)

		authenticated.POST("/missions", missionsController.PostMissions)
		authenticated.POST("/game", gameController.PostGame)
	}

	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.AuthRequired(verifier), middleware.AdminRequired(svc.Profiles, log))
	{
		adminGroup.GET("", adminController.GetAdmin)
		adminGroup.POST("", adminController.PostAdmin)
		adminGroup.POST("/catalog/upload", adminController.UploadCatalogItem)
		adminGroup.PUT("/catalog/:id", adminController.UpdateCatalogItem)
		adminGroup.DELETE("/catalog/:id", adminController.DeleteCatalogItem)
		adminGroup.DELETE("/envelopes/:id", adminController.DeleteEnvelope)
		adminGroup.DELETE("/upgrades/:id", adminController.DeleteUpgrade)
	}
}
