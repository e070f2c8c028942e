package server

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/agora-forum/agora/internal/config"
	"github.com/agora-forum/agora/internal/database"
	"github.com/agora-forum/agora/internal/handlers"
	"github.com/agora-forum/agora/internal/middleware"
	"github.com/agora-forum/agora/pkg/auth"
)

func registerRoutes(r *gin.Engine, cfg *config.Config, store database.Store, jwtMgr *auth.JWTManager, rdb *redis.Client) {
	blacklist := auth.NewRedisBlacklist(rdb)

	authH := handlers.NewAuthHandler(store, jwtMgr, blacklist)
	roomH := handlers.NewRoomHandler(store)
	msgH := handlers.NewMessageHandler(store)
	userH := handlers.NewUserHandler(store)
	topicH := handlers.NewTopicHandler(store)

	authRequired := middleware.RequireAuth(jwtMgr, blacklist)

	// Auth endpoints, rate limited per client IP
	authGroup := r.Group("/auth", middleware.RateLimit(rdb, cfg.RateLimitMax, cfg.RateLimitWindow))
	{
		authGroup.POST("/register", authH.Register)
		authGroup.POST("/login", authH.Login)
		authGroup.POST("/logout", authRequired, authH.Logout)
	}

	api := r.Group("/api")
	{
		api.GET("/rooms", roomH.ListRooms)
		api.GET("/rooms/:id", roomH.GetRoom)
		api.GET("/activity", msgH.Activity)
		api.GET("/topics", topicH.ListTopics)
		api.GET("/users/:id", userH.Profile)

		authed := api.Group("", authRequired)
		{
			authed.POST("/rooms", roomH.CreateRoom)
			authed.GET("/rooms/:id/edit", roomH.EditRoom)
			authed.PUT("/rooms/:id", roomH.UpdateRoom)
			authed.DELETE("/rooms/:id", roomH.DeleteRoom)
			authed.POST("/rooms/:id/messages", msgH.PostMessage)
			authed.DELETE("/messages/:id", msgH.DeleteMessage)
			authed.GET("/profile", userH.EditProfile)
			authed.PUT("/profile", userH.UpdateProfile)
		}
	}
}
