package server

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/agora-forum/agora/internal/config"
	"github.com/agora-forum/agora/internal/database"
	"github.com/agora-forum/agora/pkg/auth"
)

type Server struct {
	Router *gin.Engine
	DB     *database.Database
	Redis  *redis.Client
	Config *config.Config
}

func New(cfg *config.Config) *Server {
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(lvl)
	}

	db := &database.Database{}
	if err := db.Connect(cfg.DatabaseURL); err != nil {
		logrus.Fatalf("postgres connect failed: %v", err)
	}

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logrus.Fatalf("invalid REDIS_URL: %v", err)
	}
	rdb := redis.NewClient(redisOpts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		logrus.Fatalf("redis connect failed: %v", err)
	}

	jwtMgr := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	router := gin.Default()
	registerRoutes(router, cfg, db, jwtMgr, rdb)

	return &Server{
		Router: router,
		DB:     db,
		Redis:  rdb,
		Config: cfg,
	}
}

func (s *Server) Run() {
	logrus.Infof("server starting on port %s", s.Config.Port)
	if err := s.Router.Run(":" + s.Config.Port); err != nil {
		logrus.Fatalf("server run error: %v", err)
	}
}
