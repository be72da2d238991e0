package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/campusrent/backend_v1/internal/config"
	"github.com/campusrent/backend_v1/internal/database"
	"github.com/campusrent/backend_v1/internal/logger"
	"github.com/campusrent/backend_v1/internal/middleware"
	"github.com/campusrent/backend_v1/internal/routes"
	"github.com/campusrent/backend_v1/internal/session"
	"github.com/campusrent/backend_v1/internal/ws"
)

func main() {
	// Load .env (non-fatal if missing in production)
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Setup(cfg.LogLevel, cfg.LogPretty == "true")

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("database migration failed")
	}
	if err := database.SeedAdmin(db, cfg); err != nil {
		log.Fatal().Err(err).Msg("admin seed failed")
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	sessions := session.NewStore(rdb, cfg.TokenTTL)

	hub := ws.NewReservationHub()
	go hub.Run()

	r := gin.New()
	r.Use(logger.RequestLogger(), gin.Recovery(), middleware.CORS(cfg.CORSOrigin))
	routes.Register(r, db, sessions, hub, cfg)

	log.Info().Str("port", cfg.Port).Msg("listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
