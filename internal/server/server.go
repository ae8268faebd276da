package server

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/cookshare/backend/config"
	"github.com/cookshare/backend/internal/api"
	"github.com/cookshare/backend/internal/middleware"
	"github.com/cookshare/backend/internal/ranking"
	"github.com/cookshare/backend/internal/router"
	"github.com/cookshare/backend/internal/service"
	"github.com/cookshare/backend/internal/store"
)

// Server wires the stores, services, and handlers and runs the HTTP server.
type Server struct {
	http  *http.Server
	db    *gorm.DB
	redis *redis.Client
}

// New creates a new server instance.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	catalogStore := store.NewCatalogStore(db)
	engagementStore := store.NewEngagementStore(db)

	policy := ranking.MatchPolicy{
		RequirementRatio: cfg.MatchRequirementRatio,
		MinMatchPercent:  cfg.MatchMinPercent,
		Gated:            cfg.MatchGateEnabled,
	}
	feedService := service.NewFeedService(catalogStore, engagementStore, service.FeedOptions{
		MatchPolicy: &policy,
		FeedCap:     cfg.FeedCap,
	})
	catalogService := service.NewCatalogService(catalogStore, nil)
	engagementService := service.NewEngagementService(catalogStore, engagementStore)

	authCfg := middleware.AuthConfig{Secret: cfg.JWTSecret}
	if redisClient != nil {
		authCfg.Deny = service.NewTokenDenyList(redisClient)
	}

	s := &Server{db: db, redis: redisClient}

	engine := router.SetupRouter(
		api.NewFeedHandler(feedService, engagementService, authCfg),
		api.NewRecipeHandler(catalogService),
		api.NewEngagementHandler(engagementService, authCfg),
		cfg.AllowedOrigins,
		s.health,
	)

	s.http = &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: engine,
	}
	return s
}

// Start starts the server and blocks until it stops.
func (s *Server) Start() error {
	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func (s *Server) health(c *gin.Context) {
	sqlDB, err := s.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "database": err.Error()})
		return
	}

	if s.redis != nil {
		if err := s.redis.Ping(c.Request.Context()).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "redis": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
