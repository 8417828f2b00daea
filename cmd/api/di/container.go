package di

import (
	"context"
	"fmt"
	"html/template"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"study-portal/cmd/api/infrastructure"
	"study-portal/internal/adapter/db/postgres"
	ginhandler "study-portal/internal/adapter/gin/handler"
	"study-portal/internal/adapter/gin/middleware"
	"study-portal/internal/adapter/gin/view"
	"study-portal/internal/config"
	"study-portal/internal/usecase/portal"
	redisclient "study-portal/pkg/redis"
)

// Container holds all application dependencies
type Container struct {
	Config        *config.Config
	Logger        *zap.Logger
	DB            *gorm.DB
	RedisClient   *redisclient.Client
	PortalUC      portal.Usecase
	RateLimiter   *middleware.RateLimiter
	PortalHandler *ginhandler.PortalHandler
	HealthHandler *ginhandler.HealthHandler
	Templates     *template.Template
}

// NewContainer creates and initializes all application dependencies
func NewContainer(ctx context.Context, cfg *config.Config, l *zap.Logger) (*Container, error) {
	// Validate configuration before initializing any dependencies
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	tmpl, err := view.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	// Initialize database
	db, err := infrastructure.NewDatabase(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize Redis client, only present when rate limiting is on
	rdb, err := infrastructure.NewRedisClient(ctx, cfg, l)
	if err != nil {
		_ = infrastructure.CloseDatabase(db)
		return nil, fmt.Errorf("failed to initialize Redis: %w", err)
	}

	var limiterClient *redis.Client
	if rdb != nil {
		limiterClient = rdb.Client
	}

	// Initialize repository
	repo := postgres.NewPortalRepoPG(db, l)

	// Initialize use case
	portalUC := portal.New(repo, l)

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter(
		limiterClient,
		middleware.RateLimiterConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			BurstCapacity:     cfg.RateLimit.BurstCapacity,
			Enabled:           cfg.RateLimit.Enabled,
		},
		l,
	)

	return &Container{
		Config:        cfg,
		Logger:        l,
		DB:            db,
		RedisClient:   rdb,
		PortalUC:      portalUC,
		RateLimiter:   rateLimiter,
		PortalHandler: ginhandler.NewPortalHandler(portalUC, l),
		HealthHandler: ginhandler.NewHealthHandler(repo, cfg.Logger.ServiceName, l),
		Templates:     tmpl,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	var errs []error

	// Close Redis connection
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	// Close database connection
	if c.DB != nil {
		if err := infrastructure.CloseDatabase(c.DB); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("container close errors: %v", errs)
	}

	return nil
}
