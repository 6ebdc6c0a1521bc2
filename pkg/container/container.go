package container

import (
	"context"
	"fmt"
	"time"

	"blog-backend/internal/config"
	infraCache "blog-backend/internal/infrastructure/cache"
	"blog-backend/internal/infrastructure/database"
	"blog-backend/pkg/cache"
	"blog-backend/pkg/jwt"
	"blog-backend/pkg/logger"

	"blog-backend/internal/domains/blog"
	blogHandler "blog-backend/internal/domains/blog/handler"
	blogRepo "blog-backend/internal/domains/blog/repository"
	blogService "blog-backend/internal/domains/blog/service"
	"blog-backend/internal/domains/user"
	userHandler "blog-backend/internal/domains/user/handler"
	userRepo "blog-backend/internal/domains/user/repository"
	userService "blog-backend/internal/domains/user/service"
)

// Container is the root of the dependency graph. Initialization order
// matters: config, infrastructure, repositories, services, handlers.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	UserRepo user.Repository
	BlogRepo blog.Repository

	UserService user.Service
	BlogService blog.Service

	UserHandler *userHandler.UserHandler
	BlogHandler *blogHandler.BlogHandler

	redis *infraCache.RedisCache
}

// NewContainer builds the whole graph. Any failure here means the
// application must not start.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	c.Config = cfg
	logger.Info("config loaded", map[string]interface{}{
		"env":  cfg.App.Environment,
		"port": cfg.App.Port,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	c.DB = db
	logger.Info("postgres connected", map[string]interface{}{
		"host": cfg.Database.Host,
		"db":   cfg.Database.Database,
	})

	redis := infraCache.NewRedisCache(cfg.Redis)
	if err := redis.Connect(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	c.redis = redis
	c.Cache = redis
	logger.Info("redis connected", map[string]interface{}{
		"host": cfg.Redis.Host,
	})

	c.JWTManager = jwt.NewManagerWithTTL(cfg.JWT.Secret, cfg.JWT.TokenTTL)

	c.UserRepo = userRepo.NewPostgresRepository(db.Pool, c.Cache)
	c.BlogRepo = blogRepo.NewPostgresRepository(db.Pool, c.Cache)

	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager)
	c.BlogService = blogService.NewBlogService(c.BlogRepo, c.UserRepo)

	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.BlogHandler = blogHandler.NewBlogHandler(c.BlogService)

	return c, nil
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			logger.Error("close redis", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
