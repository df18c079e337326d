package container

import (
	"context"
	"fmt"

	"nextflix/internal/config"
	"nextflix/internal/database"
	"nextflix/internal/logger"
	"nextflix/internal/repository"
	"nextflix/internal/services"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type Container struct {
	DB     *pgxpool.Pool
	Redis  *redis.Client
	Logger *logrus.Logger

	UserService           *services.UserService
	MediaService          *services.MediaService
	WatchlistService      *services.WatchlistService
	ReviewService         *services.ReviewService
	RecommendationService *services.RecommendationService
	AdminService          *services.AdminService
}

func New(ctx context.Context) (*Container, error) {
	log := logger.Get()

	db, err := database.NewPool(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	redisClient, err := newRedis(ctx)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	users := repository.NewUserRepository(db)
	media := repository.NewMediaRepository(db)
	watchlists := repository.NewWatchlistRepository(db)
	reviews := repository.NewReviewRepository(db)

	return &Container{
		DB:     db,
		Redis:  redisClient,
		Logger: log,

		UserService:           services.NewUserService(users, redisClient, log),
		MediaService:          services.NewMediaService(media, log),
		WatchlistService:      services.NewWatchlistService(users, watchlists, redisClient, log),
		ReviewService:         services.NewReviewService(users, media, reviews, log),
		RecommendationService: services.NewRecommendationService(users, watchlists, redisClient, log),
		AdminService:          services.NewAdminService(repository.NewAdminRepository(db), redisClient, log),
	}, nil
}

func (c *Container) Close() {
	if c.Redis != nil {
		c.Redis.Close()
		c.Logger.Info("Redis connection closed")
	}
	if c.DB != nil {
		c.DB.Close()
		c.Logger.Info("Database connection closed")
	}
}

func newRedis(ctx context.Context) (*redis.Client, error) {
	host, port, password := config.RedisConfig()

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: password,
		DB:       0,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Get().Info("Redis connection successful")
	return client, nil
}
