package services

import (
	"context"
	"fmt"

	"nextflix/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type AdminService struct {
	admin  repository.AdminRepository
	redis  *redis.Client
	logger *logrus.Logger
}

func NewAdminService(admin repository.AdminRepository, redisClient *redis.Client, logger *logrus.Logger) *AdminService {
	return &AdminService{admin: admin, redis: redisClient, logger: logger}
}

// Reset truncates every table and flushes the cache so cached
// recommendations cannot outlive the rows they were computed from.
func (s *AdminService) Reset(ctx context.Context) error {
	if err := s.admin.Reset(ctx); err != nil {
		return fmt.Errorf("failed to reset state: %w", err)
	}

	if s.redis != nil {
		if err := s.redis.FlushDB(ctx).Err(); err != nil {
			s.logger.WithError(err).Warn("Failed to flush cache after reset")
		}
	}

	s.logger.Warn("State reset")
	return nil
}
