package services

import (
	"context"
	"errors"
	"fmt"

	"nextflix/internal/models"
	"nextflix/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type UserService struct {
	users  repository.UserRepository
	redis  *redis.Client
	logger *logrus.Logger
}

func NewUserService(users repository.UserRepository, redisClient *redis.Client, logger *logrus.Logger) *UserService {
	return &UserService{users: users, redis: redisClient, logger: logger}
}

func (s *UserService) Register(ctx context.Context, username string) error {
	id, err := s.users.Create(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to register user: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"user_id":  id,
		"username": username,
	}).Info("User registered")
	return nil
}

// AddFriend writes a directed edge from username to friendName. The target's
// own friend list is untouched; friendship here is not symmetric.
func (s *UserService) AddFriend(ctx context.Context, username, friendName string) error {
	if username == friendName {
		return ErrSelfFriend
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to resolve user: %w", err)
	}

	friend, err := s.users.GetByUsername(ctx, friendName)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to resolve friend: %w", err)
	}

	if err := s.users.AddFriend(ctx, user.ID, friend.ID); err != nil {
		return fmt.Errorf("failed to add friend: %w", err)
	}

	// The new edge changes both of the initiator's result sets.
	invalidateUserCache(ctx, s.redis, s.logger, username)

	s.logger.WithFields(logrus.Fields{
		"user_id":   user.ID,
		"friend_id": friend.ID,
	}).Info("Friend added")
	return nil
}

func (s *UserService) Profile(ctx context.Context, username string) (*models.UserProfile, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}

	friendIDs, err := s.users.FriendIDs(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get friends: %w", err)
	}

	usernames, err := s.users.UsernamesByIDs(ctx, friendIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve friend usernames: %w", err)
	}

	friends := make([]string, 0, len(friendIDs))
	for _, id := range friendIDs {
		if name, ok := usernames[id]; ok {
			friends = append(friends, name)
		}
	}

	return &models.UserProfile{
		ID:         user.ID,
		Username:   user.Username,
		DateJoined: user.DateJoined,
		Friends:    friends,
	}, nil
}
