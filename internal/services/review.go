package services

import (
	"context"
	"errors"
	"fmt"

	"nextflix/internal/models"
	"nextflix/internal/repository"

	"github.com/sirupsen/logrus"
)

type ReviewService struct {
	users   repository.UserRepository
	media   repository.MediaRepository
	reviews repository.ReviewRepository
	logger  *logrus.Logger
}

func NewReviewService(users repository.UserRepository, media repository.MediaRepository, reviews repository.ReviewRepository, logger *logrus.Logger) *ReviewService {
	return &ReviewService{users: users, media: media, reviews: reviews, logger: logger}
}

// Post upserts a review; reviewing the same title twice replaces the
// earlier rating and body.
func (s *ReviewService) Post(ctx context.Context, title string, review *models.NewReview) error {
	user, err := s.users.GetByUsername(ctx, review.Username)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to resolve reviewer: %w", err)
	}

	mediaID, err := s.media.IDByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return ErrMediaNotFound
		}
		return fmt.Errorf("failed to resolve media: %w", err)
	}

	if err := s.reviews.Upsert(ctx, user.ID, mediaID, review.Rating, review.Review); err != nil {
		return fmt.Errorf("failed to post review: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"user_id":  user.ID,
		"media_id": mediaID,
		"rating":   review.Rating,
	}).Info("Review posted")
	return nil
}

func (s *ReviewService) List(ctx context.Context, title string) ([]models.Review, error) {
	mediaID, err := s.media.IDByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrMediaNotFound
		}
		return nil, fmt.Errorf("failed to resolve media: %w", err)
	}

	reviews, err := s.reviews.ListByMedia(ctx, mediaID)
	if err != nil {
		return nil, fmt.Errorf("failed to get reviews: %w", err)
	}
	return reviews, nil
}
