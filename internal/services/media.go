package services

import (
	"context"
	"errors"
	"fmt"

	"nextflix/internal/models"
	"nextflix/internal/repository"

	"github.com/sirupsen/logrus"
)

type MediaService struct {
	media  repository.MediaRepository
	logger *logrus.Logger
}

func NewMediaService(media repository.MediaRepository, logger *logrus.Logger) *MediaService {
	return &MediaService{media: media, logger: logger}
}

func (s *MediaService) AddFilm(ctx context.Context, film *models.NewFilm) error {
	id, err := s.media.CreateFilm(ctx, film)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to add film: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"media_id": id,
		"title":    film.Title,
	}).Info("Film added to catalog")
	return nil
}

func (s *MediaService) AddShow(ctx context.Context, show *models.NewShow) error {
	id, err := s.media.CreateShow(ctx, show)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to add show: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"media_id": id,
		"title":    show.Title,
	}).Info("Show added to catalog")
	return nil
}

// Get resolves a title to its detail view. mediaType narrows the lookup
// when a movie and a show share the title; empty means either.
func (s *MediaService) Get(ctx context.Context, title, mediaType string) (*models.MediaInfo, error) {
	info, err := s.media.GetByTitle(ctx, title, mediaType)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrMediaNotFound
		}
		return nil, fmt.Errorf("failed to get media: %w", err)
	}
	return info, nil
}

func (s *MediaService) Search(ctx context.Context, name, mediaType string) ([]string, error) {
	titles, err := s.media.Search(ctx, name, mediaType)
	if err != nil {
		return nil, fmt.Errorf("failed to search media: %w", err)
	}
	return titles, nil
}
