package handlers

import (
	"nextflix/internal/container"
	"nextflix/internal/services"

	"github.com/sirupsen/logrus"
)

type Handler struct {
	users           *services.UserService
	media           *services.MediaService
	watchlists      *services.WatchlistService
	reviews         *services.ReviewService
	recommendations *services.RecommendationService
	admin           *services.AdminService
	logger          *logrus.Logger
}

func New(c *container.Container) *Handler {
	return &Handler{
		users:           c.UserService,
		media:           c.MediaService,
		watchlists:      c.WatchlistService,
		reviews:         c.ReviewService,
		recommendations: c.RecommendationService,
		admin:           c.AdminService,
		logger:          c.Logger,
	}
}
