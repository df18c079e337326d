package services

import "errors"

// Service-level error taxonomy. Handlers map these onto HTTP status codes;
// anything else coming out of a service is a storage failure and surfaces
// as a 500.
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrMediaNotFound  = errors.New("media not found")
	ErrAlreadyExists  = errors.New("already exists")
	ErrSelfFriend     = errors.New("users cannot friend themselves")
	ErrNotInWatchlist = errors.New("media not in watchlist")
	// ErrNoSuggestions covers both "no friends" and "nobody clears the
	// mutual-friend threshold". Distinct from ErrUserNotFound on purpose.
	ErrNoSuggestions = errors.New("no suggested friends found")
)
