package repository

import (
	"context"
	"fmt"

	"nextflix/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository interface {
	Create(ctx context.Context, username string) (int64, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UsernamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error)
	AddFriend(ctx context.Context, userID, friendID int64) error
	FriendIDs(ctx context.Context, userID int64) ([]int64, error)
	FriendIDsOf(ctx context.Context, userIDs []int64) (map[int64][]int64, error)
}

type userRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, username string) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		"INSERT INTO users (username) VALUES ($1) RETURNING id",
		username,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create user: %w", translateError(err))
	}
	return id, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.db.QueryRow(ctx,
		"SELECT id, username, date_joined FROM users WHERE username = $1",
		username,
	).Scan(&user.ID, &user.Username, &user.DateJoined)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", translateError(err))
	}
	return &user, nil
}

func (r *userRepository) UsernamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error) {
	usernames := make(map[int64]string, len(ids))
	if len(ids) == 0 {
		return usernames, nil
	}

	rows, err := r.db.Query(ctx,
		"SELECT id, username FROM users WHERE id = ANY($1)",
		ids,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve usernames: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		var username string
		if err := rows.Scan(&id, &username); err != nil {
			return nil, fmt.Errorf("failed to scan username row: %w", err)
		}
		usernames[id] = username
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read username rows: %w", err)
	}
	return usernames, nil
}

// AddFriend writes one directed edge for the initiator. Re-adding an
// existing friend is a no-op.
func (r *userRepository) AddFriend(ctx context.Context, userID, friendID int64) error {
	_, err := r.db.Exec(ctx,
		"INSERT INTO friends (user_id, friend_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
		userID, friendID,
	)
	if err != nil {
		return fmt.Errorf("failed to add friend: %w", translateError(err))
	}
	return nil
}

func (r *userRepository) FriendIDs(ctx context.Context, userID int64) ([]int64, error) {
	rows, err := r.db.Query(ctx,
		"SELECT friend_id FROM friends WHERE user_id = $1 ORDER BY friend_id",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get friend ids: %w", err)
	}
	defer rows.Close()

	var friendIDs []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan friend id: %w", err)
		}
		friendIDs = append(friendIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read friend rows: %w", err)
	}
	return friendIDs, nil
}

// FriendIDsOf fetches the friend lists of all given users in one query.
// Users without friends are absent from the returned map.
func (r *userRepository) FriendIDsOf(ctx context.Context, userIDs []int64) (map[int64][]int64, error) {
	result := make(map[int64][]int64, len(userIDs))
	if len(userIDs) == 0 {
		return result, nil
	}

	rows, err := r.db.Query(ctx,
		"SELECT user_id, friend_id FROM friends WHERE user_id = ANY($1) ORDER BY user_id, friend_id",
		userIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get friend lists: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var userID, friendID int64
		if err := rows.Scan(&userID, &friendID); err != nil {
			return nil, fmt.Errorf("failed to scan friend edge: %w", err)
		}
		result[userID] = append(result[userID], friendID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read friend edges: %w", err)
	}
	return result, nil
}
