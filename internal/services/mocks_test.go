package services

import (
	"context"

	"nextflix/internal/models"
	"nextflix/internal/repository"
)

// mockUserRepo implements repository.UserRepository over in-memory maps.
type mockUserRepo struct {
	users     map[string]*models.User
	friends   map[int64][]int64
	usernames map[int64]string

	friendIDsErr   error
	friendIDsOfErr error
	addedEdges     [][2]int64
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		users:     make(map[string]*models.User),
		friends:   make(map[int64][]int64),
		usernames: make(map[int64]string),
	}
}

func (m *mockUserRepo) addUser(id int64, username string, friendIDs ...int64) {
	m.users[username] = &models.User{ID: id, Username: username}
	m.usernames[id] = username
	if len(friendIDs) > 0 {
		m.friends[id] = friendIDs
	}
}

func (m *mockUserRepo) Create(ctx context.Context, username string) (int64, error) {
	if _, ok := m.users[username]; ok {
		return 0, repository.ErrDuplicateEntry
	}
	id := int64(len(m.users) + 1)
	m.addUser(id, username)
	return id, nil
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user, ok := m.users[username]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	return user, nil
}

func (m *mockUserRepo) UsernamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error) {
	result := make(map[int64]string, len(ids))
	for _, id := range ids {
		if name, ok := m.usernames[id]; ok {
			result[id] = name
		}
	}
	return result, nil
}

func (m *mockUserRepo) AddFriend(ctx context.Context, userID, friendID int64) error {
	m.addedEdges = append(m.addedEdges, [2]int64{userID, friendID})
	m.friends[userID] = append(m.friends[userID], friendID)
	return nil
}

func (m *mockUserRepo) FriendIDs(ctx context.Context, userID int64) ([]int64, error) {
	if m.friendIDsErr != nil {
		return nil, m.friendIDsErr
	}
	return m.friends[userID], nil
}

func (m *mockUserRepo) FriendIDsOf(ctx context.Context, userIDs []int64) (map[int64][]int64, error) {
	if m.friendIDsOfErr != nil {
		return nil, m.friendIDsOfErr
	}
	result := make(map[int64][]int64, len(userIDs))
	for _, id := range userIDs {
		if list, ok := m.friends[id]; ok {
			result[id] = list
		}
	}
	return result, nil
}

// mockWatchlistRepo implements repository.WatchlistRepository. Watchlists
// are ordered slices so FirstEligible is deterministic.
type mockWatchlistRepo struct {
	watchlists map[int64][]models.MediaSummary
	watched    map[int64]map[int64]bool

	addErr         error
	firstEligible  int // calls made, for asserting query counts
	markWatchedErr error
}

func newMockWatchlistRepo() *mockWatchlistRepo {
	return &mockWatchlistRepo{
		watchlists: make(map[int64][]models.MediaSummary),
		watched:    make(map[int64]map[int64]bool),
	}
}

func (m *mockWatchlistRepo) addEntry(userID int64, media models.MediaSummary) {
	m.watchlists[userID] = append(m.watchlists[userID], media)
}

func (m *mockWatchlistRepo) Add(ctx context.Context, userID, mediaID int64) error {
	if m.addErr != nil {
		return m.addErr
	}
	m.addEntry(userID, models.MediaSummary{ID: mediaID})
	return nil
}

func (m *mockWatchlistRepo) MarkWatched(ctx context.Context, userID, mediaID int64) error {
	if m.markWatchedErr != nil {
		return m.markWatchedErr
	}
	for _, entry := range m.watchlists[userID] {
		if entry.ID == mediaID {
			if m.watched[userID] == nil {
				m.watched[userID] = make(map[int64]bool)
			}
			m.watched[userID][mediaID] = true
			return nil
		}
	}
	return repository.ErrRecordNotFound
}

func (m *mockWatchlistRepo) List(ctx context.Context, userID int64) ([]models.WatchlistItem, error) {
	items := []models.WatchlistItem{}
	for _, entry := range m.watchlists[userID] {
		items = append(items, models.WatchlistItem{
			Media:       entry,
			HaveWatched: m.watched[userID][entry.ID],
		})
	}
	return items, nil
}

func (m *mockWatchlistRepo) MediaIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	for _, entry := range m.watchlists[userID] {
		ids = append(ids, entry.ID)
	}
	return ids, nil
}

func (m *mockWatchlistRepo) FirstEligible(ctx context.Context, ownerID int64, exclude []int64) (*models.MediaSummary, error) {
	m.firstEligible++
	excluded := make(map[int64]bool, len(exclude))
	for _, id := range exclude {
		excluded[id] = true
	}
	for _, entry := range m.watchlists[ownerID] {
		if !excluded[entry.ID] {
			media := entry
			return &media, nil
		}
	}
	return nil, nil
}
