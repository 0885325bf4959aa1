package services

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/devfolio/backend/internal/models"
)

// FakeUserStore is a test-only in-memory UserStore with injectable
// errors.
type FakeUserStore struct {
	mu        sync.RWMutex
	users     map[string]*models.User
	FindErr   error
	InsertErr error
	SetErr    error
}

func NewFakeUserStore() *FakeUserStore {
	return &FakeUserStore{users: make(map[string]*models.User)}
}

// Seed stores a user directly, assigning an id when absent.
func (f *FakeUserStore) Seed(user *models.User) *models.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	f.users[user.ID] = user
	return user
}

func (f *FakeUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.FindErr != nil {
		return nil, f.FindErr
	}
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrUserNotFound
}

func (f *FakeUserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.FindErr != nil {
		return nil, f.FindErr
	}
	u, ok := f.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *FakeUserStore) Insert(ctx context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.InsertErr != nil {
		return f.InsertErr
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	for _, u := range f.users {
		if u.Email == user.Email {
			return ErrEmailExists
		}
	}
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *FakeUserStore) SetField(ctx context.Context, id, field string, value interface{}) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.SetErr != nil {
		return nil, f.SetErr
	}
	u, ok := f.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	switch field {
	case "skills":
		u.Skills = value.([]string)
	case "experience":
		u.Experience = value.([]models.Experience)
	case "projects":
		u.Projects = value.([]models.Project)
	case "education":
		u.Education = value.([]models.Education)
	case "featuredProjects":
		u.FeaturedProjects = value.([]models.FeaturedProject)
	case "description":
		u.Description = value.(string)
	case "avatar":
		u.Avatar = value.(models.Avatar)
	case "openToOpportunities":
		u.OpenToOpportunities = value.(bool)
	default:
		return nil, fmt.Errorf("unknown field %q", field)
	}
	cp := *u
	return &cp, nil
}

// FakeAvatarStorage records uploads instead of talking to a bucket.
type FakeAvatarStorage struct {
	mu      sync.Mutex
	PutKeys []string
	PutErr  error
}

func NewFakeAvatarStorage() *FakeAvatarStorage {
	return &FakeAvatarStorage{}
}

func (f *FakeAvatarStorage) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.PutErr != nil {
		return f.PutErr
	}
	f.PutKeys = append(f.PutKeys, key)
	return nil
}

func (f *FakeAvatarStorage) URL(key string) string {
	return "https://files.example.com/avatars/" + key
}

// FakeSocialStore is an in-memory SocialStore.
type FakeSocialStore struct {
	mu         sync.RWMutex
	links      []models.SocialLink
	ListErr    error
	ReplaceErr error
}

func NewFakeSocialStore() *FakeSocialStore {
	return &FakeSocialStore{}
}

func (f *FakeSocialStore) List(ctx context.Context) ([]models.SocialLink, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	out := make([]models.SocialLink, len(f.links))
	copy(out, f.links)
	return out, nil
}

func (f *FakeSocialStore) ReplaceAll(ctx context.Context, links []models.SocialLink) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ReplaceErr != nil {
		return f.ReplaceErr
	}
	f.links = make([]models.SocialLink, len(links))
	copy(f.links, links)
	return nil
}

// FakeStatsStore is an in-memory StatsStore.
type FakeStatsStore struct {
	mu        sync.RWMutex
	stats     *models.Stats
	GetErr    error
	UpsertErr error
}

func NewFakeStatsStore() *FakeStatsStore {
	return &FakeStatsStore{}
}

func (f *FakeStatsStore) Get(ctx context.Context) (*models.Stats, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	if f.stats == nil {
		return nil, ErrStatsNotFound
	}
	cp := *f.stats
	return &cp, nil
}

func (f *FakeStatsStore) Upsert(ctx context.Context, stats *models.Stats) (*models.Stats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.UpsertErr != nil {
		return nil, f.UpsertErr
	}
	cp := *stats
	f.stats = &cp
	out := cp
	return &out, nil
}

// FakeContributions returns a fixed total or error.
type FakeContributions struct {
	Total float64
	Err   error
}

func (f *FakeContributions) TotalContributions(ctx context.Context) (float64, error) {
	if f.Err != nil {
		return 0, f.Err
	}
	return f.Total, nil
}
