package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/repositories/kv"
)

// fakeClient implements client.Client for SessionManager tests.
type fakeClient struct {
	mu sync.Mutex

	LoginRet string
	LoginErr error

	GetUserRet *models.User
	GetUserErr error
	// GetUserHook runs before GetUser returns.
	GetUserHook func(ctx context.Context)

	PingErr error

	LastLoginUser     string
	LastLoginPassword string
	LastGetUserID     int
	LoginCalls        int
	Token             string
}

func (f *fakeClient) Login(ctx context.Context, username string, password []byte) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LoginCalls++
	f.LastLoginUser = username
	f.LastLoginPassword = string(password)
	if f.LoginErr != nil {
		return "", f.LoginErr
	}
	return f.LoginRet, nil
}

func (f *fakeClient) GetUser(ctx context.Context, id int) (*models.User, error) {
	f.mu.Lock()
	f.LastGetUserID = id
	hook := f.GetUserHook
	f.mu.Unlock()

	if hook != nil {
		hook(ctx)
	}
	if f.GetUserErr != nil {
		return nil, f.GetUserErr
	}
	return f.GetUserRet.Clone(), nil
}

func (f *fakeClient) SetToken(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Token = token
}

func (f *fakeClient) currentToken() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Token
}

func (f *fakeClient) Ping(ctx context.Context) error { return f.PingErr }
func (f *fakeClient) Close() error                   { return nil }

// fakeStore wraps a MemoryRepository with per-key error injection.
type fakeStore struct {
	*kv.MemoryRepository

	GetErr    map[string]error
	SetErr    map[string]error
	DeleteErr error
	// GetHook runs before every Get.
	GetHook func(key string)

	LastDeleteKeys []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		MemoryRepository: kv.NewMemoryRepository(),
		GetErr:           map[string]error{},
		SetErr:           map[string]error{},
	}
}

func (s *fakeStore) Get(ctx context.Context, key string) ([]byte, error) {
	if s.GetHook != nil {
		s.GetHook(key)
	}
	if err := s.GetErr[key]; err != nil {
		return nil, err
	}
	return s.MemoryRepository.Get(ctx, key)
}

func (s *fakeStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.SetErr[key]; err != nil {
		return err
	}
	return s.MemoryRepository.Set(ctx, key, value)
}

func (s *fakeStore) Delete(ctx context.Context, keys ...string) error {
	s.LastDeleteKeys = append([]string(nil), keys...)
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	return s.MemoryRepository.Delete(ctx, keys...)
}
