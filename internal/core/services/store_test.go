package services_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/deepstack-engine/internal/core/domain"
)

// FakeStore is a map-backed store that can be told to fail.
type FakeStore struct {
	mu            sync.Mutex
	data          map[string][]byte
	simulateError error
}

func NewFakeStore() *FakeStore {
	return &FakeStore{data: make(map[string][]byte)}
}

func (f *FakeStore) Get(ctx context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.simulateError != nil {
		return nil, f.simulateError
	}
	v, ok := f.data[key]
	if !ok {
		return nil, domain.ErrKeyNotFound
	}
	return append([]byte(nil), v...), nil
}

func (f *FakeStore) Set(ctx context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.simulateError != nil {
		return f.simulateError
	}
	f.data[key] = append([]byte(nil), value...)
	return nil
}

func (f *FakeStore) Clear(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.simulateError != nil {
		return f.simulateError
	}
	f.data = make(map[string][]byte)
	return nil
}

func (f *FakeStore) put(t *testing.T, key string, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f.data[key] = data
}

func (f *FakeStore) decode(t *testing.T, key string, out any) {
	t.Helper()
	raw, ok := f.data[key]
	require.True(t, ok, "nothing stored under %s", key)
	require.NoError(t, json.Unmarshal(raw, out))
}

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockStore) Set(ctx context.Context, key string, value []byte) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockStore) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

var (
	_ domain.Store = (*FakeStore)(nil)
	_ domain.Store = (*MockStore)(nil)
)

func newTestProgram(t *testing.T) domain.Program {
	t.Helper()
	p, err := domain.NewProgram("2026-02-16", 65, time.UTC)
	require.NoError(t, err)
	return p
}

// 2026-03-10 is a Tuesday in program week 4.
var testNow = time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)
