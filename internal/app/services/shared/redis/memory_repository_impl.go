package redis

import (
	"bpa-panel-service/internal/app/contracts"
	"bpa-panel-service/internal/pkg/exceptions"
	"context"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

type memoryRepository struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryRepository returns a process-local repository with the same
// encoding rules as the Redis one. It is used when no Redis host is
// configured.
func NewMemoryRepository() contracts.RedisRepository {
	return &memoryRepository{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (m *memoryRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	entry := memoryEntry{value: string(jsonValue)}
	if exp > 0 {
		entry.expiresAt = m.now().Add(exp)
	}

	m.mu.Lock()
	m.entries[key] = entry
	m.mu.Unlock()
	return nil
}

func (m *memoryRepository) Get(ctx context.Context, key string) (string, error) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return "", nil
	}
	if !entry.expiresAt.IsZero() && m.now().After(entry.expiresAt) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return "", nil
	}
	return entry.value, nil
}

func (m *memoryRepository) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
	return nil
}
