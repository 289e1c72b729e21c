package storage

import (
	"context"
	"sync"
	"time"

	"github.com/Axios-AI-Innovations/cloud/models"
)

// Storage owns the write path to the early_access table. The subscribe
// endpoint is its only caller.
type Storage interface {
	// UpsertEarlyAccess inserts a subscription keyed by email, or, when the
	// email is already present, overwrites source and refreshes updated_at.
	// The resulting row is returned either way.
	UpsertEarlyAccess(ctx context.Context, email, source string) (*models.EarlyAccessRecord, error)

	Ping(ctx context.Context) error
	Close() error
}

// MemoryStorage backs handler tests. The mutex stands in for the atomicity
// the database's upsert provides.
type MemoryStorage struct {
	mu      sync.Mutex
	records map[string]models.EarlyAccessRecord
	nextID  int64
	now     func() time.Time
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		records: make(map[string]models.EarlyAccessRecord),
		nextID:  1,
		now:     time.Now,
	}
}

func (m *MemoryStorage) UpsertEarlyAccess(ctx context.Context, email, source string) (*models.EarlyAccessRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if record, exists := m.records[email]; exists {
		record.Source = source
		record.UpdatedAt = m.now()
		m.records[email] = record
		return &record, nil
	}

	record := models.EarlyAccessRecord{
		ID:        m.nextID,
		Email:     email,
		Source:    source,
		CreatedAt: m.now(),
		UpdatedAt: m.now(),
	}
	m.nextID++
	m.records[email] = record

	return &record, nil
}

func (m *MemoryStorage) Ping(ctx context.Context) error { return nil }

func (m *MemoryStorage) Close() error { return nil }
