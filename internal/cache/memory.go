package cache

import (
	"context"
	"encoding/json"
	"sync"
)

// Memory — минимальная in-memory реализация Cache для демо и тестов.
// Хранит последний optimistic payload по идентичности операции.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]json.RawMessage
}

// NewMemory creates an empty in-memory cache
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]json.RawMessage),
	}
}

// WriteOptimistic stores the provisional payload by operation identity
func (m *Memory) WriteOptimistic(ctx context.Context, operationID string, payload json.RawMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[operationID] = payload
	return nil
}

// Get возвращает сохраненный payload (для проверок в тестах и демо)
func (m *Memory) Get(operationID string) (json.RawMessage, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	payload, ok := m.entries[operationID]
	return payload, ok
}
