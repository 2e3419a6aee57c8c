package cache

import (
	"context"
	"encoding/json"
)

//go:generate moq -out cache_mock.go . Cache

// Cache defines interface for the shared normalized cache.
// Нормализация и diffing — зона ответственности самого кэша; ядро
// только просит применить optimistic-запись, помеченную идентичностью
// операции, и никогда не читает состояние кэша.
type Cache interface {
	// WriteOptimistic applies a provisional payload tagged by the
	// originating operation's identity so a later real server result
	// can supersede it.
	WriteOptimistic(ctx context.Context, operationID string, payload json.RawMessage) error
}
