package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/iudanet/offlink/internal/models"
)

// Writer применяет предварительный результат операции в общий кэш.
// Тонкая делегация: без повторов и без собственной валидации,
// ошибки кэша пробрасываются вызывающему без изменений.
type Writer struct {
	cache  Cache
	logger *slog.Logger
}

// NewWriter creates a new optimistic cache writer
func NewWriter(cache Cache, logger *slog.Logger) *Writer {
	return &Writer{
		cache:  cache,
		logger: logger,
	}
}

// WriteOptimistic записывает предварительный результат, помечая его
// структурной идентичностью операции
func (w *Writer) WriteOptimistic(ctx context.Context, op *models.Operation, payload json.RawMessage) error {
	id, err := op.Fingerprint()
	if err != nil {
		return fmt.Errorf("failed to compute operation identity: %w", err)
	}

	w.logger.Debug("applying optimistic result",
		"operation", op.Definition.Name,
		"operation_id", id)

	return w.cache.WriteOptimistic(ctx, id, payload)
}
