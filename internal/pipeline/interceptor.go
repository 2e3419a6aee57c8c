package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/iudanet/offlink/internal/models"
	"github.com/iudanet/offlink/internal/storage"
)

//go:generate moq -out optimisticwriter_mock.go . OptimisticWriter

// OptimisticWriter defines interface for applying provisional results
// to the shared cache (implemented by cache.Writer).
type OptimisticWriter interface {
	WriteOptimistic(ctx context.Context, op *models.Operation, payload json.RawMessage) error
}

// ConnectivitySource reports current connectivity state
// (implemented by connectivity.Gate).
type ConnectivitySource interface {
	IsConnected() bool
}

// Interceptor классифицирует входящие операции и решает: передать
// дальше немедленно или поставить в durable-очередь и подавить.
type Interceptor struct {
	conn   ConnectivitySource
	queue  storage.QueueStorage
	writer OptimisticWriter
	logger *slog.Logger
}

// NewInterceptor creates a new request interceptor
func NewInterceptor(conn ConnectivitySource, queue storage.QueueStorage, writer OptimisticWriter, logger *slog.Logger) *Interceptor {
	return &Interceptor{
		conn:   conn,
		queue:  queue,
		writer: writer,
		logger: logger,
	}
}

// Intercept обрабатывает входящую операцию.
// Не-мутации, а также мутации при наличии связи, передаются дальше
// без какой-либо дополнительной логики. Мутация без связи:
// сериализуется и пишется в очередь, затем (если есть предварительный
// результат) выполняется ровно одна optimistic-запись в кэш, затем
// вызывающему возвращается поток, который никогда не излучает.
// Ошибка записи в очередь фатальна и возвращается вызывающему.
func (i *Interceptor) Intercept(ctx context.Context, op *models.Operation, next Forwarder) (<-chan models.Response, error) {
	if !op.IsMutation() || i.conn.IsConnected() {
		return next(ctx, op), nil
	}

	payload, err := models.EncodeOperation(op)
	if err != nil {
		return nil, fmt.Errorf("failed to encode operation: %w", err)
	}

	key, err := i.queue.Append(ctx, payload)
	if err != nil {
		// Потеря write-операции недопустима: ошибку обязан увидеть вызывающий
		return nil, fmt.Errorf("failed to persist queued mutation: %w", err)
	}

	i.logger.Info("mutation queued while offline",
		"operation", op.Definition.Name,
		"key", key)

	if len(op.OptimisticResponse) > 0 {
		if err := i.writer.WriteOptimistic(ctx, op, op.OptimisticResponse); err != nil {
			// Ошибки кэша пробрасываются без изменений; запись в очереди
			// уже сделана и остается там
			return nil, fmt.Errorf("optimistic cache write failed: %w", err)
		}
	}

	return NeverStream(), nil
}
