package client

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/iudanet/offlink/internal/cache"
	"github.com/iudanet/offlink/internal/connectivity"
	"github.com/iudanet/offlink/internal/models"
	"github.com/iudanet/offlink/internal/pipeline"
	"github.com/iudanet/offlink/internal/storage"
)

// Config задает зависимости клиента. Queue, Cache и Transport обязательны.
type Config struct {
	Queue     storage.QueueStorage
	Cache     cache.Cache
	Transport pipeline.Forwarder
	Hook      pipeline.ExceptionHandler // опционально
	Logger    *slog.Logger              // опционально, по умолчанию slog.Default()
}

// Client — точка входа конвейера. Через Submit проходят и исходные
// вызовы, и повторно подаваемые записи очереди после восстановления связи.
type Client struct {
	gate        *connectivity.Gate
	interceptor *pipeline.Interceptor
	reconciler  *pipeline.Reconciler
	terminate   pipeline.Forwarder
	queue       storage.QueueStorage
	logger      *slog.Logger
}

// New собирает конвейер: gate + interceptor + reconciler + транспорт
func New(cfg Config) (*Client, error) {
	if cfg.Queue == nil {
		return nil, fmt.Errorf("queue storage is required")
	}
	if cfg.Cache == nil {
		return nil, fmt.Errorf("cache is required")
	}
	if cfg.Transport == nil {
		return nil, fmt.Errorf("terminating transport is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	gate := connectivity.NewGate(cfg.Queue, logger)
	writer := cache.NewWriter(cfg.Cache, logger)

	c := &Client{
		gate:        gate,
		interceptor: pipeline.NewInterceptor(gate, cfg.Queue, writer, logger),
		reconciler:  pipeline.NewReconciler(cfg.Queue, cfg.Hook, logger),
		terminate:   cfg.Transport,
		queue:       cfg.Queue,
		logger:      logger,
	}

	gate.SetSubmit(c.resubmit)

	return c, nil
}

// Submit подает операцию в конвейер и возвращает поток ее ответов.
// Ошибка возвращается только если мутацию, поданную offline, не удалось
// durable-сохранить (или не удалось применить ее предварительный результат).
func (c *Client) Submit(ctx context.Context, op *models.Operation) (<-chan models.Response, error) {
	return c.interceptor.Intercept(ctx, op, func(ctx context.Context, op *models.Operation) <-chan models.Response {
		return c.reconciler.Observe(ctx, op, c.terminate)
	})
}

// SetConnected переключает состояние связи; offline→online запускает
// replay всех записей очереди через Submit
func (c *Client) SetConnected(ctx context.Context, connected bool) error {
	return c.gate.SetConnected(ctx, connected)
}

// IsConnected returns current connectivity state
func (c *Client) IsConnected() bool {
	return c.gate.IsConnected()
}

// PendingCount возвращает количество мутаций, ожидающих согласования
func (c *Client) PendingCount(ctx context.Context) (int, error) {
	return c.queue.Len(ctx)
}

// resubmit повторно подает операцию из очереди. Потребителя у потока
// replay-операции нет, поэтому дренируем его здесь: reconciler сначала
// отдает ответ вниз и только потом снимает запись с очереди, так что
// без читателя согласование застряло бы.
func (c *Client) resubmit(ctx context.Context, op *models.Operation) {
	stream, err := c.Submit(ctx, op)
	if err != nil {
		// Запись осталась в очереди и будет подана при следующем переходе
		c.logger.Error("failed to resubmit queued mutation",
			"operation", op.Definition.Name,
			"error", err)
		return
	}

	for range stream { //nolint:revive // дренаж: ответы уже согласованы
	}
}
