package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/iudanet/offlink/internal/models"
	"github.com/iudanet/offlink/internal/storage"
)

// ExceptionHandler вызывается для ответа мутации с транспортной ошибкой,
// если сконфигурирован. Hook полностью владеет судьбой ответа: сам решает,
// излучать ли что-то в sink и снимать ли запись с очереди — путь
// forward-and-dequeue по умолчанию для такого ответа не выполняется.
type ExceptionHandler func(resp models.Response, sink Sink)

// Reconciler наблюдает каждый ответ, идущий назад по конвейеру,
// передает его вниз и снимает согласованную запись с durable-очереди.
type Reconciler struct {
	queue  storage.QueueStorage
	hook   ExceptionHandler // может быть nil
	logger *slog.Logger
}

// NewReconciler creates a new response reconciler
func NewReconciler(queue storage.QueueStorage, hook ExceptionHandler, logger *slog.Logger) *Reconciler {
	return &Reconciler{
		queue:  queue,
		hook:   hook,
		logger: logger,
	}
}

// Observe оборачивает поток ответов терминального транспорта логикой
// согласования. Возвращенный поток завершается, когда завершается
// поток транспорта.
func (r *Reconciler) Observe(ctx context.Context, op *models.Operation, next Forwarder) <-chan models.Response {
	upstream := next(ctx, op)
	sink := newChanSink()

	go func() {
		defer sink.Complete()
		for resp := range upstream {
			r.reconcile(ctx, resp, sink)
		}
	}()

	return sink.Out()
}

func (r *Reconciler) reconcile(ctx context.Context, resp models.Response, sink Sink) {
	op := resp.Operation

	// Ответы не-мутаций проходят без дополнительных действий
	if op == nil || !op.IsMutation() {
		sink.Emit(resp)
		return
	}

	if resp.TransportFailed() && r.hook != nil {
		r.hook(resp, sink)
		return
	}

	// Успех — или транспортная ошибка без hook'а: жизненный цикл операции
	// считается завершенным, ответ уходит вниз, запись снимается с очереди
	sink.Emit(resp)

	if err := r.dequeue(ctx, op); err != nil {
		r.logger.Warn("failed to reconcile queue entry",
			"operation", op.Definition.Name,
			"error", err)
	}
}

// dequeue удаляет первую запись очереди, структурно совпадающую с
// операцией. Отсутствие совпадения — не ошибка: ответ уже ушел вниз.
func (r *Reconciler) dequeue(ctx context.Context, op *models.Operation) error {
	want, err := op.Fingerprint()
	if err != nil {
		return fmt.Errorf("failed to compute operation identity: %w", err)
	}

	entries, err := r.queue.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to enumerate queue: %w", err)
	}

	for _, entry := range entries {
		queued, err := models.DecodeOperation(entry.Payload)
		if err != nil {
			// Запись, которая больше не декодируется, не может совпасть;
			// оставляем ее в очереди
			r.logger.Warn("skipping undecodable queue entry",
				"key", entry.Key,
				"error", err)
			continue
		}

		got, err := queued.Fingerprint()
		if err != nil {
			continue
		}

		if got == want {
			if err := r.queue.Delete(ctx, entry.Key); err != nil {
				return fmt.Errorf("failed to delete queue entry %d: %w", entry.Key, err)
			}
			r.logger.Debug("reconciled queue entry",
				"operation", op.Definition.Name,
				"key", entry.Key)
			return nil
		}
	}

	return nil
}
