package connectivity

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/iudanet/offlink/internal/models"
	"github.com/iudanet/offlink/internal/storage"
)

// SubmitFunc принимает операцию в точку входа конвейера. Используется
// для повторной подачи записей очереди после восстановления связи —
// каждая из них проходит конвейер как обычная новая операция.
type SubmitFunc func(ctx context.Context, op *models.Operation)

// Gate владеет состоянием связи (online/offline) и триггером replay.
// Машина из двух состояний: начальное — offline; переход offline→online
// запускает ровно один проход повторной подачи по текущему снимку
// очереди; установка уже действующего состояния — no-op без побочных
// эффектов; терминального состояния нет.
type Gate struct {
	queue  storage.QueueStorage
	submit SubmitFunc
	logger *slog.Logger

	mu        sync.Mutex
	connected bool
	replaying bool
}

// NewGate creates a new connectivity gate in the offline state
func NewGate(queue storage.QueueStorage, logger *slog.Logger) *Gate {
	return &Gate{
		queue:  queue,
		logger: logger,
	}
}

// SetSubmit задает точку входа конвейера. Отдельный сеттер разрывает
// цикл инициализации: клиент подает операции через gate-aware
// interceptor, а gate подает replay-операции через клиента.
func (g *Gate) SetSubmit(submit SubmitFunc) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.submit = submit
}

// IsConnected returns current connectivity state
func (g *Gate) IsConnected() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.connected
}

// SetConnected переключает состояние связи. Переход offline→online
// читает текущий снимок очереди, десериализует каждую запись и подает
// ее в точку входа конвейера. Все записи подаются параллельно: без
// порядка, без ограничения параллелизма, без backpressure — это
// осознанное, задокументированное ограничение, а не дефект.
func (g *Gate) SetConnected(ctx context.Context, connected bool) error {
	g.mu.Lock()
	if g.connected == connected {
		// Повторная установка того же состояния — no-op
		g.mu.Unlock()
		return nil
	}
	g.connected = connected
	if !connected {
		g.mu.Unlock()
		return nil
	}
	if g.replaying {
		// Защита от реентерабельного перехода: идущий проход replay
		// не должен запускаться повторно из вложенного вызова
		g.mu.Unlock()
		return nil
	}
	g.replaying = true
	submit := g.submit
	g.mu.Unlock()

	defer func() {
		g.mu.Lock()
		g.replaying = false
		g.mu.Unlock()
	}()

	if submit == nil {
		return fmt.Errorf("submission entry point is not configured")
	}

	entries, err := g.queue.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to snapshot queue for replay: %w", err)
	}

	g.logger.Info("connectivity restored, replaying queued mutations",
		"count", len(entries))

	for _, entry := range entries {
		op, err := models.DecodeOperation(entry.Payload)
		if err != nil {
			// Schema drift: запись остается в очереди, проход не прерываем
			g.logger.Warn("skipping queue entry that no longer decodes",
				"key", entry.Key,
				"error", err)
			continue
		}

		go submit(ctx, op)
	}

	return nil
}
