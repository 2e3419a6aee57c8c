package pipeline

import (
	"context"
	"sync"

	"github.com/iudanet/offlink/internal/models"
)

// Forwarder передает операцию дальше по конвейеру и возвращает поток
// ответов. Терминальный транспорт — тоже Forwarder.
type Forwarder func(ctx context.Context, op *models.Operation) <-chan models.Response

// Sink — capability для управления потоком ответов одной операции.
// Передается exception hook'у, не раскрывая ни очередь, ни кэш.
type Sink interface {
	// Emit отправляет ответ вниз по конвейеру
	Emit(resp models.Response)

	// Complete завершает поток; дальнейшие Emit игнорируются
	Complete()

	// Cancel отбрасывает поток: закрывает его, подавляя дальнейшие Emit
	Cancel()
}

// NeverStream возвращает поток, который никогда не излучает и никогда
// не завершается. Вызывающий, подавший мутацию offline, не видит ни
// данных, ни ошибки, ни завершения — реальный исход придет через
// отдельную подачу той же операции после восстановления связи.
func NeverStream() <-chan models.Response {
	return make(chan models.Response)
}

// chanSink реализует Sink поверх канала
type chanSink struct {
	mu     sync.Mutex
	ch     chan models.Response
	closed bool
}

func newChanSink() *chanSink {
	return &chanSink{ch: make(chan models.Response)}
}

// Out возвращает читающую сторону потока
func (s *chanSink) Out() <-chan models.Response {
	return s.ch
}

// Emit блокируется до тех пор, пока потребитель не прочитает ответ.
// После Complete/Cancel ответ молча отбрасывается.
func (s *chanSink) Emit(resp models.Response) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.ch <- resp
}

func (s *chanSink) Complete() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.ch)
}

func (s *chanSink) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.ch)
}
