package connectivity

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/offlink/internal/models"
	"github.com/iudanet/offlink/internal/storage"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func encodedMutation(t *testing.T, name string) []byte {
	t.Helper()
	op, err := models.NewOperation(models.Definition{
		Kind:     models.KindMutation,
		Name:     name,
		Document: "mutation " + name + " { x }",
	}, nil, nil)
	require.NoError(t, err)

	payload, err := models.EncodeOperation(op)
	require.NoError(t, err)
	return payload
}

func staticQueue(entries []storage.Entry) *storage.QueueStorageMock {
	return &storage.QueueStorageMock{
		ListFunc: func(ctx context.Context) ([]storage.Entry, error) {
			return entries, nil
		},
	}
}

// submitRecorder собирает поданные операции потокобезопасно
type submitRecorder struct {
	mu  sync.Mutex
	ops []*models.Operation
}

func (r *submitRecorder) submit(ctx context.Context, op *models.Operation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = append(r.ops, op)
}

func (r *submitRecorder) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.ops))
	for _, op := range r.ops {
		names = append(names, op.Definition.Name)
	}
	return names
}

func TestGate_InitialStateOffline(t *testing.T) {
	gate := NewGate(staticQueue(nil), testLogger())
	assert.False(t, gate.IsConnected())
}

func TestSetConnected_OfflineToOnlineReplaysAll(t *testing.T) {
	queue := staticQueue([]storage.Entry{
		{Key: 1, Payload: encodedMutation(t, "M1")},
		{Key: 2, Payload: encodedMutation(t, "M2")},
	})

	recorder := &submitRecorder{}
	gate := NewGate(queue, testLogger())
	gate.SetSubmit(recorder.submit)

	require.NoError(t, gate.SetConnected(context.Background(), true))
	assert.True(t, gate.IsConnected())

	// Все записи подаются параллельно — ждем обе без требований к порядку
	require.Eventually(t, func() bool {
		return len(recorder.names()) == 2
	}, 2*time.Second, 10*time.Millisecond)

	assert.ElementsMatch(t, []string{"M1", "M2"}, recorder.names())
}

func TestSetConnected_SameStateIsNoop(t *testing.T) {
	queue := staticQueue([]storage.Entry{
		{Key: 1, Payload: encodedMutation(t, "M1")},
	})

	recorder := &submitRecorder{}
	gate := NewGate(queue, testLogger())
	gate.SetSubmit(recorder.submit)

	// offline→offline: без побочных эффектов
	require.NoError(t, gate.SetConnected(context.Background(), false))
	assert.Empty(t, queue.ListCalls())

	require.NoError(t, gate.SetConnected(context.Background(), true))

	// online→online: второй проход replay не запускается
	require.NoError(t, gate.SetConnected(context.Background(), true))
	assert.Len(t, queue.ListCalls(), 1)
}

func TestSetConnected_ReplayTriggeredOncePerTransition(t *testing.T) {
	queue := staticQueue(nil)
	gate := NewGate(queue, testLogger())
	gate.SetSubmit(func(ctx context.Context, op *models.Operation) {})

	ctx := context.Background()
	require.NoError(t, gate.SetConnected(ctx, true))
	require.NoError(t, gate.SetConnected(ctx, false))
	require.NoError(t, gate.SetConnected(ctx, true))

	// Два перехода offline→online — два снимка очереди
	assert.Len(t, queue.ListCalls(), 2)
}

func TestSetConnected_UndecodableEntrySkipped(t *testing.T) {
	queue := staticQueue([]storage.Entry{
		{Key: 1, Payload: []byte("garbage")},
		{Key: 2, Payload: encodedMutation(t, "M2")},
	})

	recorder := &submitRecorder{}
	gate := NewGate(queue, testLogger())
	gate.SetSubmit(recorder.submit)

	require.NoError(t, gate.SetConnected(context.Background(), true))

	require.Eventually(t, func() bool {
		return len(recorder.names()) == 1
	}, 2*time.Second, 10*time.Millisecond)

	// Порченная запись пропущена, но не удалена — она остается в очереди
	assert.Equal(t, []string{"M2"}, recorder.names())
	assert.Empty(t, queue.DeleteCalls())
}

func TestSetConnected_WithoutSubmitFails(t *testing.T) {
	gate := NewGate(staticQueue(nil), testLogger())

	err := gate.SetConnected(context.Background(), true)
	assert.Error(t, err)
}
