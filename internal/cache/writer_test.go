package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/offlink/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func TestWriteOptimistic_TagsWithOperationIdentity(t *testing.T) {
	cacheMock := &CacheMock{
		WriteOptimisticFunc: func(ctx context.Context, operationID string, payload json.RawMessage) error {
			return nil
		},
	}
	writer := NewWriter(cacheMock, testLogger())

	op, err := models.NewOperation(models.Definition{
		Kind:     models.KindMutation,
		Name:     "AddItem",
		Document: "mutation AddItem { addItem { id } }",
	}, map[string]any{"name": "milk"}, nil)
	require.NoError(t, err)

	payload := json.RawMessage(`{"addItem":{"id":"tmp-1"}}`)
	require.NoError(t, writer.WriteOptimistic(context.Background(), op, payload))

	// Запись помечена структурной идентичностью операции
	want, err := op.Fingerprint()
	require.NoError(t, err)

	calls := cacheMock.WriteOptimisticCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, want, calls[0].OperationID)
	assert.Equal(t, payload, calls[0].Payload)
}

func TestWriteOptimistic_PropagatesCacheError(t *testing.T) {
	cacheErr := errors.New("normalization failed")
	cacheMock := &CacheMock{
		WriteOptimisticFunc: func(ctx context.Context, operationID string, payload json.RawMessage) error {
			return cacheErr
		},
	}
	writer := NewWriter(cacheMock, testLogger())

	op, err := models.NewOperation(models.Definition{
		Kind:     models.KindMutation,
		Name:     "AddItem",
		Document: "mutation { addItem }",
	}, nil, nil)
	require.NoError(t, err)

	// Ошибка кэша пробрасывается без изменений
	got := writer.WriteOptimistic(context.Background(), op, json.RawMessage(`{}`))
	assert.Equal(t, cacheErr, got)
}

func TestMemory_WriteAndGet(t *testing.T) {
	mem := NewMemory()

	payload := json.RawMessage(`{"x":1}`)
	require.NoError(t, mem.WriteOptimistic(context.Background(), "op-1", payload))

	got, ok := mem.Get("op-1")
	assert.True(t, ok)
	assert.Equal(t, payload, got)

	_, ok = mem.Get("missing")
	assert.False(t, ok)
}
