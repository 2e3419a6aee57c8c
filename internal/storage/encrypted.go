package storage

import (
	"context"
	"fmt"

	"github.com/iudanet/offlink/internal/crypto"
)

// EncryptedQueue оборачивает QueueStorage и шифрует payload при записи.
// Переменные мутаций могут содержать чувствительные данные, а очередь
// живет на диске неограниченно долго.
type EncryptedQueue struct {
	inner QueueStorage
	key   []byte
}

// NewEncryptedQueue создает шифрующую обертку над хранилищем очереди.
// key должен быть 32 bytes (AES-256), см. crypto.DeriveKey.
func NewEncryptedQueue(inner QueueStorage, key []byte) (*EncryptedQueue, error) {
	if len(key) != crypto.KeySize {
		return nil, fmt.Errorf("encryption key must be %d bytes, got %d", crypto.KeySize, len(key))
	}
	return &EncryptedQueue{inner: inner, key: key}, nil
}

// Append шифрует payload и передает его внутреннему хранилищу
func (q *EncryptedQueue) Append(ctx context.Context, payload []byte) (uint64, error) {
	sealed, err := crypto.Encrypt(payload, q.key)
	if err != nil {
		return 0, fmt.Errorf("failed to encrypt queue payload: %w", err)
	}
	return q.inner.Append(ctx, sealed)
}

// List перечисляет записи внутреннего хранилища, расшифровывая payload.
// Ошибка расшифровки (чужой ключ, поврежденная запись) фатальна для
// перечисления: молча отдать мусор хуже, чем вернуть ошибку.
func (q *EncryptedQueue) List(ctx context.Context) ([]Entry, error) {
	sealed, err := q.inner.List(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(sealed))
	for _, entry := range sealed {
		plain, err := crypto.Decrypt(entry.Payload, q.key)
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt queue entry %d: %w", entry.Key, err)
		}
		entries = append(entries, Entry{Key: entry.Key, Payload: plain})
	}

	return entries, nil
}

// Delete удаляет запись по ключу
func (q *EncryptedQueue) Delete(ctx context.Context, key uint64) error {
	return q.inner.Delete(ctx, key)
}

// Len возвращает количество ожидающих записей
func (q *EncryptedQueue) Len(ctx context.Context) (int, error) {
	return q.inner.Len(ctx)
}
