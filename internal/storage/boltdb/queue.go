package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/offlink/internal/storage"
)

// Append durably persists a serialized operation in the queue bucket.
// Ключ назначает хранилище: bucket sequence монотонно растет, поэтому
// курсор bucket'а перечисляет записи в порядке добавления.
// bbolt.Update синхронно пишет на диск — ошибка персистентности
// возвращается вызывающему, а не глотается.
func (s *Storage) Append(ctx context.Context, payload []byte) (uint64, error) {
	if s.db == nil {
		return 0, storage.ErrQueueClosed
	}

	var key uint64
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("queue bucket not found")
		}

		seq, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to allocate sequence: %w", err)
		}

		if err := bucket.Put(itob(seq), payload); err != nil {
			return fmt.Errorf("failed to save entry: %w", err)
		}

		key = seq
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("transaction failed: %w", err)
	}

	return key, nil
}

// List returns all pending entries, oldest first
func (s *Storage) List(ctx context.Context) ([]storage.Entry, error) {
	if s.db == nil {
		return nil, storage.ErrQueueClosed
	}

	var entries []storage.Entry

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			// Нет bucket — возвращаем пустой список
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			// bbolt отдает срезы, валидные только внутри транзакции — копируем
			payload := make([]byte, len(v))
			copy(payload, v)

			entries = append(entries, storage.Entry{
				Key:     btoi(k),
				Payload: payload,
			})
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list queue entries: %w", err)
	}

	return entries, nil
}

// Delete removes an entry by its storage key
func (s *Storage) Delete(ctx context.Context, key uint64) error {
	if s.db == nil {
		return storage.ErrQueueClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return storage.ErrEntryNotFound
		}

		k := itob(key)
		if bucket.Get(k) == nil {
			return storage.ErrEntryNotFound
		}

		if err := bucket.Delete(k); err != nil {
			return fmt.Errorf("failed to delete entry: %w", err)
		}

		return nil
	})
}

// Len returns the number of pending entries
func (s *Storage) Len(ctx context.Context) (int, error) {
	if s.db == nil {
		return 0, storage.ErrQueueClosed
	}

	var n int
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return nil
		}
		n = bucket.Stats().KeyN
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count queue entries: %w", err)
	}

	return n, nil
}

// itob кодирует ключ в big-endian, чтобы байтовый порядок совпадал с числовым
func itob(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}

func btoi(b []byte) uint64 {
	return binary.BigEndian.Uint64(b)
}
