package storage

import "context"

//go:generate moq -out queuestorage_mock.go . QueueStorage

// Entry представляет одну запись очереди: ключ, назначенный хранилищем
// (монотонно растущий, задает порядок перечисления), и сериализованная операция.
type Entry struct {
	Payload []byte
	Key     uint64
}

// QueueStorage defines interface for the durable write queue.
// Все три операции атомарны по отношению друг к другу при конкурентных
// вызовах: enqueue из жизненного цикла одной операции может гоняться
// с dequeue из другого.
type QueueStorage interface {
	// Append durably persists a serialized operation and returns the
	// storage-assigned ordering key.
	// Ошибка записи фатальна и обязана дойти до вызывающего: проглотить
	// ее значит навсегда потерять write-операцию.
	Append(ctx context.Context, payload []byte) (uint64, error)

	// List returns all pending entries, oldest first.
	List(ctx context.Context) ([]Entry, error)

	// Delete removes an entry by its storage key.
	// Returns ErrEntryNotFound if the entry doesn't exist.
	Delete(ctx context.Context, key uint64) error

	// Len returns the number of pending entries.
	Len(ctx context.Context) (int, error)
}
