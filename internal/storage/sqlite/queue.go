package sqlite

import (
	"context"
	"fmt"

	"github.com/iudanet/offlink/internal/storage"
)

// Append durably persists a serialized operation.
// AUTOINCREMENT id — ключ, назначенный хранилищем: монотонно растет
// и задает порядок перечисления.
func (s *Storage) Append(ctx context.Context, payload []byte) (uint64, error) {
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO queue (payload) VALUES (?)`, payload)
	if err != nil {
		return 0, fmt.Errorf("failed to insert queue entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get entry id: %w", err)
	}

	return uint64(id), nil
}

// List returns all pending entries, oldest first
func (s *Storage) List(ctx context.Context) ([]storage.Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, payload FROM queue ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query queue entries: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var entries []storage.Entry
	for rows.Next() {
		var entry storage.Entry
		if err := rows.Scan(&entry.Key, &entry.Payload); err != nil {
			return nil, fmt.Errorf("failed to scan queue entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate queue entries: %w", err)
	}

	return entries, nil
}

// Delete removes an entry by its storage key
func (s *Storage) Delete(ctx context.Context, key uint64) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM queue WHERE id = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete queue entry: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrEntryNotFound
	}

	return nil
}

// Len returns the number of pending entries
func (s *Storage) Len(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM queue`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count queue entries: %w", err)
	}
	return n, nil
}
