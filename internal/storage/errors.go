package storage

import "errors"

// Common queue storage errors
var (
	// ErrEntryNotFound indicates that queue entry was not found
	ErrEntryNotFound = errors.New("queue entry not found")

	// ErrQueueClosed indicates that storage is closed
	ErrQueueClosed = errors.New("queue storage is closed")
)
