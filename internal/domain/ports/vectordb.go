// Package ports defines interfaces for external service communication.
package ports

import "context"

// VectorAdmin handles administrative operations against the vector database.
// Data-plane operations (search, upsert) are deliberately absent: this tool
// only inventories and destroys.
type VectorAdmin interface {
	// ListCollections returns the names of all collections.
	ListCollections(ctx context.Context) ([]string, error)

	// CollectionPointCount returns the current number of points in a collection.
	CollectionPointCount(ctx context.Context, name string) (uint64, error)

	// ClearCollection removes every point from a collection, keeping the
	// collection itself.
	ClearCollection(ctx context.Context, name string) error

	// DeleteCollection removes the collection entirely.
	DeleteCollection(ctx context.Context, name string) error

	// Close closes the underlying connection.
	Close() error
}
