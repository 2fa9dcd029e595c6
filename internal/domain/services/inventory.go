package services

import (
	"context"
	"fmt"

	"github.com/ersonp/qdrant-sweep/internal/domain/entities"
	"github.com/ersonp/qdrant-sweep/internal/domain/ports"
)

// Inventory lists collections with their point counts.
type Inventory struct {
	admin ports.VectorAdmin
}

// NewInventory creates a new inventory service.
func NewInventory(admin ports.VectorAdmin) *Inventory {
	return &Inventory{admin: admin}
}

// List returns every collection with its current point count. Counts are
// best-effort: a failed count for one collection records 0 and never aborts
// the listing of the others. The result is freshly computed on every call.
func (i *Inventory) List(ctx context.Context) ([]entities.Collection, error) {
	names, err := i.admin.ListCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing collections: %w", err)
	}

	collections := make([]entities.Collection, 0, len(names))
	for _, name := range names {
		count, err := i.admin.CollectionPointCount(ctx, name)
		if err != nil {
			count = 0
		}
		collections = append(collections, entities.Collection{Name: name, Points: count})
	}

	return collections, nil
}
