package services

import (
	"fmt"

	"github.com/ersonp/qdrant-sweep/internal/domain/entities"
)

// Collection name patterns owned by a tenant. Every tenant gets exactly this
// pair; there is no wildcard or substring matching.
const (
	ProductsPattern      = "products_%s"
	ConversationsPattern = "conversations_%s"
)

// TenantCollections returns the collection names a tenant owns, in fixed
// pattern order.
func TenantCollections(tenantID string) []string {
	return []string{
		fmt.Sprintf(ProductsPattern, tenantID),
		fmt.Sprintf(ConversationsPattern, tenantID),
	}
}

// SelectForTenant returns the tenant's collections that actually exist,
// preserving pattern order. An unmatched pattern is silently omitted.
func SelectForTenant(tenantID string, collections []entities.Collection) []entities.Collection {
	byName := make(map[string]entities.Collection, len(collections))
	for _, col := range collections {
		byName[col.Name] = col
	}

	selected := make([]entities.Collection, 0, 2)
	for _, name := range TenantCollections(tenantID) {
		if col, ok := byName[name]; ok {
			selected = append(selected, col)
		}
	}

	return selected
}

// SelectAll returns the full collection set unchanged.
func SelectAll(collections []entities.Collection) []entities.Collection {
	return collections
}
