// Package entities defines the core domain types.
package entities

// Collection describes a Qdrant collection at the time of inventory.
// Points is best-effort: 0 when the count could not be retrieved.
type Collection struct {
	Name   string
	Points uint64
}
