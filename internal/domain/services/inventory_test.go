package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/qdrant-sweep/internal/domain/entities"
	"github.com/ersonp/qdrant-sweep/internal/domain/mocks"
)

func TestInventoryList(t *testing.T) {
	admin := &mocks.VectorAdmin{
		Names:  []string{"products_abc", "notes"},
		Counts: map[string]uint64{"products_abc": 10, "notes": 3},
	}

	collections, err := NewInventory(admin).List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []entities.Collection{
		{Name: "products_abc", Points: 10},
		{Name: "notes", Points: 3},
	}, collections)
}

func TestInventoryList_CountFailureRecordsZero(t *testing.T) {
	admin := &mocks.VectorAdmin{
		Names:     []string{"a", "b", "c"},
		Counts:    map[string]uint64{"a": 1, "c": 7},
		CountErrs: map[string]error{"b": errors.New("unavailable")},
	}

	collections, err := NewInventory(admin).List(context.Background())
	require.NoError(t, err)

	// One collection's metadata failure never aborts the listing.
	assert.Equal(t, []entities.Collection{
		{Name: "a", Points: 1},
		{Name: "b", Points: 0},
		{Name: "c", Points: 7},
	}, collections)
}

func TestInventoryList_Empty(t *testing.T) {
	collections, err := NewInventory(&mocks.VectorAdmin{}).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, collections)
}

func TestInventoryList_ListError(t *testing.T) {
	admin := &mocks.VectorAdmin{ListErr: errors.New("unreachable")}

	_, err := NewInventory(admin).List(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "listing collections")
}
