package integration

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/qdrant-sweep/internal/domain/mocks"
	"github.com/ersonp/qdrant-sweep/internal/domain/services"
)

func TestAdmin_ListAndCount(t *testing.T) {
	seedCollection(t, "qsweep_inttest_other", 3)
	defer dropTestCollections(context.Background())

	names, err := testAdmin.ListCollections(t.Context())
	require.NoError(t, err)
	assert.Contains(t, names, "qsweep_inttest_other")

	count, err := testAdmin.CollectionPointCount(t.Context(), "qsweep_inttest_other")
	require.NoError(t, err)
	assert.Equal(t, uint64(3), count)
}

func TestAdmin_CountUnknownCollectionFails(t *testing.T) {
	_, err := testAdmin.CollectionPointCount(t.Context(), "qsweep_inttest_missing")
	assert.Error(t, err)
}

func TestAdmin_ClearCollection(t *testing.T) {
	seedCollection(t, "qsweep_inttest_other", 5)
	defer dropTestCollections(context.Background())

	require.NoError(t, testAdmin.ClearCollection(t.Context(), "qsweep_inttest_other"))

	// Collection survives, points are gone.
	names, err := testAdmin.ListCollections(t.Context())
	require.NoError(t, err)
	assert.Contains(t, names, "qsweep_inttest_other")

	count, err := testAdmin.CollectionPointCount(t.Context(), "qsweep_inttest_other")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), count)
}

func TestAdmin_DeleteCollection(t *testing.T) {
	createCollection(t, "qsweep_inttest_other")

	require.NoError(t, testAdmin.DeleteCollection(t.Context(), "qsweep_inttest_other"))

	names, err := testAdmin.ListCollections(t.Context())
	require.NoError(t, err)
	assert.NotContains(t, names, "qsweep_inttest_other")
}

func TestTenantSweep_EndToEnd(t *testing.T) {
	seedCollection(t, "products_inttest", 4)
	seedCollection(t, "conversations_inttest", 2)
	seedCollection(t, "qsweep_inttest_other", 1)
	defer dropTestCollections(context.Background())

	collections, err := services.NewInventory(testAdmin).List(t.Context())
	require.NoError(t, err)

	targets := services.SelectForTenant("inttest", collections)
	require.Len(t, targets, 2)

	executor := services.NewExecutor(testAdmin, &mocks.Confirmer{Answer: true})
	executor.SetOutput(&bytes.Buffer{})

	success, err := executor.Execute(t.Context(), services.ActionClear, targets, false)
	require.NoError(t, err)
	assert.Equal(t, 2, success)

	// Tenant collections are emptied, the unrelated one is untouched.
	for _, name := range []string{"products_inttest", "conversations_inttest"} {
		count, err := testAdmin.CollectionPointCount(t.Context(), name)
		require.NoError(t, err)
		assert.Equal(t, uint64(0), count)
	}

	count, err := testAdmin.CollectionPointCount(t.Context(), "qsweep_inttest_other")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)
}
