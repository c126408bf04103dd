package customer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fjod/go_bookstore/internal/domain"
)

func TestMemoryStore_CRUD(t *testing.T) {
	store := NewMemoryStore()

	created, err := store.Create(domain.Customer{Name: "John Doe", Email: "john@example.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.True(t, store.Exists(created.ID))

	got, err := store.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", got.Name)

	updated, err := store.Update(created.ID, domain.Customer{Name: "John D.", Email: "john@example.com"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "John D.", updated.Name)

	require.NoError(t, store.Delete(created.ID))
	assert.False(t, store.Exists(created.ID))
	_, err = store.Get(created.ID)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestMemoryStore_NotFound(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(42)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
	_, err = store.Update(42, domain.Customer{Name: "x", Email: "x@example.com"})
	assert.ErrorIs(t, err, ErrCustomerNotFound)
	assert.ErrorIs(t, store.Delete(42), ErrCustomerNotFound)
}

func TestMemoryStore_List(t *testing.T) {
	store := NewMemoryStore()
	_, err := store.Create(domain.Customer{Name: "A", Email: "a@example.com"})
	require.NoError(t, err)
	_, err = store.Create(domain.Customer{Name: "B", Email: "b@example.com"})
	require.NoError(t, err)

	all := store.List()
	require.Len(t, all, 2)
	assert.Less(t, all[0].ID, all[1].ID)
}
