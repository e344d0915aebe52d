package repositories_test

import (
	"testing"

	"sareeta/internal/models"
	"sareeta/internal/repositories"

	"github.com/stretchr/testify/assert"
)

func TestMockUserRepository(t *testing.T) {
	repo := repositories.NewMockUserRepository()

	user := &models.User{Username: "alice", Password: "hashed"}
	assert.NoError(t, repo.Create(user))
	assert.NotEmpty(t, user.ID)

	byID, err := repo.GetByID(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	byName, err := repo.GetByUsername("alice")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	_, err = repo.GetByUsername("ghost")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	_, err = repo.GetByID("no-such-id")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	assert.NoError(t, repo.DeleteAll())
	_, err = repo.GetByUsername("alice")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestMockItemRepository(t *testing.T) {
	repo := repositories.NewMockItemRepository()

	first := &models.Item{Name: "widget", Price: 2.99}
	second := &models.Item{Name: "widget", Price: 1.99}
	third := &models.Item{Name: "gadget", Price: 5}
	assert.NoError(t, repo.Create(first))
	assert.NoError(t, repo.Create(second))
	assert.NoError(t, repo.Create(third))

	// GetAll preserves insertion order.
	all, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, third.ID, all[2].ID)

	// Exact-name match may return several items.
	widgets, err := repo.GetByName("widget")
	assert.NoError(t, err)
	assert.Len(t, widgets, 2)

	// Zero matches surface as ErrNotFound, not an empty list.
	_, err = repo.GetByName("doohickey")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	assert.NoError(t, repo.DeleteAll())
	all, err = repo.GetAll()
	assert.NoError(t, err)
	assert.Empty(t, all)
}

func TestMockCartRepository(t *testing.T) {
	repo := repositories.NewMockCartRepository()

	cart := &models.Cart{}
	assert.NoError(t, repo.Create(cart))
	assert.NotEmpty(t, cart.ID)

	cart.AddItem(&models.Item{ID: "item-1", Name: "widget", Price: 2.99})
	assert.NoError(t, repo.Save(cart))

	stored, err := repo.GetByID(cart.ID)
	assert.NoError(t, err)
	assert.Len(t, stored.Items, 1)
	assert.Equal(t, 2.99, stored.Total)

	// The returned cart must not share its item slice with the store.
	stored.Items[0].Price = 100
	again, err := repo.GetByID(cart.ID)
	assert.NoError(t, err)
	assert.Equal(t, 2.99, again.Items[0].Price)

	err = repo.Save(&models.Cart{ID: "no-such-cart"})
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	assert.NoError(t, repo.DeleteAll())
	_, err = repo.GetByID(cart.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestMockOrderRepository(t *testing.T) {
	repo := repositories.NewMockOrderRepository()

	first := &models.Order{UserID: "user-1", Total: 50}
	second := &models.Order{UserID: "user-1", Total: 20}
	other := &models.Order{UserID: "user-2", Total: 5}
	assert.NoError(t, repo.Create(first))
	assert.NoError(t, repo.Create(second))
	assert.NoError(t, repo.Create(other))

	orders, err := repo.GetByUserID("user-1")
	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	assert.Equal(t, first.ID, orders[0].ID)
	assert.Equal(t, second.ID, orders[1].ID)

	// A user with no orders gets an empty list.
	none, err := repo.GetByUserID("user-99")
	assert.NoError(t, err)
	assert.Empty(t, none)

	assert.NoError(t, repo.DeleteAll())
	orders, err = repo.GetByUserID("user-1")
	assert.NoError(t, err)
	assert.Empty(t, orders)
}
