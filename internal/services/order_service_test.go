package services_test

import (
	"testing"

	"sareeta/internal/models"
	"sareeta/internal/repositories"
	"sareeta/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func sampleUserWithCart() (*models.User, *models.Cart) {
	cart := &models.Cart{ID: "cart-1"}
	cart.AddItem(&models.Item{ID: "item-1", Name: "test item", Price: 20})
	cart.AddItem(&models.Item{ID: "item-2", Name: "test item2", Price: 30})
	user := &models.User{ID: "user-1", Username: "test", CartID: cart.ID}
	return user, cart
}

func TestOrderService_Submit(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockUsers := new(MockUserRepository)
	mockCarts := new(MockCartRepository)
	service := services.NewOrderService(mockOrders, mockUsers, mockCarts, nil)

	user, cart := sampleUserWithCart()
	mockUsers.On("GetByUsername", "test").Return(user, nil).Once()
	mockCarts.On("GetByID", "cart-1").Return(cart, nil).Once()
	mockOrders.On("Create", mock.AnythingOfType("*models.Order")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Order).ID = "order-1"
	}).Return(nil).Once()

	order, err := service.Submit("test")
	assert.NoError(t, err)
	assert.Equal(t, "order-1", order.ID)
	assert.Equal(t, "user-1", order.UserID)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, 50.0, order.Total)

	// Submission must not clear or otherwise mutate the source cart.
	assert.Len(t, cart.Items, 2)
	assert.Equal(t, 50.0, cart.Total)

	// No cart save happens on submit.
	mockCarts.AssertNotCalled(t, "Save", mock.Anything)
	mockOrders.AssertExpectations(t)
	mockUsers.AssertExpectations(t)
	mockCarts.AssertExpectations(t)
}

func TestOrderService_SubmitMissingUser(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockUsers := new(MockUserRepository)
	mockCarts := new(MockCartRepository)
	service := services.NewOrderService(mockOrders, mockUsers, mockCarts, nil)

	mockUsers.On("GetByUsername", "ghost").Return(nil, userNotFound("ghost")).Once()

	order, err := service.Submit("ghost")
	assert.Nil(t, order)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockOrders.AssertNotCalled(t, "Create", mock.Anything)
	mockUsers.AssertExpectations(t)
}

func TestOrderService_History(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockUsers := new(MockUserRepository)
	mockCarts := new(MockCartRepository)
	service := services.NewOrderService(mockOrders, mockUsers, mockCarts, nil)

	user, cart := sampleUserWithCart()
	snapshot := models.OrderFromCart(user, cart)
	snapshot.ID = "order-1"

	mockUsers.On("GetByUsername", "test").Return(user, nil).Once()
	mockOrders.On("GetByUserID", "user-1").Return([]models.Order{*snapshot}, nil).Once()

	orders, err := service.History("test")
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Len(t, orders[0].Items, 2)
	assert.Equal(t, 50.0, orders[0].Total)
	mockOrders.AssertExpectations(t)
	mockUsers.AssertExpectations(t)
}

func TestOrderService_HistoryMissingUser(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockUsers := new(MockUserRepository)
	mockCarts := new(MockCartRepository)
	service := services.NewOrderService(mockOrders, mockUsers, mockCarts, nil)

	mockUsers.On("GetByUsername", "ghost").Return(nil, userNotFound("ghost")).Once()

	orders, err := service.History("ghost")
	assert.Nil(t, orders)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockOrders.AssertNotCalled(t, "GetByUserID", mock.Anything)
	mockUsers.AssertExpectations(t)
}

func TestOrderService_HistoryEmpty(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockUsers := new(MockUserRepository)
	mockCarts := new(MockCartRepository)
	service := services.NewOrderService(mockOrders, mockUsers, mockCarts, nil)

	user, _ := sampleUserWithCart()
	mockUsers.On("GetByUsername", "test").Return(user, nil).Once()
	mockOrders.On("GetByUserID", "user-1").Return([]models.Order{}, nil).Once()

	// A user with no orders gets an empty list, not a NotFound.
	orders, err := service.History("test")
	assert.NoError(t, err)
	assert.Empty(t, orders)
	mockOrders.AssertExpectations(t)
}
