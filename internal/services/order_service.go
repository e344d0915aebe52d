package services

import (
	"encoding/json"
	"fmt"
	"log"

	"sareeta/internal/models"
	"sareeta/internal/repositories"
	"sareeta/pkg/rabbitmq"
)

// OrderService handles order submission and history.
type OrderService struct {
	orderRepo repositories.OrderRepository
	userRepo  repositories.UserRepository
	cartRepo  repositories.CartRepository
	mqClient  *rabbitmq.Client
}

// NewOrderService creates a new OrderService. mqClient may be nil, in which
// case event publishing is skipped.
func NewOrderService(orderRepo repositories.OrderRepository, userRepo repositories.UserRepository, cartRepo repositories.CartRepository, mqClient *rabbitmq.Client) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		userRepo:  userRepo,
		cartRepo:  cartRepo,
		mqClient:  mqClient,
	}
}

// Submit creates an order by copying the user's current cart items and
// total verbatim, persists it and publishes an order.submitted event.
// The source cart is left unchanged; submitting twice without touching the
// cart yields two identical orders. That mirrors the system this was ported
// from and is documented as an open question in DESIGN.md.
func (s *OrderService) Submit(username string) (*models.Order, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	cart, err := s.cartRepo.GetByID(user.CartID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart for user %s: %w", username, err)
	}

	order := models.OrderFromCart(user, cart)
	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order for user %s: %w", username, err)
	}

	s.publishSubmitted(order)
	return order, nil
}

// History returns every order previously submitted by the user, oldest
// first.
func (s *OrderService) History(username string) ([]models.Order, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	return s.orderRepo.GetByUserID(user.ID)
}

// publishSubmitted emits the order.submitted event. Publishing is
// best-effort: the order is already persisted, so a broker failure is
// logged and the request still succeeds.
func (s *OrderService) publishSubmitted(order *models.Order) {
	if s.mqClient == nil {
		return
	}

	event := map[string]interface{}{
		"order_id": order.ID,
		"user_id":  order.UserID,
		"total":    order.Total,
		"items":    len(order.Items),
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal order event for order %s: %v", order.ID, err)
		return
	}
	if err := s.mqClient.Publish("order.submitted", body); err != nil {
		log.Printf("Warning: failed to publish order.submitted for order %s: %v", order.ID, err)
	}
}
