package services

import (
	"errors"

	"github.com/google/uuid"

	"github.com/shashiranjanraj/chronoluxe/app/models"
	"github.com/shashiranjanraj/chronoluxe/app/requests"
	"github.com/shashiranjanraj/chronoluxe/app/store"
	"github.com/shashiranjanraj/chronoluxe/config"
	"github.com/shashiranjanraj/chronoluxe/pkg/apperr"
	"github.com/shashiranjanraj/chronoluxe/pkg/collection"
	"github.com/shashiranjanraj/chronoluxe/pkg/logger"
	"github.com/shashiranjanraj/chronoluxe/pkg/metrics"
)

// OrderFilters narrows order listings by exact status match.
type OrderFilters struct {
	Status        string
	PaymentStatus string
}

// Statistics is the aggregate view over the order collection. Revenue counts
// paid orders only; both count maps carry every enum value, including zeros.
type Statistics struct {
	TotalOrders           int                          `json:"totalOrders"`
	TotalRevenue          float64                      `json:"totalRevenue"`
	OrdersByStatus        map[models.OrderStatus]int   `json:"ordersByStatus"`
	OrdersByPaymentStatus map[models.PaymentStatus]int `json:"ordersByPaymentStatus"`
}

// OrderService is the order placement engine plus the lifecycle,
// cancellation, and statistics operations.
type OrderService struct {
	store *store.Store
}

func NewOrderService(st *store.Store) *OrderService {
	return &OrderService{store: st}
}

// Place runs the full placement pipeline: structural validation, user
// existence, per-item stock reservation with price snapshotting, then order
// construction. Stock reservation is all-or-nothing: a failure on any line
// restores every decrement already applied for this request.
func (s *OrderService) Place(req requests.CreateOrder) (models.Order, error) {
	if err := requests.Validate(req); err != nil {
		metrics.PlacementsRejected.WithLabelValues("validation").Inc()
		return models.Order{}, err
	}

	if _, ok := s.store.FindUserByID(req.UserID); !ok {
		metrics.PlacementsRejected.WithLabelValues("user_not_found").Inc()
		return models.Order{}, apperr.NotFound("User")
	}

	lines := collection.Map(req.Items, func(item requests.OrderItem) store.ItemRequest {
		return store.ItemRequest{ProductID: item.ProductID, Quantity: item.Quantity}
	})

	items, err := s.store.ReserveStock(lines)
	if err != nil {
		metrics.PlacementsRejected.WithLabelValues(rejectReason(err)).Inc()
		return models.Order{}, err
	}

	total := collection.Reduce(items, 0.0, func(sum float64, item models.OrderItem) float64 {
		return sum + item.Subtotal
	})

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "card"
	}

	order := models.Order{
		ID:          uuid.NewString(),
		UserID:      req.UserID,
		Items:       items,
		TotalAmount: total,
		Currency:    config.DefaultCurrency(),
		Status:      models.OrderPending,
		ShippingAddress: models.Address{
			Address:    req.ShippingAddress.Address,
			City:       req.ShippingAddress.City,
			PostalCode: req.ShippingAddress.PostalCode,
			Country:    req.ShippingAddress.Country,
		},
		PaymentMethod: paymentMethod,
		PaymentStatus: models.PaymentPending,
		Notes:         req.Notes,
	}

	placed := s.store.InsertOrder(order)

	metrics.OrdersPlaced.Inc()
	logger.Info("order placed",
		"order_id", placed.ID,
		"user_id", placed.UserID,
		"items", len(placed.Items),
		"total", placed.TotalAmount,
	)
	return placed, nil
}

func rejectReason(err error) string {
	var nf *apperr.NotFoundError
	if errors.As(err, &nf) {
		return "product_not_found"
	}
	var is *apperr.InsufficientStockError
	if errors.As(err, &is) {
		return "insufficient_stock"
	}
	return "other"
}

// Get returns a single order by id.
func (s *OrderService) Get(orderID string) (models.Order, error) {
	order, ok := s.store.FindOrderByID(orderID)
	if !ok {
		return models.Order{}, apperr.NotFound("Order")
	}
	return order, nil
}

// ListByUser returns all orders placed by one user.
func (s *OrderService) ListByUser(userID string) []models.Order {
	return s.store.FindOrdersByUserID(userID)
}

// List returns orders matching the filters, newest first.
func (s *OrderService) List(f OrderFilters) []models.Order {
	orders := s.store.ListOrders()

	if f.Status != "" {
		orders = collection.Filter(orders, func(o models.Order) bool {
			return o.Status == models.OrderStatus(f.Status)
		})
	}
	if f.PaymentStatus != "" {
		orders = collection.Filter(orders, func(o models.Order) bool {
			return o.PaymentStatus == models.PaymentStatus(f.PaymentStatus)
		})
	}

	return collection.SortBy(orders, func(a, b models.Order) bool {
		return a.CreatedAt.After(b.CreatedAt)
	})
}

// UpdateStatus moves an order along the lifecycle graph. The legality check
// runs against the currently persisted status, under the store lock.
func (s *OrderService) UpdateStatus(orderID string, req requests.UpdateOrderStatus) (models.Order, error) {
	if err := requests.Validate(req); err != nil {
		return models.Order{}, err
	}

	target := models.OrderStatus(req.Status)
	return s.store.MutateOrder(orderID, func(o *models.Order) error {
		if !o.Status.CanTransitionTo(target) {
			return apperr.InvalidTransition(string(o.Status), string(target))
		}
		o.Status = target
		return nil
	})
}

// UpdatePayment sets the payment status. Marking a pending order as paid
// auto-confirms it in the same atomic write.
func (s *OrderService) UpdatePayment(orderID string, req requests.UpdatePaymentStatus) (models.Order, error) {
	if err := requests.Validate(req); err != nil {
		return models.Order{}, err
	}

	target := models.PaymentStatus(req.PaymentStatus)
	return s.store.MutateOrder(orderID, func(o *models.Order) error {
		o.PaymentStatus = target
		if target == models.PaymentPaid && o.Status == models.OrderPending {
			o.Status = models.OrderConfirmed
		}
		return nil
	})
}

// Cancel cancels an order on behalf of its owner and restores the stock
// decremented at placement time. Products deleted since placement are
// skipped. Only pending and confirmed orders can be cancelled.
func (s *OrderService) Cancel(orderID, requesterUserID string) (models.Order, error) {
	cancelled, err := s.store.MutateOrder(orderID, func(o *models.Order) error {
		if o.UserID != requesterUserID {
			return &apperr.AuthorizationError{Reason: "Unauthorized to cancel this order"}
		}
		if !o.Status.Cancellable() {
			return &apperr.InvalidStateError{Reason: "Order cannot be cancelled at this stage"}
		}
		o.Status = models.OrderCancelled
		return nil
	})
	if err != nil {
		return models.Order{}, err
	}

	restored := s.store.RestoreStock(cancelled.Items)

	metrics.OrdersCancelled.Inc()
	logger.Info("order cancelled",
		"order_id", cancelled.ID,
		"user_id", cancelled.UserID,
		"lines_restored", restored,
	)
	return cancelled, nil
}

// GetStatistics derives counts and revenue from the order collection.
// Pure read; calling it twice with no intervening mutation yields
// identical results.
func (s *OrderService) GetStatistics() Statistics {
	orders := s.store.ListOrders()

	stats := Statistics{
		TotalOrders:           len(orders),
		OrdersByStatus:        make(map[models.OrderStatus]int, len(models.OrderStatuses)),
		OrdersByPaymentStatus: make(map[models.PaymentStatus]int, len(models.PaymentStatuses)),
	}

	for _, status := range models.OrderStatuses {
		stats.OrdersByStatus[status] = 0
	}
	for _, status := range models.PaymentStatuses {
		stats.OrdersByPaymentStatus[status] = 0
	}

	for _, o := range orders {
		stats.OrdersByStatus[o.Status]++
		stats.OrdersByPaymentStatus[o.PaymentStatus]++
	}

	paid := collection.Filter(orders, func(o models.Order) bool {
		return o.PaymentStatus == models.PaymentPaid
	})
	stats.TotalRevenue = collection.Sum(paid, func(o models.Order) float64 {
		return o.TotalAmount
	})

	return stats
}
