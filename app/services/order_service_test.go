package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/chronoluxe/app/models"
	"github.com/shashiranjanraj/chronoluxe/app/requests"
	"github.com/shashiranjanraj/chronoluxe/app/services"
	"github.com/shashiranjanraj/chronoluxe/app/store"
	"github.com/shashiranjanraj/chronoluxe/pkg/apperr"
)

type orderFixture struct {
	store    *store.Store
	users    *services.UserService
	orders   *services.OrderService
	customer models.User
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()

	st := store.New()
	users := services.NewUserService(st)

	customer, err := users.Register(requests.RegisterUser{
		Email:    "jane@example.com",
		Password: "secret",
		Name:     "Jane Doe",
	})
	require.NoError(t, err)

	st.InsertProduct(models.Product{ID: "p-sub", Name: "Rolex Submariner", Brand: "Rolex", Price: 100, Stock: 5})
	st.InsertProduct(models.Product{ID: "p-sea", Name: "Omega Seamaster", Brand: "Omega", Price: 60, Stock: 1})

	return &orderFixture{
		store:    st,
		users:    users,
		orders:   services.NewOrderService(st),
		customer: customer,
	}
}

func (f *orderFixture) place(t *testing.T, items ...requests.OrderItem) models.Order {
	t.Helper()
	order, err := f.orders.Place(requests.CreateOrder{
		UserID:          f.customer.ID,
		Items:           items,
		ShippingAddress: requests.ShippingAddress{Address: "1 Rue de la Paix", City: "Paris"},
	})
	require.NoError(t, err)
	return order
}

func (f *orderFixture) stock(t *testing.T, productID string) int {
	t.Helper()
	p, ok := f.store.FindProductByID(productID)
	require.True(t, ok)
	return p.Stock
}

// ─── Placement ────────────────────────────────────────────────────────────

func TestPlaceOrder(t *testing.T) {
	f := newOrderFixture(t)

	order := f.place(t, requests.OrderItem{ProductID: "p-sub", Quantity: 1})

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, f.customer.ID, order.UserID)
	assert.Equal(t, models.OrderPending, order.Status)
	assert.Equal(t, models.PaymentPending, order.PaymentStatus)
	assert.Equal(t, "card", order.PaymentMethod)
	assert.Equal(t, "USD", order.Currency)
	assert.Equal(t, 100.0, order.TotalAmount)

	require.Len(t, order.Items, 1)
	assert.Equal(t, "Rolex Submariner", order.Items[0].ProductName)
	assert.Equal(t, 100.0, order.Items[0].Price)

	assert.Equal(t, 4, f.stock(t, "p-sub"))
}

func TestPlaceOrderMultipleItemsTotalsSubtotals(t *testing.T) {
	f := newOrderFixture(t)

	order := f.place(t,
		requests.OrderItem{ProductID: "p-sub", Quantity: 2},
		requests.OrderItem{ProductID: "p-sea", Quantity: 1},
	)

	assert.Equal(t, 260.0, order.TotalAmount)
	assert.Equal(t, 3, f.stock(t, "p-sub"))
	assert.Equal(t, 0, f.stock(t, "p-sea"))
}

func TestPlaceOrderValidation(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.orders.Place(requests.CreateOrder{})

	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Details)
}

func TestPlaceOrderUnknownUser(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.orders.Place(requests.CreateOrder{
		UserID:          "ghost",
		Items:           []requests.OrderItem{{ProductID: "p-sub", Quantity: 1}},
		ShippingAddress: requests.ShippingAddress{Address: "somewhere"},
	})

	var nf *apperr.NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestPlaceOrderInsufficientStock(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.orders.Place(requests.CreateOrder{
		UserID:          f.customer.ID,
		Items:           []requests.OrderItem{{ProductID: "p-sea", Quantity: 2}},
		ShippingAddress: requests.ShippingAddress{Address: "somewhere"},
	})

	var short *apperr.InsufficientStockError
	require.ErrorAs(t, err, &short)
	assert.Equal(t, "Omega Seamaster", short.ProductName)
	assert.Equal(t, 1, short.Available)

	assert.Equal(t, 1, f.stock(t, "p-sea"), "failed placement must not change stock")
}

func TestPlaceOrderRollsBackEarlierLines(t *testing.T) {
	f := newOrderFixture(t)

	// First line would succeed; the second falls short. Nothing may stick.
	_, err := f.orders.Place(requests.CreateOrder{
		UserID: f.customer.ID,
		Items: []requests.OrderItem{
			{ProductID: "p-sub", Quantity: 3},
			{ProductID: "p-sea", Quantity: 5},
		},
		ShippingAddress: requests.ShippingAddress{Address: "somewhere"},
	})
	require.Error(t, err)

	assert.Equal(t, 5, f.stock(t, "p-sub"))
	assert.Equal(t, 1, f.stock(t, "p-sea"))

	_, _, orders := f.store.Counts()
	assert.Zero(t, orders, "no order record on failed placement")
}

func TestPlacedOrderKeepsSnapshotPrice(t *testing.T) {
	f := newOrderFixture(t)

	order := f.place(t, requests.OrderItem{ProductID: "p-sub", Quantity: 1})

	_, err := f.store.MutateProduct("p-sub", func(p *models.Product) error {
		p.Price = 9999
		return nil
	})
	require.NoError(t, err)

	got, err := f.orders.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, got.Items[0].Price)
	assert.Equal(t, 100.0, got.TotalAmount)
}

// ─── Lifecycle ────────────────────────────────────────────────────────────

func TestUpdateStatusLegalTransition(t *testing.T) {
	f := newOrderFixture(t)
	order := f.place(t, requests.OrderItem{ProductID: "p-sub", Quantity: 1})

	updated, err := f.orders.UpdateStatus(order.ID, requests.UpdateOrderStatus{Status: "confirmed"})
	require.NoError(t, err)
	assert.Equal(t, models.OrderConfirmed, updated.Status)
}

func TestUpdateStatusIllegalTransition(t *testing.T) {
	f := newOrderFixture(t)
	order := f.place(t, requests.OrderItem{ProductID: "p-sub", Quantity: 1})

	_, err := f.orders.UpdateStatus(order.ID, requests.UpdateOrderStatus{Status: "delivered"})

	var bad *apperr.InvalidStateError
	require.ErrorAs(t, err, &bad)
	assert.Equal(t, "Cannot transition from pending to delivered", bad.Error())

	got, _ := f.orders.Get(order.ID)
	assert.Equal(t, models.OrderPending, got.Status)
}

func TestUpdateStatusUnknownValueFailsValidation(t *testing.T) {
	f := newOrderFixture(t)
	order := f.place(t, requests.OrderItem{ProductID: "p-sub", Quantity: 1})

	_, err := f.orders.UpdateStatus(order.ID, requests.UpdateOrderStatus{Status: "teleported"})

	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestPaymentPaidAutoConfirmsPendingOrder(t *testing.T) {
	f := newOrderFixture(t)
	order := f.place(t, requests.OrderItem{ProductID: "p-sub", Quantity: 1})

	updated, err := f.orders.UpdatePayment(order.ID, requests.UpdatePaymentStatus{PaymentStatus: "paid"})
	require.NoError(t, err)

	assert.Equal(t, models.PaymentPaid, updated.PaymentStatus)
	assert.Equal(t, models.OrderConfirmed, updated.Status)
}

func TestPaymentPaidLeavesShippedOrderAlone(t *testing.T) {
	f := newOrderFixture(t)
	order := f.place(t, requests.OrderItem{ProductID: "p-sub", Quantity: 1})

	_, err := f.orders.UpdateStatus(order.ID, requests.UpdateOrderStatus{Status: "confirmed"})
	require.NoError(t, err)
	_, err = f.orders.UpdateStatus(order.ID, requests.UpdateOrderStatus{Status: "shipped"})
	require.NoError(t, err)

	updated, err := f.orders.UpdatePayment(order.ID, requests.UpdatePaymentStatus{PaymentStatus: "paid"})
	require.NoError(t, err)

	assert.Equal(t, models.PaymentPaid, updated.PaymentStatus)
	assert.Equal(t, models.OrderShipped, updated.Status)
}

// ─── Cancellation ─────────────────────────────────────────────────────────

func TestCancelRestoresStock(t *testing.T) {
	f := newOrderFixture(t)
	order := f.place(t, requests.OrderItem{ProductID: "p-sub", Quantity: 2})
	require.Equal(t, 3, f.stock(t, "p-sub"))

	cancelled, err := f.orders.Cancel(order.ID, f.customer.ID)
	require.NoError(t, err)

	assert.Equal(t, models.OrderCancelled, cancelled.Status)
	assert.Equal(t, 5, f.stock(t, "p-sub"))
}

func TestCancelByNonOwner(t *testing.T) {
	f := newOrderFixture(t)
	order := f.place(t, requests.OrderItem{ProductID: "p-sub", Quantity: 1})

	_, err := f.orders.Cancel(order.ID, "someone-else")

	var denied *apperr.AuthorizationError
	require.ErrorAs(t, err, &denied)

	got, _ := f.orders.Get(order.ID)
	assert.Equal(t, models.OrderPending, got.Status)
	assert.Equal(t, 4, f.stock(t, "p-sub"), "denied cancel must not restore stock")
}

func TestCancelShippedOrder(t *testing.T) {
	f := newOrderFixture(t)
	order := f.place(t, requests.OrderItem{ProductID: "p-sub", Quantity: 1})

	_, err := f.orders.UpdateStatus(order.ID, requests.UpdateOrderStatus{Status: "confirmed"})
	require.NoError(t, err)
	_, err = f.orders.UpdateStatus(order.ID, requests.UpdateOrderStatus{Status: "shipped"})
	require.NoError(t, err)

	_, err = f.orders.Cancel(order.ID, f.customer.ID)

	var bad *apperr.InvalidStateError
	require.ErrorAs(t, err, &bad)
	assert.Equal(t, "Order cannot be cancelled at this stage", bad.Error())
	assert.Equal(t, 4, f.stock(t, "p-sub"))
}

func TestCancelSkipsDeletedProduct(t *testing.T) {
	f := newOrderFixture(t)
	order := f.place(t,
		requests.OrderItem{ProductID: "p-sub", Quantity: 1},
		requests.OrderItem{ProductID: "p-sea", Quantity: 1},
	)

	_, ok := f.store.DeleteProduct("p-sea")
	require.True(t, ok)

	cancelled, err := f.orders.Cancel(order.ID, f.customer.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderCancelled, cancelled.Status)

	assert.Equal(t, 5, f.stock(t, "p-sub"), "surviving product is restored")
}

// ─── Listing ──────────────────────────────────────────────────────────────

func TestListFiltersAndOrdersNewestFirst(t *testing.T) {
	f := newOrderFixture(t)
	first := f.place(t, requests.OrderItem{ProductID: "p-sub", Quantity: 1})
	second := f.place(t, requests.OrderItem{ProductID: "p-sub", Quantity: 1})

	_, err := f.orders.UpdateStatus(second.ID, requests.UpdateOrderStatus{Status: "confirmed"})
	require.NoError(t, err)

	all := f.orders.List(services.OrderFilters{})
	require.Len(t, all, 2)

	confirmed := f.orders.List(services.OrderFilters{Status: "confirmed"})
	require.Len(t, confirmed, 1)
	assert.Equal(t, second.ID, confirmed[0].ID)

	pending := f.orders.List(services.OrderFilters{Status: "pending"})
	require.Len(t, pending, 1)
	assert.Equal(t, first.ID, pending[0].ID)
}

// ─── Statistics ───────────────────────────────────────────────────────────

func TestStatistics(t *testing.T) {
	f := newOrderFixture(t)

	paid := f.place(t, requests.OrderItem{ProductID: "p-sub", Quantity: 1})
	f.place(t, requests.OrderItem{ProductID: "p-sub", Quantity: 2})
	toCancel := f.place(t, requests.OrderItem{ProductID: "p-sea", Quantity: 1})

	_, err := f.orders.UpdatePayment(paid.ID, requests.UpdatePaymentStatus{PaymentStatus: "paid"})
	require.NoError(t, err)
	_, err = f.orders.Cancel(toCancel.ID, f.customer.ID)
	require.NoError(t, err)

	stats := f.orders.GetStatistics()

	assert.Equal(t, 3, stats.TotalOrders)
	assert.Equal(t, 100.0, stats.TotalRevenue, "revenue counts paid orders only")

	assert.Equal(t, 1, stats.OrdersByStatus[models.OrderPending])
	assert.Equal(t, 1, stats.OrdersByStatus[models.OrderConfirmed])
	assert.Equal(t, 1, stats.OrdersByStatus[models.OrderCancelled])
	assert.Equal(t, 0, stats.OrdersByStatus[models.OrderShipped])
	assert.Equal(t, 0, stats.OrdersByStatus[models.OrderDelivered])

	assert.Equal(t, 2, stats.OrdersByPaymentStatus[models.PaymentPending])
	assert.Equal(t, 1, stats.OrdersByPaymentStatus[models.PaymentPaid])
	assert.Equal(t, 0, stats.OrdersByPaymentStatus[models.PaymentFailed])
	assert.Equal(t, 0, stats.OrdersByPaymentStatus[models.PaymentRefunded])
}

func TestStatisticsIsIdempotent(t *testing.T) {
	f := newOrderFixture(t)
	f.place(t, requests.OrderItem{ProductID: "p-sub", Quantity: 1})

	first := f.orders.GetStatistics()
	second := f.orders.GetStatistics()
	assert.Equal(t, first, second)
}

func TestStatisticsEmptyStore(t *testing.T) {
	orders := services.NewOrderService(store.New())

	stats := orders.GetStatistics()
	assert.Zero(t, stats.TotalOrders)
	assert.Zero(t, stats.TotalRevenue)
	assert.Len(t, stats.OrdersByStatus, len(models.OrderStatuses))
	assert.Len(t, stats.OrdersByPaymentStatus, len(models.PaymentStatuses))
}
