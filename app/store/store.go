// Package store is the in-memory record store for users, products, and
// orders. A Store instance is constructed explicitly and injected into the
// services that need it; there is no package-level singleton, so tests can
// run against isolated instances.
//
// Every read hands out a copy; callers never hold a live alias into the
// store. All mutations go through Insert*/Mutate*/Delete* under the store
// lock, and the check-then-act sequences that guard the stock invariant
// (ReserveStock, RestoreStock, MutateOrder) each run atomically under the
// write lock.
package store

import (
	"strings"
	"sync"
	"time"

	"github.com/shashiranjanraj/chronoluxe/app/models"
	"github.com/shashiranjanraj/chronoluxe/pkg/apperr"
)

// ItemRequest is one requested order line: which product, how many units.
type ItemRequest struct {
	ProductID string
	Quantity  int
}

// Store holds the canonical copies of all three entity collections.
type Store struct {
	mu sync.RWMutex

	users      map[string]*models.User
	emailIndex map[string]string // lowercased email → user id
	products   map[string]*models.Product
	orders     map[string]*models.Order

	// insertion order, for stable listings
	userIDs    []string
	productIDs []string
	orderIDs   []string

	nowFunc func() time.Time
}

// New returns an empty Store.
func New() *Store {
	s := &Store{nowFunc: time.Now}
	s.init()
	return s
}

func (s *Store) init() {
	s.users = make(map[string]*models.User)
	s.emailIndex = make(map[string]string)
	s.products = make(map[string]*models.Product)
	s.orders = make(map[string]*models.Order)
	s.userIDs = nil
	s.productIDs = nil
	s.orderIDs = nil
}

// Reset drops every record. Kept for test isolation and the original
// API's reset semantics; prefer fresh Store instances in tests.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.init()
}

// Counts returns the number of users, products, and orders.
func (s *Store) Counts() (users, products, orders int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users), len(s.products), len(s.orders)
}

// ─── Users ────────────────────────────────────────────────────────────────

// InsertUser stores a new user. Email uniqueness is enforced here, under the
// lock, so two concurrent registrations cannot both win.
func (s *Store) InsertUser(u models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(u.Email)
	if _, taken := s.emailIndex[key]; taken {
		return models.User{}, &apperr.ConflictError{Reason: "User with this email already exists"}
	}

	now := s.nowFunc()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now

	s.users[u.ID] = &u
	s.emailIndex[key] = u.ID
	s.userIDs = append(s.userIDs, u.ID)
	return u, nil
}

// FindUserByID returns a copy of the user, if present.
func (s *Store) FindUserByID(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return models.User{}, false
	}
	return *u, true
}

// FindUserByEmail looks a user up by email, case-insensitively.
func (s *Store) FindUserByEmail(email string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.emailIndex[strings.ToLower(email)]
	if !ok {
		return models.User{}, false
	}
	return *s.users[id], true
}

// ListUsers returns copies of all users in insertion order.
func (s *Store) ListUsers() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, 0, len(s.userIDs))
	for _, id := range s.userIDs {
		out = append(out, *s.users[id])
	}
	return out
}

// MutateUser applies fn to the current persisted user under the write lock.
// The record is updated only when fn returns nil; a changed email is checked
// against the uniqueness index before commit.
func (s *Store) MutateUser(id string, fn func(*models.User) error) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.users[id]
	if !ok {
		return models.User{}, apperr.NotFound("User")
	}

	updated := *current
	if err := fn(&updated); err != nil {
		return models.User{}, err
	}

	oldKey := strings.ToLower(current.Email)
	newKey := strings.ToLower(updated.Email)
	if newKey != oldKey {
		if owner, taken := s.emailIndex[newKey]; taken && owner != id {
			return models.User{}, &apperr.ConflictError{Reason: "User with this email already exists"}
		}
		delete(s.emailIndex, oldKey)
		s.emailIndex[newKey] = id
	}

	updated.UpdatedAt = s.nowFunc()
	s.users[id] = &updated
	return updated, nil
}

// ─── Products ─────────────────────────────────────────────────────────────

// InsertProduct stores a new product and returns the stored copy.
func (s *Store) InsertProduct(p models.Product) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.nowFunc()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	stored := cloneProduct(&p)
	s.products[p.ID] = &stored
	s.productIDs = append(s.productIDs, p.ID)
	return cloneProduct(&stored)
}

// FindProductByID returns a copy of the product, if present.
func (s *Store) FindProductByID(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return models.Product{}, false
	}
	return cloneProduct(p), true
}

// ListProducts returns copies of all products in insertion order.
func (s *Store) ListProducts() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, 0, len(s.productIDs))
	for _, id := range s.productIDs {
		out = append(out, cloneProduct(s.products[id]))
	}
	return out
}

// MutateProduct applies fn to the current persisted product under the write
// lock, committing only when fn returns nil.
func (s *Store) MutateProduct(id string, fn func(*models.Product) error) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.products[id]
	if !ok {
		return models.Product{}, apperr.NotFound("Product")
	}

	updated := cloneProduct(current)
	if err := fn(&updated); err != nil {
		return models.Product{}, err
	}

	updated.UpdatedAt = s.nowFunc()
	s.products[id] = &updated
	return cloneProduct(&updated), nil
}

// DeleteProduct removes a product (hard delete) and returns the removed copy.
func (s *Store) DeleteProduct(id string) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return models.Product{}, false
	}

	delete(s.products, id)
	for i, pid := range s.productIDs {
		if pid == id {
			s.productIDs = append(s.productIDs[:i], s.productIDs[i+1:]...)
			break
		}
	}
	return cloneProduct(p), true
}

// ─── Orders ───────────────────────────────────────────────────────────────

// InsertOrder stores a new order and returns the stored copy.
func (s *Store) InsertOrder(o models.Order) models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.nowFunc()
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	o.UpdatedAt = now

	stored := cloneOrder(&o)
	s.orders[o.ID] = &stored
	s.orderIDs = append(s.orderIDs, o.ID)
	return cloneOrder(&stored)
}

// FindOrderByID returns a copy of the order, if present.
func (s *Store) FindOrderByID(id string) (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		return models.Order{}, false
	}
	return cloneOrder(o), true
}

// ListOrders returns copies of all orders in insertion order.
func (s *Store) ListOrders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Order, 0, len(s.orderIDs))
	for _, id := range s.orderIDs {
		out = append(out, cloneOrder(s.orders[id]))
	}
	return out
}

// FindOrdersByUserID returns copies of the user's orders in insertion order.
func (s *Store) FindOrdersByUserID(userID string) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Order
	for _, id := range s.orderIDs {
		if s.orders[id].UserID == userID {
			out = append(out, cloneOrder(s.orders[id]))
		}
	}
	return out
}

// MutateOrder applies fn to the current persisted order under the write
// lock. Status and payment updates go through here so legality checks always
// run against fresh state, never a stale copy, and coupled writes (payment
// plus auto-confirm) land atomically.
func (s *Store) MutateOrder(id string, fn func(*models.Order) error) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.orders[id]
	if !ok {
		return models.Order{}, apperr.NotFound("Order")
	}

	updated := cloneOrder(current)
	if err := fn(&updated); err != nil {
		return models.Order{}, err
	}

	// UserID, items, and total are immutable after creation.
	updated.UserID = current.UserID
	updated.Items = cloneItems(current.Items)
	updated.TotalAmount = current.TotalAmount

	updated.UpdatedAt = s.nowFunc()
	s.orders[id] = &updated
	return cloneOrder(&updated), nil
}

// ─── Stock reservation ────────────────────────────────────────────────────

// ReserveStock resolves every requested line in submission order, snapshots
// the product name and unit price, and decrements stock as it goes, so a
// later line referencing the same product sees the already-reduced count.
//
// The whole pass runs under one write lock. If any line misses or falls
// short of stock, decrements already applied for earlier lines are restored
// in reverse before the error returns: all-or-nothing from the caller's
// perspective.
func (s *Store) ReserveStock(lines []ItemRequest) ([]models.OrderItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.nowFunc()
	items := make([]models.OrderItem, 0, len(lines))

	for _, line := range lines {
		p, ok := s.products[line.ProductID]
		if !ok {
			s.releaseLocked(items)
			return nil, apperr.NotFoundID("Product", line.ProductID)
		}
		if p.Stock < line.Quantity {
			s.releaseLocked(items)
			return nil, &apperr.InsufficientStockError{ProductName: p.Name, Available: p.Stock}
		}

		p.Stock -= line.Quantity
		p.UpdatedAt = now

		items = append(items, models.OrderItem{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    line.Quantity,
			Price:       p.Price,
			Subtotal:    p.Price * float64(line.Quantity),
		})
	}

	return items, nil
}

// RestoreStock increments stock for every item of a cancelled order.
// Products deleted since the order was placed are skipped, not fatal.
// Returns the number of lines actually restored.
func (s *Store) RestoreStock(items []models.OrderItem) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.nowFunc()
	restored := 0
	for _, item := range items {
		p, ok := s.products[item.ProductID]
		if !ok {
			continue
		}
		p.Stock += item.Quantity
		p.UpdatedAt = now
		restored++
	}
	return restored
}

// releaseLocked undoes reservations in reverse order. Caller holds mu.
func (s *Store) releaseLocked(items []models.OrderItem) {
	for i := len(items) - 1; i >= 0; i-- {
		if p, ok := s.products[items[i].ProductID]; ok {
			p.Stock += items[i].Quantity
		}
	}
}

// ─── Copy helpers ─────────────────────────────────────────────────────────

func cloneProduct(p *models.Product) models.Product {
	out := *p
	if p.Specifications != nil {
		out.Specifications = make(map[string]string, len(p.Specifications))
		for k, v := range p.Specifications {
			out.Specifications[k] = v
		}
	}
	return out
}

func cloneOrder(o *models.Order) models.Order {
	out := *o
	out.Items = cloneItems(o.Items)
	return out
}

func cloneItems(items []models.OrderItem) []models.OrderItem {
	if items == nil {
		return nil
	}
	out := make([]models.OrderItem, len(items))
	copy(out, items)
	return out
}
