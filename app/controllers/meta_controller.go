package controllers

import (
	"net/http"
	"time"

	"github.com/shashiranjanraj/chronoluxe/app/store"
	"github.com/shashiranjanraj/chronoluxe/pkg/response"
)

// MetaController serves the health check and the API description page.
type MetaController struct {
	store     *store.Store
	startedAt time.Time
}

func NewMetaController(st *store.Store) *MetaController {
	return &MetaController{store: st, startedAt: time.Now()}
}

func (c *MetaController) Health(w http.ResponseWriter, r *http.Request) {
	users, products, orders := c.store.Counts()

	response.OK(w, map[string]interface{}{
		"status": "healthy",
		"uptime": time.Since(c.startedAt).String(),
		"collections": map[string]int{
			"users":    users,
			"products": products,
			"orders":   orders,
		},
	})
}

func (c *MetaController) Index(w http.ResponseWriter, r *http.Request) {
	response.OKMessage(w, map[string]interface{}{
		"name":    "Chrono Luxe API",
		"version": "1.0.0",
		"endpoints": map[string][]string{
			"users": {
				"POST /api/users/register",
				"POST /api/users/login",
				"GET /api/users",
				"GET /api/users/me",
				"GET /api/users/profile/{id}",
				"PUT /api/users/profile/{id}",
			},
			"products": {
				"GET /api/products",
				"GET /api/products/featured",
				"GET /api/products/search?q=",
				"GET /api/products/{id}",
				"POST /api/products",
				"PUT /api/products/{id}",
				"DELETE /api/products/{id}",
			},
			"orders": {
				"POST /api/orders",
				"GET /api/orders",
				"GET /api/orders/statistics",
				"GET /api/orders/user/{userId}",
				"GET /api/orders/{id}",
				"PUT /api/orders/{id}/status",
				"PUT /api/orders/{id}/payment",
				"POST /api/orders/{id}/cancel",
			},
			"meta": {
				"GET /health",
				"GET /metrics",
			},
		},
	}, "Welcome to the Chrono Luxe online shop API")
}
