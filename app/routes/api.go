// Package routes wires every HTTP endpoint to its controller.
package routes

import (
	"github.com/shashiranjanraj/chronoluxe/app/controllers"
	"github.com/shashiranjanraj/chronoluxe/app/services"
	"github.com/shashiranjanraj/chronoluxe/app/store"
	"github.com/shashiranjanraj/chronoluxe/pkg/metrics"
	"github.com/shashiranjanraj/chronoluxe/pkg/middleware"
	"github.com/shashiranjanraj/chronoluxe/pkg/router"
)

// Register mounts the full API surface on r.
func Register(r *router.Router, st *store.Store) {
	userService := services.NewUserService(st)
	productService := services.NewProductService(st)
	orderService := services.NewOrderService(st)

	userController := controllers.NewUserController(userService)
	productController := controllers.NewProductController(productService)
	orderController := controllers.NewOrderController(orderService)
	metaController := controllers.NewMetaController(st)

	r.Get("/", "meta.index", metaController.Index)
	r.Get("/health", "meta.health", metaController.Health)
	r.Get("/metrics", "meta.metrics", metrics.Handler())

	api := r.Group("/api")

	users := api.Group("/users")
	users.Post("/register", "users.register", userController.Register)
	users.Post("/login", "users.login", userController.Login)
	users.Get("/", "users.list", userController.List)
	users.Get("/me", "users.me", userController.Me, middleware.RequireAuth)
	users.Get("/profile/{id}", "users.profile", userController.GetProfile)
	users.Put("/profile/{id}", "users.update", userController.UpdateProfile)

	products := api.Group("/products")
	products.Get("/", "products.list", productController.List)
	products.Get("/featured", "products.featured", productController.Featured)
	products.Get("/search", "products.search", productController.Search)
	products.Get("/{id}", "products.show", productController.Get)
	products.Post("/", "products.create", productController.Create)
	products.Put("/{id}", "products.update", productController.Update)
	products.Delete("/{id}", "products.delete", productController.Delete)

	orders := api.Group("/orders")
	orders.Post("/", "orders.create", orderController.Create)
	orders.Get("/", "orders.list", orderController.List)
	orders.Get("/statistics", "orders.statistics", orderController.Statistics)
	orders.Get("/user/{userId}", "orders.by_user", orderController.ListByUser)
	orders.Get("/{id}", "orders.show", orderController.Get)
	orders.Put("/{id}/status", "orders.status", orderController.UpdateStatus)
	orders.Put("/{id}/payment", "orders.payment", orderController.UpdatePayment)
	orders.Post("/{id}/cancel", "orders.cancel", orderController.Cancel)
}
