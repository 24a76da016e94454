package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/chronoluxe/app/requests"
	"github.com/shashiranjanraj/chronoluxe/app/services"
	"github.com/shashiranjanraj/chronoluxe/pkg/bind"
	"github.com/shashiranjanraj/chronoluxe/pkg/response"
)

// ProductController exposes the catalogue read surface and the admin CRUD.
type ProductController struct {
	service *services.ProductService
}

func NewProductController(service *services.ProductService) *ProductController {
	return &ProductController{service: service}
}

func (c *ProductController) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := services.ProductFilters{
		Brand:    q.Get("brand"),
		MinPrice: floatParam(q.Get("minPrice")),
		MaxPrice: floatParam(q.Get("maxPrice")),
		Featured: boolParam(q.Get("featured")),
		InStock:  boolParam(q.Get("inStock")),
	}

	products := c.service.List(filters)
	response.List(w, products, len(products))
}

func (c *ProductController) Featured(w http.ResponseWriter, r *http.Request) {
	products := c.service.Featured()
	response.List(w, products, len(products))
}

func (c *ProductController) Search(w http.ResponseWriter, r *http.Request) {
	products := c.service.Search(r.URL.Query().Get("q"))
	response.List(w, products, len(products))
}

func (c *ProductController) Get(w http.ResponseWriter, r *http.Request) {
	product, err := c.service.Get(chi.URLParam(r, "id"))
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OK(w, product)
}

func (c *ProductController) Create(w http.ResponseWriter, r *http.Request) {
	var req requests.CreateProduct
	if err := bind.JSON(r, &req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	product, err := c.service.Create(req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Created(w, product, "Product created successfully")
}

func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	var req requests.UpdateProduct
	if err := bind.JSON(r, &req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	product, err := c.service.Update(chi.URLParam(r, "id"), req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OKMessage(w, product, "Product updated successfully")
}

func (c *ProductController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.service.Delete(chi.URLParam(r, "id")); err != nil {
		response.FromError(w, err)
		return
	}

	response.OKMessage(w, nil, "Product deleted successfully")
}

// floatParam parses an optional numeric query parameter; malformed values
// are treated as absent.
func floatParam(raw string) *float64 {
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &f
}

// boolParam parses an optional boolean query parameter ("true"/"false").
func boolParam(raw string) *bool {
	if raw == "" {
		return nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &b
}
