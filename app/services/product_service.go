package services

import (
	"strings"

	"github.com/google/uuid"

	"github.com/shashiranjanraj/chronoluxe/app/models"
	"github.com/shashiranjanraj/chronoluxe/app/requests"
	"github.com/shashiranjanraj/chronoluxe/app/store"
	"github.com/shashiranjanraj/chronoluxe/config"
	"github.com/shashiranjanraj/chronoluxe/pkg/apperr"
	"github.com/shashiranjanraj/chronoluxe/pkg/collection"
)

// ProductFilters narrows catalogue listings. Pointer fields are applied
// only when set, matching the optional query parameters.
type ProductFilters struct {
	Brand    string
	MinPrice *float64
	MaxPrice *float64
	Featured *bool
	InStock  *bool
}

// ProductService handles catalogue reads and the admin CRUD surface.
type ProductService struct {
	store *store.Store
}

func NewProductService(st *store.Store) *ProductService {
	return &ProductService{store: st}
}

// List returns products matching the filters, in catalogue order.
func (s *ProductService) List(f ProductFilters) []models.Product {
	products := s.store.ListProducts()

	if f.Brand != "" {
		needle := strings.ToLower(f.Brand)
		products = collection.Filter(products, func(p models.Product) bool {
			return strings.Contains(strings.ToLower(p.Brand), needle)
		})
	}
	if f.MinPrice != nil {
		products = collection.Filter(products, func(p models.Product) bool {
			return p.Price >= *f.MinPrice
		})
	}
	if f.MaxPrice != nil {
		products = collection.Filter(products, func(p models.Product) bool {
			return p.Price <= *f.MaxPrice
		})
	}
	if f.Featured != nil {
		products = collection.Filter(products, func(p models.Product) bool {
			return p.Featured == *f.Featured
		})
	}
	if f.InStock != nil && *f.InStock {
		products = collection.Filter(products, models.Product.InStock)
	}

	return products
}

// Featured returns the featured subset of the catalogue.
func (s *ProductService) Featured() []models.Product {
	return collection.Filter(s.store.ListProducts(), func(p models.Product) bool {
		return p.Featured
	})
}

// Search matches query against name, brand, and description,
// case-insensitively. An empty query returns the whole catalogue.
func (s *ProductService) Search(query string) []models.Product {
	if query == "" {
		return s.store.ListProducts()
	}

	needle := strings.ToLower(query)
	return collection.Filter(s.store.ListProducts(), func(p models.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Brand), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle)
	})
}

// Get returns a single product by id.
func (s *ProductService) Get(productID string) (models.Product, error) {
	p, ok := s.store.FindProductByID(productID)
	if !ok {
		return models.Product{}, apperr.NotFound("Product")
	}
	return p, nil
}

// Create validates and inserts a new catalogue entry.
func (s *ProductService) Create(req requests.CreateProduct) (models.Product, error) {
	if err := requests.Validate(req); err != nil {
		return models.Product{}, err
	}

	currency := req.Currency
	if currency == "" {
		currency = config.DefaultCurrency()
	}
	category := req.Category
	if category == "" {
		category = "watches"
	}

	product := models.Product{
		ID:             uuid.NewString(),
		Name:           req.Name,
		Brand:          req.Brand,
		Description:    req.Description,
		Price:          req.Price,
		Currency:       currency,
		Image:          req.Image,
		Category:       category,
		Stock:          req.Stock,
		Specifications: req.Specifications,
		Featured:       req.Featured,
	}

	return s.store.InsertProduct(product), nil
}

// Update applies a partial admin edit to an existing product.
func (s *ProductService) Update(productID string, req requests.UpdateProduct) (models.Product, error) {
	if err := requests.Validate(req); err != nil {
		return models.Product{}, err
	}

	return s.store.MutateProduct(productID, func(p *models.Product) error {
		if req.Name != nil {
			p.Name = *req.Name
		}
		if req.Brand != nil {
			p.Brand = *req.Brand
		}
		if req.Description != nil {
			p.Description = *req.Description
		}
		if req.Price != nil {
			p.Price = *req.Price
		}
		if req.Currency != nil {
			p.Currency = *req.Currency
		}
		if req.Image != nil {
			p.Image = *req.Image
		}
		if req.Category != nil {
			p.Category = *req.Category
		}
		if req.Stock != nil {
			p.Stock = *req.Stock
		}
		if req.Specifications != nil {
			p.Specifications = *req.Specifications
		}
		if req.Featured != nil {
			p.Featured = *req.Featured
		}
		return nil
	})
}

// Delete removes a product from the catalogue (hard delete).
func (s *ProductService) Delete(productID string) error {
	if _, ok := s.store.DeleteProduct(productID); !ok {
		return apperr.NotFound("Product")
	}
	return nil
}
