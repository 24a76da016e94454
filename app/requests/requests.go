// Package requests defines the typed payload for every write operation and
// validates it with go-playground/validator. Validation is a pure check on
// the decoded struct (no store access) and collects every violated rule,
// not just the first.
package requests

import (
	"fmt"
	"reflect"
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/shashiranjanraj/chronoluxe/pkg/apperr"
)

// ─── Users ────────────────────────────────────────────────────────────────

type RegisterUser struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name"     validate:"required,min=2"`
	Role     string `json:"role"     validate:"omitempty,oneof=customer admin"`
}

type LoginUser struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfile carries the only two mutable profile fields. Pointers
// distinguish "absent" from "set to empty".
type UpdateProfile struct {
	Name  *string `json:"name"  validate:"omitempty,min=2"`
	Email *string `json:"email" validate:"omitempty,email"`
}

// ─── Products ─────────────────────────────────────────────────────────────

type CreateProduct struct {
	Name           string            `json:"name"           validate:"required,min=2"`
	Brand          string            `json:"brand"          validate:"required,min=2"`
	Description    string            `json:"description"`
	Price          float64           `json:"price"          validate:"required,gt=0"`
	Currency       string            `json:"currency"`
	Image          string            `json:"image"`
	Category       string            `json:"category"`
	Stock          int               `json:"stock"          validate:"gte=0"`
	Specifications map[string]string `json:"specifications"`
	Featured       bool              `json:"featured"`
}

type UpdateProduct struct {
	Name           *string            `json:"name"           validate:"omitempty,min=2"`
	Brand          *string            `json:"brand"          validate:"omitempty,min=2"`
	Description    *string            `json:"description"`
	Price          *float64           `json:"price"          validate:"omitempty,gt=0"`
	Currency       *string            `json:"currency"`
	Image          *string            `json:"image"`
	Category       *string            `json:"category"`
	Stock          *int               `json:"stock"          validate:"omitempty,gte=0"`
	Specifications *map[string]string `json:"specifications"`
	Featured       *bool              `json:"featured"`
}

// ─── Orders ───────────────────────────────────────────────────────────────

type OrderItem struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity"  validate:"required,min=1"`
}

type ShippingAddress struct {
	Address    string `json:"address" validate:"required"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type CreateOrder struct {
	UserID          string          `json:"userId"          validate:"required"`
	Items           []OrderItem     `json:"items"           validate:"required,min=1,dive"`
	ShippingAddress ShippingAddress `json:"shippingAddress" validate:"required"`
	PaymentMethod   string          `json:"paymentMethod"`
	Notes           string          `json:"notes"`
}

type UpdateOrderStatus struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed shipped delivered cancelled"`
}

type UpdatePaymentStatus struct {
	PaymentStatus string `json:"paymentStatus" validate:"required,oneof=pending paid failed refunded"`
}

type CancelOrder struct {
	UserID string `json:"userId" validate:"required"`
}

// ─── Validation ───────────────────────────────────────────────────────────

var v = newValidator()

func newValidator() *validatorv10.Validate {
	val := validatorv10.New()

	// Report fields under their json names so error messages match the wire
	// format the client actually sent.
	val.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return val
}

// Validate checks ALL rules on the struct and returns a ValidationError
// listing every violation, or nil when the payload is well-formed.
func Validate(payload interface{}) error {
	err := v.Struct(payload)
	if err == nil {
		return nil
	}

	ve, ok := err.(validatorv10.ValidationErrors)
	if !ok {
		return apperr.NewValidation([]string{err.Error()})
	}

	details := make([]string, 0, len(ve))
	for _, fe := range ve {
		details = append(details, message(fe))
	}
	return apperr.NewValidation(details)
}

// message renders one field error as a human-readable rule violation,
// e.g. `items[0].quantity must be at least 1`.
func message(fe validatorv10.FieldError) string {
	field := fieldPath(fe)

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must not exceed %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must not be greater than %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(strings.Fields(fe.Param()), ", "))
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}

// fieldPath strips the root struct name from the error namespace:
// "CreateOrder.items[0].quantity" → "items[0].quantity".
func fieldPath(fe validatorv10.FieldError) string {
	ns := fe.Namespace()
	if _, rest, found := strings.Cut(ns, "."); found {
		return rest
	}
	return fe.Field()
}
