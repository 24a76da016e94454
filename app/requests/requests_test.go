package requests_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/chronoluxe/app/requests"
	"github.com/shashiranjanraj/chronoluxe/pkg/apperr"
)

func violations(t *testing.T, payload interface{}) []string {
	t.Helper()

	err := requests.Validate(payload)
	require.Error(t, err)

	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)
	return ve.Details
}

func TestValidateCollectsEveryViolation(t *testing.T) {
	details := violations(t, requests.RegisterUser{
		Email:    "not-an-email",
		Password: "abc",
		Name:     "",
	})

	require.Len(t, details, 3)
	assert.Contains(t, details, "email must be a valid email address")
	assert.Contains(t, details, "password must be at least 6 characters")
	assert.Contains(t, details, "name is required")
}

func TestValidatePassesWellFormedPayload(t *testing.T) {
	err := requests.Validate(requests.RegisterUser{
		Email:    "jane@example.com",
		Password: "secret",
		Name:     "Jane",
	})
	assert.NoError(t, err)
}

func TestValidateReportsNestedFieldPaths(t *testing.T) {
	details := violations(t, requests.CreateOrder{
		UserID: "u1",
		Items: []requests.OrderItem{
			{ProductID: "p1", Quantity: 1},
			{ProductID: "", Quantity: 0},
		},
		ShippingAddress: requests.ShippingAddress{Address: "somewhere"},
	})

	require.Len(t, details, 2)
	assert.Contains(t, details, "items[1].productId is required")
	assert.Contains(t, details, "items[1].quantity is required")
}

func TestValidateOrderNeedsAtLeastOneItem(t *testing.T) {
	details := violations(t, requests.CreateOrder{
		UserID:          "u1",
		Items:           []requests.OrderItem{},
		ShippingAddress: requests.ShippingAddress{Address: "somewhere"},
	})
	assert.Contains(t, details, "items must be at least 1")

	details = violations(t, requests.CreateOrder{
		UserID:          "u1",
		ShippingAddress: requests.ShippingAddress{Address: "somewhere"},
	})
	assert.Contains(t, details, "items is required")
}

func TestValidateStatusOneOf(t *testing.T) {
	assert.NoError(t, requests.Validate(requests.UpdateOrderStatus{Status: "shipped"}))

	details := violations(t, requests.UpdateOrderStatus{Status: "teleported"})
	require.Len(t, details, 1)
	assert.Equal(t, "status must be one of: pending, confirmed, shipped, delivered, cancelled", details[0])
}

func TestValidateRoleOneOf(t *testing.T) {
	err := requests.Validate(requests.RegisterUser{
		Email:    "jane@example.com",
		Password: "secret",
		Name:     "Jane",
		Role:     "superuser",
	})
	require.Error(t, err)
}

func TestValidateOptionalPointerFields(t *testing.T) {
	// Absent pointers are fine; present ones are checked.
	assert.NoError(t, requests.Validate(requests.UpdateProfile{}))

	bad := "x"
	details := violations(t, requests.UpdateProfile{Name: &bad})
	require.Len(t, details, 1)
	assert.Equal(t, "name must be at least 2 characters", details[0])
}
