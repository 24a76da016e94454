// Package response writes the JSON envelope every endpoint returns:
//
//	{success, data?, error?, details?, message?, count?}
//
// and maps the apperr taxonomy to transport status codes.
package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shashiranjanraj/chronoluxe/pkg/apperr"
)

// Envelope is the uniform response body.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Details interface{} `json:"details,omitempty"`
	Message string      `json:"message,omitempty"`
	Count   *int        `json:"count,omitempty"`
}

func write(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

// OK sends a 200 with data.
func OK(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusOK, Envelope{Success: true, Data: data})
}

// OKMessage sends a 200 with data and a human-readable message.
func OKMessage(w http.ResponseWriter, data interface{}, message string) {
	write(w, http.StatusOK, Envelope{Success: true, Data: data, Message: message})
}

// Created sends a 201 with data and a message.
func Created(w http.ResponseWriter, data interface{}, message string) {
	write(w, http.StatusCreated, Envelope{Success: true, Data: data, Message: message})
}

// List sends a 200 with data and a count.
func List(w http.ResponseWriter, data interface{}, count int) {
	write(w, http.StatusOK, Envelope{Success: true, Data: data, Count: &count})
}

// Fail sends a failure envelope with the given status.
func Fail(w http.ResponseWriter, status int, errMsg string) {
	write(w, status, Envelope{Success: false, Error: errMsg})
}

// BadRequest sends a 400 failure.
func BadRequest(w http.ResponseWriter, errMsg string) {
	Fail(w, http.StatusBadRequest, errMsg)
}

// FromError maps a service error to its transport representation:
// validation and business-rule failures → 400 (with details for
// validation), authentication → 401, ownership mismatch → 403,
// lookup miss → 404, anything else → a generic 500 with no internal detail.
func FromError(w http.ResponseWriter, err error) {
	var ve *apperr.ValidationError
	if errors.As(err, &ve) {
		write(w, http.StatusBadRequest, Envelope{
			Success: false,
			Error:   "Validation failed",
			Details: ve.Details,
		})
		return
	}

	var nf *apperr.NotFoundError
	if errors.As(err, &nf) {
		Fail(w, http.StatusNotFound, nf.Error())
		return
	}

	var is *apperr.InsufficientStockError
	if errors.As(err, &is) {
		Fail(w, http.StatusBadRequest, is.Error())
		return
	}

	var st *apperr.InvalidStateError
	if errors.As(err, &st) {
		Fail(w, http.StatusBadRequest, st.Error())
		return
	}

	var an *apperr.AuthenticationError
	if errors.As(err, &an) {
		Fail(w, http.StatusUnauthorized, an.Error())
		return
	}

	var az *apperr.AuthorizationError
	if errors.As(err, &az) {
		Fail(w, http.StatusForbidden, az.Error())
		return
	}

	var cf *apperr.ConflictError
	if errors.As(err, &cf) {
		Fail(w, http.StatusBadRequest, cf.Error())
		return
	}

	Fail(w, http.StatusInternalServerError, "Internal server error")
}
