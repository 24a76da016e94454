package models

import "time"

// Product is a catalogue entry. Stock is the count of sellable units; it is
// decremented by order placement and incremented by cancellation, and must
// never go negative.
type Product struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Brand          string            `json:"brand"`
	Description    string            `json:"description"`
	Price          float64           `json:"price"`
	Currency       string            `json:"currency"`
	Image          string            `json:"image"`
	Category       string            `json:"category"`
	Stock          int               `json:"stock"`
	Specifications map[string]string `json:"specifications"`
	Featured       bool              `json:"featured"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

// InStock reports whether at least one unit is sellable.
func (p Product) InStock() bool { return p.Stock > 0 }
