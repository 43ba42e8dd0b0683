// package models defines the data model for unit price comparisons
package models

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Entry is one committed product offer.
//
// UnitPrice and Difference are derived values: UnitPrice is set by normalization and Difference by ranking.
type Entry struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Amount     float64 `json:"amount"`   // Package size in the shared unit of measure
	Quantity   int     `json:"quantity"` // Number of identical packages sold at Price
	UnitPrice  float64 `json:"unit_price"`
	Difference float64 `json:"difference"` // Savings versus the most expensive entry
}

// Volume returns the total measure purchased at Price (amount × quantity).
func (e Entry) Volume() float64 {
	return e.Amount * float64(e.Quantity)
}

// RawEntry is the provisional, editable state of an offer as entered in a form.
type RawEntry struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Amount   string `json:"amount"`
	Quantity string `json:"quantity"`
}

// ToRaw converts a committed entry back into editable form state.
func (e Entry) ToRaw() RawEntry {
	return RawEntry{
		ID:       e.ID,
		Name:     e.Name,
		Price:    decimal.NewFromFloat(e.Price).String(),
		Amount:   decimal.NewFromFloat(e.Amount).String(),
		Quantity: strconv.Itoa(e.Quantity),
	}
}
