package compare

import (
	"fmt"
	"math"
	"strings"

	"github.com/desertthunder/unitx/internal/models"
	"github.com/desertthunder/unitx/internal/shared"
	"github.com/shopspring/decimal"
)

// Form fields reported by [FieldError].
const (
	FieldID       = "id"
	FieldName     = "name"
	FieldPrice    = "price"
	FieldAmount   = "amount"
	FieldQuantity = "quantity"
)

// Limits on price and package size. Within them every unit price and saving stays finite.
var (
	maxMagnitude = decimal.New(1, 12)
	minAmount    = decimal.New(1, -9)
)

// FieldError reports a rejected form field. It unwraps to [shared.ErrInvalidEntry].
type FieldError struct {
	Field  string
	Value  string
	Reason string
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%v: %s %s", shared.ErrInvalidEntry, e.Field, e.Reason)
	}
	return fmt.Sprintf("%v: %s %q %s", shared.ErrInvalidEntry, e.Field, e.Value, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return shared.ErrInvalidEntry
}

// Normalize validates a provisional entry and derives its unit price.
//
// When raw.ID is zero the identity is drawn from ids, after every field has been accepted.
func Normalize(raw models.RawEntry, ids IDSource) (models.Entry, error) {
	price, err := parsePositive(FieldPrice, raw.Price)
	if err != nil {
		return models.Entry{}, err
	}

	if price.GreaterThan(maxMagnitude) {
		return models.Entry{}, &FieldError{Field: FieldPrice, Value: raw.Price, Reason: "is out of range"}
	}

	amount, err := parsePositive(FieldAmount, raw.Amount)
	if err != nil {
		return models.Entry{}, err
	}
	if amount.GreaterThan(maxMagnitude) || amount.LessThan(minAmount) {
		return models.Entry{}, &FieldError{Field: FieldAmount, Value: raw.Amount, Reason: "is out of range"}
	}

	quantity, err := parseQuantity(raw.Quantity)
	if err != nil {
		return models.Entry{}, err
	}

	entry := models.Entry{
		Price:    price.InexactFloat64(),
		Amount:   amount.InexactFloat64(),
		Quantity: quantity,
	}

	if !isPositiveFinite(entry.Price) {
		return models.Entry{}, &FieldError{Field: FieldPrice, Value: raw.Price, Reason: "is out of range"}
	}
	if volume := entry.Volume(); !isPositiveFinite(entry.Amount) || !isPositiveFinite(volume) {
		return models.Entry{}, &FieldError{Field: FieldAmount, Value: raw.Amount, Reason: "is out of range"}
	}

	entry.UnitPrice = entry.Price / entry.Volume()
	if !isFinite(entry.UnitPrice) {
		return models.Entry{}, &FieldError{Field: FieldPrice, Value: raw.Price, Reason: "gives an unbounded unit price"}
	}

	switch {
	case raw.ID > 0:
		entry.ID = raw.ID
	case raw.ID < 0:
		return models.Entry{}, &FieldError{Field: FieldID, Value: fmt.Sprint(raw.ID), Reason: "must be positive"}
	case ids == nil:
		return models.Entry{}, &FieldError{Field: FieldID, Reason: "is not assigned"}
	default:
		entry.ID = ids.Next()
	}

	entry.Name = strings.TrimSpace(raw.Name)
	if entry.Name == "" {
		entry.Name = DefaultName(entry.ID)
	}

	return entry, nil
}

// DefaultName is the label given to entries submitted without a name.
func DefaultName(id int) string {
	return fmt.Sprintf("Product %d", id)
}

func parsePositive(field, value string) (decimal.Decimal, error) {
	d, err := parseNumber(field, value)
	if err != nil {
		return decimal.Zero, err
	}
	if !d.IsPositive() {
		return decimal.Zero, &FieldError{Field: field, Value: value, Reason: "must be greater than zero"}
	}
	return d, nil
}

func parseQuantity(value string) (int, error) {
	if strings.TrimSpace(value) == "" {
		return 1, nil
	}

	d, err := parsePositive(FieldQuantity, value)
	if err != nil {
		return 0, err
	}
	if !d.IsInteger() {
		return 0, &FieldError{Field: FieldQuantity, Value: value, Reason: "must be a whole number"}
	}
	if d.GreaterThan(decimal.NewFromInt(math.MaxInt32)) {
		return 0, &FieldError{Field: FieldQuantity, Value: value, Reason: "is out of range"}
	}
	return int(d.IntPart()), nil
}

// parseNumber accepts plain decimal notation. A lone comma is read as the decimal separator.
func parseNumber(field, value string) (decimal.Decimal, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return decimal.Zero, &FieldError{Field: field, Reason: "is required"}
	}
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &FieldError{Field: field, Value: value, Reason: "is not a number"}
	}
	return d, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func isPositiveFinite(f float64) bool {
	return isFinite(f) && f > 0
}
