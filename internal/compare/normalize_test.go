package compare_test

import (
	"errors"
	"testing"

	"github.com/desertthunder/unitx/internal/compare"
	"github.com/desertthunder/unitx/internal/models"
	"github.com/desertthunder/unitx/internal/shared"
	th "github.com/desertthunder/unitx/internal/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Run("valid entries", func(t *testing.T) {
		testCases := []struct {
			name          string
			raw           models.RawEntry
			wantName      string
			wantPrice     float64
			wantAmount    float64
			wantQuantity  int
			wantUnitPrice float64
		}{
			{
				name:          "plain values",
				raw:           models.RawEntry{ID: 3, Name: "Rice", Price: "10", Amount: "2", Quantity: "1"},
				wantName:      "Rice",
				wantPrice:     10,
				wantAmount:    2,
				wantQuantity:  1,
				wantUnitPrice: 5,
			},
			{
				name:          "blank quantity defaults to one",
				raw:           models.RawEntry{ID: 3, Name: "Rice", Price: "18", Amount: "2"},
				wantName:      "Rice",
				wantPrice:     18,
				wantAmount:    2,
				wantQuantity:  1,
				wantUnitPrice: 9,
			},
			{
				name:          "blank name defaults to product label",
				raw:           models.RawEntry{ID: 7, Name: "   ", Price: "12", Amount: "1", Quantity: "3"},
				wantName:      "Product 7",
				wantPrice:     12,
				wantAmount:    1,
				wantQuantity:  3,
				wantUnitPrice: 4,
			},
			{
				name:          "name is trimmed",
				raw:           models.RawEntry{ID: 1, Name: "  Beans  ", Price: "4", Amount: "1"},
				wantName:      "Beans",
				wantPrice:     4,
				wantAmount:    1,
				wantQuantity:  1,
				wantUnitPrice: 4,
			},
			{
				name:          "comma decimal separator",
				raw:           models.RawEntry{ID: 1, Name: "Milk", Price: "7,5", Amount: "1,5", Quantity: "2"},
				wantName:      "Milk",
				wantPrice:     7.5,
				wantAmount:    1.5,
				wantQuantity:  2,
				wantUnitPrice: 2.5,
			},
			{
				name:          "whole number quantity with fraction digits",
				raw:           models.RawEntry{ID: 1, Name: "Soap", Price: "6", Amount: "0.5", Quantity: "2.0"},
				wantName:      "Soap",
				wantPrice:     6,
				wantAmount:    0.5,
				wantQuantity:  2,
				wantUnitPrice: 6,
			},
			{
				name:          "surrounding whitespace in numbers",
				raw:           models.RawEntry{ID: 1, Name: "Oil", Price: " 9 ", Amount: " 0.9 ", Quantity: " 1 "},
				wantName:      "Oil",
				wantPrice:     9,
				wantAmount:    0.9,
				wantQuantity:  1,
				wantUnitPrice: 10,
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				entry, err := compare.Normalize(tc.raw, nil)
				require.NoError(t, err)

				assert.Equal(t, tc.raw.ID, entry.ID)
				assert.Equal(t, tc.wantName, entry.Name)
				assert.InDelta(t, tc.wantPrice, entry.Price, 1e-9)
				assert.InDelta(t, tc.wantAmount, entry.Amount, 1e-9)
				assert.Equal(t, tc.wantQuantity, entry.Quantity)
				assert.InDelta(t, tc.wantUnitPrice, entry.UnitPrice, 1e-9)
				assert.Zero(t, entry.Difference)
			})
		}
	})

	t.Run("invalid entries", func(t *testing.T) {
		testCases := []struct {
			name      string
			raw       models.RawEntry
			wantField string
		}{
			{name: "zero price", raw: th.NewRaw("", "0", "1", "1"), wantField: compare.FieldPrice},
			{name: "negative price", raw: th.NewRaw("", "-3", "1", "1"), wantField: compare.FieldPrice},
			{name: "missing price", raw: th.NewRaw("", "", "1", "1"), wantField: compare.FieldPrice},
			{name: "non-numeric price", raw: th.NewRaw("", "ten", "1", "1"), wantField: compare.FieldPrice},
			{name: "NaN price", raw: th.NewRaw("", "NaN", "1", "1"), wantField: compare.FieldPrice},
			{name: "infinite price", raw: th.NewRaw("", "Inf", "1", "1"), wantField: compare.FieldPrice},
			{name: "missing amount", raw: th.NewRaw("", "10", "", "1"), wantField: compare.FieldAmount},
			{name: "zero amount", raw: th.NewRaw("", "10", "0", "1"), wantField: compare.FieldAmount},
			{name: "negative amount", raw: th.NewRaw("", "10", "-1", "1"), wantField: compare.FieldAmount},
			{name: "zero quantity", raw: th.NewRaw("", "10", "1", "0"), wantField: compare.FieldQuantity},
			{name: "negative quantity", raw: th.NewRaw("", "10", "1", "-2"), wantField: compare.FieldQuantity},
			{name: "fractional quantity", raw: th.NewRaw("", "10", "1", "1.5"), wantField: compare.FieldQuantity},
			{name: "non-numeric quantity", raw: th.NewRaw("", "10", "1", "two"), wantField: compare.FieldQuantity},
			{name: "price above the limit", raw: th.NewRaw("", "1e300", "1", "1"), wantField: compare.FieldPrice},
			{name: "amount above the limit", raw: th.NewRaw("", "1", "1e300", "1"), wantField: compare.FieldAmount},
			{name: "amount below the limit", raw: th.NewRaw("", "1", "0.0000000001", "1"), wantField: compare.FieldAmount},
			{name: "huge quantity", raw: th.NewRaw("", "10", "1", "99999999999"), wantField: compare.FieldQuantity},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				seq := compare.NewSequence()

				_, err := compare.Normalize(tc.raw, seq)
				require.Error(t, err)
				assert.ErrorIs(t, err, shared.ErrInvalidEntry)

				var fieldErr *compare.FieldError
				require.ErrorAs(t, err, &fieldErr)
				assert.Equal(t, tc.wantField, fieldErr.Field)

				assert.Equal(t, 1, seq.Peek(), "rejected entries must not consume an id")
			})
		}
	})

	t.Run("assigns the next id when unassigned", func(t *testing.T) {
		seq := compare.NewSequence()
		seq.Next()

		entry, err := compare.Normalize(th.NewRaw("", "5", "1", ""), seq)
		require.NoError(t, err)

		assert.Equal(t, 2, entry.ID)
		assert.Equal(t, "Product 2", entry.Name)
		assert.Equal(t, 3, seq.Peek())
	})

	t.Run("keeps an assigned id", func(t *testing.T) {
		seq := compare.NewSequence()

		entry, err := compare.Normalize(models.RawEntry{ID: 4, Price: "5", Amount: "1"}, seq)
		require.NoError(t, err)

		assert.Equal(t, 4, entry.ID)
		assert.Equal(t, 1, seq.Peek())
	})

	t.Run("unassigned id without a source", func(t *testing.T) {
		_, err := compare.Normalize(th.NewRaw("", "5", "1", "1"), nil)

		var fieldErr *compare.FieldError
		require.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, compare.FieldID, fieldErr.Field)
	})

	t.Run("negative id", func(t *testing.T) {
		_, err := compare.Normalize(models.RawEntry{ID: -1, Price: "5", Amount: "1"}, compare.NewSequence())
		assert.True(t, errors.Is(err, shared.ErrInvalidEntry))
	})

	t.Run("error message names the field", func(t *testing.T) {
		_, err := compare.Normalize(models.RawEntry{ID: 1, Price: "abc", Amount: "1"}, nil)
		require.Error(t, err)
		assert.Equal(t, `invalid entry: price "abc" is not a number`, err.Error())
	})
}
