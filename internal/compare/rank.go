package compare

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/desertthunder/unitx/internal/models"
	"github.com/desertthunder/unitx/internal/shared"
)

// Rank returns a new slice with entries ordered by ascending unit price and every Difference recomputed.
//
// Ties keep their input order. The cheapest entry is first and the most expensive, the baseline every other entry's
// savings are measured against, is last. Collections of fewer than two entries have no savings.
// The input slice is not modified.
func Rank(entries []models.Entry) ([]models.Entry, error) {
	for _, e := range entries {
		if err := checkInvariants(e); err != nil {
			return nil, err
		}
	}

	ranked := slices.Clone(entries)
	if len(ranked) < 2 {
		for i := range ranked {
			ranked[i].Difference = 0
		}
		return ranked, nil
	}

	slices.SortStableFunc(ranked, func(a, b models.Entry) int {
		return cmp.Compare(a.UnitPrice, b.UnitPrice)
	})

	baseline := ranked[len(ranked)-1].UnitPrice
	for i := range ranked {
		d := savings(ranked[i], baseline)
		if !isFinite(d) {
			return nil, fmt.Errorf("%w: entry %d has unbounded savings", shared.ErrInvariantViolation, ranked[i].ID)
		}
		ranked[i].Difference = d
	}

	return ranked, nil
}

// savings prices e's volume at the gap between the baseline and e's own unit price.
// Entries at the baseline unit price have exactly zero savings.
func savings(e models.Entry, baseline float64) float64 {
	if gap := baseline - e.UnitPrice; gap > 0 {
		return e.Volume() * gap
	}
	return 0
}

func checkInvariants(e models.Entry) error {
	if e.Quantity < 1 || !isPositiveFinite(e.Amount) || !isPositiveFinite(e.Volume()) {
		return fmt.Errorf("%w: entry %d has no measurable volume (amount %v × quantity %d)",
			shared.ErrInvariantViolation, e.ID, e.Amount, e.Quantity)
	}
	if !isFinite(e.UnitPrice) || e.UnitPrice < 0 {
		return fmt.Errorf("%w: entry %d has unit price %v", shared.ErrInvariantViolation, e.ID, e.UnitPrice)
	}
	return nil
}
