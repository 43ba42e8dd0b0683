package compare

import "github.com/desertthunder/unitx/internal/models"

// Summary holds the facts a host derives from a ranked collection.
//
// Cheapest and MostExpensive are nil until there are at least two entries to compare.
type Summary struct {
	Count         int
	Tied          bool          // Every entry has the same unit price
	Cheapest      *models.Entry // First ranked entry
	MostExpensive *models.Entry // Last ranked entry, the savings baseline
	Savings       float64       // Cheapest entry's difference
}

// Summarize derives a [Summary] from the output of [Rank].
func Summarize(ranked []models.Entry) Summary {
	s := Summary{Count: len(ranked)}
	if !s.Comparable() {
		return s
	}

	s.Tied = true
	for _, e := range ranked {
		if e.Difference != 0 {
			s.Tied = false
			break
		}
	}

	cheapest, highest := ranked[0], ranked[len(ranked)-1]
	s.Cheapest = &cheapest
	s.MostExpensive = &highest
	s.Savings = cheapest.Difference
	return s
}

// Comparable reports whether there are enough entries for a comparison.
func (s Summary) Comparable() bool {
	return s.Count >= 2
}

// IsCheapest reports whether e should be highlighted as the best offer.
func (s Summary) IsCheapest(e models.Entry) bool {
	return s.Cheapest != nil && !s.Tied && e.ID == s.Cheapest.ID
}

// IsMostExpensive reports whether e should be flagged as the worst offer.
func (s Summary) IsMostExpensive(e models.Entry) bool {
	return s.MostExpensive != nil && !s.Tied && e.ID == s.MostExpensive.ID
}
