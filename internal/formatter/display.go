package formatter

import (
	"fmt"
	"strings"

	"github.com/desertthunder/unitx/internal/compare"
	"github.com/desertthunder/unitx/internal/models"
	"github.com/desertthunder/unitx/internal/shared"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Printer renders comparison values for display in a configured currency and locale.
type Printer struct {
	p         *message.Printer
	unit      currency.Unit
	digits    int
	unitLabel string
}

// NewPrinter creates a [Printer] from the display configuration.
func NewPrinter(cfg shared.DisplayConfig) (*Printer, error) {
	unit, err := currency.ParseISO(cfg.Currency)
	if err != nil {
		return nil, fmt.Errorf("%w: currency %q: %v", shared.ErrInvalidConfig, cfg.Currency, err)
	}

	tag, err := language.Parse(cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("%w: locale %q: %v", shared.ErrInvalidConfig, cfg.Locale, err)
	}

	label := cfg.UnitLabel
	if label == "" {
		label = "unit"
	}

	return &Printer{
		p:         message.NewPrinter(tag),
		unit:      unit,
		digits:    cfg.UnitPriceDigits,
		unitLabel: label,
	}, nil
}

// Money formats v with the currency's standard precision, e.g. "R$ 12,50".
func (pr *Printer) Money(v float64) string {
	return pr.p.Sprint(currency.Symbol(pr.unit.Amount(v)))
}

// UnitPrice formats a unit price with the configured number of fraction digits.
func (pr *Printer) UnitPrice(v float64) string {
	return pr.p.Sprintf("%v %v", currency.Symbol(pr.unit), number.Decimal(v, number.Scale(pr.digits)))
}

// Number formats a plain quantity such as a package size.
func (pr *Printer) Number(v float64) string {
	return pr.p.Sprint(number.Decimal(v, number.MaxFractionDigits(6)))
}

// UnitLabel returns the label of the shared unit of measure.
func (pr *Printer) UnitLabel() string {
	return pr.unitLabel
}

// Headline returns the result banner lines shown above the list of offers.
func (pr *Printer) Headline(s compare.Summary) []string {
	switch {
	case s.Count == 0:
		return []string{"There are no products to compare.", "Add one or more products to start."}
	case !s.Comparable():
		return []string{"Add one or more products to compare."}
	case s.Tied:
		return []string{"There is no price difference between the products."}
	default:
		return []string{
			fmt.Sprintf("%s is the cheapest product.", s.Cheapest.Name),
			fmt.Sprintf("You save %s", pr.Money(s.Savings)),
		}
	}
}

// Card returns the detail lines for one ranked entry, without its name.
func (pr *Printer) Card(e models.Entry, s compare.Summary) []string {
	lines := []string{
		fmt.Sprintf("%s %s", pr.Number(e.Amount), pr.unitLabel),
		fmt.Sprintf("%s per %s", pr.UnitPrice(e.UnitPrice), pr.unitLabel),
		Units(e.Quantity),
		fmt.Sprintf("Price: %s", pr.Money(e.Price)),
	}

	if e.Difference != 0 {
		lines = append(lines, fmt.Sprintf("Savings: %s (compared to the most expensive price)", pr.Money(e.Difference)))
	}
	if s.IsMostExpensive(e) {
		lines = append(lines, "Most expensive product.")
	}

	return lines
}

// Units renders a package count, e.g. "1 unit" or "3 units".
func Units(n int) string {
	if n == 1 {
		return "1 unit"
	}
	return fmt.Sprintf("%d units", n)
}

// Describe renders an entry on a single line for logs and list descriptions.
func (pr *Printer) Describe(e models.Entry) string {
	parts := []string{
		pr.Money(e.Price),
		fmt.Sprintf("%s %s", pr.Number(e.Amount), pr.unitLabel),
		Units(e.Quantity),
		fmt.Sprintf("%s/%s", pr.UnitPrice(e.UnitPrice), pr.unitLabel),
	}
	return strings.Join(parts, " • ")
}
