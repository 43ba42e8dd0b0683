// package formatter renders ranked comparisons for display and exports them to various formats (CSV, Markdown, plain text, JSON)
package formatter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/desertthunder/unitx/internal/compare"
	"github.com/desertthunder/unitx/internal/models"
	"github.com/desertthunder/unitx/internal/shared"
	"github.com/shopspring/decimal"
)

// Format names an export format.
type Format string

const (
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
	FormatText     Format = "text"
	FormatJSON     Format = "json"
)

// Formats lists the supported export formats.
var Formats = []Format{FormatCSV, FormatMarkdown, FormatText, FormatJSON}

// ParseFormat resolves a format name, accepting "md" and "txt" as aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return FormatCSV, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", shared.ErrUnsupportedFormat, s)
	}
}

// Extension returns the file extension for the format.
func (f Format) Extension() string {
	switch f {
	case FormatMarkdown:
		return ".md"
	case FormatText:
		return ".txt"
	default:
		return "." + string(f)
	}
}

// Report is the JSON document written by [ExportToJSON].
type Report struct {
	Summary ReportSummary  `json:"summary"`
	Entries []models.Entry `json:"entries"`
}

// ReportSummary is the serialized form of [compare.Summary].
type ReportSummary struct {
	Count           int     `json:"count"`
	Tied            bool    `json:"tied"`
	CheapestID      int     `json:"cheapest_id,omitempty"`
	MostExpensiveID int     `json:"most_expensive_id,omitempty"`
	Savings         float64 `json:"savings"`
}

// NewReport builds a [Report] from ranked entries.
func NewReport(ranked []models.Entry) Report {
	s := compare.Summarize(ranked)
	r := Report{
		Summary: ReportSummary{Count: s.Count, Tied: s.Tied, Savings: s.Savings},
		Entries: ranked,
	}
	if r.Entries == nil {
		r.Entries = []models.Entry{}
	}
	if s.Cheapest != nil {
		r.Summary.CheapestID = s.Cheapest.ID
		r.Summary.MostExpensiveID = s.MostExpensive.ID
	}
	return r
}

// ExportToCSV converts ranked entries to CSV with columns: Rank, ID, Name, Price, Amount, Quantity, UnitPrice, Difference
func ExportToCSV(ranked []models.Entry, unitPriceDigits int) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Rank", "ID", "Name", "Price", "Amount", "Quantity", "UnitPrice", "Difference"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for i, e := range ranked {
		record := []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(e.ID),
			e.Name,
			fixed(e.Price, 2),
			plain(e.Amount),
			strconv.Itoa(e.Quantity),
			fixed(e.UnitPrice, unitPriceDigits),
			fixed(e.Difference, 2),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts ranked entries to a Markdown table headed by the result banner
func ExportToMarkdown(ranked []models.Entry, pr *Printer) ([]byte, error) {
	var buf bytes.Buffer
	s := compare.Summarize(ranked)

	buf.WriteString("# Price comparison\n\n")
	for _, line := range pr.Headline(s) {
		buf.WriteString(fmt.Sprintf("**%s**\n\n", line))
	}

	if len(ranked) == 0 {
		return buf.Bytes(), nil
	}

	unit := pr.UnitLabel()
	buf.WriteString(fmt.Sprintf("| # | Product | Price | Size (%s) | Units | Price per %s | Savings |\n", unit, unit))
	buf.WriteString("|---|---|---|---|---|---|---|\n")
	for i, e := range ranked {
		name := escapeCell(e.Name)
		switch {
		case s.IsCheapest(e):
			name = fmt.Sprintf("**%s** (cheapest)", name)
		case s.IsMostExpensive(e):
			name = fmt.Sprintf("%s (most expensive)", name)
		}

		savings := "-"
		if e.Difference != 0 {
			savings = pr.Money(e.Difference)
		}

		buf.WriteString(fmt.Sprintf("| %d | %s | %s | %s | %d | %s | %s |\n",
			i+1, name, pr.Money(e.Price), pr.Number(e.Amount), e.Quantity, pr.UnitPrice(e.UnitPrice), savings))
	}

	return buf.Bytes(), nil
}

// ExportToText converts ranked entries to plain text cards
func ExportToText(ranked []models.Entry, pr *Printer) ([]byte, error) {
	var buf bytes.Buffer
	s := compare.Summarize(ranked)

	for _, line := range pr.Headline(s) {
		buf.WriteString(line + "\n")
	}

	if s.Comparable() && !s.Tied {
		buf.WriteString("\nSorted by cheapest:\n")
	}

	for i, e := range ranked {
		buf.WriteString(fmt.Sprintf("\n%d. %s\n", i+1, e.Name))
		for _, line := range pr.Card(e, s) {
			buf.WriteString("   " + line + "\n")
		}
	}

	return buf.Bytes(), nil
}

// ExportToJSON serializes ranked entries and their summary as a [Report]
func ExportToJSON(ranked []models.Entry, pretty bool) ([]byte, error) {
	var data []byte
	var err error

	if pretty {
		data, err = json.MarshalIndent(NewReport(ranked), "", "  ")
	} else {
		data, err = json.Marshal(NewReport(ranked))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}

	return append(data, '\n'), nil
}

// Export renders ranked entries in the requested format.
func Export(format Format, ranked []models.Entry, pr *Printer, unitPriceDigits int) ([]byte, error) {
	switch format {
	case FormatCSV:
		return ExportToCSV(ranked, unitPriceDigits)
	case FormatMarkdown:
		return ExportToMarkdown(ranked, pr)
	case FormatText:
		return ExportToText(ranked, pr)
	case FormatJSON:
		return ExportToJSON(ranked, true)
	default:
		return nil, fmt.Errorf("%w: %q", shared.ErrUnsupportedFormat, format)
	}
}

// WriteExport writes exported data to path, creating parent directories as needed.
//
// Defaults to comparison{ext} in the working directory.
func WriteExport(data []byte, format Format, path string) (string, error) {
	if path == "" {
		path = "comparison" + format.Extension()
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s file: %w", format, err)
	}

	return path, nil
}

// fixed rounds v to digits fraction digits. NaN and infinities are written as strconv spells them.
func fixed(v float64, digits int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return decimal.NewFromFloat(v).StringFixed(int32(digits))
}

func plain(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return decimal.NewFromFloat(v).String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
