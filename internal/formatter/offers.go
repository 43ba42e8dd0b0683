package formatter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/desertthunder/unitx/internal/models"
	"github.com/desertthunder/unitx/internal/shared"
)

// ReadOffersFile reads offers from a CSV file (see [ReadOffers]).
func ReadOffersFile(path string) ([]models.RawEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open offers file: %w", err)
	}
	defer f.Close()

	return ReadOffers(f)
}

// ReadOffers parses CSV offers into provisional entries.
//
// The header row names the columns: price and amount are required, name and quantity are optional.
// Column order and case do not matter and blank rows are skipped. Values are validated later by compare.Normalize.
func ReadOffers(r io.Reader) ([]models.RawEntry, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: offers file is empty", shared.ErrInvalidInput)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, h := range header {
		columns[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"price", "amount"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("%w: offers file has no %q column", shared.ErrInvalidInput, required)
		}
	}

	field := func(record []string, name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var offers []models.RawEntry
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}
		if strings.TrimSpace(strings.Join(record, "")) == "" {
			continue
		}

		offers = append(offers, models.RawEntry{
			Name:     field(record, "name"),
			Price:    field(record, "price"),
			Amount:   field(record, "amount"),
			Quantity: field(record, "quantity"),
		})
	}

	return offers, nil
}
