package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/unitx/internal/compare"
	"github.com/desertthunder/unitx/internal/formatter"
	"github.com/desertthunder/unitx/internal/models"
	"github.com/desertthunder/unitx/internal/shared"
	"github.com/urfave/cli/v3"
)

// Compare ranks the offers and prints the result banner followed by one card per offer.
func (r *Runner) Compare(ctx context.Context, cmd *cli.Command) error {
	if err := r.prepare(cmd); err != nil {
		return err
	}

	offers, err := r.collectOffers(cmd)
	if err != nil {
		return err
	}

	ranked, err := r.rank(compare.NewSession(), offers)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(formatter.NewReport(ranked), cmd.Bool("pretty"))
	}

	summary := compare.Summarize(ranked)

	if err := r.writePlainHeader("Unit price comparison"); err != nil {
		return err
	}
	for _, line := range r.printer.Headline(summary) {
		if err := r.writePlain("%s\n", line); err != nil {
			return err
		}
	}

	for i, e := range ranked {
		if err := r.writePlainln("%d. %s", i+1, e.Name); err != nil {
			return err
		}
		for _, line := range r.printer.Card(e, summary) {
			if err := r.writePlain("   %s\n", line); err != nil {
				return err
			}
		}
	}

	return nil
}

// Export ranks the offers and writes them in the requested format.
func (r *Runner) Export(ctx context.Context, cmd *cli.Command) error {
	if err := r.prepare(cmd); err != nil {
		return err
	}

	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	offers, err := r.collectOffers(cmd)
	if err != nil {
		return err
	}

	ranked, err := r.rank(compare.NewSession(), offers)
	if err != nil {
		return err
	}

	data, err := formatter.Export(format, ranked, r.printer, r.config.Display.UnitPriceDigits)
	if err != nil {
		return fmt.Errorf("failed to export comparison: %w", err)
	}

	output := cmd.String("output")
	if output == "-" {
		return r.writePlain("%s", data)
	}

	path, err := formatter.WriteExport(data, format, output)
	if err != nil {
		return err
	}

	r.logger.Info("comparison exported", "path", path, "format", format, "offers", len(ranked))
	return r.writePlain("✓ Exported %d offers to %s\n", len(ranked), path)
}

// collectOffers gathers offers from the --file CSV followed by the positional arguments.
func (r *Runner) collectOffers(cmd *cli.Command) ([]models.RawEntry, error) {
	var offers []models.RawEntry

	if path := cmd.String("file"); path != "" {
		fromFile, err := formatter.ReadOffersFile(path)
		if err != nil {
			return nil, err
		}
		r.logger.Debug("read offers file", "path", path, "offers", len(fromFile))
		offers = append(offers, fromFile...)
	}

	for _, arg := range cmd.Args().Slice() {
		raw, err := parseOffer(arg)
		if err != nil {
			return nil, err
		}
		offers = append(offers, raw)
	}

	if len(offers) == 0 {
		return nil, fmt.Errorf("%w: provide offers as arguments or with --file", shared.ErrMissingArgument)
	}
	return offers, nil
}

// rank submits offers to session in order and returns the final ranking.
func (r *Runner) rank(session *compare.Session, offers []models.RawEntry) ([]models.Entry, error) {
	for i, raw := range offers {
		if _, err := session.Submit(raw); err != nil {
			return nil, fmt.Errorf("offer %d: %w", i+1, err)
		}
	}

	ranked := session.Entries()
	r.logger.Debug("ranked offers", "count", len(ranked))
	return ranked, nil
}

// parseOffer reads an offer written as semicolon separated key=value pairs,
// e.g. "name=Rice;price=10,50;amount=1;quantity=2".
func parseOffer(s string) (models.RawEntry, error) {
	var raw models.RawEntry

	for part := range strings.SplitSeq(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		k, v, ok := strings.Cut(part, "=")
		if !ok {
			return models.RawEntry{}, fmt.Errorf("%w: %q is not a key=value pair", shared.ErrInvalidArgument, part)
		}
		v = strings.TrimSpace(v)

		switch strings.ToLower(strings.TrimSpace(k)) {
		case "name", "brand":
			raw.Name = v
		case "price":
			raw.Price = v
		case "amount", "size":
			raw.Amount = v
		case "quantity", "qty", "units":
			raw.Quantity = v
		default:
			return models.RawEntry{}, fmt.Errorf("%w: unknown offer key %q", shared.ErrInvalidArgument, k)
		}
	}

	return raw, nil
}
