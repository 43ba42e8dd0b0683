package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/unitx/internal/compare"
	"github.com/desertthunder/unitx/internal/formatter"
	"github.com/desertthunder/unitx/internal/models"
)

var _ list.Item = entryItem{}

// entryItem wraps a ranked [models.Entry] to implement [list.Item].
type entryItem struct {
	entry   models.Entry
	summary compare.Summary
	printer *formatter.Printer
}

func (i entryItem) FilterValue() string { return i.entry.Name }
func (i entryItem) Title() string {
	return styles.entry(i.entry, i.summary, i.entry.Name)
}
func (i entryItem) Description() string {
	desc := i.printer.Describe(i.entry)
	if i.entry.Difference != 0 {
		desc = fmt.Sprintf("%s • saves %s", desc, i.printer.Money(i.entry.Difference))
	}
	return desc
}

func entryItems(entries []models.Entry, pr *formatter.Printer) []list.Item {
	summary := compare.Summarize(entries)
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = entryItem{entry: e, summary: summary, printer: pr}
	}
	return items
}
