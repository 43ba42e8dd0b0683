package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/unitx/internal/compare"
	"github.com/desertthunder/unitx/internal/models"
)

const (
	fieldName = iota
	fieldQuantity
	fieldAmount
	fieldPrice
)

var formFields = []struct {
	name        string
	label       string
	placeholder string
}{
	{compare.FieldName, "Brand (optional)", ""},
	{compare.FieldQuantity, "Units (optional)", "Number of packages sold together"},
	{compare.FieldAmount, "Size (%s)", "Volume, length or weight of one package"},
	{compare.FieldPrice, "Price", "0.00"},
}

// form is the add/edit dialog for a single offer.
type form struct {
	id      int
	editing bool
	inputs  []textinput.Model
	focus   int
	err     error
}

func newForm(raw models.RawEntry, editing bool) form {
	inputs := make([]textinput.Model, len(formFields))
	for i, f := range formFields {
		ti := textinput.New()
		ti.Prompt = "› "
		ti.Placeholder = f.placeholder
		ti.CharLimit = 64
		inputs[i] = ti
	}

	inputs[fieldName].Placeholder = compare.DefaultName(raw.ID)
	inputs[fieldName].SetValue(raw.Name)
	inputs[fieldQuantity].SetValue(raw.Quantity)
	inputs[fieldAmount].SetValue(raw.Amount)
	inputs[fieldPrice].SetValue(raw.Price)

	return form{id: raw.ID, editing: editing, inputs: inputs}
}

// raw returns the form state as a provisional entry.
func (f *form) raw() models.RawEntry {
	return models.RawEntry{
		ID:       f.id,
		Name:     f.inputs[fieldName].Value(),
		Price:    f.inputs[fieldPrice].Value(),
		Amount:   f.inputs[fieldAmount].Value(),
		Quantity: f.inputs[fieldQuantity].Value(),
	}
}

func (f *form) setFocus(i int) tea.Cmd {
	n := len(f.inputs)
	f.focus = ((i % n) + n) % n

	var cmd tea.Cmd
	for j := range f.inputs {
		if j == f.focus {
			cmd = f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
	return cmd
}

func (f *form) focusField(name string) tea.Cmd {
	for i, field := range formFields {
		if field.name == name {
			return f.setFocus(i)
		}
	}
	return nil
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *form) view(unitLabel string) string {
	var b strings.Builder
	for i, field := range formFields {
		label := field.label
		if strings.Contains(label, "%s") {
			label = fmt.Sprintf(label, unitLabel)
		}
		b.WriteString(styles.label.Render(label))
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
	}

	if f.err != nil {
		b.WriteString("\n")
		b.WriteString(styles.rejected.Render(f.err.Error()))
		b.WriteString("\n")
	}
	return b.String()
}
