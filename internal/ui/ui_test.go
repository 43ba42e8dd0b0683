package ui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/unitx/internal/compare"
	"github.com/desertthunder/unitx/internal/formatter"
	"github.com/desertthunder/unitx/internal/models"
	"github.com/desertthunder/unitx/internal/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) (*Model, *compare.Session) {
	t.Helper()

	pr, err := formatter.NewPrinter(shared.DefaultConfig().Display)
	require.NoError(t, err)

	session := compare.NewSession()
	m := NewModel(session, pr, log.New(io.Discard))
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	return m, session
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// dispatch feeds a message emitted by the model back into it.
func dispatch(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)

	msg, ok := cmd().(Msg)
	require.True(t, ok, "expected a ui message")
	m.Update(msg)
}

// addOffer opens the form, fills the fields starting at size and saves it.
func addOffer(t *testing.T, m *Model, amount, price string) {
	t.Helper()

	m.Update(runes("a"))
	require.Equal(t, FormView, m.ViewState())

	m.Update(runes(amount))
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m.Update(runes(price))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, ListView, m.ViewState())
	dispatch(t, m, cmd)
}

func TestModel(t *testing.T) {
	t.Run("starts on the empty list", func(t *testing.T) {
		m, _ := newTestModel(t)

		assert.Equal(t, ListView, m.ViewState())
		assert.Nil(t, m.Init())
		assert.Contains(t, m.View(), "There are no products to compare.")
	})

	t.Run("add opens the form on the size field", func(t *testing.T) {
		m, _ := newTestModel(t)

		m.Update(runes("a"))

		assert.Equal(t, FormView, m.ViewState())
		assert.Equal(t, fieldAmount, m.form.focus)
		assert.Equal(t, 1, m.form.id)
		assert.Equal(t, "1", m.form.inputs[fieldQuantity].Value())
		assert.Contains(t, m.View(), "Add a product")
	})

	t.Run("tab and shift+tab cycle fields", func(t *testing.T) {
		m, _ := newTestModel(t)
		m.Update(runes("a"))

		m.Update(tea.KeyMsg{Type: tea.KeyTab})
		assert.Equal(t, fieldPrice, m.form.focus)

		m.Update(tea.KeyMsg{Type: tea.KeyTab})
		assert.Equal(t, fieldName, m.form.focus)

		m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
		assert.Equal(t, fieldPrice, m.form.focus)
	})

	t.Run("submitting ranks the offers", func(t *testing.T) {
		m, session := newTestModel(t)

		addOffer(t, m, "1", "10")
		addOffer(t, m, "2", "18")

		entries := session.Entries()
		require.Len(t, entries, 2)
		assert.Equal(t, 2, entries[0].ID)
		assert.Len(t, m.list.Items(), 2)

		view := m.View()
		assert.Contains(t, view, "Product 2 is the cheapest product.")
		assert.Contains(t, view, "Sorted by cheapest:")
	})

	t.Run("identical offers are reported as tied", func(t *testing.T) {
		m, session := newTestModel(t)

		addOffer(t, m, "0.3", "1.07")
		addOffer(t, m, "0.3", "1.07")

		require.Equal(t, 2, session.Len())
		assert.True(t, session.Summary().Tied)

		view := m.View()
		assert.Contains(t, view, "There is no price difference between the products.")
		assert.NotContains(t, view, "★ cheapest")
		assert.NotContains(t, view, "You save")
	})

	t.Run("rejected offer keeps the form open on the failing field", func(t *testing.T) {
		m, session := newTestModel(t)
		m.Update(runes("a"))
		m.Update(runes("1"))
		m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m.Update(runes("0"))

		m.Update(tea.KeyMsg{Type: tea.KeyEnter})

		assert.Equal(t, FormView, m.ViewState())
		assert.Equal(t, fieldPrice, m.form.focus)
		assert.ErrorIs(t, m.form.err, shared.ErrInvalidEntry)
		assert.Equal(t, 0, session.Len())
		assert.Contains(t, m.View(), "price")
	})

	t.Run("escape discards the form", func(t *testing.T) {
		m, session := newTestModel(t)
		m.Update(runes("a"))
		m.Update(runes("3"))

		m.Update(tea.KeyMsg{Type: tea.KeyEsc})

		assert.Equal(t, ListView, m.ViewState())
		assert.Equal(t, 0, session.Len())
	})

	t.Run("edit replaces the selected offer", func(t *testing.T) {
		m, session := newTestModel(t)
		addOffer(t, m, "1", "10")

		m.Update(runes("e"))
		require.Equal(t, FormView, m.ViewState())
		assert.True(t, m.form.editing)
		assert.Equal(t, fieldPrice, m.form.focus)

		m.form.inputs[fieldPrice].SetValue("12")
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		dispatch(t, m, cmd)

		entries := session.Entries()
		require.Len(t, entries, 1)
		assert.Equal(t, 1, entries[0].ID)
		assert.InDelta(t, 12.0, entries[0].Price, 1e-9)
	})

	t.Run("delete removes the selected offer", func(t *testing.T) {
		m, session := newTestModel(t)
		addOffer(t, m, "1", "10")
		addOffer(t, m, "1", "12")

		_, cmd := m.Update(runes("d"))
		dispatch(t, m, cmd)

		assert.Equal(t, 1, session.Len())
		assert.Len(t, m.list.Items(), 1)
		assert.Equal(t, 2, session.Entries()[0].ID)
	})

	t.Run("clear all asks for confirmation", func(t *testing.T) {
		m, session := newTestModel(t)
		addOffer(t, m, "1", "10")

		m.Update(runes("c"))
		require.Equal(t, ConfirmClearView, m.ViewState())
		assert.Contains(t, m.View(), "Clear all 1 products")

		m.Update(runes("n"))
		assert.Equal(t, ListView, m.ViewState())
		assert.Equal(t, 1, session.Len())

		m.Update(runes("c"))
		_, cmd := m.Update(runes("y"))
		dispatch(t, m, cmd)

		assert.Equal(t, ListView, m.ViewState())
		assert.Equal(t, 0, session.Len())
		assert.Empty(t, m.list.Items())
		assert.Equal(t, 1, session.CreateProvisional().ID)
	})

	t.Run("clear on an empty list is ignored", func(t *testing.T) {
		m, _ := newTestModel(t)

		m.Update(runes("c"))

		assert.Equal(t, ListView, m.ViewState())
	})

	t.Run("init renders preloaded offers", func(t *testing.T) {
		pr, err := formatter.NewPrinter(shared.DefaultConfig().Display)
		require.NoError(t, err)

		session := compare.NewSession()
		_, err = session.Submit(models.RawEntry{Price: "10", Amount: "1", Quantity: "1"})
		require.NoError(t, err)

		m := NewModel(session, pr, log.New(io.Discard))
		dispatch(t, m, m.Init())

		assert.Len(t, m.list.Items(), 1)
		assert.Contains(t, m.View(), "Add one or more products to compare.")
	})

	t.Run("quit", func(t *testing.T) {
		m, _ := newTestModel(t)

		_, cmd := m.Update(runes("q"))
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	})
}
