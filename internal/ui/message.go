package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/unitx/internal/models"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgEntriesRanked MsgKind = iota
	MsgSessionReset
)

// rankedMsg is the constructor for [MsgEntriesRanked]
func rankedMsg(action string, entries []models.Entry) Msg {
	return Msg{
		kind: MsgEntriesRanked,
		data: rankedData{action: action, entries: entries},
	}
}

// resetMsg is the constructor for [MsgSessionReset]
func resetMsg() Msg {
	return Msg{kind: MsgSessionReset}
}

func emit(msg Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
