// Package ui implements an interactive terminal interface for comparing offers using bubbletea's Elm architecture.
//
// The TUI has three views:
//  1. [ListView] : The ranked offers with the result banner, cheapest and most expensive highlighted
//  2. [FormView] : Add or edit an offer (name, units, size, price)
//  3. [ConfirmClearView] : Confirm clearing every offer and restarting numbering
//
// The [Model] owns a compare.Session and performs every mutation inside Update, so the session is never touched
// concurrently. Rejected submissions keep the form open with the offending field focused.
//
// Keyboard navigation uses vim-style bindings (j/k, a, e, d, c, y/n, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
