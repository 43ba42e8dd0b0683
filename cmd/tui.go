package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/unitx/internal/compare"
	"github.com/desertthunder/unitx/internal/formatter"
	"github.com/desertthunder/unitx/internal/shared"
	"github.com/desertthunder/unitx/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive terminal UI for comparing offers.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	if err := r.prepare(cmd); err != nil {
		return err
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, logFile, err := shared.NewFileLogger(r.config.Log.File)
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	defer logFile.Close()
	ll, _ := shared.ParseLevel(r.config.Log.Level)
	shared.SetLogLevel(fileLogger, ll)
	r.SetLogger(shared.WithLogger(fileLogger, "session", shared.GenerateID()))

	session := compare.NewSession()
	if path := cmd.String("file"); path != "" {
		offers, err := formatter.ReadOffersFile(path)
		if err != nil {
			return err
		}
		if _, err := r.rank(session, offers); err != nil {
			return err
		}
	}

	r.logger.Info("starting TUI", "offers", session.Len())

	model := ui.NewModel(session, r.printer, r.logger)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
