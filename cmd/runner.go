package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/unitx/internal/formatter"
	"github.com/desertthunder/unitx/internal/shared"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	configPath string
	logger     *log.Logger
	output     io.Writer
	printer    *formatter.Printer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	ConfigPath string
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Runner{
		config:     opts.Config,
		configPath: opts.ConfigPath,
		logger:     opts.Logger,
		output:     opts.Output,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		compareCommand, exportCommand, tuiCommand, setupCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// SetLogger replaces the logger used by command actions.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

// prepare resolves the configuration for a command: the --config file when it exists,
// then UNITX_* environment overrides, then --log-level.
func (r *Runner) prepare(cmd *cli.Command) error {
	if path := cmd.String("config"); path != "" {
		_, statErr := os.Stat(path)
		switch {
		case statErr != nil && cmd.IsSet("config"):
			return fmt.Errorf("%w: %s", shared.ErrMissingConfig, path)
		case statErr == nil && path != r.configPath:
			config, err := shared.LoadConfig(path)
			if err != nil {
				return err
			}
			r.config = config
			r.configPath = path
		}
	}

	shared.ApplyEnv(r.config)
	if level := cmd.String("log-level"); level != "" {
		r.config.Log.Level = level
	}

	if err := r.config.Validate(); err != nil {
		return err
	}

	ll, _ := shared.ParseLevel(r.config.Log.Level)
	shared.SetLogLevel(r.logger, ll)

	printer, err := formatter.NewPrinter(r.config.Display)
	if err != nil {
		return err
	}
	r.printer = printer

	r.logger.Debug("configuration ready", "path", r.configPath, "currency", r.config.Display.Currency, "locale", r.config.Display.Locale)
	return nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) error {
	rule := "═══════════════════════════════════════"
	return r.writePlain("%s\n%v\n%s\n", rule, title, rule)
}
