package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"userpicker/internal/candidates"
	"userpicker/internal/config"
	"userpicker/internal/debug"
	appErrors "userpicker/internal/errors"
	"userpicker/internal/picker"
	"userpicker/internal/ui"
	"userpicker/internal/ui/theme"
)

const loadTimeout = 10 * time.Second

// flagKeys maps CLI flags onto the config keys they override.
var flagKeys = map[string]string{
	"title":           config.KeyTitle,
	"placeholder":     config.KeyPlaceholder,
	"width":           config.KeyWidth,
	"max-visible":     config.KeyMaxVisible,
	"theme":           config.KeyTheme,
	"dismiss-on-blur": config.KeyDismissOnBlur,
	"no-color":        config.KeyNoColor,
	"secondary":       config.KeyDisplaySecondary,
	"avatars":         config.KeyDisplayAvatars,
	"candidates":      config.KeyCandidatesFile,
	"db":              config.KeyCandidatesDB,
	"table":           config.KeyCandidatesTable,
	"output":          config.KeyOutputFormat,
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "userpicker",
		Short: "Pick one or more users from a type-ahead list",
		Long: `userpicker opens a multi-select combobox in the terminal. Type to filter,
use the arrow keys to move, Enter to add a user and Backspace on an empty input to
remove the last one. ctrl+d prints the selection, ctrl+c leaves without printing.`,
		Example: `
  # Pick from the built-in sample users
  userpicker

  # Pick from a YAML file and print JSON
  userpicker --candidates team.yaml --output json

  # Pick from a SQLite database table
  userpicker --db people.db --table staff --secondary email
  `,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if v, _ := cmd.Flags().GetBool("version"); v {
				printVersion(cmd.OutOrStdout())
				return nil
			}

			if err := config.Initialize(); err != nil {
				return fmt.Errorf("initialize config: %w", err)
			}
			if err := config.ApplyOverrides(collectOverrides(cmd.Flags())); err != nil {
				return fmt.Errorf("apply flags: %w", err)
			}

			debugEnabled, _ := cmd.Flags().GetBool("debug")
			if err := debug.Init(debugEnabled); err != nil {
				return fmt.Errorf("start debug log: %w", err)
			}
			defer func() {
				reportDebugLog(cmd.ErrOrStderr())
				debug.Close()
			}()

			opts, err := resolveRuntime()
			if err != nil {
				return err
			}
			return run(cmd.Context(), cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.BoolP("version", "v", false, "Print version information and exit")
	flags.BoolP("debug", "d", false, "Write a debug log to ~/.userpicker/debug.log")
	flags.String("candidates", "", "Load candidates from a YAML, JSON or TOML file")
	flags.String("db", "", "Load candidates from a SQLite database")
	flags.String("table", config.DefaultTable, "Table to read when --db is set")
	flags.String("title", config.DefaultTitle, "Title shown above the picker")
	flags.String("placeholder", config.DefaultPlaceholder, "Placeholder shown in the empty input")
	flags.String("theme", config.DefaultTheme, "Color theme ("+strings.Join(theme.Available(), ", ")+")")
	flags.Int("width", config.DefaultWidth, "Input width in cells")
	flags.Int("max-visible", config.DefaultMaxVisible, "Dropdown entries visible at once")
	flags.String("secondary", string(ui.SecondaryEmail), "Secondary text in the dropdown (none, email)")
	flags.Bool("avatars", false, "Show an avatar marker in the dropdown")
	flags.Bool("dismiss-on-blur", false, "Close the dropdown when the input loses focus")
	flags.StringP("output", "o", outputText, "Output format for the selection (text, json)")
	flags.Bool("no-color", false, "Disable colors")

	return cmd
}

// collectOverrides returns config values for flags the user set explicitly.
func collectOverrides(flags *pflag.FlagSet) map[string]any {
	overrides := map[string]any{}
	for name, configKey := range flagKeys {
		f := flags.Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		switch f.Value.Type() {
		case "bool":
			v, _ := flags.GetBool(name)
			overrides[configKey] = v
		case "int":
			v, _ := flags.GetInt(name)
			overrides[configKey] = v
		default:
			overrides[configKey] = strings.TrimSpace(f.Value.String())
		}
	}
	return overrides
}

// reportDebugLog tells the user where --debug wrote its log.
func reportDebugLog(w io.Writer) {
	if !debug.Enabled() {
		return
	}
	path, err := debug.GetLogPath()
	if err != nil {
		return
	}
	fmt.Fprintf(w, "Debug log: %s\n", path)
}

type runtimeOptions struct {
	title         string
	placeholder   string
	width         int
	maxVisible    int
	themeName     string
	dismissOnBlur bool
	noColor       bool
	display       ui.Display
	source        candidates.Settings
	outputFormat  string
}

// resolveRuntime reads the effective settings out of the layered config.
func resolveRuntime() (runtimeOptions, error) {
	opts := runtimeOptions{
		title:         config.GetString(config.KeyTitle),
		placeholder:   config.GetString(config.KeyPlaceholder),
		width:         config.GetInt(config.KeyWidth),
		maxVisible:    config.GetInt(config.KeyMaxVisible),
		themeName:     strings.TrimSpace(config.GetString(config.KeyTheme)),
		dismissOnBlur: config.GetBool(config.KeyDismissOnBlur),
		noColor:       config.GetBool(config.KeyNoColor),
		display: ui.Display{
			Secondary: ui.SecondaryField(strings.ToLower(strings.TrimSpace(config.GetString(config.KeyDisplaySecondary)))),
			Avatars:   config.GetBool(config.KeyDisplayAvatars),
		},
		source: candidates.Settings{
			FilePath: config.GetString(config.KeyCandidatesFile),
			DBPath:   config.GetString(config.KeyCandidatesDB),
			Table:    config.GetString(config.KeyCandidatesTable),
		},
		outputFormat: strings.ToLower(strings.TrimSpace(config.GetString(config.KeyOutputFormat))),
	}

	switch opts.display.Secondary {
	case ui.SecondaryNone, ui.SecondaryEmail:
	case "":
		opts.display.Secondary = ui.SecondaryNone
	default:
		return opts, appErrors.Newf(appErrors.CodeConfigurationError, "unknown secondary field %q (want none or email)", opts.display.Secondary)
	}

	switch opts.outputFormat {
	case outputText, outputJSON:
	case "":
		opts.outputFormat = outputText
	default:
		return opts, appErrors.Newf(appErrors.CodeConfigurationError, "unknown output format %q (want text or json)", opts.outputFormat)
	}

	if opts.width < 10 {
		return opts, appErrors.Newf(appErrors.CodeConfigurationError, "width must be at least 10, got %d", opts.width)
	}
	if opts.maxVisible < 1 {
		return opts, appErrors.Newf(appErrors.CodeConfigurationError, "max-visible must be positive, got %d", opts.maxVisible)
	}
	return opts, nil
}

func run(ctx context.Context, cmd *cobra.Command, opts runtimeOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if opts.noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	if opts.themeName != "" && !theme.SetTheme(opts.themeName) {
		debug.Log("unknown theme, keeping default", "theme", opts.themeName, "current", theme.CurrentName())
	}

	src := candidates.FromSettings(opts.source)
	loadCtx, cancel := context.WithTimeout(ctx, loadTimeout)
	options, err := candidates.LoadOptions(loadCtx, src)
	cancel()
	if err != nil {
		return err
	}
	debug.Log("candidates loaded", "source", src.Name(), "count", len(options))

	zone.NewGlobal()

	appCfg := ui.Config{
		Title:         opts.title,
		Placeholder:   opts.placeholder,
		Width:         opts.width,
		MaxVisible:    opts.maxVisible,
		DismissOnBlur: opts.dismissOnBlur,
		Display:       opts.display,
		Options:       options,
		SaveTheme:     config.SaveTheme,
	}

	selected, confirmed, err := runProgram(appCfg, ui.NewApp, func(app *ui.App) programRunner {
		return tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	})
	if err != nil {
		return err
	}
	if !confirmed {
		debug.Log("picker closed without confirming")
		return nil
	}
	return writeSelection(cmd.OutOrStdout(), selected, opts.outputFormat)
}

type programRunner interface {
	Run() (tea.Model, error)
}

type programFactory func(*ui.App) programRunner

// runProgram builds the app, runs it to completion and reports what the
// user confirmed.
func runProgram(cfg ui.Config, builder func(ui.Config) (*ui.App, error), factory programFactory) ([]picker.Option, bool, error) {
	app, err := builder(cfg)
	if err != nil {
		return nil, false, fmt.Errorf("initialize UI: %w", err)
	}
	if factory == nil {
		return nil, false, fmt.Errorf("program factory is nil")
	}
	prog := factory(app)
	if prog == nil {
		return nil, false, fmt.Errorf("program is nil")
	}
	if _, err := prog.Run(); err != nil {
		return nil, false, fmt.Errorf("run UI: %w", err)
	}
	selected, confirmed := app.Result()
	return selected, confirmed, nil
}
