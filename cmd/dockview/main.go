// Package main implements the dockview command.
//
// dockview shows a docking workspace in the terminal: panels separated by
// draggable splits, each with a row of closable tabs, drawn with a dock style
// that can be loaded from a file and edited while the program runs.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"regexp"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ivoronin/dockview/internal/config"
	"github.com/ivoronin/dockview/internal/eventlog"
	"github.com/ivoronin/dockview/internal/termsurface"
	"github.com/ivoronin/dockview/internal/tui"
	"github.com/ivoronin/dockview/pkg/dock"
)

// Snapshot size when neither flags nor the terminal give one.
const (
	defaultWidth  = 100
	defaultHeight = 30
)

type options struct {
	stylePath      string
	theme          string
	noCloseButtons bool

	snapshot      bool
	width, height int

	logFile  string
	logLevel string

	ignoreEvents    string
	eventSimilarity float64

	format string
}

// parseTheme accepts the names termsurface.VisualsFor knows.
func parseTheme(theme string) (string, error) {
	switch theme {
	case "dark", "light":
		return theme, nil
	default:
		return "", fmt.Errorf("invalid theme '%s' (use: dark or light)", theme)
	}
}

// baseStyle builds the style for the theme before any style file is applied.
func (o *options) baseStyle() (dock.Style, error) {
	theme, err := parseTheme(o.theme)
	if err != nil {
		return dock.Style{}, err
	}
	s := termsurface.DockStyle(termsurface.VisualsFor(theme))
	if o.noCloseButtons {
		s.ShowCloseButtons = false
	}
	return s, nil
}

// effectiveStyle overlays the style file and the environment onto baseStyle.
func (o *options) effectiveStyle() (style, base dock.Style, err error) {
	base, err = o.baseStyle()
	if err != nil {
		return dock.Style{}, dock.Style{}, err
	}
	style, err = config.Load(o.stylePath, base)
	if err != nil {
		return dock.Style{}, dock.Style{}, fmt.Errorf("failed to load style: %w", err)
	}
	return style, base, nil
}

func (o *options) source() string {
	if o.stylePath == "" {
		return "built-in"
	}
	return o.stylePath
}

func (o *options) eventConfig() (eventlog.Config, error) {
	cfg := eventlog.DefaultConfig()
	cfg.SimilarityThreshold = o.eventSimilarity
	if o.ignoreEvents != "" {
		re, err := regexp.Compile(o.ignoreEvents)
		if err != nil {
			return eventlog.Config{}, fmt.Errorf("invalid --ignore-events pattern: %w", err)
		}
		cfg.Ignore = re
	}
	return cfg, nil
}

// newLogger writes to the log file when one is given; the TUI owns stdout.
func newLogger(path, level string) (*slog.Logger, func(), error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level '%s': %w", level, err)
	}
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: lvl}))
	return logger, func() { _ = f.Close() }, nil
}

// snapshotSize prefers the flags, then the terminal size, then the defaults.
func snapshotSize(o *options, fd int) (width, height int) {
	width, height = o.width, o.height
	if width > 0 && height > 0 {
		return width, height
	}
	tw, th, err := term.GetSize(fd)
	if err != nil || tw <= 0 || th <= 0 {
		tw, th = defaultWidth, defaultHeight
	}
	if width <= 0 {
		width = tw
	}
	if height <= 0 {
		height = th
	}
	return width, height
}

func run(ctx context.Context, o *options, stdout io.Writer, interactive bool) error {
	logger, closeLog, err := newLogger(o.logFile, o.logLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	style, base, err := o.effectiveStyle()
	if err != nil {
		return err
	}
	eventCfg, err := o.eventConfig()
	if err != nil {
		return err
	}

	topts := tui.Options{
		Style:  style,
		Theme:  o.theme,
		Source: o.source(),
		Events: eventlog.New(eventCfg, logger),
		Log:    logger,
	}

	if o.snapshot || !interactive {
		topts.Plain = true
		width, height := snapshotSize(o, int(os.Stdout.Fd()))
		_, err := fmt.Fprintln(stdout, tui.Snapshot(topts, width, height))
		return err
	}

	if o.stylePath != "" {
		watcher, err := config.Watch(o.stylePath, base, logger)
		if err != nil {
			return fmt.Errorf("failed to watch style file: %w", err)
		}
		defer func() { _ = watcher.Close() }()
		topts.Reloads = watcher.Reloads()
	}

	logger.Info("starting", "style", o.source(), "theme", o.theme)
	return tui.Run(ctx, topts)
}

func newStyleCommand(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "style",
		Short: "Print the effective dock style",
		Long: `Print the dock style dockview would use: the theme defaults with the
style file and DOCKVIEW_* environment variables applied on top. The output is
a valid style file.`,
		Example: `  # Start a style file from the light theme
  dockview style --theme light > dock.toml

  # Check what an environment override does
  DOCKVIEW_SEPARATOR_EXTRA=40 dockview style --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			style, _, err := o.effectiveStyle()
			if err != nil {
				return err
			}
			return config.Dump(cmd.OutOrStdout(), style, o.format)
		},
	}
	cmd.Flags().StringVar(&o.format, "format", config.FormatTOML, "output format: toml or yaml")
	return cmd
}

func newRootCommand(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dockview",
		Short: "A docking panel workspace in the terminal",
		Long: `A docking panel workspace in the terminal.

The window is split into an explorer, an editor and an output panel:
  • Drag a separator to resize the panels next to it
  • Click a tab to show it, or its ╳ to close it
  • Click inside a panel to focus it
  • Edit the style file and the dock restyles itself

When stdout is not a terminal, or with --snapshot, one frame is printed
and dockview exits.`,
		Example: `  # Run with the dark theme
  dockview

  # Run with a style file that is reloaded on save
  dockview --style ~/.config/dockview/dock.toml

  # Print a 120x40 frame without colors
  dockview --snapshot --width 120 --height 40`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Setup signal handling for graceful shutdown
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			interactive := term.IsTerminal(int(os.Stdout.Fd()))
			return run(ctx, o, cmd.OutOrStdout(), interactive)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&o.stylePath, "style", "", "style file (toml, yaml or json)")
	pf.StringVar(&o.theme, "theme", "dark", "color theme: dark or light")
	pf.BoolVar(&o.noCloseButtons, "no-close-buttons", false, "hide tab close buttons")

	f := cmd.Flags()
	f.BoolVar(&o.snapshot, "snapshot", false, "print one frame and exit")
	f.IntVar(&o.width, "width", 0, "snapshot width in columns (default: terminal width)")
	f.IntVar(&o.height, "height", 0, "snapshot height in rows (default: terminal height)")
	f.StringVar(&o.logFile, "log-file", "", "write logs to this file")
	f.StringVar(&o.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	f.StringVar(&o.ignoreEvents, "ignore-events", "", "hide events whose \"Reason: Message\" matches this regex")
	f.Float64Var(&o.eventSimilarity, "event-similarity", eventlog.DefaultSimilarityThreshold,
		"how similar two event messages must be to share a row (0.0-1.0)")

	cmd.AddCommand(newStyleCommand(o))
	return cmd
}

func main() {
	var o options
	if err := newRootCommand(&o).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		os.Exit(1)
	}
}
