package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/boolean-maybe/timeline/config"
	"github.com/boolean-maybe/timeline/loaders"
	"github.com/boolean-maybe/timeline/notes"
	"github.com/boolean-maybe/timeline/timeline"
	tviewAdapter "github.com/boolean-maybe/timeline/timeline/tview"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/spf13/cobra"
)

type flags struct {
	configPath string
	maxHistory int
	noRedo     bool
	style      string
	logFile    string
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:          "timeline [file-or-url]",
		Short:        "Edit a markdown note with a bounded undo/redo timeline",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}

			logger, closeLog, err := newLogger(f.logFile)
			if err != nil {
				return err
			}
			defer closeLog()

			initial, name := "", "untitled"
			if len(args) == 1 {
				initial, name, err = (&loaders.FileHTTP{}).Load(cmd.Context(), args[0])
				if err != nil {
					return fmt.Errorf("error loading content: %w", err)
				}
			}

			return run(cfg, initial, name, logger)
		},
	}

	bindFlags(cmd, &f)
	return cmd
}

func bindFlags(cmd *cobra.Command, f *flags) {
	cmd.Flags().StringVarP(&f.configPath, "config", "c", defaultConfigPath(), "path to a YAML config file")
	cmd.Flags().IntVarP(&f.maxHistory, "max-history", "n", 0, "maximum number of retained snapshots")
	cmd.Flags().BoolVar(&f.noRedo, "no-redo", false, "disable redo")
	cmd.Flags().StringVar(&f.style, "style", "", "preview style: dark, light or auto")
	cmd.Flags().StringVar(&f.logFile, "log-file", "", "write debug logs to this file")
}

// resolveConfig loads the config file and applies flags that were set explicitly.
func resolveConfig(cmd *cobra.Command, f flags) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, err
	}

	if cmd.Flags().Changed("max-history") {
		cfg.MaxHistory = f.maxHistory
	}
	if cmd.Flags().Changed("no-redo") {
		enabled := !f.noRedo
		cfg.EnableRedo = &enabled
	}
	if cmd.Flags().Changed("style") {
		cfg.Style = f.style
	}
	return cfg, nil
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "timeline", "config.yaml")
}

// newLogger returns a debug logger writing to path, or a discarding one when path is empty.
// The terminal belongs to the UI, so nothing is ever logged to stderr while it runs.
func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { _ = file.Close() }, nil
}

func run(cfg config.Config, initial, name string, logger *slog.Logger) error {
	opts := cfg.Options()
	logger.Info("starting timeline",
		slog.String("source", name),
		slog.Int("max_history", opts.MaxHistory),
		slog.Bool("enable_redo", opts.EnableRedo),
		slog.String("style", notes.ResolveStyle(cfg.Style)),
	)

	app := tview.NewApplication()

	editor := tviewAdapter.NewEditor(initial, timeline.SessionOptions{
		MaxHistory:  opts.MaxHistory,
		DisableRedo: !opts.EnableRedo,
	})
	editor.SetRenderer(notes.NewRenderer(cfg.Style))
	editor.SetRenderErrorHandler(func(err error) {
		logger.Warn("preview render failed", slog.Any("error", err))
	})

	// create status bar
	statusBar := tview.NewTextView()
	statusBar.SetDynamicColors(true)
	statusBar.SetTextAlign(tview.AlignLeft)

	editor.SetStateChangedHandler(func(e *tviewAdapter.Editor) {
		state := e.Core().State()
		logger.Debug("timeline changed",
			slog.Int("index", state.Index()),
			slog.Int("len", state.Len()),
			slog.Uint64("version", state.Version()),
		)
		updateStatusBar(statusBar, e, name)
	})
	updateStatusBar(statusBar, editor, name)

	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(editor, 0, 1, true).
		AddItem(statusBar, 1, 0, false)

	// plain runes belong to the draft, so quit is Ctrl+Q
	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyCtrlQ {
			app.Stop()
			return nil
		}
		return event
	})

	if err := app.SetRoot(flex, true).Run(); err != nil {
		return fmt.Errorf("error running application: %w", err)
	}
	logger.Info("stopped timeline", slog.Int("snapshots", editor.Core().Len()))
	return nil
}

// updateStatusBar refreshes the status bar with the current timeline state.
func updateStatusBar(statusBar *tview.TextView, e *tviewAdapter.Editor, name string) {
	fileName := filepath.Base(name)
	core := e.Core()

	keyColor := "gray"
	status := fmt.Sprintf(" [yellow]%s[-] | [white]%d/%d[-] | Undo:", tview.Escape(fileName), core.Index()+1, core.Len())
	status += indicator(core.CanUndo(), "◀")
	status += " Redo:"
	status += indicator(core.CanRedo(), "▶")
	status += fmt.Sprintf(" | Commit:[%s]^S[-] Undo/Redo:[%s]^Z/^Y[-] Reset:[%s]^R[-] Clear:[%s]^L[-] Panel:[%s]Tab[-] Quit:[%s]^Q[-]",
		keyColor, keyColor, keyColor, keyColor, keyColor, keyColor)

	statusBar.SetText(status)
}

func indicator(active bool, symbol string) string {
	if active {
		return "[white]" + symbol + "[-]"
	}
	return "[gray]" + symbol + "[-]"
}
