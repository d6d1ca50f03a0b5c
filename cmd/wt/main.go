package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vanderheijden86/walkthrough/pkg/config"
	"github.com/vanderheijden86/walkthrough/pkg/debug"
	"github.com/vanderheijden86/walkthrough/pkg/ui"
	"github.com/vanderheijden86/walkthrough/pkg/version"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type rootOptions struct {
	configPath   string
	noAnimations bool
	noMouse      bool
	debug        bool
}

func newRootCmd() *cobra.Command {
	var opts rootOptions

	root := &cobra.Command{
		Use:           "wt",
		Short:         "Step through the Full-Stack Development Tutorial in your terminal",
		Version:       version.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/wt/config.yaml)")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Write debug logs (also WT_DEBUG=1)")
	root.Flags().BoolVar(&opts.noAnimations, "no-animations", false, "Settle every transition instantly")
	root.Flags().BoolVar(&opts.noMouse, "no-mouse", false, "Do not capture the mouse")

	root.AddCommand(newStepsCmd())
	root.AddCommand(newRenderCmd(&opts))
	root.AddCommand(newExportCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// loadConfig reads the config file named by --config or the default path.
// A broken file is reported and defaults apply.
func loadConfig(cmd *cobra.Command, opts rootOptions) (config.Config, string) {
	path := opts.configPath
	if path == "" {
		path = config.ConfigPath()
	}
	cfg := config.DefaultConfig()
	if path != "" {
		loaded, err := config.LoadFrom(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v (using defaults)\n", err)
		}
		cfg = loaded
	}
	cfg.ApplyEnv()
	return cfg, path
}

func runTUI(cmd *cobra.Command, opts rootOptions) error {
	cfg, path := loadConfig(cmd, opts)
	if opts.noMouse {
		cfg.UI.Mouse = false
	}

	logger, err := debug.New(opts.debug || debug.EnvEnabled(), cfg.DebugLogPath())
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	logger.Debug("starting", zap.String("version", version.Version), zap.String("config", path))

	modelOpts := []ui.Option{
		ui.WithConfig(cfg),
		ui.WithLogger(logger),
	}
	if opts.noAnimations {
		modelOpts = append(modelOpts, ui.WithSkipAnimations())
	}

	if path != "" {
		reloader, err := config.NewReloader(path, func(err error) {
			logger.Warn("config reload failed", zap.Error(err))
		})
		if err == nil {
			err = reloader.Start()
		}
		if err != nil {
			logger.Warn("config watch disabled", zap.Error(err))
		} else {
			defer reloader.Stop()
			modelOpts = append(modelOpts, ui.WithConfigUpdates(reloader.Updates()))
		}
	}

	return runTUIProgram(ui.NewModel(modelOpts...), cfg.UI.Mouse)
}

func runTUIProgram(m ui.Model, mouse bool) error {
	progOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithoutSignalHandler(),
	}
	if mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(m, progOpts...)

	runDone := make(chan struct{})
	defer close(runDone)

	// Graceful shutdown on SIGINT/SIGTERM.
	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-runDone:
			return
		case <-sigCh:
		}

		p.Quit()

		select {
		case <-runDone:
			return
		case <-sigCh:
		case <-time.After(5 * time.Second):
		}

		p.Kill()
	}()

	// Optional auto-quit for automated runs: set WT_TUI_AUTOCLOSE_MS.
	if v := os.Getenv("WT_TUI_AUTOCLOSE_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			go func() {
				timer := time.NewTimer(time.Duration(ms) * time.Millisecond)
				defer timer.Stop()

				select {
				case <-runDone:
					return
				case <-timer.C:
				}

				p.Quit()

				select {
				case <-runDone:
					return
				case <-time.After(2 * time.Second):
				}

				p.Kill()
			}()
		}
	}

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted) {
		return nil
	}
	return err
}
