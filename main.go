package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"envinstall/internal/config"
	"envinstall/internal/domain"
	"envinstall/internal/eventbus"
	"envinstall/internal/history"
	"envinstall/internal/install"
	"envinstall/internal/logging"
	"envinstall/internal/menu"
	"envinstall/internal/osinfo"
	"envinstall/internal/presence"
	"envinstall/internal/registry"
	"envinstall/internal/runner"
	"envinstall/internal/ui"
)

// Version information set at build time.
var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "envinstall",
		Short:         "Pick developer tools from a menu and install them",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup(configPath, cmd)
			if err != nil {
				return err
			}
			defer app.close()
			return app.run(cmd.Context())
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $HOME/.config/envinstall/config.toml)")
	cmd.PersistentFlags().String("os", "auto", "OS family: auto, macos or linux")
	cmd.Flags().Bool("plain", false, "Use the line-based menu even on a terminal")
	cmd.Flags().Bool("dry-run", false, "Print install commands instead of running them")

	cmd.AddCommand(listCmd(&configPath))
	return cmd
}

func listCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the package registry with install status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup(*configPath, cmd)
			if err != nil {
				return err
			}
			defer app.close()
			app.list(cmd.OutOrStdout())
			return nil
		},
	}
}

// app is one wired session
type app struct {
	cfg          config.Config
	registry     *registry.Registry
	checker      *presence.Checker
	history      *history.Store
	orchestrator *install.Orchestrator
	closers      []func()
}

func setup(configPath string, cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg}
	logFile, err := logging.Setup(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
	}
	a.closers = append(a.closers, func() { _ = logFile.Close() })
	log.WithFields(log.Fields{"version": version, "config": cfg.File}).Info("starting")

	host, err := osinfo.Resolve(cfg.OS.Family)
	if err != nil {
		return nil, err
	}

	reg, err := registry.Default()
	if err != nil {
		return nil, err
	}
	if cfg.Registry.Extra != "" {
		if reg, err = reg.ExtendFromFile(cfg.Registry.Extra); err != nil {
			return nil, err
		}
	}
	a.registry = reg
	a.checker = presence.NewChecker()

	bus := eventbus.New()
	a.history = history.New(bus)
	a.closers = append(a.closers, logging.LogEvents(bus, log.StandardLogger()))

	var r runner.Runner = runner.NewShell()
	if cfg.Install.DryRun {
		r = &runner.DryRun{Out: os.Stdout}
	}
	a.orchestrator = install.New(install.Options{
		Registry: reg,
		Checker:  a.checker,
		Runner:   r,
		Host:     host,
		Bus:      bus,
		Out:      os.Stdout,
	})

	log.WithFields(log.Fields{"os": host.Family, "arch": host.Arch, "packages": reg.Len(), "dry_run": cfg.Install.DryRun}).Info("session ready")
	return a, nil
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

func (a *app) run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM)
	defer stop()

	controller := menu.NewController(a.registry, a.checker)

	interactive := term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	if a.cfg.UI.Plain || !interactive {
		log.Info("using plain menu")
		return menu.NewLoop(controller, a.orchestrator, a.history, os.Stdin, os.Stdout).Run(ctx)
	}

	runners := ui.ShellRunners()
	if a.cfg.Install.DryRun {
		runners = ui.DryRunners()
	}
	model := ui.NewModel(ctx, controller, a.orchestrator, a.history, runners)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("menu: %w", err)
	}
	fmt.Println("Bye!")
	return nil
}

func (a *app) list(w io.Writer) {
	for _, cat := range domain.Categories {
		fmt.Fprintf(w, "%s\n", cat.Title())
		for _, i := range a.registry.IndicesByCategory(cat) {
			d := a.registry.At(i)
			fmt.Fprintf(w, "  %2d  %-16s %s\n", i+1, d.Name, a.checker.Status(d))
		}
	}
}
