package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/loggr/internal/config"
	"github.com/jask/loggr/internal/session"
	"github.com/jask/loggr/internal/store"
	"github.com/jask/loggr/internal/tui"
)

func main() {
	ctx := context.Background()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// cli carries the flag values and the resolved config between cobra hooks.
type cli struct {
	cfgPath string
	dir     string
	backend string
	logPath string

	cfg     config.Config
	logFile io.Closer
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:   "loggr",
		Short: "Track time against projects from the terminal",
		Long: `Loggr keeps a timesheet per project and clocks you in and out of them.

Run without arguments to open the interactive view:
  h / left     project list        l / right    entries
  j k          move                enter        load project
  a            add project         c            clock in/out
  ctrl+c       quit

Configuration is read from $LOGGR_CONFIG or the user config directory
(loggr/config.toml). Any key can be overridden with LOGGR_<SECTION>_<KEY>,
for example LOGGR_STORAGE_BACKEND=sqlite.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return c.teardown()
		},
		RunE: c.runTUI,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.cfgPath, "config", "", "config file (default $LOGGR_CONFIG or <config dir>/loggr/config.toml)")
	flags.StringVar(&c.dir, "dir", "", "storage directory (overrides storage.dir)")
	flags.StringVar(&c.backend, "backend", "", "storage backend: json or sqlite (overrides storage.backend)")
	flags.StringVar(&c.logPath, "log", "", "log file (overrides log.path)")

	root.AddCommand(
		c.projectsCmd(),
		c.clockCmd(),
		c.showCmd(),
		c.configCmd(),
	)
	return root
}

// setup loads config, applies flag overrides and points the log package at
// the configured file.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.cfgPath)
	if err != nil {
		return err
	}
	if c.dir != "" {
		cfg.Storage.Dir = c.dir
	}
	if c.backend != "" {
		cfg.Storage.Backend = c.backend
	}
	if c.logPath != "" {
		cfg.Log.Path = c.logPath
	}
	c.cfg = cfg

	if cfg.Log.Path == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := tea.LogToFile(cfg.Log.Path, "loggr")
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	c.logFile = f
	log.Printf("info: %s started (backend=%s dir=%s)", cmd.CommandPath(), cfg.Storage.Backend, cfg.Storage.Dir)
	return nil
}

func (c *cli) teardown() error {
	if c.logFile == nil {
		return nil
	}
	err := c.logFile.Close()
	c.logFile = nil
	log.SetOutput(io.Discard)
	return err
}

func (c *cli) openStore() (store.Store, error) {
	backend, err := store.ParseBackend(c.cfg.Storage.Backend)
	if err != nil {
		return nil, err
	}
	st, err := store.Open(backend, c.cfg.Storage.Dir)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", backend, err)
	}
	return st, nil
}

func (c *cli) runTUI(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	clock, err := c.cfg.Clock()
	if err != nil {
		log.Printf("warn: using local timezone: %v", err)
		c.cfg.UI.Timezone = "Local"
		if clock, err = c.cfg.Clock(); err != nil {
			return err
		}
	}

	st, err := c.openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	names, err := st.ListNames(ctx)
	if err != nil {
		return fmt.Errorf("list projects: %w", err)
	}

	sess := session.New(ctx, st, names, clock)
	sess.Debug = c.cfg.Log.Debug
	return tui.Run(ctx, sess, clock)
}
