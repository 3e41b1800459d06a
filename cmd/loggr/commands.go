package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jask/loggr/internal/config"
	"github.com/jask/loggr/internal/timesheet"
)

func (c *cli) projectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "projects",
		Short: "List projects in the order they were created",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := c.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			names, err := st.ListNames(cmd.Context())
			if err != nil {
				return fmt.Errorf("list projects: %w", err)
			}
			out := cmd.OutOrStdout()
			for _, n := range names {
				fmt.Fprintln(out, n)
			}
			return nil
		},
	}
}

func (c *cli) clockCmd() *cobra.Command {
	var in, out bool
	cmd := &cobra.Command{
		Use:   "clock NAME",
		Short: "Clock in to or out of a project",
		Long:  "Toggles the clock for NAME. --in and --out force a direction and do nothing when already there.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			clock, err := c.cfg.Clock()
			if err != nil {
				return err
			}
			st, err := c.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			ts, err := st.Load(ctx, args[0])
			if err != nil {
				return err
			}

			var (
				next timesheet.Timesheet
				tr   timesheet.Transition
			)
			switch {
			case in:
				next, tr = ts.ClockIn(clock)
			case out:
				next, tr = ts.ClockOut(clock)
			default:
				next, tr = ts.Toggle(clock)
			}

			w := cmd.OutOrStdout()
			last, _ := next.Last()
			switch tr {
			case timesheet.Unchanged:
				state := "clocked out"
				if next.ClockedIn() {
					state = "clocked in"
				}
				fmt.Fprintf(w, "%s %s: already %s\n", next.Name, tr, state)
				return nil
			case timesheet.ClockedIn:
				fmt.Fprintf(w, "clocked in to %s at %s\n", next.Name, last.TimeIn)
			case timesheet.ClockedOut:
				fmt.Fprintf(w, "clocked out of %s at %s\n", next.Name, last.TimeOut)
			}
			return st.Save(ctx, next)
		},
	}
	cmd.Flags().BoolVar(&in, "in", false, "only clock in")
	cmd.Flags().BoolVar(&out, "out", false, "only clock out")
	cmd.MarkFlagsMutuallyExclusive("in", "out")
	return cmd
}

func (c *cli) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Print a project's entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clock, err := c.cfg.Clock()
			if err != nil {
				return err
			}
			st, err := c.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			ts, err := st.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, ts.Name)
			for _, e := range ts.Entries {
				line := fmt.Sprintf("%s, %s, %s", e.Date, e.TimeIn, e.TimeOut)
				if d, ok := e.Duration(clock); ok {
					line += "  " + timesheet.FormatDuration(d)
				} else if e.Open() {
					line += "  (open)"
				}
				fmt.Fprintln(w, line)
			}
			fmt.Fprintf(w, "total %s\n", timesheet.FormatDuration(ts.Total(clock)))
			return nil
		},
	}
}

func (c *cli) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Write the effective configuration to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := c.cfgPath
			if path == "" {
				path = config.DefaultPath()
			}
			if err := config.Save(c.cfg, path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
}
