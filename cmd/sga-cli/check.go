package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/promac3k/sistema-gestao-atualizacoes/internal/checker"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/hostinfo"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/i18n"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/inventory"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/models"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/tui"
)

func newCheckCmd(e *env) *cobra.Command {
	var (
		file   string
		delay  time.Duration
		asJSON bool
		useTUI bool
		quiet  bool
	)

	cmd := &cobra.Command{
		Use:   "check --file <inventory>",
		Short: "Check every program in an inventory export",
		Long: `Check reads a CSV or JSON inventory export and looks every program up
in the catalogs, one at a time, with a pause between lookups.

Example:
  sga-cli check --file inventory.csv
  sga-cli check --file inventory.json --json > report.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := inventory.ParseFile(file)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("delay") {
				delay = e.cfg.Checker.Delay
			}
			if delay < 0 {
				return fmt.Errorf("delay must not be negative, got %s", delay)
			}

			ctx, stop := interruptContext(cmd.Context())
			defer stop()

			runner := checker.NewRunner(e.lookup, delay, e.logger)
			var report checker.Report
			if useTUI && !asJSON {
				report, err = tui.RunCheck(ctx, runner, items)
				if err != nil {
					return err
				}
			} else {
				report = runner.Run(ctx, items, func(p models.ProgressState) {
					if quiet || asJSON {
						return
					}
					fmt.Fprintf(cmd.ErrOrStderr(), "[%3d%%] %s\n", p.Percentage, i18n.T("progress.checking", map[string]interface{}{
						"Name":    p.SoftwareName,
						"Current": p.Current,
						"Total":   p.Total,
					}))
				})
			}
			host := hostinfo.Collect(ctx)
			report.Host = &host
			return writeReport(cmd, report, asJSON)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "inventory export (.csv or .json)")
	cmd.Flags().DurationVar(&delay, "delay", time.Second, "pause between lookups (default from config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	cmd.Flags().BoolVar(&useTUI, "tui", false, "show an interactive progress bar")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not print progress lines")
	cmd.MarkFlagRequired("file")
	return cmd
}

func writeReport(cmd *cobra.Command, report checker.Report, asJSON bool) error {
	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	fmt.Fprint(out, tui.RenderTable(report.Results))
	fmt.Fprintln(out, tui.RenderSummary(report.Statistics))
	return nil
}

// interruptContext is cancelled on Ctrl+C.
func interruptContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt)
}
