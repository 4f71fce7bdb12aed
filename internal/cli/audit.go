package cli

import (
	"context"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/galaxy-admin/internal/store"
)

const defaultRunsLimit = 20

func (a *App) auditCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Inspect the action ledger written with --audit-db",
	}
	cmd.AddCommand(a.auditRunsCommand(), a.auditShowCommand())
	return cmd
}

func (a *App) withLedger(ctx context.Context, fn func(store.Ledger) error) error {
	ledger, err := store.OpenLedger(ctx, a.cfg.Audit.DSN, a.log)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := ledger.Close(); cerr != nil {
			a.log.Error().Err(cerr).Msg("close audit ledger")
		}
	}()
	return fn(ledger)
}

func (a *App) auditRunsCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List the most recent runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withLedger(cmd.Context(), func(ledger store.Ledger) error {
				runs, err := ledger.Runs(cmd.Context(), limit)
				if err != nil {
					return err
				}
				if len(runs) == 0 {
					printNote(a.out, "no runs recorded")
					return nil
				}

				rows := make([][]string, 0, len(runs))
				for _, r := range runs {
					finished := "-"
					if !r.FinishedAt.IsZero() {
						finished = r.FinishedAt.Sub(r.StartedAt).Round(time.Millisecond).String()
					}
					rows = append(rows, []string{
						r.ID,
						r.Command,
						strconv.FormatBool(r.DryRun),
						r.StartedAt.Local().Format(time.DateTime),
						finished,
					})
				}
				return renderTable(a.out, []string{"run", "command", "dry run", "started", "took"}, rows)
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", defaultRunsLimit, "Number of runs to list")
	return cmd
}

func (a *App) auditShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <run-id>",
		Short: "List the actions of a run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withLedger(cmd.Context(), func(ledger store.Ledger) error {
				actions, err := ledger.Actions(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if len(actions) == 0 {
					printNote(a.out, "no actions recorded for run %s", args[0])
					return nil
				}

				rows := make([][]string, 0, len(actions))
				for _, act := range actions {
					size := ""
					if act.Size > 0 {
						size = humanize.Bytes(uint64(act.Size))
					}
					rows = append(rows, []string{
						act.Kind,
						act.TargetID,
						act.Name,
						act.Detail,
						size,
						strconv.FormatBool(act.Applied),
					})
				}
				return renderTable(a.out, []string{"kind", "id", "name", "detail", "size", "applied"}, rows)
			})
		},
	}
}
