package cli

import (
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/galaxy-admin/internal/service"
	"github.com/MKhiriev/galaxy-admin/internal/store"
)

func (a *App) usersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "User account maintenance",
	}
	cmd.AddCommand(a.leftHistoriesCommand(), a.userDeleteCommand())
	return cmd
}

func (a *App) leftHistoriesCommand() *cobra.Command {
	var (
		source string
		opts   service.HistoryOptions
	)

	cmd := &cobra.Command{
		Use:   "left-histories",
		Short: "Report the histories of users who left",
		Long: `Sums the history sizes of every active user that is absent from the user
directory and writes the history ids of each such user to
<outdir>/<username>.histories.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.galaxy()
			if err != nil {
				return err
			}

			var dir service.Directory
			if !opts.AllUsers {
				if dir, err = a.userDirectory(source); err != nil {
					return err
				}
			}

			report, err := service.NewHistoryService(g, g, dir, opts, a.log).Report(cmd.Context())
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(report.Users))
			for _, u := range report.Users {
				rows = append(rows, []string{u.User.Username, strconv.Itoa(len(u.HistoryIDs)), humanize.Bytes(uint64(max(u.Size, 0)))})
			}
			if len(rows) > 0 {
				if err = renderTable(a.out, []string{"user", "histories", "size"}, rows); err != nil {
					return err
				}
			}

			printTitle(a.out, "considered users: %s in %d histories",
				humanize.Bytes(uint64(max(report.ConsideredBytes, 0))), report.ConsideredCount)
			printNote(a.out, "ignored users: %s in %d histories",
				humanize.Bytes(uint64(max(report.IgnoredBytes, 0))), report.IgnoredCount)
			return nil
		},
	}
	cmd.Flags().StringVar(&source, "source", SourceLDAP, "Where to look users up: ldap or system")
	cmd.Flags().StringVar(&opts.OutDir, "outdir", ".", "Directory receiving the <username>.histories files")
	cmd.Flags().BoolVar(&opts.AllUsers, "all-users", false, "Report every user, present or not")
	return cmd
}

func (a *App) userDeleteCommand() *cobra.Command {
	var purge, apply bool

	cmd := &cobra.Command{
		Use:   "delete <username>",
		Short: "Delete a user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.galaxy()
			if err != nil {
				return err
			}

			return a.withRecorder(cmd.Context(), func(rec store.Recorder) error {
				if err := service.NewUserService(g, rec, apply, a.log).Delete(cmd.Context(), args[0], purge); err != nil {
					return err
				}
				if !apply {
					printNote(a.out, "dry run, %s was not deleted", args[0])
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&purge, "purge", false, "Purge the account after deleting it")
	cmd.Flags().BoolVar(&apply, "apply", false, "Delete the account instead of only reporting it")
	return cmd
}
