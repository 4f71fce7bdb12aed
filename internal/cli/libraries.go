package cli

import (
	"errors"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/galaxy-admin/internal/runner"
	"github.com/MKhiriev/galaxy-admin/internal/service"
	"github.com/MKhiriev/galaxy-admin/internal/store"
)

func (a *App) librariesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "libraries",
		Short: "Data library maintenance",
	}
	cmd.AddCommand(a.danglingCommand(), a.leftUsersCommand(), a.provisionCommand())
	return cmd
}

func (a *App) danglingCommand() *cobra.Command {
	var del bool

	cmd := &cobra.Command{
		Use:   "dangling",
		Short: "Find non-deleted content below deleted library folders",
		Long: `Walks every data library, deleted ones included, and reports folders and
files that are not deleted but sit below a deleted folder. Such content is
invisible in the UI and keeps its datasets from being purged.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.galaxy()
			if err != nil {
				return err
			}

			return a.withRecorder(cmd.Context(), func(rec store.Recorder) error {
				totals, err := service.NewDanglingService(g, rec, del, a.log).ScanAll(cmd.Context())
				if err != nil {
					return err
				}

				verb := "found"
				if del {
					verb = "deleted"
				}
				printTitle(a.out, "%s %d dangling folders and %d dangling files (%s)",
					verb, totals.Folders, totals.Files, humanize.Bytes(uint64(max(totals.Bytes, 0))))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&del, "delete", false, "Delete dangling content instead of only reporting it")
	return cmd
}

func (a *App) leftUsersCommand() *cobra.Command {
	var opts service.UserFolderOptions

	cmd := &cobra.Command{
		Use:   "left-users",
		Short: "Prune user library folders of departed users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.galaxy()
			if err != nil {
				return err
			}

			return a.withRecorder(cmd.Context(), func(rec store.Recorder) error {
				n, err := service.NewUserFolderService(g, g, rec, opts, a.log).Prune(cmd.Context())
				if err != nil {
					return err
				}

				if opts.Delete {
					printTitle(a.out, "deleted %d user folders", n)
				} else {
					printTitle(a.out, "%d user folders would be deleted", n)
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&opts.Delete, "delete", false, "Delete the folders instead of only reporting them")
	cmd.Flags().BoolVar(&opts.AllUsers, "all-users", false, "Consider the folders of present users too")
	return cmd
}

func (a *App) provisionCommand() *cobra.Command {
	opts := service.ProvisionOptions{
		ServiceAccount: service.DefaultServiceAccount,
		ServiceGroup:   service.DefaultServiceGroup,
		ChownScript:    service.DefaultChownScript,
		MountPrefix:    service.DefaultMountPrefix,
		RetentionDays:  service.DefaultRetentionDays,
	}

	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Create user import directories and their library folders",
		Long: `For every Galaxy user present in LDAP, creates the import directory
below the library import dir of the instance, grants it to the user and the
Galaxy service account, and creates the matching folder in the user library.
Files older than the retention period are removed from existing directories.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.RetentionDays < 0 {
				return errors.New("--retention-days must not be negative")
			}

			g, err := a.galaxy()
			if err != nil {
				return err
			}
			dir, err := a.userDirectory(SourceLDAP)
			if err != nil {
				return err
			}

			return a.withRecorder(cmd.Context(), func(rec store.Recorder) error {
				svc := service.NewProvisionService(g, g, g, dir, runner.NewExecRunner(a.log), rec, opts, a.log)
				return svc.Provision(cmd.Context())
			})
		},
	}

	f := cmd.Flags()
	f.BoolVar(&opts.Apply, "apply", false, "Perform the changes instead of only logging them")
	f.StringVar(&opts.ServiceAccount, "service-account", opts.ServiceAccount, "System account Galaxy runs as")
	f.StringVar(&opts.ServiceGroup, "service-group", opts.ServiceGroup, "Group import directories belong to")
	f.StringVar(&opts.ChownScript, "chown-script", opts.ChownScript, "Script run through sudo to fix ownership")
	f.StringVar(&opts.MountPrefix, "mount-prefix", opts.MountPrefix, "Prefix stripped from the import dir on this host")
	f.StringSliceVar(&opts.SkipPrefixes, "skip-prefix", nil, "Skip usernames starting with this prefix")
	f.StringSliceVar(&opts.SkipUsers, "skip-user", nil, "Skip this username")
	f.IntVar(&opts.RetentionDays, "retention-days", opts.RetentionDays, "Remove files older than this many days")
	return cmd
}
