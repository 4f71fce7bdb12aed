package cli

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/galaxy-admin/internal/service"
	"github.com/MKhiriev/galaxy-admin/internal/store"
	"github.com/MKhiriev/galaxy-admin/models"
)

func (a *App) containersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "containers",
		Short: "Tool container maintenance",
	}
	cmd.AddCommand(a.containersInstallCommand())
	return cmd
}

func (a *App) containersInstallCommand() *cobra.Command {
	var opts service.ContainerOptions

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Resolve and pre-install tool containers",
		Long: `Resolves the container of every selected tool and, with --install, asks
Galaxy to build or pull the ones that are missing. Tools are selected with
the regular expressions of --include and --exclude.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.galaxy()
			if err != nil {
				return err
			}

			return a.withRecorder(cmd.Context(), func(rec store.Recorder) error {
				svc, err := service.NewContainerService(g, g, rec, opts, a.log)
				if err != nil {
					return err
				}

				results, err := svc.Install(cmd.Context())
				if err != nil {
					return err
				}

				var failed int
				for _, r := range results {
					switch r.Status {
					case models.ContainerInstalled:
						a.printf("Installed %s\n", r.Container)
					case models.ContainerFailed:
						failed++
					}
				}
				printTitle(a.out, "%d tools, %d failed", len(results), failed)
				return nil
			})
		},
	}
	f := cmd.Flags()
	f.StringSliceVar(&opts.Include, "include", nil, "Only tools whose id matches this expression")
	f.StringSliceVar(&opts.Exclude, "exclude", nil, "Skip tools whose id matches this expression")
	f.BoolVar(&opts.Latest, "latest", false, "Only the newest version of each tool")
	f.BoolVar(&opts.Install, "install", false, "Install missing containers instead of only resolving them")
	return cmd
}
