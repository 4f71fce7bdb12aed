package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/galaxy-admin/internal/service"
	"github.com/MKhiriev/galaxy-admin/internal/store"
)

func (a *App) depsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deps",
		Short: "Tool dependency maintenance",
	}
	cmd.AddCommand(a.depsCheckCommand(), a.depsPruneCondaCommand(), a.depsUnusedCommand())
	return cmd
}

func (a *App) depsCheckCommand() *cobra.Command {
	var condaPrefix string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Compare conda environments with tool requirements and containers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.galaxy()
			if err != nil {
				return err
			}

			report, err := service.NewDependencyService(g, store.NewNopRecorder(), false, a.log).Check(cmd.Context(), condaPrefix)
			if err != nil {
				return err
			}

			for _, dir := range report.UnusedCondaDirs {
				a.printf("Potentially unused: %s\n", dir)
			}
			for _, tool := range report.Uncovered {
				a.printf("%s has no conda and no container\n", tool)
			}
			printTitle(a.out, "%d conda environments, %d containers", report.CondaEnvs, report.Containers)
			return nil
		},
	}
	cmd.Flags().StringVar(&condaPrefix, "conda-prefix", "", "Conda prefix; derived from the environments when empty")
	return cmd
}

func (a *App) depsPruneCondaCommand() *cobra.Command {
	var remove bool

	cmd := &cobra.Command{
		Use:   "prune-conda",
		Short: "Remove conda environments of tools that all have containers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.galaxy()
			if err != nil {
				return err
			}

			return a.withRecorder(cmd.Context(), func(rec store.Recorder) error {
				decisions, err := service.NewDependencyService(g, rec, remove, a.log).PruneConda(cmd.Context())
				if err != nil {
					return err
				}

				rows := make([][]string, 0, len(decisions))
				for _, d := range decisions {
					state := "keep"
					switch {
					case d.Removed:
						state = "removed"
					case d.Err != nil:
						state = "failed"
					case d.Removable:
						state = "removable"
					}
					rows = append(rows, []string{
						d.Path,
						strconv.Itoa(d.Covered) + "/" + strconv.Itoa(len(d.Tools)),
						state,
						strings.Join(d.Tools, " "),
					})
				}
				if len(rows) == 0 {
					return nil
				}
				return renderTable(a.out, []string{"environment", "covered", "state", "tools"}, rows)
			})
		},
	}
	cmd.Flags().BoolVar(&remove, "remove", false, "Remove covered environments instead of only reporting them")
	return cmd
}

func (a *App) depsUnusedCommand() *cobra.Command {
	var remove bool

	cmd := &cobra.Command{
		Use:   "unused",
		Short: "List or remove unused dependency paths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.galaxy()
			if err != nil {
				return err
			}

			return a.withRecorder(cmd.Context(), func(rec store.Recorder) error {
				paths, err := service.NewDependencyService(g, rec, remove, a.log).PruneUnused(cmd.Context())
				if err != nil {
					return err
				}

				verb := "unused"
				if remove {
					verb = "removed"
				}
				for _, p := range paths {
					a.printf("%s %s\n", verb, p)
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&remove, "remove", false, "Ask Galaxy to delete the unused paths")
	return cmd
}
