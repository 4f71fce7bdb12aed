package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/galaxy-admin/internal/adapter"
	"github.com/MKhiriev/galaxy-admin/internal/service"
)

func (a *App) toolsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "Installed tool exports",
	}
	cmd.AddCommand(a.toolsListCommand(), a.toolsFailedCommand())
	return cmd
}

func (a *App) toolsListCommand() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Write the tool lists of the installed tools",
		Long: `Writes tool_list.yaml.lock, listing every installed tool shed repository
with its revisions, and tool_list.yaml without revisions. Both are in the
format read by ephemeris shed-tools.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.galaxy()
			if err != nil {
				return err
			}

			svc := service.NewToolService(g, a.log)
			lock, plain, err := svc.ToolLists(cmd.Context())
			if err != nil {
				return err
			}
			if err = svc.WriteToolLists(outDir, lock, plain); err != nil {
				return err
			}

			a.printf("wrote %s and %s (%d repositories)\n",
				filepath.Join(outDir, service.ToolListLockFile), filepath.Join(outDir, service.ToolListFile), len(lock.Tools))
			return nil
		},
	}
	cmd.Flags().StringVar(&outDir, "outdir", ".", "Directory receiving the tool lists")
	return cmd
}

func (a *App) toolsFailedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "failed",
		Short: "List repositories whose installation failed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.galaxy()
			if err != nil {
				return err
			}

			failed, err := service.NewToolService(g, a.log).FailedRepositories(cmd.Context())
			if err != nil {
				return err
			}
			for _, repo := range failed {
				a.printf("- failed %s (Owner: %s)\n", repo.Name, repo.Owner)
			}
			return nil
		},
	}
}

func (a *App) toolshedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toolshed",
		Short: "Tool shed exports",
	}
	cmd.AddCommand(a.toolshedCategoryCommand())
	return cmd
}

func (a *App) toolshedCategoryCommand() *cobra.Command {
	var (
		category string
		opts     service.ToolshedOptions
	)

	cmd := &cobra.Command{
		Use:   "category",
		Short: "Write the repositories of a tool shed category as a tool list",
		Long: `Prints a tool list of every non-deprecated repository in --category to
stdout. A comment header describing each repository goes to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			shed, err := adapter.NewToolshedHTTPAdapter(a.cfg.Toolshed.URL, a.cfg.Galaxy.RequestTimeout, a.log)
			if err != nil {
				return err
			}

			opts.URL = a.cfg.Toolshed.URL
			svc := service.NewToolshedService(shed, opts, a.log)
			tools, err := svc.CategoryTools(cmd.Context(), category)
			if err != nil {
				return err
			}
			return svc.Render(a.out, a.errOut, tools)
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "Tool shed category name")
	cmd.Flags().StringVar(&opts.Owner, "owner", "", "Only repositories of this owner")
	cmd.Flags().BoolVar(&opts.Latest, "latest", false, "Only the newest revision of each repository")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}
