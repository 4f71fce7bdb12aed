// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli builds the galaxy-admin command tree. Every sub-command
// resolves its configuration, logger and collaborators on invocation and
// hands off to a service of package service.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/galaxy-admin/internal/adapter"
	"github.com/MKhiriev/galaxy-admin/internal/config"
	"github.com/MKhiriev/galaxy-admin/internal/directory"
	"github.com/MKhiriev/galaxy-admin/internal/logger"
	"github.com/MKhiriev/galaxy-admin/internal/service"
	"github.com/MKhiriev/galaxy-admin/internal/store"
)

// Directory sources accepted by --source.
const (
	SourceLDAP   = "ldap"
	SourceSystem = "system"
)

// App holds the state shared by the commands of one invocation.
type App struct {
	// Version is printed by --version.
	Version string

	flags config.StructuredConfig
	cfg   *config.StructuredConfig
	log   *logger.Logger

	out    io.Writer
	errOut io.Writer
}

// NewApp returns an App writing reports to out and logs to errOut.
func NewApp(out, errOut io.Writer) *App {
	return &App{out: out, errOut: errOut, log: logger.Nop()}
}

// Execute parses args and runs the selected command.
func (a *App) Execute(ctx context.Context, args []string) error {
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(a.out)
	root.SetErr(a.errOut)
	return root.ExecuteContext(ctx)
}

func (a *App) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "galaxy-admin",
		Short: "Maintenance commands for a Galaxy instance",
		Long: `galaxy-admin bundles the maintenance jobs of a Galaxy server: library
cleanup, user import folders, quotas, histories of departed users, tool
dependencies, tool lists and vault key rotation.

Commands that change anything run as a dry run unless asked otherwise.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	if a.Version != "" {
		root.Version = a.Version
		root.SetVersionTemplate("{{.Version}}")
	}
	config.BindFlags(root.PersistentFlags(), &a.flags)

	root.AddCommand(
		a.librariesCommand(),
		a.quotaCommand(),
		a.usersCommand(),
		a.depsCommand(),
		a.containersCommand(),
		a.toolsCommand(),
		a.toolshedCommand(),
		a.vaultCommand(),
		a.auditCommand(),
	)
	return root
}

// setup loads the configuration and builds the logger. The command path
// without the binary name is the logger role.
func (a *App) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(&a.flags)
	if err != nil {
		return err
	}

	level, err := logger.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		return err
	}

	role := strings.TrimPrefix(cmd.CommandPath(), cmd.Root().Name()+" ")
	a.cfg = cfg
	a.log = logger.NewLogger(role, level, a.errOut)
	return nil
}

func (a *App) galaxy() (*adapter.GalaxyHTTPAdapter, error) {
	g, err := a.cfg.GalaxyView()
	if err != nil {
		return nil, err
	}
	return adapter.NewGalaxyHTTPAdapter(g, a.log)
}

// withRecorder opens the audit ledger for the duration of fn. Without
// --audit-db fn receives the no-op recorder.
func (a *App) withRecorder(ctx context.Context, fn func(store.Recorder) error) error {
	rec, err := store.NewRecorder(ctx, a.cfg.Audit.DSN, a.log)
	if err != nil {
		return fmt.Errorf("open audit ledger: %w", err)
	}
	defer func() {
		if cerr := rec.Close(); cerr != nil {
			a.log.Error().Err(cerr).Msg("close audit ledger")
		}
	}()

	return fn(rec)
}

func (a *App) userDirectory(source string) (service.Directory, error) {
	switch source {
	case SourceLDAP:
		cfg, err := a.cfg.LDAPView()
		if err != nil {
			return nil, err
		}
		return directory.NewLDAPDirectory(cfg, a.log), nil
	case SourceSystem:
		return directory.NewSystemDirectory(), nil
	default:
		return nil, fmt.Errorf("unknown user source %q, use %s or %s", source, SourceLDAP, SourceSystem)
	}
}
