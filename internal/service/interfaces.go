// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the maintenance commands of galaxy-admin on
// top of the capability interfaces of package adapter.
//
// Every service is constructed with its collaborators and an explicit
// logger; none of them reads global state. Mutating services run in
// dry-run mode unless told otherwise and record what they did through a
// [store.Recorder].
package service

import (
	"context"
	"io"

	"github.com/MKhiriev/galaxy-admin/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=DanglingService,UserFolderService,ProvisionService,QuotaService,HistoryService,UserService,DependencyService,ContainerService,ToolService,ToolshedService,VaultService

// DanglingService finds non-deleted library content below deleted folders.
type DanglingService interface {
	// Scan walks one library and returns the dangling folders, files and
	// file bytes found below it.
	Scan(ctx context.Context, library models.Library) (models.ScanResult, error)

	// ScanAll scans every library, deleted or not, and returns the totals.
	ScanAll(ctx context.Context) (models.ScanResult, error)
}

// UserFolderService prunes per-user folders of the user import library.
type UserFolderService interface {
	// Prune handles the folders of departed users and returns how many
	// were (or would have been) deleted.
	Prune(ctx context.Context) (int, error)
}

// ProvisionService creates user import directories and library folders.
type ProvisionService interface {
	Provision(ctx context.Context) error
}

// QuotaService expires and grants single-user quotas.
type QuotaService interface {
	// Sync expires quotas and, when requestFile exists, applies the quota
	// requests listed in it.
	Sync(ctx context.Context, requestFile string) (models.QuotaReport, error)
}

// HistoryService reports the history storage of departed users.
type HistoryService interface {
	Report(ctx context.Context) (models.HistoryReport, error)
}

// UserService manages user accounts.
type UserService interface {
	// Delete deletes the user with exactly this username and purges it too
	// when purge is set.
	Delete(ctx context.Context, username string, purge bool) error
}

// DependencyService reconciles conda environments and containers.
type DependencyService interface {
	Check(ctx context.Context, condaPrefix string) (models.DependencyReport, error)
	PruneConda(ctx context.Context) ([]models.CondaEnvDecision, error)
	PruneUnused(ctx context.Context) ([]string, error)
}

// ContainerService pre-installs tool containers.
type ContainerService interface {
	// SelectTools returns the tool ids matching the configured filters.
	SelectTools(ctx context.Context) ([]string, error)

	Install(ctx context.Context) ([]models.ContainerInstall, error)
}

// ToolService exports the installed tools.
type ToolService interface {
	// ToolLists returns the tool list with revisions (the lock) and without.
	ToolLists(ctx context.Context) (lock, plain models.ToolList, err error)

	// WriteToolLists writes tool_list.yaml.lock and tool_list.yaml to dir.
	WriteToolLists(dir string, lock, plain models.ToolList) error

	FailedRepositories(ctx context.Context) ([]models.InstalledRepository, error)
}

// ToolshedService exports tool shed categories.
type ToolshedService interface {
	CategoryTools(ctx context.Context, category string) ([]models.CategoryTool, error)

	// Render writes tools as a YAML tool list to out and a comment header
	// per repository to comments.
	Render(out, comments io.Writer, tools []models.CategoryTool) error
}

// VaultService rotates vault encryption keys.
type VaultService interface {
	// Rotate prepends a fresh key to the vault file at path and returns the
	// number of keys before and after.
	Rotate(path string) (before, after int, err error)
}

// Directory answers whether an account still exists in the organisation.
type Directory interface {
	// Lookup returns the account named username. ok is false when it does
	// not exist.
	Lookup(ctx context.Context, username string) (user models.DirectoryUser, ok bool, err error)
}

// Notifier delivers notifications to users.
type Notifier interface {
	Notify(ctx context.Context, to, subject, body string) error
}

// CommandRunner runs host commands.
type CommandRunner interface {
	Run(ctx context.Context, name string, args []string) error
}
