// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the remote services administered by galaxy-admin: the Galaxy REST
// API and the Galaxy tool shed.
//
// Services depend on the narrow capability interfaces declared here
// ([LibraryAPI], [UserAPI], [QuotaAPI], ...). [GalaxyHTTPAdapter] implements
// all Galaxy capabilities over HTTP; [ToolshedHTTPAdapter] implements
// [ToolshedAPI].
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/galaxy-admin/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// FolderPermissions lists the role ids granted on a library folder.
type FolderPermissions struct {
	AddIDs    []string
	ManageIDs []string
	ModifyIDs []string
}

// LibraryAPI covers data libraries and their folder trees.
type LibraryAPI interface {
	// GetLibraries lists libraries whose deleted flag equals deleted.
	GetLibraries(ctx context.Context, deleted bool) ([]models.Library, error)

	// CreateLibrary creates a new, empty library.
	CreateLibrary(ctx context.Context, library models.Library) (models.Library, error)

	// GetLibraryContents returns the flat listing of every item of the
	// library, names being full paths inside the library.
	GetLibraryContents(ctx context.Context, libraryID string) ([]models.LibraryContent, error)

	// ShowFolder returns the folder without its contents. Only this view
	// reports the folder's own deleted flag and its item count.
	ShowFolder(ctx context.Context, folderID string) (models.FolderDetails, error)

	// GetFolderContents returns all direct children of the folder. Pages are
	// fetched until the listing is complete. With includeDeleted, deleted
	// children are listed too.
	GetFolderContents(ctx context.Context, folderID string, includeDeleted bool) (models.FolderContents, error)

	// CreateFolder creates a sub-folder below parentID.
	CreateFolder(ctx context.Context, parentID, name, description string) (models.FolderDetails, error)

	// DeleteFolder marks the folder deleted.
	DeleteFolder(ctx context.Context, folderID string) error

	// DeleteLibraryDataset deletes a dataset of the library; with purge its
	// content is removed permanently.
	DeleteLibraryDataset(ctx context.Context, libraryID, datasetID string, purge bool) error

	// SetFolderPermissions replaces the add, manage and modify roles of the
	// folder.
	SetFolderPermissions(ctx context.Context, folderID string, perms FolderPermissions) error
}

// UserAPI covers user accounts and roles.
type UserAPI interface {
	// GetUsers lists users. A non-empty name filters by username substring
	// on the server side.
	GetUsers(ctx context.Context, name string) ([]models.User, error)

	// DeleteUser marks the user deleted, or purges it when purge is set.
	DeleteUser(ctx context.Context, userID string, purge bool) error

	// GetRoles lists all roles.
	GetRoles(ctx context.Context) ([]models.Role, error)
}

// HistoryAPI covers history listings across all users.
type HistoryAPI interface {
	// GetHistories returns one page of the histories of all users, reduced
	// to id, user_id and size.
	GetHistories(ctx context.Context, limit, offset int) ([]models.History, error)
}

// QuotaAPI covers storage quotas.
type QuotaAPI interface {
	GetQuotas(ctx context.Context, deleted bool) ([]models.Quota, error)
	ShowQuota(ctx context.Context, quotaID string, deleted bool) (models.Quota, error)
	CreateQuota(ctx context.Context, payload models.QuotaPayload) error
	UpdateQuota(ctx context.Context, quotaID string, payload models.QuotaPayload) error
	DeleteQuota(ctx context.Context, quotaID string) error
	UndeleteQuota(ctx context.Context, quotaID string) error
}

// InstanceAPI covers instance-wide information.
type InstanceAPI interface {
	GetConfig(ctx context.Context) (models.GalaxyConfig, error)
	GetVersion(ctx context.Context) (models.Version, error)
	Whoami(ctx context.Context) (models.Whoami, error)
}

// ToolAPI covers installed tools and tool shed repositories.
type ToolAPI interface {
	// GetTools returns the flat list of all tools, not grouped by panel
	// section.
	GetTools(ctx context.Context) ([]models.Tool, error)

	// GetInstalledRepositories lists the tool shed repositories installed
	// into Galaxy.
	GetInstalledRepositories(ctx context.Context) ([]models.InstalledRepository, error)
}

// DependencyAPI covers the dependency and container resolvers.
type DependencyAPI interface {
	// SummarizeToolbox returns the dependency resolution of all tools,
	// indexed by tools.
	SummarizeToolbox(ctx context.Context) ([]models.DependencySummary, error)

	// ResolveToolbox returns the container resolved for each of toolIDs
	// (all tools when empty). With install, missing containers are
	// installed as part of the call.
	ResolveToolbox(ctx context.Context, toolIDs []string, install bool) ([]models.ContainerResolution, error)

	// UnusedDependencyPaths lists dependency environments no tool uses.
	UnusedDependencyPaths(ctx context.Context) ([]string, error)

	// DeleteUnusedDependencyPaths removes the given unused environments.
	DeleteUnusedDependencyPaths(ctx context.Context, paths []string) error
}

// ToolshedAPI covers the public tool shed catalogue.
type ToolshedAPI interface {
	GetCategories(ctx context.Context) ([]models.ShedCategory, error)
	GetCategoryRepositories(ctx context.Context, categoryID string) (models.CategoryRepositories, error)
}
