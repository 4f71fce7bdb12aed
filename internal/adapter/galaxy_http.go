package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/galaxy-admin/internal/config"
	"github.com/MKhiriev/galaxy-admin/internal/logger"
	"github.com/MKhiriev/galaxy-admin/internal/utils"
	"github.com/MKhiriev/galaxy-admin/models"
)

// folderPageSize is the number of folder entries requested per page.
const folderPageSize = 1000

// GalaxyHTTPAdapter talks to the Galaxy REST API. It implements
// [LibraryAPI], [UserAPI], [HistoryAPI], [QuotaAPI], [InstanceAPI],
// [ToolAPI] and [DependencyAPI].
type GalaxyHTTPAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewGalaxyHTTPAdapter constructs the Galaxy adapter. The base URL is
// normalised and the API key is attached to every request.
//
// Returns an error if cfg.URL is empty or cannot be parsed as a URL.
func NewGalaxyHTTPAdapter(cfg config.Galaxy, log *logger.Logger) (*GalaxyHTTPAdapter, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, ErrEmptyAddress
	}

	client, err := utils.NewAPIClient(cfg.URL, cfg.Key, cfg.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid galaxy url: %w", err)
	}

	return &GalaxyHTTPAdapter{client: client, logger: log}, nil
}

// ── libraries ────────────────────────────────────────────────────────────────

// GetLibraries implements [LibraryAPI]. GET /api/libraries?deleted=<bool>.
func (g *GalaxyHTTPAdapter) GetLibraries(ctx context.Context, deleted bool) ([]models.Library, error) {
	var libraries []models.Library
	err := g.get(ctx, "get libraries", "/api/libraries",
		map[string]string{"deleted": strconv.FormatBool(deleted)}, &libraries)
	return libraries, err
}

// CreateLibrary implements [LibraryAPI]. POST /api/libraries.
func (g *GalaxyHTTPAdapter) CreateLibrary(ctx context.Context, library models.Library) (models.Library, error) {
	payload := map[string]string{
		"name":        library.Name,
		"description": library.Description,
		"synopsis":    library.Synopsis,
	}

	var created models.Library
	err := g.send(ctx, "create library", resty.MethodPost, "/api/libraries", payload, &created)
	return created, err
}

// GetLibraryContents implements [LibraryAPI]. GET /api/libraries/{id}/contents.
func (g *GalaxyHTTPAdapter) GetLibraryContents(ctx context.Context, libraryID string) ([]models.LibraryContent, error) {
	var contents []models.LibraryContent
	err := g.get(ctx, "get library contents", "/api/libraries/"+url.PathEscape(libraryID)+"/contents", nil, &contents)
	return contents, err
}

// DeleteLibraryDataset implements [LibraryAPI].
// DELETE /api/libraries/{library}/contents/{dataset} with {"purged": purge}.
func (g *GalaxyHTTPAdapter) DeleteLibraryDataset(ctx context.Context, libraryID, datasetID string, purge bool) error {
	path := "/api/libraries/" + url.PathEscape(libraryID) + "/contents/" + url.PathEscape(datasetID)
	return g.send(ctx, "delete library dataset", resty.MethodDelete, path, map[string]bool{"purged": purge}, nil)
}

// ── folders ──────────────────────────────────────────────────────────────────

// ShowFolder implements [LibraryAPI]. GET /api/folders/{id}.
func (g *GalaxyHTTPAdapter) ShowFolder(ctx context.Context, folderID string) (models.FolderDetails, error) {
	var details models.FolderDetails
	err := g.get(ctx, "show folder", "/api/folders/"+url.PathEscape(folderID), nil, &details)
	return details, err
}

// GetFolderContents implements [LibraryAPI]. It pages through
// GET /api/folders/{id}/contents until total_rows entries were read or the
// server returns an empty page.
func (g *GalaxyHTTPAdapter) GetFolderContents(ctx context.Context, folderID string, includeDeleted bool) (models.FolderContents, error) {
	var all models.FolderContents
	path := "/api/folders/" + url.PathEscape(folderID) + "/contents"

	for offset := 0; ; {
		var page models.FolderContents
		params := map[string]string{
			"limit":           strconv.Itoa(folderPageSize),
			"offset":          strconv.Itoa(offset),
			"include_deleted": strconv.FormatBool(includeDeleted),
		}
		if err := g.get(ctx, "get folder contents", path, params, &page); err != nil {
			return models.FolderContents{}, err
		}

		if offset == 0 {
			all.Metadata = page.Metadata
		}
		all.Entries = append(all.Entries, page.Entries...)
		offset += len(page.Entries)

		if len(page.Entries) == 0 || offset >= page.Metadata.TotalRows {
			break
		}
	}

	return all, nil
}

// CreateFolder implements [LibraryAPI]. POST /api/folders/{parent}.
func (g *GalaxyHTTPAdapter) CreateFolder(ctx context.Context, parentID, name, description string) (models.FolderDetails, error) {
	payload := map[string]string{"name": name, "description": description}

	var created models.FolderDetails
	err := g.send(ctx, "create folder", resty.MethodPost, "/api/folders/"+url.PathEscape(parentID), payload, &created)
	return created, err
}

// DeleteFolder implements [LibraryAPI]. DELETE /api/folders/{id}.
func (g *GalaxyHTTPAdapter) DeleteFolder(ctx context.Context, folderID string) error {
	return g.send(ctx, "delete folder", resty.MethodDelete, "/api/folders/"+url.PathEscape(folderID), nil, nil)
}

// SetFolderPermissions implements [LibraryAPI].
// POST /api/folders/{id}/permissions?action=set_permissions.
func (g *GalaxyHTTPAdapter) SetFolderPermissions(ctx context.Context, folderID string, perms FolderPermissions) error {
	payload := map[string][]string{
		"add_ids[]":    nonNil(perms.AddIDs),
		"manage_ids[]": nonNil(perms.ManageIDs),
		"modify_ids[]": nonNil(perms.ModifyIDs),
	}
	path := "/api/folders/" + url.PathEscape(folderID) + "/permissions"
	return doRequest(ctx, g.client, g.logger, "set folder permissions", resty.MethodPost, path,
		map[string]string{"action": "set_permissions"}, payload, nil)
}

// ── users ────────────────────────────────────────────────────────────────────

// GetUsers implements [UserAPI]. GET /api/users[?f_name=name].
func (g *GalaxyHTTPAdapter) GetUsers(ctx context.Context, name string) ([]models.User, error) {
	var params map[string]string
	if name != "" {
		params = map[string]string{"f_name": name}
	}

	var users []models.User
	err := g.get(ctx, "get users", "/api/users", params, &users)
	return users, err
}

// DeleteUser implements [UserAPI]. DELETE /api/users/{id}, with
// {"purge": true} when purging.
func (g *GalaxyHTTPAdapter) DeleteUser(ctx context.Context, userID string, purge bool) error {
	var payload any
	if purge {
		payload = map[string]bool{"purge": true}
	}
	return g.send(ctx, "delete user", resty.MethodDelete, "/api/users/"+url.PathEscape(userID), payload, nil)
}

// GetRoles implements [UserAPI]. GET /api/roles.
func (g *GalaxyHTTPAdapter) GetRoles(ctx context.Context) ([]models.Role, error) {
	var roles []models.Role
	err := g.get(ctx, "get roles", "/api/roles", nil, &roles)
	return roles, err
}

// GetHistories implements [HistoryAPI].
// GET /api/histories?all=true&keys=id,user_id,size&limit=&offset=.
func (g *GalaxyHTTPAdapter) GetHistories(ctx context.Context, limit, offset int) ([]models.History, error) {
	params := map[string]string{
		"all":    "true",
		"keys":   "id,user_id,size",
		"limit":  strconv.Itoa(limit),
		"offset": strconv.Itoa(offset),
	}

	var histories []models.History
	err := g.get(ctx, "get histories", "/api/histories", params, &histories)
	return histories, err
}

// ── quotas ───────────────────────────────────────────────────────────────────

func quotaPath(quotaID string, deleted bool) string {
	base := "/api/quotas"
	if deleted {
		base += "/deleted"
	}
	if quotaID != "" {
		base += "/" + url.PathEscape(quotaID)
	}
	return base
}

// GetQuotas implements [QuotaAPI]. GET /api/quotas or /api/quotas/deleted.
func (g *GalaxyHTTPAdapter) GetQuotas(ctx context.Context, deleted bool) ([]models.Quota, error) {
	var quotas []models.Quota
	if err := g.get(ctx, "get quotas", quotaPath("", deleted), nil, &quotas); err != nil {
		return nil, err
	}
	for i := range quotas {
		quotas[i].Deleted = deleted
	}
	return quotas, nil
}

// ShowQuota implements [QuotaAPI]. GET /api/quotas[/deleted]/{id}.
func (g *GalaxyHTTPAdapter) ShowQuota(ctx context.Context, quotaID string, deleted bool) (models.Quota, error) {
	var quota models.Quota
	if err := g.get(ctx, "show quota", quotaPath(quotaID, deleted), nil, &quota); err != nil {
		return models.Quota{}, err
	}
	quota.Deleted = deleted
	return quota, nil
}

// CreateQuota implements [QuotaAPI]. POST /api/quotas.
func (g *GalaxyHTTPAdapter) CreateQuota(ctx context.Context, payload models.QuotaPayload) error {
	return g.send(ctx, "create quota", resty.MethodPost, quotaPath("", false), payload, nil)
}

// UpdateQuota implements [QuotaAPI]. PUT /api/quotas/{id}.
func (g *GalaxyHTTPAdapter) UpdateQuota(ctx context.Context, quotaID string, payload models.QuotaPayload) error {
	return g.send(ctx, "update quota", resty.MethodPut, quotaPath(quotaID, false), payload, nil)
}

// DeleteQuota implements [QuotaAPI]. DELETE /api/quotas/{id}.
func (g *GalaxyHTTPAdapter) DeleteQuota(ctx context.Context, quotaID string) error {
	return g.send(ctx, "delete quota", resty.MethodDelete, quotaPath(quotaID, false), nil, nil)
}

// UndeleteQuota implements [QuotaAPI]. POST /api/quotas/deleted/{id}/undelete.
func (g *GalaxyHTTPAdapter) UndeleteQuota(ctx context.Context, quotaID string) error {
	return g.send(ctx, "undelete quota", resty.MethodPost, quotaPath(quotaID, true)+"/undelete", nil, nil)
}

// ── instance ─────────────────────────────────────────────────────────────────

// GetConfig implements [InstanceAPI]. GET /api/configuration.
func (g *GalaxyHTTPAdapter) GetConfig(ctx context.Context) (models.GalaxyConfig, error) {
	var cfg models.GalaxyConfig
	err := g.get(ctx, "get configuration", "/api/configuration", nil, &cfg)
	return cfg, err
}

// GetVersion implements [InstanceAPI]. GET /api/version.
func (g *GalaxyHTTPAdapter) GetVersion(ctx context.Context) (models.Version, error) {
	var v models.Version
	err := g.get(ctx, "get version", "/api/version", nil, &v)
	return v, err
}

// Whoami implements [InstanceAPI]. GET /api/whoami.
func (g *GalaxyHTTPAdapter) Whoami(ctx context.Context) (models.Whoami, error) {
	var w models.Whoami
	err := g.get(ctx, "whoami", "/api/whoami", nil, &w)
	return w, err
}

// ── tools ────────────────────────────────────────────────────────────────────

// GetTools implements [ToolAPI]. GET /api/tools?in_panel=false.
func (g *GalaxyHTTPAdapter) GetTools(ctx context.Context) ([]models.Tool, error) {
	var tools []models.Tool
	err := g.get(ctx, "get tools", "/api/tools", map[string]string{"in_panel": "false"}, &tools)
	return tools, err
}

// GetInstalledRepositories implements [ToolAPI]. GET /api/tool_shed_repositories.
func (g *GalaxyHTTPAdapter) GetInstalledRepositories(ctx context.Context) ([]models.InstalledRepository, error) {
	var repos []models.InstalledRepository
	err := g.get(ctx, "get tool shed repositories", "/api/tool_shed_repositories", nil, &repos)
	return repos, err
}

// ── dependency resolution ────────────────────────────────────────────────────

// SummarizeToolbox implements [DependencyAPI].
// GET /api/dependency_resolvers/toolbox?index_by=tools.
func (g *GalaxyHTTPAdapter) SummarizeToolbox(ctx context.Context) ([]models.DependencySummary, error) {
	var summary []models.DependencySummary
	err := g.get(ctx, "summarize toolbox", "/api/dependency_resolvers/toolbox",
		map[string]string{"index_by": "tools"}, &summary)
	return summary, err
}

// ResolveToolbox implements [DependencyAPI]. Without install it is
// GET /api/container_resolvers/toolbox; with install it is
// POST /api/container_resolvers/toolbox/install.
func (g *GalaxyHTTPAdapter) ResolveToolbox(ctx context.Context, toolIDs []string, install bool) ([]models.ContainerResolution, error) {
	var res []models.ContainerResolution

	if !install {
		var params map[string]string
		if len(toolIDs) > 0 {
			params = map[string]string{"tool_ids": strings.Join(toolIDs, ",")}
		}
		err := g.get(ctx, "resolve toolbox", "/api/container_resolvers/toolbox", params, &res)
		return res, err
	}

	payload := map[string][]string{"tool_ids": nonNil(toolIDs)}
	err := g.send(ctx, "resolve toolbox with install", resty.MethodPost,
		"/api/container_resolvers/toolbox/install", payload, &res)
	return res, err
}

// UnusedDependencyPaths implements [DependencyAPI].
// GET /api/dependency_resolvers/unused_paths.
func (g *GalaxyHTTPAdapter) UnusedDependencyPaths(ctx context.Context) ([]string, error) {
	var paths []string
	err := g.get(ctx, "unused dependency paths", "/api/dependency_resolvers/unused_paths", nil, &paths)
	return paths, err
}

// DeleteUnusedDependencyPaths implements [DependencyAPI].
// PUT /api/dependency_resolvers/unused_paths with {"paths": [...]}.
func (g *GalaxyHTTPAdapter) DeleteUnusedDependencyPaths(ctx context.Context, paths []string) error {
	return g.send(ctx, "delete unused dependency paths", resty.MethodPut,
		"/api/dependency_resolvers/unused_paths", map[string][]string{"paths": nonNil(paths)}, nil)
}

// ── plumbing ─────────────────────────────────────────────────────────────────

func (g *GalaxyHTTPAdapter) get(ctx context.Context, op, path string, params map[string]string, result any) error {
	return doRequest(ctx, g.client, g.logger, op, resty.MethodGet, path, params, nil, result)
}

func (g *GalaxyHTTPAdapter) send(ctx context.Context, op, method, path string, body, result any) error {
	return doRequest(ctx, g.client, g.logger, op, method, path, nil, body, result)
}

// doRequest performs one round trip and decodes a JSON response into result
// (when non-nil). Errors are wrapped with op.
func doRequest(ctx context.Context, client *utils.HTTPClient, log *logger.Logger,
	op, method, path string, params map[string]string, body, result any) error {
	req := client.R().SetContext(ctx)
	if len(params) > 0 {
		req.SetQueryParams(params)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	log.Debug().Str("method", method).Str("path", path).Msg(op)

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s request: %w", op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if result == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err = json.Unmarshal(resp.Body(), result); err != nil {
		return fmt.Errorf("decode %s response: %w", op, err)
	}

	return nil
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
