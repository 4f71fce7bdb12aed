package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/galaxy-admin/internal/adapter"
	"github.com/MKhiriev/galaxy-admin/internal/logger"
	"github.com/MKhiriev/galaxy-admin/models"
)

// Tool list file names written by [ToolService.WriteToolLists].
const (
	ToolListLockFile = "tool_list.yaml.lock"
	ToolListFile     = "tool_list.yaml"
)

const dataManagerSection = "Data Managers"

type toolService struct {
	tools  adapter.ToolAPI
	logger *logger.Logger
}

// NewToolService constructs a [ToolService].
func NewToolService(tools adapter.ToolAPI, log *logger.Logger) ToolService {
	return &toolService{tools: tools, logger: log}
}

// newToolList returns an empty tool list with the install flags used for
// exported lists.
func newToolList() models.ToolList {
	return models.ToolList{
		InstallRepositoryDependencies: true,
		InstallResolverDependencies:   false,
		InstallToolDependencies:       false,
	}
}

// ToolLists implements [ToolService]. Repositories appear in order of first
// appearance, revisions sorted.
func (s *toolService) ToolLists(ctx context.Context) (lock, plain models.ToolList, err error) {
	tools, err := s.tools.GetTools(ctx)
	if err != nil {
		return lock, plain, fmt.Errorf("list tools: %w", err)
	}

	type key struct{ name, owner string }
	entries := make(map[key]*models.ToolListEntry)
	var order []key

	for _, t := range tools {
		repo := t.ToolShedRepository
		if repo == nil || repo.Name == "" {
			continue
		}

		section := t.PanelSectionName
		if section == "" {
			if t.ModelClass != models.ModelDataManagerTool {
				return lock, plain, fmt.Errorf("%w for %s", ErrMissingPanelSection, t.ID)
			}
			section = dataManagerSection
		}

		k := key{repo.Name, repo.Owner}
		e, ok := entries[k]
		if !ok {
			e = &models.ToolListEntry{Name: repo.Name, Owner: repo.Owner, ToolPanelSectionLabel: section}
			entries[k] = e
			order = append(order, k)
		}
		if !slices.Contains(e.Revisions, repo.ChangesetRevision) {
			e.Revisions = append(e.Revisions, repo.ChangesetRevision)
		}
	}

	lock, plain = newToolList(), newToolList()
	for _, k := range order {
		e := *entries[k]
		slices.Sort(e.Revisions)
		lock.Tools = append(lock.Tools, e)

		e.Revisions = nil
		plain.Tools = append(plain.Tools, e)
	}
	return lock, plain, nil
}

// WriteToolLists implements [ToolService].
func (s *toolService) WriteToolLists(dir string, lock, plain models.ToolList) error {
	if err := writeYAML(filepath.Join(dir, ToolListLockFile), lock); err != nil {
		return err
	}
	return writeYAML(filepath.Join(dir, ToolListFile), plain)
}

func writeYAML(path string, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// FailedRepositories implements [ToolService].
func (s *toolService) FailedRepositories(ctx context.Context) ([]models.InstalledRepository, error) {
	repos, err := s.tools.GetInstalledRepositories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list installed repositories: %w", err)
	}

	var failed []models.InstalledRepository
	for _, r := range repos {
		if r.Status == models.RepositoryStatusError {
			failed = append(failed, r)
		}
	}
	return failed, nil
}
