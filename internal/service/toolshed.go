package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/galaxy-admin/internal/adapter"
	"github.com/MKhiriev/galaxy-admin/internal/logger"
	"github.com/MKhiriev/galaxy-admin/models"
)

// ToolshedOptions controls [ToolshedService].
type ToolshedOptions struct {
	// URL is written as tool_shed_url of every entry.
	URL string

	// Owner keeps only repositories of this owner when set.
	Owner string

	// Latest keeps only the newest revision of each repository.
	Latest bool
}

type toolshedService struct {
	shed   adapter.ToolshedAPI
	opts   ToolshedOptions
	logger *logger.Logger
}

// NewToolshedService constructs a [ToolshedService].
func NewToolshedService(shed adapter.ToolshedAPI, opts ToolshedOptions, log *logger.Logger) ToolshedService {
	return &toolshedService{shed: shed, opts: opts, logger: log}
}

// CategoryTools implements [ToolshedService]. Revisions are ordered newest
// first.
func (s *toolshedService) CategoryTools(ctx context.Context, category string) ([]models.CategoryTool, error) {
	categories, err := s.shed.GetCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	idx := slices.IndexFunc(categories, func(c models.ShedCategory) bool { return c.Name == category })
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrCategoryNotFound, category)
	}

	listing, err := s.shed.GetCategoryRepositories(ctx, categories[idx].ID)
	if err != nil {
		return nil, fmt.Errorf("list repositories of %s: %w", category, err)
	}

	var out []models.CategoryTool
	for _, repo := range listing.Repositories {
		if repo.Deprecated {
			continue
		}
		if s.opts.Owner != "" && repo.Owner != s.opts.Owner {
			continue
		}

		revisions := make([]models.ShedRevision, 0, len(repo.Metadata))
		for _, m := range repo.Metadata {
			revisions = append(revisions, m)
		}
		slices.SortFunc(revisions, func(a, b models.ShedRevision) int {
			return b.NumericRevision - a.NumericRevision
		})
		if s.opts.Latest && len(revisions) > 1 {
			revisions = revisions[:1]
		}

		out = append(out, models.CategoryTool{
			Repository: repo,
			Section:    category,
			ShedURL:    s.opts.URL,
			Revisions:  revisions,
		})
	}
	s.logger.Debug().Msgf("Found %d repositories in %s", len(out), category)
	return out, nil
}

// Render implements [ToolshedService]. Each numeric revision is attached as
// a line comment to its changeset.
func (s *toolshedService) Render(out, comments io.Writer, tools []models.CategoryTool) error {
	for _, t := range tools {
		repo := t.Repository
		header := fmt.Sprintf("# %s\n# \t%s\n# \t%s\n# \t%s\n",
			repo.Name, repo.Description, repo.HomepageURL, repo.RemoteRepositoryURL)
		if _, err := io.WriteString(comments, header); err != nil {
			return fmt.Errorf("write comment header: %w", err)
		}

		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(toolEntryNode(t)); err != nil {
			return fmt.Errorf("encode %s: %w", repo.Name, err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode %s: %w", repo.Name, err)
		}
		if _, err := out.Write(buf.Bytes()); err != nil {
			return fmt.Errorf("write tool list entry: %w", err)
		}
	}
	return nil
}

// toolEntryNode builds a one-element tool list for t.
func toolEntryNode(t models.CategoryTool) *yaml.Node {
	revisions := &yaml.Node{Kind: yaml.SequenceNode}
	for _, r := range t.Revisions {
		revisions.Content = append(revisions.Content, &yaml.Node{
			Kind:        yaml.ScalarNode,
			Value:       r.ChangesetRevision,
			LineComment: "# " + strconv.Itoa(r.NumericRevision),
		})
	}

	entry := &yaml.Node{Kind: yaml.MappingNode}
	add := func(key string, value *yaml.Node) {
		entry.Content = append(entry.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: key}, value)
	}
	str := func(v string) *yaml.Node { return &yaml.Node{Kind: yaml.ScalarNode, Value: v} }
	no := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: "false"}

	add("name", str(t.Repository.Name))
	add("owner", str(t.Repository.Owner))
	add("tool_panel_section_label", str(t.Section))
	add("tool_shed_url", str(t.ShedURL))
	add("revisions", revisions)
	add("install_tool_dependencies", no)
	add("install_repository_dependencies", no)
	add("install_resolver_dependencies", no)

	return &yaml.Node{Kind: yaml.SequenceNode, Content: []*yaml.Node{entry}}
}
