package service

import (
	"cmp"
	"context"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/hashicorp/go-version"

	"github.com/MKhiriev/galaxy-admin/internal/adapter"
	"github.com/MKhiriev/galaxy-admin/internal/logger"
	"github.com/MKhiriev/galaxy-admin/internal/store"
	"github.com/MKhiriev/galaxy-admin/models"
)

// ContainerOptions controls [ContainerService].
type ContainerOptions struct {
	// Include keeps tools whose id matches any of these expressions. Empty
	// keeps all tools.
	Include []string

	// Exclude drops tools whose id matches any of these expressions.
	Exclude []string

	// Latest keeps only the newest version of each tool.
	Latest bool

	// Install asks Galaxy to install missing containers.
	Install bool
}

type containerService struct {
	tools    adapter.ToolAPI
	deps     adapter.DependencyAPI
	recorder store.Recorder
	include  []*regexp.Regexp
	exclude  []*regexp.Regexp
	opts     ContainerOptions
	logger   *logger.Logger

	pathExists func(string) bool
}

// NewContainerService constructs a [ContainerService]. It fails with
// [ErrInvalidToolFilter] when a filter does not compile.
func NewContainerService(tools adapter.ToolAPI, deps adapter.DependencyAPI, recorder store.Recorder,
	opts ContainerOptions, log *logger.Logger) (ContainerService, error) {
	include, err := compileFilters(opts.Include)
	if err != nil {
		return nil, err
	}
	exclude, err := compileFilters(opts.Exclude)
	if err != nil {
		return nil, err
	}

	return &containerService{
		tools:      tools,
		deps:       deps,
		recorder:   recorder,
		include:    include,
		exclude:    exclude,
		opts:       opts,
		logger:     log,
		pathExists: pathExists,
	}, nil
}

func compileFilters(exprs []string) ([]*regexp.Regexp, error) {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		re, err := regexp.Compile(e)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidToolFilter, e, err)
		}
		out = append(out, re)
	}
	return out, nil
}

func matchAny(filters []*regexp.Regexp, s string) bool {
	for _, re := range filters {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

// withoutVersion strips the trailing version from a tool shed guid. Ids of
// tools that do not come from a tool shed are returned unchanged.
func withoutVersion(guid string) string {
	if !strings.Contains(guid, "/repos/") {
		return guid
	}
	return guid[:strings.LastIndex(guid, "/")]
}

type toolVersion struct {
	version *version.Version
	id      string
}

// SelectTools implements [ContainerService]. Tools are grouped by guid
// without version in order of first appearance; within a group they are
// ordered by descending version.
func (s *containerService) SelectTools(ctx context.Context) ([]string, error) {
	tools, err := s.tools.GetTools(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tools: %w", err)
	}

	groups := make(map[string][]toolVersion)
	var order []string
	for _, t := range tools {
		if len(s.include) > 0 && !matchAny(s.include, t.ID) {
			continue
		}
		if matchAny(s.exclude, t.ID) {
			continue
		}

		key := withoutVersion(t.ID)
		if _, ok := groups[key]; !ok {
			groups[key] = nil
			order = append(order, key)
		}
		v, err := version.NewVersion(t.Version)
		if err != nil {
			s.logger.Error().Msgf("could not parse version %s of tool %s", t.Version, t.ID)
			continue
		}
		groups[key] = append(groups[key], toolVersion{version: v, id: t.ID})
	}

	var out []string
	for _, key := range order {
		versions := groups[key]
		slices.SortStableFunc(versions, func(a, b toolVersion) int {
			return compareToolVersions(b.version, a.version)
		})
		if s.opts.Latest && len(versions) > 1 {
			versions = versions[:1]
		}
		for _, v := range versions {
			out = append(out, v.id)
		}
	}
	return out, nil
}

// compareToolVersions orders a and b by release and, for equal releases,
// by their local label, so 0.23.4+galaxy1 sorts above 0.23.4+galaxy0 and
// above plain 0.23.4.
func compareToolVersions(a, b *version.Version) int {
	if c := a.Compare(b); c != 0 {
		return c
	}
	return compareLocalLabels(a.Metadata(), b.Metadata())
}

// compareLocalLabels compares the dot separated segments of two local
// version labels. Numeric segments sort above alphanumeric ones and a label
// that extends another sorts above it.
func compareLocalLabels(a, b string) int {
	if a == b {
		return 0
	}
	split := func(r rune) bool { return r == '.' || r == '-' || r == '_' }
	as, bs := strings.FieldsFunc(a, split), strings.FieldsFunc(b, split)
	for i := range min(len(as), len(bs)) {
		if c := compareLabelSegment(as[i], bs[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(as), len(bs))
}

func compareLabelSegment(a, b string) int {
	aNum, bNum := isDigits(a), isDigits(b)
	switch {
	case aNum && bNum:
		return compareDigits(a, b)
	case aNum:
		return 1
	case bNum:
		return -1
	}

	// galaxy10 sorts above galaxy9: runs of digits compare by value.
	ar, br := digitRuns(strings.ToLower(a)), digitRuns(strings.ToLower(b))
	for i := range min(len(ar), len(br)) {
		var c int
		if isDigits(ar[i]) && isDigits(br[i]) {
			c = compareDigits(ar[i], br[i])
		} else {
			c = strings.Compare(ar[i], br[i])
		}
		if c != 0 {
			return c
		}
	}
	return cmp.Compare(len(ar), len(br))
}

// digitRuns splits s into alternating runs of digits and non-digits.
func digitRuns(s string) []string {
	digit := func(c byte) bool { return c >= '0' && c <= '9' }

	var runs []string
	start := 0
	for i := 1; i < len(s); i++ {
		if digit(s[i]) != digit(s[start]) {
			runs = append(runs, s[start:i])
			start = i
		}
	}
	if start < len(s) {
		runs = append(runs, s[start:])
	}
	return runs
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// compareDigits compares two decimal strings of any length by value.
func compareDigits(a, b string) int {
	a, b = strings.TrimLeft(a, "0"), strings.TrimLeft(b, "0")
	if c := cmp.Compare(len(a), len(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// Install implements [ContainerService]. Tools without a resolvable
// container and tools whose container is present are left out of the
// result.
func (s *containerService) Install(ctx context.Context) ([]models.ContainerInstall, error) {
	tools, err := s.SelectTools(ctx)
	if err != nil {
		return nil, err
	}

	audit := beginAudit(ctx, s.recorder, "containers install", !s.opts.Install, s.logger)
	defer audit.finish(ctx)

	var out []models.ContainerInstall
	for _, tool := range tools {
		s.logger.Debug().Msgf("Checking %s", tool)

		resolved, err := s.deps.ResolveToolbox(ctx, []string{tool}, false)
		if err != nil {
			return out, fmt.Errorf("resolve container of %s: %w", tool, err)
		}
		var container string
		for _, r := range resolved {
			container = r.Status.EnvironmentPath
		}
		if container == "" {
			s.logger.Debug().Msgf("No container for %s", tool)
			continue
		}
		if s.pathExists(container) {
			s.logger.Debug().Msgf("Container for %s already installed %s", tool, container)
			continue
		}

		installed, err := s.deps.ResolveToolbox(ctx, []string{tool}, s.opts.Install)
		if err != nil {
			return out, fmt.Errorf("install container of %s: %w", tool, err)
		}
		for _, r := range installed {
			result := models.ContainerInstall{ToolID: tool, Container: r.Status.EnvironmentPath}
			switch {
			case result.Container != "" && s.pathExists(result.Container):
				result.Status = models.ContainerInstalled
				s.logger.Info().Msgf("Installed %s", result.Container)
			case !s.opts.Install:
				result.Status = models.ContainerSkipped
				s.logger.Warn().Msgf("Skipped installation of %s", result.Container)
			default:
				result.Status = models.ContainerFailed
				s.logger.Error().Msgf("Could not install container for %s container=%s new_container=%s", tool, container, result.Container)
			}
			if s.opts.Install {
				audit.record(ctx, models.Action{
					Kind:    models.ActionContainer,
					Name:    tool,
					Detail:  result.Container,
					Applied: result.Status == models.ContainerInstalled,
				})
			}
			out = append(out, result)
		}
	}
	return out, nil
}
