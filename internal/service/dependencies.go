package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/MKhiriev/galaxy-admin/internal/adapter"
	"github.com/MKhiriev/galaxy-admin/internal/logger"
	"github.com/MKhiriev/galaxy-admin/internal/store"
	"github.com/MKhiriev/galaxy-admin/models"
)

// galaxyEnv is the conda environment Galaxy itself runs in.
const galaxyEnv = "_galaxy_"

type dependencyService struct {
	deps     adapter.DependencyAPI
	recorder store.Recorder
	remove   bool
	logger   *logger.Logger

	pathExists func(string) bool
	removeAll  func(string) error
}

// NewDependencyService constructs a [DependencyService]. With remove set,
// PruneConda and PruneUnused delete what they find.
func NewDependencyService(deps adapter.DependencyAPI, recorder store.Recorder, remove bool, log *logger.Logger) DependencyService {
	return &dependencyService{
		deps:       deps,
		recorder:   recorder,
		remove:     remove,
		logger:     log,
		pathExists: pathExists,
		removeAll:  os.RemoveAll,
	}
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// toolDeps is what the resolvers know about one tool.
type toolDeps struct {
	conda        string
	container    string
	requirements int
}

// condaEnvs returns the merged conda environment of every tool that has one
// together with the requirement counts of all tools.
func (s *dependencyService) condaEnvs(ctx context.Context) (map[string]*toolDeps, error) {
	summary, err := s.deps.SummarizeToolbox(ctx)
	if err != nil {
		return nil, fmt.Errorf("summarize toolbox: %w", err)
	}

	tools := make(map[string]*toolDeps)
	for _, d := range summary {
		env := d.MergedCondaEnv()
		for _, id := range d.ToolIDs {
			tools[id] = &toolDeps{conda: env, requirements: len(d.Requirements)}
		}
	}
	return tools, nil
}

// envTools inverts tools into conda environment -> tool ids. Tool ids are
// sorted.
func envTools(tools map[string]*toolDeps) map[string][]string {
	envs := make(map[string][]string)
	for id, t := range tools {
		if t.conda != "" {
			envs[t.conda] = append(envs[t.conda], id)
		}
	}
	for _, ids := range envs {
		slices.Sort(ids)
	}
	return envs
}

// Check implements [DependencyService]. When condaPrefix is empty it is
// derived from the environments in use.
func (s *dependencyService) Check(ctx context.Context, condaPrefix string) (models.DependencyReport, error) {
	var report models.DependencyReport

	tools, err := s.condaEnvs(ctx)
	if err != nil {
		return report, err
	}
	envs := envTools(tools)
	report.CondaEnvs = len(envs)
	s.logger.Info().Msgf("Found %d conda environments", len(envs))

	if condaPrefix == "" {
		if len(envs) == 0 {
			return report, ErrNoCondaPrefix
		}
		condaPrefix = filepath.Dir(commonPrefix(sortedKeys(envs)))
	}

	used := make(map[string]struct{}, len(envs))
	for env := range envs {
		used[filepath.Base(env)] = struct{}{}
	}
	dirs, err := os.ReadDir(condaPrefix)
	if err != nil {
		return report, fmt.Errorf("read conda prefix: %w", err)
	}
	for _, d := range dirs {
		if _, ok := used[d.Name()]; ok || d.Name() == galaxyEnv {
			continue
		}
		if info, err := os.Stat(filepath.Join(condaPrefix, d.Name())); err != nil || !info.IsDir() {
			continue
		}
		report.UnusedCondaDirs = append(report.UnusedCondaDirs, d.Name())
	}

	resolved, err := s.deps.ResolveToolbox(ctx, nil, false)
	if err != nil {
		return report, fmt.Errorf("resolve containers: %w", err)
	}
	containers := make(map[string]struct{})
	for _, r := range resolved {
		t, ok := tools[r.ToolID]
		if !ok {
			t = &toolDeps{}
			tools[r.ToolID] = t
		}
		if p := r.Status.EnvironmentPath; p != "" && s.pathExists(p) {
			t.container = p
			containers[p] = struct{}{}
		}
	}
	report.Containers = len(containers)
	s.logger.Info().Msgf("Found %d containers", len(containers))

	for id, t := range tools {
		if t.container == "" && t.conda == "" && t.requirements > 0 {
			report.Uncovered = append(report.Uncovered, id)
		}
	}
	slices.Sort(report.Uncovered)

	return report, nil
}

// PruneConda implements [DependencyService]. An environment is removable
// when every tool using it has an installed container.
func (s *dependencyService) PruneConda(ctx context.Context) ([]models.CondaEnvDecision, error) {
	tools, err := s.condaEnvs(ctx)
	if err != nil {
		return nil, err
	}
	envs := envTools(tools)
	s.logger.Info().Msgf("Found %d conda environments", len(envs))

	audit := beginAudit(ctx, s.recorder, "deps prune-conda", !s.remove, s.logger)
	defer audit.finish(ctx)

	var decisions []models.CondaEnvDecision
	for _, env := range sortedKeys(envs) {
		if strings.HasSuffix(env, "/"+galaxyEnv) {
			continue
		}
		base := filepath.Base(env)

		d := models.CondaEnvDecision{Path: env, Tools: envs[env]}
		for _, tool := range d.Tools {
			resolved, err := s.deps.ResolveToolbox(ctx, []string{tool}, false)
			if err != nil {
				return decisions, fmt.Errorf("resolve container of %s: %w", tool, err)
			}
			for _, r := range resolved {
				if p := r.Status.EnvironmentPath; p != "" && s.pathExists(p) {
					d.Covered++
				} else {
					s.logger.Debug().Msgf("%s no container for tool %s", base, tool)
				}
			}
		}
		d.Removable = d.Covered == len(d.Tools)
		s.logger.Debug().Msgf("%s -> %t (coverage %d/%d)", base, d.Removable, d.Covered, len(d.Tools))

		if d.Removable {
			if s.remove {
				if d.Err = s.removeAll(env); d.Err != nil {
					s.logger.Error().Err(d.Err).Msgf("could not remove %s", env)
				} else {
					d.Removed = true
				}
			}
			audit.record(ctx, models.Action{
				Kind:    models.ActionCondaEnv,
				Name:    base,
				Detail:  env,
				Applied: d.Removed,
			})
		}
		decisions = append(decisions, d)
	}

	return decisions, nil
}

// PruneUnused implements [DependencyService]. Only the unused paths ending
// in /_galaxy_ are handled.
func (s *dependencyService) PruneUnused(ctx context.Context) ([]string, error) {
	paths, err := s.deps.UnusedDependencyPaths(ctx)
	if err != nil {
		return nil, fmt.Errorf("list unused dependency paths: %w", err)
	}

	audit := beginAudit(ctx, s.recorder, "deps unused", !s.remove, s.logger)
	defer audit.finish(ctx)

	var unused []string
	for _, p := range paths {
		if !strings.HasSuffix(p, "/"+galaxyEnv) {
			continue
		}
		unused = append(unused, p)

		if s.remove {
			if err = s.deps.DeleteUnusedDependencyPaths(ctx, []string{p}); err != nil {
				return unused, fmt.Errorf("delete unused dependency path %s: %w", p, err)
			}
		}
		audit.record(ctx, models.Action{Kind: models.ActionUnusedPath, Name: p, Applied: s.remove})
	}

	return unused, nil
}

// commonPrefix returns the longest common byte prefix of paths.
func commonPrefix(paths []string) string {
	if len(paths) == 0 {
		return ""
	}
	prefix := paths[0]
	for _, p := range paths[1:] {
		n := min(len(prefix), len(p))
		i := 0
		for i < n && prefix[i] == p[i] {
			i++
		}
		prefix = prefix[:i]
	}
	return prefix
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
