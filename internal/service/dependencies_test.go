package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/galaxy-admin/internal/logger"
	"github.com/MKhiriev/galaxy-admin/internal/mock"
	"github.com/MKhiriev/galaxy-admin/models"
)

func merged(env string, requirements int, tools ...string) models.DependencySummary {
	d := models.DependencySummary{ToolIDs: tools}
	for range requirements {
		d.Requirements = append(d.Requirements, models.Requirement{Name: "pkg", Type: "package"})
	}
	if env != "" {
		d.Status = []models.DependencyStatus{
			{ModelClass: "CondaDependency", EnvironmentPath: "/ignored"},
			{ModelClass: models.ModelMergedCondaDependency, EnvironmentPath: env},
		}
	}
	return d
}

func resolution(tool, container string) models.ContainerResolution {
	return models.ContainerResolution{ToolID: tool, Status: models.ContainerStatus{EnvironmentPath: container}}
}

func newDependencyService(deps *mock.MockDependencyAPI, remove bool, containers ...string) *dependencyService {
	existing := make(map[string]bool)
	for _, c := range containers {
		existing[c] = true
	}
	svc := NewDependencyService(deps, nil, remove, logger.Nop()).(*dependencyService)
	svc.pathExists = func(p string) bool { return existing[p] }
	return svc
}

func TestDependencyCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	prefix := t.TempDir()
	for _, d := range []string{"__bwa@0.7", "__samtools@1.9", "__stale@1.0", galaxyEnv} {
		require.NoError(t, os.Mkdir(filepath.Join(prefix, d), 0o755))
	}
	require.NoError(t, os.WriteFile(filepath.Join(prefix, "conda-meta.txt"), nil, 0o644))

	deps := mock.NewMockDependencyAPI(ctrl)
	deps.EXPECT().SummarizeToolbox(gomock.Any()).Return([]models.DependencySummary{
		merged(filepath.Join(prefix, "__bwa@0.7"), 1, "bwa/1", "bwa/2"),
		merged(filepath.Join(prefix, "__samtools@1.9"), 1, "samtools"),
		merged("", 2, "unresolved", "boxed"),
		merged("", 0, "cat1"),
	}, nil)
	deps.EXPECT().ResolveToolbox(gomock.Any(), nil, false).Return([]models.ContainerResolution{
		resolution("bwa/1", "/img/bwa.sif"),
		resolution("boxed", "/img/boxed.sif"),
		resolution("unresolved", "/img/missing.sif"),
		resolution("extra", ""),
	}, nil)

	report, err := newDependencyService(deps, false, "/img/bwa.sif", "/img/boxed.sif").Check(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, 2, report.CondaEnvs)
	assert.Equal(t, 2, report.Containers)
	assert.Equal(t, []string{"__stale@1.0"}, report.UnusedCondaDirs)
	assert.Equal(t, []string{"unresolved"}, report.Uncovered)
}

func TestDependencyCheck_FollowsSymlinks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	prefix, elsewhere := t.TempDir(), t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(prefix, "__bwa@0.7"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(elsewhere, "env"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(elsewhere, "file"), nil, 0o644))
	require.NoError(t, os.Symlink(filepath.Join(elsewhere, "env"), filepath.Join(prefix, "__linked@2.0")))
	require.NoError(t, os.Symlink(filepath.Join(elsewhere, "file"), filepath.Join(prefix, "__file@1.0")))
	require.NoError(t, os.Symlink(filepath.Join(elsewhere, "gone"), filepath.Join(prefix, "__broken@1.0")))

	deps := mock.NewMockDependencyAPI(ctrl)
	deps.EXPECT().SummarizeToolbox(gomock.Any()).Return([]models.DependencySummary{
		merged(filepath.Join(prefix, "__bwa@0.7"), 1, "bwa"),
	}, nil)
	deps.EXPECT().ResolveToolbox(gomock.Any(), nil, false).Return(nil, nil)

	report, err := newDependencyService(deps, false).Check(context.Background(), prefix)
	require.NoError(t, err)

	assert.Equal(t, []string{"__linked@2.0"}, report.UnusedCondaDirs)
}

func TestDependencyCheck_NeedsPrefixWithoutEnvs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps := mock.NewMockDependencyAPI(ctrl)
	deps.EXPECT().SummarizeToolbox(gomock.Any()).Return([]models.DependencySummary{merged("", 1, "t")}, nil)

	_, err := newDependencyService(deps, false).Check(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoCondaPrefix)
}

func TestDependencyPruneConda(t *testing.T) {
	summary := []models.DependencySummary{
		merged("/conda/envs/__bwa@0.7", 1, "bwa/2", "bwa/1"),
		merged("/conda/envs/__samtools@1.9", 1, "samtools"),
		merged("/conda/envs/"+galaxyEnv, 1, "upload1"),
	}

	expect := func(deps *mock.MockDependencyAPI) {
		deps.EXPECT().SummarizeToolbox(gomock.Any()).Return(summary, nil)
		deps.EXPECT().ResolveToolbox(gomock.Any(), []string{"bwa/1"}, false).Return([]models.ContainerResolution{resolution("bwa/1", "/img/bwa1.sif")}, nil)
		deps.EXPECT().ResolveToolbox(gomock.Any(), []string{"bwa/2"}, false).Return([]models.ContainerResolution{resolution("bwa/2", "/img/bwa2.sif")}, nil)
		deps.EXPECT().ResolveToolbox(gomock.Any(), []string{"samtools"}, false).Return([]models.ContainerResolution{resolution("samtools", "")}, nil)
	}

	t.Run("dry run", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		deps := mock.NewMockDependencyAPI(ctrl)
		expect(deps)
		svc := newDependencyService(deps, false, "/img/bwa1.sif", "/img/bwa2.sif")
		svc.removeAll = func(string) error {
			t.Fatal("removed in dry run")
			return nil
		}

		decisions, err := svc.PruneConda(context.Background())
		require.NoError(t, err)
		require.Len(t, decisions, 2)

		assert.Equal(t, "/conda/envs/__bwa@0.7", decisions[0].Path)
		assert.Equal(t, []string{"bwa/1", "bwa/2"}, decisions[0].Tools)
		assert.True(t, decisions[0].Removable)
		assert.False(t, decisions[0].Removed)

		assert.Equal(t, "/conda/envs/__samtools@1.9", decisions[1].Path)
		assert.Zero(t, decisions[1].Covered)
		assert.False(t, decisions[1].Removable)
	})

	t.Run("remove with failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		deps := mock.NewMockDependencyAPI(ctrl)
		expect(deps)
		svc := newDependencyService(deps, true, "/img/bwa1.sif", "/img/bwa2.sif")
		var removed []string
		svc.removeAll = func(p string) error {
			removed = append(removed, p)
			return errors.New("permission denied")
		}

		decisions, err := svc.PruneConda(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"/conda/envs/__bwa@0.7"}, removed)
		assert.False(t, decisions[0].Removed)
		assert.EqualError(t, decisions[0].Err, "permission denied")
	})
}

func TestDependencyPruneUnused(t *testing.T) {
	paths := []string{"/conda/envs/_galaxy_", "/conda/envs/__old@1", "/other/_galaxy_"}

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		deps := mock.NewMockDependencyAPI(ctrl)
		deps.EXPECT().UnusedDependencyPaths(gomock.Any()).Return(paths, nil)

		unused, err := newDependencyService(deps, false).PruneUnused(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"/conda/envs/_galaxy_", "/other/_galaxy_"}, unused)
	})

	t.Run("remove one by one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		deps := mock.NewMockDependencyAPI(ctrl)
		deps.EXPECT().UnusedDependencyPaths(gomock.Any()).Return(paths, nil)
		gomock.InOrder(
			deps.EXPECT().DeleteUnusedDependencyPaths(gomock.Any(), []string{"/conda/envs/_galaxy_"}).Return(nil),
			deps.EXPECT().DeleteUnusedDependencyPaths(gomock.Any(), []string{"/other/_galaxy_"}).Return(nil),
		)

		_, err := newDependencyService(deps, true).PruneUnused(context.Background())
		require.NoError(t, err)
	})
}

func TestCommonPrefix(t *testing.T) {
	tests := []struct {
		paths []string
		want  string
	}{
		{nil, ""},
		{[]string{"/a/envs/__x"}, "/a/envs/__x"},
		{[]string{"/a/envs/__bwa", "/a/envs/__bcf"}, "/a/envs/__b"},
		{[]string{"/a/x", "/b/y"}, "/"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, commonPrefix(tt.paths))
	}
}
