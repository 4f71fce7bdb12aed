// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Dependency resolver model classes.
const (
	ModelMergedCondaDependency = "MergedCondaDependency"
	ModelDataManagerTool       = "DataManagerTool"
)

// RepositoryStatusError marks a tool shed repository whose installation
// failed.
const RepositoryStatusError = "Error"

// ShedRepositoryRef identifies the tool shed repository a tool was
// installed from.
type ShedRepositoryRef struct {
	Name              string `json:"name"`
	Owner             string `json:"owner"`
	ChangesetRevision string `json:"changeset_revision"`
	ToolShed          string `json:"tool_shed,omitempty"`
}

// Tool is an entry of the flat tool listing.
type Tool struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Version            string             `json:"version"`
	PanelSectionName   string             `json:"panel_section_name"`
	ModelClass         string             `json:"model_class"`
	ToolShedRepository *ShedRepositoryRef `json:"tool_shed_repository,omitempty"`
}

// InstalledRepository is a tool shed repository installed into Galaxy.
type InstalledRepository struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Owner             string `json:"owner"`
	Status            string `json:"status"`
	ChangesetRevision string `json:"changeset_revision"`
}

// Requirement is a tool requirement as reported by the dependency
// resolvers.
type Requirement struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Type    string `json:"type"`
}

// DependencyStatus is the resolution state of one requirement set.
type DependencyStatus struct {
	ModelClass      string `json:"model_class"`
	EnvironmentPath string `json:"environment_path"`
	Exact           bool   `json:"exact,omitempty"`
}

// DependencySummary is one row of the toolbox dependency summary indexed
// by tools: all tools sharing the same requirements.
type DependencySummary struct {
	Requirements []Requirement      `json:"requirements"`
	Status       []DependencyStatus `json:"status"`
	ToolIDs      []string           `json:"tool_ids"`
}

// MergedCondaEnv returns the environment path of the merged conda
// dependency, or "" if the requirements are not resolved by conda.
func (d DependencySummary) MergedCondaEnv() string {
	for _, s := range d.Status {
		if s.ModelClass == ModelMergedCondaDependency {
			return s.EnvironmentPath
		}
	}
	return ""
}

// ContainerStatus is the container resolution state of a tool.
type ContainerStatus struct {
	ModelClass      string `json:"model_class,omitempty"`
	EnvironmentPath string `json:"environment_path"`
	ContainerType   string `json:"container_type,omitempty"`
}

// ContainerResolution is the container resolved for a tool.
type ContainerResolution struct {
	ToolID string          `json:"tool_id"`
	Status ContainerStatus `json:"status"`
}

// ToolListEntry is an element of the tools list written for ephemeris.
type ToolListEntry struct {
	Name                  string   `yaml:"name"`
	Owner                 string   `yaml:"owner"`
	ToolPanelSectionLabel string   `yaml:"tool_panel_section_label"`
	ToolShedURL           string   `yaml:"tool_shed_url,omitempty"`
	Revisions             []string `yaml:"revisions,omitempty"`
}

// ToolList is the document written to tool_list.yaml.
type ToolList struct {
	InstallRepositoryDependencies bool            `yaml:"install_repository_dependencies"`
	InstallResolverDependencies   bool            `yaml:"install_resolver_dependencies"`
	InstallToolDependencies       bool            `yaml:"install_tool_dependencies"`
	Tools                         []ToolListEntry `yaml:"tools"`
}
