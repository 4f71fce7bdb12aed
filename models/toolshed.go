// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ShedCategory is a tool shed repository category.
type ShedCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ShedRevision is one installable revision of a tool shed repository.
type ShedRevision struct {
	ChangesetRevision string `json:"changeset_revision"`
	NumericRevision   int    `json:"numeric_revision"`
}

// ShedRepository is a repository listed in a tool shed category.
type ShedRepository struct {
	ID                  string                  `json:"id"`
	Name                string                  `json:"name"`
	Owner               string                  `json:"owner"`
	Description         string                  `json:"description"`
	HomepageURL         string                  `json:"homepage_url"`
	RemoteRepositoryURL string                  `json:"remote_repository_url"`
	Deprecated          bool                    `json:"deprecated"`
	Metadata            map[string]ShedRevision `json:"metadata"`
}

// CategoryRepositories is the repository listing of a category.
type CategoryRepositories struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Repositories []ShedRepository `json:"repositories"`
}
