// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Finding is one dangling node found by the library scanner.
type Finding struct {
	LibraryID string
	Kind      string // EntryTypeFolder or EntryTypeFile
	ID        string
	Name      string
	Path      string // path of the containing folder
	Size      int64
	Deleted   bool // whether it was deleted during this pass
}

// UserHistories groups the histories of one considered user.
type UserHistories struct {
	User       User
	HistoryIDs []string
	Size       int64
}

// HistoryReport summarises history storage of considered (departed) and
// ignored (present) users.
type HistoryReport struct {
	ConsideredBytes int64
	ConsideredCount int
	IgnoredBytes    int64
	IgnoredCount    int

	// Users is ordered by ascending total size.
	Users []UserHistories
}

// QuotaReport counts what a quota sync did or would have done.
type QuotaReport struct {
	Expired   []string
	Reminders []string
	Created   []string
	Updated   []string
}

// DependencyReport is the result of the dependency coverage check.
type DependencyReport struct {
	CondaEnvs       int
	Containers      int
	UnusedCondaDirs []string
	Uncovered       []string
}

// CondaEnvDecision is the verdict for one conda environment during pruning.
type CondaEnvDecision struct {
	Path      string
	Tools     []string
	Covered   int
	Removable bool
	Removed   bool
	Err       error
}

// Container install outcomes.
const (
	ContainerInstalled = "installed"
	ContainerSkipped   = "skipped"
	ContainerFailed    = "failed"
)

// ContainerInstall is the outcome of pre-installing the container of a tool.
type ContainerInstall struct {
	ToolID    string
	Container string
	Status    string
}

// CategoryTool is a tool shed repository rendered as a tool list entry.
type CategoryTool struct {
	Repository ShedRepository
	Section    string
	ShedURL    string

	// Revisions is ordered newest first.
	Revisions []ShedRevision
}
