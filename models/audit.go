// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Action kinds recorded in the audit ledger.
const (
	ActionDanglingFolder = "dangling_folder"
	ActionDanglingFile   = "dangling_file"
	ActionUserFolder     = "user_folder"
	ActionImportFolder   = "import_folder"
	ActionQuotaDelete    = "quota_delete"
	ActionQuotaGrant     = "quota_grant"
	ActionUserDelete     = "user_delete"
	ActionCondaEnv       = "conda_env"
	ActionUnusedPath     = "unused_path"
	ActionContainer      = "container"
)

// Run is one invocation of a mutating command.
type Run struct {
	ID         string
	Command    string
	DryRun     bool
	StartedAt  time.Time
	FinishedAt time.Time
}

// Action is one candidate handled during a run. Applied is true when the
// mutation was actually issued.
type Action struct {
	RunID     string
	Kind      string
	TargetID  string
	Name      string
	Detail    string
	Size      int64
	Applied   bool
	CreatedAt time.Time
}
