// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the audit ledger of mutating commands.
//
// Every mutating command opens one run, records one action per candidate it
// handled and closes the run. [NewRecorder] returns a SQLite-backed
// [Recorder] when a database path is configured and a no-op one otherwise,
// so services never need to check whether auditing is enabled.
package store

import (
	"context"

	"github.com/MKhiriev/galaxy-admin/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Recorder writes the audit ledger.
type Recorder interface {
	// BeginRun opens a new run of command and returns it with its id set.
	BeginRun(ctx context.Context, command string, dryRun bool) (models.Run, error)

	// RecordAction appends one action to the run referenced by action.RunID.
	RecordAction(ctx context.Context, action models.Action) error

	// FinishRun stamps the end time of the run.
	FinishRun(ctx context.Context, runID string) error

	// Close releases the underlying database.
	Close() error
}

// Reader queries the audit ledger.
type Reader interface {
	// Runs returns the most recent runs, newest first.
	Runs(ctx context.Context, limit int) ([]models.Run, error)

	// Actions returns the actions of a run in the order they were recorded.
	Actions(ctx context.Context, runID string) ([]models.Action, error)
}
