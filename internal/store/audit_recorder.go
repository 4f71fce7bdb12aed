package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/galaxy-admin/internal/config"
	"github.com/MKhiriev/galaxy-admin/internal/logger"
	"github.com/MKhiriev/galaxy-admin/internal/utils"
	"github.com/MKhiriev/galaxy-admin/models"
)

// auditRepository is the SQLite-backed implementation of [Recorder] and
// [Reader].
type auditRepository struct {
	db     *DB
	ids    *utils.UUIDGenerator
	now    func() time.Time
	logger *logger.Logger
}

// NewAuditRepository returns a ledger on top of an already migrated db.
func NewAuditRepository(db *DB, log *logger.Logger) Ledger {
	log.Debug().Msg("creating audit repository")
	return &auditRepository{db: db, ids: utils.NewUUIDGenerator(), now: time.Now, logger: log}
}

// BeginRun implements [Recorder].
func (r *auditRepository) BeginRun(ctx context.Context, command string, dryRun bool) (models.Run, error) {
	run := models.Run{
		ID:        r.ids.Generate(),
		Command:   command,
		DryRun:    dryRun,
		StartedAt: r.now().UTC(),
	}

	query, args, err := buildInsertRunQuery(run)
	if err != nil {
		return models.Run{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*auditRepository.BeginRun").Msg("error inserting run")
		return models.Run{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	r.logger.Debug().Str("run", run.ID).Str("command", command).Bool("dry_run", dryRun).Msg("run started")
	return run, nil
}

// RecordAction implements [Recorder].
func (r *auditRepository) RecordAction(ctx context.Context, action models.Action) error {
	if action.RunID == "" {
		return ErrEmptyRunID
	}
	if action.CreatedAt.IsZero() {
		action.CreatedAt = r.now().UTC()
	}

	query, args, err := buildInsertActionQuery(action)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*auditRepository.RecordAction").Msg("error inserting action")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// FinishRun implements [Recorder].
func (r *auditRepository) FinishRun(ctx context.Context, runID string) error {
	query, args, err := buildFinishRunQuery(runID, r.now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "*auditRepository.FinishRun").Msg("error updating run")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrRunNotFound
	}

	return nil
}

// Close implements [Recorder].
func (r *auditRepository) Close() error {
	return r.db.Close()
}

// Runs implements [Reader].
func (r *auditRepository) Runs(ctx context.Context, limit int) ([]models.Run, error) {
	query, args, err := buildSelectRunsQuery(limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var runs []models.Run
	for rows.Next() {
		var (
			run      models.Run
			finished sql.NullTime
		)
		if err = rows.Scan(&run.ID, &run.Command, &run.DryRun, &run.StartedAt, &finished); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if finished.Valid {
			run.FinishedAt = finished.Time
		}
		runs = append(runs, run)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return runs, nil
}

// Actions implements [Reader].
func (r *auditRepository) Actions(ctx context.Context, runID string) ([]models.Action, error) {
	query, args, err := buildSelectActionsQuery(runID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var actions []models.Action
	for rows.Next() {
		var a models.Action
		if err = rows.Scan(&a.RunID, &a.Kind, &a.TargetID, &a.Name, &a.Detail, &a.Size, &a.Applied, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		actions = append(actions, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return actions, nil
}

// nopRecorder discards everything. It is used when no ledger is configured.
type nopRecorder struct {
	ids *utils.UUIDGenerator
	now func() time.Time
}

// NewNopRecorder returns a [Recorder] that only hands out run ids.
func NewNopRecorder() Recorder {
	return &nopRecorder{ids: utils.NewUUIDGenerator(), now: time.Now}
}

func (n *nopRecorder) BeginRun(_ context.Context, command string, dryRun bool) (models.Run, error) {
	return models.Run{ID: n.ids.Generate(), Command: command, DryRun: dryRun, StartedAt: n.now().UTC()}, nil
}

func (n *nopRecorder) RecordAction(context.Context, models.Action) error { return nil }

func (n *nopRecorder) FinishRun(context.Context, string) error { return nil }

func (n *nopRecorder) Close() error { return nil }

// Ledger is an opened audit ledger, readable and writable.
type Ledger interface {
	Recorder
	Reader
}

// NewRecorder opens the ledger at dsn and migrates it. An empty dsn yields
// the no-op recorder.
func NewRecorder(ctx context.Context, dsn string, log *logger.Logger) (Recorder, error) {
	if dsn == "" {
		return NewNopRecorder(), nil
	}
	return OpenLedger(ctx, dsn, log)
}

// OpenLedger opens and migrates the SQLite ledger at dsn.
func OpenLedger(ctx context.Context, dsn string, log *logger.Logger) (Ledger, error) {
	if dsn == "" {
		return nil, errors.New("audit database path is empty")
	}

	db, err := NewConnectSQLite(ctx, config.Audit{DSN: dsn}, log)
	if err != nil {
		return nil, err
	}
	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return NewAuditRepository(db, log), nil
}
