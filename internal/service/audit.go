package service

import (
	"context"

	"github.com/MKhiriev/galaxy-admin/internal/logger"
	"github.com/MKhiriev/galaxy-admin/internal/store"
	"github.com/MKhiriev/galaxy-admin/models"
)

// auditTrail records the actions of one run. Failures to write the ledger
// are logged and never abort the command. A nil trail records nothing.
type auditTrail struct {
	recorder store.Recorder
	runID    string
	logger   *logger.Logger
}

func beginAudit(ctx context.Context, rec store.Recorder, command string, dryRun bool, log *logger.Logger) *auditTrail {
	if rec == nil {
		return nil
	}

	run, err := rec.BeginRun(ctx, command, dryRun)
	if err != nil {
		log.Err(err).Str("command", command).Msg("could not open audit run")
		return nil
	}

	return &auditTrail{recorder: rec, runID: run.ID, logger: log}
}

func (a *auditTrail) record(ctx context.Context, action models.Action) {
	if a == nil {
		return
	}

	action.RunID = a.runID
	if err := a.recorder.RecordAction(ctx, action); err != nil {
		a.logger.Err(err).Str("kind", action.Kind).Str("target", action.TargetID).Msg("could not record audit action")
	}
}

func (a *auditTrail) finish(ctx context.Context) {
	if a == nil {
		return
	}

	// the run is closed even when ctx was cancelled mid-way
	if err := a.recorder.FinishRun(context.WithoutCancel(ctx), a.runID); err != nil {
		a.logger.Err(err).Str("run", a.runID).Msg("could not finish audit run")
	}
}
