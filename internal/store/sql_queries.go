package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/galaxy-admin/models"
)

// SQLite uses "?" placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var actionColumns = []string{
	"run_id", "kind", "target_id", "name", "detail", "size", "applied", "created_at",
}

var runColumns = []string{"id", "command", "dry_run", "started_at", "finished_at"}

func buildInsertRunQuery(run models.Run) (string, []any, error) {
	return psql.Insert("runs").
		Columns("id", "command", "dry_run", "started_at").
		Values(run.ID, run.Command, run.DryRun, run.StartedAt).
		ToSql()
}

func buildFinishRunQuery(runID string, finishedAt time.Time) (string, []any, error) {
	return psql.Update("runs").
		Set("finished_at", finishedAt).
		Where(sq.Eq{"id": runID}).
		ToSql()
}

func buildInsertActionQuery(a models.Action) (string, []any, error) {
	return psql.Insert("actions").
		Columns(actionColumns...).
		Values(a.RunID, a.Kind, a.TargetID, a.Name, a.Detail, a.Size, a.Applied, a.CreatedAt).
		ToSql()
}

func buildSelectRunsQuery(limit int) (string, []any, error) {
	q := psql.Select(runColumns...).
		From("runs").
		OrderBy("started_at DESC")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	return q.ToSql()
}

func buildSelectActionsQuery(runID string) (string, []any, error) {
	return psql.Select(actionColumns...).
		From("actions").
		Where(sq.Eq{"run_id": runID}).
		OrderBy("id").
		ToSql()
}
