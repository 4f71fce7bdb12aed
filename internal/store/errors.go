package store

import "errors"

// Sentinel errors returned by the audit ledger. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrRunNotFound is returned when an action or finish call references a
	// run id that was never opened.
	ErrRunNotFound = errors.New("audit run was not found")

	// ErrEmptyRunID is returned when an action is recorded without a run id.
	ErrEmptyRunID = errors.New("audit run id is empty")
)

// Low-level database operation errors. These are wrapped together with the
// driver error so that both can be matched.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or UPDATE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan audit rows")
)
