package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an attempt to register a new
	// user fails because a user with the same username already exists.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrFeedbackNotFound is returned when a query targets a feedback that
	// does not exist in the database.
	ErrFeedbackNotFound = errors.New("feedback was not found")

	// ErrCommentNotFound is returned when a query targets a comment that
	// does not exist in the database.
	ErrCommentNotFound = errors.New("comment was not found")

	// ErrNotationAlreadyExists is returned when inserting a notation violates
	// the (user, owner_kind, owner_id) uniqueness constraint — the user has
	// already cast a notation on this entity. The constraint is what closes
	// the concurrent check-then-create race at the database level.
	ErrNotationAlreadyExists = errors.New("notation already exists for this user and entity")

	// ErrNotationNotFound is returned when an update targets a notation
	// (identified by user, owner kind and owner id) that does not exist.
	ErrNotationNotFound = errors.New("notation was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
