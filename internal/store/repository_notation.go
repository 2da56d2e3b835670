package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"feedback-board/internal/logger"
	"feedback-board/models"

	"github.com/jackc/pgerrcode"
)

// notationRepository is the PostgreSQL-backed implementation of
// [NotationRepository]. All notation rows live in a single "notations"
// table discriminated by owner_kind; the unique constraint on
// (user_id, owner_kind, owner_id) makes CreateNotation atomic — a losing
// concurrent insert surfaces as a unique violation, never as a duplicate row.
type notationRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNotationRepository constructs a [NotationRepository] backed by the
// provided database connection and logger.
func NewNotationRepository(db *DB, logger *logger.Logger) NotationRepository {
	logger.Debug().Msg("creating notation repository")
	return &notationRepository{
		db:     db,
		logger: logger,
	}
}

// CreateNotation inserts the notation as a single INSERT. A unique_violation
// (23505) on the (user_id, owner_kind, owner_id) constraint is returned as
// [ErrNotationAlreadyExists].
func (r *notationRepository) CreateNotation(ctx context.Context, notation models.Notation) (models.Notation, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateNotation(notation)
	if err != nil {
		log.Err(err).Str("func", "*notationRepository.CreateNotation").Msg("error building query")
		return models.Notation{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Notation
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Scan(&created.NotationID, &created.UserID, &created.OwnerKind, &created.OwnerID, &created.Value, &created.CreatedAt, &created.UpdatedAt); err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Notation{}, ErrNotationAlreadyExists
		case "":
			log.Err(err).Str("func", "*notationRepository.CreateNotation").Msg("error creating notation")
			return models.Notation{}, err
		default:
			log.Err(err).
				Str("func", "*notationRepository.CreateNotation").
				Stringer("classification", r.db.errorClassificator.Classify(err)).
				Msg("error creating notation")
			return models.Notation{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// UpdateNotationValue overwrites the value of an existing notation. The
// UPDATE targets the row by its (user_id, owner_kind, owner_id) key and
// returns the updated row; zero affected rows means the user never cast a
// notation on that owner and yields [ErrNotationNotFound].
func (r *notationRepository) UpdateNotationValue(ctx context.Context, notation models.Notation) (models.Notation, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateNotationValue(notation)
	if err != nil {
		log.Err(err).Str("func", "*notationRepository.UpdateNotationValue").Msg("error building query")
		return models.Notation{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Notation
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Scan(&updated.NotationID, &updated.UserID, &updated.OwnerKind, &updated.OwnerID, &updated.Value, &updated.CreatedAt, &updated.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Notation{}, ErrNotationNotFound
		}

		log.Err(err).Str("func", "*notationRepository.UpdateNotationValue").Msg("error updating notation")
		return models.Notation{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// GetOwnerNotations loads every notation cast on one owner. Aggregation
// happens in the service layer over the returned slice.
func (r *notationRepository) GetOwnerNotations(ctx context.Context, kind models.NotationKind, ownerID int64) ([]models.Notation, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetOwnerNotations(kind, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*notationRepository.GetOwnerNotations").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*notationRepository.GetOwnerNotations").Msg("error querying notations")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notations := make([]models.Notation, 0)
	for rows.Next() {
		var n models.Notation
		if err := rows.Scan(&n.NotationID, &n.UserID, &n.OwnerKind, &n.OwnerID, &n.Value, &n.CreatedAt, &n.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*notationRepository.GetOwnerNotations").Msg("error scanning notation row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		notations = append(notations, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notations, nil
}
