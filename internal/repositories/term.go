package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-glossary/internal/logger"
	"github.com/sbilibin2017/gw-glossary/internal/middlewares"
	"github.com/sbilibin2017/gw-glossary/internal/models"
)

var (
	// ErrTermNotFound is returned when no term has the requested keyword.
	ErrTermNotFound = errors.New("term not found")
	// ErrDuplicateKeyword is returned when a write would break keyword uniqueness.
	ErrDuplicateKeyword = errors.New("keyword already exists")
)

// PostgreSQL SQLSTATE codes.
const (
	uniqueViolation          = "23505"
	characterNotInRepertoire = "22021" // e.g. a NUL byte in a text parameter
)

const termColumns = "id, keyword, description, created_at, updated_at"

// TermReadRepository handles term read operations
type TermReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTermReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TermReadRepository {
	return &TermReadRepository{db: db, txGetter: txGetter}
}

// List returns all terms ordered by id. The slice is empty, not nil, when there are none.
func (r *TermReadRepository) List(ctx context.Context) ([]models.Term, error) {
	query := `SELECT ` + termColumns + ` FROM terms ORDER BY id`

	terms := []models.Term{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &terms, query)

	logQuery(ctx, query, nil, len(terms), err)

	if err != nil {
		return nil, err
	}
	return terms, nil
}

// GetByKeyword returns the term with exactly the given keyword.
func (r *TermReadRepository) GetByKeyword(ctx context.Context, keyword string) (*models.Term, error) {
	query := `SELECT ` + termColumns + ` FROM terms WHERE keyword = $1`

	var term models.Term
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &term, query, keyword)

	logQuery(ctx, query, []any{keyword}, term.ID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &term, nil
}

// Count returns the number of stored terms.
func (r *TermReadRepository) Count(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM terms`

	var count int
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &count, query)

	logQuery(ctx, query, nil, count, err)

	return count, err
}

// TermWriteRepository handles term write operations
type TermWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTermWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TermWriteRepository {
	return &TermWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new term and returns it with its generated id and created_at.
func (r *TermWriteRepository) Save(ctx context.Context, keyword, description string) (*models.Term, error) {
	query := `
		INSERT INTO terms (keyword, description)
		VALUES ($1, $2)
		RETURNING ` + termColumns
	args := []any{keyword, description}

	var term models.Term
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &term, query, args...)

	logQuery(ctx, query, args, term.ID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &term, nil
}

// Update applies the non-nil fields of req to the term with the given keyword
// and stamps updated_at, even when no field is supplied.
func (r *TermWriteRepository) Update(ctx context.Context, keyword string, req models.TermUpdateRequest) (*models.Term, error) {
	query := `
		UPDATE terms
		SET keyword = COALESCE($2::VARCHAR, keyword),
		    description = COALESCE($3::TEXT, description),
		    updated_at = NOW()
		WHERE keyword = $1
		RETURNING ` + termColumns
	args := []any{keyword, req.Keyword, req.Description}

	var term models.Term
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &term, query, args...)

	logQuery(ctx, query, args, term.ID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &term, nil
}

// Delete removes the term with the given keyword and returns the removed row.
func (r *TermWriteRepository) Delete(ctx context.Context, keyword string) (*models.Term, error) {
	query := `DELETE FROM terms WHERE keyword = $1 RETURNING ` + termColumns

	var term models.Term
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &term, query, keyword)

	logQuery(ctx, query, []any{keyword}, term.ID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &term, nil
}

// executor returns the request transaction when there is one, the pool otherwise.
func executor(ctx context.Context, db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

func mapError(err error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return ErrTermNotFound
	case isDuplicateKeyError(err):
		return ErrDuplicateKeyword
	case hasPgCode(err, characterNotInRepertoire):
		// No stored keyword can contain such a character.
		return ErrTermNotFound
	default:
		return err
	}
}

func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	return strings.Contains(err.Error(), "duplicate key")
}

func hasPgCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

// logQuery logs the query on a single line with its args, result and error.
func logQuery(ctx context.Context, query string, args []any, result any, err error) {
	logger.Log.Infow("query",
		"request_id", middlewares.RequestIDFromContext(ctx),
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}
