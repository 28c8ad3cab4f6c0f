package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/poetree/internal/logger"
)

var (
	// ErrDuplicate wraps Postgres unique violations.
	ErrDuplicate = errors.New("duplicate key")
	// ErrForeignKey wraps Postgres foreign key violations.
	ErrForeignKey = errors.New("foreign key violation")
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// translate maps constraint violations to the package sentinels and leaves everything else alone.
func translate(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case codeUniqueViolation:
		return fmt.Errorf("%w: %s", ErrDuplicate, pgErr.ConstraintName)
	case codeForeignKeyViolation:
		return fmt.Errorf("%w: %s", ErrForeignKey, pgErr.ConstraintName)
	}
	return err
}

// executor picks the transaction from the context when there is one.
type executor struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func (e executor) ext(ctx context.Context) sqlx.ExtContext {
	if e.txGetter != nil {
		if tx := e.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return e.db
}

// get scans a single row into dest. found is false when the query returned no rows.
func (e executor) get(ctx context.Context, dest any, query string, args ...any) (found bool, err error) {
	err = sqlx.GetContext(ctx, e.ext(ctx), dest, query, args...)
	logQuery(query, args, dest, err)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, translate(err)
	}
	return true, nil
}

func (e executor) selectRows(ctx context.Context, dest any, query string, args ...any) error {
	err := sqlx.SelectContext(ctx, e.ext(ctx), dest, query, args...)
	logQuery(query, args, dest, err)
	return translate(err)
}

// exec runs a statement and reports the number of affected rows.
func (e executor) exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := e.ext(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)
	return rowsAffected, translate(err)
}

func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns a search term into an ILIKE pattern matching it anywhere.
// Nil and blank terms yield nil, which disables the filter.
func containsPattern(q *string) *string {
	if q == nil {
		return nil
	}
	term := strings.TrimSpace(*q)
	if term == "" {
		return nil
	}
	p := "%" + likeEscaper.Replace(term) + "%"
	return &p
}
