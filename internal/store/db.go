package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Knetic/go-namedParameterQuery"
	"github.com/go-sql-driver/mysql"
	"github.com/jekabolt/resto-manager/internal/dependency"
	"github.com/jmoiron/sqlx"
)

// MySQL server error numbers.
const (
	errDupEntry        = 1062
	errLockWaitTimeout = 1205
	errLockDeadlock    = 1213
)

type ltx struct {
	*sqlx.Tx
}

func (t ltx) BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error) {
	return nil, fmt.Errorf("already in transaction")
}

type txDB interface {
	Commit() error
	Rollback() error
}

func (ms *MYSQLStore) DB() dependency.DB {
	return ms.db
}

// Tx starts transaction and executes the function passing to it Handler
// using this transaction. It automatically rolls the transaction back if
// function returns an error. If the error has been caused by a deadlock
// or lock wait timeout, it calls the function again. In order for that to
// work, the function should return Handler errors unchanged, or wrap them using %w.
func (ms *MYSQLStore) Tx(ctx context.Context, f func(context.Context, dependency.Repository) error) error {
	for {
		pst, err := ms.TxBegin(ctx)
		if err != nil {
			return err
		}
		err = f(ctx, pst)
		if err == nil {
			if err = pst.TxCommit(ctx); err == nil {
				return nil
			}
		}
		_ = pst.TxRollback(ctx)
		if ms.IsErrorRepeat(err) {
			continue
		}
		return err
	}
}

// InTx returns true if the object is in transaction
func (ms *MYSQLStore) InTx() bool {
	return ms.txDB != nil
}

func (ms *MYSQLStore) TxBegin(ctx context.Context) (dependency.Repository, error) {
	tx, err := ms.DB().BeginTxx(ctx, &sql.TxOptions{
		Isolation: sql.LevelReadCommitted,
	})
	if err != nil {
		return nil, err
	}

	return &MYSQLStore{
		db:   ltx{Tx: tx},
		txDB: tx,
		ts:   ms.Now(),
	}, nil
}

// Now returns current time for the store. It is frozen during transactions.
func (ms *MYSQLStore) Now() time.Time {
	if ms.ts.IsZero() {
		return time.Now()
	}
	return ms.ts
}

func (ms *MYSQLStore) TxCommit(ctx context.Context) error {
	if ms.txDB == nil {
		return fmt.Errorf("not in transaction")
	}
	err := ms.txDB.Commit()
	if err == nil {
		ms.db = nil
		ms.txDB = nil
	}
	return err
}

func (ms *MYSQLStore) TxRollback(ctx context.Context) error {
	if ms.txDB == nil {
		return fmt.Errorf("not in transaction")
	}
	err := ms.txDB.Rollback()
	if err == nil {
		ms.db = nil
		ms.txDB = nil
	}
	return err
}

func (ms *MYSQLStore) IsErrorRepeat(err error) bool {
	var e *mysql.MySQLError
	if errors.As(err, &e) {
		return e.Number == errLockDeadlock || e.Number == errLockWaitTimeout
	}
	return false
}

func (ms *MYSQLStore) IsErrUniqueViolation(err error) bool {
	var e *mysql.MySQLError
	if errors.As(err, &e) {
		return e.Number == errDupEntry
	}
	return false
}

func parseNamed(query string, params map[string]any) (string, []any, error) {
	queryNamed := namedParameterQuery.NewNamedParameterQuery(query)
	queryNamed.SetValuesFromMap(params)
	return sqlx.In(queryNamed.GetParsedQuery(), queryNamed.GetParsedParameters()...)
}

func QueryListNamed[T any](
	ctx context.Context,
	conn dependency.DB,
	query string,
	params map[string]any,
) ([]T, error) {
	query, args, err := parseNamed(query, params)
	if err != nil {
		return nil, fmt.Errorf("in: %w", err)
	}

	rows, err := conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query context: %w", err)
	}
	defer rows.Close()

	var target []T
	for rows.Next() {
		var t T
		if err := rows.StructScan(&t); err != nil {
			return nil, fmt.Errorf("struct scan: %w", err)
		}
		target = append(target, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return target, nil
}

// QueryNamedOne scans a single row into T. sql.ErrNoRows is returned wrapped.
func QueryNamedOne[T any](ctx context.Context, conn dependency.DB, query string, params map[string]any) (T, error) {
	var target T
	query, args, err := parseNamed(query, params)
	if err != nil {
		return target, fmt.Errorf("sqlx in: %w", err)
	}

	row := conn.QueryRowxContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		return target, fmt.Errorf("query row: %w", err)
	}

	if err := row.StructScan(&target); err != nil {
		return target, fmt.Errorf("struct scan: %w", err)
	}
	return target, nil
}

// QueryScalarNamed scans the single column of a single row into T.
func QueryScalarNamed[T any](ctx context.Context, conn dependency.DB, query string, params map[string]any) (T, error) {
	var target T
	query, args, err := parseNamed(query, params)
	if err != nil {
		return target, fmt.Errorf("sqlx in: %w", err)
	}
	if err := conn.QueryRowxContext(ctx, query, args...).Scan(&target); err != nil {
		return target, fmt.Errorf("query row scan: %w", err)
	}
	return target, nil
}

// nolint: interfacer
func ExecNamed(
	ctx context.Context,
	conn dependency.DB,
	query string,
	params map[string]any,
) error {
	_, err := execNamed(ctx, conn, query, params)
	return err
}

// ExecNamedAffected executes query and fails with sql.ErrNoRows when no row was touched.
func ExecNamedAffected(
	ctx context.Context,
	conn dependency.DB,
	query string,
	params map[string]any,
) error {
	res, err := execNamed(ctx, conn, query, params)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// nolint: interfacer
func ExecNamedLastId(
	ctx context.Context,
	conn dependency.DB,
	query string,
	params map[string]any,
) (int, error) {
	res, err := execNamed(ctx, conn, query, params)
	if err != nil {
		return 0, err
	}
	lid, err := res.LastInsertId()

	return int(lid), err
}

func execNamed(ctx context.Context, conn dependency.DB, query string, params map[string]any) (sql.Result, error) {
	query, args, argsErr := parseNamed(query, params)
	if argsErr != nil {
		return nil, fmt.Errorf("sqlx In: %w", argsErr)
	}
	res, err := conn.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ExecContext: %w", err)
	}
	return res, nil
}
