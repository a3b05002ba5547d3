package dbmetrics

import (
	"context"
	"database/sql"
)

// DBExecutor общий интерфейс для *sql.DB, *sql.Tx, *DB и *Tx
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxExecutor транзакция, через которую выполняются запросы
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

type txKey struct{}

// WithTx кладёт транзакцию в контекст
func WithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// TxFromContext достаёт транзакцию из контекста
func TxFromContext(ctx context.Context) (TxExecutor, bool) {
	tx, ok := ctx.Value(txKey{}).(TxExecutor)
	return tx, ok && tx != nil
}

// GetExecutor возвращает транзакцию из контекста, если она есть, иначе db
func GetExecutor(ctx context.Context, db DBExecutor) DBExecutor {
	if tx, ok := TxFromContext(ctx); ok {
		return tx
	}
	return db
}

// IsInTransaction сообщает, выполняется ли код внутри транзакции
func IsInTransaction(ctx context.Context) bool {
	_, ok := TxFromContext(ctx)
	return ok
}

type readOnlyKey struct{}

// WithReadOnly помечает контекст read-only транзакции
func WithReadOnly(ctx context.Context) context.Context {
	return context.WithValue(ctx, readOnlyKey{}, true)
}

// IsReadOnly сообщает, что транзакция в контексте открыта как READ ONLY
func IsReadOnly(ctx context.Context) bool {
	ro, _ := ctx.Value(readOnlyKey{}).(bool)
	return ro
}

// CanLockRows можно ли брать блокировки строк (FOR UPDATE).
// Postgres отклоняет FOR UPDATE в READ ONLY транзакции
func CanLockRows(ctx context.Context) bool {
	return IsInTransaction(ctx) && !IsReadOnly(ctx)
}
