package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StayService/pkg/dbmetrics"
)

var (
	// ErrBeginTx не удалось начать транзакцию
	ErrBeginTx = errors.New("txmanager: failed to begin transaction")

	// ErrCommitTx не удалось зафиксировать транзакцию
	ErrCommitTx = errors.New("txmanager: failed to commit transaction")
)

// TxBeginner источник транзакций (*dbmetrics.DB)
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager выполняет функции в транзакции, передавая её через контекст
// Репозитории получают транзакцию через dbmetrics.GetExecutor
type TransactionManager struct {
	db TxBeginner
}

func NewTransactionManager(db TxBeginner) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do выполняет fn в транзакции с уровнем изоляции по умолчанию
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, nil, fn)
}

// DoSerializable выполняет fn в SERIALIZABLE транзакции
// Используется при создании бронирования и выезде гостя
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
}

// DoReadOnly выполняет fn в read-only транзакции.
// Репозитории в ней не берут блокировки строк
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) (err error) {
	// Вложенный вызов переиспользует внешнюю транзакцию
	if dbmetrics.IsInTransaction(ctx) {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBeginTx, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	txCtx := dbmetrics.WithTx(ctx, tx)
	if opts != nil && opts.ReadOnly {
		txCtx = dbmetrics.WithReadOnly(txCtx)
	}

	if err := fn(txCtx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", ErrCommitTx, err)
	}

	return nil
}
