package dbmetrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeTx struct {
	DBExecutor
}

func (fakeTx) Commit() error   { return nil }
func (fakeTx) Rollback() error { return nil }

func TestOperationOf(t *testing.T) {
	assert.Equal(t, "SELECT", operationOf("  select id FROM rooms"))
	assert.Equal(t, "INSERT", operationOf("INSERT INTO reservations"))
	assert.Equal(t, "UNKNOWN", operationOf(""))
}

func TestGetExecutor(t *testing.T) {
	ctx := context.Background()
	var db DBExecutor = &DB{}

	assert.False(t, IsInTransaction(ctx))
	assert.Same(t, db, GetExecutor(ctx, db))

	tx := &fakeTx{}
	txCtx := WithTx(ctx, tx)

	assert.True(t, IsInTransaction(txCtx))
	assert.Equal(t, tx, GetExecutor(txCtx, db))
}

func TestCanLockRows(t *testing.T) {
	ctx := context.Background()
	assert.False(t, CanLockRows(ctx))

	txCtx := WithTx(ctx, &fakeTx{})
	assert.True(t, CanLockRows(txCtx))
	assert.False(t, IsReadOnly(txCtx))

	roCtx := WithReadOnly(txCtx)
	assert.True(t, IsInTransaction(roCtx))
	assert.True(t, IsReadOnly(roCtx))
	assert.False(t, CanLockRows(roCtx))
}
