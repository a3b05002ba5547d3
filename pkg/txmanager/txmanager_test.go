package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StayService/pkg/dbmetrics"
)

type fakeTx struct {
	dbmetrics.DBExecutor
	committed  bool
	rolledBack bool
	commitErr  error
}

func (t *fakeTx) Commit() error {
	t.committed = true
	return t.commitErr
}

func (t *fakeTx) Rollback() error {
	t.rolledBack = true
	return nil
}

type fakeBeginner struct {
	tx       *fakeTx
	opts     *sql.TxOptions
	beginErr error
	begins   int
}

func (b *fakeBeginner) BeginTx(_ context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	b.begins++
	b.opts = opts
	if b.beginErr != nil {
		return nil, b.beginErr
	}
	return b.tx, nil
}

func TestDoSerializable_Commit(t *testing.T) {
	b := &fakeBeginner{tx: &fakeTx{}}
	m := NewTransactionManager(b)

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		return nil
	})

	require.NoError(t, err)
	assert.True(t, b.tx.committed)
	assert.False(t, b.tx.rolledBack)
	assert.Equal(t, sql.LevelSerializable, b.opts.Isolation)
}

func TestDo_RollbackOnError(t *testing.T) {
	b := &fakeBeginner{tx: &fakeTx{}}
	m := NewTransactionManager(b)
	want := errors.New("room taken")

	err := m.Do(context.Background(), func(context.Context) error { return want })

	assert.ErrorIs(t, err, want)
	assert.True(t, b.tx.rolledBack)
	assert.False(t, b.tx.committed)
}

func TestDo_BeginAndCommitErrors(t *testing.T) {
	m := NewTransactionManager(&fakeBeginner{beginErr: errors.New("conn refused")})
	err := m.Do(context.Background(), func(context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrBeginTx)

	b := &fakeBeginner{tx: &fakeTx{commitErr: errors.New("serialization failure")}}
	err = NewTransactionManager(b).DoReadOnly(context.Background(), func(context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrCommitTx)
	assert.True(t, b.opts.ReadOnly)
}

func TestDo_NestedReusesOuterTx(t *testing.T) {
	b := &fakeBeginner{tx: &fakeTx{}}
	m := NewTransactionManager(b)

	err := m.Do(context.Background(), func(ctx context.Context) error {
		return m.DoSerializable(ctx, func(context.Context) error { return nil })
	})

	require.NoError(t, err)
	assert.Equal(t, 1, b.begins)
}

func TestDoReadOnly_MarksContext(t *testing.T) {
	b := &fakeBeginner{tx: &fakeTx{}}
	m := NewTransactionManager(b)

	err := m.DoReadOnly(context.Background(), func(ctx context.Context) error {
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		assert.True(t, dbmetrics.IsReadOnly(ctx))
		assert.False(t, dbmetrics.CanLockRows(ctx))
		return nil
	})

	require.NoError(t, err)
	assert.True(t, b.tx.committed)
	assert.True(t, b.opts.ReadOnly)

	err = m.DoSerializable(context.Background(), func(ctx context.Context) error {
		assert.True(t, dbmetrics.CanLockRows(ctx))
		return nil
	})
	require.NoError(t, err)
}
