package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/m04kA/SMC-StayService/pkg/metrics"
)

// DefaultStatsInterval период сбора статистики connection pool
const DefaultStatsInterval = 15 * time.Second

// Recorder принимает замеры запросов и состояния пула
type Recorder interface {
	ObserveDBQuery(operation string, seconds float64, err error)
	SetDBConnections(open, inUse, idle int)
}

// DB обёртка над *sql.DB, которая замеряет длительность запросов
type DB struct {
	db       *sql.DB
	recorder Recorder
}

// Wrap оборачивает *sql.DB. recorder может быть nil - тогда замеры не пишутся
func Wrap(db *sql.DB, recorder Recorder) *DB {
	return &DB{db: db, recorder: recorder}
}

// WrapWithDefault оборачивает *sql.DB и запускает сбор статистики пула до закрытия stopCh
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, m)
	go wrapped.collectPoolStats(DefaultStatsInterval, stopCh)
	return wrapped
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.observe(query, start, err)
	return res, err
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe(query, start, err)
	return rows, err
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observe(query, start, row.Err())
	return row
}

// BeginTx начинает транзакцию; запросы внутри неё тоже замеряются
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, parent: d}, nil
}

func (d *DB) observe(query string, start time.Time, err error) {
	if d.recorder == nil {
		return
	}
	d.recorder.ObserveDBQuery(operationOf(query), time.Since(start).Seconds(), err)
}

func (d *DB) collectPoolStats(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			if d.recorder == nil {
				continue
			}
			stats := d.db.Stats()
			d.recorder.SetDBConnections(stats.OpenConnections, stats.InUse, stats.Idle)
		}
	}
}

// Tx транзакция с замером запросов
type Tx struct {
	tx     *sql.Tx
	parent *DB
}

func (t *Tx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := t.tx.ExecContext(ctx, query, args...)
	t.parent.observe(query, start, err)
	return res, err
}

func (t *Tx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.parent.observe(query, start, err)
	return rows, err
}

func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.parent.observe(query, start, row.Err())
	return row
}

func (t *Tx) Commit() error {
	return t.tx.Commit()
}

func (t *Tx) Rollback() error {
	return t.tx.Rollback()
}

// operationOf возвращает первое ключевое слово запроса (SELECT, INSERT, ...)
func operationOf(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "UNKNOWN"
	}
	return strings.ToUpper(fields[0])
}
