package room

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/m04kA/SMC-StayService/internal/domain"
	"github.com/m04kA/SMC-StayService/pkg/dbmetrics"
	"github.com/m04kA/SMC-StayService/pkg/psqlbuilder"
)

// unique_violation, срабатывает rooms_number_key
const pqUniqueViolation = "23505"

var roomColumns = []string{
	"id",
	"number",
	"nightly_rate",
	"capacity",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий номеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория номеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает номер по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(roomColumns...).
		From("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	room, err := scanRoom(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan room: %v", ErrScanRow, err)
	}

	return room, nil
}

// List возвращает номера, упорядоченные по номеру комнаты
func (r *Repository) List(ctx context.Context, activeOnly bool) ([]*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(roomColumns...).
		From("rooms").
		OrderBy("number ASC")

	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rooms := make([]*domain.Room, 0)
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return rooms, nil
}

// Create создает номер
func (r *Repository) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("rooms").
		Columns("number", "nightly_rate", "capacity", "is_active").
		Values(room.Number, room.NightlyRate, room.Capacity, room.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&room.ID, &room.CreatedAt, &room.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return nil, ErrRoomNumberTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return room, nil
}

// UpdateRate меняет цену за ночь
func (r *Repository) UpdateRate(ctx context.Context, id int64, rate float64) error {
	return r.update(ctx, "UpdateRate", id, "nightly_rate", rate)
}

// SetActive выводит номер из продажи или возвращает его
func (r *Repository) SetActive(ctx context.Context, id int64, active bool) error {
	return r.update(ctx, "SetActive", id, "is_active", active)
}

func (r *Repository) update(ctx context.Context, op string, id int64, column string, value interface{}) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rooms").
		Set(column, value).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrRoomNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRoom(row rowScanner) (*domain.Room, error) {
	var room domain.Room
	err := row.Scan(
		&room.ID,
		&room.Number,
		&room.NightlyRate,
		&room.Capacity,
		&room.IsActive,
		&room.CreatedAt,
		&room.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &room, nil
}
