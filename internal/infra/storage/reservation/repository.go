package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/m04kA/SMC-StayService/internal/domain"
	"github.com/m04kA/SMC-StayService/pkg/dbmetrics"
	"github.com/m04kA/SMC-StayService/pkg/psqlbuilder"
)

// exclusion_violation, срабатывает reservations_no_overlap
const pqExclusionViolation = "23P01"

var reservationColumns = []string{
	"id",
	"room_id",
	"client_id",
	"check_in",
	"check_out",
	"status",
	"guest_count",
	"nightly_rate",
	"total_amount",
	"guest_name",
	"notes",
	"checked_in_at",
	"checked_out_at",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий бронирований номеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бронирование.
// Если в контексте есть транзакция, запрос выполняется в ней.
// Пересечение с активным бронированием того же номера отклоняется базой (ErrRoomAlreadyBooked).
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"room_id",
			"client_id",
			"check_in",
			"check_out",
			"status",
			"guest_count",
			"nightly_rate",
			"total_amount",
			"guest_name",
			"notes",
		).
		Values(
			res.RoomID,
			res.ClientID,
			res.Stay.Start,
			res.Stay.End,
			res.Status,
			res.GuestCount,
			res.NightlyRate,
			res.TotalAmount,
			res.GuestName,
			res.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqExclusionViolation {
			return nil, ErrRoomAlreadyBooked
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return res, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id})

	// В транзакции (выезд, отмена) блокируем строку до коммита
	if dbmetrics.CanLockRows(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// GetByClientID получает бронирования клиента, новые заезды первыми
func (r *Repository) GetByClientID(ctx context.Context, clientID int64, status *domain.ReservationStatus) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"client_id": clientID}).
		OrderBy("check_in DESC", "id DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByClientID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByClientID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// GetByRoomsInPeriod получает бронирования номеров, пересекающиеся с периодом.
// Пересечение полуоткрытое: check_in < period.End AND check_out > period.Start.
//
// Примеры:
//
// 1. Все активные бронирования всех номеров:
//    filter := domain.RoomReservationsFilter{}
//
// 2. Активные бронирования номера 7 на период (внутри транзакции строки блокируются):
//    filter := domain.RoomReservationsFilter{RoomIDs: []int64{7}, Period: &stay}
//
// 3. Для расчёта загрузки нужны и выехавшие гости:
//    filter := domain.RoomReservationsFilter{RoomIDs: []int64{7}, Period: &window, IncludeInactive: true}
func (r *Repository) GetByRoomsInPeriod(ctx context.Context, filter domain.RoomReservationsFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations")

	if len(filter.RoomIDs) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.Expr("room_id = ANY(?)", pq.Array(filter.RoomIDs)))
	}

	if filter.Period != nil {
		selectBuilder = selectBuilder.
			Where(squirrel.Lt{"check_in": filter.Period.End}).
			Where(squirrel.Gt{"check_out": filter.Period.Start})
	}

	if !filter.IncludeInactive {
		inactive := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactive[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactive})
	}

	selectBuilder = selectBuilder.OrderBy("room_id ASC", "check_in ASC")

	// При создании бронирования блокируем найденные строки до коммита
	if dbmetrics.CanLockRows(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRoomsInPeriod - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRoomsInPeriod - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// UpdateStatus меняет статус; для checked_in фиксирует время заезда
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	if _, err := domain.ParseReservationStatus(string(status)); err != nil {
		return fmt.Errorf("%w: UpdateStatus - %s", ErrInvalidStatus, status)
	}

	updateBuilder := psqlbuilder.Update("reservations").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if status == domain.StatusCheckedIn {
		updateBuilder = updateBuilder.Set("checked_in_at", squirrel.Expr("NOW()"))
	}

	return r.exec(ctx, "UpdateStatus", updateBuilder)
}

// CheckOut завершает проживание и сохраняет итоговую сумму.
// checkedOutAt передаётся вызывающим, чтобы совпадать с ответом и событием
func (r *Repository) CheckOut(ctx context.Context, id int64, totalAmount float64, checkedOutAt time.Time) error {
	updateBuilder := psqlbuilder.Update("reservations").
		Set("status", domain.StatusCheckedOut).
		Set("total_amount", totalAmount).
		Set("checked_out_at", checkedOutAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	return r.exec(ctx, "CheckOut", updateBuilder)
}

// Cancel отменяет бронирование
func (r *Repository) Cancel(ctx context.Context, id int64) error {
	updateBuilder := psqlbuilder.Update("reservations").
		Set("status", domain.StatusCancelled).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	return r.exec(ctx, "Cancel", updateBuilder)
}

func (r *Repository) exec(ctx context.Context, op string, updateBuilder squirrel.UpdateBuilder) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := updateBuilder.ToSql()
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
		return ErrReservationNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation

	err := row.Scan(
		&res.ID,
		&res.RoomID,
		&res.ClientID,
		&res.Stay.Start,
		&res.Stay.End,
		&res.Status,
		&res.GuestCount,
		&res.NightlyRate,
		&res.TotalAmount,
		&res.GuestName,
		&res.Notes,
		&res.CheckedInAt,
		&res.CheckedOutAt,
		&res.CancelledAt,
		&res.CreatedAt,
		&res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	// DATE приходит с зоной соединения, приводим к полуночи UTC
	res.Stay.Start = domain.TruncateToDay(res.Stay.Start)
	res.Stay.End = domain.TruncateToDay(res.Stay.End)

	return &res, nil
}

func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
