package charge

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-StayService/internal/domain"
	"github.com/m04kA/SMC-StayService/pkg/dbmetrics"
	"github.com/m04kA/SMC-StayService/pkg/psqlbuilder"
)

// Repository репозиторий дополнительных начислений (минибар, room service, поздний выезд)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория начислений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет начисление к бронированию
func (r *Repository) Create(ctx context.Context, charge *domain.Charge) (*domain.Charge, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservation_charges").
		Columns("reservation_id", "kind", "amount", "description").
		Values(charge.ReservationID, charge.Kind, charge.Amount, charge.Description).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&charge.ID, &charge.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return charge, nil
}

// ListByReservation возвращает начисления бронирования в порядке добавления
func (r *Repository) ListByReservation(ctx context.Context, reservationID int64) ([]*domain.Charge, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "reservation_id", "kind", "amount", "description", "created_at").
		From("reservation_charges").
		Where(squirrel.Eq{"reservation_id": reservationID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByReservation - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByReservation - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	charges := make([]*domain.Charge, 0)
	for rows.Next() {
		var c domain.Charge
		if err := rows.Scan(&c.ID, &c.ReservationID, &c.Kind, &c.Amount, &c.Description, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListByReservation - scan row: %v", ErrScanRow, err)
		}
		charges = append(charges, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByReservation - rows error: %v", ErrScanRow, err)
	}

	return charges, nil
}
