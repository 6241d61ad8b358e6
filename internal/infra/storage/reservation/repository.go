package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/psqlbuilder"
)

var reservationColumns = []string{
	"id",
	"user_id",
	"facility_id",
	"space_id",
	"planned_start",
	"planned_end",
	"actual_start",
	"actual_end",
	"status",
	"total_amount",
	"created_at",
}

// Repository репозиторий для работы с резервациями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория резерваций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую резервацию
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"user_id",
			"facility_id",
			"space_id",
			"planned_start",
			"planned_end",
			"actual_start",
			"actual_end",
			"status",
			"total_amount",
		).
		Values(
			res.UserID,
			res.FacilityID,
			res.SpaceID,
			res.PlannedStart,
			res.PlannedEnd,
			res.ActualStart,
			res.ActualEnd,
			res.Status,
			toNullDecimal(res.TotalAmount),
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&res.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	return res, nil
}

// GetByID получает резервацию по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := r.scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// List получает список резерваций с фильтрацией по пользователю, парковке и статусу
func (r *Repository) List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		OrderBy("id ASC")

	if filter.UserID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"user_id": *filter.UserID})
	}
	if filter.FacilityID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"facility_id": *filter.FacilityID})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
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

	return r.scanReservations(rows)
}

// Update обновляет резервацию (временные границы, место, статус, сумму)
func (r *Repository) Update(ctx context.Context, id int64, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("space_id", res.SpaceID).
		Set("planned_start", res.PlannedStart).
		Set("planned_end", res.PlannedEnd).
		Set("actual_start", res.ActualStart).
		Set("actual_end", res.ActualEnd).
		Set("status", res.Status).
		Set("total_amount", toNullDecimal(res.TotalAmount)).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING user_id, facility_id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&res.UserID, &res.FacilityID, &createdAt)
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	res.ID = id
	res.CreatedAt = createdAt.Time
	return res, nil
}

// Delete удаляет резервацию
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// CountTotal возвращает общее количество резерваций
func (r *Repository) CountTotal(ctx context.Context) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").From("reservations").ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountTotal - build select query: %v", ErrBuildQuery, err)
	}

	var total int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: CountTotal - scan total: %v", ErrScanRow, err)
	}

	return total, nil
}

// CountByDay возвращает количество резерваций по дням за период [from, to)
// (группировка по дате planned_start). Дни без резерваций в результат не попадают.
func (r *Repository) CountByDay(ctx context.Context, from, to time.Time) (map[string]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"DATE(planned_start) AS day",
		"COUNT(*) AS cnt",
	).
		From("reservations").
		Where(squirrel.GtOrEq{"planned_start": from}).
		Where(squirrel.Lt{"planned_start": to}).
		GroupBy("DATE(planned_start)").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CountByDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountByDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var day time.Time
		var cnt int64
		if err := rows.Scan(&day, &cnt); err != nil {
			return nil, fmt.Errorf("%w: CountByDay - scan row: %v", ErrScanRow, err)
		}
		counts[day.Format(domain.DateFormat)] = cnt
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountByDay - rows error: %v", ErrScanRow, err)
	}

	return counts, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var createdAt sql.NullTime
	var totalAmount decimal.NullDecimal

	err := row.Scan(
		&res.ID,
		&res.UserID,
		&res.FacilityID,
		&res.SpaceID,
		&res.PlannedStart,
		&res.PlannedEnd,
		&res.ActualStart,
		&res.ActualEnd,
		&res.Status,
		&totalAmount,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if totalAmount.Valid {
		res.TotalAmount = &totalAmount.Decimal
	}
	res.CreatedAt = createdAt.Time
	return &res, nil
}

// toNullDecimal конвертирует *decimal.Decimal в NullDecimal для записи в БД
func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

// scanReservations сканирует результаты запроса в слайс резерваций
func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		res, err := r.scanReservation(rows)
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
