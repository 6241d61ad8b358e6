package sensor

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/psqlbuilder"
)

const uniqueViolation = "23505"

var sensorColumns = []string{
	"id",
	"space_id",
	"type",
	"hardware_id",
	"active",
}

// Repository репозиторий для работы с сенсорами занятости
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сенсоров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create регистрирует новый сенсор
func (r *Repository) Create(ctx context.Context, s *domain.Sensor) (*domain.Sensor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("sensors").
		Columns("space_id", "type", "hardware_id", "active").
		Values(s.SpaceID, s.Type, s.HardwareID, s.Active).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolation {
			return nil, ErrDuplicateHardwareID
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return s, nil
}

// GetByID получает сенсор по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Sensor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(sensorColumns...).
		From("sensors").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Sensor
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.SpaceID, &s.Type, &s.HardwareID, &s.Active)
	if err == sql.ErrNoRows {
		return nil, ErrSensorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan sensor: %v", ErrScanRow, err)
	}

	return &s, nil
}

// List получает список сенсоров с фильтрацией по месту
func (r *Repository) List(ctx context.Context, filter domain.SensorsFilter) ([]*domain.Sensor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(sensorColumns...).
		From("sensors").
		OrderBy("id ASC")

	if filter.SpaceID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"space_id": *filter.SpaceID})
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

	sensors := make([]*domain.Sensor, 0)
	for rows.Next() {
		var s domain.Sensor
		if err := rows.Scan(&s.ID, &s.SpaceID, &s.Type, &s.HardwareID, &s.Active); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		sensors = append(sensors, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return sensors, nil
}

// Update обновляет сенсор
func (r *Repository) Update(ctx context.Context, id int64, s *domain.Sensor) (*domain.Sensor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("sensors").
		Set("space_id", s.SpaceID).
		Set("type", s.Type).
		Set("hardware_id", s.HardwareID).
		Set("active", s.Active).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolation {
			return nil, ErrDuplicateHardwareID
		}
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return nil, ErrSensorNotFound
	}

	s.ID = id
	return s, nil
}

// Delete удаляет сенсор
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("sensors").
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
		return ErrSensorNotFound
	}

	return nil
}
