package reading

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

const foreignKeyViolation = "23503"

var readingColumns = []string{
	"id",
	"sensor_id",
	"value",
	"occupied",
	"received_at",
}

// Repository репозиторий для работы с показаниями сенсоров.
// Показания только добавляются и читаются, обновление не поддерживается.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория показаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новое показание сенсора
func (r *Repository) Create(ctx context.Context, reading *domain.Reading) (*domain.Reading, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("readings").
		Columns("sensor_id", "value", "occupied").
		Values(reading.SensorID, []byte(reading.Value), reading.Occupied).
		Suffix("RETURNING id, received_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var receivedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&reading.ID, &receivedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == foreignKeyViolation {
			return nil, ErrSensorNotFound
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	reading.ReceivedAt = receivedAt.Time
	return reading, nil
}

// GetByID получает показание по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reading, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(readingColumns...).
		From("readings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	reading, err := scanReading(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReadingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reading: %v", ErrScanRow, err)
	}

	return reading, nil
}

// List получает показания, отсортированные от новых к старым
func (r *Repository) List(ctx context.Context, filter domain.ReadingsFilter) ([]*domain.Reading, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(readingColumns...).
		From("readings").
		OrderBy("received_at DESC", "id DESC")

	if filter.SensorID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"sensor_id": *filter.SensorID})
	}
	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(filter.Limit)
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

	readings := make([]*domain.Reading, 0)
	for rows.Next() {
		reading, err := scanReading(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		readings = append(readings, reading)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return readings, nil
}

// Delete удаляет показание
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("readings").
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
		return ErrReadingNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReading(row rowScanner) (*domain.Reading, error) {
	var reading domain.Reading
	var value []byte
	var receivedAt sql.NullTime

	err := row.Scan(
		&reading.ID,
		&reading.SensorID,
		&value,
		&reading.Occupied,
		&receivedAt,
	)
	if err != nil {
		return nil, err
	}

	reading.Value = value
	reading.ReceivedAt = receivedAt.Time
	return &reading, nil
}
