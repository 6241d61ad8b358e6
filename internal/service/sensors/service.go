package sensors

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	readingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/reading"
	sensorRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/sensor"
	"github.com/m04kA/SMC-ParkingService/internal/service/sensors/models"
)

// Service сервис для работы с сенсорами и их показаниями.
// Показания сохраняются как есть и никогда не меняют состояние мест.
type Service struct {
	sensorRepo  SensorRepository
	readingRepo ReadingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса сенсоров
func NewService(sensorRepo SensorRepository, readingRepo ReadingRepository, logger Logger) *Service {
	return &Service{
		sensorRepo:  sensorRepo,
		readingRepo: readingRepo,
		logger:      logger,
	}
}

// CreateSensor регистрирует новый сенсор
func (s *Service) CreateSensor(ctx context.Context, req *models.CreateSensorRequest) (*models.SensorResponse, error) {
	s.logger.Info("CreateSensor: space=%d, hardware=%s", req.SpaceID, req.HardwareID)

	if err := validateSensor(req.SpaceID, req.Type, req.HardwareID); err != nil {
		s.logger.Warn("CreateSensor: validation failed: %v", err)
		return nil, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	sensor := &domain.Sensor{
		SpaceID:    req.SpaceID,
		Type:       domain.SensorType(req.Type),
		HardwareID: req.HardwareID,
		Active:     active,
	}

	created, err := s.sensorRepo.Create(ctx, sensor)
	if err != nil {
		if errors.Is(err, sensorRepo.ErrDuplicateHardwareID) {
			s.logger.Warn("CreateSensor: hardware=%s already registered", req.HardwareID)
			return nil, ErrDuplicateHardwareID
		}
		s.logger.Error("CreateSensor: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateSensor - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateSensor: successfully created sensor id=%d", created.ID)
	return models.FromDomainSensor(created), nil
}

// GetSensor получает сенсор по ID
func (s *Service) GetSensor(ctx context.Context, id int64) (*models.SensorResponse, error) {
	sensor, err := s.sensorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sensorRepo.ErrSensorNotFound) {
			s.logger.Warn("GetSensor: sensor id=%d not found", id)
			return nil, ErrSensorNotFound
		}
		s.logger.Error("GetSensor: repository error for sensor id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetSensor - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSensor(sensor), nil
}

// ListSensors получает список сенсоров с фильтрацией по месту
func (s *Service) ListSensors(ctx context.Context, req *models.ListSensorsRequest) (*models.SensorListResponse, error) {
	sensors, err := s.sensorRepo.List(ctx, domain.SensorsFilter{SpaceID: req.SpaceID})
	if err != nil {
		s.logger.Error("ListSensors: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListSensors - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSensorList(sensors), nil
}

// UpdateSensor обновляет сенсор
func (s *Service) UpdateSensor(ctx context.Context, id int64, req *models.UpdateSensorRequest) (*models.SensorResponse, error) {
	s.logger.Info("UpdateSensor: sensor id=%d", id)

	if err := validateSensor(req.SpaceID, req.Type, req.HardwareID); err != nil {
		s.logger.Warn("UpdateSensor: validation failed: %v", err)
		return nil, err
	}

	sensor := &domain.Sensor{
		SpaceID:    req.SpaceID,
		Type:       domain.SensorType(req.Type),
		HardwareID: req.HardwareID,
		Active:     req.Active,
	}

	updated, err := s.sensorRepo.Update(ctx, id, sensor)
	if err != nil {
		if errors.Is(err, sensorRepo.ErrSensorNotFound) {
			s.logger.Warn("UpdateSensor: sensor id=%d not found", id)
			return nil, ErrSensorNotFound
		}
		if errors.Is(err, sensorRepo.ErrDuplicateHardwareID) {
			s.logger.Warn("UpdateSensor: hardware=%s already registered", req.HardwareID)
			return nil, ErrDuplicateHardwareID
		}
		s.logger.Error("UpdateSensor: repository error for sensor id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateSensor - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSensor: successfully updated sensor id=%d", id)
	return models.FromDomainSensor(updated), nil
}

// DeleteSensor удаляет сенсор
func (s *Service) DeleteSensor(ctx context.Context, id int64) error {
	s.logger.Info("DeleteSensor: sensor id=%d", id)

	if err := s.sensorRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, sensorRepo.ErrSensorNotFound) {
			s.logger.Warn("DeleteSensor: sensor id=%d not found", id)
			return ErrSensorNotFound
		}
		s.logger.Error("DeleteSensor: repository error for sensor id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteSensor - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteSensor: successfully deleted sensor id=%d", id)
	return nil
}

// CreateReading сохраняет показание сенсора
func (s *Service) CreateReading(ctx context.Context, req *models.CreateReadingRequest) (*models.ReadingResponse, error) {
	s.logger.Info("CreateReading: sensor=%d, occupied=%t", req.SensorID, req.Occupied)

	if req.SensorID <= 0 {
		return nil, fmt.Errorf("%w: sensorId must be positive", ErrInvalidInput)
	}

	reading := &domain.Reading{
		SensorID: req.SensorID,
		Value:    req.Value,
		Occupied: req.Occupied,
	}

	created, err := s.readingRepo.Create(ctx, reading)
	if err != nil {
		if errors.Is(err, readingRepo.ErrSensorNotFound) {
			s.logger.Warn("CreateReading: sensor id=%d does not exist", req.SensorID)
			return nil, ErrSensorNotFound
		}
		s.logger.Error("CreateReading: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateReading - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateReading: successfully created reading id=%d", created.ID)
	return models.FromDomainReading(created), nil
}

// GetReading получает показание по ID
func (s *Service) GetReading(ctx context.Context, id int64) (*models.ReadingResponse, error) {
	reading, err := s.readingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, readingRepo.ErrReadingNotFound) {
			s.logger.Warn("GetReading: reading id=%d not found", id)
			return nil, ErrReadingNotFound
		}
		s.logger.Error("GetReading: repository error for reading id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetReading - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReading(reading), nil
}

// ListReadings получает показания, отсортированные от новых к старым
func (s *Service) ListReadings(ctx context.Context, req *models.ListReadingsRequest) (*models.ReadingListResponse, error) {
	readings, err := s.readingRepo.List(ctx, domain.ReadingsFilter{
		SensorID: req.SensorID,
		Limit:    req.Limit,
	})
	if err != nil {
		s.logger.Error("ListReadings: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListReadings - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReadingList(readings), nil
}

// DeleteReading удаляет показание
func (s *Service) DeleteReading(ctx context.Context, id int64) error {
	s.logger.Info("DeleteReading: reading id=%d", id)

	if err := s.readingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, readingRepo.ErrReadingNotFound) {
			s.logger.Warn("DeleteReading: reading id=%d not found", id)
			return ErrReadingNotFound
		}
		s.logger.Error("DeleteReading: repository error for reading id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteReading - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteReading: successfully deleted reading id=%d", id)
	return nil
}

func validateSensor(spaceID int64, sensorType, hardwareID string) error {
	if spaceID <= 0 {
		return fmt.Errorf("%w: spaceId must be positive", ErrInvalidInput)
	}
	if hardwareID == "" {
		return fmt.Errorf("%w: hardwareId is required", ErrInvalidInput)
	}
	if !domain.SensorType(sensorType).IsValid() {
		return fmt.Errorf("%w: unknown sensor type %q", ErrInvalidInput, sensorType)
	}
	return nil
}
