package vehicles

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	vehicleRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-ParkingService/internal/service/vehicles/models"
)

// Service сервис для работы с транспортом пользователей
type Service struct {
	vehicleRepo VehicleRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса транспорта
func NewService(vehicleRepo VehicleRepository, logger Logger) *Service {
	return &Service{
		vehicleRepo: vehicleRepo,
		logger:      logger,
	}
}

// Create регистрирует новый транспорт
func (s *Service) Create(ctx context.Context, req *models.CreateVehicleRequest) (*models.VehicleResponse, error) {
	s.logger.Info("CreateVehicle: user=%d, plate=%s", req.UserID, req.Plate)

	if err := validateVehicle(req.UserID, req.Plate, req.Type); err != nil {
		s.logger.Warn("CreateVehicle: validation failed: %v", err)
		return nil, err
	}

	vehicle := &domain.Vehicle{
		UserID: req.UserID,
		Plate:  req.Plate,
		Type:   domain.VehicleType(req.Type),
		Color:  req.Color,
	}

	created, err := s.vehicleRepo.Create(ctx, vehicle)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrDuplicatePlate) {
			s.logger.Warn("CreateVehicle: plate=%s already registered", req.Plate)
			return nil, ErrDuplicatePlate
		}
		s.logger.Error("CreateVehicle: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateVehicle: successfully created vehicle id=%d", created.ID)
	return models.FromDomainVehicle(created), nil
}

// GetByID получает транспорт по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.VehicleResponse, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			s.logger.Warn("GetVehicle: vehicle id=%d not found", id)
			return nil, ErrVehicleNotFound
		}
		s.logger.Error("GetVehicle: repository error for vehicle id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainVehicle(vehicle), nil
}

// List получает список транспорта с фильтрацией по владельцу
func (s *Service) List(ctx context.Context, req *models.ListVehiclesRequest) (*models.VehicleListResponse, error) {
	vehicles, err := s.vehicleRepo.List(ctx, domain.VehiclesFilter{UserID: req.UserID})
	if err != nil {
		s.logger.Error("ListVehicles: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainVehicleList(vehicles), nil
}

// Update обновляет транспорт
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateVehicleRequest) (*models.VehicleResponse, error) {
	s.logger.Info("UpdateVehicle: vehicle id=%d", id)

	if err := validateVehicle(req.UserID, req.Plate, req.Type); err != nil {
		s.logger.Warn("UpdateVehicle: validation failed: %v", err)
		return nil, err
	}

	vehicle := &domain.Vehicle{
		UserID: req.UserID,
		Plate:  req.Plate,
		Type:   domain.VehicleType(req.Type),
		Color:  req.Color,
	}

	updated, err := s.vehicleRepo.Update(ctx, id, vehicle)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			s.logger.Warn("UpdateVehicle: vehicle id=%d not found", id)
			return nil, ErrVehicleNotFound
		}
		if errors.Is(err, vehicleRepo.ErrDuplicatePlate) {
			s.logger.Warn("UpdateVehicle: plate=%s already registered", req.Plate)
			return nil, ErrDuplicatePlate
		}
		s.logger.Error("UpdateVehicle: repository error for vehicle id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateVehicle: successfully updated vehicle id=%d", id)
	return models.FromDomainVehicle(updated), nil
}

// Delete удаляет транспорт
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("DeleteVehicle: vehicle id=%d", id)

	if err := s.vehicleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			s.logger.Warn("DeleteVehicle: vehicle id=%d not found", id)
			return ErrVehicleNotFound
		}
		s.logger.Error("DeleteVehicle: repository error for vehicle id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteVehicle: successfully deleted vehicle id=%d", id)
	return nil
}

func validateVehicle(userID int64, plate, vehicleType string) error {
	if userID <= 0 {
		return fmt.Errorf("%w: userId must be positive", ErrInvalidInput)
	}
	if plate == "" {
		return fmt.Errorf("%w: plate is required", ErrInvalidInput)
	}
	if len(plate) > domain.MaxPlateLength {
		return fmt.Errorf("%w: plate must be at most %d characters", ErrInvalidInput, domain.MaxPlateLength)
	}
	if !domain.VehicleType(vehicleType).IsValid() {
		return fmt.Errorf("%w: unknown vehicle type %q", ErrInvalidInput, vehicleType)
	}
	return nil
}
