package facilities

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	facilityRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/facility"
	"github.com/m04kA/SMC-ParkingService/internal/service/facilities/models"
)

// Service сервис для работы с парковками
type Service struct {
	facilityRepo FacilityRepository
	spaceRepo    SpaceRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса парковок
func NewService(facilityRepo FacilityRepository, spaceRepo SpaceRepository, logger Logger) *Service {
	return &Service{
		facilityRepo: facilityRepo,
		spaceRepo:    spaceRepo,
		logger:       logger,
	}
}

// Create создает новую парковку
func (s *Service) Create(ctx context.Context, req *models.CreateFacilityRequest) (*models.FacilityResponse, error) {
	s.logger.Info("CreateFacility: name=%s", req.Name)

	if err := validateFacility(req.Name, req.Capacity); err != nil {
		s.logger.Warn("CreateFacility: validation failed: %v", err)
		return nil, err
	}

	facility := &domain.Facility{
		Name:      req.Name,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Capacity:  req.Capacity,
		Schedule:  req.Schedule,
	}

	created, err := s.facilityRepo.Create(ctx, facility)
	if err != nil {
		s.logger.Error("CreateFacility: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateFacility: successfully created facility id=%d", created.ID)
	return models.FromDomainFacility(created), nil
}

// GetByID получает парковку по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.FacilityResponse, error) {
	facility, err := s.facilityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			s.logger.Warn("GetFacility: facility id=%d not found", id)
			return nil, ErrFacilityNotFound
		}
		s.logger.Error("GetFacility: repository error for facility id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainFacility(facility), nil
}

// List получает список всех парковок
func (s *Service) List(ctx context.Context) (*models.FacilityListResponse, error) {
	facilities, err := s.facilityRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListFacilities: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainFacilityList(facilities), nil
}

// Update обновляет парковку
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateFacilityRequest) (*models.FacilityResponse, error) {
	s.logger.Info("UpdateFacility: facility id=%d", id)

	if err := validateFacility(req.Name, req.Capacity); err != nil {
		s.logger.Warn("UpdateFacility: validation failed: %v", err)
		return nil, err
	}

	facility := &domain.Facility{
		Name:      req.Name,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Capacity:  req.Capacity,
		Schedule:  req.Schedule,
	}

	updated, err := s.facilityRepo.Update(ctx, id, facility)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			s.logger.Warn("UpdateFacility: facility id=%d not found", id)
			return nil, ErrFacilityNotFound
		}
		s.logger.Error("UpdateFacility: repository error for facility id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateFacility: successfully updated facility id=%d", id)
	return models.FromDomainFacility(updated), nil
}

// Delete удаляет парковку
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("DeleteFacility: facility id=%d", id)

	if err := s.facilityRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			s.logger.Warn("DeleteFacility: facility id=%d not found", id)
			return ErrFacilityNotFound
		}
		s.logger.Error("DeleteFacility: repository error for facility id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteFacility: successfully deleted facility id=%d", id)
	return nil
}

// GetMap строит карту парковки: места группируются в ряды по буквенному
// префиксу кода, внутри ряда сортируются по номеру колонки
func (s *Service) GetMap(ctx context.Context, id int64) (*models.FacilityMapResponse, error) {
	s.logger.Info("GetFacilityMap: facility id=%d", id)

	facility, err := s.facilityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			s.logger.Warn("GetFacilityMap: facility id=%d not found", id)
			return nil, ErrFacilityNotFound
		}
		s.logger.Error("GetFacilityMap: repository error for facility id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetMap - repository error: %v", ErrInternal, err)
	}

	spaces, err := s.spaceRepo.List(ctx, domain.SpacesFilter{FacilityID: &id})
	if err != nil {
		s.logger.Error("GetFacilityMap: failed to list spaces for facility id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetMap - repository error: %v", ErrInternal, err)
	}

	resp := &models.FacilityMapResponse{
		FacilityID: facility.ID,
		Name:       facility.Name,
		Rows:       buildRows(spaces),
	}

	s.logger.Info("GetFacilityMap: facility id=%d has %d rows", id, len(resp.Rows))
	return resp, nil
}

func validateFacility(name string, capacity int) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxFacilityNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxFacilityNameLength)
	}
	if capacity < 0 {
		return fmt.Errorf("%w: capacity must not be negative", ErrInvalidInput)
	}
	return nil
}
