package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ParkingService/internal/service/reservations/models"
)

// Service сервис для работы с резервациями
type Service struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса резерваций
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Create создает новую резервацию
func (s *Service) Create(ctx context.Context, req *models.CreateReservationRequest) (*models.ReservationResponse, error) {
	s.logger.Info("CreateReservation: user=%d, facility=%d", req.UserID, req.FacilityID)

	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userId must be positive", ErrInvalidInput)
	}
	if req.FacilityID <= 0 {
		return nil, fmt.Errorf("%w: facilityId must be positive", ErrInvalidInput)
	}
	if req.PlannedStart.IsZero() || req.PlannedEnd.IsZero() {
		return nil, fmt.Errorf("%w: plannedStart and plannedEnd are required", ErrInvalidInput)
	}
	if !req.PlannedEnd.After(req.PlannedStart) {
		s.logger.Warn("CreateReservation: plannedEnd is not after plannedStart")
		return nil, ErrInvalidTimeRange
	}

	status := domain.ReservationPending
	if req.Status != nil {
		status = domain.ReservationStatus(*req.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, *req.Status)
		}
	}

	reservation := &domain.Reservation{
		UserID:       req.UserID,
		FacilityID:   req.FacilityID,
		SpaceID:      req.SpaceID,
		PlannedStart: req.PlannedStart,
		PlannedEnd:   req.PlannedEnd,
		Status:       status,
	}

	created, err := s.reservationRepo.Create(ctx, reservation)
	if err != nil {
		s.logger.Error("CreateReservation: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateReservation: successfully created reservation id=%d", created.ID)
	return models.FromDomainReservation(created), nil
}

// GetByID получает резервацию по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetReservation: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetReservation: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(reservation), nil
}

// List получает список резерваций с фильтрацией
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	filter := domain.ReservationsFilter{
		UserID:     req.UserID,
		FacilityID: req.FacilityID,
	}

	if req.Status != nil {
		status := domain.ReservationStatus(*req.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, *req.Status)
		}
		filter.Status = &status
	}

	reservations, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListReservations: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservationList(reservations), nil
}

// Update обновляет резервацию
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateReservationRequest) (*models.ReservationResponse, error) {
	s.logger.Info("UpdateReservation: reservation id=%d", id)

	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userId must be positive", ErrInvalidInput)
	}
	if req.FacilityID <= 0 {
		return nil, fmt.Errorf("%w: facilityId must be positive", ErrInvalidInput)
	}
	if !req.PlannedEnd.After(req.PlannedStart) {
		s.logger.Warn("UpdateReservation: plannedEnd is not after plannedStart")
		return nil, ErrInvalidTimeRange
	}

	status := domain.ReservationStatus(req.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	reservation := &domain.Reservation{
		UserID:       req.UserID,
		FacilityID:   req.FacilityID,
		SpaceID:      req.SpaceID,
		PlannedStart: req.PlannedStart,
		PlannedEnd:   req.PlannedEnd,
		ActualStart:  req.ActualStart,
		ActualEnd:    req.ActualEnd,
		Status:       status,
		TotalAmount:  req.TotalAmount,
	}

	updated, err := s.reservationRepo.Update(ctx, id, reservation)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("UpdateReservation: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("UpdateReservation: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateReservation: successfully updated reservation id=%d", id)
	return models.FromDomainReservation(updated), nil
}

// Delete удаляет резервацию
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("DeleteReservation: reservation id=%d", id)

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("DeleteReservation: reservation id=%d not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("DeleteReservation: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteReservation: successfully deleted reservation id=%d", id)
	return nil
}
