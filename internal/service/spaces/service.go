package spaces

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	spaceRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/space"
	"github.com/m04kA/SMC-ParkingService/internal/service/spaces/models"
)

// Service сервис для работы с парковочными местами.
// Смена состояния выполняется безусловной перезаписью: текущее состояние
// не ограничивает целевое. В строгом режиме повторный перевод в текущее
// состояние отклоняется.
type Service struct {
	spaceRepo SpaceRepository
	strict    bool
	logger    Logger
}

// NewService создает новый экземпляр сервиса парковочных мест
func NewService(spaceRepo SpaceRepository, strict bool, logger Logger) *Service {
	return &Service{
		spaceRepo: spaceRepo,
		strict:    strict,
		logger:    logger,
	}
}

// Create создает новое парковочное место
func (s *Service) Create(ctx context.Context, req *models.CreateSpaceRequest) (*models.SpaceResponse, error) {
	s.logger.Info("CreateSpace: facility=%d, code=%s", req.FacilityID, req.Code)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("CreateSpace: validation failed: %v", err)
		return nil, err
	}

	state := domain.SpaceStateFree
	if req.State != nil {
		state = domain.SpaceState(*req.State)
		if !state.IsValid() {
			return nil, invalidStateError(*req.State)
		}
	}

	space := &domain.Space{
		FacilityID: req.FacilityID,
		Code:       req.Code,
		Level:      req.Level,
		Type:       domain.SpaceType(req.Type),
		State:      state,
	}

	created, err := s.spaceRepo.Create(ctx, space)
	if err != nil {
		if errors.Is(err, spaceRepo.ErrDuplicateCode) {
			s.logger.Warn("CreateSpace: code=%s already exists in facility=%d", req.Code, req.FacilityID)
			return nil, ErrDuplicateCode
		}
		s.logger.Error("CreateSpace: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateSpace: successfully created space id=%d", created.ID)
	return models.FromDomainSpace(created), nil
}

// GetByID получает парковочное место по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.SpaceResponse, error) {
	space, err := s.spaceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			s.logger.Warn("GetSpace: space id=%d not found", id)
			return nil, ErrSpaceNotFound
		}
		s.logger.Error("GetSpace: repository error for space id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSpace(space), nil
}

// List получает список мест с фильтрацией
func (s *Service) List(ctx context.Context, req *models.ListSpacesRequest) (*models.SpaceListResponse, error) {
	filter := domain.SpacesFilter{
		FacilityID: req.FacilityID,
	}

	if req.State != nil {
		state := domain.SpaceState(*req.State)
		if !state.IsValid() {
			return nil, invalidStateError(*req.State)
		}
		filter.State = &state
	}
	if req.Type != nil {
		spaceType := domain.SpaceType(*req.Type)
		if !spaceType.IsValid() {
			return nil, fmt.Errorf("%w: unknown space type %q", ErrInvalidInput, *req.Type)
		}
		filter.Type = &spaceType
	}

	spaces, err := s.spaceRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListSpaces: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSpaceList(spaces), nil
}

// Update обновляет парковочное место
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateSpaceRequest) (*models.SpaceResponse, error) {
	s.logger.Info("UpdateSpace: space id=%d", id)

	if err := validateUpdateRequest(req); err != nil {
		s.logger.Warn("UpdateSpace: validation failed: %v", err)
		return nil, err
	}

	space := &domain.Space{
		FacilityID: req.FacilityID,
		Code:       req.Code,
		Level:      req.Level,
		Type:       domain.SpaceType(req.Type),
		State:      domain.SpaceState(req.State),
	}

	updated, err := s.spaceRepo.Update(ctx, id, space)
	if err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			s.logger.Warn("UpdateSpace: space id=%d not found", id)
			return nil, ErrSpaceNotFound
		}
		if errors.Is(err, spaceRepo.ErrDuplicateCode) {
			s.logger.Warn("UpdateSpace: code=%s already exists in facility=%d", req.Code, req.FacilityID)
			return nil, ErrDuplicateCode
		}
		s.logger.Error("UpdateSpace: repository error for space id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSpace: successfully updated space id=%d", id)
	return models.FromDomainSpace(updated), nil
}

// Delete удаляет парковочное место
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("DeleteSpace: space id=%d", id)

	if err := s.spaceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			s.logger.Warn("DeleteSpace: space id=%d not found", id)
			return ErrSpaceNotFound
		}
		s.logger.Error("DeleteSpace: repository error for space id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteSpace: successfully deleted space id=%d", id)
	return nil
}

// Occupy переводит место в состояние occupied
func (s *Service) Occupy(ctx context.Context, id int64) (*models.SpaceStateResponse, error) {
	return s.setState(ctx, id, domain.SpaceStateOccupied)
}

// Release переводит место в состояние free
func (s *Service) Release(ctx context.Context, id int64) (*models.SpaceStateResponse, error) {
	return s.setState(ctx, id, domain.SpaceStateFree)
}

// Reserve переводит место в состояние reserved
func (s *Service) Reserve(ctx context.Context, id int64) (*models.SpaceStateResponse, error) {
	return s.setState(ctx, id, domain.SpaceStateReserved)
}

// MarkOutOfService переводит место в состояние out_of_service
func (s *Service) MarkOutOfService(ctx context.Context, id int64) (*models.SpaceStateResponse, error) {
	return s.setState(ctx, id, domain.SpaceStateOutOfService)
}

// SetState переводит место в произвольное допустимое состояние
func (s *Service) SetState(ctx context.Context, id int64, state string) (*models.SpaceStateResponse, error) {
	target := domain.SpaceState(state)
	if !target.IsValid() {
		s.logger.Warn("SetState: unknown state %q for space id=%d", state, id)
		return nil, invalidStateError(state)
	}

	return s.setState(ctx, id, target)
}

func (s *Service) setState(ctx context.Context, id int64, target domain.SpaceState) (*models.SpaceStateResponse, error) {
	s.logger.Info("SetState: space id=%d -> %s", id, target)

	if s.strict {
		current, err := s.spaceRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
				s.logger.Warn("SetState: space id=%d not found", id)
				return nil, ErrSpaceNotFound
			}
			s.logger.Error("SetState: repository error for space id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: SetState - repository error: %v", ErrInternal, err)
		}

		if current.State == target {
			s.logger.Warn("SetState: space id=%d is already %s", id, target)
			return nil, ErrRedundantTransition
		}
	}

	if err := s.spaceRepo.UpdateState(ctx, id, target); err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			s.logger.Warn("SetState: space id=%d not found", id)
			return nil, ErrSpaceNotFound
		}
		s.logger.Error("SetState: repository error for space id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: SetState - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetState: space id=%d is now %s", id, target)
	return &models.SpaceStateResponse{ID: id, State: string(target)}, nil
}

// invalidStateError формирует ошибку с перечнем допустимых состояний
func invalidStateError(state string) error {
	allowed := make([]string, 0, len(domain.SpaceStates))
	for _, s := range domain.SpaceStates {
		allowed = append(allowed, string(s))
	}
	return fmt.Errorf("%w: %q, allowed: %s", ErrInvalidState, state, strings.Join(allowed, ", "))
}

func validateCreateRequest(req *models.CreateSpaceRequest) error {
	if req.FacilityID <= 0 {
		return fmt.Errorf("%w: facilityId must be positive", ErrInvalidInput)
	}
	if req.Code == "" {
		return fmt.Errorf("%w: code is required", ErrInvalidInput)
	}
	if len(req.Code) > domain.MaxSpaceCodeLength {
		return fmt.Errorf("%w: code must be at most %d characters", ErrInvalidInput, domain.MaxSpaceCodeLength)
	}
	if !domain.SpaceType(req.Type).IsValid() {
		return fmt.Errorf("%w: unknown space type %q", ErrInvalidInput, req.Type)
	}
	return nil
}

func validateUpdateRequest(req *models.UpdateSpaceRequest) error {
	if req.FacilityID <= 0 {
		return fmt.Errorf("%w: facilityId must be positive", ErrInvalidInput)
	}
	if req.Code == "" {
		return fmt.Errorf("%w: code is required", ErrInvalidInput)
	}
	if len(req.Code) > domain.MaxSpaceCodeLength {
		return fmt.Errorf("%w: code must be at most %d characters", ErrInvalidInput, domain.MaxSpaceCodeLength)
	}
	if !domain.SpaceType(req.Type).IsValid() {
		return fmt.Errorf("%w: unknown space type %q", ErrInvalidInput, req.Type)
	}
	if !domain.SpaceState(req.State).IsValid() {
		return invalidStateError(req.State)
	}
	return nil
}
