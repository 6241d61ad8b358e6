package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	roleRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/role"
	userRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/user"
	"github.com/m04kA/SMC-ParkingService/internal/service/users/models"
)

// Service сервис для работы с пользователями и ролями
type Service struct {
	userRepo UserRepository
	roleRepo RoleRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(userRepo UserRepository, roleRepo RoleRepository, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		roleRepo: roleRepo,
		logger:   logger,
	}
}

// CreateUser создает нового пользователя
func (s *Service) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.UserResponse, error) {
	s.logger.Info("CreateUser: email=%s", req.Email)

	if err := validateUser(req.FirstName, req.Email, req.RoleID); err != nil {
		s.logger.Warn("CreateUser: validation failed: %v", err)
		return nil, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	user := &domain.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: req.PasswordHash,
		RoleID:       req.RoleID,
		Active:       active,
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, userRepo.ErrDuplicateEmail) {
			s.logger.Warn("CreateUser: email=%s already registered", req.Email)
			return nil, ErrDuplicateEmail
		}
		s.logger.Error("CreateUser: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateUser - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateUser: successfully created user id=%d", created.ID)
	return models.FromDomainUser(created), nil
}

// GetUser получает пользователя по ID
func (s *Service) GetUser(ctx context.Context, id int64) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("GetUser: user id=%d not found", id)
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetUser: repository error for user id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetUser - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainUser(user), nil
}

// ListUsers получает список всех пользователей
func (s *Service) ListUsers(ctx context.Context) (*models.UserListResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListUsers: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListUsers - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainUserList(users), nil
}

// UpdateUser обновляет пользователя
func (s *Service) UpdateUser(ctx context.Context, id int64, req *models.UpdateUserRequest) (*models.UserResponse, error) {
	s.logger.Info("UpdateUser: user id=%d", id)

	if err := validateUser(req.FirstName, req.Email, req.RoleID); err != nil {
		s.logger.Warn("UpdateUser: validation failed: %v", err)
		return nil, err
	}

	user := &domain.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: req.PasswordHash,
		RoleID:       req.RoleID,
		Active:       req.Active,
	}

	updated, err := s.userRepo.Update(ctx, id, user)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("UpdateUser: user id=%d not found", id)
			return nil, ErrUserNotFound
		}
		if errors.Is(err, userRepo.ErrDuplicateEmail) {
			s.logger.Warn("UpdateUser: email=%s already registered", req.Email)
			return nil, ErrDuplicateEmail
		}
		s.logger.Error("UpdateUser: repository error for user id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateUser - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateUser: successfully updated user id=%d", id)
	return models.FromDomainUser(updated), nil
}

// DeleteUser удаляет пользователя
func (s *Service) DeleteUser(ctx context.Context, id int64) error {
	s.logger.Info("DeleteUser: user id=%d", id)

	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("DeleteUser: user id=%d not found", id)
			return ErrUserNotFound
		}
		s.logger.Error("DeleteUser: repository error for user id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteUser - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteUser: successfully deleted user id=%d", id)
	return nil
}

// CreateRole создает новую роль
func (s *Service) CreateRole(ctx context.Context, req *models.CreateRoleRequest) (*models.RoleResponse, error) {
	s.logger.Info("CreateRole: name=%s", req.Name)

	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	role := &domain.Role{
		Name:        req.Name,
		Description: req.Description,
	}

	created, err := s.roleRepo.Create(ctx, role)
	if err != nil {
		if errors.Is(err, roleRepo.ErrDuplicateName) {
			s.logger.Warn("CreateRole: name=%s already exists", req.Name)
			return nil, ErrDuplicateRoleName
		}
		s.logger.Error("CreateRole: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateRole - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateRole: successfully created role id=%d", created.ID)
	return models.FromDomainRole(created), nil
}

// GetRole получает роль по ID
func (s *Service) GetRole(ctx context.Context, id int64) (*models.RoleResponse, error) {
	role, err := s.roleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roleRepo.ErrRoleNotFound) {
			s.logger.Warn("GetRole: role id=%d not found", id)
			return nil, ErrRoleNotFound
		}
		s.logger.Error("GetRole: repository error for role id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetRole - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRole(role), nil
}

// ListRoles получает список всех ролей
func (s *Service) ListRoles(ctx context.Context) (*models.RoleListResponse, error) {
	roles, err := s.roleRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListRoles: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListRoles - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRoleList(roles), nil
}

// UpdateRole обновляет роль
func (s *Service) UpdateRole(ctx context.Context, id int64, req *models.UpdateRoleRequest) (*models.RoleResponse, error) {
	s.logger.Info("UpdateRole: role id=%d", id)

	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	role := &domain.Role{
		Name:        req.Name,
		Description: req.Description,
	}

	updated, err := s.roleRepo.Update(ctx, id, role)
	if err != nil {
		if errors.Is(err, roleRepo.ErrRoleNotFound) {
			s.logger.Warn("UpdateRole: role id=%d not found", id)
			return nil, ErrRoleNotFound
		}
		if errors.Is(err, roleRepo.ErrDuplicateName) {
			s.logger.Warn("UpdateRole: name=%s already exists", req.Name)
			return nil, ErrDuplicateRoleName
		}
		s.logger.Error("UpdateRole: repository error for role id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateRole - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateRole: successfully updated role id=%d", id)
	return models.FromDomainRole(updated), nil
}

// DeleteRole удаляет роль
func (s *Service) DeleteRole(ctx context.Context, id int64) error {
	s.logger.Info("DeleteRole: role id=%d", id)

	if err := s.roleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, roleRepo.ErrRoleNotFound) {
			s.logger.Warn("DeleteRole: role id=%d not found", id)
			return ErrRoleNotFound
		}
		s.logger.Error("DeleteRole: repository error for role id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteRole - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteRole: successfully deleted role id=%d", id)
	return nil
}

func validateUser(firstName, email string, roleID int64) error {
	if firstName == "" {
		return fmt.Errorf("%w: firstName is required", ErrInvalidInput)
	}
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: valid email is required", ErrInvalidInput)
	}
	if roleID <= 0 {
		return fmt.Errorf("%w: roleId must be positive", ErrInvalidInput)
	}
	return nil
}
