package models

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Request модели

// CreateUserRequest запрос на создание пользователя
type CreateUserRequest struct {
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	Email        string  `json:"email"`
	Phone        *string `json:"phone,omitempty"`
	PasswordHash string  `json:"passwordHash"`
	RoleID       int64   `json:"roleId"`
	Active       *bool   `json:"active,omitempty"` // По умолчанию true
}

// UpdateUserRequest запрос на обновление пользователя
type UpdateUserRequest struct {
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	Email        string  `json:"email"`
	Phone        *string `json:"phone,omitempty"`
	PasswordHash string  `json:"passwordHash"`
	RoleID       int64   `json:"roleId"`
	Active       bool    `json:"active"`
}

// CreateRoleRequest запрос на создание роли
type CreateRoleRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// UpdateRoleRequest запрос на обновление роли
type UpdateRoleRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// Response модели

// UserResponse ответ с данными пользователя. Хэш пароля наружу не отдается.
type UserResponse struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	RoleID    int64     `json:"roleId"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserListResponse ответ со списком пользователей
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

// RoleResponse ответ с данными роли
type RoleResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// RoleListResponse ответ со списком ролей
type RoleListResponse struct {
	Roles []RoleResponse `json:"roles"`
}

// Методы конвертации

// FromDomainUser конвертирует domain модель в DTO
func FromDomainUser(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}

	return &UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
		RoleID:    u.RoleID,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// FromDomainUserList конвертирует список domain моделей в DTO
func FromDomainUserList(users []*domain.User) *UserListResponse {
	resp := &UserListResponse{
		Users: make([]UserResponse, 0, len(users)),
	}

	for _, u := range users {
		resp.Users = append(resp.Users, *FromDomainUser(u))
	}

	return resp
}

// FromDomainRole конвертирует domain модель в DTO
func FromDomainRole(r *domain.Role) *RoleResponse {
	if r == nil {
		return nil
	}

	return &RoleResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
	}
}

// FromDomainRoleList конвертирует список domain моделей в DTO
func FromDomainRoleList(roles []*domain.Role) *RoleListResponse {
	resp := &RoleListResponse{
		Roles: make([]RoleResponse, 0, len(roles)),
	}

	for _, r := range roles {
		resp.Roles = append(resp.Roles, *FromDomainRole(r))
	}

	return resp
}
