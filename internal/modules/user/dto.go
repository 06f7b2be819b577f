package user

import "filmorate/internal/domain"

type CreateUserRequest struct {
	Email    string      `json:"email" validate:"required,email"`
	Login    string      `json:"login" validate:"required,nospace"`
	Name     string      `json:"name"`
	Birthday domain.Date `json:"birthday" validate:"required,pastdate"`
}

type UpdateUserRequest struct {
	ID       int64       `json:"id" validate:"required"`
	Email    string      `json:"email" validate:"required,email"`
	Login    string      `json:"login" validate:"required,nospace"`
	Name     string      `json:"name"`
	Birthday domain.Date `json:"birthday" validate:"required,pastdate"`
}
