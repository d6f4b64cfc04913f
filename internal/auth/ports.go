package auth

import "daycare-api/internal/pagination"

type AuthServicePort interface {
	Register(input RegisterInput) (*User, string, error)
	Login(email, password string) (*User, string, error)
	GetUserByID(id int) (*User, error)
	ListUsers(role *string, p pagination.Params) ([]User, pagination.Result, error)
	UpdateUser(id int, patch UserPatch) (*User, error)
	DeleteUser(id int) error
	SendOTP(email string) (*User, string, error)
	ResetPassword(email, code, newPassword string) (*User, error)
}

var _ AuthServicePort = (*AuthService)(nil)
