package entity

import "time"

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	// Sessions issued at or before this instant are rejected
	SessionsRevokedAt *time.Time
	CreatedAt         time.Time
}

type SignUpRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=6,max=128"`
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

type SignInResult struct {
	User      *User
	Token     string
	ExpiresAt time.Time
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: FormatTimestamp(u.CreatedAt),
	}
}
