package dto

import "github.com/insurehub/insurance-be/internal/models"

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	Role  string      `json:"role"`
	User  models.User `json:"user"`
}
