package dto

import "time"

type TokenRequestDTO struct {
	ClientID string `json:"client_id" validate:"required"`
	Secret   string `json:"secret" validate:"required"`
}

type TokenResponseDTO struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
