package dto

import "time"

// ===================== Request DTOs =====================

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ===================== Response DTOs =====================

// SessionData is handed back to the controller so it can set the session
// cookie; the token itself never appears in a response body.
type SessionData struct {
	Token     string
	ExpiresAt time.Time
}

type StatusResponse struct {
	UserID  string `json:"userId"`
	Message string `json:"message"`
}
