package dto

import (
	"hotel/infras/jwt"
	"time"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required,notblank"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	IsAdmin   bool      `json:"isAdmin"`
	Token     string    `json:"token"`
	TokenType string    `json:"tokenType"`
	ExpiresAt time.Time `json:"expiresAt"`
	ExpiresIn int64     `json:"expiresIn"`
}

func (l *LoginResponse) FromSessionToken(token *jwt.SessionToken) {
	l.IsAdmin = true
	l.Token = token.Token
	l.TokenType = token.TokenType
	l.ExpiresAt = token.ExpiresAt
	l.ExpiresIn = token.ExpiresIn
}

type SessionResponse struct {
	IsAdmin bool `json:"isAdmin"`
}
