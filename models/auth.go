package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// JWTClaims represents the JWT claims issued at login
type JWTClaims struct {
	OrganizationID   string `json:"organization_id"`
	Email            string `json:"email"`
	OrganizationName string `json:"organization_name"`

	jwt.RegisteredClaims
}

// RegisterRequest is the body accepted by POST /api/register
type RegisterRequest struct {
	OrganizationName string `json:"organizationName" binding:"required" example:"Acme"`
	Email            string `json:"email" binding:"required,email" example:"a@acme.io"`
	Password         string `json:"password" binding:"required" example:"Secret123"`
	Location         string `json:"location" binding:"required" example:"NY"`
}

// LoginRequest is the body accepted by POST /api/login
type LoginRequest struct {
	OrganizationName string `json:"organizationName" binding:"required" example:"Acme"`
	Email            string `json:"email" binding:"required,email" example:"a@acme.io"`
	Password         string `json:"password" binding:"required" example:"Secret123"`
}
