package models

import "time"

// Location is a saved monitoring point owned by exactly one organization.
// Names are free text and may repeat within an organization.
type Location struct {
	ID             string    `json:"id" dynamodbav:"id"`
	OrganizationID string    `json:"-" dynamodbav:"organization_id"`
	LocationName   string    `json:"location_name" dynamodbav:"location_name"`
	Latitude       float64   `json:"latitude" dynamodbav:"latitude"`
	Longitude      float64   `json:"longitude" dynamodbav:"longitude"`
	CreatedAt      time.Time `json:"created_at" dynamodbav:"created_at"`
}

// AddLocationRequest is the body accepted by POST /api/visualizations.
// Latitude/longitude are pointers so that a missing coordinate can be told
// apart from a legitimate 0. Email may be omitted when the caller presents
// a bearer token; the handler rejects requests carrying neither.
type AddLocationRequest struct {
	Email        string   `json:"email" validate:"omitempty,email"`
	LocationName string   `json:"location_name" validate:"required"`
	Latitude     *float64 `json:"latitude" validate:"required"`
	Longitude    *float64 `json:"longitude" validate:"required"`
}
