package models

import "time"

// Organization represents a registered tenant. One record per email; the
// uniqueness is enforced by the repository's existence check, not by the
// store itself.
type Organization struct {
	ID               string    `json:"id" dynamodbav:"id"`
	OrganizationName string    `json:"organizationName" dynamodbav:"organization_name"`
	Email            string    `json:"email" dynamodbav:"email"`
	PasswordHash     string    `json:"-" dynamodbav:"password_hash"`
	Location         string    `json:"location,omitempty" dynamodbav:"location"`
	CreatedAt        time.Time `json:"created_at" dynamodbav:"created_at"`
}
