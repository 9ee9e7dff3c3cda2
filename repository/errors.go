package repository

import "errors"

// Sentinel errors the controllers translate into the HTTP error taxonomy.
var (
	ErrDuplicateEmail       = errors.New("organization with this email already exists")
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrLocationNotFound     = errors.New("location not found")
	ErrInsertFailed         = errors.New("store write did not take effect")
)
