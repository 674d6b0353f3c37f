package common

import "errors"

// Sentinel errors shared across services. Repositories translate store
// errors into these at the boundary so handlers never see gorm internals.
var (
	ErrAlreadyExists   = errors.New("already exists")
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrValidation      = errors.New("validation failed")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrUpload          = errors.New("upload failed")
)
