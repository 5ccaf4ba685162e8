package errs

import "errors"

// Category markers shared by domain and usecase layers
var (
	ErrDomainValidation = errors.New("domain validation error")
	ErrNotFound         = errors.New("not found")
)
