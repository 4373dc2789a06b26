package usecase

import "errors"

var (
	ErrPackageNotFound = errors.New("package not found")
	ErrPackageInactive = errors.New("package is not available for booking")
	ErrPackageExists   = errors.New("package already exists")
)

// ValidationError carries field -> message failures for a request.
type ValidationError struct {
	Errors map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}
