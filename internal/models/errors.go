package models

var (
	ErrPersonNameRequired = &ValidationError{Field: "name", Message: "Name is required"}
	ErrZoneRequired       = &ValidationError{Field: "zone", Message: "Time zone is required"}
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
