package controller

// ValidationError names the field that failed and why.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult collects per-field failures from a module validator.
type ValidationResult struct {
	Errors []ValidationError `json:"errors"`
}

func (r *ValidationResult) Add(field, message string) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Message: message})
}

func (r *ValidationResult) HasError() bool {
	return len(r.Errors) > 0
}

// First returns the first failure message; module controllers surface it as
// the error body.
func (r *ValidationResult) First() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0].Message
}
