package validation

// TaskValidator provides validation for task form input.
//
// The rule for text fields is exact string non-emptiness: a nil or ""
// value fails, while a whitespace-only value passes. Input is never
// trimmed. Dates come from pickers and are always well-formed, so they
// are not validated here.
type TaskValidator struct{}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{}
}

// IsPresent reports whether an optional text field was supplied and non-empty.
func (tv *TaskValidator) IsPresent(s *string) bool {
	return s != nil && *s != ""
}

// ValidateTaskInput validates the title and description of a task form.
// Both create and update share this rule.
func (tv *TaskValidator) ValidateTaskInput(title, description *string) error {
	validationError := NewValidationError()

	if !tv.IsPresent(title) {
		validationError.AddRequiredError("title")
	}
	if !tv.IsPresent(description) {
		validationError.AddRequiredError("description")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}
