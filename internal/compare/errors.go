package compare

import "errors"

// ErrValidation marks errors caused by unusable input.
var ErrValidation = errors.New("validation error")

// emptyInputMessage is shown to users when a text is missing.
const emptyInputMessage = "Please enter text in both fields."

// ValidationError reports an empty required input. It matches ErrValidation
// under errors.Is.
type ValidationError struct {
	// Fields lists the inputs that were empty ("text1", "text2").
	Fields []string
}

func (e *ValidationError) Error() string {
	return emptyInputMessage
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ErrorKind classifies the error; the CLI exits with a distinct status for
// "validation".
func (e *ValidationError) ErrorKind() string {
	return "validation"
}
