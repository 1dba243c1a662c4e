package errdefs

type ErrorType int

const (
	ErrTypeInstallFailed ErrorType = iota
	ErrTypeTemplateMissing
	ErrTypeNotGitRepo
	ErrTypeInvalidSettings
	ErrTypeGeneric
)

type CustomError struct {
	Type    ErrorType
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}

func NewCustomError(errType ErrorType, message string) error {
	return &CustomError{
		Type:    errType,
		Message: message,
	}
}

// IsType reports whether err is a CustomError with the given type.
func IsType(err error, errType ErrorType) bool {
	ce, ok := err.(*CustomError)
	return ok && ce.Type == errType
}
