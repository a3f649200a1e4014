package web

// Error is used to pass an error during the request through the application
// with web specific context: the http status the client should see.
type Error struct {
	Err    error
	Status int
	Fields []FieldError
}

// FieldError reports a problem with a specific request field.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// NewRequestError wraps a provided error with an HTTP status code. This
// function should be used when the controller or the repository encounters
// an expected, caller-recoverable condition.
func NewRequestError(err error, status int) error {
	return &Error{Err: err, Status: status}
}

func (err *Error) Error() string {
	return err.Err.Error()
}

// Unwrap exposes the cause so errors.Is can see domain sentinels through
// the web layer.
func (err *Error) Unwrap() error {
	return err.Err
}
