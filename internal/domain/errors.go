package domain

import "errors"

// ErrorKind categorizes failures surfaced to the operator.
type ErrorKind int

const (
	ErrKindUnknown ErrorKind = iota
	ErrKindConfigMissing
	ErrKindTransport
	ErrKindTimeout
	ErrKindEmptyResult
	ErrKindExecutionFailure
)

func (k ErrorKind) String() string {
	switch k {
	case ErrKindConfigMissing:
		return "config_missing"
	case ErrKindTransport:
		return "transport"
	case ErrKindTimeout:
		return "timeout"
	case ErrKindEmptyResult:
		return "empty_result"
	case ErrKindExecutionFailure:
		return "execution_failure"
	default:
		return "unknown"
	}
}

// Error is a categorized failure. Two Errors match under errors.Is when their
// kinds are equal, so the sentinels below work as kind checks.
type Error struct {
	Kind     ErrorKind
	Message  string
	Cause    error
	ExitCode int
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinel errors for errors.Is checks.
var (
	ErrConfigMissing    = &Error{Kind: ErrKindConfigMissing, Message: "no model configured; run `smartcli --model <name>` to set one"}
	ErrTransport        = &Error{Kind: ErrKindTransport, Message: "inference request failed"}
	ErrTimeout          = &Error{Kind: ErrKindTimeout, Message: "inference request timed out"}
	ErrEmptyResult      = &Error{Kind: ErrKindEmptyResult, Message: "model returned no command"}
	ErrExecutionFailure = &Error{Kind: ErrKindExecutionFailure, Message: "command failed"}
)

// NewError builds a categorized error.
func NewError(kind ErrorKind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ErrKindUnknown
}

// ExitCodeOf returns the shell exit code carried by an execution failure,
// or 0 when err carries none.
func ExitCodeOf(err error) int {
	var e *Error
	if errors.As(err, &e) && e.Kind == ErrKindExecutionFailure {
		return e.ExitCode
	}
	return 0
}
