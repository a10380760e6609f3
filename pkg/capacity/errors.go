package capacity

import (
	"errors"
	"fmt"
	"strconv"
)

// Reason identifies why a capacity query failed.
type Reason int

const (
	// ReasonWrongArity is returned when the entry point received an unexpected argument count.
	ReasonWrongArity Reason = iota + 1
	// ReasonInvalidPath is returned when the path is empty or not valid UTF-8 text.
	ReasonInvalidPath
	// ReasonAllocFailed is returned when a temporary buffer could not be allocated.
	ReasonAllocFailed
	// ReasonPathConversionFailed is returned when the path cannot be encoded for the platform.
	ReasonPathConversionFailed
	// ReasonNotDirectory is returned when the path is missing or is not a directory.
	ReasonNotDirectory
	// ReasonStatvfsFailed is returned when statvfs failed and no fallback succeeded.
	ReasonStatvfsFailed
	// ReasonStatfsFailed is returned when the statfs fallback failed.
	ReasonStatfsFailed
	// ReasonWinAPIFailed is returned when the Windows volume query failed.
	ReasonWinAPIFailed
)

var reasonNames = map[Reason]string{
	ReasonWrongArity:           "wrong_arity",
	ReasonInvalidPath:          "invalid_path",
	ReasonAllocFailed:          "alloc_failed",
	ReasonPathConversionFailed: "path_conversion_failed",
	ReasonNotDirectory:         "not_directory",
	ReasonStatvfsFailed:        "statvfs_failed",
	ReasonStatfsFailed:         "statfs_failed",
	ReasonWinAPIFailed:         "winapi_failed",
}

// Reasons lists every reason in declaration order.
func Reasons() []Reason {
	return []Reason{
		ReasonWrongArity,
		ReasonInvalidPath,
		ReasonAllocFailed,
		ReasonPathConversionFailed,
		ReasonNotDirectory,
		ReasonStatvfsFailed,
		ReasonStatfsFailed,
		ReasonWinAPIFailed,
	}
}

func (r Reason) String() string {
	if name, ok := reasonNames[r]; ok {
		return name
	}
	return "reason(" + strconv.Itoa(int(r)) + ")"
}

// MarshalText encodes the reason as its symbol.
func (r Reason) MarshalText() ([]byte, error) {
	if _, ok := reasonNames[r]; !ok {
		return nil, fmt.Errorf("unknown reason %d", int(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText decodes a reason symbol.
func (r *Reason) UnmarshalText(text []byte) error {
	parsed, err := ParseReason(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// ParseReason returns the reason named by symbol.
func ParseReason(symbol string) (Reason, error) {
	for reason, name := range reasonNames {
		if name == symbol {
			return reason, nil
		}
	}
	return 0, fmt.Errorf("unknown reason %q", symbol)
}

// Detail carries the native error code and message reported by the OS.
type Detail struct {
	NativeCode int    `json:"native_code"`
	Message    string `json:"message"`
}

func (d *Detail) Error() string {
	return d.Message + " (" + strconv.Itoa(d.NativeCode) + ")"
}

// QueryError is returned when a capacity query fails.
type QueryError struct {
	Reason Reason  `json:"reason"`
	Detail *Detail `json:"detail,omitempty"`
}

func (e *QueryError) Error() string {
	if e.Detail == nil {
		return e.Reason.String()
	}
	return e.Reason.String() + ": " + e.Detail.Error()
}

// Unwrap exposes the native detail to errors.As.
func (e *QueryError) Unwrap() error {
	if e.Detail == nil {
		return nil
	}
	return e.Detail
}

// Is matches any QueryError with the same reason, so the Err* values can be
// used with errors.Is regardless of detail.
func (e *QueryError) Is(target error) bool {
	t, ok := target.(*QueryError)
	return ok && t.Reason == e.Reason
}

var (
	ErrWrongArity           = &QueryError{Reason: ReasonWrongArity}
	ErrInvalidPath          = &QueryError{Reason: ReasonInvalidPath}
	ErrAllocFailed          = &QueryError{Reason: ReasonAllocFailed}
	ErrPathConversionFailed = &QueryError{Reason: ReasonPathConversionFailed}
	ErrNotDirectory         = &QueryError{Reason: ReasonNotDirectory}
	ErrStatvfsFailed        = &QueryError{Reason: ReasonStatvfsFailed}
	ErrStatfsFailed         = &QueryError{Reason: ReasonStatfsFailed}
	ErrWinAPIFailed         = &QueryError{Reason: ReasonWinAPIFailed}
)

// NewError returns a QueryError for reason. The detail is taken from err when
// it is or wraps a *Detail.
func NewError(reason Reason, err error) *QueryError {
	qe := &QueryError{Reason: reason}
	if detail := detailOf(err); detail != nil {
		d := *detail
		qe.Detail = &d
	}
	return qe
}

func detailOf(err error) *Detail {
	var detail *Detail
	if errors.As(err, &detail) {
		return detail
	}
	return nil
}
