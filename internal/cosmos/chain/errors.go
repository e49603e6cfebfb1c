package chain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotYetAvailable reports a height above the current chain head.
	ErrNotYetAvailable = errors.New("height not yet available")
	// ErrNotFound reports a missing storage row.
	ErrNotFound = errors.New("not found")

	ErrTransient         = &Error{Kind: KindTransient}
	ErrDataInconsistency = &Error{Kind: KindDataInconsistency}
	ErrStorageConflict   = &Error{Kind: KindStorageConflict}
	ErrFatal             = &Error{Kind: KindFatal}
)

// Kind classifies pipeline errors by how the caller must react.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindTransient
	KindDataInconsistency
	KindStorageConflict
	KindFatal
)

func (k Kind) String() string {
	switch k {
	case KindTransient:
		return "transient"
	case KindDataInconsistency:
		return "data inconsistency"
	case KindStorageConflict:
		return "storage conflict"
	case KindFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Error is a classified failure of one sub-operation at one height.
// Height is zero when the operation is not tied to a height.
type Error struct {
	Kind   Kind
	Op     string
	Height int64
	Err    error
}

func (e *Error) Error() string {
	msg := e.Op
	if e.Height > 0 {
		msg = fmt.Sprintf("%s at height %d", msg, e.Height)
	}
	if msg == "" {
		msg = e.Kind.String()
	} else {
		msg = fmt.Sprintf("%s: %s", msg, e.Kind)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the kind sentinels (ErrTransient, ErrStorageConflict, ...).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Op == "" && t.Err == nil && t.Height == 0 && t.Kind == e.Kind
}

// Transient wraps err as a retryable failure.
func Transient(op string, height int64, err error) error {
	return &Error{Kind: KindTransient, Op: op, Height: height, Err: err}
}

// DataInconsistency wraps err as a failure that must stop the pipeline.
func DataInconsistency(op string, height int64, err error) error {
	return &Error{Kind: KindDataInconsistency, Op: op, Height: height, Err: err}
}

// StorageConflict wraps a constraint violation reported by storage.
func StorageConflict(op string, height int64, err error) error {
	return &Error{Kind: KindStorageConflict, Op: op, Height: height, Err: err}
}

// Fatal wraps err as a non-retryable failure.
func Fatal(op string, height int64, err error) error {
	return &Error{Kind: KindFatal, Op: op, Height: height, Err: err}
}

// KindOf returns the kind of the outermost classified error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsNotYetAvailable reports whether err means the height is not produced yet.
func IsNotYetAvailable(err error) bool {
	return errors.Is(err, ErrNotYetAvailable)
}

// IsRetryable reports whether err may succeed when the same call is repeated.
func IsRetryable(err error) bool {
	return KindOf(err) == KindTransient
}
