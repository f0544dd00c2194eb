package leds

import "fmt"

// Kind classifies scan failures into a closed set of causes.
type Kind string

const (
	// KindNotFound means the per-LED directory vanished between
	// enumeration and read, or never existed.
	KindNotFound Kind = "NOT_FOUND"
	// KindInvalidBrightness means the brightness attribute content is
	// non-numeric or outside the 0-255 range.
	KindInvalidBrightness Kind = "INVALID_BRIGHTNESS"
	// KindInvalidFileName means an LED directory name is not valid UTF-8.
	KindInvalidFileName Kind = "INVALID_FILE_NAME"
	// KindIOError covers any other filesystem access failure.
	KindIOError Kind = "IO_ERROR"
)

// Error represents a scan failure for a specific LED, or for the root
// enumeration itself when LED is empty.
type Error struct {
	Kind  Kind
	LED   string
	Cause error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNotFound:
		return "LED does not exist"
	case KindInvalidBrightness:
		return "Invalid brightness value"
	case KindInvalidFileName:
		return "Invalid encoding in file name"
	default:
		return fmt.Sprintf("I/O error: %v", e.Cause)
	}
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func newError(kind Kind, led string, cause error) *Error {
	return &Error{
		Kind:  kind,
		LED:   led,
		Cause: cause,
	}
}
