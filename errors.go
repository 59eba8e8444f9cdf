package widgetlist

import "errors"

var (
	// ErrOutOfRange is returned when an index outside [0, count) is selected.
	ErrOutOfRange = errors.New("index out of range")

	// ErrPreconditionViolation reports malformed layout input, such as a
	// negative item height or an anchor that no longer matches the items. It
	// signals a programming error in the caller, not a runtime condition.
	ErrPreconditionViolation = errors.New("layout precondition violated")
)
