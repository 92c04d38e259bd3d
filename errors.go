package datefmt

import "errors"

// ErrInvalidTimeZone indicates a timezone identifier that failed
// canonicalization or that the engine reported as unknown.
var ErrInvalidTimeZone = errors.New("datefmt: invalid time zone")

// ErrInvalidTimeValue indicates an instant outside the representable range.
var ErrInvalidTimeValue = errors.New("datefmt: invalid time value")

// ErrInvalidOptionValue indicates an option outside its allowed value set
var ErrInvalidOptionValue = errors.New("datefmt: invalid option value")

// ErrIncompatibleReceiver indicates an operation invoked on a formatter that
// was never fully initialized.
var ErrIncompatibleReceiver = errors.New("datefmt: formatter not initialized")

// ErrEngineUnavailable indicates the engine could not compile any pattern for
// the locale, even after retrying with the base locale. This points at
// missing or broken locale data rather than a caller mistake.
var ErrEngineUnavailable = errors.New("datefmt: engine unavailable")
