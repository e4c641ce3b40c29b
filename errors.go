package carousel

import "errors"

var (
	// ErrElementNotFound is returned when neither Options.Element nor the
	// element looked up by Options.ElementID exists.
	ErrElementNotFound = errors.New("element not found")

	// ErrNoSlides is returned when the target element has no child elements.
	ErrNoSlides = errors.New("empty slide set")

	// ErrInvalidOption is returned for out-of-range or unknown option values.
	ErrInvalidOption = errors.New("invalid option")
)

// ConfigurationError reports why a carousel could not be constructed.
// errors.Is matches it against the sentinel in Err.
type ConfigurationError struct {
	Err    error
	Detail string
}

func (e *ConfigurationError) Error() string {
	if e.Detail == "" {
		return "carousel: " + e.Err.Error()
	}
	return "carousel: " + e.Err.Error() + ": " + e.Detail
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

func configError(err error, detail string) error {
	return &ConfigurationError{Err: err, Detail: detail}
}
