package domain

import "errors"

// Domain errors.
var (
	ErrInvalidFragmentID   = errors.New("invalid fragment identifier")
	ErrUnsupportedFragment = errors.New("unsupported fragment format")
	ErrInvalidLocale       = errors.New("invalid locale code")
	ErrUnknownService      = errors.New("unknown service")
	ErrServiceStatus       = errors.New("service answered with an error status")
)

var codes = map[error]string{
	ErrInvalidFragmentID:   "invalid_fragment_id",
	ErrUnsupportedFragment: "unsupported_fragment",
	ErrInvalidLocale:       "invalid_locale",
	ErrUnknownService:      "unknown_service",
	ErrServiceStatus:       "service_status",
}

// Code returns the stable code of the first domain error wrapped by err,
// or "" when err carries none.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for sentinel, code := range codes {
		if errors.Is(err, sentinel) {
			return code
		}
	}
	return ""
}
