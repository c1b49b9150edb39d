package catalyst

import "errors"

// ErrInvalidRegistration is returned by Err and Run when a route or a
// middleware could not be registered.
var ErrInvalidRegistration = errors.New("catalyst.invalid_registration")
