package countdown

import "errors"

// ErrInvalidSeconds indicates a countdown length that is not positive.
var ErrInvalidSeconds = errors.New("countdown: seconds must be positive")
