package anim

import "errors"

var (
	ErrUnknownEasing = errors.New("anim: unknown easing")
	ErrInvalidPeriod = errors.New("anim: period must be positive")
	ErrInvalidColor  = errors.New("anim: invalid hex color")
)
