package anim

import (
	"fmt"
	"sort"
)

// Easing maps linear progress in [0,1] onto eased progress in [0,1].
type Easing func(t float64) float64

// Linear is the identity curve.
func Linear(t float64) float64 { return clamp01(t) }

// FastOutSlowIn accelerates quickly and settles slowly. It is the standard
// material tween curve.
var FastOutSlowIn = CubicBezier(0.4, 0.0, 0.2, 1.0)

// EaseInOut is symmetric around the midpoint.
var EaseInOut = CubicBezier(0.42, 0.0, 0.58, 1.0)

var easings = map[string]Easing{
	"linear":           Linear,
	"fast-out-slow-in": FastOutSlowIn,
	"ease-in-out":      EaseInOut,
}

// EasingByName resolves a configured easing name.
func EasingByName(name string) (Easing, error) {
	e, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownEasing, name, EasingNames())
	}
	return e, nil
}

// EasingNames returns the registered names in sorted order.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CubicBezier builds a CSS-style timing curve through (0,0), (x1,y1),
// (x2,y2), (1,1). x1 and x2 must lie in [0,1] so x(s) is monotonic.
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	x1, x2 = clamp01(x1), clamp01(x2)
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		s := solveBezier(t, x1, x2)
		return clamp01(bezier(s, y1, y2))
	}
}

func bezier(s, p1, p2 float64) float64 {
	u := 1 - s
	return 3*u*u*s*p1 + 3*u*s*s*p2 + s*s*s
}

func bezierSlope(s, p1, p2 float64) float64 {
	u := 1 - s
	return 3*u*u*p1 + 6*u*s*(p2-p1) + 3*s*s*(1-p2)
}

// solveBezier finds s with x(s) == x. Newton first, bisection if it stalls.
func solveBezier(x, x1, x2 float64) float64 {
	const eps = 1e-7

	s := x
	for i := 0; i < 8; i++ {
		dx := bezier(s, x1, x2) - x
		if dx > -eps && dx < eps {
			return s
		}
		d := bezierSlope(s, x1, x2)
		if d > -1e-6 && d < 1e-6 {
			break
		}
		s -= dx / d
		if s < 0 || s > 1 {
			break
		}
	}

	lo, hi := 0.0, 1.0
	s = x
	for i := 0; i < 64 && lo < hi; i++ {
		v := bezier(s, x1, x2)
		if v > x-eps && v < x+eps {
			return s
		}
		if v < x {
			lo = s
		} else {
			hi = s
		}
		s = (lo + hi) / 2
	}
	return s
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
