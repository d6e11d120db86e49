package anim

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorTween interpolates between two colors in RGB space.
type ColorTween struct {
	From, To colorful.Color
}

// NewColorTween parses two "#rrggbb" colors.
func NewColorTween(from, to string) (ColorTween, error) {
	f, err := colorful.Hex(from)
	if err != nil {
		return ColorTween{}, fmt.Errorf("%w: %q", ErrInvalidColor, from)
	}
	t, err := colorful.Hex(to)
	if err != nil {
		return ColorTween{}, fmt.Errorf("%w: %q", ErrInvalidColor, to)
	}
	return ColorTween{From: f, To: t}, nil
}

func (c ColorTween) At(p float64) colorful.Color {
	return c.From.BlendRgb(c.To, clamp01(p)).Clamped()
}

// Hex returns the interpolated color as "#rrggbb".
func (c ColorTween) Hex(p float64) string {
	return c.At(p).Hex()
}
