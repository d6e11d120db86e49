// Package anim provides the pulsing animation behind the countdown
// indicator: easing curves, a forward+reverse [Oscillator], RGB
// [ColorTween]s and a two-state [Driver] (idle or oscillating).
package anim
