// Package viz renders the countdown timer in the terminal.
//
// The package implements the timer display using the Bubble Tea framework:
//
//   - [Model]: the timer component (mount on construction, [Model.Unmount] on quit)
//   - [Canvas]: Braille-based pixel canvas for the circular indicator
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	Space - Start/Stop the countdown
//	Enter - Start/Stop the countdown
//	R     - Reset to the initial value
//	T     - Cycle color themes
//	?     - Show help overlay
//	Q     - Quit
//
// # Timing
//
// Two chains of tea.Tick commands drive the component. The tick chain
// carries the timer epoch it was armed with and dies as soon as the epoch
// moves on. The frame chain runs only while the animation oscillates.
package viz
