// Package countdown holds the state of a single countdown timer.
//
// The [Timer] is a plain value mutated by the owning UI loop:
//
//   - [Timer.Toggle] starts, stops or rearms the count
//   - [Timer.Tick] decrements once per tick interval
//   - [Timer.Reset] returns to the initial value
//
// Every start or stop bumps the timer's epoch. A tick carries the epoch it
// was armed with and is ignored once the epoch has moved on, so at most one
// tick chain is ever live.
package countdown
