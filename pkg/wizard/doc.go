// Package wizard owns the ten-step entry flow: the step table, the router
// that maps field paths and server error text to a step, and a small state
// machine that replaces ad hoc step arithmetic. The section tags printed on
// the input sheets (様式A, 様式B1, ...) live here and nowhere else, since the
// external service quotes them in its error messages.
package wizard
