// Package ui runs the browser on Bubble Tea and prints the reports of the
// non-interactive commands.
//
// # Dispatch
//
// Model is the single dispatch loop. It asks the current events.Mux for the
// next event, hands it to the nav.Machine and acts on the effect:
//
//   - EffectNone: redraw and wait for the next event
//   - EffectQuit: stop the Mux and end the program
//   - EffectRefresh: stop the Mux, run the requested launch through
//     tea.Exec, then build a new Mux, re-read the geometry and clear the
//     screen
//
// Bubble Tea reads from an empty input that ends at once, so keys only come
// from the Mux and nothing reads the terminal while the player runs.
// Events still in flight from a replaced Mux are dropped.
//
// A launch failure is fatal: the model records it, quits, and Run returns
// it after the terminal has been restored.
//
// # Reports
//
// Printer and Result render the boxed summaries used by "simon tabs" and
// by fatal errors printed outside the browser.
package ui
