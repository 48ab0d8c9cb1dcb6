// Package viz provides the terminal front end for the virtual lab.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [App]: catalog menu, parameter configuration and live view
//   - [Model]: live view of one experiment with diagram, readouts and chart
//   - [Canvas]: Braille-based pixel canvas implementing lab.Surface
//   - Theme selection with 4 built-in color schemes
//
// # Key Bindings
//
//	Space - Play/Pause the simulation clock
//	R     - Reset the clock (shift+R restores default parameters)
//	Tab   - Select the next parameter
//	↑/↓   - Step the selected parameter
//	S/C   - Cycle chart series and column
//	T     - Cycle color themes
//	?     - Show help overlay
package viz
