// Package tui implements the terminal user interface for glimpse.
//
// Built on the Bubble Tea framework, it follows the Elm architecture
// with a single App model: Update() handles input, View() is a pure
// function of model state. The layout has two panes: a sidebar listing
// the discovered LEDs (bubbles/list with a compact delegate) and a
// display-only detail pane showing the selected LED and the accumulated
// status log.
//
// The LED scan runs exactly once, in NewApp, before the event loop
// starts. A failed scan is converted into a log line and the UI stays
// interactive with an empty list rather than aborting.
//
// # Key Bindings
//
//   - ↑/↓ move the selection, saturating at the list bounds
//   - esc, q, or ctrl+c quit
//   - everything else is ignored, including mouse events
//
// After the program exits, the caller retrieves the status log with
// Logs() and prints it to stdout once the terminal has been restored.
package tui
