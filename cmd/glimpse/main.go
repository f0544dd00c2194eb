// Glimpse is a terminal browser for Linux LED devices.
//
// It enumerates the LEDs exposed under /sys/class/leds, derives each
// one's on/off state from its brightness attribute, and presents the
// list in a keyboard-driven terminal UI. The tool is strictly
// read-only: it never writes to the LED subsystem.
//
// Usage:
//
//	glimpse [command]
//
// Running without arguments launches the interactive browser.
// See 'glimpse --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/glimpse-tui/glimpse/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "glimpse",
	Short: "Browse Linux LED devices in the terminal",
	Long: `A terminal browser for the Linux sysfs LED class.

Glimpse scans /sys/class/leds once at startup and shows every LED with
its on/off state in a two-pane terminal UI. Navigate with the arrow
keys; quit with esc, q, or ctrl+c.

If no command is specified, the interactive browser launches (falling
back to a plain listing when stdout is not a terminal).`,
	Version: version.Version,
	RunE:    runBrowse,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("glimpse %s (commit: %s)\n", version.Version, version.Commit)
	},
}
