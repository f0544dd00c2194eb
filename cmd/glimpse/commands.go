package main

import (
	"encoding/json"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/glimpse-tui/glimpse/internal/leds"
	"github.com/glimpse-tui/glimpse/internal/logging"
	"github.com/glimpse-tui/glimpse/internal/tui"
)

var outputFormat string

func init() {
	listCmd.Flags().StringVar(&outputFormat, "format", "text", "Output format (text, json, yaml)")

	rootCmd.AddCommand(listCmd)
}

// runBrowse launches the interactive browser. When stdout is not a
// terminal (piped output, CI), it degrades to the plain listing so the
// tool stays usable in scripts.
func runBrowse(cmd *cobra.Command, args []string) error {
	if err := logging.InitializeFromEnv(); err != nil {
		return err
	}
	defer logging.Sync()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return runList(cmd, args)
	}

	app := tui.NewApp()

	p := tea.NewProgram(app, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("browser error: %w", err)
	}

	// The terminal is restored at this point; dump the run's status log
	// to stdout per the exit contract.
	finished, ok := final.(tui.App)
	if !ok {
		return nil
	}

	fmt.Println("Printing Glimpse log output...")
	for _, line := range finished.Logs() {
		fmt.Println(line)
	}

	return nil
}

// listCmd performs a one-shot scan and prints the result
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List LED devices and exit",
	Long: `Scan /sys/class/leds once and print every discovered LED with its
on/off state, without entering the interactive browser.`,
	Example: `  # Plain text listing
  glimpse list

  # JSON output for scripting
  glimpse list --format json

  # YAML output
  glimpse list --format yaml`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	if err := logging.InitializeFromEnv(); err != nil {
		return err
	}
	defer logging.Sync()

	found, err := leds.Scan()
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	switch outputFormat {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(found)

	case "yaml":
		data, err := yaml.Marshal(found)
		if err != nil {
			return fmt.Errorf("failed to marshal LEDs: %w", err)
		}
		_, err = os.Stdout.Write(data)
		return err

	case "text", "":
		if len(found) == 0 {
			fmt.Println("No LEDs found.")
			return nil
		}

		fmt.Printf("Found %d LED(s):\n\n", len(found))
		for i, led := range found {
			fmt.Printf("%d. %s\n", i+1, led.Name)
			fmt.Printf("   Sysfs:  %s\n", led.FileName)
			fmt.Printf("   State:  %s\n", led.State())
			fmt.Println()
		}
		return nil

	default:
		return fmt.Errorf("unknown output format %q (expected text, json, or yaml)", outputFormat)
	}
}
