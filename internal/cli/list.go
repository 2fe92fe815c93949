package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/movetools/virtual-m8/internal/midi"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available MIDI ports",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	manager := midi.NewManager()
	defer manager.Close()

	fmt.Println("Available MIDI Input Ports:")
	for i, name := range manager.ListInPorts() {
		fmt.Printf("  %d: %s\n", i, name)
	}

	fmt.Println("\nAvailable MIDI Output Ports:")
	for i, name := range manager.ListOutPorts() {
		fmt.Printf("  %d: %s\n", i, name)
	}

	return nil
}
