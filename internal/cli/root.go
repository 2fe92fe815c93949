// Package cli is the cobra command surface for the virtual M8.
package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/movetools/virtual-m8/internal/config"
	"github.com/movetools/virtual-m8/internal/device"
	"github.com/movetools/virtual-m8/internal/engine"
	"github.com/movetools/virtual-m8/internal/logging"
	"github.com/movetools/virtual-m8/internal/midi"
)

var (
	version string

	flagInput   string
	flagOutput  string
	flagConfig  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "virtual-m8",
	Short: "Virtual M8 - simulate a Dirtywave M8 over Launchpad Pro MIDI",
	Long: `Virtual M8 acts as an M8 device for protocol testing: it receives
Launchpad Pro button and pad messages from Move's M8 emulator and responds
with LED color SysEx the way real hardware would, so the emulator can be
exercised without a physical M8.

Without --input/--output the Move ports are auto-detected by name.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runEmulator,
}

// Execute runs the root command. Called once from main.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo sets the version string shown by --version.
func SetVersionInfo(v string) {
	version = v
	rootCmd.Version = v
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Verbose output (show raw MIDI payloads)")
	rootCmd.Flags().StringVarP(&flagInput, "input", "i", "", "Input MIDI port name (from Move)")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output MIDI port name (to Move)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to config file")
}

func runEmulator(cmd *cobra.Command, args []string) error {
	logger, err := logging.New(flagVerbose)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load(logger, flagConfig)
	if err != nil {
		return err
	}
	if flagVerbose {
		cfg.Verbose = true
	}

	manager := midi.NewManager()
	defer manager.Close()

	inName := flagInput
	outName := flagOutput
	if inName == "" {
		inName = cfg.InputPort
	}
	if outName == "" {
		outName = cfg.OutputPort
	}

	if inName == "" || outName == "" {
		autoIn, autoOut := manager.DetectPorts(cfg.DetectKeywords)
		if inName == "" {
			inName = autoIn
		}
		if outName == "" {
			outName = autoOut
		}
	}

	if inName == "" || outName == "" {
		return fmt.Errorf("could not find Move MIDI ports; use 'virtual-m8 list' and pass --input/--output")
	}

	logger.Infow("opening ports", "input", inName, "output", outName)

	in, err := manager.OpenIn(inName)
	if err != nil {
		return err
	}
	send, err := manager.Sender(outName)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	m8 := device.New(logger)
	return engine.New(logger, m8, send, cfg.Verbose).Run(ctx, in)
}
