package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Hansaeng20/Ping-Simulator/internal/config"
	"github.com/Hansaeng20/Ping-Simulator/internal/output"
	"github.com/Hansaeng20/Ping-Simulator/internal/sim"
	"github.com/Hansaeng20/Ping-Simulator/internal/tui"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Flags
	sourceIP     string
	probeCount   int
	packetSize   int
	traceEnabled bool
	reproducible bool
	noDelay      bool
	verbose      bool
	jsonOutput   bool
	csvOutput    bool
	tuiMode      bool
	noColor      bool
	outFile      string

	// Config file
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "pingsim [flags] <destination>",
	Short: "Simulated ping and traceroute transcripts",
	Long: `pingsim - deterministic ping/traceroute transcript simulator

pingsim produces realistic-looking ping and traceroute output for an
arbitrary source/destination IPv4 pair without touching the network.
Transcripts are driven by a seeded generator; with --reproducible the
same address pair always yields an identical session, which makes it
handy for demos, tutorials and UI prototyping.

Features:
  • Classic ping output with loss, jitter and latency spikes
  • Optional traceroute phase with per-hop sub-probes
  • Reproducible sessions from a pair-derived seed
  • Interactive TUI mode
  • Multiple output formats: text, JSON, CSV, verbose table
  • Configuration file support (~/.config/pingsim/config.yaml)

Examples:
  pingsim 8.8.8.8                   Four simulated probes
  pingsim -c 10 -t 8.8.8.8          Ten probes after a traceroute
  pingsim -r 10.0.0.2               Reproducible transcript
  pingsim --json 8.8.8.8            JSON output
  pingsim --tui 8.8.8.8             Interactive TUI mode
  pingsim config --init             Create default config file
  pingsim                           Interactive mode (prompts for destination)`,
	Args:              cobra.MaximumNArgs(1),
	PersistentPreRunE: loadConfig,
	RunE:              runSim,
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ~/.config/pingsim/config.yaml)")

	// Simulation parameters
	rootCmd.Flags().StringVarP(&sourceIP, "source", "s", "", "Simulated source IPv4 address")
	rootCmd.Flags().IntVarP(&probeCount, "count", "c", 0, "Number of ping probes (1-20)")
	rootCmd.Flags().IntVarP(&packetSize, "size", "b", 0, "Payload size in bytes (8-1500)")
	rootCmd.Flags().BoolVarP(&traceEnabled, "trace", "t", false, "Run a traceroute before the ping phase")
	rootCmd.Flags().BoolVarP(&reproducible, "reproducible", "r", false, "Derive the seed from the address pair only")
	rootCmd.Flags().BoolVar(&noDelay, "no-delay", false, "Skip simulated inter-probe pauses")

	// Output flags
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed table output")
	rootCmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output in JSON format")
	rootCmd.Flags().BoolVar(&csvOutput, "csv", false, "Output in CSV format")
	rootCmd.Flags().StringVarP(&outFile, "output", "o", "", "Write the formatted result to a file")
	rootCmd.Flags().BoolVar(&tuiMode, "tui", false, "Interactive TUI mode")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads configuration from file and applies defaults
// If no config file exists, it creates one automatically on first run
func loadConfig(cmd *cobra.Command, args []string) error {
	var err error

	if cfgFile != "" {
		// Custom config file specified
		cfg, err = config.LoadFrom(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	} else {
		// Try to load from default locations
		cfg, err = config.Load()
		if err != nil {
			// Config file doesn't exist, create it automatically
			cfg = config.DefaultConfig()

			// Try to save default config (ignore errors - might not have write permission)
			if saveErr := cfg.Save(); saveErr == nil {
				fmt.Fprintf(os.Stderr, "Created default config: %s\n", config.GetConfigPath())
				fmt.Fprintf(os.Stderr, "Edit this file to customize defaults (e.g., set tui: true)\n\n")
			}
		}
	}

	// Apply config defaults if flags not explicitly set
	applyConfigDefaults(cmd)

	return nil
}

// applyConfigDefaults applies config file values for unset flags
func applyConfigDefaults(cmd *cobra.Command) {
	if cfg == nil {
		return
	}

	defaults := cfg.Defaults

	// Output mode from config (if no flag set)
	if !cmd.Flags().Changed("tui") && defaults.TUI {
		tuiMode = true
	}
	if !cmd.Flags().Changed("verbose") && defaults.Verbose {
		verbose = true
	}
	if !cmd.Flags().Changed("json") && defaults.JSON {
		jsonOutput = true
	}
	if !cmd.Flags().Changed("csv") && defaults.CSV {
		csvOutput = true
	}
	if !cmd.Flags().Changed("no-color") && defaults.NoColor {
		noColor = true
	}

	// Simulation parameters from config
	if !cmd.Flags().Changed("source") {
		if defaults.Source != "" {
			sourceIP = defaults.Source
		} else {
			sourceIP = "192.168.1.10"
		}
	}
	if !cmd.Flags().Changed("count") {
		if defaults.Count > 0 {
			probeCount = defaults.Count
		} else {
			probeCount = sim.DefaultCount
		}
	}
	if !cmd.Flags().Changed("size") {
		if defaults.Size > 0 {
			packetSize = defaults.Size
		} else {
			packetSize = sim.DefaultSize
		}
	}
	if !cmd.Flags().Changed("trace") && defaults.Trace {
		traceEnabled = true
	}
	if !cmd.Flags().Changed("reproducible") && defaults.Reproducible {
		reproducible = true
	}
	if !cmd.Flags().Changed("no-delay") && defaults.NoDelay {
		noDelay = true
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pingsim %s\n", version)
		fmt.Printf("  Commit: %s\n", commit)
		fmt.Printf("  Built:  %s\n", date)
		fmt.Printf("  Config: %s\n", config.GetConfigPath())
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Manage pingsim configuration file.

Commands:
  pingsim config --init     Create default config file
  pingsim config --show     Show current configuration
  pingsim config --path     Show config file path`,
	RunE: runConfig,
}

var (
	configInit bool
	configShow bool
	configPath bool
)

func init() {
	configCmd.Flags().BoolVar(&configInit, "init", false, "Create default config file")
	configCmd.Flags().BoolVar(&configShow, "show", false, "Show current configuration")
	configCmd.Flags().BoolVar(&configPath, "path", false, "Show config file path")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if configPath {
		fmt.Println(config.GetConfigPath())
		return nil
	}

	if configInit {
		path := config.GetConfigPath()

		// Check if file already exists
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists: %s", path)
		}

		cfg := config.DefaultConfig()
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to create config: %w", err)
		}

		fmt.Printf("Created config file: %s\n", path)
		fmt.Println("\nEdit this file to customize defaults.")
		fmt.Println("Example: Set 'reproducible: true' under 'defaults:' for stable demos.")
		return nil
	}

	if configShow {
		fmt.Println(config.GenerateExample())
		return nil
	}

	// No flag specified, show help
	return cmd.Help()
}

func runSim(cmd *cobra.Command, args []string) error {
	var destination string

	// If no destination provided, prompt for it interactively
	if len(args) == 0 {
		var err error
		destination, err = promptForDestination()
		if err != nil {
			return err
		}
	} else {
		destination = args[0]
	}

	// Check for aliases
	if cfg != nil && cfg.Aliases != nil {
		if alias, ok := cfg.Aliases[destination]; ok {
			destination = alias
		}
	}

	// Build session configuration
	simConfig := sim.Config{
		Source:       sourceIP,
		Destination:  destination,
		Count:        probeCount,
		Size:         packetSize,
		Trace:        traceEnabled,
		Reproducible: reproducible,
		NoDelay:      noDelay,
	}
	simConfig.Normalize()

	// Buffered formats render once at the end; pacing would just stall them
	if jsonOutput || csvOutput || verbose {
		simConfig.NoDelay = true
	}

	// If TUI mode requested, run TUI
	if tuiMode {
		return tui.Run(simConfig)
	}

	session, err := sim.New(simConfig)
	if err != nil {
		return err
	}

	outputConfig := output.Config{
		Colors: !noColor,
	}

	// For streaming text output, print each line as the session emits it
	var emit func(line string)
	if !jsonOutput && !csvOutput && !verbose {
		textFormatter := output.NewTextFormatter(outputConfig)
		emit = func(line string) {
			fmt.Println(textFormatter.FormatLine(line))
			os.Stdout.Sync() // Flush immediately
		}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := session.Run(ctx, emit)
	if err != nil {
		return fmt.Errorf("session aborted: %w", err)
	}

	// For JSON/CSV/verbose, output the full result at once
	if jsonOutput || csvOutput || verbose {
		var format output.Format
		switch {
		case jsonOutput:
			format = output.FormatJSON
		case csvOutput:
			format = output.FormatCSV
		default:
			format = output.FormatVerbose
		}
		writer := output.NewWriter(format, outputConfig)
		if err := writer.Write(result); err != nil {
			return err
		}
	}

	// Write the result to a file if requested
	if outFile != "" {
		formatter := output.NewFormatter(output.FormatJSON, output.Config{})
		if err := output.WriteToFile(result, outFile, formatter); err != nil {
			return fmt.Errorf("failed to write result file: %w", err)
		}
		fmt.Fprintf(os.Stderr, "\nResult saved to: %s\n", outFile)
	}

	return nil
}

// promptForDestination displays an interactive prompt for the user to enter
// a destination
func promptForDestination() (string, error) {
	cyan := color.New(color.FgCyan, color.Bold)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	fmt.Println()
	cyan.Println("╔═══════════════════════════════════════════════════════════╗")
	cyan.Println("║        pingsim - Simulated Network Diagnostics            ║")
	cyan.Println("╚═══════════════════════════════════════════════════════════╝")
	fmt.Println()

	// Show some examples
	fmt.Println("  Examples:")
	yellow.Println("    • 8.8.8.8         - Simulated ping to Google DNS")
	yellow.Println("    • 1.1.1.1         - Simulated ping to Cloudflare")
	yellow.Println("    • 10.0.0.2        - Any IPv4 address works")
	fmt.Println()

	// Show aliases if any
	if cfg != nil && len(cfg.Aliases) > 0 {
		fmt.Println("  Aliases:")
		for alias, destination := range cfg.Aliases {
			yellow.Printf("    • %s → %s\n", alias, destination)
		}
		fmt.Println()
	}

	reader := bufio.NewReader(os.Stdin)

	for {
		green.Print("  Enter destination (IPv4 address): ")
		os.Stdout.Sync() // Flush stdout

		input, err := reader.ReadString('\n')
		if err != nil {
			// Check for EOF (Ctrl+D or piped input ended)
			if err.Error() == "EOF" {
				return "", fmt.Errorf("no input provided")
			}
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		destination := strings.TrimSpace(input)

		if destination == "" {
			color.Red("  ✗ Destination cannot be empty. Please try again.")
			fmt.Println()
			continue
		}

		// Check for quit commands
		if destination == "q" || destination == "quit" || destination == "exit" {
			fmt.Println("  Goodbye!")
			os.Exit(0)
		}

		fmt.Println()
		return destination, nil
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets version information for the CLI.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}
