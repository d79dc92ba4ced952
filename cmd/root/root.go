// Package root contains the root command for the application
package root

import (
	"os"

	"spendtrack/internal/config"
	"spendtrack/internal/container"
	"spendtrack/internal/ledger"
	"spendtrack/internal/logging"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logging.GetLogger()

	// App holds the wired application dependencies. It is populated by the
	// root command's PersistentPreRun before any subcommand runs.
	App *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "spendtrack",
		Short: "A CLI tool to track expenses and categorize transactions automatically.",
		Long: `spendtrack is a CLI tool for managing a personal expense ledger.
It categorizes transaction descriptions with a rule-based matcher or a small
trainable model, imports and exports CSV ledgers, summarizes spending, and
extracts expense details from receipt text.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to spendtrack!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.WithError(err).Fatal("Failed to load configuration")
			}

			App, err = container.NewContainer(cfg)
			if err != nil {
				Log.WithError(err).Fatal("Failed to initialize application")
			}
			Log = App.GetLogger()

			// Environment overrides config file for the CSV delimiter
			if delim := os.Getenv("CSV_DELIMITER"); delim != "" {
				Log.WithField("delimiter", delim).Debug("Setting CSV delimiter from environment")
				ledger.SetDelimiter([]rune(delim)[0])
			}
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Specific categorize command flags
	Description string
	UseModel    bool
	Correction  string

	// Specific bulk command flags
	InputDir  string
	OutputDir string

	// Specific export command flags
	Category string
	Month    string

	// Specific summary command flags
	Format string

	// Specific scan command flags
	Text      string
	ImagePath string

	// Specific assist command flags
	Query string
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input CSV file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
}
