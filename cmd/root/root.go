// Package root contains the root command for the application
package root

import (
	"os"

	"looper/finance-dashboard/internal/config"
	"looper/finance-dashboard/internal/export"
	"looper/finance-dashboard/internal/logging"
	"looper/finance-dashboard/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "finance-dashboard",
		Short: "A CLI tool to analyze, export and serve personal transaction data.",
		Long: `finance-dashboard categorizes transactions by keyword, filters and
aggregates them into category and calendar totals, and exports or serves
the results as CSV and JSON.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to finance-dashboard!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			config.LoadEnv()
			Log = config.ConfigureLogging()

			// Set the configured logger for the shared packages
			store.SetLogger(Log)
			export.SetLogger(Log)

			// Ensure CSV delimiter is updated after env variables are loaded
			if delim := os.Getenv("CSV_DELIMITER"); delim != "" {
				Log.WithField("delimiter", delim).Debug("Setting CSV delimiter from environment")
				export.SetDelimiter([]rune(delim)[0])
			}
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Specific serve command flags
	Addr      string
	JWTSecret string

	// Specific categorize command flags
	Description string

	// Specific export command flags
	Month      string
	Status     string
	Category   string
	UserID     string
	MinAmount  string
	MaxAmount  string
	StartDate  string
	EndDate    string
	SearchText string
	Display    bool
)

// Logger returns the shared logger wrapped in the logging adapter.
func Logger() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}

// Init initializes the root command and all flags
func Init() {
	// Add persistent flags to root command for common options
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input snapshot file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
}
