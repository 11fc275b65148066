// Package export writes transaction snapshots out as CSV
package export

import (
	"os"

	"looper/finance-dashboard/cmd/root"
	"looper/finance-dashboard/internal/config"
	"looper/finance-dashboard/internal/dashboard"
	"looper/finance-dashboard/internal/export"
	"looper/finance-dashboard/internal/filter"
	"looper/finance-dashboard/internal/models"
	"looper/finance-dashboard/internal/snapshot"

	"github.com/spf13/cobra"
)

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export a transaction snapshot to CSV",
	Long: `Export writes a snapshot as CSV. The default form carries date, amount
and category for every transaction. With --display the output mirrors the
on-screen table and honors the filter flags; unparseable filter values are
ignored rather than rejected.`,
	Run: exportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Month, "month", "m", "", "Keep transactions from this month (1-12)")
	Cmd.Flags().StringVar(&root.Status, "status", "", "Keep transactions with this status")
	Cmd.Flags().StringVarP(&root.Category, "category", "c", "", "Keep transactions in this category")
	Cmd.Flags().StringVarP(&root.UserID, "user", "u", "", "Keep transactions for this user id")
	Cmd.Flags().StringVar(&root.MinAmount, "min-amount", "", "Keep transactions at or above this amount")
	Cmd.Flags().StringVar(&root.MaxAmount, "max-amount", "", "Keep transactions at or below this amount")
	Cmd.Flags().StringVar(&root.StartDate, "start-date", "", "Keep transactions on or after this date (YYYY-MM-DD)")
	Cmd.Flags().StringVar(&root.EndDate, "end-date", "", "Keep transactions on or before this date (YYYY-MM-DD)")
	Cmd.Flags().StringVarP(&root.SearchText, "search", "q", "", "Keep transactions matching this free text")
	Cmd.Flags().BoolVar(&root.Display, "display", false, "Use the on-screen table form instead of the minimal form")
}

func exportFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Export command called")

	config.LoadEnv()

	input := root.SharedFlags.Input
	if input == "" {
		input = "transactions.json"
	}

	transactions, err := snapshot.Load(input)
	if err != nil {
		root.Log.Errorf("Error loading snapshot: %v", err)
		return
	}

	if root.Display {
		criteria := criteriaFromFlags()
		filtered := filter.Apply(transactions, criteria)

		pipeline := dashboard.New(root.Logger())
		content := pipeline.ExportDisplay(filtered)

		if err := writeOutput(cmd, content+"\n"); err != nil {
			root.Log.Errorf("Error writing CSV: %v", err)
			return
		}
		root.Log.Infof("Exported %d transactions", len(filtered))
		return
	}

	// The minimal form always covers the whole snapshot.
	if root.SharedFlags.Output == "" {
		if err := export.Minimal(cmd.OutOrStdout(), transactions); err != nil {
			root.Log.Errorf("Error writing CSV: %v", err)
		}
		return
	}
	if err := export.MinimalToFile(transactions, root.SharedFlags.Output); err != nil {
		root.Log.Errorf("Error writing CSV: %v", err)
		return
	}
	root.Log.Infof("Exported %d transactions to %s", len(transactions), root.SharedFlags.Output)
}

// criteriaFromFlags assembles filter criteria from the command flags.
// Values that fail to parse are dropped silently.
func criteriaFromFlags() models.FilterCriteria {
	return models.FilterCriteria{
		Month:     models.MonthOption(root.Month),
		Status:    models.Status(root.Status),
		Category:  root.Category,
		UserID:    root.UserID,
		MinAmount: models.AmountOption(root.MinAmount),
		MaxAmount: models.AmountOption(root.MaxAmount),
		StartDate: models.DateOption(root.StartDate),
		EndDate:   models.DateOption(root.EndDate),
		Search:    root.SearchText,
	}
}

func writeOutput(cmd *cobra.Command, content string) error {
	if root.SharedFlags.Output == "" {
		_, err := cmd.OutOrStdout().Write([]byte(content))
		return err
	}
	return os.WriteFile(root.SharedFlags.Output, []byte(content), models.PermissionDataFile)
}
