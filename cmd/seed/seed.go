// Package seed populates a transaction snapshot from raw seed data
package seed

import (
	"looper/finance-dashboard/cmd/root"
	"looper/finance-dashboard/internal/categorizer"
	"looper/finance-dashboard/internal/config"
	"looper/finance-dashboard/internal/snapshot"
	"looper/finance-dashboard/internal/store"

	"github.com/spf13/cobra"
)

// Cmd represents the seed command
var Cmd = &cobra.Command{
	Use:   "seed",
	Short: "Build a transaction snapshot from raw seed data",
	Long: `Seed reads raw transaction records, fills in missing ids, descriptions
and categories, and writes the enriched snapshot back out. Categories are
assigned with the same keyword rules the dashboard uses.`,
	Run: seedFunc,
}

func seedFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Seed command called")

	config.LoadEnv()

	input := root.SharedFlags.Input
	if input == "" {
		root.Log.Error("Input seed file is required (-i)")
		return
	}
	output := root.SharedFlags.Output
	if output == "" {
		output = "transactions.json"
	}

	ruleStore := store.NewRuleStore("")
	cat := categorizer.NewWithStore(ruleStore, root.Logger())

	transactions, err := snapshot.Seed(input, cat)
	if err != nil {
		root.Log.Errorf("Error seeding snapshot: %v", err)
		return
	}

	if err := snapshot.Save(output, transactions); err != nil {
		root.Log.Errorf("Error writing snapshot: %v", err)
		return
	}

	root.Log.Infof("Seeded %d transactions to %s", len(transactions), output)
}
