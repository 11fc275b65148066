// Package categorize handles transaction categorization commands
package categorize

import (
	"looper/finance-dashboard/cmd/root"
	"looper/finance-dashboard/internal/categorizer"
	"looper/finance-dashboard/internal/config"
	"looper/finance-dashboard/internal/store"

	"github.com/spf13/cobra"
)

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Categorize a transaction by its description",
	Long: `Categorize a transaction description against the keyword rules.
The first matching rule wins; descriptions that match nothing fall back
to the Other category.`,
	Run: categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Description, "description", "d", "", "Transaction description to categorize")
	_ = Cmd.MarkFlagRequired("description")
}

func categorizeFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Categorize command called")

	// Ensure the environment variables are loaded
	config.LoadEnv()

	if root.Description == "" {
		root.Log.Error("Description is required for categorization")
		return
	}

	ruleStore := store.NewRuleStore("")
	cat := categorizer.NewWithStore(ruleStore, root.Logger())

	category := cat.Categorize(root.Description)
	root.Log.Infof("Category: %s", category)
	cmd.Println(category)
}
