package categorize_test

import (
	"bytes"
	"testing"

	"looper/finance-dashboard/cmd/categorize"
	"looper/finance-dashboard/cmd/root"
	"looper/finance-dashboard/internal/models"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestCategorizeCommand_Metadata(t *testing.T) {
	assert.Equal(t, "categorize", categorize.Cmd.Use)
	assert.Contains(t, categorize.Cmd.Short, "Categorize a transaction")
	assert.Contains(t, categorize.Cmd.Long, "first matching rule wins")
	assert.NotNil(t, categorize.Cmd.Run)
}

func TestCategorizeCommand_Flags(t *testing.T) {
	descriptionFlag := categorize.Cmd.Flags().Lookup("description")
	assert.NotNil(t, descriptionFlag)
	assert.Equal(t, "d", descriptionFlag.Shorthand)
	assert.Equal(t, "", descriptionFlag.DefValue)
	assert.Contains(t, descriptionFlag.Usage, "description")
}

func TestCategorizeCommand_Run(t *testing.T) {
	originalDescription := root.Description
	defer func() { root.Description = originalDescription }()

	tests := []struct {
		description string
		want        string
	}{
		{description: "Swiggy lunch order", want: models.CategoryFood},
		{description: "Netflix subscription", want: models.CategoryEntertainment},
		{description: "Unknown merchant", want: models.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			root.Description = tt.description

			out := new(bytes.Buffer)
			cmd := &cobra.Command{}
			cmd.SetOut(out)

			categorize.Cmd.Run(cmd, []string{})
			assert.Equal(t, tt.want+"\n", out.String())
		})
	}
}

func TestCategorizeCommand_Run_EmptyDescription(t *testing.T) {
	originalDescription := root.Description
	defer func() { root.Description = originalDescription }()

	root.Description = ""
	cmd := &cobra.Command{}

	assert.NotPanics(t, func() {
		categorize.Cmd.Run(cmd, []string{})
	})
}
