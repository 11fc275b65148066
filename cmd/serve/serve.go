// Package serve runs the HTTP API over a transaction snapshot
package serve

import (
	"encoding/json"
	"os"

	"looper/finance-dashboard/cmd/root"
	"looper/finance-dashboard/internal/auth"
	"looper/finance-dashboard/internal/config"
	"looper/finance-dashboard/internal/models"
	"looper/finance-dashboard/internal/server"
	"looper/finance-dashboard/internal/snapshot"

	"github.com/spf13/cobra"
)

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the transaction snapshot over HTTP",
	Long: `Serve starts an HTTP API with a login endpoint and token-guarded
transaction and CSV export endpoints. The snapshot is loaded once at
startup from the input file.`,
	Run: serveFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Addr, "addr", "a", "", "Listen address (overrides configuration)")
	Cmd.Flags().StringVarP(&root.JWTSecret, "jwt-secret", "s", "", "Token signing secret (overrides JWT_SECRET)")
}

func serveFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Serve command called")

	cfg, err := config.InitializeConfig()
	if err != nil {
		root.Log.Fatalf("Error loading configuration: %v", err)
	}

	snapshotFile := root.SharedFlags.Input
	if snapshotFile == "" {
		snapshotFile = cfg.Data.SnapshotFile
	}

	transactions, err := snapshot.Load(snapshotFile)
	if err != nil {
		root.Log.WithError(err).Warn("Snapshot not loaded, serving an empty transaction list")
		transactions = []models.Transaction{}
	}
	root.Log.Infof("Loaded %d transactions from %s", len(transactions), snapshotFile)

	secret := root.JWTSecret
	if secret == "" {
		secret = cfg.Server.JWTSecret
	}
	if secret == "" {
		root.Log.Fatal("No signing secret configured: set JWT_SECRET or pass --jwt-secret")
	}

	credentials, err := loadCredentials(cfg.Server.UsersFile)
	if err != nil {
		root.Log.Fatalf("Error loading users file: %v", err)
	}

	addr := root.Addr
	if addr == "" {
		addr = cfg.Server.Addr
	}

	authService := auth.NewService(secret, credentials, root.Logger())
	srv := server.New(authService, func() []models.Transaction { return transactions }, root.Logger())

	if err := srv.ListenAndServe(addr); err != nil {
		root.Log.Fatalf("Server stopped: %v", err)
	}
}

// loadCredentials reads the user table from a JSON file. An empty path
// selects the builtin demo table.
func loadCredentials(path string) ([]auth.Credential, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var credentials []auth.Credential
	if err := json.Unmarshal(data, &credentials); err != nil {
		return nil, err
	}
	return credentials, nil
}
