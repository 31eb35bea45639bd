package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run snapshot database migrations",
	Long:  `Run database migrations to create or update the snapshot schema`,
	Args:  cobra.NoArgs,
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	log.Infoln("Running database migrations...")
	store, err := openStorage()
	if err != nil {
		return err
	}
	defer store.Close()

	log.Infoln("Migrations completed successfully")
	return nil
}
