package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ravyz/matcher/internal/store"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations for stored match results",
	Run: func(cmd *cobra.Command, _ []string) {
		migrate(cmd)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)

	migrateCmd.Flags().Bool("prune-expired", false, "delete expired match results after migrating")
}

func migrate(cmd *cobra.Command) {
	ctx := context.Background()
	l, config := setup()

	db, err := openDatabase(ctx, config, l)
	if err != nil {
		l.Fatal("opening database", zap.Error(err))
	}
	defer db.Close()

	if err := store.RunMigrations(ctx, db); err != nil {
		l.Fatal("applying migrations", zap.Error(err))
	}
	l.Info("migrations applied")

	if prune, _ := cmd.Flags().GetBool("prune-expired"); prune {
		n, err := (&store.PGRepo{DB: db}).DeleteExpired(ctx, time.Now().UTC())
		if err != nil {
			l.Fatal("pruning expired results", zap.Error(err))
		}
		l.Info("expired results pruned", zap.Int64("deleted", n))
	}
}
