package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/surrealcore/coredb/internal/catalog"
	"github.com/surrealcore/coredb/internal/index/hnsw"
	"github.com/surrealcore/coredb/internal/txn"
)

func compactorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compactor",
		Short: "Drive the HNSW pending-update compactor",
	}
	cmd.AddCommand(compactorDrainCmd())
	return cmd
}

func compactorDrainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "drain <table> <index>",
		Short: "Apply every queued HNSW pending update into the committed graph",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			table, indexName := args[0], args[1]
			mgr, err := openManager()
			if err != nil {
				return err
			}
			ctx := context.Background()
			scope := txn.Scope{Namespace: namespace, Database: database}

			tx, err := mgr.Begin(ctx, false)
			if err != nil {
				return err
			}
			indexes, err := tx.AllTableIndexes(ctx, scope, table)
			tx.Cancel(ctx)
			if err != nil {
				return err
			}

			var idx *catalog.Index
			for i := range indexes {
				if indexes[i].Name == indexName && indexes[i].Kind == catalog.IndexHNSW {
					idx = &indexes[i]
					break
				}
			}
			if idx == nil {
				return fmt.Errorf("no HNSW index %q on table %q", indexName, table)
			}

			maint := hnsw.New(namespace, database, table, idx)
			compactor := hnsw.NewCompactor(mgr.Backend(), maint)
			applied, err := compactor.Drain(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("applied %d pending update(s)\n", applied)
			return nil
		},
	}
}
