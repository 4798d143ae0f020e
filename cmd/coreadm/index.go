package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/surrealcore/coredb/internal/txn"
)

func indexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Inspect secondary index build status",
	}
	cmd.AddCommand(indexStatusCmd())
	return cmd
}

func indexStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <table>",
		Short: "Print every index's build status for a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			mgr, err := openManager()
			if err != nil {
				return err
			}
			ctx := context.Background()
			tx, err := mgr.Begin(ctx, false)
			if err != nil {
				return err
			}
			defer tx.Cancel(ctx)

			scope := txn.Scope{Namespace: namespace, Database: database}
			indexes, err := tx.AllTableIndexes(ctx, scope, args[0])
			if err != nil {
				return err
			}
			if len(indexes) == 0 {
				fmt.Printf("no indexes defined on %s\n", args[0])
				return nil
			}
			for _, ix := range indexes {
				fmt.Printf("%-24s kind=%-10v status=%v\n", ix.Name, ix.Kind, ix.BuildStatus)
			}
			return nil
		},
	}
}
