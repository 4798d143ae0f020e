package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/surrealcore/coredb/internal/txn"
)

func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect catalog schema",
	}
	cmd.AddCommand(catalogTableCmd())
	return cmd
}

func catalogTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table <name>",
		Short: "Print a table's fields and indexes",
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
			tbl, ok, err := tx.GetTable(ctx, scope, args[0])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("table %q not found in %s/%s", args[0], namespace, database)
			}
			fmt.Printf("table %s (defined %s)\n", tbl.Name, tbl.DefinedAt.Format("2006-01-02T15:04:05Z07:00"))

			fields, err := tx.AllTableFields(ctx, scope, args[0])
			if err != nil {
				return err
			}
			fmt.Println("fields:")
			for _, f := range fields {
				fmt.Printf("  %-24s kind=%v flexible=%v readonly=%v\n", f.Name, f.Kind.Kinds, f.Flexible, f.Readonly)
			}

			indexes, err := tx.AllTableIndexes(ctx, scope, args[0])
			if err != nil {
				return err
			}
			fmt.Println("indexes:")
			for _, ix := range indexes {
				fmt.Printf("  %-24s kind=%v status=%v concurrently=%v\n", ix.Name, ix.Kind, ix.BuildStatus, ix.Concurrently)
			}
			return nil
		},
	}
}
