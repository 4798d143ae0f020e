// Command coreadm is a small operator CLI over the exported Go API: catalog
// inspection, index build status, HNSW compactor control, and config dump.
// It is deliberately not a query-language surface — there is no parser in
// this repository — it only drives the library directly
// against a memkv-backed store, optionally restored from a snapshot file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/surrealcore/coredb/internal/config"
	"github.com/surrealcore/coredb/internal/kv"
	"github.com/surrealcore/coredb/internal/kv/memkv"
	"github.com/surrealcore/coredb/internal/telemetry"
	"github.com/surrealcore/coredb/internal/txn"
)

var (
	snapshotPath string
	configPath   string
	namespace    string
	database     string
	traceOut     string
	otlpEndpoint string

	telemetryShutdown telemetry.ShutdownFunc
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "coreadm:", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "coreadm",
		Short: "Operator CLI for the coredb storage core",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if traceOut == "" {
				return nil
			}
			f, err := os.Create(traceOut)
			if err != nil {
				return err
			}
			telemetryShutdown, err = telemetry.Setup(cmd.Context(), telemetry.Options{
				ServiceName:  "coreadm",
				OTLPEndpoint: otlpEndpoint,
				Writer:       f,
			})
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if telemetryShutdown == nil {
				return nil
			}
			return telemetryShutdown(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&snapshotPath, "snapshot", "", "memkv snapshot file to load (optional)")
	root.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "configuration file")
	root.PersistentFlags().StringVar(&namespace, "namespace", "test", "namespace to operate on")
	root.PersistentFlags().StringVar(&database, "database", "test", "database to operate on")
	root.PersistentFlags().StringVar(&traceOut, "trace-out", "", "write spans and metrics to this file (enables telemetry)")
	root.PersistentFlags().StringVar(&otlpEndpoint, "otlp-endpoint", "", "export metrics over OTLP/HTTP to this host:port instead of the --trace-out file (has no effect without --trace-out)")
	viper.BindPFlag("config", root.PersistentFlags().Lookup("config"))

	root.AddCommand(catalogCmd(), indexCmd(), compactorCmd(), configCmd())
	return root
}

// openManager opens a txn.Manager over a memkv store, restoring from
// --snapshot first when one was given and the file exists; a missing
// snapshot file leaves the store empty.
func openManager() (*txn.Manager, error) {
	store := memkv.New(kv.DropWarn)
	if snapshotPath != "" {
		if _, err := os.Stat(snapshotPath); err == nil {
			if err := memkv.NewSnapshotFile(snapshotPath).Load(store); err != nil {
				return nil, fmt.Errorf("load snapshot: %w", err)
			}
		}
	}
	return txn.NewManager(store), nil
}

func loadConfig() (config.Config, error) {
	return config.NewWatcher(configPath).Load()
}
