package cmd

import (
	"fmt"

	"github.com/rsinha/adaptiq/internal/config"
	"github.com/rsinha/adaptiq/internal/engine"
	"github.com/rsinha/adaptiq/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "adaptiq",
	Short: "Adaptive difficulty engine for learning platforms",
	Long: "Adaptiq tracks per-learner concept mastery, item difficulty, and\n" +
		"engagement signals, and decides the next difficulty level after every answer.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ADAPTIQ_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to JSON config file (overrides ADAPTIQ_CONFIG env var)")

	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(calibrateCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then ADAPTIQ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveConfig loads configuration using the --config flag when set,
// falling back to the environment (ADAPTIQ_CONFIG and friends).
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		return config.Load(p)
	}
	return config.FromEnv()
}

// openEngine opens the store and builds an engine from it. The caller
// owns the returned store and must close it.
func openEngine(cmd *cobra.Command) (*engine.Engine, *store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	events, err := st.EventRepo()
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("event repo: %w", err)
	}
	eng, err := engine.New(cmd.Context(), cfg, st.SnapshotRepo(), events)
	if err != nil {
		st.Close()
		return nil, nil, err
	}
	return eng, st, nil
}
