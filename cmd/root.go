package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/abhisek/eduvision/internal/config"
	"github.com/abhisek/eduvision/internal/logger"
	"github.com/abhisek/eduvision/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "eduvision",
	Short: "AI lesson visualization planner",
	Long: "EduVision turns a short wizard (learner, subject, goal, visual modules) into an\n" +
		"AI-written lesson plan with illustration prompts, renders the illustrations,\n" +
		"and exports everything to PDF.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// Execute runs the CLI with fang's help and error styling.
func Execute(ctx context.Context) error {
	return fang.Execute(ctx, rootCmd, fang.WithVersion(version))
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides EDUVISION_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to a config file (replaces eduvision.yml lookup)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(promptsCmd)
	rootCmd.AddCommand(modulesCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then EDUVISION_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// loadConfig reads the configuration named by --config, or the usual
// global and project files.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// openStore opens the event store selected by --db.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// newLogger builds the file logger configured in cfg.
func newLogger(cfg *config.Config) (*logger.Logger, error) {
	path, err := cfg.ResolvedLogFile()
	if err != nil {
		return nil, fmt.Errorf("resolve log file: %w", err)
	}
	log, err := logger.New(cfg.LogLevel, path)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	return log, nil
}
