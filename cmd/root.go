package cmd

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/pismenka/internal/config"
	"github.com/abhisek/pismenka/internal/logging"
	"github.com/abhisek/pismenka/internal/prefs"
	"github.com/abhisek/pismenka/internal/store"
)

// Set by the root command before any subcommand runs.
var (
	cfg    config.Config
	logger = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "pismenka",
	Short: "Letter games for young readers",
	Long:  "Písmenká: terminal spelling and pexeso games for children learning to read.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		logger, _, err = logging.New(logging.Options{Level: cfg.LogLevel})
		return err
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PISMENKA_DB env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(lettersCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(thingsCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(voicesCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PISMENKA_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DB != "" {
		return cfg.DB, store.EnsureDir(cfg.DB)
	}
	return store.DefaultDBPath()
}

// openStore resolves the database path and opens it.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	logger.Debug().Str("path", dbPath).Msg("database opened")
	return s, nil
}

// preferences returns the preference storage backed by s.
func preferences(s *store.Store) prefs.Storage {
	return prefs.NewStore(s.PreferenceRepo(), logger)
}
