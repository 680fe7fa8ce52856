package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/pismenka/internal/app"
	"github.com/abhisek/pismenka/internal/logging"
	"github.com/abhisek/pismenka/internal/speech"
	"github.com/abhisek/pismenka/internal/store"
	"github.com/abhisek/pismenka/internal/things"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the games",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp opens the store, builds the session, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	// The TUI owns the terminal, so logs go to a file while it runs.
	logFile := cfg.LogFile
	if logFile == "" {
		dir, err := store.DataDir()
		if err != nil {
			return fmt.Errorf("resolve data dir: %w", err)
		}
		logFile = filepath.Join(dir, "pismenka.log")
	}
	log, closeLog, err := logging.New(logging.Options{Level: cfg.LogLevel, File: logFile})
	if err != nil {
		return err
	}
	defer closeLog()
	logger = log

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	custom, err := customThings(ctx, st.ThingRepo())
	if err != nil {
		return err
	}

	opts := app.Options{
		Prefs:     preferences(st),
		Events:    st.EventRepo(),
		Custom:    custom,
		Letters:   cfg.StartupLetters(),
		Languages: cfg.Languages(),
		Log:       log,
	}
	if cfg.Speech && cfg.TTSCommand != "" {
		opts.Voices = listVoices(ctx, log)
		opts.TTSCommand = cfg.TTSCommand
	}

	session, err := app.NewSession(opts)
	if err != nil {
		return err
	}
	log.Info().Str("session", session.ID).Int("letters", session.Pool.Len()).Msg("session started")

	return app.Run(session)
}

// listVoices enumerates the speech binary's voices. Speech still works
// without them, using the binary's default voice.
func listVoices(ctx context.Context, log zerolog.Logger) []speech.Voice {
	voices, err := speech.ListVoices(ctx, cfg.TTSCommand)
	if err != nil {
		log.Warn().Err(err).Msg("speech voices unavailable")
		return nil
	}
	return voices
}

// customThings loads the stored things, skipping rows whose difficulty
// no longer parses.
func customThings(ctx context.Context, repo store.ThingRepo) ([]things.Thing, error) {
	rows, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load custom things: %w", err)
	}
	out := make([]things.Thing, 0, len(rows))
	for _, r := range rows {
		d, err := things.ParseDifficulty(r.Difficulty)
		if err != nil {
			logger.Warn().Err(err).Str("word", r.Word).Msg("skipping custom thing")
			continue
		}
		out = append(out, things.Thing{Word: r.Word, Emoji: r.Emoji, Difficulty: d})
	}
	return out, nil
}
