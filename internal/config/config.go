// Package config loads runtime configuration from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"unicode/utf8"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"

	"github.com/abhisek/pismenka/internal/llm"
)

// Config is everything read from PISMENKA_* variables.
type Config struct {
	// DB overrides the database path. Empty means the default location.
	DB string `env:"DB"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	// LogFile receives logs while the terminal UI is running. Empty means
	// pismenka.log in the data directory.
	LogFile string `env:"LOG_FILE"`

	Speech     bool     `env:"SPEECH" envDefault:"true"`
	TTSCommand string   `env:"TTS_COMMAND" envDefault:"espeak-ng"`
	VoiceLangs []string `env:"VOICE_LANGS" envDefault:"sk,cs" envSeparator:","`

	// Letters seeds the letter pool when nothing is stored yet, either
	// comma separated ("a,b,c") or run together ("abc").
	Letters []string `env:"LETTERS" envSeparator:","`

	LLM llm.Config
}

// Load reads files (default ".env") into the process environment without
// overriding variables already set, then parses the environment. Missing
// files are fine.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}
	return parse(nil)
}

// parse reads environ, or the process environment when environ is nil.
func parse(environ map[string]string) (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](env.Options{
		Prefix:      llm.EnvPrefix,
		Environment: environ,
	})
	if err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// StartupLetters returns Letters split into single characters.
func (c Config) StartupLetters() []string {
	var out []string
	for _, part := range c.Letters {
		if utf8.RuneCountInString(part) <= 1 {
			if part != "" {
				out = append(out, part)
			}
			continue
		}
		for _, r := range part {
			if r != ' ' {
				out = append(out, string(r))
			}
		}
	}
	return out
}

// Languages parses VoiceLangs, skipping tags that do not parse.
func (c Config) Languages() []language.Tag {
	var tags []language.Tag
	for _, s := range c.VoiceLangs {
		if t, err := language.Parse(s); err == nil {
			tags = append(tags, t)
		}
	}
	return tags
}
