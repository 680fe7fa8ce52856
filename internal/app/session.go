package app

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"github.com/abhisek/pismenka/internal/characters"
	"github.com/abhisek/pismenka/internal/pexeso"
	"github.com/abhisek/pismenka/internal/prefs"
	"github.com/abhisek/pismenka/internal/screens/home"
	"github.com/abhisek/pismenka/internal/settings"
	"github.com/abhisek/pismenka/internal/speech"
	"github.com/abhisek/pismenka/internal/spell"
	"github.com/abhisek/pismenka/internal/store"
	"github.com/abhisek/pismenka/internal/things"
	"github.com/abhisek/pismenka/internal/wordgen"
)

// Options holds the dependencies a Session is built from. Only Prefs is
// required.
type Options struct {
	Prefs prefs.Storage

	// Events receives round results and pexeso wins. Nil disables
	// recording and the history screen.
	Events store.EventRepo

	// Custom things extend the built-in picture catalog.
	Custom []things.Thing

	// Letters seeds the pool when nothing is persisted.
	Letters []string

	Voices    []speech.Voice
	Languages []language.Tag

	// TTSCommand is the speech binary. Empty keeps the session silent.
	TTSCommand string

	Log  zerolog.Logger
	Rand *rand.Rand
}

// Session is the application context. It owns one instance of every piece
// of shared state and hands the same instances to all screens.
type Session struct {
	ID string

	Prefs    prefs.Storage
	Events   store.EventRepo
	Pool     *characters.Pool
	Setup    *wordgen.Setup
	Settings *settings.Manager
	Voices   *speech.Preference
	Speaker  speech.Speaker
	Catalog  *things.Catalog

	Spell      *spell.Game
	SpellWords *spell.Game
	Pexeso     *pexeso.Game

	log zerolog.Logger
}

// NewSession builds the shared state and wires it together.
func NewSession(opts Options) (*Session, error) {
	if opts.Prefs == nil {
		return nil, fmt.Errorf("new session: no preference storage")
	}
	if len(opts.Languages) == 0 {
		opts.Languages = speech.DefaultLanguages
	}

	s := &Session{
		ID:     uuid.NewString(),
		Prefs:  opts.Prefs,
		Events: opts.Events,
		log:    opts.Log.With().Str("component", "session").Logger(),
	}
	s.log = s.log.With().Str("session", s.ID).Logger()

	catalog, err := things.NewCatalog(opts.Custom...)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	if opts.Rand != nil {
		catalog.WithRand(opts.Rand)
	}
	s.Catalog = catalog

	s.Pool = characters.New(opts.Prefs, opts.Letters)
	s.Pool.Subscribe(func(active []string) {
		s.log.Debug().Int("letters", len(active)).Msg("letter pool changed")
	})

	setupOpts := []wordgen.Option{wordgen.WithLogger(opts.Log)}
	if opts.Rand != nil {
		setupOpts = append(setupOpts, wordgen.WithRand(opts.Rand))
	}
	s.Setup = wordgen.New(s.Pool, opts.Prefs, setupOpts...)

	s.Settings = settings.Load(opts.Prefs)
	s.Voices = speech.NewPreference(opts.Prefs, opts.Voices, opts.Languages)

	s.Speaker = speech.Nop{}
	if opts.TTSCommand != "" {
		s.Speaker = speech.NewCommand(opts.TTSCommand, s.Voices, opts.Log)
	}

	rec := &recorder{session: s.ID, events: opts.Events, log: s.log}

	spellOpts := []spell.Option{spell.WithLogger(opts.Log), spell.WithSpeaker(s.Speaker)}
	pexesoOpts := []pexeso.Option{pexeso.WithLogger(opts.Log), pexeso.WithSpeaker(s.Speaker)}
	if opts.Events != nil {
		spellOpts = append(spellOpts, spell.WithRecorder(rec))
		pexesoOpts = append(pexesoOpts, pexeso.WithRecorder(rec))
	}
	if opts.Rand != nil {
		spellOpts = append(spellOpts, spell.WithRand(opts.Rand))
		pexesoOpts = append(pexesoOpts, pexeso.WithRand(opts.Rand))
	}

	s.Spell = spell.New(s.Pool, catalog, spellOpts...)
	s.SpellWords = spell.New(s.Pool, things.NewConfirmed(s.Setup), spellOpts...)
	s.Pexeso = pexeso.New(s.Setup.ConfirmedWords(), pexesoOpts...)

	s.Setup.OnConfirm(func(words []string) {
		s.log.Debug().Int("words", len(words)).Msg("confirmed words changed")
		s.Pexeso.SetWords(words)
	})

	return s, nil
}

// HomeDeps returns what the home screen needs to open every other screen.
func (s *Session) HomeDeps() home.Deps {
	deps := home.Deps{
		Pool:       s.Pool,
		Setup:      s.Setup,
		Settings:   s.Settings,
		Voices:     s.Voices,
		Speaker:    s.Speaker,
		Spell:      s.Spell,
		SpellWords: s.SpellWords,
		Pexeso:     s.Pexeso,
	}
	if s.Events != nil {
		deps.Events = s.Events
	}
	return deps
}

// recorder writes game results to the event store. Failures are logged and
// never reach the game.
type recorder struct {
	session string
	events  store.EventRepo
	log     zerolog.Logger
}

func (r *recorder) RecordRound(res spell.Result) {
	err := r.events.AppendSpellRound(context.Background(), store.SpellRoundEventData{
		SessionID:       r.session,
		Word:            res.Word,
		Difficulty:      res.Difficulty.String(),
		Correct:         res.Correct,
		RoundAttempts:   res.RoundAttempts,
		Points:          res.PointsAwarded,
		PotentialPoints: res.PotentialPoints,
	})
	if err != nil {
		r.log.Warn().Err(err).Str("word", res.Word).Msg("record spell round")
	}
}

func (r *recorder) RecordWin(w pexeso.Win) {
	err := r.events.AppendPexesoWin(context.Background(), store.PexesoWinEventData{
		SessionID: r.session,
		Pairs:     w.Pairs,
		Moves:     w.Moves,
	})
	if err != nil {
		r.log.Warn().Err(err).Int("pairs", w.Pairs).Msg("record pexeso win")
	}
}
