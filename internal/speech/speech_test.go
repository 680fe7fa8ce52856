package speech

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/abhisek/pismenka/internal/prefs"
)

const voicesOutput = `Pty Language       Age/Gender VoiceName          File                 Other Languages
 5  af              --/M      Afrikaans          gmw/af
 5  cs              --/M      Czech              zlw/cs
 5  en-us           --/M      English_(America)  gmw/en-US            (en 3)
 5  sk              --/M      Slovak             zlw/sk
garbage
`

func testVoices(t *testing.T) []Voice {
	t.Helper()
	v, err := ParseVoices(strings.NewReader(voicesOutput))
	require.NoError(t, err)
	return v
}

func TestParseVoices(t *testing.T) {
	voices := testVoices(t)
	require.Len(t, voices, 4)
	assert.Equal(t, Voice{Name: "Slovak", Lang: "sk", File: "zlw/sk"}, voices[3])
	assert.Equal(t, "English_(America) (en-us)", voices[2].Label())
}

func TestPreference_DefaultsToPreferredLanguage(t *testing.T) {
	voices := testVoices(t)

	p := NewPreference(prefs.NewMemory(), voices, DefaultLanguages)
	assert.Equal(t, "Slovak", p.Selected())

	noSlovak := voices[:3]
	p = NewPreference(prefs.NewMemory(), noSlovak, DefaultLanguages)
	assert.Equal(t, "Czech", p.Selected())

	p = NewPreference(prefs.NewMemory(), voices, []language.Tag{language.Japanese})
	assert.Equal(t, "Afrikaans", p.Selected(), "falls back to the first voice")

	p = NewPreference(prefs.NewMemory(), voices, nil)
	assert.Equal(t, "Afrikaans", p.Selected())
}

func TestPreference_StoredVoiceWinsOnlyIfEnumerated(t *testing.T) {
	voices := testVoices(t)

	mem := prefs.NewMemory()
	mem.SetRaw(prefs.KeySpeechVoice, `"Czech"`)
	assert.Equal(t, "Czech", NewPreference(mem, voices, DefaultLanguages).Selected())

	mem.SetRaw(prefs.KeySpeechVoice, `"Klingon"`)
	assert.Equal(t, "Slovak", NewPreference(mem, voices, DefaultLanguages).Selected())

	mem.SetRaw(prefs.KeySpeechVoice, `42`)
	assert.Equal(t, "Slovak", NewPreference(mem, voices, DefaultLanguages).Selected())
}

func TestPreference_Select(t *testing.T) {
	mem := prefs.NewMemory()
	p := NewPreference(mem, testVoices(t), DefaultLanguages)

	assert.False(t, p.Select("Klingon"))
	assert.Equal(t, "Slovak", p.Selected())
	assert.Equal(t, 0, mem.SaveCount(prefs.KeySpeechVoice))

	assert.True(t, p.Select("Czech"))
	raw, _ := mem.Raw(prefs.KeySpeechVoice)
	assert.Equal(t, `"Czech"`, raw)

	v, ok := p.Current()
	require.True(t, ok)
	assert.Equal(t, "cs", v.Lang)
}

func TestPreference_NoVoices(t *testing.T) {
	p := NewPreference(prefs.NewMemory(), nil, DefaultLanguages)
	assert.Empty(t, p.Selected())
	_, ok := p.Current()
	assert.False(t, ok)
	assert.Empty(t, p.Voices())
}

type fakeProcess struct {
	mu       sync.Mutex
	args     []string
	startErr error
	killed   bool
	done     chan struct{}
}

func (f *fakeProcess) Start() error { return f.startErr }

func (f *fakeProcess) Wait() error {
	<-f.done
	return nil
}

func (f *fakeProcess) Kill() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.killed {
		f.killed = true
		close(f.done)
	}
	return nil
}

func (f *fakeProcess) wasKilled() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.killed
}

func fakeCommand(voices VoiceSource, startErr error) (*Command, *[]*fakeProcess) {
	var started []*fakeProcess
	c := NewCommand("espeak-ng", voices, zerolog.Nop())
	c.start = func(name string, args ...string) process {
		p := &fakeProcess{args: append([]string{name}, args...), startErr: startErr, done: make(chan struct{})}
		started = append(started, p)
		return p
	}
	return c, &started
}

func TestCommand_Args(t *testing.T) {
	p := NewPreference(prefs.NewMemory(), []Voice{
		{Name: "Slovak", Lang: "sk", File: "zlw/sk"},
		{Name: "sk-mbrola", Lang: "sk", File: "mb/mb-sk1"},
		{Name: "Anna", Lang: "cs"},
	}, DefaultLanguages)
	c := NewCommand("espeak-ng", p, zerolog.Nop())
	require.True(t, p.Select("Slovak"))
	assert.Equal(t, []string{"-s", "140", "-p", "55", "-v", "zlw/sk", "--", "mačka"}, c.Args("mačka"))

	require.True(t, p.Select("sk-mbrola"))
	assert.Equal(t, []string{"-s", "140", "-p", "55", "-v", "mb/mb-sk1", "--", "mačka"}, c.Args("mačka"),
		"voices of the same language are told apart by file")

	require.True(t, p.Select("Anna"))
	assert.Equal(t, []string{"-s", "140", "-p", "55", "-v", "Anna", "--", "pes"}, c.Args("pes"),
		"without a file the name is used")

	c = NewCommand("espeak-ng", nil, zerolog.Nop())
	assert.Equal(t, []string{"-s", "140", "-p", "55", "--", "-x"}, c.Args("-x"))
}

func TestCommand_SpeakCancelsPrevious(t *testing.T) {
	c, started := fakeCommand(nil, nil)

	c.Speak("pes")
	c.Speak("mačka")
	require.Len(t, *started, 2)

	assert.True(t, (*started)[0].wasKilled())
	assert.False(t, (*started)[1].wasKilled())
	assert.Equal(t, "mačka", (*started)[1].args[len((*started)[1].args)-1])

	_ = (*started)[1].Kill()
}

func TestCommand_IgnoresEmptyTextAndStartFailures(t *testing.T) {
	c, started := fakeCommand(nil, errors.New("no such file"))

	c.Speak("")
	assert.Empty(t, *started)

	c.Speak("pes")
	require.Len(t, *started, 1)
	c.mu.Lock()
	assert.Nil(t, c.current)
	c.mu.Unlock()
}

func TestCommand_EmptyBinaryIsSilent(t *testing.T) {
	c, started := fakeCommand(nil, nil)
	c.binary = ""
	c.Speak("pes")
	assert.Empty(t, *started)
}

func TestFuncAndNop(t *testing.T) {
	var said []string
	var s Speaker = Func(func(text string) { said = append(said, text) })
	s.Speak("a")
	Nop{}.Speak("b")
	assert.Equal(t, []string{"a"}, said)
}
