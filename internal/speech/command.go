package speech

import (
	"os/exec"
	"strconv"
	"sync"

	"github.com/rs/zerolog"
)

// Rate and pitch for espeak-ng, slower and a little higher than its
// defaults of 175 words per minute and pitch 50.
const (
	ChildRate  = 140
	ChildPitch = 55
)

// VoiceSource supplies the voice to speak with.
type VoiceSource interface {
	Current() (Voice, bool)
}

// process is the part of *exec.Cmd a Command needs; tests replace it.
type process interface {
	Start() error
	Wait() error
	Kill() error
}

type execProcess struct{ *exec.Cmd }

func (p execProcess) Kill() error {
	if p.Process == nil {
		return nil
	}
	return p.Process.Kill()
}

// Command speaks by running an espeak-compatible binary. Each Speak
// cancels the utterance still playing.
type Command struct {
	binary string
	voices VoiceSource
	log    zerolog.Logger
	start  func(name string, args ...string) process

	mu      sync.Mutex
	current process
}

var _ Speaker = (*Command)(nil)

// NewCommand creates a Command running binary. voices may be nil.
func NewCommand(binary string, voices VoiceSource, log zerolog.Logger) *Command {
	return &Command{
		binary: binary,
		voices: voices,
		log:    log,
		start: func(name string, args ...string) process {
			return execProcess{exec.Command(name, args...)}
		},
	}
}

// Args returns the arguments used to say text.
func (c *Command) Args(text string) []string {
	args := []string{"-s", strconv.Itoa(ChildRate), "-p", strconv.Itoa(ChildPitch)}
	if c.voices != nil {
		if v, ok := c.voices.Current(); ok {
			if id := v.ID(); id != "" {
				args = append(args, "-v", id)
			}
		}
	}
	return append(args, "--", text)
}

// Speak starts saying text and returns immediately. Empty text is ignored.
func (c *Command) Speak(text string) {
	if text == "" || c.binary == "" {
		return
	}

	p := c.start(c.binary, c.Args(text)...)

	c.mu.Lock()
	if c.current != nil {
		_ = c.current.Kill()
	}
	if err := p.Start(); err != nil {
		c.current = nil
		c.mu.Unlock()
		c.log.Warn().Err(err).Str("binary", c.binary).Msg("start speech")
		return
	}
	c.current = p
	c.mu.Unlock()

	go func() {
		_ = p.Wait()
		c.mu.Lock()
		if c.current == p {
			c.current = nil
		}
		c.mu.Unlock()
	}()
}
