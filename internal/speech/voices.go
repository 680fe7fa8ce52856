package speech

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// Voice is one voice of the speech program.
type Voice struct {
	Name string
	Lang string
	File string
}

// ID names the voice for "espeak-ng -v". Voices sharing a language differ
// only by their file.
func (v Voice) ID() string {
	if v.File != "" {
		return v.File
	}
	return v.Name
}

// Label is the voice as shown in pickers.
func (v Voice) Label() string {
	return fmt.Sprintf("%s (%s)", v.Name, v.Lang)
}

// ParseVoices reads the table printed by "espeak-ng --voices":
//
//	Pty Language       Age/Gender VoiceName          File                 Other Languages
//	 5  sk              --/M      Slovak             zlw/sk
//
// The header and malformed lines are skipped.
func ParseVoices(r io.Reader) ([]Voice, error) {
	var voices []Voice
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		f := strings.Fields(sc.Text())
		if len(f) < 4 || f[0] == "Pty" {
			continue
		}
		v := Voice{Lang: f[1], Name: f[3]}
		if len(f) > 4 {
			v.File = f[4]
		}
		voices = append(voices, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read voices: %w", err)
	}
	return voices, nil
}

// ListVoices runs "<binary> --voices" and parses the result.
func ListVoices(ctx context.Context, binary string) ([]Voice, error) {
	out, err := exec.CommandContext(ctx, binary, "--voices").Output()
	if err != nil {
		return nil, fmt.Errorf("list voices with %s: %w", binary, err)
	}
	return ParseVoices(strings.NewReader(string(out)))
}
