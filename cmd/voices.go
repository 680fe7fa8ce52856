package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/pismenka/internal/speech"
	"github.com/abhisek/pismenka/internal/store"
)

var voicesCmd = &cobra.Command{
	Use:   "voices",
	Short: "List the speech voices",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withVoices(cmd, func(p *speech.Preference) error {
			printVoices(p)
			return nil
		})
	},
}

var voicesSelectCmd = &cobra.Command{
	Use:   "select <name>",
	Short: "Pick the voice words are read with",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withVoices(cmd, func(p *speech.Preference) error {
			if !p.Select(args[0]) {
				return fmt.Errorf("no voice named %q", args[0])
			}
			printVoices(p)
			return nil
		})
	},
}

// withVoices enumerates the speech binary's voices and runs fn with the
// stored preference.
func withVoices(cmd *cobra.Command, fn func(*speech.Preference) error) error {
	if !cfg.Speech || cfg.TTSCommand == "" {
		return errors.New("speech is turned off")
	}
	voices, err := speech.ListVoices(cmd.Context(), cfg.TTSCommand)
	if err != nil {
		return err
	}

	var st *store.Store
	if st, err = openStore(cmd); err != nil {
		return err
	}
	defer st.Close()

	return fn(speech.NewPreference(preferences(st), voices, cfg.Languages()))
}

func printVoices(p *speech.Preference) {
	voices := p.Voices()
	if len(voices) == 0 {
		fmt.Println("No voices found.")
		return
	}
	for _, v := range voices {
		mark := " "
		if v.Name == p.Selected() {
			mark = "*"
		}
		fmt.Printf("%s %s\n", mark, v.Label())
	}
}

func init() {
	voicesCmd.AddCommand(voicesSelectCmd)
}
