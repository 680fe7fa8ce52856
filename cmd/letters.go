package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/pismenka/internal/characters"
	"github.com/abhisek/pismenka/internal/store"
)

var lettersCmd = &cobra.Command{
	Use:   "letters",
	Short: "Show or change the letters in play",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPool(cmd, func(p *characters.Pool) error {
			printPool(p)
			return nil
		})
	},
}

var lettersToggleCmd = &cobra.Command{
	Use:   "toggle <letters>...",
	Short: "Turn letters on or off (\"abc\" toggles a, b and c)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPool(cmd, func(p *characters.Pool) error {
			for _, arg := range args {
				for _, r := range arg {
					p.Toggle(string(r))
				}
			}
			printPool(p)
			return nil
		})
	},
}

var lettersAllCmd = &cobra.Command{
	Use:   "all",
	Short: "Turn on the whole alphabet",
	RunE: func(cmd *cobra.Command, args []string) error {
		latin, _ := cmd.Flags().GetBool("latin")
		return withPool(cmd, func(p *characters.Pool) error {
			if latin {
				p.SelectAll(characters.LatinAlphabet)
			} else {
				p.SelectAll(characters.Alphabet)
			}
			printPool(p)
			return nil
		})
	},
}

var lettersClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Turn every letter off",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPool(cmd, func(p *characters.Pool) error {
			p.ClearAll()
			printPool(p)
			return nil
		})
	},
}

// withPool opens the store and runs fn with the persisted letter pool.
func withPool(cmd *cobra.Command, fn func(*characters.Pool) error) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()
	return fn(loadPool(st))
}

func loadPool(st *store.Store) *characters.Pool {
	return characters.New(preferences(st), cfg.StartupLetters())
}

func printPool(p *characters.Pool) {
	if p.Len() == 0 {
		fmt.Println("No letters selected.")
		return
	}
	fmt.Printf("%d letters: %s\n", p.Len(), strings.Join(p.Active(), " "))
}

func init() {
	lettersAllCmd.Flags().Bool("latin", false, "Use the plain a-z alphabet")

	lettersCmd.AddCommand(lettersToggleCmd)
	lettersCmd.AddCommand(lettersAllCmd)
	lettersCmd.AddCommand(lettersClearCmd)
}
