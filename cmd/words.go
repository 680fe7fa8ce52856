package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/pismenka/internal/wordgen"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Generate and confirm the words for \"my words\" and pexeso",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSetup(cmd, func(s *wordgen.Setup) error {
			printSetup(s)
			return nil
		})
	},
}

var wordsGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Replace the list with words made of the active letters",
	RunE: func(cmd *cobra.Command, args []string) error {
		minLen, _ := cmd.Flags().GetInt("min")
		maxLen, _ := cmd.Flags().GetInt("max")
		count, _ := cmd.Flags().GetInt("count")
		confirm, _ := cmd.Flags().GetBool("confirm")

		return withSetup(cmd, func(s *wordgen.Setup) error {
			s.SetBounds(minLen, maxLen, count)
			s.Generate()
			if len(s.State().Words) == 0 {
				return fmt.Errorf("no words generated: pick some letters first")
			}
			if confirm {
				s.Confirm()
			}
			printSetup(s)
			return nil
		})
	},
}

var wordsAddCmd = &cobra.Command{
	Use:   "add <word>...",
	Short: "Add words to the list",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSetup(cmd, func(s *wordgen.Setup) error {
			for _, w := range args {
				s.AddWord(w)
				if !s.ValidateWord(w) {
					fmt.Printf("warning: %q uses letters that are not active\n", w)
				}
			}
			printSetup(s)
			return nil
		})
	},
}

var wordsRemoveCmd = &cobra.Command{
	Use:   "rm <word>",
	Short: "Remove a word from the list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSetup(cmd, func(s *wordgen.Setup) error {
			for i, w := range s.State().Words {
				if w == args[0] {
					s.RemoveWord(i)
					printSetup(s)
					return nil
				}
			}
			return fmt.Errorf("%q is not in the list", args[0])
		})
	},
}

var wordsConfirmCmd = &cobra.Command{
	Use:   "confirm",
	Short: "Confirm the valid words in the list for play",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSetup(cmd, func(s *wordgen.Setup) error {
			s.Confirm()
			printSetup(s)
			return nil
		})
	},
}

var wordsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the list and the confirmed words",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSetup(cmd, func(s *wordgen.Setup) error {
			s.Clear()
			printSetup(s)
			return nil
		})
	},
}

// withSetup opens the store and runs fn with the persisted word setup.
func withSetup(cmd *cobra.Command, fn func(*wordgen.Setup) error) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()
	return fn(wordgen.New(loadPool(st), preferences(st), wordgen.WithLogger(logger)))
}

func printSetup(s *wordgen.Setup) {
	state := s.State()
	if len(state.Words) == 0 && len(state.ConfirmedWords) == 0 {
		fmt.Println("No words yet.")
		return
	}

	fmt.Printf("List (%d):\n", len(state.Words))
	for _, w := range state.Words {
		mark := "✓"
		if !s.ValidateWord(w) {
			mark = "✗"
		}
		fmt.Printf("  %s %s\n", mark, w)
	}

	fmt.Printf("Confirmed (%d):", len(state.ConfirmedWords))
	for _, w := range state.ConfirmedWords {
		fmt.Printf(" %s", w)
	}
	fmt.Println()
	if state.Dirty {
		fmt.Println("The list has changed since the last confirm.")
	}
}

func init() {
	wordsGenerateCmd.Flags().Int("min", wordgen.DefaultMinLength, "Shortest word length")
	wordsGenerateCmd.Flags().Int("max", wordgen.DefaultMaxLength, "Longest word length")
	wordsGenerateCmd.Flags().IntP("count", "n", wordgen.DefaultCount, fmt.Sprintf("Number of words (at most %d)", wordgen.MaxCount))
	wordsGenerateCmd.Flags().Bool("confirm", false, "Confirm the generated words right away")

	wordsCmd.AddCommand(wordsGenerateCmd)
	wordsCmd.AddCommand(wordsAddCmd)
	wordsCmd.AddCommand(wordsRemoveCmd)
	wordsCmd.AddCommand(wordsConfirmCmd)
	wordsCmd.AddCommand(wordsClearCmd)
}
