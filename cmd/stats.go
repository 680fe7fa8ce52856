package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/pismenka/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show game statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		stats, err := st.EventRepo().Stats(cmd.Context())
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}

		fmt.Println("Spelling")
		fmt.Println(strings.Repeat("─", 32))
		fmt.Printf("%-20s %10d\n", "Attempts", stats.SpellAttempts)
		fmt.Printf("%-20s %10d\n", "Correct", stats.SpellCorrect)
		fmt.Printf("%-20s %10d\n", "Different words", stats.WordsSpelled)
		fmt.Printf("%-20s %10d\n", "Points", stats.SpellPoints)
		fmt.Println()
		fmt.Println("Pexeso")
		fmt.Println(strings.Repeat("─", 32))
		fmt.Printf("%-20s %10d\n", "Boards won", stats.PexesoWins)
		if stats.BestPexesoRun > 0 {
			fmt.Printf("%-20s %10d\n", "Fewest moves", stats.BestPexesoRun)
		}
		if stats.LLMRequests > 0 {
			fmt.Println()
			fmt.Printf("%d LLM requests, %d tokens in / %d out (see \"pismenka things cost\")\n",
				stats.LLMRequests, stats.LLMInputTokens, stats.LLMOutputTokens)
		}

		recent, _ := cmd.Flags().GetInt("recent")
		if recent <= 0 {
			return nil
		}
		rounds, err := st.EventRepo().SpellRounds(cmd.Context(), store.QueryOpts{Limit: recent})
		if err != nil {
			return fmt.Errorf("query rounds: %w", err)
		}
		fmt.Println()
		fmt.Println("Recent words")
		fmt.Println(strings.Repeat("─", 32))
		for _, r := range rounds {
			mark := "✓"
			if !r.Correct {
				mark = "✗"
			}
			fmt.Printf("%s  %s %-12s %-6s +%d\n",
				r.Timestamp.Local().Format("01-02 15:04"), mark, r.Word, r.Difficulty, r.Points)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("recent", "r", 0, "Also list the most recent spelling attempts")
}
