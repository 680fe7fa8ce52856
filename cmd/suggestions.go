package cmd

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/pismenka/internal/llm"
	"github.com/abhisek/pismenka/internal/store"
	"github.com/abhisek/pismenka/internal/thinggen"
	"github.com/abhisek/pismenka/internal/things"
)

var thingsHistoryCmd = &cobra.Command{
	Use:   "history [request]",
	Short: "Show past picture suggestions and which of them were kept",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if len(args) == 1 {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid request %q: %w", args[0], err)
			}
			prompt, _ := cmd.Flags().GetBool("prompt")
			return showSuggestion(cmd, st, id, prompt)
		}

		limit, _ := cmd.Flags().GetInt("limit")
		history, err := st.Suggestions(cmd.Context(), llm.PurposeThings, sourceLLM, limit)
		if err != nil {
			return err
		}
		if len(history) == 0 {
			fmt.Println("No pictures suggested yet. Try \"pismenka things suggest\".")
			return nil
		}

		fmt.Printf("%-5s  %-16s  %-24s  %9s  %5s  %7s\n", "#", "When", "Model", "Suggested", "Kept", "Tokens")
		fmt.Println(strings.Repeat("─", 74))
		var suggested, kept int
		for _, s := range history {
			r := s.Request
			got := "failed"
			if r.Success {
				n := len(decodeSuggestions(r))
				suggested += n
				got = strconv.Itoa(n)
			}
			kept += len(s.Saved)
			fmt.Printf("%-5d  %-16s  %-24s  %9s  %5d  %7d\n",
				r.ID,
				r.Timestamp.Local().Format("2006-01-02 15:04"),
				truncate(r.Model, 24),
				got,
				len(s.Saved),
				r.InputTokens+r.OutputTokens,
			)
		}
		fmt.Println(strings.Repeat("─", 74))
		fmt.Printf("%d of %d suggested pictures are in the catalog.\n", kept, suggested)
		return nil
	},
}

// showSuggestion prints one request with every suggestion marked kept or
// dropped.
func showSuggestion(cmd *cobra.Command, st *store.Store, id int, prompt bool) error {
	history, err := st.Suggestions(cmd.Context(), llm.PurposeThings, sourceLLM, 0)
	if err != nil {
		return err
	}
	i := slices.IndexFunc(history, func(s store.Suggestion) bool { return s.Request.ID == id })
	if i < 0 {
		return fmt.Errorf("no picture request #%d", id)
	}
	s := history[i]
	r := s.Request

	fmt.Printf("Request #%d  %s\n", r.ID, r.Timestamp.Local().Format("2006-01-02 15:04:05"))
	fmt.Printf("Model:   %s (%s)\n", r.Model, r.Provider)
	fmt.Printf("Tokens:  %d in / %d out, %dms", r.InputTokens, r.OutputTokens, r.LatencyMs)
	if c := llm.LookupCost(r.Model); c != nil {
		fmt.Printf(", %s", formatCost(c.Cost(r.InputTokens, r.OutputTokens)))
	}
	fmt.Println()

	if !r.Success {
		fmt.Printf("\nThe request failed: %s\n", r.ErrorMessage)
	}

	saved := make(map[string]bool, len(s.Saved))
	for _, t := range s.Saved {
		saved[t.Word] = true
	}
	if suggestions := decodeSuggestions(r); len(suggestions) > 0 {
		fmt.Println()
		for _, t := range suggestions {
			mark := "·"
			if saved[t.Word] {
				mark = "✓"
			}
			fmt.Printf("  %s %s %-12s %s\n", mark, t.Emoji, t.Word, t.Difficulty)
		}
		fmt.Println("\n✓ kept in the catalog  · dropped or removed since")
	}

	if prompt {
		fmt.Println()
		fmt.Println(strings.Repeat("─", 60))
		fmt.Println(r.RequestBody)
	}
	return nil
}

// decodeSuggestions reads the pictures out of a logged reply. Replies that
// no longer parse count as empty.
func decodeSuggestions(r store.LLMRequestEvent) []things.Thing {
	if r.ResponseBody == "" {
		return nil
	}
	suggestions, err := thinggen.Suggestions(r.ResponseBody, things.Easy)
	if err != nil {
		logger.Debug().Err(err).Int("request", r.ID).Msg("undecodable suggestion reply")
		return nil
	}
	return suggestions
}

var thingsCostCmd = &cobra.Command{
	Use:   "cost",
	Short: "Show tokens spent on picture suggestions and their estimated price",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		usage, err := st.EventRepo().LLMUsageByModel(cmd.Context())
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		if len(usage) == 0 {
			fmt.Println("Nothing spent yet.")
			return nil
		}

		fmt.Printf("%-28s  %5s  %9s  %9s  %9s\n", "Model", "Calls", "In", "Out", "USD")
		fmt.Println(strings.Repeat("─", 68))
		var total float64
		var unpriced []string
		for _, u := range usage {
			price := "?"
			if c := llm.LookupCost(u.Model); c != nil {
				cost := c.Cost(u.InputTokens, u.OutputTokens)
				total += cost
				price = formatCost(cost)
			} else {
				unpriced = append(unpriced, u.Model)
			}
			fmt.Printf("%-28s  %5d  %9d  %9d  %9s\n", truncate(u.Model, 28), u.Calls, u.InputTokens, u.OutputTokens, price)
		}
		fmt.Println(strings.Repeat("─", 68))
		fmt.Printf("%-28s  %5s  %9s  %9s  %9s\n", "Total", "", "", "", formatCost(total))
		if len(unpriced) > 0 {
			fmt.Printf("\nNo price known for %s; the total leaves them out.\n", strings.Join(unpriced, ", "))
		}
		return nil
	},
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	thingsHistoryCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
	thingsHistoryCmd.Flags().Bool("prompt", false, "Also print the prompt sent for a request")

	thingsCmd.AddCommand(thingsHistoryCmd)
	thingsCmd.AddCommand(thingsCostCmd)
}
