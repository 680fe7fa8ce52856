package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/pismenka/internal/llm"
	"github.com/abhisek/pismenka/internal/store"
	"github.com/abhisek/pismenka/internal/thinggen"
	"github.com/abhisek/pismenka/internal/things"
)

// Sources recorded with custom things.
const (
	sourceManual = "manual"
	sourceLLM    = "llm"
)

var thingsCmd = &cobra.Command{
	Use:   "things",
	Short: "Manage the pictures for the spelling game",
}

var thingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every picture and its word",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		custom, err := customThings(cmd.Context(), st.ThingRepo())
		if err != nil {
			return err
		}
		catalog, err := things.NewCatalog(custom...)
		if err != nil {
			return err
		}

		for _, d := range things.Difficulties {
			list := catalog.ByDifficulty(d)
			fmt.Printf("%s (%d)\n", strings.ToUpper(d.String()), len(list))
			for _, t := range list {
				fmt.Printf("  %s  %s\n", t.Emoji, t.Word)
			}
		}
		return nil
	},
}

var thingsAddCmd = &cobra.Command{
	Use:   "add <word> <emoji>",
	Short: "Add or replace a picture",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := difficultyFlag(cmd)
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		err = st.ThingRepo().Save(cmd.Context(), store.CustomThing{
			Word:       strings.ToLower(args[0]),
			Emoji:      args[1],
			Difficulty: d.String(),
			Source:     sourceManual,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Added %s %s (%s)\n", args[1], args[0], d)
		return nil
	},
}

var thingsRemoveCmd = &cobra.Command{
	Use:   "rm <word>",
	Short: "Remove a custom picture",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		return st.ThingRepo().Delete(cmd.Context(), args[0])
	},
}

var thingsSuggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Ask an LLM for new pictures made of the active letters",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		d, err := difficultyFlag(cmd)
		if err != nil {
			return err
		}
		count, _ := cmd.Flags().GetInt("count")
		anyLetters, _ := cmd.Flags().GetBool("any-letters")
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		llmCfg := cfg.LLM
		if !llmCfg.HasKey() {
			discovered, ok := llm.DiscoverConfig()
			if !ok {
				return errors.New("no LLM provider configured: set PISMENKA_LLM_PROVIDER and its API key")
			}
			llmCfg = discovered
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		provider, err := llm.NewProvider(ctx, llmCfg, st.EventRepo(), logger)
		if err != nil {
			return fmt.Errorf("create LLM provider: %w", err)
		}

		custom, err := customThings(ctx, st.ThingRepo())
		if err != nil {
			return err
		}
		catalog, err := things.NewCatalog(custom...)
		if err != nil {
			return err
		}

		input := thinggen.Input{Difficulty: d, Count: count}
		for _, t := range catalog.All() {
			input.Exclude = append(input.Exclude, t.Word)
		}
		if !anyLetters {
			input.Letters = loadPool(st).Active()
			if len(input.Letters) == 0 {
				return errors.New("no letters selected: run \"pismenka letters all\" or pass --any-letters")
			}
		}

		res, err := thinggen.New(provider, thinggen.DefaultConfig(), logger).Generate(ctx, input)
		if err != nil {
			return err
		}

		for _, r := range res.Rejected {
			fmt.Printf("  ✗ %s %s: %s\n", r.Thing.Emoji, r.Thing.Word, r.Err.Message)
		}
		for _, t := range res.Things {
			fmt.Printf("  ✓ %s %s (%s)\n", t.Emoji, t.Word, t.Difficulty)
			if dryRun {
				continue
			}
			err := st.ThingRepo().Save(ctx, store.CustomThing{
				Word:       t.Word,
				Emoji:      t.Emoji,
				Difficulty: t.Difficulty.String(),
				Source:     sourceLLM,
			})
			if err != nil {
				return err
			}
		}

		switch {
		case len(res.Things) == 0:
			fmt.Println("No new pictures this time.")
		case dryRun:
			fmt.Printf("%d suggestions (not saved).\n", len(res.Things))
		default:
			fmt.Printf("Saved %d new pictures.\n", len(res.Things))
		}
		return nil
	},
}

func difficultyFlag(cmd *cobra.Command) (things.Difficulty, error) {
	s, _ := cmd.Flags().GetString("difficulty")
	return things.ParseDifficulty(s)
}

func init() {
	for _, c := range []*cobra.Command{thingsAddCmd, thingsSuggestCmd} {
		c.Flags().StringP("difficulty", "d", "easy", "easy, medium or hard")
	}
	thingsSuggestCmd.Flags().IntP("count", "n", thinggen.DefaultConfig().DefaultCount, "Number of suggestions")
	thingsSuggestCmd.Flags().Bool("any-letters", false, "Do not restrict words to the active letters")
	thingsSuggestCmd.Flags().Bool("dry-run", false, "Show suggestions without saving them")

	thingsCmd.AddCommand(thingsListCmd)
	thingsCmd.AddCommand(thingsAddCmd)
	thingsCmd.AddCommand(thingsRemoveCmd)
	thingsCmd.AddCommand(thingsSuggestCmd)
}
