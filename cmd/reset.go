package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete recorded games",
	Long:  "Delete recorded games and LLM requests. With --all, stored letters, words, settings and custom pictures are removed too.",
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return errors.New("this deletes data; run again with --yes to confirm")
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Reset(cmd.Context(), all); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
		logger.Info().Bool("all", all).Msg("data reset")
		fmt.Println("Done.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("all", false, "Also remove preferences and custom pictures")
	resetCmd.Flags().BoolP("yes", "y", false, "Confirm the reset")
}
