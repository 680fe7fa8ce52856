package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/pismenka/internal/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change the letter font and size",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSettings(cmd, func(m *settings.Manager) error {
			printSettings(m)
			return nil
		})
	},
}

var settingsFontCmd = &cobra.Command{
	Use:   "font <name>",
	Short: "Pick a font by name (\"Georgia\", \"comic\")",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.ToLower(strings.Join(args, " "))
		return withSettings(cmd, func(m *settings.Manager) error {
			for _, f := range settings.FontOptions {
				if strings.Contains(strings.ToLower(f.Name), query) {
					m.SetFontFamily(f.Value)
					printSettings(m)
					return nil
				}
			}
			return fmt.Errorf("no font matches %q", query)
		})
	},
}

var settingsSizeCmd = &cobra.Command{
	Use:   "size <points|name>",
	Short: "Pick a letter size (16, 20, 24, 32, 40 or small..huge)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSettings(cmd, func(m *settings.Manager) error {
			for _, s := range settings.SizeOptions {
				if strconv.Itoa(s.Value) == args[0] || strings.EqualFold(s.Name, args[0]) {
					m.SetFontSize(s.Value)
					printSettings(m)
					return nil
				}
			}
			return fmt.Errorf("unknown size %q", args[0])
		})
	},
}

func withSettings(cmd *cobra.Command, fn func(*settings.Manager) error) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()
	return fn(settings.Load(preferences(st)))
}

func printSettings(m *settings.Manager) {
	size := settings.SizeOptions[m.SizeIndex()]
	fmt.Printf("Font: %s\n", m.Font().Name)
	fmt.Printf("Size: %s (%d)\n", size.Name, m.Settings().FontSize)
}

func init() {
	settingsCmd.AddCommand(settingsFontCmd)
	settingsCmd.AddCommand(settingsSizeCmd)
}
