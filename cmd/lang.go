package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pwalczyk/jobtrack/internal/settings"
)

var langCmd = &cobra.Command{
	Use:   "lang [code]",
	Short: "Show or set the interface language (en, de, pl)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := settings.NewService()
		if err != nil {
			return err
		}

		if len(args) == 0 {
			cfg, err := svc.Load()
			if err != nil {
				return err
			}
			fmt.Printf("Language: %s (supported: %s)\n", cfg.Language, strings.Join(settings.Languages, ", "))
			return nil
		}

		if err := svc.SetLanguage(args[0]); err != nil {
			return err
		}
		fmt.Printf("Language set to %s.\n", args[0])
		return nil
	},
}
