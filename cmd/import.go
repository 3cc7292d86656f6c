package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pwalczyk/jobtrack/internal/i18n"
	"github.com/pwalczyk/jobtrack/internal/notify"
	"github.com/pwalczyk/jobtrack/internal/transfer"
	"github.com/pwalczyk/jobtrack/internal/ui"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import applications from a JSON export",
	Long: `Records whose creation timestamp already exists ask per record
whether to overwrite. A malformed file aborts before anything is written.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if !strings.HasSuffix(strings.ToLower(path), ".json") {
			return fmt.Errorf("only .json files are accepted")
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		dbh, err := openDB()
		if err != nil {
			return err
		}
		defer dbh.Close()

		res, err := transfer.Import(dbh, f, ui.NewTermPrompter())
		lang := loadSettings().Language
		summary := fmt.Sprintf(i18n.T(lang, "import.summary"), res.Imported, res.Skipped)
		if err != nil {
			// writes already issued stay written; report how far we got
			return fmt.Errorf("%s: %w", summary, err)
		}

		fmt.Println(summary)
		_ = notify.Done(summary)
		return nil
	},
}
