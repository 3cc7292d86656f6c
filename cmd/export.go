package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pwalczyk/jobtrack/internal/transfer"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all applications to a JSON file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dbh, err := openDB()
		if err != nil {
			return err
		}
		defer dbh.Close()

		if exportOutput == "-" {
			return transfer.Export(dbh, os.Stdout)
		}
		if err := transfer.ExportToFile(dbh, exportOutput); err != nil {
			return err
		}
		fmt.Printf("Exported to %s.\n", exportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", transfer.DefaultExportName, "Output file ('-' for stdout)")
}
