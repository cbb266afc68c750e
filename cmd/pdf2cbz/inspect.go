package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kmiyachi/pdf2cbz/internal/pdf"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <pdf_path>",
	Short: "Report a PDF's metadata and averaged page dimensions",
	Long: `Inspect prints the document metadata and the average page width and
height in points. Documents with ten or more pages have outlier pages
(covers, fold-outs) excluded from the average using the interquartile-range
method.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inspector := pdf.NewInspector(log)
		report, err := inspector.Inspect(args[0])
		if err != nil {
			return err
		}

		report.Write(os.Stdout)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
