package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kmiyachi/pdf2cbz/internal/scanner"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the PDF files available in the data directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		dirScanner := scanner.New(log)
		pdfs, err := dirScanner.FindPDFs(cmd.Context(), cfg.DataDir)
		if err != nil {
			return err
		}

		for _, p := range pdfs {
			fmt.Printf("%s (%d bytes)\n", p.RelativePath, p.Size)
		}
		fmt.Printf("%d PDF(s) in %s\n", len(pdfs), cfg.DataDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
