package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kmiyachi/pdf2cbz/internal/pdf"
)

var convertCmd = &cobra.Command{
	Use:   "convert <pdf_name>",
	Short: "Convert a PDF from the data directory into a CBZ archive",
	Long: `Convert renders every page of <data_dir>/<pdf_name> to a numbered JPEG,
packs the images into a stored zip archive and renames it to <stem>.cbz next
to the source file. Temporary page images are removed on completion.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		heightPx, _ := cmd.Flags().GetInt("height")
		limit, _ := cmd.Flags().GetInt("limit")

		converter := pdf.NewConverter(cfg.DataDir, cfg.JPEGQuality, log)
		result, err := converter.Convert(cmd.Context(), args[0], pdf.ConvertOptions{
			HeightPx: heightPx,
			Limit:    limit,
		})
		if err != nil {
			return err
		}

		fmt.Printf("✓ Completed: %s\n", result.ArchivePath)
		return nil
	},
}

func init() {
	// -h is taken by cobra's help flag, so the height shorthand is -H.
	convertCmd.Flags().IntP("height", "H", 0, "output image height in pixels (default: native page size)")
	convertCmd.Flags().IntP("limit", "l", 0, "convert only the first N pages (default: all pages)")

	rootCmd.AddCommand(convertCmd)
}
