// Package main is the entry point for the pdf2cbz CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kmiyachi/pdf2cbz/internal/config"
	"github.com/kmiyachi/pdf2cbz/pkg/logger"
)

var (
	cfg *config.Config
	log *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "pdf2cbz",
	Short: "Convert PDF documents into CBZ comic archives",
	Long: `pdf2cbz renders each page of a PDF to a numbered JPEG and packs the
images into a CBZ archive readable by comic viewers. It can also inspect a
PDF's metadata and report its averaged page dimensions.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		verbose, _ := cmd.Flags().GetBool("verbose")

		log = logger.New(logger.WithPrefix("[pdf2cbz] "))
		if verbose {
			log.SetLevel(logger.LevelDebug)
			log.Debug("Verbose logging enabled")
		}

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}

		log.Debug("Data directory: %s", cfg.DataDir)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "config.yaml", "path to config file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
