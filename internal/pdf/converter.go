package pdf

import (
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/kmiyachi/pdf2cbz/internal/archive"
	"github.com/kmiyachi/pdf2cbz/pkg/logger"
	"github.com/kmiyachi/pdf2cbz/pkg/models"
)

// Converter turns PDFs under the data directory into CBZ archives.
type Converter struct {
	dataDir     string
	jpegQuality int
	logger      *logger.Logger
	progressOut io.Writer
}

// ConvertOptions control a single conversion. Zero values mean "native page
// size" and "all pages" respectively.
type ConvertOptions struct {
	HeightPx int
	Limit    int
}

func NewConverter(dataDir string, jpegQuality int, log *logger.Logger) *Converter {
	return &Converter{
		dataDir:     dataDir,
		jpegQuality: jpegQuality,
		logger:      log,
		progressOut: os.Stdout,
	}
}

// SetProgressOutput redirects the progress bars, used by tests to keep
// terminal control codes out of test output.
func (c *Converter) SetProgressOutput(w io.Writer) {
	c.progressOut = w
}

// Convert renders every page of <dataDir>/<pdfName> to a numbered JPEG in a
// temp directory named after the PDF stem, zips the images into <stem>.cbz
// and removes the temp directory. The returned result carries the archive
// path and the number of pages written.
func (c *Converter) Convert(ctx context.Context, pdfName string, opts ConvertOptions) (models.ConvertResult, error) {
	pdfPath := filepath.Join(c.dataDir, pdfName)
	stem := strings.TrimSuffix(pdfPath, filepath.Ext(pdfPath))

	tmpDir := stem
	if err := os.MkdirAll(tmpDir, 0755); err != nil {
		return models.ConvertResult{}, fmt.Errorf("failed to create temp directory: %w", err)
	}

	numPages, err := c.renderPages(ctx, pdfPath, tmpDir, opts)
	if err != nil {
		return models.ConvertResult{}, err
	}

	files, err := archive.ListImages(tmpDir)
	if err != nil {
		return models.ConvertResult{}, err
	}

	zipPath := stem + ".zip"
	bar := c.newBar(len(files), "Creating CBZ...")
	if err := archive.Write(zipPath, files, func() { _ = bar.Add(1) }); err != nil {
		return models.ConvertResult{}, err
	}

	cbzPath := stem + ".cbz"
	if err := archive.Finalize(zipPath, cbzPath); err != nil {
		return models.ConvertResult{}, err
	}

	for _, file := range files {
		if err := os.Remove(file); err != nil {
			return models.ConvertResult{}, fmt.Errorf("failed to remove temp file %s: %w", file, err)
		}
	}
	if err := os.Remove(tmpDir); err != nil {
		return models.ConvertResult{}, fmt.Errorf("failed to remove temp directory: %w", err)
	}

	c.logger.Debug("Wrote %d pages to %s", numPages, cbzPath)

	return models.ConvertResult{
		ArchivePath: cbzPath,
		PageCount:   numPages,
	}, nil
}

// renderPages writes one JPEG per page into tmpDir, named by 1-based page
// number zero-padded to three digits.
func (c *Converter) renderPages(ctx context.Context, pdfPath, tmpDir string, opts ConvertOptions) (int, error) {
	doc, err := Open(pdfPath)
	if err != nil {
		return 0, err
	}
	defer doc.Close()

	numPages := doc.PageCount()
	if opts.Limit > 0 && opts.Limit < numPages {
		numPages = opts.Limit
	}

	bar := c.newBar(numPages, "Converting pages...")

	// Page numbers are zero indexed in the fitz package.
	for pageNum := 0; pageNum < numPages; pageNum++ {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}

		dims, err := doc.PageSize(pageNum)
		if err != nil {
			return 0, err
		}

		scale := 1.0
		if opts.HeightPx > 0 {
			scale = float64(opts.HeightPx) / dims.Height
		}

		img, err := doc.RenderPage(pageNum, scale)
		if err != nil {
			return 0, err
		}

		imagePath := filepath.Join(tmpDir, fmt.Sprintf("%03d.jpg", pageNum+1))
		if err := c.saveJPEG(img, imagePath); err != nil {
			return 0, fmt.Errorf("failed to save image for page %d: %w", pageNum, err)
		}

		_ = bar.Add(1)
	}

	return numPages, nil
}

func (c *Converter) saveJPEG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return jpeg.Encode(f, img, &jpeg.Options{Quality: c.jpegQuality})
}

func (c *Converter) newBar(total int, description string) *progressbar.ProgressBar {
	out := c.progressOut
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(50),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(out)
		}),
	)
}
