package scanner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kmiyachi/pdf2cbz/pkg/logger"
)

// PDFFile is one PDF found under the data directory.
type PDFFile struct {
	RelativePath string
	AbsolutePath string
	Size         int64
}

type DirectoryScanner struct {
	logger *logger.Logger
}

func New(log *logger.Logger) *DirectoryScanner {
	return &DirectoryScanner{logger: log}
}

// FindPDFs walks dir and returns every .pdf file beneath it, in walk order.
// An empty result is an error so callers never silently operate on nothing.
func (s *DirectoryScanner) FindPDFs(ctx context.Context, dir string) ([]PDFFile, error) {
	var pdfs []PDFFile

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			return fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if info.IsDir() {
			s.logger.Debug("Scanning directory: %s", path)
			return nil
		}

		if filepath.Ext(path) != ".pdf" {
			return nil
		}

		relPath, err := filepath.Rel(dir, path)
		if err != nil {
			relPath = path
		}

		pdfs = append(pdfs, PDFFile{
			RelativePath: relPath,
			AbsolutePath: path,
			Size:         info.Size(),
		})

		return nil
	})

	if err != nil {
		return nil, err
	}

	if len(pdfs) == 0 {
		return nil, fmt.Errorf("no PDF files found in %s or its subdirectories", dir)
	}

	return pdfs, nil
}
