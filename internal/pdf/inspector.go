package pdf

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/kmiyachi/pdf2cbz/internal/stats"
	"github.com/kmiyachi/pdf2cbz/pkg/logger"
	"github.com/kmiyachi/pdf2cbz/pkg/models"
)

// filterThreshold is the page count at which dimension averages switch to
// outlier-filtered samples. Short documents keep every page.
const filterThreshold = 10

// Inspector reports document metadata and averaged page dimensions.
type Inspector struct {
	logger *logger.Logger
}

// Report is the result of inspecting one document.
type Report struct {
	Path      string
	Metadata  models.Metadata
	PageCount int
	AvgWidth  float64
	AvgHeight float64
}

func NewInspector(log *logger.Logger) *Inspector {
	return &Inspector{logger: log}
}

// Inspect opens pdfPath, collects its metadata and per-page dimensions and
// returns the averaged report. Documents with filterThreshold or more pages
// have their width and height samples outlier-filtered independently before
// averaging.
func (i *Inspector) Inspect(pdfPath string) (*Report, error) {
	doc, err := Open(pdfPath)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	metadata := doc.Metadata()

	dims, err := api.PageDimsFile(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get page dimensions for %s: %w", pdfPath, err)
	}

	widths := make([]float64, 0, len(dims))
	heights := make([]float64, 0, len(dims))
	for _, dim := range dims {
		widths = append(widths, dim.Width)
		heights = append(heights, dim.Height)
	}

	pageCount := len(dims)
	if pageCount >= filterThreshold {
		widths = filteredOrRaw(widths)
		heights = filteredOrRaw(heights)
	}

	i.logger.Debug("Averaging %d width and %d height samples for %s", len(widths), len(heights), pdfPath)

	return &Report{
		Path:      pdfPath,
		Metadata:  metadata,
		PageCount: pageCount,
		AvgWidth:  stats.Mean(widths),
		AvgHeight: stats.Mean(heights),
	}, nil
}

// filteredOrRaw falls back to the unfiltered sample if the filter rejects
// every value, so the average never divides by zero.
func filteredOrRaw(sample []float64) []float64 {
	filtered := stats.FilterOutliers(sample)
	if len(filtered) == 0 {
		return sample
	}
	return filtered
}

// Write prints the report in its fixed text layout.
func (r *Report) Write(w io.Writer) {
	separator := strings.Repeat("=", 50)

	fmt.Fprintln(w)
	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "PDF Inspection: %s\n", r.Path)
	fmt.Fprintln(w, separator)

	if r.Metadata.Empty() {
		fmt.Fprintln(w, "\n📄 Metadata: None found")
	} else {
		fmt.Fprintln(w, "\n📄 Metadata:")
		writeField(w, "Title", r.Metadata.Title)
		writeField(w, "Author", r.Metadata.Author)
		writeField(w, "Subject", r.Metadata.Subject)
		writeField(w, "Creator", r.Metadata.Creator)
		writeField(w, "Producer", r.Metadata.Producer)
	}

	fmt.Fprintf(w, "\n📖 Pages: %d\n", r.PageCount)
	fmt.Fprintln(w, "📏 Size:")
	fmt.Fprintf(w, "  Width: %.2f\n", r.AvgWidth)
	fmt.Fprintf(w, "  Height: %.2f\n", r.AvgHeight)
	fmt.Fprintln(w, separator)
	fmt.Fprintln(w)
}

func writeField(w io.Writer, name, value string) {
	if value != "" {
		fmt.Fprintf(w, "  %s: %s\n", name, value)
	}
}
