package pdf_test

import (
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kmiyachi/pdf2cbz/internal/pdf"
	"github.com/kmiyachi/pdf2cbz/internal/stats"
	"github.com/kmiyachi/pdf2cbz/internal/testutil"
	"github.com/kmiyachi/pdf2cbz/pkg/logger"
)

func inspectorTestLogger() *logger.Logger {
	return logger.New(
		logger.WithOutput(GinkgoWriter),
		logger.WithPrefix("[inspector-test] "),
		logger.WithFlags(0),
	)
}

var _ = Describe("Inspector", func() {
	var (
		tempDir   string
		inspector *pdf.Inspector
	)

	BeforeEach(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "pdf2cbz-inspect-test-*")
		Expect(err).NotTo(HaveOccurred())

		inspector = pdf.NewInspector(inspectorTestLogger())
	})

	AfterEach(func() {
		os.RemoveAll(tempDir)
	})

	It("reads metadata fields from the document", func() {
		path := filepath.Join(tempDir, "meta.pdf")
		Expect(testutil.WritePDF(path, testutil.DocSpec{
			Pages:  testutil.UniformPages(2, 595.28, 841.89),
			Title:  "A Title",
			Author: "An Author",
		})).To(Succeed())

		report, err := inspector.Inspect(path)
		Expect(err).NotTo(HaveOccurred())

		Expect(report.Metadata.Title).To(Equal("A Title"))
		Expect(report.Metadata.Author).To(Equal("An Author"))
		Expect(report.Metadata.Subject).To(BeEmpty())
		Expect(report.PageCount).To(Equal(2))
	})

	It("reports no metadata when the document has none", func() {
		path := filepath.Join(tempDir, "bare.pdf")
		Expect(testutil.WritePDF(path, testutil.DocSpec{
			Pages: testutil.UniformPages(1, 200, 300),
		})).To(Succeed())

		report, err := inspector.Inspect(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(report.Metadata.Empty()).To(BeTrue())
	})

	It("averages raw dimensions for short documents", func() {
		path := filepath.Join(tempDir, "short.pdf")
		pages := testutil.UniformPages(3, 200, 300)
		pages = append(pages, testutil.PageSpec{Width: 200, Height: 900})
		Expect(testutil.WritePDF(path, testutil.DocSpec{Pages: pages})).To(Succeed())

		report, err := inspector.Inspect(path)
		Expect(err).NotTo(HaveOccurred())

		// 4 pages is below the filter threshold, so the tall page counts.
		Expect(report.PageCount).To(Equal(4))
		Expect(report.AvgWidth).To(BeNumerically("~", 200, 0.01))
		Expect(report.AvgHeight).To(BeNumerically("~", 450, 0.01))
	})

	It("filters outlier pages from long documents", func() {
		path := filepath.Join(tempDir, "long.pdf")
		pages := testutil.UniformPages(11, 595.28, 841.89)
		pages = append(pages, testutil.PageSpec{Width: 595.28, Height: 2000})
		Expect(testutil.WritePDF(path, testutil.DocSpec{Pages: pages})).To(Succeed())

		report, err := inspector.Inspect(path)
		Expect(err).NotTo(HaveOccurred())

		Expect(report.PageCount).To(Equal(12))
		Expect(report.AvgWidth).To(BeNumerically("~", 595.28, 0.01))
		Expect(report.AvgHeight).To(BeNumerically("~", 841.89, 0.01))

		heights := make([]float64, 0, len(pages))
		for _, p := range pages {
			heights = append(heights, p.Height)
		}
		rawMean := stats.Mean(heights)
		Expect(rawMean - report.AvgHeight).To(BeNumerically(">", 50))
	})

	It("fails on a missing file", func() {
		_, err := inspector.Inspect(filepath.Join(tempDir, "missing.pdf"))
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Report", func() {
	It("prints metadata fields only when present", func() {
		report := &pdf.Report{
			Path:      "/data/meta.pdf",
			PageCount: 3,
			AvgWidth:  200,
			AvgHeight: 300,
		}
		report.Metadata.Title = "A Title"

		var sb strings.Builder
		report.Write(&sb)
		out := sb.String()

		Expect(out).To(ContainSubstring("PDF Inspection: /data/meta.pdf"))
		Expect(out).To(ContainSubstring("Title: A Title"))
		Expect(out).NotTo(ContainSubstring("Author:"))
		Expect(out).To(ContainSubstring("Pages: 3"))
		Expect(out).To(ContainSubstring("Width: 200.00"))
		Expect(out).To(ContainSubstring("Height: 300.00"))
	})

	It("says none found without metadata", func() {
		report := &pdf.Report{Path: "/data/bare.pdf", PageCount: 1}

		var sb strings.Builder
		report.Write(&sb)

		Expect(sb.String()).To(ContainSubstring("Metadata: None found"))
	})
})
