package pdf_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kmiyachi/pdf2cbz/internal/pdf"
	"github.com/kmiyachi/pdf2cbz/internal/testutil"
)

var _ = Describe("Document", func() {
	var tempDir string

	BeforeEach(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "pdf2cbz-document-test-*")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(tempDir)
	})

	It("exposes page count and page sizes in points", func() {
		path := filepath.Join(tempDir, "doc.pdf")
		Expect(testutil.WritePDF(path, testutil.DocSpec{
			Pages: []testutil.PageSpec{
				{Width: 200, Height: 300},
				{Width: 400, Height: 500},
			},
		})).To(Succeed())

		doc, err := pdf.Open(path)
		Expect(err).NotTo(HaveOccurred())
		defer doc.Close()

		Expect(doc.PageCount()).To(Equal(2))

		dims, err := doc.PageSize(0)
		Expect(err).NotTo(HaveOccurred())
		Expect(dims.Width).To(BeNumerically("~", 200, 1))
		Expect(dims.Height).To(BeNumerically("~", 300, 1))

		dims, err = doc.PageSize(1)
		Expect(err).NotTo(HaveOccurred())
		Expect(dims.Width).To(BeNumerically("~", 400, 1))
		Expect(dims.Height).To(BeNumerically("~", 500, 1))
	})

	It("renders pages at the requested scale", func() {
		path := filepath.Join(tempDir, "doc.pdf")
		Expect(testutil.WritePDF(path, testutil.DocSpec{
			Pages: testutil.UniformPages(1, 200, 300),
		})).To(Succeed())

		doc, err := pdf.Open(path)
		Expect(err).NotTo(HaveOccurred())
		defer doc.Close()

		img, err := doc.RenderPage(0, 2.0)
		Expect(err).NotTo(HaveOccurred())
		Expect(img.Bounds().Dx()).To(BeNumerically("~", 400, 2))
		Expect(img.Bounds().Dy()).To(BeNumerically("~", 600, 2))
	})

	It("fails to open something that is not a PDF", func() {
		path := filepath.Join(tempDir, "junk.pdf")
		Expect(os.WriteFile(path, []byte("not a pdf"), 0644)).To(Succeed())

		_, err := pdf.Open(path)
		Expect(err).To(HaveOccurred())
	})
})
