// Package testutil generates minimal but valid PDF files so tests can
// exercise the real rendering and parsing engines without binary fixtures
// checked into the repo.
package testutil

import (
	"bytes"
	"fmt"
	"os"
	"strings"
)

// PageSpec is one page's MediaBox extent in points.
type PageSpec struct {
	Width  float64
	Height float64
}

// DocSpec describes a fixture document: its pages and optional info fields.
type DocSpec struct {
	Pages    []PageSpec
	Title    string
	Author   string
	Subject  string
	Creator  string
	Producer string
}

// UniformPages returns n identical page specs.
func UniformPages(n int, width, height float64) []PageSpec {
	pages := make([]PageSpec, n)
	for i := range pages {
		pages[i] = PageSpec{Width: width, Height: height}
	}
	return pages
}

// WritePDF writes a syntactically complete PDF (header, objects, xref,
// trailer) to path. Pages carry only a MediaBox; they render blank, which
// is all the dimension and pipeline tests need.
func WritePDF(path string, spec DocSpec) error {
	var buf bytes.Buffer
	offsets := []int{0} // object 0 is the free-list head

	buf.WriteString("%PDF-1.4\n")

	writeObj := func(body string) {
		offsets = append(offsets, buf.Len())
		num := len(offsets) - 1
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", num, body)
	}

	writeObj("<< /Type /Catalog /Pages 2 0 R >>")

	kids := make([]string, len(spec.Pages))
	for i := range spec.Pages {
		kids[i] = fmt.Sprintf("%d 0 R", 3+i)
	}
	writeObj(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>",
		strings.Join(kids, " "), len(spec.Pages)))

	for _, page := range spec.Pages {
		writeObj(fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %.2f %.2f] >>",
			page.Width, page.Height))
	}

	infoNum := 0
	if info := infoDict(spec); info != "" {
		writeObj(info)
		infoNum = len(offsets) - 1
	}

	xrefStart := buf.Len()
	size := len(offsets)
	fmt.Fprintf(&buf, "xref\n0 %d\n", size)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets[1:] {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}

	buf.WriteString("trailer\n")
	if infoNum > 0 {
		fmt.Fprintf(&buf, "<< /Size %d /Root 1 0 R /Info %d 0 R >>\n", size, infoNum)
	} else {
		fmt.Fprintf(&buf, "<< /Size %d /Root 1 0 R >>\n", size)
	}
	fmt.Fprintf(&buf, "startxref\n%d\n%%%%EOF\n", xrefStart)

	return os.WriteFile(path, buf.Bytes(), 0644)
}

func infoDict(spec DocSpec) string {
	var fields []string
	add := func(key, value string) {
		if value != "" {
			fields = append(fields, fmt.Sprintf("/%s (%s)", key, value))
		}
	}
	add("Title", spec.Title)
	add("Author", spec.Author)
	add("Subject", spec.Subject)
	add("Creator", spec.Creator)
	add("Producer", spec.Producer)

	if len(fields) == 0 {
		return ""
	}
	return "<< " + strings.Join(fields, " ") + " >>"
}
