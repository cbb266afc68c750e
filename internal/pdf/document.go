package pdf

import (
	"fmt"
	"image"

	"github.com/gen2brain/go-fitz"

	"github.com/kmiyachi/pdf2cbz/pkg/models"
)

// baseDPI is the PDF point resolution; rendering at baseDPI*scale makes the
// output pixel height equal the page point height times scale.
const baseDPI = 72.0

// Document wraps an open go-fitz handle. Callers must Close it.
type Document struct {
	doc  *fitz.Document
	path string
}

func Open(path string) (*Document, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF %s: %w", path, err)
	}
	return &Document{doc: doc, path: path}, nil
}

func (d *Document) Close() error {
	return d.doc.Close()
}

func (d *Document) Path() string {
	return d.path
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return d.doc.NumPage()
}

// PageSize returns the extent of a zero-indexed page in points.
func (d *Document) PageSize(pageNum int) (models.PageDimensions, error) {
	bounds, err := d.doc.Bound(pageNum)
	if err != nil {
		return models.PageDimensions{}, fmt.Errorf("failed to get bounds for page %d: %w", pageNum, err)
	}
	return models.PageDimensions{
		Width:  float64(bounds.Dx()),
		Height: float64(bounds.Dy()),
	}, nil
}

// RenderPage rasterizes a zero-indexed page at the given uniform scale
// factor, where scale 1.0 maps one point to one pixel.
func (d *Document) RenderPage(pageNum int, scale float64) (image.Image, error) {
	img, err := d.doc.ImageDPI(pageNum, baseDPI*scale)
	if err != nil {
		return nil, fmt.Errorf("failed to render page %d: %w", pageNum, err)
	}
	return img, nil
}

// Metadata returns the document information fields, empty where unset.
func (d *Document) Metadata() models.Metadata {
	meta := d.doc.Metadata()
	return models.Metadata{
		Title:    meta["title"],
		Author:   meta["author"],
		Subject:  meta["subject"],
		Creator:  meta["creator"],
		Producer: meta["producer"],
	}
}
