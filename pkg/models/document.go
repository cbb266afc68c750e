package models

// PageDimensions holds a page extent in PDF points.
type PageDimensions struct {
	Width  float64
	Height float64
}

// Metadata carries the optional document information fields a PDF may
// declare. Absent fields are empty strings.
type Metadata struct {
	Title    string
	Author   string
	Subject  string
	Creator  string
	Producer string
}

// Empty reports whether no metadata field is set.
func (m Metadata) Empty() bool {
	return m.Title == "" && m.Author == "" && m.Subject == "" &&
		m.Creator == "" && m.Producer == ""
}

// ConvertResult summarizes a finished conversion.
type ConvertResult struct {
	ArchivePath string
	PageCount   int
}
