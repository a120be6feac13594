// Package pdf writes PDF 1.4 documents from rendered page content streams.
// It covers exactly what tabular reports need: fixed-size pages, a regular
// and a bold Type1 font, optional stream compression, and a metadata Info
// dictionary.
package pdf

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"strings"
	"time"
)

// PDF constants for document generation.
const (
	// Version is the PDF specification version used.
	Version = "1.4"

	// Producer is the producer string embedded in PDF metadata.
	Producer = "Inkwell Report Engine"
)

// PageSize is a page's dimensions in points (1 point = 1/72 inch).
type PageSize struct {
	Width, Height float64
}

// Standard page sizes.
var (
	// A4 is ISO A4 size (210 x 297 mm).
	A4 = PageSize{595.276, 841.890}
	// Letter is US Letter size (8.5 x 11 inches).
	Letter = PageSize{612, 792}
	// A5 is ISO A5 size (148 x 210 mm).
	A5 = PageSize{419.528, 595.276}
)

// SizeByName resolves a page size name ("a4", "letter", "a5") to its
// dimensions. Unknown names fall back to A4.
func SizeByName(name string) PageSize {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "letter":
		return Letter
	case "a5":
		return A5
	default:
		return A4
	}
}

// Metadata is embedded in the document's Info dictionary.
type Metadata struct {
	Title    string
	Author   string
	Subject  string
	Keywords []string

	// Creator identifies the generating application, e.g. a version string.
	Creator string
}

// Document accumulates pages and builds a complete PDF file.
type Document struct {
	size     PageSize
	compress bool
	meta     Metadata

	objects []string
	pages   []int

	// now is stubbed in tests for a stable CreationDate.
	now func() time.Time
}

// Reserved object slots preceding page and stream objects:
// 1 catalog, 2 page tree, 3 regular font, 4 bold font.
const reservedObjects = 4

// NewDocument creates a document with the given page size.
// Compression applies zlib FlateDecode to every content stream.
func NewDocument(size PageSize, compress bool) *Document {
	return &Document{
		size:     size,
		compress: compress,
		now:      time.Now,
	}
}

// SetMetadata sets the Info dictionary fields.
func (d *Document) SetMetadata(meta Metadata) {
	d.meta = meta
}

// PageCount returns the number of pages added so far.
func (d *Document) PageCount() int {
	return len(d.pages)
}

// Size returns the document's page size.
func (d *Document) Size() PageSize {
	return d.size
}

// addObject adds an object and returns its object number relative to the
// start of the dynamic object list.
func (d *Document) addObject(content string) int {
	d.objects = append(d.objects, content)
	return len(d.objects)
}

// AddPage appends a page whose appearance is the given content stream.
func (d *Document) AddPage(content string) {
	var streamData []byte
	var filter string

	if d.compress {
		var buf bytes.Buffer
		w := zlib.NewWriter(&buf)
		w.Write([]byte(content))
		w.Close()
		streamData = buf.Bytes()
		filter = "/Filter /FlateDecode\n"
	} else {
		streamData = []byte(content)
	}

	streamObj := fmt.Sprintf("<< /Length %d\n%s>>\nstream\n%sendstream",
		len(streamData), filter, streamData)
	streamObjNum := d.addObject(streamObj)

	// Content references use final object numbers, so shift past the
	// reserved slots like the Kids array does.
	pageObj := fmt.Sprintf("<< /Type /Page\n/Parent 2 0 R\n/MediaBox [0 0 %.2f %.2f]\n/Contents %d 0 R\n/Resources << /Font << /F1 3 0 R /F2 4 0 R >> >>\n>>",
		d.size.Width, d.size.Height, streamObjNum+reservedObjects)
	pageObjNum := d.addObject(pageObj)

	d.pages = append(d.pages, pageObjNum)
}

// Bytes generates the complete PDF file.
func (d *Document) Bytes() []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("%%PDF-%s\n", Version))
	buf.WriteString("%\xE2\xE3\xCF\xD3\n") // Binary marker

	// Build page tree kids array. Dynamic object numbers shift past the
	// reserved slots.
	var kids strings.Builder
	kids.WriteString("[")
	for i, pageNum := range d.pages {
		if i > 0 {
			kids.WriteString(" ")
		}
		kids.WriteString(fmt.Sprintf("%d 0 R", pageNum+reservedObjects))
	}
	kids.WriteString("]")

	finalObjects := make([]string, 0, reservedObjects+len(d.objects)+1)

	// Object 1: Catalog
	finalObjects = append(finalObjects, "<< /Type /Catalog\n/Pages 2 0 R\n>>")

	// Object 2: Pages
	finalObjects = append(finalObjects, fmt.Sprintf("<< /Type /Pages\n/Kids %s\n/Count %d\n>>",
		kids.String(), len(d.pages)))

	// Objects 3 and 4: regular and bold fonts
	finalObjects = append(finalObjects,
		"<< /Type /Font\n/Subtype /Type1\n/BaseFont /Helvetica\n/Encoding /WinAnsiEncoding\n>>",
		"<< /Type /Font\n/Subtype /Type1\n/BaseFont /Helvetica-Bold\n/Encoding /WinAnsiEncoding\n>>")

	finalObjects = append(finalObjects, d.objects...)

	infoObj := d.buildInfoDict()
	finalObjects = append(finalObjects, infoObj)
	infoObjNum := len(finalObjects)

	// Write all objects and track xref positions.
	xref := make([]int, len(finalObjects)+1)
	xref[0] = 0 // Object 0 is always free

	for i, obj := range finalObjects {
		xref[i+1] = buf.Len()
		buf.WriteString(fmt.Sprintf("%d 0 obj\n%s\nendobj\n", i+1, obj))
	}

	xrefPos := buf.Len()
	buf.WriteString("xref\n")
	buf.WriteString(fmt.Sprintf("0 %d\n", len(finalObjects)+1))
	buf.WriteString("0000000000 65535 f \n")
	for i := 1; i <= len(finalObjects); i++ {
		buf.WriteString(fmt.Sprintf("%010d 00000 n \n", xref[i]))
	}

	buf.WriteString("trailer\n")
	buf.WriteString(fmt.Sprintf("<< /Size %d\n/Root 1 0 R\n", len(finalObjects)+1))
	buf.WriteString(fmt.Sprintf("/Info %d 0 R\n", infoObjNum))
	buf.WriteString(">>\n")
	buf.WriteString("startxref\n")
	buf.WriteString(fmt.Sprintf("%d\n", xrefPos))
	buf.WriteString("%%EOF\n")

	return buf.Bytes()
}

// buildInfoDict creates the PDF Info dictionary.
func (d *Document) buildInfoDict() string {
	var sb strings.Builder
	sb.WriteString("<<\n")

	if d.meta.Title != "" {
		sb.WriteString(fmt.Sprintf("/Title (%s)\n", EscapeString(d.meta.Title)))
	}
	if d.meta.Author != "" {
		sb.WriteString(fmt.Sprintf("/Author (%s)\n", EscapeString(d.meta.Author)))
	}
	if d.meta.Subject != "" {
		sb.WriteString(fmt.Sprintf("/Subject (%s)\n", EscapeString(d.meta.Subject)))
	}
	if len(d.meta.Keywords) > 0 {
		sb.WriteString(fmt.Sprintf("/Keywords (%s)\n", EscapeString(strings.Join(d.meta.Keywords, ", "))))
	}

	sb.WriteString(fmt.Sprintf("/Producer (%s)\n", EscapeString(Producer)))
	if d.meta.Creator != "" {
		sb.WriteString(fmt.Sprintf("/Creator (%s)\n", EscapeString(d.meta.Creator)))
	}

	// Creation date in PDF date format: D:YYYYMMDDHHmmSS
	dateStr := d.now().UTC().Format("D:20060102150405Z")
	sb.WriteString(fmt.Sprintf("/CreationDate (%s)\n", dateStr))
	sb.WriteString(fmt.Sprintf("/ModDate (%s)\n", dateStr))

	sb.WriteString(">>")
	return sb.String()
}

// EscapeString escapes special characters for PDF literal strings.
func EscapeString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "(", "\\(")
	s = strings.ReplaceAll(s, ")", "\\)")
	return s
}
