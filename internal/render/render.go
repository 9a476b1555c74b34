package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

type Format string

const (
	FormatHTML Format = "html"
	FormatPDF  Format = "pdf"
	FormatJSON Format = "json"
)

var ErrUnknownFormat = errors.New("unknown document format")

func (f Format) ContentType() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	case FormatJSON:
		return "application/json"
	}
	return "text/html; charset=utf-8"
}

// Write renders doc in the requested format. An empty format means HTML.
func Write(w io.Writer, doc Document, format Format) error {
	switch format {
	case FormatHTML, "":
		return WriteHTML(w, doc)
	case FormatPDF:
		return WritePDF(w, doc)
	case FormatJSON:
		return json.NewEncoder(w).Encode(doc)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}
