package render

import (
	_ "embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"io"

	"github.com/enroute-travel/itinerary-api/internal/itinerary"
	"github.com/skip2/go-qrcode"
)

//go:embed document.html.tmpl
var documentHTML string

var htmlTemplate = template.Must(template.New("document").Funcs(template.FuncMap{
	"inr":  FormatINR,
	"inr2": FormatINRDecimal,
}).Parse(documentHTML))

type htmlView struct {
	Document
	Accent     template.CSS
	QRCode     template.URL
	GSTPercent int
}

// WriteHTML renders the printable page. The page opens the print dialog on load.
func WriteHTML(w io.Writer, doc Document) error {
	view := htmlView{
		Document:   doc,
		Accent:     template.CSS(doc.Theme.AccentColor),
		GSTPercent: itinerary.GSTPercent,
	}

	png, err := qrcode.Encode(doc.BookingCode, qrcode.Medium, 256)
	if err == nil {
		view.QRCode = template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png))
	}

	if err := htmlTemplate.Execute(w, view); err != nil {
		return fmt.Errorf("failed to render html: %w", err)
	}
	return nil
}
