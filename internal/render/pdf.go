package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/enroute-travel/itinerary-api/internal/itinerary"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

// WritePDF renders the itinerary as an A4 PDF. Core fonts have no rupee
// glyph, so amounts are printed with "Rs.".
func WritePDF(w io.Writer, doc Document) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	r, g, b := doc.Theme.RGB()

	pdf.SetTitle("Travel Itinerary "+doc.BookingCode, true)
	pdf.SetAuthor(doc.Theme.DisplayName, true)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Thank you for choosing %s. Page %d", doc.Theme.DisplayName, pdf.PageNo())), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	png, err := qrcode.Encode(doc.BookingCode, qrcode.Medium, 256)
	if err == nil {
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("qr", opts, bytes.NewReader(png))
		pdf.ImageOptions("qr", 170, 10, 28, 28, false, opts, 0, "")
	}

	heading := func(text string, size float64) {
		pdf.SetFont("Arial", "B", size)
		pdf.SetTextColor(r, g, b)
		pdf.CellFormat(0, size/2+2, tr(text), "", 1, "L", false, 0, "")
		pdf.SetTextColor(40, 40, 40)
	}
	line := func(text string) {
		pdf.SetFont("Arial", "", 11)
		pdf.MultiCell(0, 6, tr(text), "", "L", false)
	}
	bullets := func(items []string) {
		for _, it := range items {
			line("- " + it)
		}
	}

	heading("Travel Itinerary", 22)
	if doc.ClientName != "" {
		line("Prepared for: " + doc.ClientName)
	}
	if doc.PackageType != "" || doc.Location != "" {
		line(doc.PackageType + "  " + doc.Location)
	}
	line("Booking Code: " + doc.BookingCode)
	guests := "Guests:"
	for i, gc := range doc.Guests {
		if i > 0 {
			guests += ","
		}
		guests += fmt.Sprintf(" %s: %d", gc.Label, gc.Count)
	}
	line(guests)
	pdf.SetDrawColor(r, g, b)
	pdf.Line(10, pdf.GetY()+2, 200, pdf.GetY()+2)
	pdf.Ln(6)

	if len(doc.Days) == 0 {
		line("No days planned")
	}
	for _, day := range doc.Days {
		title := fmt.Sprintf("Day %d", day.Number)
		if day.Header != "" {
			title += ": " + day.Header
		}
		heading(title, 14)
		if day.Date != "" {
			line(day.Date)
		}
		line(day.Activities)
		line("Meal Plan: " + day.MealPlan)
		pdf.Ln(3)
	}

	heading("Package Details", 16)
	heading("Inclusions", 12)
	bullets(doc.Inclusions)
	heading("Exclusions", 12)
	bullets(doc.Exclusions)
	pdf.Ln(3)

	heading("Financial Details", 16)
	line("Per Person Charges:")
	for _, c := range doc.Charges {
		line(fmt.Sprintf("%s: %d x Rs. %s = Rs. %s", c.Label, c.Count, FormatINR(c.CostPerHead), FormatINR(c.Subtotal)))
	}
	line("Package Amount: Rs. " + FormatINR(doc.PackageAmount))
	if doc.IncludeGST {
		line(fmt.Sprintf("GST (%d%%): Rs. %s", itinerary.GSTPercent, FormatINRDecimal(doc.GSTAmount)))
	}
	pdf.SetFont("Arial", "B", 13)
	pdf.SetTextColor(r, g, b)
	pdf.CellFormat(0, 8, "Total Amount: Rs. "+FormatINRDecimal(doc.TotalAmount), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	heading("Terms & Conditions", 16)
	bullets(doc.Terms)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render pdf: %w", err)
	}
	return nil
}
