package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"rushed/models"
)

// SummaryData is everything the trip-summary PDF needs: the criteria and
// whichever selections exist. Absent categories are simply omitted.
type SummaryData struct {
	Criteria  models.TripCriteria
	Flight    *models.FlightItinerary
	Hotel     *models.Hotel
	Car       *models.CarRental
	TripTotal models.Price
}

// GenerateSummaryPDF renders the current selections and trip total as a
// PDF and returns raw bytes (no filesystem needed).
func GenerateSummaryPDF(data SummaryData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// ── Header Bar ───────────────────────────────────────────
	pdf.SetFillColor(13, 24, 37)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "Rushed", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(212, 168, 67)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, "Trip Summary", "", 1, "L", false, 0, "")

	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	// ── Disclaimer ───────────────────────────────────────────
	pdf.SetFillColor(255, 248, 225)
	pdf.SetDrawColor(212, 168, 67)
	pdf.SetTextColor(130, 90, 20)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetLineWidth(0.4)
	y := pdf.GetY()
	pdf.Rect(20, y, 170, 12, "FD")
	pdf.SetXY(23, y+2)
	pdf.MultiCell(164, 4,
		"This is NOT a booking confirmation. Complete each booking with the external provider. Prices are subject to change.",
		"", "C", false)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.2)
	pdf.Ln(6)

	// ── Section Helpers ──────────────────────────────────────
	sectionHeader := func(title string) {
		pdf.SetFillColor(13, 24, 37)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+title, "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(55, 7, label, "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(115, 7, value, "", 1, "L", false, 0, "")
	}

	// ── Trip Overview ─────────────────────────────────────────
	sectionHeader("Trip Overview")
	if data.Criteria.Origin != nil && data.Criteria.Destination != nil {
		route := fmt.Sprintf("%s → %s", data.Criteria.Origin.IATA, data.Criteria.Destination.IATA)
		if data.Criteria.ReturnDate != "" {
			route += fmt.Sprintf(" → %s", data.Criteria.Origin.IATA)
		}
		row("Route", route)
	}
	if data.Criteria.DepartureDate != "" {
		row("Departure", fmtDateReadable(data.Criteria.DepartureDate))
	}
	if data.Criteria.ReturnDate != "" {
		row("Return", fmtDateReadable(data.Criteria.ReturnDate))
	}
	row("Travelers", fmt.Sprintf("%d adult(s), %s", data.Criteria.Adults,
		strings.ReplaceAll(string(data.Criteria.CabinClass), "_", " ")))
	row("Generated", time.Now().Format("02 Jan 2006, 15:04 UTC"))
	pdf.Ln(4)

	// ── Selected Flight ───────────────────────────────────────
	if f := data.Flight; f != nil {
		sectionHeader("Selected Flight")
		row("Airlines", strings.Join(f.Airlines, ", "))
		if len(f.Outbound) > 0 {
			row("Outbound", formatLegRange(f.Outbound))
		}
		if len(f.Inbound) > 0 {
			row("Return", formatLegRange(f.Inbound))
		}
		row("Total duration", formatDurationMin(f.TotalDurationMinutes))
		row("Price", f.Price.Formatted)
		pdf.Ln(4)
	}

	// ── Selected Hotel ────────────────────────────────────────
	if h := data.Hotel; h != nil {
		sectionHeader("Selected Hotel")
		row("Hotel", h.Name)
		if h.Address != "" {
			row("Address", h.Address)
		}
		row("Rating", fmt.Sprintf("%.1f / 5.0 (%d stars)", h.Rating, h.Stars))
		row("Price", h.Price.Formatted+" per night")
		pdf.Ln(4)
	}

	// ── Selected Car ──────────────────────────────────────────
	if car := data.Car; car != nil {
		sectionHeader("Selected Car")
		row("Company", car.Company)
		row("Vehicle", fmt.Sprintf("%s (%s)", car.CarType, car.Category))
		row("Capacity", fmt.Sprintf("%d passengers, %d doors, %s", car.Passengers, car.Doors, car.Transmission))
		row("Price", car.Price.Formatted+" total")
		pdf.Ln(4)
	}

	// ── Total ─────────────────────────────────────────────────
	pdf.SetFillColor(212, 168, 67)
	pdf.SetTextColor(13, 24, 37)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(55, 9, "TOTAL TRIP COST", "", 0, "L", true, 0, "")
	pdf.CellFormat(115, 9, data.TripTotal.Formatted, "", 1, "L", true, 0, "")
	pdf.SetTextColor(0, 0, 0)

	// ── Footer ────────────────────────────────────────────────
	pdf.SetY(-22)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.3)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(0, 8,
		"Generated by Rushed · Not a booking confirmation · Prices subject to change",
		"", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF output failed: %w", err)
	}
	return buf.Bytes(), nil
}

func fmtDateReadable(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("02 Jan 2006 (Mon)")
}

func formatLegRange(legs []models.FlightLeg) string {
	first, last := legs[0], legs[len(legs)-1]
	dep, err1 := time.Parse(time.RFC3339, first.Departure)
	arr, err2 := time.Parse(time.RFC3339, last.Arrival)
	if err1 != nil || err2 != nil {
		return fmt.Sprintf("%s → %s", first.Origin, last.Destination)
	}
	return fmt.Sprintf("%s %s → %s %s",
		first.Origin, dep.Format("02 Jan 15:04"),
		last.Destination, arr.Format("02 Jan 15:04"))
}

func formatDurationMin(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	if m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dh", h)
}
