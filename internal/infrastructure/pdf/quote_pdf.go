package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"kiosk_quote/internal/domain/entities"
	"kiosk_quote/internal/domain/pricing"
	"kiosk_quote/internal/usecase/interfaces"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// QuoteRenderer prints a one-page quote summary with the core Helvetica font,
// so no font files ship with the service.
type QuoteRenderer struct {
	company string
	now     func() time.Time
}

var _ interfaces.IQuotePDFRenderer = (*QuoteRenderer)(nil)

func NewQuoteRenderer(company string) *QuoteRenderer {
	if strings.TrimSpace(company) == "" {
		company = "Kitchen Remodel Studio"
	}
	return &QuoteRenderer{company: company, now: time.Now}
}

func (r *QuoteRenderer) Render(d entities.QuoteDraft, b pricing.Breakdown) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetTitle("Kitchen remodel estimate", false)
	pdf.SetCreator(r.company, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Kitchen remodel estimate")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	if d.ReferenceCode != "" {
		pdf.Cell(0, 6, "Reference: "+d.ReferenceCode)
		pdf.Ln(6)
	}
	if d.Customer.Name != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Customer: %s  %s  %s", d.Customer.Name, d.Customer.Phone, d.Customer.Email))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Kitchen: %s ft x %s ft, %s LF cabinets, %s LF countertops",
		num(d.Dimensions.LengthFt), num(d.Dimensions.WidthFt), num(d.LinearFeet.CabinetLF), num(d.LinearFeet.CountertopLF)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Selections: %s tier, %s countertops, %s flooring",
		titleCase(string(d.Tier)), titleCase(string(d.CountertopMaterial)), flooringLabel(d.FlooringMaterial)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(130, 7, "Item")
	pdf.CellFormat(50, 7, "Amount", "", 0, "R", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	lines := []struct {
		label  string
		amount decimal.Decimal
	}{
		{"Cabinets", b.Cabinets},
		{"Cabinet installation", b.CabinetInstall},
		{fmt.Sprintf("Countertops (%s sq ft)", b.CountertopAreaSqFt.StringFixed(1)), b.Countertops},
		{"Countertop fabrication", b.CountertopFabrication},
		{fmt.Sprintf("Flooring (%s sq ft)", b.FloorAreaSqFt.StringFixed(1)), b.Flooring},
		{fmt.Sprintf("Plumbing moves (%d)", d.AddOns.PlumbingMoveCount), b.Plumbing},
		{"Demolition", b.Demo},
	}
	for _, l := range lines {
		if l.amount.IsZero() {
			continue
		}
		pdf.Cell(130, 6, l.label)
		pdf.CellFormat(50, 6, money(l.amount), "", 0, "R", false, 0, "")
		pdf.Ln(6)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(130, 7, "Estimated subtotal")
	pdf.CellFormat(50, 7, money(decimal.NewFromInt(d.Estimate.Subtotal)), "", 0, "R", false, 0, "")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Expected range: %s - %s", money(decimal.NewFromInt(d.Estimate.Low)), money(decimal.NewFromInt(d.Estimate.High))))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Design deposit (credited to your project): %s", money(decimal.NewFromInt(d.Estimate.DepositCredit))))
	pdf.Ln(6)
	if d.AppointmentSlot != "" {
		pdf.Cell(0, 6, "Design appointment: "+d.AppointmentSlot)
		pdf.Ln(6)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 8)
	pdf.Cell(0, 5, fmt.Sprintf("%s - generated %s", r.company, r.now().Format("Jan 2, 2006 3:04 PM")))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func num(v float64) string {
	return decimal.NewFromFloat(v).String()
}

func titleCase(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	return strings.ToUpper(s[:1]) + s[1:]
}

func flooringLabel(m entities.FlooringMaterial) string {
	if m == entities.FlooringLVP {
		return "LVP"
	}
	return titleCase(string(m))
}
