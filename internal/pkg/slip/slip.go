package slip

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/sdm-erp/erp-backend-go/internal/config"
	"github.com/sdm-erp/erp-backend-go/internal/domain/payroll"
	"github.com/sdm-erp/erp-backend-go/internal/domain/user"
	"github.com/shopspring/decimal"
)

// Renderer draws payroll slips as A4 PDFs with the company letterhead.
type Renderer struct {
	profile config.CompanyProfile
}

func NewRenderer(profile config.CompanyProfile) *Renderer {
	return &Renderer{profile: profile}
}

// Render produces the slip PDF for one payroll record. Currency values are
// rounded here, at formatting time only.
func (r *Renderer) Render(u user.User, rec payroll.Record) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	r.drawLetterhead(pdf)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, "SLIP GAJI", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("Periode %s", periodLabel(rec.Month)), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Nama: %s", u.Name))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Email: %s", u.Email))
	pdf.Ln(10)

	r.lineItem(pdf, "Gaji Pokok", rec.BasicSalary)
	r.lineItem(pdf, "Tunjangan", rec.Allowance)
	r.lineItem(pdf, fmt.Sprintf("Uang Makan (%d hari hadir)", rec.Metadata.TotalHadir), rec.TotalMealAllowance)
	r.lineItem(pdf, "Bonus", rec.Bonus)
	r.lineItem(pdf, fmt.Sprintf("Potongan (%d telat)", rec.Metadata.TotalTelat), rec.Deductions.Neg())

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(110, 8, "Take-Home Pay (THP)")
	pdf.CellFormat(70, 8, formatIDR(rec.NetSalary), "T", 1, "R", false, 0, "")

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Diproses %s", rec.ProcessedAt.Format("02 Jan 2006 15:04")))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render slip: %w", err)
	}
	return buf.Bytes(), nil
}

// drawLetterhead places the logo and company lines according to the
// configured layout (logo top/left/right, text left/center/right).
func (r *Renderer) drawLetterhead(pdf *gofpdf.Fpdf) {
	align := "L"
	switch r.profile.TextAlign {
	case "center":
		align = "C"
	case "right":
		align = "R"
	}

	hasLogo := r.profile.LogoPath != ""
	if hasLogo {
		if _, err := os.Stat(r.profile.LogoPath); err != nil {
			hasLogo = false
		}
	}

	if hasLogo {
		switch r.profile.LogoPosition {
		case "top":
			pdf.ImageOptions(r.profile.LogoPath, 95, 10, 20, 0, false, gofpdf.ImageOptions{}, 0, "")
			pdf.SetY(32)
		case "right":
			pdf.ImageOptions(r.profile.LogoPath, 180, 10, 20, 0, false, gofpdf.ImageOptions{}, 0, "")
		default: // left
			pdf.ImageOptions(r.profile.LogoPath, 10, 10, 20, 0, false, gofpdf.ImageOptions{}, 0, "")
		}
	}

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, r.profile.Name, "", 1, align, false, 0, "")
	if r.profile.Address != "" {
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(0, 5, r.profile.Address, "", 1, align, false, 0, "")
	}
	pdf.Ln(4)
	pdf.SetLineWidth(0.5)
	pdf.Line(10, pdf.GetY(), 200, pdf.GetY())
	pdf.Ln(6)
}

func (r *Renderer) lineItem(pdf *gofpdf.Fpdf, label string, amount decimal.Decimal) {
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(110, 8, label)
	pdf.CellFormat(70, 8, formatIDR(amount), "", 1, "R", false, 0, "")
}

// periodLabel turns "2024-03" into "Maret 2024".
func periodLabel(month string) string {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return month
	}
	return fmt.Sprintf("%s %d", monthNamesID[t.Month()-1], t.Year())
}

var monthNamesID = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// formatIDR renders an amount as "Rp 5.850.000" with dot thousand
// separators. Negative amounts keep their sign.
func formatIDR(amount decimal.Decimal) string {
	s := amount.Round(0).String()
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}

	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, c)
	}

	if neg {
		return "Rp -" + string(out)
	}
	return "Rp " + string(out)
}
