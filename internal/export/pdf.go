package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

const (
	pageMargin = 0.5 // inches
	lineHeight = 0.25
	cellHeight = 0.35
)

type rgb struct{ r, g, b int }

var (
	brandColor  = rgb{76, 29, 149}
	mutedColor  = rgb{102, 102, 102}
	textColor   = rgb{17, 24, 39}
	rowFill     = rgb{243, 244, 246}
	hashFill    = rgb{249, 250, 251}
	borderColor = rgb{204, 204, 204}
)

// RenderPDF lays the receipt out on a US letter page with half inch margins.
func (r *Renderer) RenderPDF(doc Document) ([]byte, error) {
	pdf := fpdf.New("P", "in", "Letter", "")
	pdf.SetCompression(r.compress)
	pdf.AddUTF8FontFromBytes(fontFamily, "", regularFont)
	pdf.AddUTF8FontFromBytes(fontFamily, "B", boldFont)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.SetTitle("Receipt "+doc.ReceiptID, true)
	pdf.SetCreator(brandName, true)
	pdf.AddPage()

	pageWidth, pageHeight := pdf.GetPageSize()
	contentWidth := pageWidth - 2*pageMargin

	setColor(pdf, brandColor)
	pdf.SetFont(fontFamily, "B", 24)
	pdf.CellFormat(contentWidth, 0.45, brandName, "", 1, "C", false, 0, "")
	setColor(pdf, mutedColor)
	pdf.SetFont(fontFamily, "", 12)
	pdf.CellFormat(contentWidth, lineHeight, brandTagline, "", 1, "C", false, 0, "")
	pdf.Ln(0.3)

	section := func(title string) {
		setColor(pdf, brandColor)
		pdf.SetFont(fontFamily, "B", 16)
		pdf.CellFormat(contentWidth, 0.35, title, "", 1, "L", false, 0, "")
		pdf.Ln(0.05)
	}
	field := func(label, value string) {
		setColor(pdf, textColor)
		pdf.SetFont(fontFamily, "B", 11)
		labelWidth := pdf.GetStringWidth(label+" ") + 0.05
		pdf.CellFormat(labelWidth, lineHeight, label, "", 0, "L", false, 0, "")
		pdf.SetFont(fontFamily, "", 11)
		pdf.MultiCell(contentWidth-labelWidth, lineHeight, pdfText(value), "", "L", false)
	}

	amountWidth := contentWidth * 0.3
	descWidth := contentWidth - amountWidth

	// row draws one table row whose height grows with the longer of its two wrapped cells.
	row := func(desc, amount string, fill bool) {
		desc, amount = pdfText(desc), pdfText(amount)
		lines := max(len(pdf.SplitText(desc, descWidth)), len(pdf.SplitText(amount, amountWidth)), 1)

		lineH := cellHeight
		if lines > 1 {
			lineH = lineHeight
		}
		rowH := lineH * float64(lines)

		if pdf.GetY()+rowH > pageHeight-pageMargin {
			pdf.AddPage()
		}

		style := "D"
		if fill {
			style = "FD"
		}
		x, y := pdf.GetXY()
		pdf.Rect(x, y, descWidth, rowH, style)
		pdf.Rect(x+descWidth, y, amountWidth, rowH, style)

		pdf.SetXY(x, y)
		pdf.MultiCell(descWidth, lineH, desc, "", "L", false)
		pdf.SetXY(x+descWidth, y)
		pdf.MultiCell(amountWidth, lineH, amount, "", "R", false)
		pdf.SetXY(x, y+rowH)
	}

	section("Receipt Details")
	field("Receipt ID:", doc.ReceiptID)
	field("Date:", doc.Date)
	pdf.Ln(0.25)

	section("Customer Information")
	field("Name:", doc.CustomerName)
	field("Email:", doc.CustomerEmail)
	pdf.Ln(0.25)

	section("Transaction Details")
	pdf.SetDrawColor(borderColor.r, borderColor.g, borderColor.b)
	pdf.SetFillColor(rowFill.r, rowFill.g, rowFill.b)
	setColor(pdf, textColor)

	pdf.SetFont(fontFamily, "B", 11)
	row("Description", "Amount", true)
	pdf.SetFont(fontFamily, "", 11)
	row(doc.Purpose, doc.Amount, false)
	pdf.SetFont(fontFamily, "B", 11)
	row("Total", doc.Amount, true)
	pdf.Ln(0.3)

	section("Blockchain Info")
	setColor(pdf, textColor)
	pdf.SetFont(fontFamily, "B", 11)
	pdf.CellFormat(contentWidth, lineHeight, "Transaction Hash:", "", 1, "L", false, 0, "")
	pdf.SetFillColor(hashFill.r, hashFill.g, hashFill.b)
	pdf.SetFont("Courier", "", 9)
	pdf.MultiCell(contentWidth, lineHeight, doc.TxHash, "", "L", true)
	pdf.Ln(0.08)
	setColor(pdf, brandColor)
	pdf.SetFont(fontFamily, "U", 11)
	pdf.CellFormat(contentWidth, lineHeight, "View on block explorer", "", 1, "L", false, 0, doc.ExplorerURL)
	pdf.Ln(0.4)

	pdf.SetDrawColor(borderColor.r, borderColor.g, borderColor.b)
	y := pdf.GetY()
	pdf.Line(pageMargin, y, pageWidth-pageMargin, y)
	pdf.Ln(0.15)
	setColor(pdf, mutedColor)
	pdf.SetFont(fontFamily, "", 9)
	pdf.CellFormat(contentWidth, 0.2, footerNotice, "", 1, "C", false, 0, "")
	pdf.CellFormat(contentWidth, 0.2, "Generated on "+doc.GeneratedDate, "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}

	return buf.Bytes(), nil
}

func setColor(pdf *fpdf.Fpdf, c rgb) {
	pdf.SetTextColor(c.r, c.g, c.b)
}
