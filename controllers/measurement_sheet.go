package controllers

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-pdf/fpdf"
	"github.com/samber/lo"
	"github.com/yeremiapane/tailor-records/models"
	"github.com/yeremiapane/tailor-records/web"
)

const sheetFont = "DejaVu"

type measurementRow struct {
	label string
	value *float64
}

// GetMeasurementSheet -> GET /customers/:id/measurement-sheet
// Renders a printable card with the customer's measurements for the
// workshop.
func (cc *CustomerController) GetMeasurementSheet(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		return
	}

	customer, err := cc.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := RenderMeasurementSheet(&buf, customer, true); err != nil {
		respondRepoError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=measurements-%d.pdf", customer.ID))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// RenderMeasurementSheet writes a one-page A4 PDF for customer to w.
// Only the measurement groups selected by measurementType are printed.
// Page streams are left uncompressed when compress is false.
func RenderMeasurementSheet(w io.Writer, customer *models.Customer, compress bool) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(compress)
	pdf.AddUTF8FontFromBytes(sheetFont, "", web.FontRegular)
	pdf.AddUTF8FontFromBytes(sheetFont, "B", web.FontBold)
	pdf.SetTitle(fmt.Sprintf("Measurements #%d", customer.ID), true)
	pdf.AddPage()

	pdf.SetFont(sheetFont, "B", 16)
	pdf.CellFormat(0, 10, fmt.Sprintf("Measurement sheet #%d", customer.ID), "", 1, "L", false, 0, "")

	mType := lo.FromPtrOr(customer.MeasurementType, models.MeasurementBoth)

	pdf.SetFont(sheetFont, "", 11)
	writeField(pdf, "Name", customer.CustomerName)
	writeField(pdf, "Phone", customer.Phone)
	writeField(pdf, "Gender", customer.Gender)
	writeField(pdf, "Measurement type", string(mType))
	pdf.Ln(4)

	if mType != models.MeasurementLower {
		writeMeasurementTable(pdf, "Upper body (cm)", []measurementRow{
			{"Chest", customer.Chest},
			{"Waist", customer.Waist},
			{"Shoulder", customer.Shoulder},
			{"Sleeve length", customer.SleeveLength},
			{"Armhole", customer.Armhole},
			{"Neck", customer.Neck},
		})
	}
	if mType != models.MeasurementUpper {
		writeMeasurementTable(pdf, "Lower body (cm)", []measurementRow{
			{"Hips", customer.Hips},
			{"Inseam", customer.Inseam},
			{"Thigh", customer.Thigh},
			{"Knee", customer.Knee},
		})
	}

	if notes := lo.FromPtr(customer.Notes); notes != "" {
		pdf.SetFont(sheetFont, "B", 12)
		pdf.CellFormat(0, 8, "Notes", "", 1, "L", false, 0, "")
		pdf.SetFont(sheetFont, "", 11)
		withDirection(pdf, notes, func() {
			pdf.MultiCell(0, 6, notes, "", "L", false)
		})
	}

	return pdf.Output(w)
}

// writeField prints a Latin label followed by its value. Arabic values are
// laid out right to left without touching the label.
func writeField(pdf *fpdf.Fpdf, label, value string) {
	pdf.CellFormat(40, 7, label+":", "", 0, "L", false, 0, "")
	withDirection(pdf, value, func() {
		pdf.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
	})
}

func withDirection(pdf *fpdf.Fpdf, text string, draw func()) {
	if !isRightToLeft(text) {
		draw()
		return
	}
	pdf.RTL()
	defer pdf.LTR()
	draw()
}

func isRightToLeft(s string) bool {
	for _, r := range s {
		if unicode.In(r, unicode.Arabic, unicode.Hebrew) {
			return true
		}
	}
	return false
}

func writeMeasurementTable(pdf *fpdf.Fpdf, title string, rows []measurementRow) {
	pdf.SetFont(sheetFont, "B", 12)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")

	pdf.SetFont(sheetFont, "", 11)
	for _, row := range rows {
		value := "-"
		if row.value != nil {
			value = fmt.Sprintf("%.1f", *row.value)
		}
		pdf.CellFormat(60, 7, row.label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, value, "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)
}
