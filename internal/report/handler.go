// Package report renders a one-page PSV sizing datasheet as PDF.
package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/phpdave11/gofpdf"
	log "github.com/sirupsen/logrus"

	"Relief/internal/sizing"
	"Relief/internal/validate"
)

type Input struct {
	Project string       `json:"project"`
	Author  string       `json:"author"`
	Title   string       `json:"title"`
	Notes   string       `json:"notes"`
	Case    sizing.Input `json:"case"`
}

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "PSV Fire Case Sizing"
	}

	res, err := sizing.Calculate(input.Case)
	if err != nil {
		if validate.IsInput(err) || validate.IsInfeasible(err) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		log.WithError(err).Error("unexpected error in report sizing")
		http.Error(w, "Calculation error", http.StatusInternalServerError)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Vessel and Scenario")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	line(pdf, "Head type", input.Case.HeadType)
	line(pdf, "Outer diameter", fmt.Sprintf("%.3f m", input.Case.OuterDiameterM))
	line(pdf, "Tangent length", fmt.Sprintf("%.3f m", input.Case.TangentLengthM))
	line(pdf, "Normal fill volume", fmt.Sprintf("%.3f m3", input.Case.NormalFillVolumeM3))
	line(pdf, "Fire standard used", res.FireStandardUsed)
	line(pdf, "Fire height", fmt.Sprintf("%.2f m", res.FireHeightM))
	line(pdf, "Wetted area", fmt.Sprintf("%.2f m2", res.AWettedM2))
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Sizing Result")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	line(pdf, "Fire heat load", fmt.Sprintf("%.0f W", res.QDotW))
	line(pdf, "Relief rate", fmt.Sprintf("%.1f kg/hr (%.1f lb/hr)", res.MKgPerHr, res.WLbPerHr))
	line(pdf, "Relieving pressure P1", fmt.Sprintf("%.2f psia", res.P1Psia))
	line(pdf, "Flow regime", regime(res.Critical))
	line(pdf, "Required area", fmt.Sprintf("%.4f in2", res.ARequiredIn2))
	line(pdf, "Selected orifice", fmt.Sprintf("%s (%.3f in2, %g in inlet)",
		res.OrificeLetter, res.OrificeAreaIn2, res.InletSizeIn))
	pdf.Ln(8)

	if input.Notes != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, input.Notes, "", "L", false)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"psv-sizing.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

func line(pdf *gofpdf.Fpdf, label, value string) {
	pdf.Cell(70, 5, label)
	pdf.Cell(0, 5, value)
	pdf.Ln(5)
}

func regime(critical bool) string {
	if critical {
		return "Critical (choked)"
	}
	return "Subcritical"
}
