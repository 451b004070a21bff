// Package importer sizes fire cases uploaded as a spreadsheet, one case
// per row.
package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/xuri/excelize/v2"

	"Relief/internal/sizing"
)

type Handler struct{}

type ImportResult struct {
	Count   int             `json:"count"`
	Skipped int             `json:"skipped"`
	Results []sizing.Result `json:"results"`
}

// Cases reads the first sheet of an uploaded xlsx workbook. Row 1 is a
// header; each following row is one sizing case in the column order of
// parseCaseRow. Rows that fail to parse or size are skipped, not fatal.
func (h *Handler) Cases(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	out := ImportResult{Results: []sizing.Result{}}
	for i := 1; i < len(rows); i++ {
		input, err := parseCaseRow(rows[i])
		if err != nil {
			out.Skipped++
			continue
		}
		res, err := sizing.Calculate(input)
		if err != nil {
			out.Skipped++
			continue
		}
		out.Results = append(out.Results, res)
	}
	out.Count = len(out.Results)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

// Column order:
//
//	0  fire_standard          1  head_type            2  tangent_length_m
//	3  outer_diameter_m       4  shell_thickness_mm   5  bottom_height_m
//	6  normal_fill_volume_m3  7  h_fg_kJ_per_kg       8  M_g_per_mol
//	9  k                     10  Z                    11  T_C
//	12 P_operating_psig      13  MAWP_psig            14  accum_percent
//	15 firefighting          16  Kd                   17  Kb
//	18 Kc                    19  atm_psia (opt)       20  backpressure_psig (opt)
//	21 Ke (opt)
func parseCaseRow(row []string) (sizing.Input, error) {
	if len(row) < 19 {
		return sizing.Input{}, fmt.Errorf("short row")
	}

	in := sizing.Input{
		FireStandard: row[0],
		Orientation:  "Vertical",
		HeadType:     row[1],
	}

	fields := []struct {
		idx int
		dst *float64
	}{
		{2, &in.TangentLengthM},
		{3, &in.OuterDiameterM},
		{4, &in.ShellThicknessMM},
		{5, &in.BottomHeightM},
		{6, &in.NormalFillVolumeM3},
		{7, &in.HfgKJPerKg},
		{8, &in.MGPerMol},
		{9, &in.K},
		{10, &in.Z},
		{11, &in.TC},
		{12, &in.POperatingPsig},
		{13, &in.MAWPPsig},
		{14, &in.AccumPercent},
		{16, &in.Kd},
		{17, &in.Kb},
		{18, &in.Kc},
	}
	for _, f := range fields {
		v, err := toFloat(row[f.idx])
		if err != nil {
			return sizing.Input{}, err
		}
		*f.dst = v
	}

	switch row[15] {
	case "true", "1", "yes":
		in.Firefighting = true
	case "false", "0", "no", "":
		in.Firefighting = false
	default:
		return sizing.Input{}, fmt.Errorf("bad firefighting flag")
	}

	if len(row) > 19 && row[19] != "" {
		in.AtmPsia, _ = toFloat(row[19])
	}
	if len(row) > 20 && row[20] != "" {
		in.BackpressurePsig, _ = toFloat(row[20])
	}
	if len(row) > 21 && row[21] != "" {
		in.Ke, _ = toFloat(row[21])
	}

	return in, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
