package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func validRow() []any {
	return []any{
		"API2000", "ASME_FD", 5.0, 3.0, 10.0, 0.5, 10.0,
		335.0, 44.1, 1.13, 0.9, 25.0,
		200.0, 250.0, 10.0, "false",
		0.975, 1.0, 1.0,
	}
}

func buildWorkbook(t *testing.T, rows [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	header := []any{
		"fire_standard", "head_type", "tangent_length_m", "outer_diameter_m",
		"shell_thickness_mm", "bottom_height_m", "normal_fill_volume_m3",
		"h_fg_kJ_per_kg", "M_g_per_mol", "k", "Z", "T_C",
		"P_operating_psig", "MAWP_psig", "accum_percent", "firefighting",
		"Kd", "Kb", "Kc",
	}
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &header))
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func postWorkbook(t *testing.T, workbook []byte) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "cases.xlsx")
	require.NoError(t, err)
	_, err = fw.Write(workbook)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/tools/psv/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	(&Handler{}).Cases(rec, req)
	return rec
}

func TestCasesSizesValidRowsAndSkipsBadOnes(t *testing.T) {
	bad := validRow()
	bad[3] = "wide" // outer diameter is not a number

	rec := postWorkbook(t, buildWorkbook(t, [][]any{validRow(), bad, validRow()}))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res ImportResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 2, res.Count)
	assert.Equal(t, 1, res.Skipped)
	require.Len(t, res.Results, 2)
	assert.Equal(t, "API520", res.Results[0].FireStandardUsed)
	assert.Equal(t, res.Results[0], res.Results[1])
}

func TestCasesRejectsHeaderOnlySheet(t *testing.T) {
	rec := postWorkbook(t, buildWorkbook(t, nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCasesRequiresFile(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/tools/psv/import", nil)
	rec := httptest.NewRecorder()
	(&Handler{}).Cases(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
