package sizing

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	"Relief/internal/fire"
	"Relief/internal/geometry"
	"Relief/internal/validate"
)

// Handler serves the fire-case PSV sizing form.
type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	var data map[string]any
	if err := dec.Decode(&data); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid JSON in request body.")
		return
	}

	in, err := ParseInput(data)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := Calculate(in)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// ParseInput validates the flat field map of the web form field by field,
// so every rejection names the offending input.
func ParseInput(data map[string]any) (Input, error) {
	var in Input
	var err error

	if in.FireStandard, err = requiredChoice(data, "fire_standard", "Fire Standard", fire.Standards); err != nil {
		return Input{}, err
	}
	if in.Orientation, err = requiredChoice(data, "orientation", "Vessel Orientation", geometry.Orientations); err != nil {
		return Input{}, err
	}
	if in.HeadType, err = requiredChoice(data, "head_type", "Head Type", geometry.HeadTypes); err != nil {
		return Input{}, err
	}

	if in.TangentLengthM, err = requiredNonNegative(data, "tangent_length_m", "Tangent Length"); err != nil {
		return Input{}, err
	}
	if in.OuterDiameterM, err = requiredPositive(data, "outer_diameter_m", "Outer Diameter"); err != nil {
		return Input{}, err
	}
	if in.ShellThicknessMM, err = requiredNonNegative(data, "shell_thickness_mm", "Shell Thickness"); err != nil {
		return Input{}, err
	}
	if in.ShellThicknessMM/1000.0 >= in.OuterDiameterM/2 {
		return Input{}, validate.Inputf(
			"Error with Shell Thickness input: %.1f mm must be less than vessel radius of %.1f mm.",
			in.ShellThicknessMM, in.OuterDiameterM/2*1000)
	}
	if in.BottomHeightM, err = requiredNonNegative(data, "bottom_height_m", "Surface to Vessel Bottom Height"); err != nil {
		return Input{}, err
	}
	if in.NormalFillVolumeM3, err = requiredNonNegative(data, "normal_fill_volume_m3", "Normal Fill Volume"); err != nil {
		return Input{}, err
	}

	if in.HfgKJPerKg, err = requiredPositive(data, "h_fg_kJ_per_kg", "Enthalpy of Vaporization"); err != nil {
		return Input{}, err
	}
	if in.MGPerMol, err = requiredPositive(data, "M_g_per_mol", "Molecular Weight"); err != nil {
		return Input{}, err
	}
	if err = validate.MolecularWeight(in.MGPerMol); err != nil {
		return Input{}, err
	}
	if in.K, err = requiredPositive(data, "k", "Specific Heat Ratio (k)"); err != nil {
		return Input{}, err
	}
	if err = validate.KRatio(in.K); err != nil {
		return Input{}, err
	}
	if in.Z, err = requiredPositive(data, "Z", "Compressibility Factor (Z)"); err != nil {
		return Input{}, err
	}
	if err = validate.Compressibility(in.Z); err != nil {
		return Input{}, err
	}
	if in.TC, err = requiredFloat(data, "T_C", "Temperature"); err != nil {
		return Input{}, err
	}
	if err = validate.TemperatureC(in.TC); err != nil {
		return Input{}, err
	}

	if in.POperatingPsig, err = requiredFloat(data, "P_operating_psig", "Operating Pressure"); err != nil {
		return Input{}, err
	}
	if in.MAWPPsig, err = requiredPositive(data, "MAWP_psig", "MAWP"); err != nil {
		return Input{}, err
	}
	if in.AtmPsia, err = validate.PositiveFloat(validate.FieldOr(data, "atm_psia", 14.7), "Atmospheric Pressure"); err != nil {
		return Input{}, err
	}
	if in.BackpressurePsig, err = validate.NonNegativeFloat(validate.FieldOr(data, "backpressure_psig", 0.0), "Backpressure"); err != nil {
		return Input{}, err
	}
	if in.AccumPercent, err = requiredPositive(data, "accum_percent", "Accumulation Percent"); err != nil {
		return Input{}, err
	}
	if err = validate.Percentage(in.AccumPercent, "Accumulation Percent"); err != nil {
		return Input{}, err
	}

	fireVal, err := validate.Field(data, "firefighting", "Firefighting")
	if err != nil {
		return Input{}, err
	}
	if in.Firefighting, err = validate.Bool(fireVal, "Firefighting"); err != nil {
		return Input{}, err
	}

	if in.Kd, err = requiredPositive(data, "Kd", "Discharge Coefficient (Kd)"); err != nil {
		return Input{}, err
	}
	if err = validate.CorrectionFactor(in.Kd, "Discharge Coefficient (Kd)", 0, 1); err != nil {
		return Input{}, err
	}
	if in.Kb, err = requiredPositive(data, "Kb", "Backpressure Factor (Kb)"); err != nil {
		return Input{}, err
	}
	if err = validate.CorrectionFactor(in.Kb, "Backpressure Factor (Kb)", 0, 1); err != nil {
		return Input{}, err
	}
	if in.Kc, err = requiredPositive(data, "Kc", "Combination Factor (Kc)"); err != nil {
		return Input{}, err
	}
	if err = validate.CorrectionFactor(in.Kc, "Combination Factor (Kc)", 0, 1); err != nil {
		return Input{}, err
	}
	if in.Ke, err = validate.PositiveFloat(validate.FieldOr(data, "Ke", 1.0), "Environmental Factor (Ke)"); err != nil {
		return Input{}, err
	}
	if err = validate.CorrectionFactor(in.Ke, "Environmental Factor (Ke)", 0, 2); err != nil {
		return Input{}, err
	}

	return in, nil
}

func requiredFloat(data map[string]any, name, label string) (float64, error) {
	v, err := validate.Field(data, name, label)
	if err != nil {
		return 0, err
	}
	return validate.Float(v, label)
}

func requiredPositive(data map[string]any, name, label string) (float64, error) {
	v, err := validate.Field(data, name, label)
	if err != nil {
		return 0, err
	}
	return validate.PositiveFloat(v, label)
}

func requiredNonNegative(data map[string]any, name, label string) (float64, error) {
	v, err := validate.Field(data, name, label)
	if err != nil {
		return 0, err
	}
	return validate.NonNegativeFloat(v, label)
}

func requiredChoice(data map[string]any, name, label string, valid []string) (string, error) {
	v, err := validate.Field(data, name, label)
	if err != nil {
		return "", err
	}
	return validate.Choice(v, label, valid)
}

func writeError(w http.ResponseWriter, err error) {
	if validate.IsInput(err) || validate.IsInfeasible(err) {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	log.WithError(err).Error("unexpected error in PSV sizing")
	writeJSONError(w, http.StatusInternalServerError, "An unexpected error occurred. Please check your inputs and try again.")
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
