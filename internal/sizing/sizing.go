// Package sizing chains vessel geometry, fire heat load, evaporation and
// the API 520 flow equations into the fire-case PSV sizing pipeline, and
// selects the smallest standard orifice for the result.
package sizing

import (
	"Relief/internal/fire"
	"Relief/internal/flow"
	"Relief/internal/geometry"
	"Relief/internal/units"
	"Relief/internal/validate"
)

// Input is one validated fire-case sizing request. Field names follow the
// web form.
type Input struct {
	FireStandard string `json:"fire_standard"`
	Orientation  string `json:"orientation"`
	HeadType     string `json:"head_type"`

	TangentLengthM     float64 `json:"tangent_length_m"`
	OuterDiameterM     float64 `json:"outer_diameter_m"`
	ShellThicknessMM   float64 `json:"shell_thickness_mm"`
	BottomHeightM      float64 `json:"bottom_height_m"`
	NormalFillVolumeM3 float64 `json:"normal_fill_volume_m3"`

	HfgKJPerKg float64 `json:"h_fg_kJ_per_kg"`
	MGPerMol   float64 `json:"M_g_per_mol"`
	K          float64 `json:"k"`
	Z          float64 `json:"Z"`
	TC         float64 `json:"T_C"`

	POperatingPsig   float64 `json:"P_operating_psig"`
	MAWPPsig         float64 `json:"MAWP_psig"`
	AtmPsia          float64 `json:"atm_psia"`
	BackpressurePsig float64 `json:"backpressure_psig"`
	AccumPercent     float64 `json:"accum_percent"`
	Firefighting     bool    `json:"firefighting"`

	Kd float64 `json:"Kd"`
	Kb float64 `json:"Kb"`
	Kc float64 `json:"Kc"`
	Ke float64 `json:"Ke"`
}

// Result is the composite sizing record returned to the caller.
type Result struct {
	QDotW    float64 `json:"Q_dot_W"`
	MKgPerHr float64 `json:"m_kg_hr"`
	WLbPerHr float64 `json:"W_lb_hr"`

	P1Psia   float64 `json:"P1_psia"`
	Critical bool    `json:"critical"`

	ARequiredIn2      float64 `json:"A_required_in2"`
	OrificeLetter     string  `json:"orifice_letter"`
	OrificeAreaIn2    float64 `json:"orifice_area_in2"`
	OrificeDiameterIn float64 `json:"orifice_diameter_in"`
	InletSizeIn       float64 `json:"inlet_size_in"`

	AWettedM2            float64 `json:"A_wetted_m2"`
	FireHeightM          float64 `json:"fire_height_m"`
	LiquidHeightM        float64 `json:"liquid_height_m"`
	LiquidHeightExposedM float64 `json:"liquid_height_exposed_m"`
	FireStandardUsed     string  `json:"fire_standard_used"`
}

// Calculate runs the full fire-case pipeline: wetted area, fire heat load,
// evaporation rate, relieving pressure, criticality, required area and
// orifice selection. Stateless and idempotent; every stage re-validates
// its own arguments, so partial use of the packages is equally safe.
func Calculate(in Input) (Result, error) {
	// Form-level defaults, same as the web layer applies.
	if in.Orientation == "" {
		in.Orientation = geometry.OrientationVertical
	}
	if in.AtmPsia == 0 {
		in.AtmPsia = 14.7
	}
	if in.Ke == 0 {
		in.Ke = 1.0
	}

	if err := validateInput(in); err != nil {
		return Result{}, err
	}

	// API 2000 is not applicable above 15 psig MAWP; the standard actually
	// used drives the flame height the geometry sees.
	std := fire.Effective(fire.Standard(in.FireStandard), in.MAWPPsig)
	fireHeightM := std.HeightLimitM()

	geom, err := geometry.WettedAreaFromFillVolume(geometry.FillInput{
		Orientation:    in.Orientation,
		HeadType:       in.HeadType,
		TangentLengthM: in.TangentLengthM,
		OuterDiameterM: in.OuterDiameterM,
		ThicknessMM:    in.ShellThicknessMM,
		BottomHeightM:  in.BottomHeightM,
		FireHeightM:    fireHeightM,
		FillVolumeM3:   in.NormalFillVolumeM3,
	})
	if err != nil {
		return Result{}, err
	}

	pDesignBarg := units.PsigToBarg(in.POperatingPsig)
	qDotW, err := fire.HeatLoad(std, geom.WettedAreaM2, pDesignBarg, in.Firefighting)
	if err != nil {
		return Result{}, err
	}

	hfgJPerKg, err := units.KJPerKgToJPerKg(in.HfgKJPerKg)
	if err != nil {
		return Result{}, err
	}
	mKgPerHr, err := flow.EvaporationRateKgPerHr(qDotW, hfgJPerKg)
	if err != nil {
		return Result{}, err
	}
	wLbPerHr, err := units.KgPerHrToLbPerHr(mKgPerHr)
	if err != nil {
		return Result{}, err
	}
	tR, err := units.CToR(in.TC)
	if err != nil {
		return Result{}, err
	}

	accumPsig, err := flow.MaxAccumulation(in.MAWPPsig, in.AccumPercent)
	if err != nil {
		return Result{}, err
	}
	p1Psia, err := flow.RelievingPressure(in.MAWPPsig, in.AtmPsia, accumPsig)
	if err != nil {
		return Result{}, err
	}

	critical, err := flow.IsCritical(p1Psia, in.BackpressurePsig, in.AtmPsia, in.K)
	if err != nil {
		return Result{}, err
	}

	// Molecular weight: g/mol is numerically equal to lb/lbmol.
	var aReqIn2 float64
	if critical {
		aReqIn2, err = flow.RequiredAreaCritical(
			wLbPerHr, in.K, tR, in.Z, in.MGPerMol, p1Psia, in.Kd, in.Kb, in.Kc)
	} else {
		var p2Psia float64
		p2Psia, err = flow.DownstreamPressure(in.BackpressurePsig, in.AtmPsia)
		if err == nil {
			aReqIn2, err = flow.RequiredAreaSubcritical(
				wLbPerHr, in.K, tR, in.Z, in.MGPerMol, p1Psia, p2Psia, in.Kd, in.Ke)
		}
	}
	if err != nil {
		return Result{}, err
	}

	orifice, err := SelectOrifice(aReqIn2)
	if err != nil {
		return Result{}, err
	}

	return Result{
		QDotW:    qDotW,
		MKgPerHr: mKgPerHr,
		WLbPerHr: wLbPerHr,

		P1Psia:   p1Psia,
		Critical: critical,

		ARequiredIn2:      aReqIn2,
		OrificeLetter:     orifice.Letter,
		OrificeAreaIn2:    orifice.AreaIn2,
		OrificeDiameterIn: OrificeDiameter(orifice.AreaIn2),
		InletSizeIn:       orifice.InletSizeIn,

		AWettedM2:            geom.WettedAreaM2,
		FireHeightM:          fireHeightM,
		LiquidHeightM:        geom.LiquidHeightM,
		LiquidHeightExposedM: geom.LiquidHeightExposedM,
		FireStandardUsed:     string(std),
	}, nil
}

func validateInput(in Input) error {
	if _, err := validate.Choice(in.FireStandard, "Fire Standard", fire.Standards); err != nil {
		return err
	}
	if _, err := validate.Choice(in.Orientation, "Vessel Orientation", geometry.Orientations); err != nil {
		return err
	}
	if _, err := validate.Choice(in.HeadType, "Head Type", geometry.HeadTypes); err != nil {
		return err
	}
	if in.HfgKJPerKg <= 0 {
		return validate.Inputf("Error with Enthalpy of Vaporization input: must be positive, got %g.", in.HfgKJPerKg)
	}
	if err := validate.MolecularWeight(in.MGPerMol); err != nil {
		return err
	}
	if err := validate.KRatio(in.K); err != nil {
		return err
	}
	if err := validate.Compressibility(in.Z); err != nil {
		return err
	}
	if err := validate.TemperatureC(in.TC); err != nil {
		return err
	}
	if in.MAWPPsig <= 0 {
		return validate.Inputf("Error with MAWP input: must be positive, got %g.", in.MAWPPsig)
	}
	if in.AtmPsia <= 0 {
		return validate.Inputf("Error with Atmospheric Pressure input: must be positive, got %g.", in.AtmPsia)
	}
	if in.BackpressurePsig < 0 {
		return validate.Inputf("Error with Backpressure input: must be non-negative, got %g.", in.BackpressurePsig)
	}
	if err := validate.Percentage(in.AccumPercent, "Accumulation Percent"); err != nil {
		return err
	}
	if err := validate.CorrectionFactor(in.Kd, "Discharge Coefficient (Kd)", 0, 1); err != nil {
		return err
	}
	if err := validate.CorrectionFactor(in.Kb, "Backpressure Factor (Kb)", 0, 1); err != nil {
		return err
	}
	if err := validate.CorrectionFactor(in.Kc, "Combination Factor (Kc)", 0, 1); err != nil {
		return err
	}
	// Ke can exceed 1 for some installations.
	if err := validate.CorrectionFactor(in.Ke, "Environmental Factor (Ke)", 0, 2); err != nil {
		return err
	}
	return nil
}
