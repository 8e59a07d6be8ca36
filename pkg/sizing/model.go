package sizing

// Family identifies which equipment family produced a Result.
type Family string

const (
	FamilyRectifier  Family = "rectifier"
	FamilyCharger1Ph Family = "charger_1ph"
	FamilyCharger3Ph Family = "charger_3ph"
)

// Inputs holds the nameplate quantities and sizing margins for one calculation.
// Units:
//   - Vdc/Vpri: Volts (DC output, primary AC line)
//   - Idc: Amperes (DC output)
//   - *Pct fields: whole-number percent (20 means 20%)
//   - AmbientC/InsideC: degrees Celsius
//
// The engine performs no range validation: zero, negative, or extreme values
// are accepted verbatim and flow through standard arithmetic. Callers that
// care about physical plausibility (or Vpri == 0) must check before calling.
type Inputs struct {
	Vdc  float64
	Idc  float64
	Vpri float64

	LineFluctPct           float64
	SecCurrentSafetyPct    float64
	CBPrimarySafetyPct     float64
	CBSecondarySafetyPct   float64
	CBDCSafetyPct          float64
	WirePrimarySafetyPct   float64
	WireSecondarySafetyPct float64
	WireDCSafetyPct        float64
	AmbientC               float64
	InsideC                float64
	AirflowSafetyPct       float64
}

// DefaultInputs returns an Inputs for the given nameplate values with the
// standard sizing margins applied. Callers override individual fields as
// needed before passing the record to a family calculation.
func DefaultInputs(vdc, idc, vpri float64) Inputs {
	return Inputs{
		Vdc:  vdc,
		Idc:  idc,
		Vpri: vpri,

		LineFluctPct:           5,
		SecCurrentSafetyPct:    20,
		CBPrimarySafetyPct:     30,
		CBSecondarySafetyPct:   30,
		CBDCSafetyPct:          20,
		WirePrimarySafetyPct:   15,
		WireSecondarySafetyPct: 10,
		WireDCSafetyPct:        10,
		AmbientC:               40,
		InsideC:                55,
		AirflowSafetyPct:       20,
	}
}

// Result is the complete sizing selection for one piece of equipment.
// VSecondaryLLV is nil for the single-phase family, which has no
// line-to-line secondary.
type Result struct {
	Family        Family   `json:"family"`
	KVA           float64  `json:"kva"`
	IPrimaryA     float64  `json:"i_primary_a"`
	ISecondaryA   float64  `json:"i_secondary_a"`
	VSecondaryLNV float64  `json:"v_secondary_ln_v"`
	VSecondaryLLV *float64 `json:"v_secondary_ll_v"`
	CBPrimary     string   `json:"cb_primary"`
	CBSecondary   string   `json:"cb_secondary"`
	CBDC          string   `json:"cb_dc"`
	WirePrimary   string   `json:"wire_primary"`
	WireSecondary string   `json:"wire_secondary"`
	WireDC        string   `json:"wire_dc"`
	HeatKW        float64  `json:"heat_kw"`
	HeatBTUH      float64  `json:"heat_btu_h"`
	RequiredCFM   float64  `json:"required_cfm"`
}
