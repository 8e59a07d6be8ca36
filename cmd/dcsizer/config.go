package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the sizing flags as optional YAML keys. Pointer fields
// distinguish "absent" from an explicit zero; a flag passed on the command
// line always beats the file.
type fileConfig struct {
	Vdc  *float64 `yaml:"vdc"`
	Idc  *float64 `yaml:"idc"`
	Vpri *float64 `yaml:"vpri"`

	LineFluctPct           *float64 `yaml:"line_fluct_pct"`
	SecCurrentSafetyPct    *float64 `yaml:"sec_current_safety_pct"`
	CBPrimarySafetyPct     *float64 `yaml:"cb_primary_safety_pct"`
	CBSecondarySafetyPct   *float64 `yaml:"cb_secondary_safety_pct"`
	CBDCSafetyPct          *float64 `yaml:"cb_dc_safety_pct"`
	WirePrimarySafetyPct   *float64 `yaml:"wire_primary_safety_pct"`
	WireSecondarySafetyPct *float64 `yaml:"wire_secondary_safety_pct"`
	WireDCSafetyPct        *float64 `yaml:"wire_dc_safety_pct"`
	AmbientC               *float64 `yaml:"ambient_c"`
	InsideC                *float64 `yaml:"inside_c"`
	AirflowSafetyPct       *float64 `yaml:"airflow_safety_pct"`
}

func loadFileConfig(path string) (*fileConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return nil, err
	}
	return &fc, nil
}

// apply copies file values into o for every flag the user did not set on
// the command line. Nameplate values coming from the file also count as
// provided for the required-input check.
func (fc *fileConfig) apply(o *opts, changed func(string) bool, provided map[string]bool) {
	nameplate := []struct {
		name string
		src  *float64
		dst  *float64
	}{
		{"vdc", fc.Vdc, &o.vdc},
		{"idc", fc.Idc, &o.idc},
		{"vpri", fc.Vpri, &o.vpri},
	}
	for _, f := range nameplate {
		if f.src != nil && !changed(f.name) {
			*f.dst = *f.src
			provided[f.name] = true
		}
	}

	margins := []struct {
		name string
		src  *float64
		dst  *float64
	}{
		{"line-fluct", fc.LineFluctPct, &o.lineFluctPct},
		{"sec-current-safety", fc.SecCurrentSafetyPct, &o.secCurrentSafetyPct},
		{"cb-primary-safety", fc.CBPrimarySafetyPct, &o.cbPrimarySafetyPct},
		{"cb-secondary-safety", fc.CBSecondarySafetyPct, &o.cbSecondarySafetyPct},
		{"cb-dc-safety", fc.CBDCSafetyPct, &o.cbDCSafetyPct},
		{"wire-primary-safety", fc.WirePrimarySafetyPct, &o.wirePrimarySafetyPct},
		{"wire-secondary-safety", fc.WireSecondarySafetyPct, &o.wireSecondarySafetyPct},
		{"wire-dc-safety", fc.WireDCSafetyPct, &o.wireDCSafetyPct},
		{"ambient", fc.AmbientC, &o.ambientC},
		{"inside", fc.InsideC, &o.insideC},
		{"airflow-safety", fc.AirflowSafetyPct, &o.airflowSafetyPct},
	}
	for _, f := range margins {
		if f.src != nil && !changed(f.name) {
			*f.dst = *f.src
		}
	}
}
