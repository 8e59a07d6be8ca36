package sizing

import "math"

var sqrt3 = math.Sqrt(3)

// CalcRectifier sizes a full-wave rectifier: transformer capacity, breakers
// and wire for all three legs, and enclosure cooling.
func CalcRectifier(in Inputs) Result {
	vsecLN := 0.428 * (1 + in.LineFluctPct/100.0) * in.Vdc
	if in.Vdc < 85 {
		vsecLN += 2
	}
	vsecLL := sqrt3 * vsecLN
	isec := (1 + in.SecCurrentSafetyPct/100.0) * in.Idc * 0.83
	kva := kvaRound3Ph(vsecLL * isec * sqrt3 / 1000.0)
	ipri := kva * 1000.0 / in.Vpri / sqrt3

	r := Result{
		Family:        FamilyRectifier,
		KVA:           kva,
		IPrimaryA:     ipri,
		ISecondaryA:   isec,
		VSecondaryLNV: vsecLN,
		VSecondaryLLV: &vsecLL,
	}
	r.selectProtection(in, ipri, isec, in.Idc)
	r.selectCooling(in, 2*in.Idc+0.06*kva*1000.0)
	return r
}

// Calc1Ph sizes a single-phase charger. There is no line-to-line secondary:
// VSecondaryLLV stays nil and the line-to-neutral field carries the raw DC
// voltage, matching the source sizing sheet's column usage. The DC-leg
// breaker/wire selections are likewise driven by Vpri, not a current; that
// quirk is pinned by callers and kept intact.
func Calc1Ph(in Inputs) Result {
	isec := 1.11 * (1 + in.LineFluctPct/100.0) * (in.Vdc * in.Idc)
	iacOut := (1 + in.SecCurrentSafetyPct/100.0) * in.Vpri * 1.11
	kva := Ceiling(isec*iacOut/1000.0, 0.25)
	ipri := kva * 1000.0 / in.Vpri

	r := Result{
		Family:        FamilyCharger1Ph,
		KVA:           kva,
		IPrimaryA:     ipri,
		ISecondaryA:   iacOut,
		VSecondaryLNV: in.Vdc,
		VSecondaryLLV: nil,
	}
	r.selectProtection(in, ipri, iacOut, in.Vpri)
	r.selectCooling(in, 2*in.Vpri+0.05*kva*1000.0)
	return r
}

// Calc3Ph sizes a three-phase charger. Same structure as CalcRectifier with
// a 87 V offset threshold and a slightly hotter loss coefficient.
func Calc3Ph(in Inputs) Result {
	vsecLN := 0.428 * (1 + in.LineFluctPct/100.0) * in.Vdc
	if in.Vdc < 87 {
		vsecLN += 2
	}
	vsecLL := sqrt3 * vsecLN
	isec := (1 + in.SecCurrentSafetyPct/100.0) * in.Idc * 0.83
	kva := kvaRound3Ph(vsecLL * isec * sqrt3 / 1000.0)
	ipri := kva * 1000.0 / in.Vpri / sqrt3

	r := Result{
		Family:        FamilyCharger3Ph,
		KVA:           kva,
		IPrimaryA:     ipri,
		ISecondaryA:   isec,
		VSecondaryLNV: vsecLN,
		VSecondaryLLV: &vsecLL,
	}
	r.selectProtection(in, ipri, isec, in.Idc)
	r.selectCooling(in, 2*in.Idc+0.07*kva*1000.0)
	return r
}

// selectProtection fills the six breaker/wire selections, applying each
// leg's own safety margin before the table lookup.
func (r *Result) selectProtection(in Inputs, pri, sec, dc float64) {
	r.CBPrimary = BreakerTable.Lookup((1 + in.CBPrimarySafetyPct/100.0) * pri)
	r.CBSecondary = BreakerTable.Lookup((1 + in.CBSecondarySafetyPct/100.0) * sec)
	r.CBDC = BreakerTable.Lookup((1 + in.CBDCSafetyPct/100.0) * dc)
	r.WirePrimary = WireTable.Lookup((1 + in.WirePrimarySafetyPct/100.0) * pri)
	r.WireSecondary = WireTable.Lookup((1 + in.WireSecondarySafetyPct/100.0) * sec)
	r.WireDC = WireTable.Lookup((1 + in.WireDCSafetyPct/100.0) * dc)
}

// selectCooling fills heat output and required airflow from the dissipated
// power in watts. The temperature differential is floored at 0.1 degrees so
// a zero (or inverted) ambient/inside pair cannot blow up the CFM figure.
func (r *Result) selectCooling(in Inputs, heatW float64) {
	r.HeatKW = heatW / 1000.0
	r.HeatBTUH = r.HeatKW * 3.412142 * 1000.0
	r.RequiredCFM = 1760.0 * r.HeatKW / math.Max(in.InsideC-in.AmbientC, 0.1) * (1 + in.AirflowSafetyPct/100.0)
}
