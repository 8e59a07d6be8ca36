package sizing

// Entry maps an ampacity threshold to the device label selected at or
// above that threshold.
type Entry struct {
	Threshold float64
	Label     string
}

// Table is an ordered sequence of entries, non-decreasing in Threshold.
type Table []Entry

// Lookup returns the label of the last entry whose threshold is <= value.
// The scan runs in ascending order and keeps the most recent match; a value
// below the first threshold yields the first entry's label. No interpolation,
// no nearest-neighbor: a value sitting between two thresholds takes the
// lower one's label.
//
// An empty table is a configuration fault and panics with ErrEmptyTable.
func (t Table) Lookup(value float64) string {
	if len(t) == 0 {
		panic(ErrEmptyTable)
	}
	label := t[0].Label
	for _, e := range t {
		if value >= e.Threshold {
			label = e.Label
		} else {
			break
		}
	}
	return label
}

// BreakerTable maps a margin-adjusted current to a standard circuit breaker
// ampere rating. Fractional thresholds (1.004, 30.12) are deliberate fudge
// factors carried over from the source sizing sheets; do not round them to
// the nominal values.
var BreakerTable = Table{
	{0, "Check"},
	{1.004, "5"},
	{5, "10"},
	{10, "15"},
	{15, "20"},
	{20, "25"},
	{25, "30"},
	{30.12, "40"},
	{40, "50"},
	{50, "60"},
	{60, "60"},
	{63, "70"},
	{70, "80"},
	{80, "90"},
	{90, "100"},
	{100, "110"},
	{110, "125"},
	{125, "150"},
	{150, "175"},
	{175, "200"},
	{200, "225"},
	{225, "250"},
	{250, "300"},
	{300, "350"},
	{350, "400"},
	{400, "450"},
	{450, "500"},
	{500, "600"},
	{600, "700"},
	{700, "800"},
	{800, "900"},
	{900, "1000"},
	{1000, "1200"},
}

// WireTable maps a margin-adjusted current to an AWG/MCM conductor size.
// "2x" labels mean two parallel conductors per phase; "Buss" means the
// current exceeds single-run cable ampacity and needs bus bar.
var WireTable = Table{
	{0, "#10"},
	{4.016, "#10"},
	{6, "#10"},
	{9, "#10"},
	{15, "#10"},
	{22, "#10"},
	{40, "#8"},
	{60, "#6"},
	{80, "#4"},
	{105, "#3"},
	{120, "#2"},
	{140, "#1"},
	{165, "#1/0"},
	{195, "#2/0"},
	{225, "#3/0"},
	{260, "#4/0"},
	{300, "250MCM"},
	{340, "300MCM"},
	{375, "#2/0 2x"},
	{432, "#3/0 2x"},
	{499.2, "#4/0 2x"},
	{576, "250MCM 2x"},
	{652.8, "300MCM 2x"},
	{720, "Buss"},
}
