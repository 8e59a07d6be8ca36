// Package sizing selects electrical components for three families of DC
// power-conversion equipment: full-wave rectifiers, single-phase battery
// chargers, and three-phase battery chargers.
//
// From three nameplate quantities (DC voltage, DC current, primary AC
// voltage) plus a set of defaulted sizing margins, each family calculation
// derives:
//
//   - secondary voltage and current
//   - transformer capacity in kVA, snapped to the catalog grid
//     (quarter/half/whole-unit steps by size for three-phase secondaries,
//     plain quarter-unit ceiling for single-phase)
//   - circuit breaker ratings for the primary, secondary, and DC legs
//   - wire sizes for the same three legs
//   - heat output (kW and BTU/h) and required cooling airflow (CFM)
//
// Breaker and wire selection is an approximate-match lookup: the last table
// entry whose threshold is <= the margin-adjusted current wins. The two
// tables (BreakerTable, WireTable) are package-level constants shared safely
// across goroutines; they are never mutated.
//
// Every calculation is a pure function of its Inputs: identical inputs give
// bit-identical Results. The engine does no range validation; physically
// nonsensical inputs produce arithmetically well-defined nonsense, and
// dividing by a zero Vpri yields +Inf as plain float math dictates.
package sizing
