package types

import "fmt"

// Amps is a current magnitude in amperes.
type Amps float64

func (a Amps) String() string { return fmt.Sprintf("%.1f A", float64(a)) }

// Volts is a voltage magnitude.
type Volts float64

func (v Volts) String() string { return fmt.Sprintf("%.1f V", float64(v)) }

// Kilovoltamps is transformer apparent power.
type Kilovoltamps float64

func (k Kilovoltamps) String() string { return fmt.Sprintf("%.2f kVA", float64(k)) }

// Kilowatts is dissipated heat power.
type Kilowatts float64

func (k Kilowatts) String() string { return fmt.Sprintf("%.2f kW", float64(k)) }

// Watts returns the power in watts.
func (k Kilowatts) Watts() float64 { return float64(k) * 1000 }

// BTUPerHour returns the equivalent heat rate in BTU/h.
func (k Kilowatts) BTUPerHour() float64 { return float64(k) * 3.412142 * 1000 }

// CFM is a cooling airflow in cubic feet per minute.
type CFM float64

func (c CFM) String() string { return fmt.Sprintf("%.0f CFM", float64(c)) }

// CubicMetersPerHour returns the airflow in m3/h.
func (c CFM) CubicMetersPerHour() float64 { return float64(c) * 1.699011 }
