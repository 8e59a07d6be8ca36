package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/nhaddadi/dcsizer/pkg/sizing"
)

type opts struct {
	// nameplate
	vdc  float64
	idc  float64
	vpri float64

	// sizing margins
	lineFluctPct           float64
	secCurrentSafetyPct    float64
	cbPrimarySafetyPct     float64
	cbSecondarySafetyPct   float64
	cbDCSafetyPct          float64
	wirePrimarySafetyPct   float64
	wireSecondarySafetyPct float64
	wireDCSafetyPct        float64
	ambientC               float64
	insideC                float64
	airflowSafetyPct       float64

	// surface
	configPath  string
	jsonOut     bool
	interactive bool
	verbose     bool
}

// usageError marks caller mistakes (missing inputs, zero Vpri) that should
// exit with status 2 instead of the generic failure status.
type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	root := newRootCmd()
	if err := root.Execute(); err != nil {
		var uerr *usageError
		if errors.As(err, &uerr) {
			log.Error().Msg(uerr.Error())
			os.Exit(2)
		}
		log.Error().Err(err).Msg("sizing failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "dcsizer",
		Short: "Component sizing for DC power-conversion equipment",
		Long: `dcsizer sizes the transformer, circuit breakers, wire gauge, and cooling
airflow for full-wave rectifiers and single/three-phase battery chargers
from their electrical nameplate (DC voltage, DC current, primary AC voltage).

Examples:
  dcsizer rectifier --vdc 600 --idc 600 --vpri 480
  dcsizer 3ph --vdc 130 --idc 50 --vpri 480 --json
  dcsizer 1ph --config margins.yaml --interactive`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newFamilyCmd("rectifier", "Size a full-wave rectifier", sizing.CalcRectifier),
		newFamilyCmd("1ph", "Size a single-phase charger", sizing.Calc1Ph),
		newFamilyCmd("3ph", "Size a three-phase charger", sizing.Calc3Ph),
	)
	return root
}

func newFamilyCmd(use, short string, calc func(sizing.Inputs) sizing.Result) *cobra.Command {
	var o opts
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, &o, calc)
		},
	}
	addSizingFlags(cmd, &o)
	return cmd
}

func addSizingFlags(cmd *cobra.Command, o *opts) {
	f := cmd.Flags()
	f.Float64Var(&o.vdc, "vdc", 0, "DC output voltage (V)")
	f.Float64Var(&o.idc, "idc", 0, "DC output current (A)")
	f.Float64Var(&o.vpri, "vpri", 0, "primary AC line voltage (V)")

	f.Float64Var(&o.lineFluctPct, "line-fluct", 5, "line voltage fluctuation margin (%)")
	f.Float64Var(&o.secCurrentSafetyPct, "sec-current-safety", 20, "secondary current safety margin (%)")
	f.Float64Var(&o.cbPrimarySafetyPct, "cb-primary-safety", 30, "primary breaker safety margin (%)")
	f.Float64Var(&o.cbSecondarySafetyPct, "cb-secondary-safety", 30, "secondary breaker safety margin (%)")
	f.Float64Var(&o.cbDCSafetyPct, "cb-dc-safety", 20, "DC breaker safety margin (%)")
	f.Float64Var(&o.wirePrimarySafetyPct, "wire-primary-safety", 15, "primary wire safety margin (%)")
	f.Float64Var(&o.wireSecondarySafetyPct, "wire-secondary-safety", 10, "secondary wire safety margin (%)")
	f.Float64Var(&o.wireDCSafetyPct, "wire-dc-safety", 10, "DC wire safety margin (%)")
	f.Float64Var(&o.ambientC, "ambient", 40, "ambient temperature (C)")
	f.Float64Var(&o.insideC, "inside", 55, "enclosure inside temperature (C)")
	f.Float64Var(&o.airflowSafetyPct, "airflow-safety", 20, "airflow safety margin (%)")

	f.StringVar(&o.configPath, "config", "", "YAML file overriding margin defaults")
	f.BoolVar(&o.jsonOut, "json", false, "emit the result as JSON instead of text")
	f.BoolVar(&o.interactive, "interactive", false, "prompt on stdin for missing nameplate inputs")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "log the effective configuration")
}

func run(cmd *cobra.Command, o *opts, calc func(sizing.Inputs) sizing.Result) error {
	if o.verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	changed := cmd.Flags().Changed
	provided := map[string]bool{
		"vdc":  changed("vdc"),
		"idc":  changed("idc"),
		"vpri": changed("vpri"),
	}

	if o.configPath != "" {
		fc, err := loadFileConfig(o.configPath)
		if err != nil {
			return fmt.Errorf("config %s: %w", o.configPath, err)
		}
		fc.apply(o, changed, provided)
	}

	if o.interactive {
		if err := promptMissing(cmd.InOrStdin(), provided, o); err != nil {
			return err
		}
	}
	for _, name := range []string{"vdc", "idc", "vpri"} {
		if !provided[name] {
			return &usageError{msg: "required input --" + name + " not provided (use flags, a config file, or --interactive)"}
		}
	}
	if o.vpri == 0 {
		// the engine would divide by it; reject at the boundary instead
		return &usageError{msg: "primary voltage must be non-zero"}
	}

	in := o.inputs()
	log.Debug().
		Float64("vdc", in.Vdc).Float64("idc", in.Idc).Float64("vpri", in.Vpri).
		Float64("line_fluct_pct", in.LineFluctPct).
		Float64("ambient_c", in.AmbientC).Float64("inside_c", in.InsideC).
		Msg("effective configuration")

	res := calc(in)
	if res.CBPrimary == "Check" || res.CBSecondary == "Check" || res.CBDC == "Check" {
		log.Warn().Msg("a leg current is below the breaker table range; selection says Check")
	}

	if o.jsonOut {
		return renderJSON(cmd.OutOrStdout(), res)
	}
	return renderText(cmd.OutOrStdout(), res)
}

// inputs assembles the engine record from the flag/file/prompt state.
func (o *opts) inputs() sizing.Inputs {
	return sizing.Inputs{
		Vdc:  o.vdc,
		Idc:  o.idc,
		Vpri: o.vpri,

		LineFluctPct:           o.lineFluctPct,
		SecCurrentSafetyPct:    o.secCurrentSafetyPct,
		CBPrimarySafetyPct:     o.cbPrimarySafetyPct,
		CBSecondarySafetyPct:   o.cbSecondarySafetyPct,
		CBDCSafetyPct:          o.cbDCSafetyPct,
		WirePrimarySafetyPct:   o.wirePrimarySafetyPct,
		WireSecondarySafetyPct: o.wireSecondarySafetyPct,
		WireDCSafetyPct:        o.wireDCSafetyPct,
		AmbientC:               o.ambientC,
		InsideC:                o.insideC,
		AirflowSafetyPct:       o.airflowSafetyPct,
	}
}

func promptMissing(in io.Reader, provided map[string]bool, o *opts) error {
	prompts := []struct {
		name  string
		label string
		dst   *float64
	}{
		{"vdc", "DC voltage (V)", &o.vdc},
		{"idc", "DC current (A)", &o.idc},
		{"vpri", "primary AC voltage (V)", &o.vpri},
	}

	r := bufio.NewReader(in)
	for _, p := range prompts {
		if provided[p.name] {
			continue
		}
		fmt.Fprintf(os.Stderr, "%s: ", p.label)
		line, err := r.ReadString('\n')
		if err != nil && line == "" {
			return &usageError{msg: "no input for " + p.label}
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err != nil {
			return &usageError{msg: "invalid number for " + p.label + ": " + strings.TrimSpace(line)}
		}
		*p.dst = v
		provided[p.name] = true
	}
	return nil
}
