package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	json "github.com/goccy/go-json"

	"github.com/nhaddadi/dcsizer/pkg/sizing"
	"github.com/nhaddadi/dcsizer/pkg/types"
)

func renderJSON(w io.Writer, res sizing.Result) error {
	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}

func renderText(w io.Writer, res sizing.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "family:\t%s\n", res.Family)
	fmt.Fprintf(tw, "capacity:\t%s\n", types.Kilovoltamps(res.KVA))
	fmt.Fprintf(tw, "primary current:\t%s\n", types.Amps(res.IPrimaryA))
	fmt.Fprintf(tw, "secondary current:\t%s\n", types.Amps(res.ISecondaryA))
	fmt.Fprintf(tw, "secondary L-N:\t%s\n", types.Volts(res.VSecondaryLNV))
	if res.VSecondaryLLV != nil {
		fmt.Fprintf(tw, "secondary L-L:\t%s\n", types.Volts(*res.VSecondaryLLV))
	}
	fmt.Fprintf(tw, "breaker primary:\t%s\n", res.CBPrimary)
	fmt.Fprintf(tw, "breaker secondary:\t%s\n", res.CBSecondary)
	fmt.Fprintf(tw, "breaker dc:\t%s\n", res.CBDC)
	fmt.Fprintf(tw, "wire primary:\t%s\n", res.WirePrimary)
	fmt.Fprintf(tw, "wire secondary:\t%s\n", res.WireSecondary)
	fmt.Fprintf(tw, "wire dc:\t%s\n", res.WireDC)
	fmt.Fprintf(tw, "heat:\t%s (%.0f BTU/h)\n", types.Kilowatts(res.HeatKW), res.HeatBTUH)
	fmt.Fprintf(tw, "airflow:\t%s\n", types.CFM(res.RequiredCFM))

	return tw.Flush()
}
