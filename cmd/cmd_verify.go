// cmd_verify.go - Round-Trip Pruefung eines Snapshots
// Hauptfunktionen: VerifyHandler
package cmd

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/bitnetmcu/mcuexport/convert"
	"github.com/bitnetmcu/mcuexport/envconfig"
	"github.com/bitnetmcu/mcuexport/fs/mcu"
)

// VerifyHandler - Packt alle Layer, entpackt und dekodiert sie wieder
func VerifyHandler(cmd *cobra.Command, args []string) error {
	m, err := convert.LoadSnapshot(args[0])
	if err != nil {
		return err
	}

	pm, err := mcu.PackModel(m, envconfig.NumParallel())
	if err != nil {
		return err
	}

	var data [][]string
	var failed error
	for i := range pm.Layers {
		p := &pm.Layers[i]
		status := "ok"
		if err := mcu.VerifyLayer(p); err != nil {
			status = err.Error()
			if failed == nil {
				failed = err
			}
		}

		data = append(data, []string{
			p.Name(),
			p.Scheme.String(),
			strconv.Itoa(p.Scheme.QuantID()),
			strconv.Itoa(len(p.Weights)),
			strconv.Itoa(len(p.Words)),
			status,
		})
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"LAYER", "QUANT", "ID", "WEIGHTS", "WORDS", "STATUS"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()

	return failed
}
