// cmd_show.go - Gewichts-Statistik eines Snapshots
// Hauptfunktionen: StatsHandler, formatValues
package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/bitnetmcu/mcuexport/convert"
	"github.com/bitnetmcu/mcuexport/fs/mcu"
)

// StatsHandler - Zeigt Min/Max/Mittel/Std, Werteverteilung und Entropie pro Layer
func StatsHandler(cmd *cobra.Command, args []string) error {
	m, err := convert.LoadSnapshot(args[0])
	if err != nil {
		return err
	}

	if err := m.Validate(); err != nil {
		return err
	}

	var data [][]string
	for _, l := range m.Sorted() {
		s, err := mcu.ComputeStats(&l)
		if err != nil {
			return err
		}

		data = append(data, []string{
			s.Layer,
			s.Scheme.String(),
			formatFloat(s.Min),
			formatFloat(s.Max),
			formatFloat(s.Mean),
			formatFloat(s.Std),
			fmt.Sprintf("%.2f", s.Entropy),
			fmt.Sprintf("%.1f%%", s.CapacityUsed),
			formatValues(s.Values),
		})
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"LAYER", "QUANT", "MIN", "MAX", "MEAN", "STD", "ENTROPY", "CAPACITY", "VALUES"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.SetAutoWrapText(false)
	table.AppendBulk(data)
	table.Render()

	fmt.Fprintf(cmd.OutOrStdout(), "\nTotal number of bits: %d (%g kbytes)\n", m.TotalBits(), float64(m.TotalBits())/8/1024)
	return nil
}

// formatValues - Werteverteilung als "wert:prozent" Liste
func formatValues(values []mcu.ValueCount) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%s:%.1f%%", formatFloat(v.Value), v.Percent)
	}
	return strings.Join(parts, " ")
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', 4, 64)
}
