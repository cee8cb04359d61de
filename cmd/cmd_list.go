// cmd_list.go - Liste der Quantisierungs-Schemata
// Hauptfunktionen: ListSchemesHandler
package cmd

import (
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/bitnetmcu/mcuexport/fs/mcu"
)

// ListSchemesHandler - Listet alle Schemata mit Bitbreite, QuantID und Werten
func ListSchemesHandler(cmd *cobra.Command, _ []string) error {
	var data [][]string
	for _, s := range mcu.Schemes() {
		values, err := mcu.Representable(s)
		if err != nil {
			return err
		}

		data = append(data, []string{
			s.String(),
			strconv.Itoa(s.BitsPerWeight()),
			strconv.Itoa(s.QuantID()),
			formatList(values),
		})
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"NAME", "BITS", "ID", "VALUES"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.SetAutoWrapText(false)
	table.AppendBulk(data)
	table.Render()

	return nil
}

// formatList - Werte durch Leerzeichen getrennt
func formatList(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = formatFloat(v)
	}
	return strings.Join(parts, " ")
}
