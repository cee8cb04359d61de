// cmd_builders.go - Command-Builder Funktionen
// Hauptfunktionen: newExportCmd, newStatsCmd, newVerifyCmd, newSchemesCmd, newServeCmd
package cmd

import (
	"github.com/spf13/cobra"
)

// newExportCmd - Erstellt den export Command
func newExportCmd() *cobra.Command {
	exportCmd := &cobra.Command{
		Use:   "export SNAPSHOT",
		Short: "Pack a quantized model snapshot into a C header",
		Long: `Pack a quantized model snapshot into a C header.

SNAPSHOT is a .json, .yaml or .pkl file holding the list of layers with
layer_order, quantization_type, incoming_weights, outgoing_weights and
quantized_weights (one row per outgoing channel).`,
		Args: cobra.ExactArgs(1),
		RunE: ExportHandler,
	}

	exportCmd.Flags().StringP("output", "o", "BitNetMCU_model.h", "Output header file (- for stdout)")
	exportCmd.Flags().String("guard", "", "Include guard of the header (default $MCU_HEADER_GUARD)")
	exportCmd.Flags().String("params", "", "Training parameter file used to derive the run name")
	exportCmd.Flags().String("run-name", "", "Run name written to the header comment")
	exportCmd.Flags().Bool("no-date", false, "Omit the generation date from the header")
	exportCmd.Flags().Bool("verify", false, "Unpack and decode every layer before writing")
	exportCmd.Flags().Int("parallel", 0, "Layers packed in parallel (default $MCU_NUM_PARALLEL)")
	exportCmd.Flags().Bool("remote", false, "Export through the server at $MCU_HOST")

	return exportCmd
}

// newStatsCmd - Erstellt den stats Command
func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "stats SNAPSHOT",
		Aliases: []string{"show"},
		Short:   "Show weight statistics per layer",
		Args:    cobra.ExactArgs(1),
		RunE:    StatsHandler,
	}
}

// newVerifyCmd - Erstellt den verify Command
func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify SNAPSHOT",
		Short: "Pack, unpack and decode every layer and compare with the snapshot",
		Args:  cobra.ExactArgs(1),
		RunE:  VerifyHandler,
	}
}

// newSchemesCmd - Erstellt den schemes Command
func newSchemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "schemes",
		Aliases: []string{"ls"},
		Short:   "List supported quantization types",
		Args:    cobra.NoArgs,
		RunE:    ListSchemesHandler,
	}
}

// newServeCmd - Erstellt den serve Command
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "serve",
		Aliases: []string{"start"},
		Short:   "Start the export API server",
		Args:    cobra.ExactArgs(0),
		RunE:    RunServer,
	}
}
