// cmd_export.go - Export eines Snapshots als C-Header
// Hauptfunktionen: ExportHandler, remoteExport, headerOptions, verifyModel
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bitnetmcu/mcuexport/api"
	"github.com/bitnetmcu/mcuexport/convert"
	"github.com/bitnetmcu/mcuexport/envconfig"
	"github.com/bitnetmcu/mcuexport/fs/mcu"
)

// ExportHandler - Packt den Snapshot und schreibt den Header
func ExportHandler(cmd *cobra.Command, args []string) error {
	opts, err := headerOptions(cmd)
	if err != nil {
		return err
	}

	if remote, _ := cmd.Flags().GetBool("remote"); remote {
		return remoteExport(cmd, args[0], opts)
	}

	m, err := convert.LoadSnapshot(args[0])
	if err != nil {
		return err
	}

	parallel, _ := cmd.Flags().GetInt("parallel")
	if parallel <= 0 {
		parallel = envconfig.NumParallel()
	}

	pm, err := mcu.PackModel(m, parallel)
	if err != nil {
		return err
	}

	if verify, _ := cmd.Flags().GetBool("verify"); verify {
		if err := verifyModel(pm); err != nil {
			return err
		}
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "-" {
		return mcu.WriteHeader(cmd.OutOrStdout(), pm, opts)
	}

	if err := mcu.WriteHeaderFile(output, pm, opts); err != nil {
		return err
	}

	slog.Info("header written", "path", output, "layers", len(pm.Layers), "max_activations", pm.MaxActivations)
	fmt.Fprintf(cmd.OutOrStdout(), "Total number of bits: %d (%g kbytes)\n", pm.TotalBits, float64(pm.TotalBits)/8/1024)
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d layers to %s\n", len(pm.Layers), output)
	return nil
}

// remoteExport - Laesst den Header von einem laufenden Server erzeugen
func remoteExport(cmd *cobra.Command, path string, opts mcu.HeaderOptions) error {
	format, err := convert.DetectFormat(path)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	client, err := api.ClientFromEnvironment()
	if err != nil {
		return err
	}

	header, err := client.Export(cmd.Context(), f, &api.ExportRequest{
		Format:  string(format),
		Guard:   opts.Guard,
		RunName: opts.RunName,
		NoDate:  opts.Date.IsZero(),
	})
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "-" {
		_, err := cmd.OutOrStdout().Write(header)
		return err
	}

	if err := os.WriteFile(output, header, 0o644); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", path, output)
	return nil
}

// headerOptions - Liest Guard, Run-Name und Datum aus Flags und Environment
func headerOptions(cmd *cobra.Command) (mcu.HeaderOptions, error) {
	opts := mcu.HeaderOptions{Guard: envconfig.HeaderGuard()}

	if guard, _ := cmd.Flags().GetString("guard"); guard != "" {
		opts.Guard = guard
	}

	opts.RunName, _ = cmd.Flags().GetString("run-name")
	if params, _ := cmd.Flags().GetString("params"); opts.RunName == "" && params != "" {
		p, err := convert.LoadParameters(params)
		if err != nil {
			return opts, err
		}
		opts.RunName = p.RunName()
	}

	if noDate, _ := cmd.Flags().GetBool("no-date"); !noDate && !envconfig.NoDate() {
		opts.Date = time.Now()
	}

	return opts, nil
}

// verifyModel - Prueft jeden gepackten Layer per Round-Trip
func verifyModel(pm *mcu.PackedModel) error {
	for i := range pm.Layers {
		if err := mcu.VerifyLayer(&pm.Layers[i]); err != nil {
			return err
		}
		slog.Debug("layer verified", "layer", pm.Layers[i].Name())
	}
	return nil
}
