// cmd.go - Haupt-CLI Setup und Root Command
// Hauptfunktionen: NewCLI, appendEnvDocs
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/containerd/console"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bitnetmcu/mcuexport/envconfig"
	"github.com/bitnetmcu/mcuexport/logutil"
)

// appendEnvDocs - Fuegt Umgebungsvariablen-Dokumentation zum Command hinzu
func appendEnvDocs(cmd *cobra.Command, envs []envconfig.EnvVar) {
	if len(envs) == 0 {
		return
	}

	envUsage := `
Environment Variables:
`
	for _, e := range envs {
		envUsage += fmt.Sprintf("      %-24s   %s\n", e.Name, e.Description)
	}

	cmd.SetUsageTemplate(cmd.UsageTemplate() + envUsage)
}

// NewCLI - Erstellt das Haupt-CLI mit allen Commands
func NewCLI() *cobra.Command {
	cobra.EnableCommandSorting = false

	if runtime.GOOS == "windows" && term.IsTerminal(int(os.Stdout.Fd())) {
		console.ConsoleFromFile(os.Stdin) //nolint:errcheck
	}

	rootCmd := &cobra.Command{
		Use:           "mcuexport",
		Short:         "Pack quantized network weights into a C header for microcontrollers",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			slog.SetDefault(logutil.NewLogger(cmd.ErrOrStderr(), envconfig.LogLevel()))
		},
		Run: func(cmd *cobra.Command, args []string) {
			if version, _ := cmd.Flags().GetBool("version"); version {
				versionHandler(cmd, args)
				return
			}

			cmd.Print(cmd.UsageString())
		},
	}

	rootCmd.Flags().BoolP("version", "v", false, "Show version information")

	// Commands erstellen
	exportCmd := newExportCmd()
	statsCmd := newStatsCmd()
	verifyCmd := newVerifyCmd()
	schemesCmd := newSchemesCmd()
	serveCmd := newServeCmd()

	// Environment-Dokumentation hinzufuegen
	envVars := envconfig.AsMap()
	envs := []envconfig.EnvVar{envVars["MCU_DEBUG"], envVars["MCU_NUM_PARALLEL"]}

	for _, cmd := range []*cobra.Command{
		exportCmd,
		statsCmd,
		verifyCmd,
		serveCmd,
	} {
		switch cmd {
		case exportCmd:
			appendEnvDocs(cmd, append(envs, envVars["MCU_HEADER_GUARD"], envVars["MCU_NO_DATE"]))
		case serveCmd:
			appendEnvDocs(cmd, []envconfig.EnvVar{
				envVars["MCU_DEBUG"],
				envVars["MCU_HOST"],
				envVars["MCU_ORIGINS"],
				envVars["MCU_HEADER_GUARD"],
				envVars["MCU_NUM_PARALLEL"],
				envVars["MCU_MAX_BODY"],
			})
		default:
			appendEnvDocs(cmd, envs)
		}
	}

	rootCmd.AddCommand(
		exportCmd,
		statsCmd,
		verifyCmd,
		schemesCmd,
		serveCmd,
	)

	return rootCmd
}
