// cmd_serve.go - Server Start und Version
// Hauptfunktionen: RunServer, versionHandler
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/bitnetmcu/mcuexport/api"
	"github.com/bitnetmcu/mcuexport/envconfig"
	"github.com/bitnetmcu/mcuexport/server"
	"github.com/bitnetmcu/mcuexport/version"
)

// RunServer - Startet den Export-Server auf MCU_HOST
func RunServer(cmd *cobra.Command, _ []string) error {
	ln, err := net.Listen("tcp", envconfig.Host().Host)
	if err != nil {
		return err
	}

	err = server.Serve(cmd.Context(), ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}

// versionHandler - Zeigt die Version von Client und laufendem Server an
func versionHandler(cmd *cobra.Command, _ []string) {
	fmt.Fprintf(cmd.OutOrStdout(), "mcuexport version is %s\n", version.Version)

	client, err := api.ClientFromEnvironment()
	if err != nil {
		return
	}

	serverVersion, err := client.Version(cmd.Context())
	if err != nil {
		slog.Debug("no running server", "host", envconfig.Host(), "error", err)
		return
	}

	if serverVersion != version.Version {
		fmt.Fprintf(cmd.OutOrStdout(), "Warning: server version is %s\n", serverVersion)
	}
}
