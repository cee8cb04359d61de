// Package server - HTTP-API fuer den Header-Export
// Beinhaltet: Server-Struct, Router-Registrierung, Server-Start
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/bitnetmcu/mcuexport/envconfig"
	"github.com/bitnetmcu/mcuexport/version"
)

var mode string = gin.DebugMode

// Server haelt die Listen-Adresse fuer die Host-Pruefung
type Server struct {
	addr net.Addr
}

func init() {
	switch mode {
	case gin.DebugMode:
	case gin.ReleaseMode:
	case gin.TestMode:
	default:
		mode = gin.DebugMode
	}

	gin.SetMode(mode)
}

// GenerateRoutes erstellt und konfiguriert den HTTP-Router
func (s *Server) GenerateRoutes() http.Handler {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowWildcard = true
	corsConfig.AllowBrowserExtensions = true
	corsConfig.AllowHeaders = []string{
		"Authorization",
		"Content-Type",
		"User-Agent",
		"Accept",
		"X-Requested-With",
	}
	corsConfig.AllowOrigins = envconfig.AllowedOrigins()

	r := gin.Default()
	r.HandleMethodNotAllowed = true
	r.Use(
		cors.New(corsConfig),
		allowedHostsMiddleware(s.addr),
	)

	// General
	r.HEAD("/", func(c *gin.Context) { c.String(http.StatusOK, "mcuexport is running") })
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "mcuexport is running") })
	r.HEAD("/api/version", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"version": version.Version}) })
	r.GET("/api/version", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"version": version.Version}) })

	// Schemata
	r.HEAD("/api/schemes", s.SchemesHandler)
	r.GET("/api/schemes", s.SchemesHandler)

	// Export
	r.POST("/api/export", s.ExportHandler)
	r.POST("/api/stats", s.StatsHandler)
	r.POST("/api/verify", s.VerifyHandler)

	return r
}

// Serve startet den HTTP-Server und blockiert bis SIGINT/SIGTERM oder ctx endet
func Serve(ctx context.Context, ln net.Listener) error {
	slog.Info("server config", "env", envconfig.Values())

	s := &Server{addr: ln.Addr()}
	srvr := &http.Server{
		Handler: s.GenerateRoutes(),
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		if err := srvr.Shutdown(context.Background()); err != nil {
			slog.Warn("server shutdown", "error", err)
		}
	}()

	slog.Info(fmt.Sprintf("Listening on %s (version %s)", ln.Addr(), version.Version))
	return srvr.Serve(ln)
}
