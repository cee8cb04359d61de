// routes_export.go - Handler fuer Export, Statistik und Verifikation
// Enthaelt: SchemesHandler, ExportHandler, StatsHandler, VerifyHandler, readModel
package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bitnetmcu/mcuexport/api"
	"github.com/bitnetmcu/mcuexport/convert"
	"github.com/bitnetmcu/mcuexport/envconfig"
	"github.com/bitnetmcu/mcuexport/fs/mcu"
)

// SchemesHandler listet alle unterstuetzten Schemata
func (s *Server) SchemesHandler(c *gin.Context) {
	var schemes []api.SchemeInfo
	for _, scheme := range mcu.Schemes() {
		values, err := mcu.Representable(scheme)
		if err != nil {
			abortWithError(c, err)
			return
		}

		schemes = append(schemes, api.SchemeInfo{
			Name:          scheme.String(),
			BitsPerWeight: scheme.BitsPerWeight(),
			QuantID:       scheme.QuantID(),
			Values:        values,
		})
	}

	c.JSON(http.StatusOK, api.SchemesResponse{Schemes: schemes})
}

// ExportHandler packt den Snapshot im Body und liefert den C-Header
func (s *Server) ExportHandler(c *gin.Context) {
	m, err := readModel(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	pm, err := mcu.PackModel(m, envconfig.NumParallel())
	if err != nil {
		abortWithError(c, err)
		return
	}

	opts := mcu.HeaderOptions{
		Guard:   c.DefaultQuery("guard", envconfig.HeaderGuard()),
		RunName: c.Query("run_name"),
	}
	noDate, err := strconv.ParseBool(c.DefaultQuery("no_date", "false"))
	if err != nil {
		abortWithError(c, fmt.Errorf("%w: no_date: %w", errInvalidRequest, err))
		return
	}
	if !noDate && !envconfig.NoDate() {
		opts.Date = time.Now()
	}

	var b bytes.Buffer
	if err := mcu.WriteHeader(&b, pm, opts); err != nil {
		abortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="BitNetMCU_model.h"`)
	c.Data(http.StatusOK, "text/x-c; charset=utf-8", b.Bytes())
}

// StatsHandler liefert die Gewichts-Statistik pro Layer
func (s *Server) StatsHandler(c *gin.Context) {
	m, err := readModel(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	if err := m.Validate(); err != nil {
		abortWithError(c, err)
		return
	}

	layers := m.Sorted()
	stats := make([]mcu.LayerStats, len(layers))
	for i := range layers {
		if stats[i], err = mcu.ComputeStats(&layers[i]); err != nil {
			abortWithError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, api.StatsResponse{Layers: stats, TotalBits: m.TotalBits()})
}

// VerifyHandler packt, entpackt und dekodiert alle Layer.
// Abweichungen werden pro Layer gemeldet, der Status bleibt 200.
func (s *Server) VerifyHandler(c *gin.Context) {
	m, err := readModel(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	pm, err := mcu.PackModel(m, envconfig.NumParallel())
	if err != nil {
		abortWithError(c, err)
		return
	}

	ok := true
	results := make([]api.LayerResult, len(pm.Layers))
	for i := range pm.Layers {
		p := &pm.Layers[i]
		results[i] = api.LayerResult{Layer: p.Name(), Scheme: p.Scheme, Words: len(p.Words)}
		if err := mcu.VerifyLayer(p); err != nil {
			if !errors.Is(err, mcu.ErrVerify) {
				abortWithError(c, err)
				return
			}
			results[i].Error = err.Error()
			ok = false
		}
	}

	c.JSON(http.StatusOK, api.VerifyResponse{OK: ok, Layers: results, TotalBits: pm.TotalBits})
}

// readModel liest den Snapshot aus dem Body. Das Format kommt aus ?format=,
// Standard ist JSON.
func readModel(c *gin.Context) (*mcu.Model, error) {
	limitBody(c)

	f := convert.Format(c.DefaultQuery("format", string(convert.FormatJSON)))
	snap, err := convert.ReadSnapshot(c.Request.Body, f)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.Is(err, convert.ErrUnknownFormat) || errors.As(err, &maxBytesErr) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", errInvalidRequest, err)
	}

	return snap.Model()
}
