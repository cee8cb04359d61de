// types.go - Request/Response-Typen der HTTP-API
// Enthaelt: StatusError, ExportRequest, SchemeInfo, LayerResult, SchemesResponse, StatsResponse, VerifyResponse
package api

import (
	"fmt"

	"github.com/bitnetmcu/mcuexport/fs/mcu"
)

// StatusError ist ein Fehler mit HTTP-Status und Meldung
type StatusError struct {
	StatusCode   int
	Status       string
	ErrorMessage string `json:"error"`
}

func (e StatusError) Error() string {
	switch {
	case e.Status != "" && e.ErrorMessage != "":
		return fmt.Sprintf("%s: %s", e.Status, e.ErrorMessage)
	case e.Status != "":
		return e.Status
	case e.ErrorMessage != "":
		return e.ErrorMessage
	default:
		return "something went wrong, please see the mcuexport server logs for details"
	}
}

// ExportRequest steuert den Header-Export auf dem Server.
// Format ist json, yaml oder pickle, leer bedeutet json.
// NoDate laesst die Datumszeile weg, unabhaengig von MCU_NO_DATE auf dem Server.
type ExportRequest struct {
	Format  string
	Guard   string
	RunName string
	NoDate  bool
}

// SchemeInfo beschreibt ein Quantisierungs-Schema
type SchemeInfo struct {
	Name          string    `json:"name"`
	BitsPerWeight int       `json:"bits_per_weight"`
	QuantID       int       `json:"quant_id"`
	Values        []float64 `json:"values"`
}

// SchemesResponse ist die Antwort von GET /api/schemes
type SchemesResponse struct {
	Schemes []SchemeInfo `json:"schemes"`
}

// StatsResponse ist die Antwort von POST /api/stats
type StatsResponse struct {
	Layers    []mcu.LayerStats `json:"layers"`
	TotalBits int              `json:"total_bits"`
}

// LayerResult ist das Ergebnis der Verifikation eines Layers
type LayerResult struct {
	Layer  string     `json:"layer"`
	Scheme mcu.Scheme `json:"quantization_type"`
	Words  int        `json:"words"`
	Error  string     `json:"error,omitempty"`
}

// VerifyResponse ist die Antwort von POST /api/verify
type VerifyResponse struct {
	OK        bool          `json:"ok"`
	Layers    []LayerResult `json:"layers"`
	TotalBits int           `json:"total_bits"`
}
