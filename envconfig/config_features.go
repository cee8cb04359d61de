// config_features.go - Parallelitaet und Limits
//
// Dieses Modul enthaelt:
// - Parallelitaet beim Packen der Layer
// - Limits des API-Servers
package envconfig

import "runtime"

// =============================================================================
// Parallelitaets-Einstellungen
// =============================================================================

var (
	// numParallel ist die Anzahl gleichzeitig gepackter Layer, 0 = GOMAXPROCS
	numParallel = Uint("MCU_NUM_PARALLEL", 0)
)

// NumParallel gibt die Anzahl gleichzeitig gepackter Layer zurueck
// Konfigurierbar via MCU_NUM_PARALLEL
// Default: GOMAXPROCS
func NumParallel() int {
	if n := numParallel(); n > 0 {
		return int(n)
	}
	return runtime.GOMAXPROCS(0)
}

// =============================================================================
// Server-Limits
// =============================================================================

var (
	// MaxBodySize begrenzt die Groesse eines Snapshot-Uploads (in Bytes)
	// Konfigurierbar via MCU_MAX_BODY
	MaxBodySize = Uint64("MCU_MAX_BODY", 64<<20)

	// NoDate laesst die Datumszeile im Header weg (reproduzierbare Builds)
	NoDate = Bool("MCU_NO_DATE")
)
