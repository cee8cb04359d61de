// Package version - Versionsnummer, beim Build per -ldflags gesetzt
package version

var Version string = "0.0.0"
