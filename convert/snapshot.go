// snapshot.go - Laden von Modell-Snapshots (JSON, YAML, Pickle)
// Hauptfunktionen: DetectFormat, ReadSnapshot, LoadSnapshot
package convert

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bitnetmcu/mcuexport/fs/mcu"
)

// Format - Dateiformat eines Snapshots
type Format string

const (
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
	FormatPickle Format = "pickle"
)

// ErrUnknownFormat wird bei unbekannter Dateiendung geliefert
var ErrUnknownFormat = errors.New("unknown snapshot format")

// DetectFormat bestimmt das Format anhand der Dateiendung
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".pkl", ".pickle":
		return FormatPickle, nil
	default:
		return "", fmt.Errorf("%w: %s (supported: .json, .yaml, .yml, .pkl, .pickle)", ErrUnknownFormat, path)
	}
}

// ReadSnapshot liest einen Snapshot im angegebenen Format
func ReadSnapshot(r io.Reader, f Format) (*Snapshot, error) {
	var s Snapshot
	switch f {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&s); err != nil {
			return nil, fmt.Errorf("decode json snapshot: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&s); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml snapshot: %w", err)
		}
	case FormatPickle:
		records, err := readPickle(r)
		if err != nil {
			return nil, fmt.Errorf("decode pickle snapshot: %w", err)
		}
		s.Layers = records
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}

	return &s, nil
}

// LoadSnapshot liest eine Snapshot-Datei und wandelt sie in ein mcu.Model
func LoadSnapshot(path string) (*mcu.Model, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := ReadSnapshot(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Debug("snapshot loaded", "path", path, "format", format, "layers", len(s.Layers))
	return s.Model()
}
