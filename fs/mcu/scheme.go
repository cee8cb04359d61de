// scheme.go - Quantisierungs-Schemata fuer den MCU-Export
// Enthaelt: Scheme Konstanten, Parsing, Bitbreite und QuantID

package mcu

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Scheme ist die Kodierungsregel eines Layers
type Scheme uint8

const (
	SchemeBinary Scheme = iota
	SchemeTwoBitSym
	SchemeFourBitSym
	SchemeFourBit
	SchemeFP130

	schemeCount
)

// Schemes listet alle unterstuetzten Schemata in QuantID-Reihenfolge
func Schemes() []Scheme {
	s := make([]Scheme, 0, schemeCount)
	for i := range schemeCount {
		s = append(s, i)
	}
	return s
}

// ParseScheme parst den Quantisierungstyp aus einem String
// Akzeptiert die Exporter-Tags (2bitsym, 4bit, ...) und die langen Namen (TwoBitSym, ...)
func ParseScheme(s string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "binary":
		return SchemeBinary, nil
	case "2bitsym", "twobitsym":
		return SchemeTwoBitSym, nil
	case "4bitsym", "fourbitsym":
		return SchemeFourBitSym, nil
	case "4bit", "fourbit":
		return SchemeFourBit, nil
	case "fp130":
		return SchemeFP130, nil
	default:
		strs := make([]string, 0, schemeCount)
		for _, t := range Schemes() {
			strs = append(strs, t.String())
		}

		if hint := closestScheme(s); hint != "" {
			return 0, fmt.Errorf("%w %q - did you mean %s? supported types are %s", ErrUnsupportedScheme, s, hint, strings.Join(strs, ", "))
		}
		return 0, fmt.Errorf("%w %q - supported types are %s", ErrUnsupportedScheme, s, strings.Join(strs, ", "))
	}
}

// closestScheme sucht den naechstgelegenen Tag fuer Tippfehler
func closestScheme(s string) string {
	best, dist := "", 3
	for _, t := range Schemes() {
		if d := levenshtein.ComputeDistance(strings.ToLower(s), strings.ToLower(t.String())); d < dist {
			best, dist = t.String(), d
		}
	}
	return best
}

// String gibt den Tag zurueck, der im Header als QuantType erscheint
func (s Scheme) String() string {
	switch s {
	case SchemeBinary:
		return "Binary"
	case SchemeTwoBitSym:
		return "2bitsym"
	case SchemeFourBitSym:
		return "4bitsym"
	case SchemeFourBit:
		return "4bit"
	case SchemeFP130:
		return "FP130"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(s))
	}
}

// BitsPerWeight gibt die feste Bitbreite des Schemas zurueck, 0 bei unbekanntem Schema
func (s Scheme) BitsPerWeight() int {
	switch s {
	case SchemeBinary:
		return 1
	case SchemeTwoBitSym:
		return 2
	case SchemeFourBitSym, SchemeFourBit, SchemeFP130:
		return 4
	default:
		return 0
	}
}

// QuantID ist die Kennung fuer den eingebetteten Decoder.
// Untere Bits = Bitbreite, Bit 3 = Zweierkomplement, Bit 4 = FP1.3.0
func (s Scheme) QuantID() int {
	switch s {
	case SchemeBinary:
		return 1
	case SchemeTwoBitSym:
		return 2
	case SchemeFourBitSym:
		return 4
	case SchemeFourBit:
		return 8 + 4
	case SchemeFP130:
		return 16 + 4
	default:
		return 0
	}
}

// Valid prueft ob das Schema bekannt ist
func (s Scheme) Valid() error {
	if s >= schemeCount {
		return fmt.Errorf("%w %s", ErrUnsupportedScheme, s)
	}
	return nil
}

// MarshalText implementiert encoding.TextMarshaler
func (s Scheme) MarshalText() ([]byte, error) {
	if err := s.Valid(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

// UnmarshalText implementiert encoding.TextUnmarshaler
func (s *Scheme) UnmarshalText(b []byte) error {
	t, err := ParseScheme(string(b))
	if err != nil {
		return err
	}
	*s = t
	return nil
}
