// errors.go - Fehler-Definitionen fuer Codec, Packer und Header-Export
//
// Dieses Modul enthaelt:
// - Sentinel-Fehler (ErrUnsupportedScheme, ErrAlignment, ErrDomain, ErrEmptyModel, ...)
// - AlignmentError: Layer passt nicht auf 32bit-Grenze
// - DomainError: Gewicht ist im Schema nicht darstellbar
//
// Alle Fehler sind fatal fuer das erzeugte Artefakt, es gibt keinen Teil-Export.
package mcu

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedScheme wird bei unbekanntem Quantisierungstyp geliefert
	ErrUnsupportedScheme = errors.New("unsupported quantization type")

	// ErrAlignment wird geliefert wenn bpw*incoming kein Vielfaches von 32 ist
	ErrAlignment = errors.New("size mismatch")

	// ErrDomain wird geliefert wenn ein Wert im Schema nicht kodierbar ist
	ErrDomain = errors.New("value not representable")

	// ErrEmptyModel wird geliefert wenn das Modell keine Layer hat
	ErrEmptyModel = errors.New("quantized model is empty")

	// ErrShapeMismatch wird geliefert wenn die Anzahl Gewichte nicht incoming*outgoing ist
	ErrShapeMismatch = errors.New("weight count does not match layer shape")

	// ErrLayerOrder wird bei doppelter oder lueckenhafter layer_order geliefert
	ErrLayerOrder = errors.New("invalid layer order")

	// ErrBitWidth wird geliefert wenn die Bitbreite 32 nicht glatt teilt
	ErrBitWidth = errors.New("invalid bit width")

	// ErrVerify wird geliefert wenn Entpacken nicht die Originalgewichte ergibt
	ErrVerify = errors.New("packed weights do not round-trip")
)

// AlignmentError beschreibt einen Layer, dessen Zeilen nicht auf 32bit-Woerter passen
type AlignmentError struct {
	Layer         string
	BitsPerWeight int
	Incoming      int
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("%s: layer %s: incoming weights must be packed to 32bit boundary. Incoming weights: %d Bit per weight: %d Total bits: %d",
		ErrAlignment, e.Layer, e.Incoming, e.BitsPerWeight, e.BitsPerWeight*e.Incoming)
}

func (e *AlignmentError) Unwrap() error {
	return ErrAlignment
}

// DomainError beschreibt ein Gewicht, das im Schema keinen Code hat
type DomainError struct {
	Scheme Scheme
	Index  int
	Value  float64
}

func (e *DomainError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %v under %s", ErrDomain, e.Value, e.Scheme)
	}
	return fmt.Sprintf("%s: weight %d = %v under %s", ErrDomain, e.Index, e.Value, e.Scheme)
}

func (e *DomainError) Unwrap() error {
	return ErrDomain
}
