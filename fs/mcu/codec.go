// codec.go - Kodierung von Gewichten in Symbole und zurueck
//
// Dieses Modul enthaelt:
// - Encode: Ein Gewicht -> Symbol in [0, 2^bpw)
// - EncodeWeights: Ganze Gewichtsfolge eines Layers kodieren
// - Decode: Symbol -> Gewicht (Inverse auf der darstellbaren Menge)
// - Representable: Alle darstellbaren Werte eines Schemas
package mcu

import (
	"errors"
	"math"
)

// Encode kodiert ein bereits quantisiertes Gewicht in das Symbol des Schemas.
// Nicht darstellbare Werte liefern einen DomainError statt eines Muell-Symbols.
func Encode(s Scheme, w float64) (uint32, error) {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return 0, &DomainError{Scheme: s, Index: -1, Value: w}
	}

	var sign uint32
	if w < 0 {
		sign = 1
	}

	switch s {
	case SchemeBinary:
		switch w {
		case -1:
			return 0, nil
		case 1:
			return 1, nil
		}
	case SchemeTwoBitSym:
		// -1.5 -> 11, -0.5 -> 10, 0.5 -> 00, 1.5 -> 01 (Einerkomplement mit Offset)
		if mag, ok := halfStep(w, 1); ok {
			return sign<<1 | mag, nil
		}
	case SchemeFourBitSym:
		if mag, ok := halfStep(w, 7); ok {
			return sign<<3 | mag, nil
		}
	case SchemeFourBit:
		// Zweierkomplement-Nibble
		if w == math.Floor(w) && w >= -8 && w <= 7 {
			return uint32(int32(w)) & 0xF, nil
		}
	case SchemeFP130:
		// FP1.3.0: sign * 2^exp
		if w != 0 {
			frac, exp := math.Frexp(math.Abs(w))
			if frac == 0.5 && exp >= 1 && exp <= 8 {
				return sign<<3 | uint32(exp-1), nil
			}
		}
	default:
		return 0, s.Valid()
	}

	return 0, &DomainError{Scheme: s, Index: -1, Value: w}
}

// halfStep prueft |w| == k+0.5 mit 0 <= k <= max und liefert k
func halfStep(w float64, max uint32) (uint32, bool) {
	a := math.Abs(w)
	k := math.Floor(a)
	if a-k != 0.5 || k > float64(max) {
		return 0, false
	}
	return uint32(k), true
}

// EncodeWeights kodiert alle Gewichte eines Layers in gleicher Reihenfolge
func EncodeWeights(s Scheme, weights []float64) ([]uint32, error) {
	if err := s.Valid(); err != nil {
		return nil, err
	}

	symbols := make([]uint32, len(weights))
	for i, w := range weights {
		sym, err := Encode(s, w)
		if err != nil {
			var de *DomainError
			if errors.As(err, &de) {
				de.Index = i
			}
			return nil, err
		}
		symbols[i] = sym
	}
	return symbols, nil
}

// Decode liefert das Gewicht zu einem Symbol
func Decode(s Scheme, sym uint32) (float64, error) {
	bpw := s.BitsPerWeight()
	if bpw == 0 {
		return 0, s.Valid()
	}
	if sym >= 1<<bpw {
		return 0, &DomainError{Scheme: s, Index: -1, Value: float64(sym)}
	}

	sign := 1.0
	switch s {
	case SchemeBinary:
		if sym == 0 {
			return -1, nil
		}
		return 1, nil
	case SchemeTwoBitSym:
		if sym&0b10 != 0 {
			sign = -1
		}
		return sign * (float64(sym&0b01) + 0.5), nil
	case SchemeFourBitSym:
		if sym&0b1000 != 0 {
			sign = -1
		}
		return sign * (float64(sym&0b0111) + 0.5), nil
	case SchemeFourBit:
		// Vorzeichen-Erweiterung des Nibbles
		return float64(int32(sym<<28) >> 28), nil
	case SchemeFP130:
		if sym&0b1000 != 0 {
			sign = -1
		}
		return sign * math.Ldexp(1, int(sym&0b0111)), nil
	default:
		return 0, s.Valid()
	}
}

// Representable liefert alle darstellbaren Werte, geordnet nach Symbol
func Representable(s Scheme) ([]float64, error) {
	bpw := s.BitsPerWeight()
	if bpw == 0 {
		return nil, s.Valid()
	}

	values := make([]float64, 1<<bpw)
	for sym := range uint32(1 << bpw) {
		v, err := Decode(s, sym)
		if err != nil {
			return nil, err
		}
		values[sym] = v
	}
	return values, nil
}
