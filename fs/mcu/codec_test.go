package mcu

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name   string
		scheme Scheme
		in     []float64
		want   []uint32
	}{
		{"Binary", SchemeBinary, []float64{-1, 1, 1, -1}, []uint32{0, 1, 1, 0}},
		{"2bitsym", SchemeTwoBitSym, []float64{0.5, -0.5, 1.5, -1.5}, []uint32{0b00, 0b10, 0b01, 0b11}},
		{"4bitsym", SchemeFourBitSym, []float64{0.5, 3.5, -0.5, -3.5, 7.5, -7.5}, []uint32{0, 3, 8, 11, 7, 15}},
		{"4bit", SchemeFourBit, []float64{0, 1, 7, -1, -8, -3}, []uint32{0, 1, 7, 0xF, 0x8, 0xD}},
		{"FP130", SchemeFP130, []float64{1, 2, 4, 128, -1, -8, -128}, []uint32{0, 1, 2, 7, 8, 11, 15}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeWeights(tt.scheme, tt.in)
			if err != nil {
				t.Fatalf("EncodeWeights Fehler: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Symbole (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncodeDomainError(t *testing.T) {
	tests := []struct {
		name   string
		scheme Scheme
		value  float64
	}{
		{"Binary zero", SchemeBinary, 0},
		{"Binary half", SchemeBinary, 0.5},
		{"2bitsym integer", SchemeTwoBitSym, 1},
		{"2bitsym too large", SchemeTwoBitSym, 2.5},
		{"4bitsym too large", SchemeFourBitSym, 8.5},
		{"4bit fraction", SchemeFourBit, 1.5},
		{"4bit above range", SchemeFourBit, 8},
		{"4bit below range", SchemeFourBit, -9},
		{"FP130 zero", SchemeFP130, 0},
		{"FP130 not power of two", SchemeFP130, 3},
		{"FP130 exponent too large", SchemeFP130, 256},
		{"FP130 negative exponent", SchemeFP130, 0.5},
		{"NaN", SchemeFourBit, math.NaN()},
		{"Inf", SchemeBinary, math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EncodeWeights(tt.scheme, []float64{1, tt.value})
			if !errors.Is(err, ErrDomain) {
				t.Fatalf("erwartet ErrDomain, erhalten %v", err)
			}

			var de *DomainError
			if !errors.As(err, &de) {
				t.Fatalf("erwartet *DomainError, erhalten %T", err)
			}
			if de.Index != 1 {
				t.Errorf("Index = %d, erwartet 1", de.Index)
			}
		})
	}
}

func TestEncodeUnsupportedScheme(t *testing.T) {
	if _, err := EncodeWeights(Scheme(7), []float64{1}); !errors.Is(err, ErrUnsupportedScheme) {
		t.Errorf("erwartet ErrUnsupportedScheme, erhalten %v", err)
	}
	if _, err := Decode(Scheme(7), 0); !errors.Is(err, ErrUnsupportedScheme) {
		t.Errorf("erwartet ErrUnsupportedScheme, erhalten %v", err)
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	for _, s := range Schemes() {
		t.Run(s.String(), func(t *testing.T) {
			values, err := Representable(s)
			if err != nil {
				t.Fatal(err)
			}
			if len(values) != 1<<s.BitsPerWeight() {
				t.Fatalf("%d Werte, erwartet %d", len(values), 1<<s.BitsPerWeight())
			}

			for sym, v := range values {
				got, err := Encode(s, v)
				if err != nil {
					t.Fatalf("Encode(%v) Fehler: %v", v, err)
				}
				if got != uint32(sym) {
					t.Errorf("Encode(%v) = %d, erwartet %d", v, got, sym)
				}
			}
		})
	}
}

func TestDecodeOutOfRange(t *testing.T) {
	if _, err := Decode(SchemeTwoBitSym, 4); !errors.Is(err, ErrDomain) {
		t.Errorf("erwartet ErrDomain, erhalten %v", err)
	}
}
