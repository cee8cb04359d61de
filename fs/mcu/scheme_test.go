package mcu

import (
	"errors"
	"strings"
	"testing"
)

func TestParseScheme(t *testing.T) {
	tests := []struct {
		input string
		want  Scheme
	}{
		{"Binary", SchemeBinary},
		{"binary", SchemeBinary},
		{"2bitsym", SchemeTwoBitSym},
		{"TwoBitSym", SchemeTwoBitSym},
		{"4bitsym", SchemeFourBitSym},
		{"FourBitSym", SchemeFourBitSym},
		{"4bit", SchemeFourBit},
		{"FourBit", SchemeFourBit},
		{"FP130", SchemeFP130},
		{" fp130 ", SchemeFP130},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseScheme(tt.input)
			if err != nil {
				t.Fatalf("ParseScheme(%q) Fehler: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseScheme(%q) = %v, erwartet %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseSchemeUnsupported(t *testing.T) {
	_, err := ParseScheme("8bit")
	if !errors.Is(err, ErrUnsupportedScheme) {
		t.Fatalf("erwartet ErrUnsupportedScheme, erhalten %v", err)
	}

	_, err = ParseScheme("2bitsm")
	if !errors.Is(err, ErrUnsupportedScheme) {
		t.Fatalf("erwartet ErrUnsupportedScheme, erhalten %v", err)
	}
	if !strings.Contains(err.Error(), "did you mean 2bitsym") {
		t.Errorf("Fehlender Vorschlag: %v", err)
	}

	_, err = ParseScheme("ternary")
	if err == nil || strings.Contains(err.Error(), "did you mean") {
		t.Errorf("kein Vorschlag erwartet: %v", err)
	}
}

func TestSchemeMetadata(t *testing.T) {
	tests := []struct {
		scheme  Scheme
		tag     string
		bpw     int
		quantID int
	}{
		{SchemeBinary, "Binary", 1, 1},
		{SchemeTwoBitSym, "2bitsym", 2, 2},
		{SchemeFourBitSym, "4bitsym", 4, 4},
		{SchemeFourBit, "4bit", 4, 12},
		{SchemeFP130, "FP130", 4, 20},
	}

	if len(Schemes()) != len(tests) {
		t.Fatalf("Schemes() hat %d Eintraege, erwartet %d", len(Schemes()), len(tests))
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			if got := tt.scheme.String(); got != tt.tag {
				t.Errorf("String() = %q, erwartet %q", got, tt.tag)
			}
			if got := tt.scheme.BitsPerWeight(); got != tt.bpw {
				t.Errorf("BitsPerWeight() = %d, erwartet %d", got, tt.bpw)
			}
			if got := tt.scheme.QuantID(); got != tt.quantID {
				t.Errorf("QuantID() = %d, erwartet %d", got, tt.quantID)
			}
			if err := tt.scheme.Valid(); err != nil {
				t.Errorf("Valid() = %v", err)
			}
		})
	}

	bad := Scheme(42)
	if bad.BitsPerWeight() != 0 || bad.QuantID() != 0 {
		t.Errorf("unbekanntes Schema darf keine Metadaten haben")
	}
	if !errors.Is(bad.Valid(), ErrUnsupportedScheme) {
		t.Errorf("Valid() fuer unbekanntes Schema: %v", bad.Valid())
	}
}

func TestSchemeText(t *testing.T) {
	for _, s := range Schemes() {
		b, err := s.MarshalText()
		if err != nil {
			t.Fatal(err)
		}

		var got Scheme
		if err := got.UnmarshalText(b); err != nil {
			t.Fatal(err)
		}
		if got != s {
			t.Errorf("%s: erhalten %s", s, got)
		}
	}

	if _, err := Scheme(9).MarshalText(); !errors.Is(err, ErrUnsupportedScheme) {
		t.Errorf("erwartet ErrUnsupportedScheme, erhalten %v", err)
	}
}
