// header_write.go - Export des gepackten Modells als ANSI-C Header
//
// Dieses Modul enthaelt:
// - HeaderOptions: Guard, Run-Name und Datum fuer den Kopfkommentar
// - WriteHeader: Schreibt den Header in einen io.Writer
// - WriteHeaderFile: Schreibt den Header in eine Datei, nur bei fehlerfreiem Export
package mcu

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"
)

// DefaultGuard ist der Include-Guard, den die Firmware erwartet
const DefaultGuard = "BITNETMCU_MODEL_H"

// wordsPerLine ist die Anzahl Hex-Literale pro Zeile im Gewichts-Array
const wordsPerLine = 8

// HeaderOptions steuert den Kopf des erzeugten Headers.
// Ein leeres Datum oder ein leerer RunName lassen die jeweilige Kommentarzeile weg.
type HeaderOptions struct {
	Guard   string
	RunName string
	Date    time.Time
}

// WriteHeader schreibt das gepackte Modell als C-Header.
// Der Header wird komplett im Speicher erzeugt und in einem Schritt geschrieben.
func WriteHeader(w io.Writer, pm *PackedModel, opts HeaderOptions) error {
	if pm == nil || len(pm.Layers) == 0 {
		return ErrEmptyModel
	}

	guard := opts.Guard
	if guard == "" {
		guard = DefaultGuard
	}

	var b bytes.Buffer
	b.WriteString("// Automatically generated header file\n")
	if !opts.Date.IsZero() {
		fmt.Fprintf(&b, "// Date: %s\n", opts.Date.Format(time.DateTime))
	}
	if opts.RunName != "" {
		fmt.Fprintf(&b, "// Quantized model exported from %s.pth\n", opts.RunName)
	}
	b.WriteString("// Generated by mcuexport\n\n")

	b.WriteString("#include <stdint.h>\n\n")

	fmt.Fprintf(&b, "#ifndef %s\n", guard)
	fmt.Fprintf(&b, "#define %s\n\n", guard)

	b.WriteString("// Number of layers\n")
	fmt.Fprintf(&b, "#define NUM_LAYERS %d\n\n", len(pm.Layers))
	b.WriteString("// Maximum number of activations per layer\n")
	fmt.Fprintf(&b, "#define MAX_N_ACTIVATIONS %d\n\n", pm.MaxActivations)

	for i := range pm.Layers {
		writeLayer(&b, &pm.Layers[i])
	}

	b.WriteString("#endif\n")

	_, err := b.WriteTo(w)
	return err
}

// writeLayer schreibt Makros und Gewichts-Array eines Layers
func writeLayer(b *bytes.Buffer, p *PackedLayer) {
	name := p.Name()
	fmt.Fprintf(b, "// Layer: %s\n", name)
	fmt.Fprintf(b, "// QuantType: %s\n", p.Scheme)

	for pair := p.Macros().Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value == "" {
			fmt.Fprintf(b, "#define %s\n", pair.Key)
		} else {
			fmt.Fprintf(b, "#define %s %s\n", pair.Key, pair.Value)
		}
	}

	fmt.Fprintf(b, "const uint32_t %s_weights[] = {", name)
	for i, word := range p.Words {
		if i%wordsPerLine == 0 {
			b.WriteString("\n\t")
		}
		fmt.Fprintf(b, "0x%08x,", word)
	}
	b.WriteString("\n}; //first channel is topmost bit\n\n")
}

// WriteHeaderFile schreibt den Header nach path.
// Die Datei wird erst angelegt, wenn der Header fehlerfrei erzeugt wurde.
func WriteHeaderFile(path string, pm *PackedModel, opts HeaderOptions) error {
	var b bytes.Buffer
	if err := WriteHeader(&b, pm, opts); err != nil {
		return err
	}

	return os.WriteFile(path, b.Bytes(), 0o644)
}
