// Package mcu - Bit-Packing der Layer-Symbole in 32bit-Woerter
//
// Dieses Modul enthaelt:
// - Pack/Unpack: Symbolfolge <-> 32bit-Woerter, MSB zuerst
// - PackedLayer: gepackter Layer mit Header-Makros
// - PackLayer: Validieren, Kodieren und Packen eines Layers
// - PackModel: Alle Layer parallel packen (errgroup)
// - VerifyLayer: Gepackte Woerter zurueck in Gewichte wandeln und vergleichen
package mcu

import (
	"fmt"
	"log/slog"
	"runtime"
	"strconv"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"golang.org/x/sync/errgroup"

	"github.com/bitnetmcu/mcuexport/logutil"
)

// checkBitWidth prueft die Vorbedingung, dass bpw die Wortbreite glatt teilt
func checkBitWidth(bpw int) error {
	if bpw < 1 || bpw > wordBits || wordBits%bpw != 0 {
		return fmt.Errorf("%w: %d bits per weight does not divide %d", ErrBitWidth, bpw, wordBits)
	}
	return nil
}

// Pack packt Symbole in 32bit-Woerter. Das erste Symbol einer Gruppe
// landet in den obersten bpw Bits, die folgenden darunter.
func Pack(symbols []uint32, bpw int) ([]uint32, error) {
	if err := checkBitWidth(bpw); err != nil {
		return nil, err
	}

	perWord := wordBits / bpw
	if len(symbols)%perWord != 0 {
		return nil, fmt.Errorf("%w: %d symbols at %d bits per weight do not fill whole %d bit words",
			ErrAlignment, len(symbols), bpw, wordBits)
	}

	limit := uint64(1) << bpw
	words := make([]uint32, len(symbols)/perWord)
	for i := range words {
		var word uint32
		for k, sym := range symbols[i*perWord : (i+1)*perWord] {
			if uint64(sym) >= limit {
				return nil, fmt.Errorf("%w: symbol %d = %d exceeds %d bits", ErrDomain, i*perWord+k, sym, bpw)
			}
			word |= sym << (wordBits - bpw*(k+1))
		}
		words[i] = word
	}

	return words, nil
}

// Unpack ist die Umkehrung von Pack
func Unpack(words []uint32, bpw int) ([]uint32, error) {
	if err := checkBitWidth(bpw); err != nil {
		return nil, err
	}

	perWord := wordBits / bpw
	mask := uint32(uint64(1)<<bpw - 1)
	symbols := make([]uint32, 0, len(words)*perWord)
	for _, word := range words {
		for k := range perWord {
			symbols = append(symbols, word>>(wordBits-bpw*(k+1))&mask)
		}
	}

	return symbols, nil
}

// PackedLayer ist ein fertig gepackter Layer
type PackedLayer struct {
	Layer
	Words []uint32
}

// Macros gibt die Header-Makros des Layers in Ausgabe-Reihenfolge zurueck.
// Ein leerer Wert erzeugt ein reines #define ohne Wert.
func (p *PackedLayer) Macros() *orderedmap.OrderedMap[string, string] {
	name := p.Name()
	m := orderedmap.New[string, string]()
	m.Set(name+"_active", "")
	m.Set(name+"_bitperweight", strconv.Itoa(p.Scheme.QuantID()))
	m.Set(name+"_incoming_weights", strconv.Itoa(p.Incoming))
	m.Set(name+"_outgoing_weights", strconv.Itoa(p.Outgoing))
	return m
}

// PackLayer validiert, kodiert und packt einen Layer
func PackLayer(l Layer) (PackedLayer, error) {
	if err := l.Validate(); err != nil {
		return PackedLayer{}, err
	}

	symbols, err := EncodeWeights(l.Scheme, l.Weights)
	if err != nil {
		return PackedLayer{}, fmt.Errorf("layer %s: %w", l.Name(), err)
	}

	words, err := Pack(symbols, l.BitsPerWeight())
	if err != nil {
		return PackedLayer{}, fmt.Errorf("layer %s: %w", l.Name(), err)
	}

	logutil.Trace("packed layer", "layer", l.Name(), "symbols", len(symbols), "words", len(words))
	return PackedLayer{Layer: l, Words: words}, nil
}

// PackedModel ist das gepackte Modell, bereit fuer den Header-Export
type PackedModel struct {
	Layers         []PackedLayer
	MaxActivations int
	TotalBits      int
}

// PackModel packt alle Layer eines Modells. Die Layer sind unabhaengig und
// werden parallel gepackt, das Ergebnis ist nach layer_order sortiert.
// parallel <= 0 nutzt GOMAXPROCS.
func PackModel(m *Model, parallel int) (*PackedModel, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	if parallel <= 0 {
		parallel = runtime.GOMAXPROCS(0)
	}

	layers := m.Sorted()
	packed := make([]PackedLayer, len(layers))

	var g errgroup.Group
	g.SetLimit(parallel)
	for i, l := range layers {
		g.Go(func() error {
			p, err := PackLayer(l)
			if err != nil {
				return err
			}
			packed[i] = p
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, p := range packed {
		slog.Info("layer packed", "layer", p.Name(), "quant_type", p.Scheme, "bpw", p.BitsPerWeight(),
			"incoming", p.Incoming, "outgoing", p.Outgoing, "words", len(p.Words))
	}

	return &PackedModel{
		Layers:         packed,
		MaxActivations: m.MaxActivations(),
		TotalBits:      m.TotalBits(),
	}, nil
}

// VerifyLayer entpackt und dekodiert die Woerter und vergleicht mit den Gewichten
func VerifyLayer(p *PackedLayer) error {
	symbols, err := Unpack(p.Words, p.BitsPerWeight())
	if err != nil {
		return err
	}

	if len(symbols) != len(p.Weights) {
		return fmt.Errorf("%w: layer %s unpacked %d weights, want %d", ErrVerify, p.Name(), len(symbols), len(p.Weights))
	}

	for i, sym := range symbols {
		w, err := Decode(p.Scheme, sym)
		if err != nil {
			return fmt.Errorf("layer %s: %w", p.Name(), err)
		}
		if w != p.Weights[i] {
			return fmt.Errorf("%w: layer %s weight %d decoded as %v, want %v", ErrVerify, p.Name(), i, w, p.Weights[i])
		}
	}

	return nil
}
