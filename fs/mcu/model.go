// model.go - Layer- und Modell-Beschreibung fuer den Export
// Enthaelt: Layer, Model, Validierung, MaxActivations, TotalBits

package mcu

import (
	"cmp"
	"fmt"
	"slices"
)

// wordBits ist die Wortbreite des eingebetteten Decoders
const wordBits = 32

// Layer beschreibt einen quantisierten Layer in Ausfuehrungsreihenfolge.
// Weights ist zeilenweise: Outgoing Zeilen mit je Incoming Gewichten.
type Layer struct {
	Order    int
	Incoming int
	Outgoing int
	Scheme   Scheme
	Weights  []float64
}

// Name gibt den Praefix der Header-Makros zurueck, z.B. L0
func (l *Layer) Name() string {
	return fmt.Sprintf("L%d", l.Order)
}

// BitsPerWeight gibt die Bitbreite des Layer-Schemas zurueck
func (l *Layer) BitsPerWeight() int {
	return l.Scheme.BitsPerWeight()
}

// TotalBits gibt die gepackte Groesse des Layers in Bit zurueck.
// Nach Validate gilt len(Weights) == Incoming*Outgoing.
func (l *Layer) TotalBits() int {
	return l.BitsPerWeight() * len(l.Weights)
}

// Validate prueft Schema, Form und 32bit-Ausrichtung des Layers
func (l *Layer) Validate() error {
	if err := l.Scheme.Valid(); err != nil {
		return fmt.Errorf("layer %s: %w", l.Name(), err)
	}

	if l.Incoming <= 0 || l.Outgoing <= 0 {
		return fmt.Errorf("%w: layer %s has shape %dx%d", ErrShapeMismatch, l.Name(), l.Outgoing, l.Incoming)
	}

	// Division statt Produkt, damit grosse Dimensionen nicht ueberlaufen
	if n := len(l.Weights); n%l.Incoming != 0 || n/l.Incoming != l.Outgoing {
		return fmt.Errorf("%w: layer %s has %d weights, want %d outgoing x %d incoming",
			ErrShapeMismatch, l.Name(), n, l.Outgoing, l.Incoming)
	}

	if bpw := l.BitsPerWeight(); bpw*l.Incoming%wordBits != 0 {
		return &AlignmentError{Layer: l.Name(), BitsPerWeight: bpw, Incoming: l.Incoming}
	}

	return nil
}

// Model ist die geordnete Folge der Layer eines quantisierten Netzes
type Model struct {
	Layers []Layer
}

// Validate prueft ob das Modell exportierbar ist.
// layer_order muss eindeutig und lueckenlos bei 0 beginnen.
func (m *Model) Validate() error {
	if len(m.Layers) == 0 {
		return ErrEmptyModel
	}

	seen := make([]bool, len(m.Layers))
	for i := range m.Layers {
		o := m.Layers[i].Order
		if o < 0 || o >= len(m.Layers) {
			return fmt.Errorf("%w: layer_order %d out of range [0, %d)", ErrLayerOrder, o, len(m.Layers))
		}
		if seen[o] {
			return fmt.Errorf("%w: duplicate layer_order %d", ErrLayerOrder, o)
		}
		seen[o] = true
	}

	for i := range m.Layers {
		if err := m.Layers[i].Validate(); err != nil {
			return err
		}
	}

	return nil
}

// Sorted gibt die Layer nach layer_order sortiert zurueck, ohne das Modell zu aendern
func (m *Model) Sorted() []Layer {
	ls := slices.Clone(m.Layers)
	slices.SortStableFunc(ls, func(a, b Layer) int {
		return cmp.Compare(a.Order, b.Order)
	})
	return ls
}

// MaxActivations gibt das Maximum von Outgoing ueber alle Layer zurueck
func (m *Model) MaxActivations() int {
	var n int
	for _, l := range m.Layers {
		n = max(n, l.Outgoing)
	}
	return n
}

// TotalBits gibt die Summe der gepackten Layer-Groessen zurueck
func (m *Model) TotalBits() int {
	var n int
	for i := range m.Layers {
		n += m.Layers[i].TotalBits()
	}
	return n
}
