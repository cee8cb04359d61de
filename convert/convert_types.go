// convert_types.go - Basis-Typen fuer die Modell-Konvertierung
// Haupttypen: Snapshot, LayerRecord; Umwandlung in mcu.Model
package convert

import (
	"fmt"

	"github.com/bitnetmcu/mcuexport/fs/mcu"
)

// LayerRecord - Ein Layer wie vom Trainings-Exporter geschrieben
type LayerRecord struct {
	LayerOrder       int         `json:"layer_order" yaml:"layer_order"`
	QuantizationType string      `json:"quantization_type" yaml:"quantization_type"`
	BitsPerWeight    int         `json:"bpw,omitempty" yaml:"bpw,omitempty"`
	IncomingWeights  int         `json:"incoming_weights" yaml:"incoming_weights"`
	OutgoingWeights  int         `json:"outgoing_weights" yaml:"outgoing_weights"`
	QuantizedWeights [][]float64 `json:"quantized_weights" yaml:"quantized_weights"`
}

// Snapshot - Vorquantisiertes Modell, Eingabe fuer den Export
type Snapshot struct {
	Layers []LayerRecord `json:"layers" yaml:"layers"`
}

// Layer wandelt den Record in einen mcu.Layer.
// Zeilen sind Ausgangskanaele, jede Zeile enthaelt alle Eingangsgewichte.
func (r *LayerRecord) Layer() (mcu.Layer, error) {
	name := fmt.Sprintf("L%d", r.LayerOrder)

	scheme, err := mcu.ParseScheme(r.QuantizationType)
	if err != nil {
		return mcu.Layer{}, fmt.Errorf("layer %s: %w", name, err)
	}

	// bpw ist optional, muss aber zum Schema passen
	if r.BitsPerWeight != 0 && r.BitsPerWeight != scheme.BitsPerWeight() {
		return mcu.Layer{}, fmt.Errorf("%w: layer %s declares %d bits per weight, %s uses %d",
			mcu.ErrBitWidth, name, r.BitsPerWeight, scheme, scheme.BitsPerWeight())
	}

	if r.IncomingWeights <= 0 || r.OutgoingWeights <= 0 {
		return mcu.Layer{}, fmt.Errorf("%w: layer %s has shape %dx%d",
			mcu.ErrShapeMismatch, name, r.OutgoingWeights, r.IncomingWeights)
	}

	if len(r.QuantizedWeights) != r.OutgoingWeights {
		return mcu.Layer{}, fmt.Errorf("%w: layer %s has %d rows, want %d outgoing weights",
			mcu.ErrShapeMismatch, name, len(r.QuantizedWeights), r.OutgoingWeights)
	}

	var weights []float64
	for i, row := range r.QuantizedWeights {
		if len(row) != r.IncomingWeights {
			return mcu.Layer{}, fmt.Errorf("%w: layer %s row %d has %d weights, want %d incoming weights",
				mcu.ErrShapeMismatch, name, i, len(row), r.IncomingWeights)
		}
		weights = append(weights, row...)
	}

	return mcu.Layer{
		Order:    r.LayerOrder,
		Incoming: r.IncomingWeights,
		Outgoing: r.OutgoingWeights,
		Scheme:   scheme,
		Weights:  weights,
	}, nil
}

// Model wandelt den Snapshot in ein mcu.Model
func (s *Snapshot) Model() (*mcu.Model, error) {
	if len(s.Layers) == 0 {
		return nil, mcu.ErrEmptyModel
	}

	m := &mcu.Model{Layers: make([]mcu.Layer, 0, len(s.Layers))}
	for i := range s.Layers {
		l, err := s.Layers[i].Layer()
		if err != nil {
			return nil, err
		}
		m.Layers = append(m.Layers, l)
	}

	return m, nil
}
