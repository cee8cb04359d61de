// snapshot_pickle.go - Snapshot aus Python-Pickle lesen
//
// Erwartet die Layer-Liste des Trainings-Exporters, z.B.
//
//	pickle.dump(quantized_model.quantized_model, f)
//
// mit Gewichten als verschachtelte Listen (ndarray.tolist()).
// Wahlweise auch ein Dict mit Schluessel "layers".
package convert

import (
	"fmt"
	"io"

	"github.com/nlpodyssey/gopickle/pickle"
)

// sequence deckt types.List und types.Tuple ab
type sequence interface {
	Len() int
	Get(i int) interface{}
}

// mapping deckt types.Dict ab
type mapping interface {
	Get(key interface{}) (interface{}, bool)
}

// readPickle liest die Layer-Records aus einem Pickle-Stream
func readPickle(r io.Reader) ([]LayerRecord, error) {
	u := pickle.NewUnpickler(r)
	v, err := u.Load()
	if err != nil {
		return nil, err
	}

	if d, ok := v.(mapping); ok {
		if layers, ok := d.Get("layers"); ok {
			v = layers
		}
	}

	return pickleRecords(v)
}

// pickleRecords wandelt eine Python-Liste von Layer-Dicts in LayerRecords
func pickleRecords(v interface{}) ([]LayerRecord, error) {
	seq, ok := v.(sequence)
	if !ok {
		return nil, fmt.Errorf("expected list of layers, got %T", v)
	}

	records := make([]LayerRecord, 0, seq.Len())
	for i := range seq.Len() {
		d, ok := seq.Get(i).(mapping)
		if !ok {
			return nil, fmt.Errorf("layer %d: expected dict, got %T", i, seq.Get(i))
		}

		rec, err := pickleRecord(d)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func pickleRecord(d mapping) (LayerRecord, error) {
	var rec LayerRecord
	var err error

	if rec.LayerOrder, err = pickleInt(d, "layer_order", true); err != nil {
		return rec, err
	}
	if rec.IncomingWeights, err = pickleInt(d, "incoming_weights", true); err != nil {
		return rec, err
	}
	if rec.OutgoingWeights, err = pickleInt(d, "outgoing_weights", true); err != nil {
		return rec, err
	}
	if rec.BitsPerWeight, err = pickleInt(d, "bpw", false); err != nil {
		return rec, err
	}

	qt, ok := d.Get("quantization_type")
	if !ok {
		return rec, fmt.Errorf("missing key quantization_type")
	}
	if rec.QuantizationType, ok = qt.(string); !ok {
		return rec, fmt.Errorf("quantization_type: expected str, got %T", qt)
	}

	w, ok := d.Get("quantized_weights")
	if !ok {
		return rec, fmt.Errorf("missing key quantized_weights")
	}
	rows, ok := w.(sequence)
	if !ok {
		return rec, fmt.Errorf("quantized_weights: expected list, got %T", w)
	}

	rec.QuantizedWeights = make([][]float64, rows.Len())
	for i := range rows.Len() {
		row, ok := rows.Get(i).(sequence)
		if !ok {
			return rec, fmt.Errorf("quantized_weights[%d]: expected list, got %T", i, rows.Get(i))
		}

		rec.QuantizedWeights[i] = make([]float64, row.Len())
		for j := range row.Len() {
			f, err := pickleFloat(row.Get(j))
			if err != nil {
				return rec, fmt.Errorf("quantized_weights[%d][%d]: %w", i, j, err)
			}
			rec.QuantizedWeights[i][j] = f
		}
	}

	return rec, nil
}

func pickleInt(d mapping, key string, required bool) (int, error) {
	v, ok := d.Get(key)
	if !ok || v == nil {
		if required {
			return 0, fmt.Errorf("missing key %s", key)
		}
		return 0, nil
	}

	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case bool:
		return 0, fmt.Errorf("%s: expected int, got bool", key)
	default:
		return 0, fmt.Errorf("%s: expected int, got %T", key, v)
	}
}

func pickleFloat(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("expected number, got %T", v)
	}
}
