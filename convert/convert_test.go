// convert_test.go - Tests fuer Snapshot-Laden und Run-Name
package convert

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitnetmcu/mcuexport/fs/mcu"
)

func TestLoadSnapshot(t *testing.T) {
	want := []mcu.Layer{
		{
			Order: 0, Incoming: 8, Outgoing: 2, Scheme: mcu.SchemeFourBit,
			Weights: []float64{1, 2, 3, 4, 5, 6, 7, -8, -1, -2, -3, -4, -5, -6, -7, 0},
		},
		{
			Order: 1, Incoming: 32, Outgoing: 1, Scheme: mcu.SchemeBinary,
			Weights: append([]float64{-1, 1, 1, -1}, repeatValue(-1, 28)...),
		},
	}

	for _, name := range []string{"snapshot.json", "snapshot.yaml", "snapshot.pkl"} {
		t.Run(name, func(t *testing.T) {
			m, err := LoadSnapshot(filepath.Join("testdata", name))
			require.NoError(t, err)

			if diff := cmp.Diff(want, m.Sorted()); diff != "" {
				t.Errorf("Layer (-want +got):\n%s", diff)
			}

			pm, err := mcu.PackModel(m, 0)
			require.NoError(t, err)
			assert.Equal(t, []uint32{0x12345678, 0xfedcba90}, pm.Layers[0].Words)
			assert.Equal(t, []uint32{0x60000000}, pm.Layers[1].Words)
		})
	}
}

func repeatValue(v float64, n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = v
	}
	return s
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"model.json", FormatJSON, false},
		{"model.YAML", FormatYAML, false},
		{"model.yml", FormatYAML, false},
		{"model.pkl", FormatPickle, false},
		{"model.pickle", FormatPickle, false},
		{"model.pth", "", true},
		{"model", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := DetectFormat(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DetectFormat(%q) Fehler = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrUnknownFormat) {
				t.Errorf("erwartet ErrUnknownFormat, erhalten %v", err)
			}
			if got != tt.want {
				t.Errorf("DetectFormat(%q) = %q, erwartet %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestSnapshotErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
	}{
		{"empty", `{"layers": []}`, mcu.ErrEmptyModel},
		{"unknown scheme", `{"layers": [{"layer_order": 0, "quantization_type": "3bit", "incoming_weights": 1, "outgoing_weights": 1, "quantized_weights": [[1]]}]}`, mcu.ErrUnsupportedScheme},
		{"bpw mismatch", `{"layers": [{"layer_order": 0, "quantization_type": "2bitsym", "bpw": 4, "incoming_weights": 1, "outgoing_weights": 1, "quantized_weights": [[0.5]]}]}`, mcu.ErrBitWidth},
		{"row count", `{"layers": [{"layer_order": 0, "quantization_type": "Binary", "incoming_weights": 1, "outgoing_weights": 2, "quantized_weights": [[1]]}]}`, mcu.ErrShapeMismatch},
		{"negative incoming", `{"layers": [{"layer_order": 0, "quantization_type": "Binary", "incoming_weights": -32, "outgoing_weights": 1, "quantized_weights": [[1]]}]}`, mcu.ErrShapeMismatch},
		{"zero outgoing", `{"layers": [{"layer_order": 0, "quantization_type": "Binary", "incoming_weights": 32, "outgoing_weights": 0, "quantized_weights": []}]}`, mcu.ErrShapeMismatch},
		{"huge incoming", `{"layers": [{"layer_order": 0, "quantization_type": "Binary", "incoming_weights": 4611686018427387904, "outgoing_weights": 1, "quantized_weights": [[1]]}]}`, mcu.ErrShapeMismatch},
		{"row length", `{"layers": [{"layer_order": 0, "quantization_type": "Binary", "incoming_weights": 2, "outgoing_weights": 1, "quantized_weights": [[1]]}]}`, mcu.ErrShapeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ReadSnapshot(strings.NewReader(tt.body), FormatJSON)
			require.NoError(t, err)

			_, err = s.Model()
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestReadSnapshotInvalid(t *testing.T) {
	_, err := ReadSnapshot(strings.NewReader("{"), FormatJSON)
	require.Error(t, err)

	_, err = ReadSnapshot(strings.NewReader("not a pickle"), FormatPickle)
	require.Error(t, err)

	_, err = ReadSnapshot(strings.NewReader(""), Format("csv"))
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestLoadSnapshotMissingFile(t *testing.T) {
	_, err := LoadSnapshot(filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunName(t *testing.T) {
	p, err := LoadParameters(filepath.Join("testdata", "trainingparameters.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "opt_Cosine_lr0.001_Aug_BitMnist_PerTensor_2bitsym_RMS_width64_64_64_bs128_epochs60", p.RunName())

	p.Augmentation = false
	p.LearningRate = 1
	assert.Equal(t, "opt_Cosine_lr1.0_BitMnist_PerTensor_2bitsym_RMS_width64_64_64_bs128_epochs60", p.RunName())
}

func TestPyFloat(t *testing.T) {
	tests := map[float64]string{
		0.001:  "0.001",
		1e-05:  "1e-05",
		2:      "2.0",
		0.0005: "0.0005",
		1.5:    "1.5",
	}

	for in, want := range tests {
		if got := pyFloat(in); got != want {
			t.Errorf("pyFloat(%v) = %q, erwartet %q", in, got, want)
		}
	}
}
