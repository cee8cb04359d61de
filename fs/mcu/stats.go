// stats.go - Statistik der quantisierten Gewichte pro Layer
// Enthaelt: LayerStats, ComputeStats (Min/Max/Mittel/Std, Werteverteilung, Entropie)

package mcu

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ValueCount ist ein Wert der Gewichtsverteilung mit Haeufigkeit
type ValueCount struct {
	Value   float64 `json:"value"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// LayerStats fasst die Gewichtsverteilung eines Layers zusammen
type LayerStats struct {
	Layer  string       `json:"layer"`
	Scheme Scheme       `json:"quantization_type"`
	Min    float64      `json:"min"`
	Max    float64      `json:"max"`
	Mean   float64      `json:"mean"`
	Std    float64      `json:"std"`
	Values []ValueCount `json:"values"`

	// Entropy in Bit pro Gewicht
	Entropy float64 `json:"entropy"`

	// CapacityUsed ist Entropy relativ zur Codebreite in Prozent
	CapacityUsed float64 `json:"capacity_used"`
}

// ComputeStats berechnet die Statistik eines Layers.
// Std ist die Populations-Standardabweichung.
func ComputeStats(l *Layer) (LayerStats, error) {
	if err := l.Validate(); err != nil {
		return LayerStats{}, err
	}

	w := l.Weights
	mean, variance := stat.MeanVariance(w, nil)
	n := float64(len(w))
	if len(w) > 1 {
		variance = variance * (n - 1) / n
	} else {
		variance = 0
	}

	sorted := slices.Clone(w)
	slices.Sort(sorted)

	var values []ValueCount
	for i := 0; i < len(sorted); {
		j := i
		for j < len(sorted) && sorted[j] == sorted[i] {
			j++
		}
		values = append(values, ValueCount{Value: sorted[i], Count: j - i, Percent: float64(j-i) / n * 100})
		i = j
	}

	p := make([]float64, len(values))
	for i, v := range values {
		p[i] = float64(v.Count) / n
	}
	entropy := stat.Entropy(p) / math.Ln2

	return LayerStats{
		Layer:        l.Name(),
		Scheme:       l.Scheme,
		Min:          floats.Min(w),
		Max:          floats.Max(w),
		Mean:         mean,
		Std:          math.Sqrt(variance),
		Values:       values,
		Entropy:      entropy,
		CapacityUsed: entropy / float64(l.BitsPerWeight()) * 100,
	}, nil
}
