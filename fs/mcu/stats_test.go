package mcu

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func TestComputeStats(t *testing.T) {
	l := &Layer{
		Order:    1,
		Incoming: 16,
		Outgoing: 1,
		Scheme:   SchemeTwoBitSym,
		Weights:  []float64{-1.5, -0.5, 0.5, 1.5, -1.5, -0.5, 0.5, 1.5, -1.5, -0.5, 0.5, 1.5, -1.5, -0.5, 0.5, 1.5},
	}

	got, err := ComputeStats(l)
	require.NoError(t, err)

	want := LayerStats{
		Layer:  "L1",
		Scheme: SchemeTwoBitSym,
		Min:    -1.5,
		Max:    1.5,
		Mean:   0,
		Std:    1.118033988749895,
		Values: []ValueCount{
			{Value: -1.5, Count: 4, Percent: 25},
			{Value: -0.5, Count: 4, Percent: 25},
			{Value: 0.5, Count: 4, Percent: 25},
			{Value: 1.5, Count: 4, Percent: 25},
		},
		Entropy:      2,
		CapacityUsed: 100,
	}

	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("Statistik (-want +got):\n%s", diff)
	}
}

func TestComputeStatsSingleValue(t *testing.T) {
	l := &Layer{Incoming: 32, Outgoing: 1, Scheme: SchemeBinary, Weights: repeat(nil, 1, 32)}

	got, err := ComputeStats(l)
	require.NoError(t, err)
	require.Len(t, got.Values, 1)
	require.InDelta(t, 0, got.Std, 1e-12)
	require.InDelta(t, 0, got.Entropy, 1e-12)
	require.InDelta(t, 100, got.Values[0].Percent, 1e-12)
}

func TestComputeStatsInvalid(t *testing.T) {
	_, err := ComputeStats(&Layer{Incoming: 10, Outgoing: 1, Scheme: SchemeFourBit, Weights: make([]float64, 10)})
	require.ErrorIs(t, err, ErrAlignment)
}
