// SPDX-License-Identifier: MIT

package rng_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AtsushiSakai/Totsu/rng"
)

// TestXor64_SequenceFromDefaultSeed pins the first samples from Xor64Init.
func TestXor64_SequenceFromDefaultSeed(t *testing.T) {
	state := rng.Xor64Init
	wantStates := []uint64{
		11373782495151020392,
		8505512047393832734,
		8278699350803616934,
		220332960558298757,
		9524873121654605887,
	}
	wantSamples := []float64{
		0.6165739845310169,
		0.4610847319943012,
		0.4487891910747808,
		0.011944273725373523,
		0.5163444065573356,
	}
	for i := range wantStates {
		v := rng.Xor64(&state)
		require.Equal(t, wantStates[i], state, "state %d", i)
		require.Equal(t, wantSamples[i], v, "sample %d", i)
	}
}

func TestXor64_Range(t *testing.T) {
	state := rng.Xor64Init
	for i := 0; i < 10000; i++ {
		v := rng.Xor64(&state)
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}

// TestXor64_TopStateStaysBelowOne uses the preimage of 2^64-1.
func TestXor64_TopStateStaysBelowOne(t *testing.T) {
	state := uint64(0xaaaa54d66cc67cfe)
	v := rng.Xor64(&state)
	require.Equal(t, ^uint64(0), state)
	require.Less(t, v, 1.0)
	require.Greater(t, v, 0.999)
}

func TestXor64_ZeroIsFixedPoint(t *testing.T) {
	var state uint64
	require.Equal(t, 0.0, rng.Xor64(&state))
	require.Zero(t, state)
}

func TestSource_MatchesXor64(t *testing.T) {
	src := rng.NewSource(0)
	require.Equal(t, rng.Xor64Init, src.State())

	state := rng.Xor64Init
	for i := 0; i < 8; i++ {
		require.Equal(t, rng.Xor64(&state), src.Float64())
	}
	require.Equal(t, state, src.State())
}

func TestSource_Uint64AndInt63(t *testing.T) {
	src := rng.NewSource(rng.Xor64Init)
	require.Equal(t, uint64(11373782495151020392), src.Uint64())
	require.Equal(t, int64(8505512047393832734>>1), src.Int63())
}

func TestSource_SeedResets(t *testing.T) {
	src := rng.NewSource(42)
	first := src.Float64()
	src.Float64()

	src.Seed(42)
	require.Equal(t, first, src.Float64())

	src.Seed(0)
	require.Equal(t, rng.Xor64Init, src.State())
}

func TestSource_DrivesMathRand(t *testing.T) {
	a := rand.New(rng.NewSource(7))
	b := rand.New(rng.NewSource(7))
	for i := 0; i < 16; i++ {
		require.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}
