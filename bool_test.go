package bitmask

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoolTable(t *testing.T) {
	tests := []struct {
		target, bits             bool
		mask, flip, unmask, done bool
	}{
		{false, false, false, false, false, true},
		{false, true, true, true, false, false},
		{true, false, true, true, true, true},
		{true, true, true, false, false, true},
	}

	for _, tt := range tests {
		x := tt.target
		MaskBool(&x, tt.bits)
		require.Equal(t, tt.mask, x, "mask %v %v", tt.target, tt.bits)

		x = tt.target
		FlipBool(&x, tt.bits)
		require.Equal(t, tt.flip, x, "flip %v %v", tt.target, tt.bits)

		x = tt.target
		UnmaskBool(&x, tt.bits)
		require.Equal(t, tt.unmask, x, "unmask %v %v", tt.target, tt.bits)

		require.Equal(t, tt.done, MaskedBool(tt.target, tt.bits), "masked %v %v", tt.target, tt.bits)
	}
}

func TestBoolLaws(t *testing.T) {
	for _, m := range []bool{false, true} {
		require.True(t, MaskedBool(m, false))

		for _, b := range []bool{false, true} {
			x := m
			MaskBool(&x, b)
			MaskBool(&x, b)
			require.True(t, MaskedBool(x, b))

			UnmaskBool(&x, b)
			UnmaskBool(&x, b)
			require.Equal(t, !b, MaskedBool(x, b))

			x = m
			FlipBool(&x, b)
			FlipBool(&x, b)
			require.Equal(t, m, x)

			if !b {
				y := m
				MaskBool(&y, b)
				FlipBool(&y, b)
				UnmaskBool(&y, b)
				require.Equal(t, m, y, "false mask must not change target")
			}
		}
	}
}

func TestBool(t *testing.T) {
	var b Bool

	b.Flip(true)
	require.True(t, b.Masked(true))
	b.Unmask(true)
	require.False(t, b.Masked(true))
	require.True(t, b.Masked(false))
	b.Mask(true)
	b.Mask(true)
	require.Equal(t, Bool(true), b)

	var m Maskable[Bool] = &b
	m.Flip(true)
	require.Equal(t, Bool(false), b)
}
