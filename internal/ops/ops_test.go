package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zedseven/bitcalc/pkg/bitmanip"
)

func TestStringToOp(t *testing.T) {
	tests := []struct {
		in   string
		want Op
	}{
		{"mask", OpMask},
		{"set_bits", OpSetBits},
		{"CLEAR_BITS", OpClearBits},
		{"popcnt", OpCountBitsSet},
		{"count_bits_set", OpCountBitsSet},
		{" lzcnt ", OpLeadingZeroesCount},
		{"tzcnt", OpTrailingZeroesCount},
		{"blci", OpIsolateLowestClearBit},
		{"blsi", OpIsolateLowestSetBit},
		{"Blcfill", OpFillFromLowestClearBit},
		{"blsfill", OpFillFromLowestSetBit},
		{"blsc", OpClearLowestSetBit},
		{"blcs", OpSetLowestClearBit},
		{"", OpUnknown},
		{"rotate", OpUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, StringToOp(tt.in))
		})
	}
}

func TestOpNames(t *testing.T) {
	all := All()
	require.Len(t, all, 12)
	assert.Equal(t, OpMask, all[0])
	assert.Equal(t, OpSetLowestClearBit, all[len(all)-1])

	for _, op := range all {
		assert.True(t, op.IsValid())
		assert.Equal(t, op, StringToOp(op.String()))
		if op.Alias() != "" {
			assert.Equal(t, op, StringToOp(op.Alias()))
		}
	}

	assert.False(t, OpUnknown.IsValid())
	assert.False(t, (maxOpVal + 1).IsValid())
	assert.Equal(t, "<unknown>", OpUnknown.String())
	assert.Equal(t, "", OpMask.Alias())
	assert.Equal(t, "popcnt", OpCountBitsSet.Alias())
}

func TestOpKinds(t *testing.T) {
	assert.True(t, OpMask.TakesRange())
	assert.True(t, OpClearBits.TakesRange())
	assert.False(t, OpCountBitsSet.TakesRange())
	assert.True(t, OpTrailingZeroesCount.ReturnsCount())
	assert.False(t, OpIsolateLowestSetBit.ReturnsCount())
}

func TestApply(t *testing.T) {
	tests := []struct {
		name        string
		op          Op
		width       uint
		value       uint64
		bits, shift uint
		want        uint64
	}{
		{"mask", OpMask, 64, 0, 2, 2, 0b1100},
		{"mask narrowed", OpMask, 8, 0, 16, 0, 0xFF},
		{"set_bits", OpSetBits, 8, 0b1100, 2, 0, 0b1111},
		{"clear_bits", OpClearBits, 8, 0b1111, 2, 1, 0b1001},
		{"popcnt", OpCountBitsSet, 8, 0b11, 0, 0, 2},
		{"lzcnt 8", OpLeadingZeroesCount, 8, 0b00001111, 0, 0, 4},
		{"lzcnt 32", OpLeadingZeroesCount, 32, 0b00001111, 0, 0, 28},
		{"lzcnt zero", OpLeadingZeroesCount, 16, 0, 0, 0, 16},
		{"tzcnt", OpTrailingZeroesCount, 8, 0b1100, 0, 0, 2},
		{"tzcnt zero", OpTrailingZeroesCount, 64, 0, 0, 0, 64},
		{"blci", OpIsolateLowestClearBit, 8, 0b11100011, 0, 0, 0b11111011},
		{"blsi", OpIsolateLowestSetBit, 8, 0b11100011, 0, 0, 0b00000001},
		{"blcfill", OpFillFromLowestClearBit, 8, 0b11101011, 0, 0, 0b11101000},
		{"blcfill all ones", OpFillFromLowestClearBit, 16, 0xFFFF, 0, 0, 0xFFFF},
		{"blsfill", OpFillFromLowestSetBit, 8, 0b01110100, 0, 0, 0b01110111},
		{"blsc", OpClearLowestSetBit, 8, 0b11100010, 0, 0, 0b11100000},
		{"blcs", OpSetLowestClearBit, 8, 0b11100011, 0, 0, 0b11100111},
		{"blcs all ones", OpSetLowestClearBit, 32, 0xFFFFFFFF, 0, 0, 0xFFFFFFFF},
		{"value truncated to width", OpIsolateLowestClearBit, 8, 0x1FF, 0, 0, 0xFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(tt.op, tt.width, tt.value, tt.bits, tt.shift)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplyErrors(t *testing.T) {
	_, err := Apply(OpUnknown, 8, 1, 0, 0)
	var opErr *UnknownOpError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, OpUnknown, opErr.Op)

	_, err = Apply(OpCountBitsSet, 12, 1, 0, 0)
	var widthErr *UnsupportedWidthError
	require.ErrorAs(t, err, &widthErr)
	assert.Equal(t, uint(12), widthErr.Width)
	assert.Contains(t, err.Error(), "12")
}

func TestIsValidWidth(t *testing.T) {
	for _, w := range []uint{8, 16, 32, 64} {
		assert.True(t, IsValidWidth(w))
	}
	for _, w := range []uint{0, 1, 7, 24, 128} {
		assert.False(t, IsValidWidth(w))
	}
}

func TestApplyMatchesPrimitives(t *testing.T) {
	v := uint16(0b1011_0100_1110_0011)
	want := map[Op]uint64{
		OpMask:                   uint64(uint16(bitmanip.Mask(3, 4))),
		OpSetBits:                uint64(bitmanip.SetBits(v, 3, 4)),
		OpClearBits:              uint64(bitmanip.ClearBits(v, 3, 4)),
		OpCountBitsSet:           uint64(bitmanip.CountBitsSet(v)),
		OpLeadingZeroesCount:     uint64(bitmanip.LeadingZeroesCount(v)),
		OpTrailingZeroesCount:    uint64(bitmanip.TrailingZeroesCount(v)),
		OpIsolateLowestClearBit:  uint64(bitmanip.IsolateLowestClearBit(v)),
		OpIsolateLowestSetBit:    uint64(bitmanip.IsolateLowestSetBit(v)),
		OpFillFromLowestClearBit: uint64(bitmanip.FillFromLowestClearBit(v)),
		OpFillFromLowestSetBit:   uint64(bitmanip.FillFromLowestSetBit(v)),
		OpClearLowestSetBit:      uint64(bitmanip.ClearLowestSetBit(v)),
		OpSetLowestClearBit:      uint64(bitmanip.SetLowestClearBit(v)),
	}
	require.Len(t, want, len(All()))

	for _, op := range All() {
		got, err := Apply(op, 16, uint64(v), 3, 4)
		require.NoError(t, err, op.String())
		assert.Equal(t, want[op], got, op.String())
	}
}

func TestApplyUndispatchedOp(t *testing.T) {
	_, err := apply(maxOpVal+1, uint8(1), 0, 0)
	var opErr *UnknownOpError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, maxOpVal+1, opErr.Op)
}
