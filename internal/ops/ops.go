// Package ops names the bit manipulation primitives and applies them to values of a chosen width.
package ops

import (
	"fmt"
	"strings"

	"github.com/zedseven/bitcalc/pkg/bitmanip"
)

// Operation definitions

// Op identifies a supported bit manipulation primitive.
type Op int

const (
	OpUnknown                Op = iota     // An unknown operation.
	OpMask                   Op = iota     // Builds a mask of Bits set bits shifted by Shift.
	OpSetBits                Op = iota     // Sets Bits bits of the value starting at Shift.
	OpClearBits              Op = iota     // Clears Bits bits of the value starting at Shift.
	OpCountBitsSet           Op = iota     // Population count.
	OpLeadingZeroesCount     Op = iota     // Number of zero bits above the highest set bit.
	OpTrailingZeroesCount    Op = iota     // Number of zero bits below the lowest set bit.
	OpIsolateLowestClearBit  Op = iota     // value | ^(value + 1)
	OpIsolateLowestSetBit    Op = iota     // value & -value
	OpFillFromLowestClearBit Op = iota     // value & (value + 1), all ones unchanged.
	OpFillFromLowestSetBit   Op = iota     // value | (value - 1), zero unchanged.
	OpClearLowestSetBit      Op = iota     // value & (value - 1)
	OpSetLowestClearBit      Op = iota     // value | (value + 1)
	maxOpVal                 Op = iota - 1 // The maximum operation value, used for validity checking.
)

var names = [...]string{
	OpMask:                   "mask",
	OpSetBits:                "set_bits",
	OpClearBits:              "clear_bits",
	OpCountBitsSet:           "count_bits_set",
	OpLeadingZeroesCount:     "leading_zeroes_count",
	OpTrailingZeroesCount:    "trailing_zeroes_count",
	OpIsolateLowestClearBit:  "isolate_lowest_clear_bit",
	OpIsolateLowestSetBit:    "isolate_lowest_set_bit",
	OpFillFromLowestClearBit: "fill_from_lowest_clear_bit",
	OpFillFromLowestSetBit:   "fill_from_lowest_set_bit",
	OpClearLowestSetBit:      "clear_lowest_set_bit",
	OpSetLowestClearBit:      "set_lowest_clear_bit",
}

var aliases = [...]string{
	OpCountBitsSet:           "popcnt",
	OpLeadingZeroesCount:     "lzcnt",
	OpTrailingZeroesCount:    "tzcnt",
	OpIsolateLowestClearBit:  "blci",
	OpIsolateLowestSetBit:    "blsi",
	OpFillFromLowestClearBit: "blcfill",
	OpFillFromLowestSetBit:   "blsfill",
	OpClearLowestSetBit:      "blsc",
	OpSetLowestClearBit:      "blcs",
}

// IsValid determines whether a given operation is valid.
func (op Op) IsValid() bool {
	return op > OpUnknown && op <= maxOpVal
}

// String returns the descriptive name of the operation, or "<unknown>" if unknown.
func (op Op) String() string {
	if !op.IsValid() {
		return "<unknown>"
	}
	return names[op]
}

// Alias returns the mnemonic name of the operation, or "" if it has none.
func (op Op) Alias() string {
	if !op.IsValid() || int(op) >= len(aliases) {
		return ""
	}
	return aliases[op]
}

// TakesRange reports whether the operation uses the bits and shift arguments.
func (op Op) TakesRange() bool {
	return op == OpMask || op == OpSetBits || op == OpClearBits
}

// ReturnsCount reports whether the result is a bit count rather than a value.
func (op Op) ReturnsCount() bool {
	return op == OpCountBitsSet || op == OpLeadingZeroesCount || op == OpTrailingZeroesCount
}

// All returns every valid operation in declaration order.
func All() []Op {
	all := make([]Op, 0, int(maxOpVal))
	for op := OpUnknown + 1; op <= maxOpVal; op++ {
		all = append(all, op)
	}
	return all
}

// StringToOp parses a descriptive or mnemonic name, or returns OpUnknown if it is not recognized.
func StringToOp(str string) Op {
	str = strings.ToLower(strings.TrimSpace(str))
	if len(str) <= 0 {
		return OpUnknown
	}
	for op := OpUnknown + 1; op <= maxOpVal; op++ {
		if str == op.String() || str == op.Alias() {
			return op
		}
	}
	return OpUnknown
}

// Widths

// IsValidWidth reports whether width is one of the supported word sizes.
func IsValidWidth(width uint) bool {
	switch width {
	case 8, 16, 32, 64:
		return true
	default:
		return false
	}
}

// Error types

// UnknownOpError is returned when an unknown operation is provided.
type UnknownOpError struct {
	Op Op
}

func (e *UnknownOpError) Error() string {
	return fmt.Sprintf("The specified operation (%d) does not exist.", e.Op)
}

// UnsupportedWidthError is returned when a width other than 8, 16, 32 or 64 is provided.
type UnsupportedWidthError struct {
	Width uint
}

func (e *UnsupportedWidthError) Error() string {
	return fmt.Sprintf("The width %d is not supported. Use one of 8, 16, 32 or 64.", e.Width)
}

// Dispatch

// Apply runs op on value, interpreted as an unsigned integer of the given width.
// The mask operation ignores value and narrows its result to width.
func Apply(op Op, width uint, value uint64, bits, shift uint) (uint64, error) {
	if !op.IsValid() {
		return 0, &UnknownOpError{op}
	}
	switch width {
	case 8:
		return apply(op, uint8(value), bits, shift)
	case 16:
		return apply(op, uint16(value), bits, shift)
	case 32:
		return apply(op, uint32(value), bits, shift)
	case 64:
		return apply(op, value, bits, shift)
	default:
		return 0, &UnsupportedWidthError{width}
	}
}

func apply[T bitmanip.Unsigned](op Op, value T, bits, shift uint) (uint64, error) {
	switch op {
	case OpMask:
		return uint64(T(bitmanip.Mask(bits, shift))), nil
	case OpSetBits:
		return uint64(bitmanip.SetBits(value, bits, shift)), nil
	case OpClearBits:
		return uint64(bitmanip.ClearBits(value, bits, shift)), nil
	case OpCountBitsSet:
		return uint64(bitmanip.Popcnt(value)), nil
	case OpLeadingZeroesCount:
		return uint64(bitmanip.Lzcnt(value)), nil
	case OpTrailingZeroesCount:
		return uint64(bitmanip.Tzcnt(value)), nil
	case OpIsolateLowestClearBit:
		return uint64(bitmanip.Blci(value)), nil
	case OpIsolateLowestSetBit:
		return uint64(bitmanip.Blsi(value)), nil
	case OpFillFromLowestClearBit:
		return uint64(bitmanip.Blcfill(value)), nil
	case OpFillFromLowestSetBit:
		return uint64(bitmanip.Blsfill(value)), nil
	case OpClearLowestSetBit:
		return uint64(bitmanip.Blsc(value)), nil
	case OpSetLowestClearBit:
		return uint64(bitmanip.Blcs(value)), nil
	default:
		return 0, &UnknownOpError{op}
	}
}
