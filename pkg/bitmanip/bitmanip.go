// Package bitmanip provides generic bit manipulation primitives for the unsigned integer types.
//
// Every function is pure and safe for concurrent use. The short mnemonic names (Popcnt, Blsi, ...)
// simply forward to the descriptive ones.
package bitmanip

import "unsafe"

const bitsPerByte uint = 8

// Unsigned is satisfied by every unsigned integer type.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

func width[T Unsigned](value T) uint {
	return uint(unsafe.Sizeof(value)) * bitsPerByte
}

// Masks

// Mask creates a bitmask of bits set bits, shifted to the left by shift. E.g. Mask(2, 2) = 0b1100
//
// The mask is built in uint64. Shift counts are not validated: Go shifts by 64 or more yield 0, so
// Mask(64, 0) is all ones, Mask(b, s) with b >= 64 is ^uint64(0) << s, and any shift >= 64 gives 0.
func Mask(bits, shift uint) uint64 {
	return ^(^uint64(0) << bits) << shift
}

// SetBits sets bits bits of value, starting at shift. E.g. SetBits(0b1100, 2, 0) = 0b1111
// Bits of the mask beyond the width of T are dropped; callers keep bits + shift within it.
func SetBits[T Unsigned](value T, bits, shift uint) T {
	mask := T(Mask(bits, shift))
	return value | mask
}

// ClearBits clears bits bits of value, starting at shift. E.g. ClearBits(0b1111, 2, 1) = 0b1001
// Bits of the mask beyond the width of T are dropped; callers keep bits + shift within it.
func ClearBits[T Unsigned](value T, bits, shift uint) T {
	mask := T(Mask(bits, shift))
	return value & ^mask
}

// Counting

// CountBitsSet returns the number of set bits in value. E.g. CountBitsSet(0b11) = 2
func CountBitsSet[T Unsigned](value T) uint {
	var count uint
	for ; value != 0; count++ {
		value &= value - 1
	}
	return count
}

// Popcnt is an alias of CountBitsSet.
func Popcnt[T Unsigned](value T) uint { return CountBitsSet(value) }

// LeadingZeroesCount returns the number of zero bits above the highest set bit. E.g. for a uint8,
// LeadingZeroesCount(0b00001111) = 4. The result is the width of T when value is 0.
func LeadingZeroesCount[T Unsigned](value T) uint {
	n := width(value)
	if value == 0 {
		return n
	}

	var count uint
	for i := uint(1); i <= n; i++ {
		if Mask(1, n-i)&uint64(value) != 0 {
			break
		}
		count++
	}
	return count
}

// Lzcnt is an alias of LeadingZeroesCount.
func Lzcnt[T Unsigned](value T) uint { return LeadingZeroesCount(value) }

// TrailingZeroesCount returns the number of zero bits below the lowest set bit.
// E.g. TrailingZeroesCount(0b1100) = 2. The result is the width of T when value is 0.
func TrailingZeroesCount[T Unsigned](value T) uint {
	n := width(value)
	if value == 0 {
		return n
	}

	var count uint
	for i := uint(0); i < n; i++ {
		if Mask(1, i)&uint64(value) != 0 {
			break
		}
		count++
	}
	return count
}

// Tzcnt is an alias of TrailingZeroesCount.
func Tzcnt[T Unsigned](value T) uint { return TrailingZeroesCount(value) }

// Isolate and fill

// IsolateLowestClearBit returns value | ^(value + 1). E.g. for a uint8, 0b11100011 gives 0b11111011.
func IsolateLowestClearBit[T Unsigned](value T) T {
	return value | ^(value + 1)
}

// Blci is an alias of IsolateLowestClearBit.
func Blci[T Unsigned](value T) T { return IsolateLowestClearBit(value) }

// IsolateLowestSetBit keeps only the lowest set bit of value. E.g. 0b11100011 gives 0b00000001.
func IsolateLowestSetBit[T Unsigned](value T) T {
	return value & -value
}

// Blsi is an alias of IsolateLowestSetBit.
func Blsi[T Unsigned](value T) T { return IsolateLowestSetBit(value) }

// FillFromLowestClearBit clears the set bits below the lowest clear bit of value.
// E.g. 0b11101011 gives 0b11101000. A value with every bit set is returned unchanged.
func FillFromLowestClearBit[T Unsigned](value T) T {
	if Popcnt(value) == width(value) {
		return value
	}
	return value & (value + 1)
}

// Blcfill is an alias of FillFromLowestClearBit.
func Blcfill[T Unsigned](value T) T { return FillFromLowestClearBit(value) }

// FillFromLowestSetBit sets the clear bits below the lowest set bit of value.
// E.g. 0b01110100 gives 0b01110111. Zero is returned unchanged.
func FillFromLowestSetBit[T Unsigned](value T) T {
	if Popcnt(value) == 0 {
		return 0
	}
	return value | (value - 1)
}

// Blsfill is an alias of FillFromLowestSetBit.
func Blsfill[T Unsigned](value T) T { return FillFromLowestSetBit(value) }

// ClearLowestSetBit clears the lowest set bit of value. E.g. 0b11100010 gives 0b11100000.
func ClearLowestSetBit[T Unsigned](value T) T {
	return value & (value - 1)
}

// Blsc is an alias of ClearLowestSetBit.
func Blsc[T Unsigned](value T) T { return ClearLowestSetBit(value) }

// SetLowestClearBit sets the lowest clear bit of value. E.g. 0b11100011 gives 0b11100111.
// value + 1 wraps to 0 when every bit is set, so that input comes back unchanged.
func SetLowestClearBit[T Unsigned](value T) T {
	return value | (value + 1)
}

// Blcs is an alias of SetLowestClearBit.
func Blcs[T Unsigned](value T) T { return SetLowestClearBit(value) }
