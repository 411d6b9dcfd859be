package bitmanip_test

import (
	"fmt"

	"github.com/zedseven/bitcalc/pkg/bitmanip"
)

func ExampleMask() {
	fmt.Printf("%#b\n", bitmanip.Mask(2, 2))
	// Output:
	// 0b1100
}

func ExampleSetBits() {
	fmt.Printf("%#b\n", bitmanip.SetBits(uint8(0b1100), 2, 0))
	fmt.Printf("%#b\n", bitmanip.ClearBits(uint8(0b1111), 2, 1))
	// Output:
	// 0b1111
	// 0b1001
}

func ExampleLeadingZeroesCount() {
	fmt.Println(bitmanip.LeadingZeroesCount(uint8(0b00001111)))
	fmt.Println(bitmanip.LeadingZeroesCount(uint16(0)))
	fmt.Println(bitmanip.Tzcnt(uint32(0b1100)))
	// Output:
	// 4
	// 16
	// 2
}

func ExampleIsolateLowestSetBit() {
	fmt.Printf("%08b\n", bitmanip.Blsi(uint8(0b11100011)))
	fmt.Printf("%08b\n", bitmanip.Blci(uint8(0b11100011)))
	// Output:
	// 00000001
	// 11111011
}

func ExampleSetLowestClearBit() {
	fmt.Printf("%08b\n", bitmanip.SetLowestClearBit(uint8(0b11100011)))
	fmt.Printf("%08b\n", bitmanip.SetLowestClearBit(uint8(0xFF)))
	// Output:
	// 11100111
	// 11111111
}
