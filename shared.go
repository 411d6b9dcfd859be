package bitcalc

import (
	"fmt"
	"io"
)

const (
	VersionMax uint8 = 0
	VersionMid uint8 = 1
	VersionMin uint8 = 0
)

// Output levels

// OutputLevel is the amount of output to provide while evaluating.
type OutputLevel int

const (
	OutputNone    OutputLevel = iota // Prints nothing.
	OutputResults OutputLevel = iota // Prints only the results.
	OutputSteps   OutputLevel = iota // Also prints each step taken.
	OutputDebug   OutputLevel = iota // Also prints debugging information.
)

// printlnLvl writes args to out if the configured level is at least minLevel.
func printlnLvl(out io.Writer, level, minLevel OutputLevel, args ...interface{}) {
	if level < minLevel || out == nil {
		return
	}
	fmt.Fprintln(out, args...)
}

// Error types

// InvalidFormatError is returned when the provided configuration is of an invalid format.
type InvalidFormatError struct {
	ErrorDesc string
}

func (e *InvalidFormatError) Error() string {
	if len(e.ErrorDesc) > 0 {
		return e.ErrorDesc
	}
	return "The provided data is of an invalid format."
}

// InvalidValueError is returned when the value cannot be parsed as an unsigned integer of the requested width,
// either because it is malformed or because it does not fit.
type InvalidValueError struct {
	Value      string
	Width      uint
	InnerError error
}

func (e *InvalidValueError) Error() string {
	ret := fmt.Sprintf("The value '%v' is not a valid %d-bit unsigned integer.", e.Value, e.Width)
	if e.InnerError != nil {
		return fmt.Sprintf("%v Inner error: %v", ret, e.InnerError.Error())
	}
	return ret
}

func (e *InvalidValueError) Unwrap() error {
	return e.InnerError
}

// Library methods

// Version returns the library version as MM.mm.pp.
func Version() string {
	return fmt.Sprintf("%02d.%02d.%02d", VersionMax, VersionMid, VersionMin)
}
