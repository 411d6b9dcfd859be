// Package bitcalc evaluates bit manipulation primitives on values given as text, in the way the
// bitcalc command line tool does.
package bitcalc

import (
	"fmt"
	"io"
	"os"

	"github.com/zedseven/bitcalc/internal/ops"
	"github.com/zedseven/bitcalc/internal/util"
)

// Types

// EvalConfig stores the configuration options for the Eval operation.
type EvalConfig struct {
	Op          string      // The descriptive or mnemonic name of the operation. Ignored when All is set.
	Width       uint        // The width of the value in bits: 8, 16, 32 or 64.
	Value       string      // The input value. May be empty for the mask operation.
	Bits        uint        // The number of bits for mask, set_bits and clear_bits.
	Shift       uint        // The shift for mask, set_bits and clear_bits.
	All         bool        // Whether to evaluate every operation instead of just Op.
	OutputLevel OutputLevel // The amount of output to provide.
	Out         io.Writer   // Where output is written. Defaults to os.Stdout.
}

// Result is the outcome of applying one operation to one value.
type Result struct {
	Op     ops.Op
	Width  uint
	Input  uint64
	Bits   uint
	Shift  uint
	Output uint64
}

// String returns the result as "name(input) = output".
func (r Result) String() string {
	return r.format(0)
}

// call returns the "name(args)" half of the result.
func (r Result) call() string {
	name := r.Op.String()
	if alias := r.Op.Alias(); len(alias) > 0 {
		name = fmt.Sprintf("%v/%v", name, alias)
	}

	var args string
	switch r.Op {
	case ops.OpMask:
		args = fmt.Sprintf("bits=%d, shift=%d", r.Bits, r.Shift)
	case ops.OpSetBits, ops.OpClearBits:
		args = fmt.Sprintf("%v, bits=%d, shift=%d", util.FormatBinary(r.Input, r.Width), r.Bits, r.Shift)
	default:
		args = util.FormatBinary(r.Input, r.Width)
	}
	return fmt.Sprintf("%v(%v)", name, args)
}

// format pads the call to callWidth characters so that lists of results line up.
func (r Result) format(callWidth int) string {
	if r.Op.ReturnsCount() {
		return fmt.Sprintf("%-*v = %d", callWidth, r.call(), r.Output)
	}
	return fmt.Sprintf("%-*v = %v (%v, %d)", callWidth, r.call(),
		util.FormatBinary(r.Output, r.Width), util.FormatHex(r.Output, r.Width), r.Output)
}

// Primary method

// Eval parses the configured value and applies the configured operation, or every operation, to it.
// Each result is printed at OutputResults and above, and all of them are returned in order.
func Eval(config EvalConfig) ([]Result, error) {
	out := config.Out
	if out == nil {
		out = os.Stdout
	}

	// Input validation
	if !ops.IsValidWidth(config.Width) {
		return nil, &ops.UnsupportedWidthError{Width: config.Width}
	}

	var todo []ops.Op
	if config.All {
		todo = ops.All()
	} else {
		op := ops.StringToOp(config.Op)
		if !op.IsValid() {
			return nil, &InvalidFormatError{fmt.Sprintf("The operation '%v' is not recognized.", config.Op)}
		}
		todo = []ops.Op{op}
	}

	needsValue := config.All || todo[0] != ops.OpMask
	if needsValue && len(config.Value) <= 0 {
		return nil, &InvalidFormatError{"Value is empty."}
	}
	outOfRange := config.Bits > config.Width || config.Shift > config.Width-config.Bits
	if outOfRange && (config.All || todo[0].TakesRange()) {
		return nil, &InvalidFormatError{fmt.Sprintf("Bits + Shift must not exceed the width of %d: Provided %d + %d.",
			config.Width, config.Bits, config.Shift)}
	}

	printlnLvl(out, config.OutputLevel, OutputDebug, "This tool has been set to display debug output.")
	printlnLvl(out, config.OutputLevel, OutputDebug, fmt.Sprintf("Config: %+v", config))

	var value uint64
	if len(config.Value) > 0 {
		printlnLvl(out, config.OutputLevel, OutputSteps, fmt.Sprintf("Parsing '%v' as a %d-bit value...", config.Value, config.Width))
		v, err := util.ParseValue(config.Value, config.Width)
		if err != nil {
			return nil, &InvalidValueError{config.Value, config.Width, err}
		}
		value = v
	}

	results := make([]Result, 0, len(todo))
	for _, op := range todo {
		printlnLvl(out, config.OutputLevel, OutputSteps, fmt.Sprintf("Applying %v...", op))
		output, err := ops.Apply(op, config.Width, value, config.Bits, config.Shift)
		if err != nil {
			return nil, err
		}

		results = append(results, Result{
			Op:     op,
			Width:  config.Width,
			Input:  value,
			Bits:   config.Bits,
			Shift:  config.Shift,
			Output: output,
		})
	}

	callWidth := 0
	for _, r := range results {
		callWidth = util.Max(callWidth, len(r.call()))
	}
	for _, r := range results {
		printlnLvl(out, config.OutputLevel, OutputResults, r.format(callWidth))
	}

	printlnLvl(out, config.OutputLevel, OutputSteps, "Done!")
	return results, nil
}
