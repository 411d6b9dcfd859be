package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/zedseven/bitcalc"
	"github.com/zedseven/bitcalc/internal/ops"
	"github.com/zedseven/bitcalc/internal/util"
)

// Program entry point

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args and evaluates them, returning the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("bitcalc", flag.ContinueOnError)
	flags.SetOutput(stderr)

	opName := flags.String("op", "", "The operation to apply, by name or mnemonic: "+opList())
	width := flags.Uint("width", 64, "The width of the value in bits (8, 16, 32 or 64)")
	value := flags.String("value", "", "The value to operate on, in decimal, 0b, 0o or 0x form")
	bits := flags.Uint("bits", 0, "The number of bits for mask, set_bits and clear_bits")
	shift := flags.Uint("shift", 0, "The shift for mask, set_bits and clear_bits")
	all := flags.Bool("all", false, "Whether to apply every operation to the value instead of just -op")
	verbosity := flags.Int("v", int(bitcalc.OutputResults), "The amount of output to provide (0-3)")
	version := flags.Bool("version", false, "Print the version and exit")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	if *version {
		fmt.Fprintf(stdout, "bitcalc v%v\n", bitcalc.Version())
		return 0
	}
	// The value may also be given as the only positional argument.
	if len(*value) <= 0 && flags.NArg() == 1 {
		*value = flags.Arg(0)
	}
	if (len(*opName) <= 0 && !*all) || !ops.IsValidWidth(*width) {
		flags.PrintDefaults()
		return 2
	}

	_, err := bitcalc.Eval(bitcalc.EvalConfig{
		Op:          *opName,
		Width:       *width,
		Value:       *value,
		Bits:        *bits,
		Shift:       *shift,
		All:         *all,
		OutputLevel: bitcalc.OutputLevel(util.Clamp(int(bitcalc.OutputNone), int(bitcalc.OutputDebug), *verbosity)),
		Out:         stdout,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Unable to evaluate: %v\n", err.Error())
		return 1
	}
	return 0
}

func opList() string {
	names := make([]string, 0, 2*len(ops.All()))
	for _, op := range ops.All() {
		names = append(names, op.String())
		if alias := op.Alias(); len(alias) > 0 {
			names = append(names, alias)
		}
	}
	return strings.Join(names, ", ")
}
