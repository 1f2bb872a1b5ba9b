package main

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/keng/internal/exercise/clock"
	"github.com/vovakirdan/keng/internal/exercise/complexnum"
)

// Operands such as "-7i" or "-01h:00m:00s" look like flags, so the leaf
// commands below read their arguments raw.

var complexCmd = &cobra.Command{
	Use:   "complex",
	Short: "Complex number arithmetic",
	Long: `Work with complex numbers written as a, bi, a+bi or a-bi.

Examples:
  keng complex show 3.14
  keng complex add 3.14 1-7i
  keng complex mul 1+2i 3-1i`,
}

var clockCmd = &cobra.Command{
	Use:   "clock",
	Short: "Clock arithmetic on HHh:MMm:SSs spans",
	Long: `Work with time spans written as 10h:12m:01s (any of h, m, s in that
order) or as a bare number of seconds.

Examples:
  keng clock show 3725
  keng clock add 01h:30m 45m
  keng clock sub 10m 1h
  keng clock mul 12m:30s 4
  keng clock seconds 10h:12m:01s`,
}

// rawCommand builds a command whose operands may start with '-'. Flag
// parsing is off, so -h and --help are handled here.
func rawCommand(use, short string, nargs int, run func(args []string) error) *cobra.Command {
	return &cobra.Command{
		Use:                use,
		Short:              short,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if wantsHelp(args) {
				return cmd.Help()
			}
			if err := cobra.ExactArgs(nargs)(cmd, args); err != nil {
				return err
			}
			return run(args)
		},
	}
}

func wantsHelp(args []string) bool {
	return slices.ContainsFunc(args, func(a string) bool {
		return a == "-h" || a == "--help"
	})
}

func init() {
	complexCmd.AddCommand(
		rawCommand("show <a>", "Print a number with its parts, conjugate and modulus", 1, runComplexShow),
		rawCommand("add <a> <b>", "Print a + b", 2, complexBinary("+", complexnum.Number.Add)),
		rawCommand("sub <a> <b>", "Print a - b", 2, complexBinary("-", complexnum.Number.Sub)),
		rawCommand("mul <a> <b>", "Print a * b", 2, complexBinary("*", complexnum.Number.Mul)),
	)

	clockCmd.AddCommand(
		rawCommand("show <t>", "Print a span in HHh:MMm:SSs form", 1, runClockShow),
		rawCommand("add <a> <b>", "Print a + b", 2, clockBinary("+", clock.Time.Add)),
		rawCommand("sub <a> <b>", "Print a - b", 2, clockBinary("-", clock.Time.Sub)),
		rawCommand("mul <t> <n>", "Print t * n", 2, runClockMul),
		rawCommand("seconds <t>", "Print a span as a number of seconds", 1, runClockSeconds),
	)
}

func parseComplexArgs(args []string) ([]complexnum.Number, error) {
	out := make([]complexnum.Number, len(args))
	for i, a := range args {
		n, err := complexnum.Parse(a)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

func runComplexShow(args []string) error {
	nums, err := parseComplexArgs(args)
	if err != nil {
		return err
	}
	n := nums[0]
	fmt.Println(n)
	fmt.Printf("  real:    %g\n", n.Real())
	fmt.Printf("  imag:    %g\n", n.Imag())
	fmt.Printf("  conj:    %s\n", n.Conj())
	fmt.Printf("  modulus: %g\n", n.Abs())
	return nil
}

func complexBinary(op string, fn func(a, b complexnum.Number) complexnum.Number) func([]string) error {
	return func(args []string) error {
		nums, err := parseComplexArgs(args)
		if err != nil {
			return err
		}
		fmt.Printf("(%s) %s (%s) = %s\n", nums[0], op, nums[1], fn(nums[0], nums[1]))
		return nil
	}
}

func runClockShow(args []string) error {
	t, err := clock.Parse(args[0])
	if err != nil {
		return err
	}
	fmt.Println(t)
	return nil
}

func clockBinary(op string, fn func(a, b clock.Time) clock.Time) func([]string) error {
	return func(args []string) error {
		a, err := clock.Parse(args[0])
		if err != nil {
			return err
		}
		b, err := clock.Parse(args[1])
		if err != nil {
			return err
		}
		fmt.Printf("%s %s %s = %s\n", a, op, b, fn(a, b))
		return nil
	}
}

func runClockMul(args []string) error {
	t, err := clock.Parse(args[0])
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("clock: bad factor %q: %w", args[1], err)
	}
	fmt.Printf("%s * %d = %s\n", t, n, t.Mul(n))
	return nil
}

func runClockSeconds(args []string) error {
	t, err := clock.Parse(args[0])
	if err != nil {
		return err
	}
	fmt.Println(t.Seconds())
	return nil
}
