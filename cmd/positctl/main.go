// Command positctl is a front end over the posit package: encode,
// decode, multiply, and convert posits from the shell, dump or verify
// golden vectors, run a randomized self-multiply cross-check, and
// launch the terminal diagnostic viewer.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adonairc/posit/diagnostics"
	"github.com/adonairc/posit/fixtures"
	"github.com/adonairc/posit/posit"
)

func main() {
	var size, es uint

	rootCmd := &cobra.Command{
		Use:   "positctl",
		Short: "Inspect and exercise Type-III posit arithmetic",
	}
	rootCmd.PersistentFlags().UintVar(&size, "size", 16, "posit width N")
	rootCmd.PersistentFlags().UintVar(&es, "es", 1, "exponent field width ES")

	decodeCmd := &cobra.Command{
		Use:   "decode <bits>",
		Short: "Decode a bit pattern and print its fields and real value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bits, err := parseBits(args[0])
			if err != nil {
				return err
			}
			p, err := posit.FromBits(bits, size, es)
			if err != nil {
				return err
			}
			printPosit(p)
			return nil
		},
	}

	encodeCmd := &cobra.Command{
		Use:   "encode <value>",
		Short: "Convert a real value to a posit and print its bit pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid real value %q: %w", args[0], err)
			}
			p, err := posit.FromDouble(x, size, es)
			if err != nil {
				return err
			}
			printPosit(p)
			return nil
		},
	}

	mulCmd := &cobra.Command{
		Use:   "mul <a> <b>",
		Short: "Multiply two real values through posits of the configured (size, es) and print the result",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid real value %q: %w", args[0], err)
			}
			b, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid real value %q: %w", args[1], err)
			}

			pa, err := posit.FromDouble(a, size, es)
			if err != nil {
				return err
			}
			pb, err := posit.FromDouble(b, size, es)
			if err != nil {
				return err
			}

			result := posit.Mul(pa, pb)
			printPosit(result)
			return nil
		},
	}

	var vectorsFile string
	vectorsCmd := &cobra.Command{
		Use:   "vectors",
		Short: "Dump or verify golden (N,ES) vectors",
	}

	vectorsDumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Write the built-in golden vectors to a TOML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if vectorsFile == "" {
				return fmt.Errorf("--file is required")
			}
			return fixtures.DefaultSet().Save(vectorsFile)
		},
	}
	vectorsDumpCmd.Flags().StringVar(&vectorsFile, "file", "", "output TOML file path")

	vectorsVerifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a TOML vector file against this package's decoder",
		RunE: func(cmd *cobra.Command, args []string) error {
			set := fixtures.DefaultSet()
			if vectorsFile != "" {
				var err error
				set, err = fixtures.Load(vectorsFile)
				if err != nil {
					return err
				}
			}
			for _, pv := range set.Profiles {
				if err := pv.Verify(); err != nil {
					return err
				}
				fmt.Printf("%s: %d vectors OK\n", pv.Name, len(pv.Vectors))
			}
			return nil
		},
	}
	vectorsVerifyCmd.Flags().StringVar(&vectorsFile, "file", "", "input TOML file path (default: built-in vectors)")

	vectorsCmd.AddCommand(vectorsDumpCmd, vectorsVerifyCmd)

	var crosscheckN int
	var crosscheckSeed int64
	crosscheckCmd := &cobra.Command{
		Use:   "crosscheck",
		Short: "Randomly self-multiply posits in [-10, 10] and report bit-exact agreement with the round-tripped product",
		RunE: func(cmd *cobra.Command, args []string) error {
			rng := rand.New(rand.NewSource(crosscheckSeed))
			failures := 0
			for i := 0; i < crosscheckN; i++ {
				a := rng.Float64()*20 - 10
				p, err := posit.FromDouble(a, size, es)
				if err != nil {
					return err
				}
				result := posit.Mul(p, p)

				want, err := posit.FromDouble(a*a, size, es)
				if err != nil {
					return err
				}
				resultBits, _ := result.BitRepr()
				wantBits, _ := want.BitRepr()
				if resultBits != wantBits {
					failures++
					fmt.Printf("mismatch: a=%v p*p=%#x want=%#x\n", a, resultBits, wantBits)
				}
			}
			fmt.Printf("%d/%d self-multiplications matched FromDouble(a*a) exactly\n", crosscheckN-failures, crosscheckN)
			if failures > 0 {
				return fmt.Errorf("%d mismatches", failures)
			}
			return nil
		},
	}
	crosscheckCmd.Flags().IntVar(&crosscheckN, "n", 1000, "number of random samples")
	crosscheckCmd.Flags().Int64Var(&crosscheckSeed, "seed", 1, "PRNG seed")

	viewCmd := &cobra.Command{
		Use:   "view <bits>",
		Short: "Launch the terminal diagnostic viewer for a bit pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bits, err := parseBits(args[0])
			if err != nil {
				return err
			}
			p, err := posit.FromBits(bits, size, es)
			if err != nil {
				return err
			}
			v, err := diagnostics.NewViewer(p)
			if err != nil {
				return err
			}
			return v.Run()
		},
	}

	rootCmd.AddCommand(decodeCmd, encodeCmd, mulCmd, vectorsCmd, crosscheckCmd, viewCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// parseBits parses a bit pattern given as decimal or 0x-prefixed hex.
func parseBits(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return strconv.ParseUint(s[2:], 16, 64)
	}
	return strconv.ParseUint(s, 10, 64)
}

func printPosit(p posit.Posit) {
	bits, err := p.BitRepr()
	if err != nil {
		fmt.Printf("bits: <error: %v>\n", err)
	} else {
		fmt.Printf("bits:  %#x\n", bits)
	}

	if p.IsSpecial() {
		fmt.Printf("special: true (sign=%d)\n", p.Sign)
	} else {
		fmt.Printf("k:     %d\n", p.Regime.K)
		fmt.Printf("exp:   %d\n", p.Exp)
		fmt.Printf("mant:  %d\n", p.Mant)
	}
	fmt.Printf("value: %v\n", p.Eval())
}
