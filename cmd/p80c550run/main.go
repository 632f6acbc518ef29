// Command p80c550run is a thin demonstration harness for the mu51 core: it
// loads a code image (raw binary or Intel HEX), steps the CPU a bounded
// number of times, and prints the final register file. It exists to
// exercise mu51 end to end — it is not part of the core itself.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teknoman117/p80c550-emulator/internal/ihex"
	"github.com/teknoman117/p80c550-emulator/internal/memory"
	"github.com/teknoman117/p80c550-emulator/mu51"
)

func main() {
	var (
		codeSize     int
		externalSize int
		steps        int
		format       string
	)

	rootCmd := &cobra.Command{
		Use:   "p80c550run [image]",
		Short: "Step an 8051 (MCS-51) core through a program image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			image, err := loadImage(args[0], format, codeSize)
			if err != nil {
				return err
			}

			mem := memory.NewFlat(codeSize, externalSize)
			if err := mem.LoadCode(image); err != nil {
				return err
			}

			cpu := mu51.New(mem)
			for i := 0; i < steps; i++ {
				if err := cpu.Step(); err != nil {
					var decodeErr *mu51.DecodeError
					if errors.As(err, &decodeErr) {
						fmt.Printf("stopped after %d step(s): %s\n", i, err)
						break
					}
					return fmt.Errorf("step %d: %w", i, err)
				}
			}

			printRegisters(cpu.Registers())
			return nil
		},
	}

	rootCmd.Flags().IntVar(&codeSize, "code-size", 0x10000, "code memory size in bytes")
	rootCmd.Flags().IntVar(&externalSize, "xram-size", 0x10000, "external data memory size in bytes")
	rootCmd.Flags().IntVar(&steps, "steps", 1, "number of instructions to execute")
	rootCmd.Flags().StringVar(&format, "format", "hex", "image format: hex or bin")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadImage(path, format string, codeSize int) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	switch format {
	case "bin":
		return data, nil
	case "hex":
		img, err := ihex.Parse(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		flat := make([]byte, codeSize)
		if err := img.FlattenInto(flat); err != nil {
			return nil, err
		}
		return flat, nil
	default:
		return nil, fmt.Errorf("unknown --format %q: want hex or bin", format)
	}
}

func printRegisters(r mu51.Registers) {
	fmt.Printf("PC=0x%04X A=0x%02X B=0x%02X SP=0x%02X DPTR=0x%04X\n",
		r.ProgramCounter, r.Accumulator, r.B, r.StackPointer, r.DataPointer)
	fmt.Printf("bank=%d carry=%d aux_carry=%d overflow=%d\n",
		r.Bank, r.Carry, r.AuxCarry, r.Overflow)
}
