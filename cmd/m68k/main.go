// Command m68k assembles and runs M68K assembly source files.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lookbusy1344/m68k-emulator/assembler"
	"github.com/lookbusy1344/m68k-emulator/config"
	"github.com/lookbusy1344/m68k-emulator/core"
	"github.com/lookbusy1344/m68k-emulator/loader"
	"github.com/lookbusy1344/m68k-emulator/vm"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "m68k",
		Short: "m68k-emulator — a two-pass M68K assembler and CPU simulator",
	}

	var outPath string
	assembleCmd := &cobra.Command{
		Use:   "assemble <source.asm>",
		Short: "Assemble a source file into a list file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssemble(args[0], outPath)
		},
	}
	assembleCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output list file path (default: <source>.lst)")

	var stepMode bool
	var maxSteps uint64
	var traceMode bool
	runCmd := &cobra.Command{
		Use:   "run <listfile>",
		Short: "Run an assembled list file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListFile(args[0], stepMode, maxSteps, traceMode)
		},
	}
	runCmd.Flags().BoolVar(&stepMode, "step", false, "Single-step, printing register state after each instruction")
	runCmd.Flags().Uint64Var(&maxSteps, "max-steps", 0, "Maximum instructions to execute (0 = use config default)")
	runCmd.Flags().BoolVar(&traceMode, "trace", false, "Print each fetched instruction's address as it executes")

	rootCmd.AddCommand(assembleCmd, runCmd)
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

// runAssemble parses source, reports any issues to stderr, and writes the
// resulting list file if assembly succeeded.
func runAssemble(srcPath, outPath string) error {
	src, err := os.ReadFile(srcPath) // #nosec G304 -- user-specified source path
	if err != nil {
		return fmt.Errorf("reading %s: %w", srcPath, err)
	}

	list, issues := assembler.Parse(string(src))
	for _, issue := range issues.Warnings() {
		log.Printf("warning: %s", issue.Error())
	}
	if issues.HasErrors() {
		for _, issue := range issues.Errors() {
			log.Printf("error: %s", issue.Error())
		}
		return fmt.Errorf("assembly failed with %d error(s)", len(issues.Errors()))
	}

	if outPath == "" {
		outPath = strings.TrimSuffix(srcPath, filepathExt(srcPath)) + ".lst"
	}

	if err := os.WriteFile(outPath, []byte(loader.Marshal(list)), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	log.Printf("assembled %s -> %s (%d bytes, entry %#06x)", srcPath, outPath, len(list.Memory), list.StartingExecutionAddress)
	return nil
}

// runListFile loads a previously assembled list file and executes it,
// either to completion or one instruction at a time.
func runListFile(listPath string, stepMode bool, maxSteps uint64, traceMode bool) error {
	text, err := os.ReadFile(listPath) // #nosec G304 -- user-specified list file path
	if err != nil {
		return fmt.Errorf("reading %s: %w", listPath, err)
	}

	list, err := loader.Unmarshal(string(text))
	if err != nil {
		return fmt.Errorf("parsing list file: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if maxSteps == 0 {
		maxSteps = cfg.Execution.MaxSteps
	}

	m := vm.New()
	m.LoadListFile(list)
	m.MaxSteps = maxSteps

	for {
		if traceMode || stepMode {
			log.Printf("PC=%#06x", m.CPU.PC)
		}
		more, err := m.Step()
		if err != nil {
			dumpRegisters(m)
			return fmt.Errorf("runtime fault: %w", err)
		}
		if stepMode {
			dumpRegisters(m)
		}
		if !more {
			break
		}
	}

	if !m.Halted {
		log.Printf("step budget (%d) exhausted before halt", maxSteps)
	}
	dumpRegisters(m)
	return nil
}

// dumpRegisters prints a summary of CPU state, in the teacher's
// register-dump style.
func dumpRegisters(m *vm.M68K) {
	fmt.Printf("PC=%#010x  CCR=%s  halted=%v  steps=%d\n", m.CPU.PC, m.CPU.CCR, m.Halted, m.Steps)
	regs := []core.Register{core.D0, core.D1, core.D2, core.D3, core.D4, core.D5, core.D6, core.D7}
	for _, r := range regs {
		fmt.Printf("%s=%#010x ", r, m.CPU.Read(r, core.LONG).Unsigned())
	}
	fmt.Println()
	regs = []core.Register{core.A0, core.A1, core.A2, core.A3, core.A4, core.A5, core.A6, core.A7}
	for _, r := range regs {
		fmt.Printf("%s=%#010x ", r, m.CPU.Read(r, core.LONG).Unsigned())
	}
	fmt.Println()
}

func filepathExt(path string) string {
	i := strings.LastIndex(path, ".")
	if i < 0 {
		return ""
	}
	return path[i:]
}
