package assembler

import (
	"strings"

	"github.com/lookbusy1344/m68k-emulator/asmerr"
	"github.com/lookbusy1344/m68k-emulator/core"
	"github.com/lookbusy1344/m68k-emulator/opcodes"
)

// Parse lowers M68K assembly source into a ListFile, following a
// three-pass design: a first pass discovers every label and EQU constant;
// a second, label-independent pass computes each instruction's assembled
// size so that every label's real address can be known; a third pass
// re-walks the source with real addresses substituted in, emitting the
// final machine-code bytes. It returns whatever issues (errors and
// warnings) it accumulated along the way; the caller should check
// issues.HasErrors() before trusting the returned ListFile.
func Parse(source string) (*ListFile, *asmerr.IssueList) {
	issues := &asmerr.IssueList{}
	lines := scanLines(source)

	labels, equates := findLabelsAndEquates(lines, issues)
	labelSet := make(map[string]bool, len(labels))
	for name := range labels {
		labelSet[name] = true
	}

	list := NewListFile()

	// Pass 2: layout. Compute each label's real address without knowing
	// any other label's address, since WordLength never depends on a
	// resolved address, only on operand shape and size.
	addresses := make(map[string]uint32)
	loc := uint32(0)
	for _, ln := range lines {
		if ln.Mnemonic == opcodes.DirectiveEQU || ln.Mnemonic == opcodes.DirectiveEND {
			continue
		}
		operands := replaceEquates(ln.Operands, equates)
		operands = replaceLabelsWithPlaceholders(operands, labelSet)

		if ln.Mnemonic == opcodes.DirectiveORG {
			addr, err := (opcodes.ORG{}).Address(operands)
			if err != nil {
				issues.Addf(asmerr.OutOfRange, ln.Num, "ORG: %v", err)
				continue
			}
			loc = addr
			continue
		}

		if ln.Label != "" {
			if _, dup := addresses[ln.Label]; dup {
				issues.Addf(asmerr.DuplicateLabel, ln.Num, "label %q already declared", ln.Label)
			} else {
				addresses[ln.Label] = loc
			}
		}

		handler, ok := opcodes.Lookup(ln.Mnemonic)
		if !ok {
			issues.Addf(asmerr.UnknownOpcode, ln.Num, "opcode %q is not known", ln.Mnemonic)
			continue
		}
		size, err := core.ParseOpSize(ln.Size)
		if err != nil {
			issues.Addf(asmerr.BadSyntax, ln.Num, "%s: %v", ln.Mnemonic, err)
			continue
		}
		length, err := handler.WordLength(size, operands)
		if err != nil {
			issues.Addf(asmerr.BadOperand, ln.Num, "%s: %v", ln.Mnemonic, err)
			continue
		}
		end, err := core.SafeUint64ToUint32(uint64(loc) + uint64(length)*2)
		if err != nil {
			issues.Addf(asmerr.OutOfRange, ln.Num, "%s: assembled data extends past address 2^24", ln.Mnemonic)
			continue
		}
		loc = end
	}

	if issues.HasErrors() {
		return list, issues
	}

	// Pass 3: emission, now with every label's real address known.
	loc = 0
	for _, ln := range lines {
		if ln.Mnemonic == opcodes.DirectiveEQU {
			continue
		}
		operands := replaceEquates(ln.Operands, equates)
		operands = replaceLabelsWithAddresses(operands, addresses)

		if ln.Mnemonic == opcodes.DirectiveORG {
			addr, err := (opcodes.ORG{}).Address(operands)
			if err != nil {
				issues.Addf(asmerr.OutOfRange, ln.Num, "ORG: %v", err)
				continue
			}
			loc = addr
			continue
		}

		if ln.Mnemonic == opcodes.DirectiveEND {
			addr, err := (opcodes.END{}).Address(operands)
			if err != nil || addr >= MaxMemoryLocation {
				issues.Addf(asmerr.OutOfRange, ln.Num, "END address must be between 0 and 2^24")
				continue
			}
			list.StartingExecutionAddress = addr
			continue
		}

		if ln.Label != "" {
			list.DefineSymbol(ln.Label, addresses[ln.Label])
		}

		handler, ok := opcodes.Lookup(ln.Mnemonic)
		if !ok {
			continue
		}
		size, err := core.ParseOpSize(ln.Size)
		if err != nil {
			continue
		}
		words, err := handler.Assemble(size, operands, nil)
		if err != nil {
			issues.Addf(asmerr.BadOperand, ln.Num, "%s: %v", ln.Mnemonic, err)
			continue
		}
		for i, w := range words {
			list.SetWord(loc+uint32(i*2), w)
		}
		length, _ := handler.WordLength(size, operands)
		loc += uint32(length) * 2
	}

	return list, issues
}

// findLabelsAndEquates makes the assembler's first pass: it records every
// label's defining line (the first, if a label is defined twice) and every
// EQU's replacement text, and reports duplicate EQU names; a duplicate
// ordinary label is reported by Parse's layout pass. EQU bodies are
// returned as raw text, substituted verbatim wherever their name appears
// in a later operand.
func findLabelsAndEquates(lines []sourceLine, issues *asmerr.IssueList) (labels map[string]int, equates map[string]string) {
	labels = make(map[string]int)
	equates = make(map[string]string)
	for _, ln := range lines {
		if ln.Label == "" {
			continue
		}
		if ln.Mnemonic == opcodes.DirectiveEQU {
			if _, dup := equates[ln.Label]; dup {
				issues.Addf(asmerr.DuplicateLabel, ln.Num, "label %q already declared", ln.Label)
			}
			equates[ln.Label] = strings.TrimSpace(ln.Operands)
			continue
		}
		if _, dup := labels[ln.Label]; !dup {
			labels[ln.Label] = ln.Num
		}
	}
	return labels, equates
}
