package assembler

import (
	"fmt"
	"strings"

	"github.com/lookbusy1344/m68k-emulator/asmutil"
)

// formatResolvedAddress renders a resolved label address as the "($addr).L"
// literal text the opcode operand parsers expect.
func formatResolvedAddress(addr uint32) string {
	return fmt.Sprintf("($%08X).L", addr)
}

// sourceLine is one line of assembly, split into its label (if any),
// opcode mnemonic plus size suffix, and raw operand text, along with the
// 1-indexed line number used in diagnostics.
type sourceLine struct {
	Num      int
	Label    string
	Mnemonic string
	Size     string
	Operands string
	Raw      string
}

// scanLines splits source into sourceLines, stripping comments and
// skipping blank lines entirely.
func scanLines(source string) []sourceLine {
	var out []sourceLine
	for i, raw := range strings.Split(source, "\n") {
		stripped := asmutil.StripComments(raw)
		if strings.TrimSpace(stripped) == "" {
			continue
		}
		label := asmutil.GetLabel(stripped)
		rest := asmutil.StripLabel(stripped)
		token := asmutil.GetOpcode(rest)
		mnemonic, size := asmutil.SplitMnemonic(token)
		operands := asmutil.StripOpcode(rest)
		out = append(out, sourceLine{
			Num:      i + 1,
			Label:    label,
			Mnemonic: strings.ToUpper(mnemonic),
			Size:     strings.ToUpper(size),
			Operands: operands,
			Raw:      raw,
		})
	}
	return out
}

// replaceEquates substitutes every occurrence of each equate name in
// operands with its literal replacement text. Like the equate-substitution
// pass it is modeled on, this is an unconditional textual replacement, not
// a tokenized one: an equate name that is also a substring of something
// else in the line would be replaced too. In practice equate names are
// chosen to avoid that collision, the same assumption the assembler this
// one is modeled on makes.
func replaceEquates(operands string, equates map[string]string) string {
	for name, value := range equates {
		operands = strings.ReplaceAll(operands, name, value)
	}
	return operands
}

// placeholderAddress is substituted for a label reference during the
// layout pass, before any label's real address is known. Its zero value
// is only ever used to compute word lengths, never emitted.
const placeholderAddress = "($00000000).L"

// replaceLabelsWithPlaceholders substitutes every label name appearing in
// operands with the zero placeholder address, so that the layout pass can
// compute each instruction's word length without yet knowing any label's
// resolved address.
func replaceLabelsWithPlaceholders(operands string, labels map[string]bool) string {
	for name := range labels {
		operands = strings.ReplaceAll(operands, name, placeholderAddress)
	}
	return operands
}

// replaceLabelsWithAddresses substitutes every label name appearing in
// operands with its resolved address, in "($addr).L" form, for the
// emission pass.
func replaceLabelsWithAddresses(operands string, addresses map[string]uint32) string {
	for name, addr := range addresses {
		operands = strings.ReplaceAll(operands, name, formatResolvedAddress(addr))
	}
	return operands
}
