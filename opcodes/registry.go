package opcodes

import "github.com/lookbusy1344/m68k-emulator/core"

// Registry is the static mnemonic-to-Handler table. It replaces the
// find_module-style reflection lookup of the system this package is
// modeled on with a plain map literal: adding an opcode means adding an
// entry here, not adding a file the loader has to discover on its own.
var Registry = map[string]core.Handler{
	"MOVE":    Move{},
	"DC":      DC{},
	"LEA":     LEA{},
	"SIMHALT": SIMHALT{},
	"ORG":     ORG{},
	"EQU":     EQU{},
	"END":     END{},
}

// Lookup returns the Handler registered for mnemonic, or nil, ok=false if
// no such opcode or directive exists.
func Lookup(mnemonic string) (core.Handler, bool) {
	h, ok := Registry[mnemonic]
	return h, ok
}

// Directive names the three preprocessor directives the assembler handles
// outside the normal emission path.
const (
	DirectiveORG = "ORG"
	DirectiveEQU = "EQU"
	DirectiveEND = "END"
)

// IsDirective reports whether mnemonic is one of the preprocessor
// directives rather than a runtime instruction.
func IsDirective(mnemonic string) bool {
	return mnemonic == DirectiveORG || mnemonic == DirectiveEQU || mnemonic == DirectiveEND
}
