// Package loader implements the list file's textual interchange format: a
// human-readable, line-oriented rendering of an assembler.ListFile that can
// be written to disk by `m68k assemble` and read back by `m68k run` without
// re-running the assembler.
package loader

import (
	"bufio"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/lookbusy1344/m68k-emulator/assembler"
)

// Marshal renders a ListFile as text: a starting-execution-address line, a
// symbols section, and a memory section listing every defined byte as an
// address/value pair, one per line, in ascending address order so the
// output is deterministic and diffable.
func Marshal(list *assembler.ListFile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "START %06X\n", list.StartingExecutionAddress)

	names := make([]string, 0, len(list.Symbols))
	for name := range list.Symbols {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, "SYMBOL %s %06X\n", name, list.Symbols[name])
	}

	addrs := make([]uint32, 0, len(list.Memory))
	for addr := range list.Memory {
		addrs = append(addrs, addr)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })
	for _, addr := range addrs {
		fmt.Fprintf(&b, "BYTE %06X %02X\n", addr, list.Memory[addr])
	}

	return b.String()
}

// Unmarshal parses the text format Marshal produces back into a ListFile.
func Unmarshal(text string) (*assembler.ListFile, error) {
	list := assembler.NewListFile()
	scanner := bufio.NewScanner(strings.NewReader(text))
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "START":
			if len(fields) != 2 {
				return nil, fmt.Errorf("line %d: malformed START record", lineNum)
			}
			v, err := strconv.ParseUint(fields[1], 16, 32)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid START address: %w", lineNum, err)
			}
			list.StartingExecutionAddress = uint32(v)
		case "SYMBOL":
			if len(fields) != 3 {
				return nil, fmt.Errorf("line %d: malformed SYMBOL record", lineNum)
			}
			v, err := strconv.ParseUint(fields[2], 16, 32)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid symbol address: %w", lineNum, err)
			}
			list.DefineSymbol(fields[1], uint32(v))
		case "BYTE":
			if len(fields) != 3 {
				return nil, fmt.Errorf("line %d: malformed BYTE record", lineNum)
			}
			addr, err := strconv.ParseUint(fields[1], 16, 32)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid byte address: %w", lineNum, err)
			}
			v, err := strconv.ParseUint(fields[2], 16, 8)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid byte value: %w", lineNum, err)
			}
			list.Memory[uint32(addr)] = byte(v)
		default:
			return nil, fmt.Errorf("line %d: unknown record kind %q", lineNum, fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading list file: %w", err)
	}
	return list, nil
}
