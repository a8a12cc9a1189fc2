package core

import "fmt"

// SafeAddress narrows a parsed literal value down to a 24-bit M68K address,
// rejecting anything negative or at/beyond the 16 MiB address space. ORG and
// END directives, and the assembler's layout pass, all funnel their
// address arithmetic through this single check.
func SafeAddress(v int64) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("address %d is negative", v)
	}
	if v >= 1<<24 {
		return 0, fmt.Errorf("address %#x exceeds the 24-bit address space (max %#x)", v, uint32(1<<24-1))
	}
	return uint32(v), nil
}

// SafeUint64ToUint32 narrows a uint64 byte count or offset down to uint32,
// used where accumulated memory-location arithmetic (which must run in
// 64 bits to detect overflow past 2^24) needs to be stored back into a
// ListFile's 32-bit address fields.
func SafeUint64ToUint32(v uint64) (uint32, error) {
	if v > 1<<24 {
		return 0, fmt.Errorf("value %#x exceeds the 24-bit address space", v)
	}
	return uint32(v), nil
}
