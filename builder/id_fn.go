// Package builder provides helper functions for valve ID schemes.
package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a valve identifier from its zero-based index.
// It must be a pure, deterministic function.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns the uppercase Latin letter for idx in [0..25], e.g. 0→"A", 25→"Z".
// Panics if idx < 0 or idx > 25.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}
	return string('A' + rune(idx))
}

// ValveIDFn returns two-letter puzzle-style IDs: 0→"AA", 1→"AB", 25→"AZ", 26→"BA".
// Panics if idx < 0 or idx ≥ 676.
func ValveIDFn(idx int) string {
	if idx < 0 || idx >= 26*26 {
		panic(fmt.Sprintf("ValveIDFn: idx must be in [0,675], got %d", idx))
	}
	return string([]rune{'A' + rune(idx/26), 'A' + rune(idx%26)})
}

// ExcelColumnIDFn returns the "Excel-style" column name for idx, e.g. 0→"A", 25→"Z", 26→"AA".
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	// build letters in reverse order
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
