package utils

// PageOffset maps a from/size window onto a page boundary: the page index is
// from/size and rows before it are skipped. Unaligned from values snap down.
func PageOffset(from, size int) int {
	if size <= 0 || from <= 0 {
		return 0
	}
	return (from / size) * size
}
