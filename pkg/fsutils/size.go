package fsutils

import "strconv"

// FormatSize renders a byte count as a short human readable string like
// "3B" or "2KB", rounded to the nearest whole unit. TB is the largest
// unit, so huge values come out as "1024TB" rather than overflowing.
func FormatSize(size int64) string {
	if size < 1<<10 {
		return strconv.FormatInt(size, 10) + "B"
	}
	unit := int64(1 << 10)
	for _, suffix := range []string{"KB", "MB", "GB"} {
		// Rounding can push the value into the next unit, e.g. 1023.6KB
		// prints as 1MB.
		if rounded := (size + unit/2) / unit; rounded < 1<<10 {
			return strconv.FormatInt(rounded, 10) + suffix
		}
		unit <<= 10
	}
	return strconv.FormatInt((size+unit/2)/unit, 10) + "TB"
}
