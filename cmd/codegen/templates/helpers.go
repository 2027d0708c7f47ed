package templates

import (
	"strconv"
	"strings"
)

// prefixedStrings returns "p0, p1, ..." with count items.
func prefixedStrings(prefix string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(prefix)
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// pairedStrings returns "l0 r0, l1 r1, ..." with count items.
func pairedStrings(left, right string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(left)
		sb.WriteString(strconv.Itoa(i))
		sb.WriteByte(' ')
		sb.WriteString(right)
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}
