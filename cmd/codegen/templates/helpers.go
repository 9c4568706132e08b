package templates

import (
	"strconv"
	"strings"
)

// prefixedStrings renders "p0, p1, ..." for the given prefix and arity.
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

func plural(count int, one, many string) string {
	if count == 1 {
		return one
	}
	return many
}
