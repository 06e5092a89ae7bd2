package parser

import (
	"sort"
	"strings"
)

// sortNatural orders file names so embedded numbers compare by value:
// message_2.json sorts before message_10.json. Comparison ignores case.
func sortNatural(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		return naturalLess(names[i], names[j])
	})
}

func naturalLess(a, b string) bool {
	x, y := strings.ToLower(a), strings.ToLower(b)
	for x != "" && y != "" {
		cx, restX := nextChunk(x)
		cy, restY := nextChunk(y)
		if cx != cy {
			if isDigit(cx[0]) && isDigit(cy[0]) {
				nx, ny := strings.TrimLeft(cx, "0"), strings.TrimLeft(cy, "0")
				if len(nx) != len(ny) {
					return len(nx) < len(ny)
				}
				if nx != ny {
					return nx < ny
				}
				// Same value, fewer leading zeros first.
				return len(cx) < len(cy)
			}
			return cx < cy
		}
		x, y = restX, restY
	}
	if x == y {
		return a < b
	}
	return x == ""
}

// nextChunk splits off the leading run of digits or non-digits.
func nextChunk(s string) (string, string) {
	digits := isDigit(s[0])
	i := 1
	for i < len(s) && isDigit(s[i]) == digits {
		i++
	}
	return s[:i], s[i:]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
