package main

import (
	"fmt"
	"strconv"
)

// FormatUSD renders an annual wage as whole dollars with thousands
// separators, e.g. 132270.4 -> "$132,270".
func FormatUSD(v float64) string {
	n := int64(v + 0.5)
	neg := n < 0
	if neg {
		n = -n
	}

	s := strconv.FormatInt(n, 10)
	out := make([]byte, 0, len(s)+len(s)/3)
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}

	if neg {
		return fmt.Sprintf("-$%s", out)
	}
	return fmt.Sprintf("$%s", out)
}
