package output

import (
	"strconv"
	"strings"
)

// formatInt renders an int for table cells.
func formatInt(n int) string {
	return strconv.Itoa(n)
}

// formatBalls renders a ball group as comma-separated numbers.
func formatBalls(balls []int) string {
	parts := make([]string, len(balls))
	for i, ball := range balls {
		parts[i] = strconv.Itoa(ball)
	}
	return strings.Join(parts, ", ")
}
