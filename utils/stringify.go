package utils

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var vertexColor = func(is ...interface{}) string {
	return CanColorize(color.New(color.FgHiCyan).SprintFunc())(is...)
}
var colorColor = func(is ...interface{}) string {
	return CanColorize(color.New(color.FgHiYellow).SprintFunc())(is...)
}
var countColor = func(is ...interface{}) string {
	return CanColorize(color.New(color.FgHiGreen).SprintFunc())(is...)
}

func VertexString(v int) string {
	return vertexColor(v)
}

// ColorString prints a colour label.
func ColorString(c int) string {
	return colorColor(fmt.Sprintf("c%d", c))
}

func CountString(n int) string {
	return countColor(fmt.Sprintf("x%d", n))
}

// IntsString prints a list of integers as {a, b, c}, applying str to every entry.
func IntsString(is []int, str func(int) string) string {
	strs := make([]string, len(is))
	for i, v := range is {
		strs[i] = str(v)
	}
	return "{" + strings.Join(strs, ", ") + "}"
}
