package utils

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/pkg/errors"
)

var warnColor = func(is ...interface{}) string {
	return CanColorize(color.New(color.FgYellow, color.Bold).SprintFunc())(is...)
}

func TimeTrack(start time.Time, name string) {
	fmt.Printf("%s took %s\n", name, time.Since(start))
}

func VerbosePrint(format string, a ...interface{}) (n int, err error) {
	if Opts().Verbose() {
		return fmt.Printf(format, a...)
	}
	return 0, nil
}

// Warn logs a non-fatal problem with the input data.
func Warn(format string, a ...interface{}) {
	log.Output(2, warnColor("WARNING: ")+fmt.Sprintf(format, a...))
}

// ParseInts parses a comma separated list of integers. Blank entries are skipped.
func ParseInts(s string) ([]int, error) {
	var res []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		i, err := strconv.Atoi(field)
		if err != nil {
			return nil, errors.Wrapf(err, "bad list entry %q", field)
		}
		res = append(res, i)
	}
	return res, nil
}
