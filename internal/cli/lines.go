package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// parseLines parses "A:B" or "N" into an inclusive 1-indexed range. An
// empty bound after the colon means the last line.
func parseLines(spec string, lineCount int) (int, int, error) {
	if spec == "" {
		return 1, lineCount, nil
	}
	startText, endText, hasColon := strings.Cut(spec, ":")

	start, err := strconv.Atoi(strings.TrimSpace(startText))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid line range %q: %w", spec, err)
	}
	end := start
	if hasColon {
		if strings.TrimSpace(endText) == "" {
			end = lineCount
		} else if end, err = strconv.Atoi(strings.TrimSpace(endText)); err != nil {
			return 0, 0, fmt.Errorf("invalid line range %q: %w", spec, err)
		}
	}
	return start, end, nil
}
