package lyrics

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ParseLRC reads "[mm:ss.xx] text" lines into a sorted line sequence.
// Lines without a valid timestamp are skipped. A line may carry several
// timestamps ("[00:10][01:10] chorus"); each produces its own entry.
func ParseLRC(raw string) []Line {
	if raw == "" {
		return nil
	}

	rows := strings.Split(raw, "\n")
	result := make([]Line, 0, len(rows))

	for _, row := range rows {
		trimmed := strings.TrimSpace(row)
		if trimmed == "" {
			continue
		}

		stamps, text := splitLrcLine(trimmed)
		if len(stamps) == 0 || text == "" {
			continue
		}

		for _, stamp := range stamps {
			seconds, err := parseLrcTimeToSeconds(stamp)
			if err != nil {
				continue
			}
			result = append(result, Line{StartTime: seconds, Text: text})
		}
	}

	return Normalize(Data{Lines: result, IsSynced: true})
}

func splitLrcLine(line string) ([]string, string) {
	var stamps []string
	rest := line

	for strings.HasPrefix(rest, "[") {
		endIndex := strings.Index(rest, "]")
		if endIndex <= 1 {
			break
		}
		stamps = append(stamps, rest[1:endIndex])
		rest = rest[endIndex+1:]
	}

	return stamps, strings.TrimSpace(rest)
}

func parseLrcTimeToSeconds(raw string) (float64, error) {
	if raw == "" {
		return 0, errors.New("empty time value")
	}

	parts := strings.Split(raw, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("invalid time format: %s", raw)
	}

	values := make([]float64, len(parts))
	for i, part := range parts {
		value, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return 0, fmt.Errorf("failed to parse time component %q: %w", part, err)
		}
		values[i] = value
	}

	var total float64
	if len(values) == 3 {
		total = values[0]*3600 + values[1]*60 + values[2]
	} else {
		total = values[0]*60 + values[1]
	}

	if total < 0 {
		return 0, errors.New("negative time not allowed")
	}

	return total, nil
}
