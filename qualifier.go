package genbank

import (
	"strings"
)

// ParseQualifiers splits a newline separated block of qualifier text
// (without the leading '/') into key/value pairs. One pair of surrounding
// quotes is removed from each value; quotes inside are kept as written.
func ParseQualifiers(block string) []Qualifier {
	lines := strings.Split(block, "\n")
	quals := make([]Qualifier, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimLeft(line, " \t")
		if line == "" {
			continue
		}

		eq := strings.IndexByte(line, '=')
		if eq < 0 {
			quals = append(quals, Qualifier{Key: line})
			continue
		}

		val := strings.TrimLeft(line[eq+1:], " \t")
		if strings.HasPrefix(val, `"`) {
			val = val[1:]
			if i := strings.LastIndexByte(val, '"'); i >= 0 {
				val = val[:i]
			}
		}
		quals = append(quals, Qualifier{Key: line[:eq], Value: val})
	}
	return quals
}
