package genbank

import (
	"strconv"
	"strings"
)

// ParseLocation reads a feature location such as
// "complement(join(12..78,134..202))". Ranges are returned in the order
// they are written. Ranges that do not reduce to one or two numbers are
// returned in bad and left out of the list.
//
// The operators are found by their first two letters and the text after
// them is taken as is, so nested or remote locations are only handled as
// far as their digits allow.
func ParseLocation(text string) (dir Direction, locs []Location, bad []string) {
	s := strings.TrimLeft(text, " \t")

	dir = Forward
	if rest, ok := stripOperator(s, "co", len("complement(")); ok {
		dir = Complement
		s = rest
	}
	if rest, ok := stripOperator(s, "jo", len("join(")); ok {
		s = rest
	}

	for _, part := range strings.Split(s, ",") {
		start, end, ok := convertPos2Num(part)
		if !ok {
			bad = append(bad, part)
			continue
		}
		locs = append(locs, Location{Start: start, End: end})
	}
	return dir, locs, bad
}

// stripOperator looks for prefix anywhere in s. When found, the last ')'
// of s is removed and the text past the operator name is returned.
func stripOperator(s, prefix string, width int) (string, bool) {
	i := strings.Index(s, prefix)
	if i < 0 {
		return s, false
	}
	if j := strings.LastIndexByte(s, ')'); j >= 0 {
		s = s[:j]
	}
	if i+width > len(s) {
		return "", true
	}
	return s[i+width:], true
}

// convertPos2Num collects the runs of digits in s, right to left. One run
// is a single base, two runs are start and end; anything else fails.
// Other characters, such as '<', '>' or '^', are ignored.
func convertPos2Num(s string) (start, end uint64, ok bool) {
	var runs []string
	stop := -1
	for i := len(s) - 1; i >= -1; i-- {
		digit := i >= 0 && s[i] >= '0' && s[i] <= '9'
		switch {
		case digit && stop < 0:
			stop = i + 1
		case !digit && stop >= 0:
			runs = append(runs, s[i+1:stop])
			stop = -1
		}
	}

	switch len(runs) {
	case 1:
		n, err := strconv.ParseUint(runs[0], 10, 64)
		if err != nil {
			return 0, 0, false
		}
		return n, n, true
	case 2:
		e, err := strconv.ParseUint(runs[0], 10, 64)
		if err != nil {
			return 0, 0, false
		}
		b, err := strconv.ParseUint(runs[1], 10, 64)
		if err != nil {
			return 0, 0, false
		}
		return b, e, true
	}
	return 0, 0, false
}
