package genbank

import (
	"fmt"
	"regexp"
	"strconv"
)

// LOCUS line layout:
//
//	01-05  LOCUS
//	13-28  locus name
//	30-40  length, right-justified, followed by "bp"
//	45-47  blank, ss-, ds- or ms-
//	48-53  molecule type (DNA, RNA, mRNA, ...)
//	56-63  linear or circular, blank padded
//	65-67  division code
//	69-79  date, dd-MMM-yyyy
//
// Older files shift the columns, so the fields are matched by pattern
// rather than by position.
var locusRegexp = regexp.MustCompile(
	`(?i)^LOCUS +([a-z0-9_|]+) +([0-9]+) bp +([a-z\-| ]+) ([a-z| ]{8}) ([a-z| ]{3}) ([0-9]+-[a-z]+-[0-9]+)`)

// MalformedError reports a LOCUS line that does not follow the header
// grammar. The record it opens is discarded.
type MalformedError struct {
	Line   string
	LineNo int
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("invalid LOCUS line %d: %q", e.LineNo, e.Line)
}

func parseLocus(line string, lineNo int, rec *Record) error {
	line = rtrim(line)
	m := locusRegexp.FindStringSubmatch(line)
	if m == nil {
		return &MalformedError{Line: line, LineNo: lineNo}
	}

	n, err := strconv.ParseUint(m[2], 10, 64)
	if err != nil {
		return &MalformedError{Line: line, LineNo: lineNo}
	}

	rec.LocusName = rtrim(m[1])
	rec.Length = n
	rec.Molecule = rtrim(m[3])
	rec.Topology = rtrim(m[4])
	rec.Division = rtrim(m[5])
	rec.Date = rtrim(m[6])
	return nil
}
