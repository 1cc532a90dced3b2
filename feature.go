package genbank

import (
	"strings"
)

// Feature table columns (0-based).
const (
	keyColumn       = 5  // feature key, columns 6-20
	keyColumnEnd    = 20
	qualifierColumn = 21 // location text or '/', column 22
)

type tableState int

const (
	awaiting tableState = iota
	inFeature
	inQualifier
)

// pendingFeature collects the raw text of one feature table entry.
type pendingFeature struct {
	key        string
	location   strings.Builder
	qualifiers strings.Builder
	nquals     int
}

// parseFeatures consumes the FEATURES block: every line up to the first
// one that starts in column 1.
func (p *Reader) parseFeatures(rec *Record) {
	p.src.Next()

	var (
		cur   *pendingFeature
		state = awaiting
	)
	for {
		line, ok := p.src.Next()
		if !ok {
			break
		}
		if line == "" {
			continue
		}
		if line[0] != ' ' && line[0] != '\t' {
			p.src.Pushback(line)
			break
		}
		line = rtrim(line)

		switch {
		case strings.TrimSpace(column(line, keyColumn, keyColumnEnd)) != "":
			if cur != nil {
				rec.Features = append(rec.Features, p.finishFeature(cur))
			}
			cur = &pendingFeature{key: strings.TrimSpace(column(line, keyColumn, keyColumnEnd))}
			cur.location.WriteString(column(line, qualifierColumn, -1))
			state = inFeature

		case cur == nil:
			// continuation before any feature key

		case column(line, qualifierColumn, qualifierColumn+1) == "/":
			if cur.nquals > 0 {
				cur.qualifiers.WriteByte('\n')
			}
			cur.nquals++
			cur.qualifiers.WriteString(column(line, qualifierColumn+1, -1))
			state = inQualifier

		case state == inFeature:
			cur.location.WriteString(column(line, qualifierColumn, -1))

		case state == inQualifier:
			cur.qualifiers.WriteString(column(line, qualifierColumn, -1))
		}
	}
	if cur != nil {
		rec.Features = append(rec.Features, p.finishFeature(cur))
	}
}

func (p *Reader) finishFeature(pf *pendingFeature) Feature {
	f := Feature{Key: pf.key, Direction: Forward}
	if pf.location.Len() > 0 {
		var bad []string
		f.Direction, f.Locations, bad = ParseLocation(pf.location.String())
		for _, b := range bad {
			p.log.Warn("cannot parse location", "feature", f.Key, "location", b, "line", p.src.n)
		}
	}
	f.setRange()
	if pf.nquals > 0 {
		f.Qualifiers = ParseQualifiers(pf.qualifiers.String())
	}
	return f
}
