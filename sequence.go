package genbank

import (
	"strings"
)

// Sequence lines carry a base number in columns 1-9.
const sequenceOffset = 9

const (
	iupacBases       = "ACGTRYMKWSBDHVNacgtrymkwsbdhvn"
	iupacComplements = "TGCAYRKMWSVHDBNtgcayrkmwsvhdbn"
)

var complementTable [256]byte

func init() {
	for i := range complementTable {
		complementTable[i] = 'X'
	}
	for i := 0; i < len(iupacBases); i++ {
		complementTable[iupacBases[i]] = iupacComplements[i]
	}
}

// parseOrigin reads sequence lines up to the "//" terminator, keeping
// only letters. A LOCUS line also ends the sequence.
func (p *Reader) parseOrigin(rec *Record) {
	p.src.Next()

	var b strings.Builder
	if rec.Length > 0 && rec.Length < 1<<30 {
		b.Grow(int(rec.Length))
	}
	for {
		line, ok := p.src.Next()
		if !ok {
			break
		}
		if strings.HasPrefix(line, recordEnd) || strings.HasPrefix(line, recordTag) {
			p.src.Pushback(line)
			break
		}
		for _, c := range []byte(column(line, sequenceOffset, -1)) {
			if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
				b.WriteByte(c)
			}
		}
	}
	rec.Sequence = b.String()
}

// Extract splices the feature's locations out of seq, in list order, and
// reverse complements the joined result for features on the complement
// strand. Locations reaching past the end of seq are clipped.
func Extract(seq string, f *Feature) string {
	var b strings.Builder
	for _, loc := range f.Locations {
		if loc.Start == 0 || loc.Start > loc.End || loc.Start > uint64(len(seq)) {
			continue
		}
		end := loc.End
		if end > uint64(len(seq)) {
			end = uint64(len(seq))
		}
		b.WriteString(seq[loc.Start-1 : end])
	}

	if f.Direction == Complement {
		return ReverseComplement(b.String())
	}
	return b.String()
}

// ReverseComplement reverses s and complements each IUPAC code, upper or
// lower case. Unknown characters become 'X'. The middle character of an
// odd-length s is neither moved nor complemented.
func ReverseComplement(s string) string {
	buf := []byte(s)
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = complementTable[buf[j]], complementTable[buf[i]]
	}
	return string(buf)
}
