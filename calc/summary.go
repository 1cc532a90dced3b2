package calc

import (
	"sort"

	"github.com/mingzhi/genbank"
)

// Summary contains counts over a set of records.
type Summary struct {
	Records        int
	DeclaredLength uint64
	SequenceLength uint64
	Bases          *BaseCounts
	Features       map[string]*Spans
}

func New() *Summary {
	return &Summary{
		Bases:    NewBaseCounts(),
		Features: make(map[string]*Spans),
	}
}

// Summarize returns the summary of recs.
func Summarize(recs []*genbank.Record) *Summary {
	s := New()
	for _, rec := range recs {
		s.Increment(rec)
	}
	return s
}

func (s *Summary) Increment(rec *genbank.Record) {
	s.Records++
	s.DeclaredLength += rec.Length
	s.SequenceLength += uint64(len(rec.Sequence))
	s.Bases.Increment(rec.Sequence)

	for i := range rec.Features {
		f := &rec.Features[i]
		sp, found := s.Features[f.Key]
		if !found {
			sp = NewSpans()
			s.Features[f.Key] = sp
		}
		sp.Increment(f)
	}
}

func (s *Summary) Append(s1 *Summary) {
	s.Records += s1.Records
	s.DeclaredLength += s1.DeclaredLength
	s.SequenceLength += s1.SequenceLength
	s.Bases.Append(s1.Bases)
	for key, sp1 := range s1.Features {
		sp, found := s.Features[key]
		if !found {
			sp = NewSpans()
			s.Features[key] = sp
		}
		sp.Append(sp1)
	}
}

// GCFraction returns the G+C share of the assembled sequences.
func (s *Summary) GCFraction() float64 {
	return s.Bases.GCFraction()
}

// Types returns the feature types seen, sorted by name.
func (s *Summary) Types() []string {
	types := make([]string, 0, len(s.Features))
	for key := range s.Features {
		types = append(types, key)
	}
	sort.Strings(types)
	return types
}
