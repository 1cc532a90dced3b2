package calc

import (
	"github.com/mingzhi/genbank"
	"github.com/montanaflynn/stats"
)

// Spans collects the overall span of every feature of one type.
type Spans struct {
	lengths []float64
}

func NewSpans() *Spans {
	return &Spans{}
}

// Span returns end-start+1 of the overall range of f, 0 for a feature
// without locations. Features whose first location lies after their last
// one are measured the other way.
func Span(f *genbank.Feature) uint64 {
	if f.Start == 0 && f.End == 0 {
		return 0
	}
	if f.End >= f.Start {
		return f.End - f.Start + 1
	}
	return f.Start - f.End + 1
}

func (sp *Spans) Increment(f *genbank.Feature) {
	sp.lengths = append(sp.lengths, float64(Span(f)))
}

func (sp *Spans) Append(sp1 *Spans) {
	sp.lengths = append(sp.lengths, sp1.lengths...)
}

func (sp *Spans) N() int {
	return len(sp.lengths)
}

// Mean, Median and Max return 0 for an empty Spans.
func (sp *Spans) Mean() float64 {
	m, _ := stats.Mean(sp.lengths)
	return m
}

func (sp *Spans) Median() float64 {
	m, _ := stats.Median(sp.lengths)
	return m
}

func (sp *Spans) Max() float64 {
	m, _ := stats.Max(sp.lengths)
	return m
}
