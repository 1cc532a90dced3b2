package main

import (
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/mingzhi/genbank"
	"github.com/mingzhi/genbank/calc"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type cmdReport struct {
	gbFile string
	ncpu   int
	out    io.Writer
}

func (c *cmdReport) run() {
	s := summarize(readRecords(c.gbFile, readerOptions()...), c.ncpu)
	writeSummary(c.out, s)
}

// summarize spreads the records over ncpu calculators and merges them.
func summarize(recChan chan *genbank.Record, ncpu int) *calc.Summary {
	if ncpu < 1 {
		ncpu = 1
	}
	results := make(chan *calc.Summary, ncpu)
	var wg sync.WaitGroup
	for i := 0; i < ncpu; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := calc.New()
			for rec := range recChan {
				s.Increment(rec)
			}
			results <- s
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	total := calc.New()
	for s := range results {
		total.Append(s)
	}
	return total
}

func writeSummary(w io.Writer, s *calc.Summary) {
	p := message.NewPrinter(language.English)
	heading := color.New(color.FgCyan, color.Bold)

	heading.Fprintln(w, "Records")
	p.Fprintf(w, "  records\t%d\n", s.Records)
	p.Fprintf(w, "  declared length\t%d\n", s.DeclaredLength)
	p.Fprintf(w, "  sequence length\t%d\n", s.SequenceLength)
	p.Fprintf(w, "  GC\t%.4f\n", s.GCFraction())

	heading.Fprintln(w, "Features")
	p.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\n", "type", "count", "mean", "median", "max")
	for _, key := range s.Types() {
		sp := s.Features[key]
		p.Fprintf(w, "  %s\t%d\t%.1f\t%.1f\t%.0f\n", key, sp.N(), sp.Mean(), sp.Median(), sp.Max())
	}
}
