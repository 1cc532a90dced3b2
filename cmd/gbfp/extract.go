package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/mingzhi/genbank"
)

type cmdExtract struct {
	gbFile    string
	key       string
	qualifier string
	out       io.Writer
}

func (c *cmdExtract) run() {
	w := bufio.NewWriter(c.out)
	defer w.Flush()
	for rec := range readRecords(c.gbFile, readerOptions()...) {
		raiseError(c.writeRecord(w, rec))
	}
}

func (c *cmdExtract) writeRecord(w io.Writer, rec *genbank.Record) error {
	for _, f := range rec.FeaturesOfType(c.key) {
		if err := writeFasta(w, featureName(rec, f, c.qualifier), genbank.Extract(rec.Sequence, f)); err != nil {
			return err
		}
	}
	return nil
}

func writeFasta(w io.Writer, name, seq string) error {
	_, err := fmt.Fprintf(w, ">%s\n%s\n", name, seq)
	return err
}
