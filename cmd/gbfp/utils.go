package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mingzhi/genbank"
)

// readRecords streams the records of a GenBank file.
func readRecords(filename string, opts ...genbank.Option) chan *genbank.Record {
	c := make(chan *genbank.Record, 10)
	go func() {
		defer close(c)
		f, err := genbank.Open(filename)
		raiseError(err)
		defer f.Close()

		err = genbank.Walk(f, func(rec *genbank.Record) error {
			c <- rec
			return nil
		}, opts...)
		raiseError(err)
	}()
	return c
}

func featureName(rec *genbank.Record, f *genbank.Feature, qualifier string) string {
	if v, ok := f.QualifierValue(qualifier); ok && v != "" {
		return v
	}
	return fmt.Sprintf("%s:%d..%d", rec.Name(), f.Start, f.End)
}

func raiseError(err error) {
	if err != nil {
		if *debug {
			log.Error(err)
			panic(err)
		} else {
			log.Fatal(err)
		}
	}
}
