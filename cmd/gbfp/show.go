package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mingzhi/genbank"
	"github.com/mingzhi/genbank/store"
)

type cmdShow struct {
	dbPath    string
	accession string
	backend   string
	out       io.Writer
}

func (c *cmdShow) run() {
	db, err := store.Open(c.backend, c.dbPath)
	raiseError(err)
	defer db.Close()

	rec, err := db.Get(c.accession)
	raiseError(err)
	writeRecord(c.out, rec)
}

func writeRecord(w io.Writer, rec *genbank.Record) {
	label := color.New(color.Bold).SprintFunc()
	field := func(name, value string) {
		if value != "" {
			fmt.Fprintf(w, "%s%s\n", label(fmt.Sprintf("%-12s", name)), value)
		}
	}
	deref := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}

	field("LOCUS", strings.Join([]string{rec.LocusName, fmt.Sprintf("%d bp", rec.Length),
		rec.Molecule, rec.Topology, rec.Division, rec.Date}, " "))
	field("DEFINITION", rec.Definition)
	field("ACCESSION", deref(rec.Accession))
	if rec.Region != nil {
		field("REGION", fmt.Sprintf("%d..%d", rec.Region.Start, rec.Region.End))
	}
	field("VERSION", deref(rec.Version))
	field("GI", deref(rec.GI))
	field("KEYWORDS", rec.Keywords)
	field("SOURCE", rec.Source)
	field("ORGANISM", rec.Organism)
	field("LINEAGE", rec.Lineage)
	field("COMMENT", deref(rec.Comment))
	field("REFERENCES", fmt.Sprint(len(rec.References)))
	field("FEATURES", fmt.Sprint(len(rec.Features)))
	field("SEQUENCE", fmt.Sprintf("%d bases", len(rec.Sequence)))
}
