package main

import (
	"github.com/charmbracelet/log"
	"github.com/mingzhi/genbank"
	"github.com/mingzhi/genbank/store"
)

const indexBatch = 100

type cmdIndex struct {
	gbFile  string
	dbPath  string
	backend string
}

func (c *cmdIndex) run() {
	db, err := store.Open(c.backend, c.dbPath)
	raiseError(err)
	defer db.Close()

	n, err := loadRecords(db, readRecords(c.gbFile, readerOptions()...))
	raiseError(err)
	log.Info("wrote records", "n", n, "db", c.dbPath)
}

// loadRecords stores records in batches and returns how many were stored.
func loadRecords(db store.Store, recChan chan *genbank.Record) (int, error) {
	var (
		n     int
		batch []*genbank.Record
	)
	for rec := range recChan {
		batch = append(batch, rec)
		if len(batch) == indexBatch {
			if err := db.Put(batch...); err != nil {
				return n, err
			}
			n += len(batch)
			log.Debug("stored batch", "records", n)
			batch = batch[:0]
		}
	}
	if len(batch) > 0 {
		if err := db.Put(batch...); err != nil {
			return n, err
		}
		n += len(batch)
	}
	return n, nil
}
