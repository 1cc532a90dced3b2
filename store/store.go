// Package store keeps parsed GenBank records in an embedded key/value
// database. Records and features are stored as msgpack blobs.
package store

import (
	"fmt"

	"github.com/mingzhi/genbank"
	"github.com/pkg/errors"
	"gopkg.in/vmihailenco/msgpack.v2"
)

const (
	recordBucket  = "record"
	featureBucket = "feature"
)

// ErrNotFound is returned for an unknown accession.
var ErrNotFound = errors.New("record not found")

// Store is a persistent record index.
type Store interface {
	// Put stores recs, replacing records with the same key.
	Put(recs ...*genbank.Record) error
	// Get returns the record stored under accession.
	Get(accession string) (*genbank.Record, error)
	// Features returns the features of accession in table order.
	Features(accession string) ([]genbank.Feature, error)
	// Accessions lists the stored keys in byte order.
	Accessions() ([]string, error)
	Close() error
}

// Open opens a store of the given kind, "bolt" or "lmdb".
func Open(kind, path string) (Store, error) {
	switch kind {
	case "bolt":
		return OpenBolt(path)
	case "lmdb":
		return OpenLMDB(path)
	}
	return nil, errors.Errorf("unknown store backend %q", kind)
}

// Key returns the key rec is stored under.
func Key(rec *genbank.Record) string {
	return rec.Name()
}

// featurePrefix is the common prefix of every feature key of accession.
// Locus names may contain '|', so the separator is a NUL byte.
func featurePrefix(accession string) string {
	return accession + "\x00"
}

func featureKey(accession string, i int) []byte {
	return []byte(fmt.Sprintf("%s%08d", featurePrefix(accession), i))
}

// encodeRecord returns the record without its feature table, which is
// stored entry by entry in the feature bucket.
func encodeRecord(rec *genbank.Record) ([]byte, error) {
	head := *rec
	head.Features = nil
	v, err := msgpack.Marshal(&head)
	return v, errors.Wrapf(err, "encoding record %s", Key(rec))
}

func decodeRecord(v []byte) (*genbank.Record, error) {
	rec := &genbank.Record{}
	if err := msgpack.Unmarshal(v, rec); err != nil {
		return nil, errors.Wrap(err, "decoding record")
	}
	return rec, nil
}

func encodeFeature(f *genbank.Feature) ([]byte, error) {
	v, err := msgpack.Marshal(f)
	return v, errors.Wrapf(err, "encoding feature %s", f.Key)
}

func decodeFeature(v []byte) (genbank.Feature, error) {
	f := genbank.Feature{}
	err := msgpack.Unmarshal(v, &f)
	return f, errors.Wrap(err, "decoding feature")
}
