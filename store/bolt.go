package store

import (
	"bytes"

	"github.com/boltdb/bolt"
	"github.com/mingzhi/genbank"
	"github.com/pkg/errors"
)

// BoltStore is a Store in a single bolt file.
type BoltStore struct {
	db *bolt.DB
}

// OpenBolt opens or creates the bolt file at path.
func OpenBolt(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "opening bolt db %s", path)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{recordBucket, featureBucket} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, errors.Wrapf(err, "creating buckets in %s", path)
	}
	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Put(recs ...*genbank.Record) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		rb := tx.Bucket([]byte(recordBucket))
		fb := tx.Bucket([]byte(featureBucket))
		for _, rec := range recs {
			key := Key(rec)
			v, err := encodeRecord(rec)
			if err != nil {
				return err
			}
			if err := rb.Put([]byte(key), v); err != nil {
				return errors.Wrapf(err, "storing record %s", key)
			}

			if err := deletePrefix(fb, []byte(featurePrefix(key))); err != nil {
				return err
			}
			for i := range rec.Features {
				v, err := encodeFeature(&rec.Features[i])
				if err != nil {
					return err
				}
				if err := fb.Put(featureKey(key, i), v); err != nil {
					return errors.Wrapf(err, "storing features of %s", key)
				}
			}
		}
		return nil
	})
}

func deletePrefix(b *bolt.Bucket, prefix []byte) error {
	var keys [][]byte
	c := b.Cursor()
	for k, _ := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = c.Next() {
		keys = append(keys, append([]byte(nil), k...))
	}
	for _, k := range keys {
		if err := b.Delete(k); err != nil {
			return err
		}
	}
	return nil
}

func (s *BoltStore) Get(accession string) (*genbank.Record, error) {
	var rec *genbank.Record
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(recordBucket)).Get([]byte(accession))
		if v == nil {
			return ErrNotFound
		}
		var err error
		if rec, err = decodeRecord(v); err != nil {
			return err
		}
		rec.Features, err = boltFeatures(tx, accession)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *BoltStore) Features(accession string) ([]genbank.Feature, error) {
	var features []genbank.Feature
	err := s.db.View(func(tx *bolt.Tx) error {
		if tx.Bucket([]byte(recordBucket)).Get([]byte(accession)) == nil {
			return ErrNotFound
		}
		var err error
		features, err = boltFeatures(tx, accession)
		return err
	})
	return features, err
}

func boltFeatures(tx *bolt.Tx, accession string) ([]genbank.Feature, error) {
	var features []genbank.Feature
	prefix := []byte(featurePrefix(accession))
	c := tx.Bucket([]byte(featureBucket)).Cursor()
	for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
		f, err := decodeFeature(v)
		if err != nil {
			return nil, err
		}
		features = append(features, f)
	}
	return features, nil
}

func (s *BoltStore) Accessions() ([]string, error) {
	var keys []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(recordBucket)).ForEach(func(k, _ []byte) error {
			keys = append(keys, string(k))
			return nil
		})
	})
	return keys, err
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
