package store

import (
	"bytes"
	"os"

	"github.com/bmatsuo/lmdb-go/lmdb"
	"github.com/charmbracelet/log"
	"github.com/mingzhi/genbank"
	"github.com/pkg/errors"
)

const (
	lmdbMaxDBs   = 4
	lmdbInitSize = 64 * 1024 * 1024
)

// LMDBStore is a Store in an lmdb environment directory. The map grows
// when a write does not fit.
type LMDBStore struct {
	env    *lmdb.Env
	sizeDB int64
}

// OpenLMDB opens or creates the lmdb environment in directory path.
func OpenLMDB(path string) (*LMDBStore, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, errors.Wrapf(err, "creating %s", path)
	}

	s := &LMDBStore{sizeDB: lmdbInitSize}
	env, err := newEnv(lmdbMaxDBs, s.sizeDB)
	if err != nil {
		return nil, err
	}
	if err := env.Open(path, 0, 0644); err != nil {
		env.Close()
		return nil, errors.Wrapf(err, "opening lmdb env %s", path)
	}
	s.env = env

	// a reopened environment may already be larger than the initial map
	if info, err := env.Info(); err == nil && info.MapSize > s.sizeDB {
		s.sizeDB = info.MapSize
	}

	for _, name := range []string{recordBucket, featureBucket} {
		if err := s.update(createDBI(name)); err != nil {
			env.Close()
			return nil, errors.Wrapf(err, "creating dbi %s", name)
		}
	}
	return s, nil
}

func newEnv(numDB int, sizeDB int64) (*lmdb.Env, error) {
	env, err := lmdb.NewEnv()
	if err != nil {
		return nil, errors.Wrap(err, "creating lmdb env")
	}
	if err := env.SetMaxDBs(numDB); err != nil {
		env.Close()
		return nil, err
	}
	if err := env.SetMapSize(sizeDB); err != nil {
		env.Close()
		return nil, err
	}
	return env, nil
}

func createDBI(name string) lmdb.TxnOp {
	return func(txn *lmdb.Txn) error {
		_, err := txn.CreateDBI(name)
		return err
	}
}

// update runs fn in a write transaction, doubling the map size and
// retrying while the map is full.
func (s *LMDBStore) update(fn lmdb.TxnOp) error {
	for {
		err := s.env.Update(fn)
		if !lmdb.IsMapFull(err) {
			return err
		}
		s.sizeDB *= 2
		if err := s.env.SetMapSize(s.sizeDB); err != nil {
			return err
		}
		log.Debug("increase max database size", "GB", float64(s.sizeDB)/(1024*1024*1024.0))
	}
}

func (s *LMDBStore) Put(recs ...*genbank.Record) error {
	return s.update(func(txn *lmdb.Txn) error {
		rdbi, err := txn.OpenDBI(recordBucket, 0)
		if err != nil {
			return err
		}
		fdbi, err := txn.OpenDBI(featureBucket, 0)
		if err != nil {
			return err
		}

		for _, rec := range recs {
			key := Key(rec)
			v, err := encodeRecord(rec)
			if err != nil {
				return err
			}
			if err := txn.Put(rdbi, []byte(key), v, 0); err != nil {
				return err
			}

			if err := lmdbDeletePrefix(txn, fdbi, []byte(featurePrefix(key))); err != nil {
				return err
			}
			for i := range rec.Features {
				v, err := encodeFeature(&rec.Features[i])
				if err != nil {
					return err
				}
				if err := txn.Put(fdbi, featureKey(key, i), v, 0); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func lmdbDeletePrefix(txn *lmdb.Txn, dbi lmdb.DBI, prefix []byte) error {
	cur, err := txn.OpenCursor(dbi)
	if err != nil {
		return err
	}
	defer cur.Close()

	var keys [][]byte
	k, _, err := cur.Get(prefix, nil, lmdb.SetRange)
	for ; err == nil && bytes.HasPrefix(k, prefix); k, _, err = cur.Get(nil, nil, lmdb.Next) {
		keys = append(keys, append([]byte(nil), k...))
	}
	if err != nil && !lmdb.IsNotFound(err) {
		return err
	}
	for _, k := range keys {
		if err := txn.Del(dbi, k, nil); err != nil {
			return err
		}
	}
	return nil
}

func (s *LMDBStore) Get(accession string) (*genbank.Record, error) {
	var rec *genbank.Record
	err := s.env.View(func(txn *lmdb.Txn) error {
		rdbi, err := txn.OpenDBI(recordBucket, 0)
		if err != nil {
			return err
		}
		v, err := txn.Get(rdbi, []byte(accession))
		if lmdb.IsNotFound(err) {
			return ErrNotFound
		} else if err != nil {
			return err
		}
		if rec, err = decodeRecord(v); err != nil {
			return err
		}
		rec.Features, err = lmdbFeatures(txn, accession)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *LMDBStore) Features(accession string) ([]genbank.Feature, error) {
	var features []genbank.Feature
	err := s.env.View(func(txn *lmdb.Txn) error {
		rdbi, err := txn.OpenDBI(recordBucket, 0)
		if err != nil {
			return err
		}
		if _, err := txn.Get(rdbi, []byte(accession)); lmdb.IsNotFound(err) {
			return ErrNotFound
		} else if err != nil {
			return err
		}
		features, err = lmdbFeatures(txn, accession)
		return err
	})
	return features, err
}

func lmdbFeatures(txn *lmdb.Txn, accession string) ([]genbank.Feature, error) {
	dbi, err := txn.OpenDBI(featureBucket, 0)
	if err != nil {
		return nil, err
	}
	cur, err := txn.OpenCursor(dbi)
	if err != nil {
		return nil, err
	}
	defer cur.Close()

	var features []genbank.Feature
	prefix := []byte(featurePrefix(accession))
	k, v, err := cur.Get(prefix, nil, lmdb.SetRange)
	for ; err == nil && bytes.HasPrefix(k, prefix); k, v, err = cur.Get(nil, nil, lmdb.Next) {
		f, err := decodeFeature(v)
		if err != nil {
			return nil, err
		}
		features = append(features, f)
	}
	if err != nil && !lmdb.IsNotFound(err) {
		return nil, err
	}
	return features, nil
}

func (s *LMDBStore) Accessions() ([]string, error) {
	var keys []string
	err := s.env.View(func(txn *lmdb.Txn) error {
		dbi, err := txn.OpenDBI(recordBucket, 0)
		if err != nil {
			return err
		}
		cur, err := txn.OpenCursor(dbi)
		if err != nil {
			return err
		}
		defer cur.Close()

		for {
			k, _, err := cur.Get(nil, nil, lmdb.Next)
			if lmdb.IsNotFound(err) {
				return nil
			} else if err != nil {
				return err
			}
			keys = append(keys, string(k))
		}
	})
	return keys, err
}

func (s *LMDBStore) Close() error {
	return s.env.Close()
}
