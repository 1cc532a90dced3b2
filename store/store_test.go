package store

import (
	"path/filepath"
	"testing"

	"github.com/mingzhi/genbank"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func str(s string) *string { return &s }

func testRecords() []*genbank.Record {
	return []*genbank.Record{
		{
			LocusName:  "SCU49845",
			Length:     20,
			Molecule:   "DNA",
			Topology:   "linear",
			Division:   "PLN",
			Date:       "21-JUN-1999",
			Accession:  str("U49845"),
			Version:    str("U49845.1"),
			GI:         str("1293613"),
			Definition: "Saccharomyces cerevisiae test record.",
			Organism:   "Saccharomyces cerevisiae",
			Sequence:   "gatcctccatatacaacggt",
			References: []genbank.Reference{{Number: 1, Authors: str("Torpey,L.E."), PubMed: str("7871890")}},
			Features: []genbank.Feature{
				{Key: "source", Direction: genbank.Forward, Locations: []genbank.Location{{Start: 1, End: 20}}, Start: 1, End: 20,
					Qualifiers: []genbank.Qualifier{{Key: "organism", Value: "Saccharomyces cerevisiae"}}},
				{Key: "CDS", Direction: genbank.Complement, Locations: []genbank.Location{{Start: 1, End: 5}, {Start: 9, End: 12}}, Start: 1, End: 12,
					Qualifiers: []genbank.Qualifier{{Key: "locus_tag", Value: "YCL001"}, {Key: "pseudo"}}},
			},
		},
		{
			LocusName: "NOACC",
			Length:    4,
			Sequence:  "acgt",
			Region:    &genbank.Region{Start: 5, End: 8},
		},
	}
}

func testStore(t *testing.T, s Store) {
	t.Helper()
	defer s.Close()

	recs := testRecords()
	require.NoError(t, s.Put(recs...))

	keys, err := s.Accessions()
	require.NoError(t, err)
	assert.Equal(t, []string{"NOACC", "U49845"}, keys)

	got, err := s.Get("U49845")
	require.NoError(t, err)
	assert.Equal(t, recs[0], got)

	features, err := s.Features("U49845")
	require.NoError(t, err)
	assert.Equal(t, recs[0].Features, features)

	got, err = s.Get("NOACC")
	require.NoError(t, err)
	assert.Equal(t, "acgt", got.Sequence)
	require.NotNil(t, got.Region)
	assert.Equal(t, uint64(8), got.Region.End)
	assert.Empty(t, got.Features)

	_, err = s.Get("missing")
	assert.True(t, errors.Is(err, ErrNotFound))
	_, err = s.Features("missing")
	assert.True(t, errors.Is(err, ErrNotFound))

	// replacing a record drops its old features
	short := *recs[0]
	short.Features = short.Features[:1]
	require.NoError(t, s.Put(&short))
	features, err = s.Features("U49845")
	require.NoError(t, err)
	assert.Len(t, features, 1)
}

func TestBoltStore(t *testing.T) {
	s, err := Open("bolt", filepath.Join(t.TempDir(), "records.db"))
	require.NoError(t, err)
	testStore(t, s)
}

func TestLMDBStore(t *testing.T) {
	s, err := Open("lmdb", filepath.Join(t.TempDir(), "records"))
	require.NoError(t, err)
	testStore(t, s)
}

func TestBoltReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.db")
	s, err := OpenBolt(path)
	require.NoError(t, err)
	require.NoError(t, s.Put(testRecords()...))
	require.NoError(t, s.Close())

	s, err = OpenBolt(path)
	require.NoError(t, err)
	defer s.Close()
	rec, err := s.Get("U49845")
	require.NoError(t, err)
	assert.Len(t, rec.Features, 2)
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open("leveldb", t.TempDir())
	assert.Error(t, err)
}

func TestFeatureKeysDoNotOverlap(t *testing.T) {
	open := map[string]func(string) (Store, error){
		"bolt": func(dir string) (Store, error) { return OpenBolt(filepath.Join(dir, "records.db")) },
		"lmdb": func(dir string) (Store, error) { return OpenLMDB(filepath.Join(dir, "records")) },
	}
	for name, fn := range open {
		t.Run(name, func(t *testing.T) {
			s, err := fn(t.TempDir())
			require.NoError(t, err)
			defer s.Close()

			outer := &genbank.Record{LocusName: "A|B", Features: []genbank.Feature{{Key: "gene"}, {Key: "CDS"}}}
			inner := &genbank.Record{LocusName: "A", Features: []genbank.Feature{{Key: "rRNA"}}}
			require.NoError(t, s.Put(outer))
			require.NoError(t, s.Put(inner))

			features, err := s.Features("A")
			require.NoError(t, err)
			require.Len(t, features, 1)
			assert.Equal(t, "rRNA", features[0].Key)

			features, err = s.Features("A|B")
			require.NoError(t, err)
			assert.Len(t, features, 2)
		})
	}
}
