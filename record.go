package genbank

// Direction is the strand a feature is read from.
type Direction byte

const (
	Forward    Direction = 'N'
	Complement Direction = 'C'
)

func (d Direction) String() string {
	if d == Complement {
		return "complement"
	}
	return "forward"
}

// Record is one parsed GenBank entry.
// Length is the value declared on the LOCUS line and is not checked
// against len(Sequence).
type Record struct {
	LocusName string `msgpack:"locus"`
	Length    uint64 `msgpack:"length"`
	Molecule  string `msgpack:"molecule"`
	Topology  string `msgpack:"topology"`
	Division  string `msgpack:"division"`
	Date      string `msgpack:"date"`

	Accession *string `msgpack:"accession"`
	Version   *string `msgpack:"version"`
	GI        *string `msgpack:"gi"`
	Region    *Region `msgpack:"region"`

	Definition string  `msgpack:"definition"`
	Keywords   string  `msgpack:"keywords"`
	Source     string  `msgpack:"source"`
	Organism   string  `msgpack:"organism"`
	Lineage    string  `msgpack:"lineage"`
	Comment    *string `msgpack:"comment"`

	Sequence   string      `msgpack:"sequence"`
	References []Reference `msgpack:"references"`
	Features   []Feature   `msgpack:"features"`
}

type Region struct {
	Start uint64 `msgpack:"start"`
	End   uint64 `msgpack:"end"`
}

// Reference is one literature citation. A nil field means the sub-tag
// was not present.
type Reference struct {
	Number     uint    `msgpack:"number"`
	Authors    *string `msgpack:"authors"`
	Consortium *string `msgpack:"consortium"`
	Title      *string `msgpack:"title"`
	Journal    *string `msgpack:"journal"`
	Medline    *string `msgpack:"medline"`
	PubMed     *string `msgpack:"pubmed"`
	Remark     *string `msgpack:"remark"`
}

// Feature is one entry of the feature table.
// Start and End come from the first and the last Location in source
// order, not from the numeric extremes.
type Feature struct {
	Key        string      `msgpack:"key"`
	Direction  Direction   `msgpack:"direction"`
	Locations  []Location  `msgpack:"locations"`
	Start      uint64      `msgpack:"start"`
	End        uint64      `msgpack:"end"`
	Qualifiers []Qualifier `msgpack:"qualifiers"`
}

// Location is a 1-based inclusive range. Start <= End is not enforced.
type Location struct {
	Start uint64 `msgpack:"start"`
	End   uint64 `msgpack:"end"`
}

type Qualifier struct {
	Key   string `msgpack:"key"`
	Value string `msgpack:"value"`
}

// Name returns the accession, or the locus name when the record has none.
func (r *Record) Name() string {
	if r.Accession != nil && *r.Accession != "" {
		return *r.Accession
	}
	return r.LocusName
}

func (r *Record) FeaturesOfType(key string) []*Feature {
	var fs []*Feature
	for i := range r.Features {
		if r.Features[i].Key == key {
			fs = append(fs, &r.Features[i])
		}
	}
	return fs
}

// QualifierValue returns the value of the first qualifier named key.
func (f *Feature) QualifierValue(key string) (string, bool) {
	for _, q := range f.Qualifiers {
		if q.Key == key {
			return q.Value, true
		}
	}
	return "", false
}

func (f *Feature) QualifierValues(key string) []string {
	var vals []string
	for _, q := range f.Qualifiers {
		if q.Key == key {
			vals = append(vals, q.Value)
		}
	}
	return vals
}

func (f *Feature) setRange() {
	if len(f.Locations) == 0 {
		f.Start, f.End = 0, 0
		return
	}
	f.Start = f.Locations[0].Start
	f.End = f.Locations[len(f.Locations)-1].End
}

func strp(s string) *string {
	return &s
}
