package genbank

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/klauspost/pgzip"
	"github.com/pkg/errors"
)

const (
	recordTag = "LOCUS"
	recordEnd = "//"
)

// Policy decides what ReadAll does after an invalid LOCUS line.
type Policy int

const (
	// StopOnMalformed keeps the records read so far and stops.
	StopOnMalformed Policy = iota
	// SkipMalformed drops the broken record and goes on with the next LOCUS line.
	SkipMalformed
)

type options struct {
	log           *log.Logger
	policy        Policy
	unorderedRefs bool
}

// Option configures a Reader.
type Option func(*options)

// WithLogger sends parse warnings to l instead of the default logger.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithPolicy sets the malformed header policy used by ReadAll and Parse.
func WithPolicy(p Policy) Option {
	return func(o *options) { o.policy = p }
}

// WithUnorderedReferences accepts REFERENCE sub-tags in any order.
// By default they are expected in the order AUTHORS, CONSRTM, TITLE,
// JOURNAL, MEDLINE, PUBMED, REMARK.
func WithUnorderedReferences() Option {
	return func(o *options) { o.unorderedRefs = true }
}

// Reader reads GenBank records one at a time. A Reader is not safe for
// concurrent use; independent Readers share nothing.
type Reader struct {
	src  *lineReader
	log  *log.Logger
	opts options
}

func NewReader(r io.Reader, opts ...Option) *Reader {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = log.Default()
	}
	return &Reader{src: newLineReader(r), log: o.log, opts: o}
}

// Read returns the next record. At the end of the input it returns io.EOF.
// An invalid LOCUS line gives a *MalformedError; the Reader stays usable
// and the next Read starts from the following LOCUS line.
func (p *Reader) Read() (*Record, error) {
	var header string
	for {
		line, ok := p.src.Next()
		if !ok {
			if err := p.src.Err(); err != nil {
				return nil, errors.Wrap(err, "reading genbank input")
			}
			return nil, io.EOF
		}
		if strings.HasPrefix(line, recordTag) {
			header = line
			break
		}
	}

	rec := &Record{}
	if err := parseLocus(header, p.src.n, rec); err != nil {
		return nil, err
	}

	for {
		line, ok := p.src.Next()
		if !ok {
			break
		}
		if strings.HasPrefix(line, recordEnd) {
			break
		}
		if strings.HasPrefix(line, recordTag) {
			// missing terminator, the line opens the next record
			p.src.Pushback(line)
			break
		}
		if s := lookupSection(line); s != nil {
			p.src.Pushback(line)
			s.parse(p, rec)
		}
	}
	if err := p.src.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading record %s", rec.LocusName)
	}
	return rec, nil
}

// ReadAll reads every record from r. Invalid LOCUS lines are logged and
// handled according to the Policy option; only read errors are returned.
func ReadAll(r io.Reader, opts ...Option) ([]*Record, error) {
	var recs []*Record
	err := Walk(r, func(rec *Record) error {
		recs = append(recs, rec)
		return nil
	}, opts...)
	return recs, err
}

// Walk calls fn for each record of r in file order, without keeping the
// records. It stops at the first error returned by fn.
func Walk(r io.Reader, fn func(*Record) error, opts ...Option) error {
	rd := NewReader(r, opts...)
	for {
		rec, err := rd.Read()
		if err == io.EOF {
			return nil
		}
		var me *MalformedError
		if errors.As(err, &me) {
			rd.log.Warn("invalid LOCUS line", "line", me.LineNo, "text", me.Line)
			if rd.opts.policy == SkipMalformed {
				continue
			}
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
}

// Parse reads all records of the named file. "-" is standard input and
// names ending in .gz are decompressed.
func Parse(path string, opts ...Option) ([]*Record, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return ReadAll(rc, opts...)
}

// Open opens a GenBank file for reading.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}
	zr, err := pgzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "opening gzip stream %s", path)
	}
	return &gzipFile{Reader: zr, f: f}, nil
}

type gzipFile struct {
	*pgzip.Reader
	f *os.File
}

func (g *gzipFile) Close() error {
	zerr := g.Reader.Close()
	if err := g.f.Close(); err != nil {
		return err
	}
	return zerr
}
