package genbank

import (
	"regexp"
	"strconv"
	"strings"
)

// Free-text values start at column 13.
const textIndent = 12

var (
	tagLineRegexp   = regexp.MustCompile(`(?i)^ *([a-z]+) +(.+)`)
	accessionRegexp = regexp.MustCompile(`(?i)^ACCESSION +([a-z0-9_]+) ?`)
	regionRegexp    = regexp.MustCompile(`(?i) +REGION: ?([0-9]+)\.\.([0-9]+)`)
	versionRegexp   = regexp.MustCompile(`(?i)^VERSION +([a-z0-9_.]+) ?`)
	giRegexp        = regexp.MustCompile(`(?i) +GI: ?([0-9]+)`)
)

type section struct {
	tag   string
	parse func(p *Reader, rec *Record)
}

// sections is matched in order against the start of each line.
var sections = []section{
	{"DEFINITION", (*Reader).parseDefinition},
	{"ACCESSION", (*Reader).parseAccession},
	{"VERSION", (*Reader).parseVersion},
	{"KEYWORDS", (*Reader).parseKeywords},
	{"SOURCE", (*Reader).parseSource},
	{"REFERENCE", (*Reader).parseReference},
	{"COMMENT", (*Reader).parseComment},
	{"FEATURES", (*Reader).parseFeatures},
	{"ORIGIN", (*Reader).parseOrigin},
}

func lookupSection(line string) *section {
	for i := range sections {
		if strings.HasPrefix(line, sections[i].tag) {
			return &sections[i]
		}
	}
	return nil
}

// tagValue returns the text after the leading tag of a line.
func tagValue(line string) string {
	m := tagLineRegexp.FindStringSubmatch(rtrim(line))
	if m == nil {
		return ""
	}
	return m[2]
}

func (p *Reader) parseDefinition(rec *Record) {
	line, _ := p.src.Next()
	rec.Definition = joinLines(p.src, tagValue(line), textIndent)
}

func (p *Reader) parseKeywords(rec *Record) {
	line, _ := p.src.Next()
	rec.Keywords = joinLines(p.src, tagValue(line), textIndent)
}

func (p *Reader) parseAccession(rec *Record) {
	line, _ := p.src.Next()
	line = rtrim(line)

	loc := accessionRegexp.FindStringSubmatchIndex(line)
	if loc == nil {
		return
	}
	rec.Accession = strp(line[loc[2]:loc[3]])

	if m := regionRegexp.FindStringSubmatch(line[loc[3]:]); m != nil {
		start, _ := strconv.ParseUint(m[1], 10, 64)
		end, _ := strconv.ParseUint(m[2], 10, 64)
		rec.Region = &Region{Start: start, End: end}
	}
}

func (p *Reader) parseVersion(rec *Record) {
	line, _ := p.src.Next()
	line = rtrim(line)

	loc := versionRegexp.FindStringSubmatchIndex(line)
	if loc == nil {
		return
	}
	rec.Version = strp(line[loc[2]:loc[3]])

	if m := giRegexp.FindStringSubmatch(line[loc[3]:]); m != nil {
		rec.GI = strp(m[1])
	}
}

// parseSource reads SOURCE, the ORGANISM line under it and the lineage
// lines that follow the organism.
func (p *Reader) parseSource(rec *Record) {
	line, _ := p.src.Next()
	rec.Source = joinLines(p.src, tagValue(line), textIndent)

	line, ok := p.src.Next()
	if !ok {
		return
	}
	if !isSubTag(line, "ORGANISM") {
		p.src.Pushback(line)
		return
	}
	rec.Organism = tagValue(line)

	line, ok = p.src.Next()
	if !ok {
		return
	}
	if indentWidth(line) < textIndent {
		p.src.Pushback(line)
		return
	}
	rec.Lineage = joinColumns(p.src, line, textIndent)
}

func (p *Reader) parseComment(rec *Record) {
	line, _ := p.src.Next()
	rec.Comment = strp(joinColumns(p.src, line, textIndent))
}

// referenceTags lists the REFERENCE sub-tags in the order they appear
// in GenBank files.
var referenceTags = []struct {
	tag   string
	field func(*Reference) **string
}{
	{"AUTHORS", func(r *Reference) **string { return &r.Authors }},
	{"CONSRTM", func(r *Reference) **string { return &r.Consortium }},
	{"TITLE", func(r *Reference) **string { return &r.Title }},
	{"JOURNAL", func(r *Reference) **string { return &r.Journal }},
	{"MEDLINE", func(r *Reference) **string { return &r.Medline }},
	{"PUBMED", func(r *Reference) **string { return &r.PubMed }},
	{"REMARK", func(r *Reference) **string { return &r.Remark }},
}

// isSubTag reports whether line opens the indented sub-tag tag.
func isSubTag(line, tag string) bool {
	w := indentWidth(line)
	if w == 0 || w >= textIndent || !strings.HasPrefix(line[w:], tag) {
		return false
	}
	rest := line[w+len(tag):]
	return rest == "" || rest[0] == ' '
}

func (p *Reader) parseReference(rec *Record) {
	line, _ := p.src.Next()

	ref := Reference{}
	v := tagValue(line)
	digits := strings.IndexFunc(v, func(r rune) bool { return r < '0' || r > '9' })
	if digits < 0 {
		digits = len(v)
	}
	if n, err := strconv.ParseUint(v[:digits], 10, 32); err == nil {
		ref.Number = uint(n)
	}

	if p.opts.unorderedRefs {
		p.readReferenceAnyOrder(&ref)
	} else {
		p.readReferenceInOrder(&ref)
	}
	rec.References = append(rec.References, ref)
}

// readReferenceInOrder tries each sub-tag once, in file order. A sub-tag
// that shows up out of order is left for the record loop, which drops it.
func (p *Reader) readReferenceInOrder(ref *Reference) {
	for _, rt := range referenceTags {
		line, ok := p.src.Next()
		if !ok {
			return
		}
		if !isSubTag(line, rt.tag) {
			p.src.Pushback(line)
			continue
		}
		*rt.field(ref) = strp(joinColumns(p.src, line, textIndent))
	}
}

func (p *Reader) readReferenceAnyOrder(ref *Reference) {
	for {
		line, ok := p.src.Next()
		if !ok {
			return
		}
		matched := false
		for _, rt := range referenceTags {
			if isSubTag(line, rt.tag) {
				*rt.field(ref) = strp(joinColumns(p.src, line, textIndent))
				matched = true
				break
			}
		}
		if !matched {
			p.src.Pushback(line)
			return
		}
	}
}
