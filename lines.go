package genbank

import (
	"bufio"
	"io"
	"strings"
)

// LineSource hands out physical lines with one line of look-ahead.
// Pushback stores a single line that the next call to Next returns;
// a second Pushback before Next overwrites the first.
type LineSource interface {
	Next() (line string, ok bool)
	Pushback(line string)
}

type lineReader struct {
	r       *bufio.Reader
	pending string
	held    bool
	err     error
	n       int
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReaderSize(r, 64*1024)}
}

func (l *lineReader) Next() (string, bool) {
	if l.held {
		l.held = false
		return l.pending, true
	}
	if l.err != nil {
		return "", false
	}

	line, err := l.r.ReadString('\n')
	if err != nil {
		l.err = err
		if len(line) == 0 {
			return "", false
		}
	}
	l.n++
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, true
}

func (l *lineReader) Pushback(line string) {
	l.pending = line
	l.held = true
}

// Err returns the first read error other than io.EOF.
func (l *lineReader) Err() error {
	if l.err == io.EOF {
		return nil
	}
	return l.err
}

// indentWidth counts leading blanks.
func indentWidth(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}

func rtrim(s string) string {
	return strings.TrimRight(s, " \t\r\n\v\f")
}

// column returns line[from:to] clipped to the line length.
func column(line string, from, to int) string {
	if from >= len(line) {
		return ""
	}
	if to < 0 || to > len(line) {
		to = len(line)
	}
	return line[from:to]
}

// joinColumns drops the first indent columns of line and appends the
// continuation lines that follow it.
func joinColumns(src LineSource, line string, indent int) string {
	return joinLines(src, column(rtrim(line), indent, -1), indent)
}

// joinLines appends to seed every following line indented by at least
// indent columns, one space at each seam. A blank line that wide counts
// as an empty segment. The first line that is not indented enough is
// pushed back.
func joinLines(src LineSource, seed string, indent int) string {
	var b strings.Builder
	b.WriteString(seed)
	for {
		line, ok := src.Next()
		if !ok {
			break
		}
		w := indentWidth(line)
		if w < indent {
			src.Pushback(line)
			break
		}
		b.WriteByte(' ')
		b.WriteString(rtrim(line[w:]))
	}
	return b.String()
}
