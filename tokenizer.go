package curve3

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// DefaultMaxLineLength is the longest line, in bytes, that the parser
// accepts unless configured otherwise with [WithMaxLineLength].
const DefaultMaxLineLength = 1 << 20

// scannedLine is one non-blank input line.
type scannedLine struct {
	fields []string
	// number is the 1-based physical line number.
	number int
	// tooLong is set when the line exceeded the length limit. Its content
	// has been discarded and fields is nil.
	tooLong bool
}

// lineScanner splits its input into lines of whitespace-separated fields
// while keeping track of the physical line number. Blank lines are skipped
// but still counted.
type lineScanner struct {
	r    *bufio.Reader
	buf  []byte
	max  int
	line int
	err  error
}

func newLineScanner(r io.Reader, maxLen int) *lineScanner {
	return &lineScanner{r: bufio.NewReader(r), max: maxLen}
}

// next returns the next non-blank line. It returns ok == false at the end
// of the input or on a read error; ls.err distinguishes the two.
func (ls *lineScanner) next() (sl scannedLine, ok bool) {
	for ls.err == nil {
		buf, tooLong, err := ls.readLine()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				ls.err = err
			}
			return scannedLine{number: ls.line}, false
		}
		ls.line++
		if tooLong {
			return scannedLine{number: ls.line, tooLong: true}, true
		}
		if fields := strings.Fields(string(buf)); len(fields) != 0 {
			return scannedLine{fields: fields, number: ls.line}, true
		}
	}
	return scannedLine{number: ls.line}, false
}

// readLine reads a whole line without its line ending. Lines longer than
// ls.max are consumed but not buffered.
func (ls *lineScanner) readLine() (buf []byte, tooLong bool, err error) {
	ls.buf = ls.buf[:0]
	for {
		chunk, isPrefix, err := ls.r.ReadLine()
		if err != nil {
			return nil, false, err
		}
		if !tooLong {
			if len(ls.buf)+len(chunk) > ls.max {
				tooLong = true
				ls.buf = ls.buf[:0]
			} else {
				ls.buf = append(ls.buf, chunk...)
			}
		}
		if !isPrefix {
			return ls.buf, tooLong, nil
		}
	}
}

// fieldReader consumes the fields of a single record in order.
type fieldReader struct {
	fields []string
}

// take returns the next field. It fails with ErrMissingField, naming what
// was expected, once the record is exhausted.
func (fr *fieldReader) take(what string) (string, error) {
	if len(fr.fields) == 0 {
		return "", fieldError(ErrMissingField, what, "")
	}
	tok := fr.fields[0]
	fr.fields = fr.fields[1:]
	return tok, nil
}

// done fails with ErrTrailingData if fields remain.
func (fr *fieldReader) done() error {
	if len(fr.fields) != 0 {
		return fieldError(ErrTrailingData, "after last field", strings.Join(fr.fields, " "))
	}
	return nil
}
