package ioutil

import (
	"bufio"
	"io"
	"strings"

	"braces.dev/errtrace"
)

// LineReader reads logical (unfolded) lines from the text vCard format.
// A physical line starting with a space or a tab continues the previous line;
// the leading whitespace character is removed.
type LineReader struct {
	sc      *bufio.Scanner
	pending string
	pendNum int
	hasPend bool
	lineNum int
	start   int
	err     error
}

// NewLineReader creates a new LineReader.
func NewLineReader(r io.Reader) *LineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 16*1024*1024)
	return &LineReader{sc: sc}
}

// Next returns the next logical line. Empty physical lines are skipped.
// It returns false at the end of input or on a read error, see [LineReader.Err].
func (lr *LineReader) Next() (string, bool) {
	var sb strings.Builder
	have := false
	for {
		line, num, ok := lr.physical()
		if !ok {
			break
		}
		if len(line) > 0 && (line[0] == ' ' || line[0] == '\t') {
			if have {
				sb.WriteString(line[1:])
				continue
			}
			// continuation without a preceding line
			line = strings.TrimLeft(line, " \t")
		}
		if have {
			lr.pending, lr.pendNum, lr.hasPend = line, num, true
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		sb.WriteString(line)
		lr.start, have = num, true
	}
	return sb.String(), have
}

// LineNum returns the number of the first physical line of the last logical line.
func (lr *LineReader) LineNum() int { return lr.start }

func (lr *LineReader) physical() (string, int, bool) {
	if lr.hasPend {
		lr.hasPend = false
		return lr.pending, lr.pendNum, true
	}
	if lr.err != nil || !lr.sc.Scan() {
		if lr.err == nil {
			lr.err = lr.sc.Err()
		}
		return "", 0, false
	}
	lr.lineNum++
	return strings.TrimSuffix(lr.sc.Text(), "\r"), lr.lineNum, true
}

// Err returns the first non-EOF error encountered.
func (lr *LineReader) Err() error { return errtrace.Wrap(lr.err) }
