package console

import (
	"bufio"
	"io"
	"strings"
)

// LineReader reads operator lines from any reader, typically os.Stdin.
// It is not safe for concurrent use.
type LineReader struct {
	reader *bufio.Reader
}

// NewLineReader wraps r for line-based reading.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{reader: bufio.NewReader(r)}
}

// ReadLine reads until newline and returns the trimmed line. A final line
// without newline is returned before io.EOF.
func (r *LineReader) ReadLine() (string, error) {
	line, err := r.reader.ReadString('\n')
	if err == io.EOF && line != "" {
		return strings.TrimSpace(line), nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
