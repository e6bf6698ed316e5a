package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	ErrMalformedRecord   = errors.New("malformed record")
	ErrLineCountMismatch = errors.New("utterance streams differ in length")
	ErrUnknownWord       = errors.New("uttered word not in word vocabulary")
	ErrUnknownMeaning    = errors.New("visible meaning not in meaning vocabulary")
)

// DelimitedHeader marks a record file whose payloads are whitespace-separated
// tokens instead of bracketed string lists.
const DelimitedHeader = "#pursuit-corpus v1"

type Format int

const (
	FormatList Format = iota
	FormatDelimited
)

// ParseError locates a malformed record.
type ParseError struct {
	Path string
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Msg)
}

func (e *ParseError) Unwrap() error { return ErrMalformedRecord }

// Record is one "<label>:<payload>" line.
type Record struct {
	Label  string
	Tokens []string
	Line   int
}

// ReadRecords parses a record stream. The first line selects the payload
// format: DelimitedHeader for whitespace tokens, anything else for bracketed
// string lists. Blank lines are ignored.
func ReadRecords(r io.Reader, path string) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	format := FormatList
	var records []Record
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if lineNo == 1 && strings.TrimSpace(line) == DelimitedHeader {
			format = FormatDelimited
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		label, payload, ok := strings.Cut(line, ":")
		if !ok {
			return nil, &ParseError{Path: path, Line: lineNo, Msg: "missing ':' separator"}
		}

		var tokens []string
		switch format {
		case FormatDelimited:
			tokens = strings.Fields(payload)
		default:
			var err error
			tokens, err = ParseList(payload)
			if err != nil {
				return nil, &ParseError{Path: path, Line: lineNo, Msg: err.Error()}
			}
		}
		records = append(records, Record{Label: strings.TrimSpace(label), Tokens: tokens, Line: lineNo})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// ParseList parses a bracketed list of quoted strings such as
// ['you', "see", 'the\'duck'].
func ParseList(s string) ([]string, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return nil, fmt.Errorf("expected bracketed list, got %q", s)
	}
	body := s[1 : len(s)-1]

	items := []string{}
	i := 0
	expectItem := true
	for i < len(body) {
		c := body[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c == ',':
			if expectItem {
				return nil, fmt.Errorf("unexpected ',' at offset %d", i+1)
			}
			expectItem = true
			i++
		case c == '\'' || c == '"':
			if !expectItem {
				return nil, fmt.Errorf("missing ',' before offset %d", i+1)
			}
			item, n, err := readQuoted(body[i:])
			if err != nil {
				return nil, err
			}
			items = append(items, item)
			expectItem = false
			i += n
		default:
			return nil, fmt.Errorf("unexpected %q at offset %d", c, i+1)
		}
	}
	return items, nil
}

// readQuoted reads one quoted string from the start of s and returns it with
// the number of bytes consumed.
func readQuoted(s string) (string, int, error) {
	quote := s[0]
	var b strings.Builder
	for i := 1; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\\':
			if i+1 >= len(s) {
				return "", 0, fmt.Errorf("dangling escape")
			}
			i++
			switch s[i] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			default:
				b.WriteByte(s[i])
			}
		case quote:
			return b.String(), i + 1, nil
		default:
			b.WriteByte(c)
		}
	}
	return "", 0, fmt.Errorf("unterminated string")
}
