package ingest

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/aidenliw/msl-mohawk/internal/domain"
)

// DefaultDelimiter separates fields when the caller passes 0.
const DefaultDelimiter = ';'

const (
	defaultMaxLineBytes = 1 << 20
	utf8BOM             = "\uFEFF"
)

// Parser reads one uploaded source. It is single-use: the first parse call
// consumes the stream and any later call fails with ErrSourceConsumed.
type Parser struct {
	src          Source
	delimiter    rune
	maxLineBytes int
	consumed     bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithMaxLineBytes caps the length of a single line, not counting its
// terminator. A longer line fails the parse with ErrStreamRead.
func WithMaxLineBytes(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.maxLineBytes = n
		}
	}
}

// New checks that src is declared as plain text and returns a parser that
// splits lines on delimiter (0 means DefaultDelimiter).
func New(src Source, delimiter rune, opts ...Option) (*Parser, error) {
	if ct := src.ContentType(); !isPlainText(ct) {
		return nil, fmt.Errorf("%w (got %q)", ErrUnsupportedMediaType, ct)
	}
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}

	p := &Parser{
		src:          src,
		delimiter:    delimiter,
		maxLineBytes: defaultMaxLineBytes,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Delimiter returns the field separator in use.
func (p *Parser) Delimiter() rune { return p.delimiter }

// ParseStudents reads a roster of id;first name;last name;email lines.
func (p *Parser) ParseStudents() (*Batch[domain.EligibleStudent], error) {
	return parse(p, func(line string) Result[domain.EligibleStudent] {
		return studentRecord(p.split(line))
	})
}

// ParseKeys reads product;key lines.
func (p *Parser) ParseKeys() (*Batch[domain.KeyPair], error) {
	return parse(p, func(line string) Result[domain.KeyPair] {
		return keyRecord(p.split(line))
	})
}

// ParseProducts reads one product name per line.
func (p *Parser) ParseProducts() (*Batch[domain.Product], error) {
	return parse(p, productRecord)
}

func (p *Parser) split(line string) []string {
	return strings.Split(line, string(p.delimiter))
}

// parse drives one pass over the source. The stream is closed on every exit
// path, including a panic inside build.
func parse[T any](p *Parser, build func(line string) Result[T]) (*Batch[T], error) {
	if p.consumed {
		return nil, ErrSourceConsumed
	}
	p.consumed = true

	rc, err := p.src.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: open: %w", ErrStreamRead, err)
	}
	defer rc.Close()

	// Room for the line terminator; the cap itself is checked per line below.
	limit := p.maxLineBytes + len("\r\n")
	sc := bufio.NewScanner(rc)
	sc.Buffer(make([]byte, 0, min(64*1024, limit)), limit)

	batch := newBatch[T]()
	for n := 0; sc.Scan(); n++ {
		if len(sc.Bytes()) > p.maxLineBytes {
			return nil, fmt.Errorf("%w: line %d: %w", ErrStreamRead, n, bufio.ErrTooLong)
		}
		line := sc.Text()
		if n == 0 {
			line = strings.TrimPrefix(line, utf8BOM)
		}

		if res := build(line); res.OK() {
			batch.accept(n, res.Value())
		} else {
			batch.reject(n, line, res.Err())
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: line %d: %w", ErrStreamRead, batch.Lines(), err)
	}

	return batch, nil
}
