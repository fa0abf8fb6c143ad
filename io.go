package jsonevents

import (
	"bufio"
	"io"
)

// Consume reads r to completion, feeding every byte to the parser,
// and then calls End. It is a thin convenience wrapper: I/O sourcing
// is out of scope for the parser itself (spec.md §1), so this only
// chunks reads through a buffer and forwards them to Feed.
func (p *Parser) Consume(r io.Reader) error {
	br := bufio.NewReader(r)
	buf := make([]byte, 4096)
	for {
		n, err := br.Read(buf)
		if n > 0 {
			if ferr := p.Feed(buf[:n]); ferr != nil {
				return ferr
			}
		}
		if err == io.EOF {
			return p.End()
		}
		if err != nil {
			return err
		}
	}
}

// ConsumeString is a convenience for the common case of parsing a
// string in one call.
func ConsumeString(cfg Config, sink Sink, s string) error {
	p := New(cfg, sink)
	if err := p.Feed([]byte(s)); err != nil {
		return err
	}
	return p.End()
}
