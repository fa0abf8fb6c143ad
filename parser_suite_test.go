package jsonevents

import (
	"strings"
	"testing"

	. "gopkg.in/check.v1"
)

func Test(t *testing.T) { TestingT(t) }

type S struct{}

var _ = Suite(&S{})

type collectingSink struct {
	events []recordedEvent
}

func (s *collectingSink) Emit(kind EventKind, value []byte) error {
	v := ""
	if value != nil {
		v = string(value)
	}
	s.events = append(s.events, recordedEvent{Kind: kind, Value: v})
	return nil
}

func (s *S) TestConsumeStringNestedContainers(c *C) {
	sink := &collectingSink{}
	err := ConsumeString(Config{}, sink, `{"a":[1,2,3],"b":null}`)
	c.Assert(err, IsNil)
	c.Assert(sink.events, DeepEquals, []recordedEvent{
		{ObjectStart, ""},
		{Key, "a"},
		{ArrayStart, ""},
		{Int, "1"},
		{Int, "2"},
		{Int, "3"},
		{ArrayEnd, ""},
		{Key, "b"},
		{Null, "null"},
		{ObjectEnd, ""},
	})
}

func (s *S) TestConsumeEscapedString(c *C) {
	sink := &collectingSink{}
	err := ConsumeString(Config{}, sink, `["a\tb\"c"]`)
	c.Assert(err, IsNil)
	c.Assert(sink.events, DeepEquals, []recordedEvent{
		{ArrayStart, ""},
		{String, "a\tb\"c"},
		{ArrayEnd, ""},
	})
}

func (s *S) TestConsumeFromReader(c *C) {
	sink := &collectingSink{}
	p := New(Config{}, sink)
	err := p.Consume(strings.NewReader(`[true, false]`))
	c.Assert(err, IsNil)
	c.Assert(sink.events, DeepEquals, []recordedEvent{
		{ArrayStart, ""},
		{True, "true"},
		{False, "false"},
		{ArrayEnd, ""},
	})
}

func (s *S) TestConsumeRejectsTrailingGarbage(c *C) {
	sink := &collectingSink{}
	err := ConsumeString(Config{}, sink, `{}x`)
	c.Assert(err, NotNil)
	pe, ok := err.(*ParseError)
	c.Assert(ok, Equals, true, Commentf("got %T, want *ParseError", err))
	c.Assert(pe.Kind, Equals, ErrUnexpectedChar)
}

func (s *S) TestConsumeRejectsUnterminatedDocument(c *C) {
	sink := &collectingSink{}
	p := New(Config{}, sink)
	err := p.Feed([]byte(`{"a":1`))
	c.Assert(err, IsNil)
	err = p.End()
	c.Assert(err, NotNil)
	pe, ok := err.(*ParseError)
	c.Assert(ok, Equals, true)
	c.Assert(pe.Kind, Equals, ErrUnexpectedChar)
}

func (s *S) TestConsumeCCommentSkipped(c *C) {
	sink := &collectingSink{}
	err := ConsumeString(Config{AllowCComments: true}, sink, "[1 /* skip */, 2]")
	c.Assert(err, IsNil)
	c.Assert(sink.events, DeepEquals, []recordedEvent{
		{ArrayStart, ""},
		{Int, "1"},
		{Int, "2"},
		{ArrayEnd, ""},
	})
}
