package jsonevents

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// recordedEvent is a comparable projection of a Sink.Emit call,
// suitable for diffing with go-cmp.
type recordedEvent struct {
	Kind  EventKind
	Value string
}

type recordingSink struct {
	events []recordedEvent
}

func (s *recordingSink) Emit(kind EventKind, value []byte) error {
	v := ""
	if value != nil {
		v = string(value)
	}
	s.events = append(s.events, recordedEvent{Kind: kind, Value: v})
	return nil
}

// parserCase drives both a whole-input Feed and a byte-by-byte
// FeedByte run and checks both against the same expectation, per
// spec.md §8's "byte-by-byte feeding yields the same event stream"
// invariant.
type parserCase struct {
	name       string
	cfg        Config
	input      string
	wantEvents []recordedEvent
	wantErr    ErrorKind // zero if no error expected
	wantOffset int
	noEnd      bool // skip the trailing End() call (error cases already stop)
}

var parserCases = []parserCase{
	{
		name:  "empty object",
		input: "{}",
		wantEvents: []recordedEvent{
			{ObjectStart, ""},
			{ObjectEnd, ""},
		},
	},
	{
		name:  "key and value",
		input: `{"a":1}`,
		wantEvents: []recordedEvent{
			{ObjectStart, ""},
			{Key, "a"},
			{Int, "1"},
			{ObjectEnd, ""},
		},
	},
	{
		// GO only accepts whitespace, comment openers, '{', and '[' (see
		// stateTransition's GO row), so a bare top-level string is
		// invalid; wrap in an array to exercise the surrogate decode.
		// The U1..U4 rows accept hex digits in either case (including
		// the 'E' class), so the uppercase spelling of this escape pair
		// decodes the same way as the lowercase form used here.
		name:  "surrogate pair",
		input: `["\ud834\udd1e"]`,
		wantEvents: []recordedEvent{
			{ArrayStart, ""},
			{String, "\xf0\x9d\x84\x9e"},
			{ArrayEnd, ""},
		},
	},
	{
		// spec.md §8 scenario 4 names "[}]" as an unmatched close, but
		// under the transition table a '}' right after '[' (state _A)
		// has no entry at all (only ']' does, for an empty array) and
		// fails ErrUnexpectedChar before the stack is ever consulted.
		// POP_UNEXPECTED_MODE is reachable once a value has completed:
		// closing an array-mode container with '}' from state I0.
		name:       "unmatched close",
		input:      "[1}",
		wantErr:    ErrPopUnexpectedMode,
		wantOffset: 2,
	},
	{
		name:       "nesting limit",
		cfg:        Config{MaxNesting: 2},
		input:      "[[[1]]]",
		wantErr:    ErrNestingLimit,
		wantOffset: 2,
	},
	{
		name:       "C comment disabled",
		cfg:        Config{AllowCComments: false},
		input:      "/* x */ 1",
		wantErr:    ErrCommentNotAllowed,
		wantOffset: 0,
	},
	{
		name:  "YAML comment inside array",
		cfg:   Config{AllowYAMLComments: true},
		input: "[1 # hi\n, 2]",
		wantEvents: []recordedEvent{
			{ArrayStart, ""},
			{Int, "1"},
			{Int, "2"},
			{ArrayEnd, ""},
		},
	},
	{
		// Wrapped in an array for the same reason as "surrogate pair"
		// above; the offending pair starts at index 2 (the '"' at
		// index 1 opens the string, the lone 0xC3 is appended as the
		// start of a multi-byte sequence, and the following 0x20 fails
		// the continuation-byte check at index 3).
		name:       "invalid UTF-8",
		input:      "[\"\xc3\x20",
		wantErr:    ErrUTF8,
		wantOffset: 3,
	},
	{
		name:  "number forms",
		input: "[-0.5e+1]",
		wantEvents: []recordedEvent{
			{ArrayStart, ""},
			{Float, "-0.5e+1"},
			{ArrayEnd, ""},
		},
	},
}

func runParserCase(t *testing.T, tc parserCase, feedWhole bool) {
	sink := &recordingSink{}
	p := New(tc.cfg, sink)

	var err error
	if feedWhole {
		err = p.Feed([]byte(tc.input))
	} else {
		for i := 0; i < len(tc.input) && err == nil; i++ {
			err = p.FeedByte(tc.input[i])
		}
	}
	if err == nil && !tc.noEnd {
		err = p.End()
	}

	if tc.wantErr != 0 {
		pe, ok := err.(*ParseError)
		if !ok || pe == nil {
			t.Fatalf("got err = %v, want *ParseError with kind %s", err, tc.wantErr)
		}
		if pe.Kind != tc.wantErr {
			t.Fatalf("got error kind %s, want %s", pe.Kind, tc.wantErr)
		}
		if pe.Offset != tc.wantOffset {
			t.Fatalf("got error offset %d, want %d", pe.Offset, tc.wantOffset)
		}
		return
	}

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(tc.wantEvents, sink.events); diff != "" {
		t.Fatalf("event stream mismatch (-want +got):\n%s", diff)
	}
}

func TestParserScenarios(t *testing.T) {
	for _, tc := range parserCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			runParserCase(t, tc, true)
		})
	}
}

func TestParserByteAtATimeMatchesWholeFeed(t *testing.T) {
	for _, tc := range parserCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			runParserCase(t, tc, false)
		})
	}
}

func TestSinkErrorBecomesCallbackError(t *testing.T) {
	boom := &fixedErrSink{err: errBoom}
	p := New(Config{}, boom)
	err := p.Feed([]byte("{}"))
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("got err = %v, want *ParseError", err)
	}
	if pe.Kind != ErrCallback {
		t.Fatalf("got kind %s, want ErrCallback", pe.Kind)
	}
	if pe.Unwrap() != errBoom {
		t.Fatalf("got unwrapped cause %v, want errBoom", pe.Unwrap())
	}
}

func TestFailedParserRejectsFurtherInput(t *testing.T) {
	p := New(Config{}, &recordingSink{})
	if err := p.Feed([]byte("[}")); err == nil {
		t.Fatalf("expected an error feeding \"[}\"")
	}
	if err := p.FeedByte('1'); err == nil {
		t.Fatalf("expected the failed parser to keep reporting an error")
	}
}

type errSentinel struct{ s string }

func (e *errSentinel) Error() string { return e.s }

var errBoom = &errSentinel{"boom"}

type fixedErrSink struct{ err error }

func (f *fixedErrSink) Emit(kind EventKind, value []byte) error { return f.err }
