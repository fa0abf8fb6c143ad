package jsonevents

// Parser is an incremental, event-driven JSON reader. It consumes
// input one byte at a time through Feed/FeedByte and reports semantic
// events to a Sink; it never builds a value tree and never blocks.
//
// A Parser is not safe for concurrent use. Once Feed, FeedByte, or End
// returns a non-nil error the parser has failed and must not be fed
// further input; every subsequent call returns that same error.
type Parser struct {
	config Config
	sink   Sink

	state      uint8
	save_state uint8

	expecting_key bool

	utf8_multibyte_left int
	unicode_multi       uint32

	stack  containerStack
	buffer scalarBuffer

	pending_type EventKind
	has_pending  bool

	offset int
	failed bool
	err    *ParseError
}

// New creates a Parser bound to sink, ready to receive bytes at the
// start of a document.
func New(cfg Config, sink Sink) *Parser {
	return &Parser{
		config: cfg,
		sink:   sink,
		state:  stGO,
		stack:  newContainerStack(cfg.MaxNesting),
		buffer: newScalarBuffer(cfg.BufferInitialSize, cfg.MaxData),
	}
}

// Feed processes data one byte at a time, stopping at the first error.
func (p *Parser) Feed(data []byte) error {
	for _, b := range data {
		if err := p.FeedByte(b); err != nil {
			return err
		}
	}
	return nil
}

// FeedByte processes a single input byte.
func (p *Parser) FeedByte(b byte) error {
	if p.failed {
		return p.err
	}
	if err := p.feedByte(b); err != nil {
		pe, ok := err.(*ParseError)
		if !ok {
			pe = newParseError(ErrUnexpectedChar)
		}
		if pe.Offset < 0 {
			pe.Offset = p.offset
		}
		p.failed = true
		p.err = pe
		return pe
	}
	p.offset++
	return nil
}

// End signals that no further bytes will be fed. It fails with
// ErrUnexpectedChar if the document was left incomplete: an open
// container, a state outside {OK, GO}, a pending UTF-8 continuation,
// or a pending high surrogate.
func (p *Parser) End() error {
	if p.failed {
		return p.err
	}
	if p.stack.len() != 0 ||
		(p.state != stOK && p.state != stGO) ||
		p.utf8_multibyte_left != 0 ||
		p.unicode_multi != 0 {
		pe := newParseError(ErrUnexpectedChar)
		pe.Offset = p.offset
		p.failed = true
		p.err = pe
		return pe
	}
	return nil
}

// feedByte runs one step of the algorithm in spec.md §4.6: classify,
// look up the transition and buffer-policy tables for (state, class),
// apply the buffer policy, then either dispatch an action or set the
// next state directly.
func (p *Parser) feedByte(b byte) error {
	class, left, err := classify(b, p.utf8_multibyte_left)
	if err != nil {
		return err
	}
	p.utf8_multibyte_left = left

	next := stateTransition[p.state][class]
	if next == stInvalid {
		return newParseError(ErrUnexpectedChar)
	}

	switch bufferPolicy[p.state][class] {
	case policyAppend:
		if err := p.buffer.append(b); err != nil {
			return err
		}
	case policyEscape:
		if err := p.buffer.appendEscape(b); err != nil {
			return err
		}
	}

	if next&actionBit != 0 {
		return p.dispatch(next)
	}
	p.state = next
	return nil
}

func (p *Parser) setPending(kind EventKind) {
	p.pending_type = kind
	p.has_pending = true
}

func (p *Parser) clearPending() {
	p.has_pending = false
}

// flush reports the buffered scalar, if any, to the sink and clears
// the buffer. It is a no-op when no scalar is pending.
func (p *Parser) flush() error {
	if !p.has_pending {
		return nil
	}
	value := p.buffer.bytes()
	switch p.pending_type {
	case True:
		value = []byte("true")
	case False:
		value = []byte("false")
	case Null:
		value = []byte("null")
	}
	if err := p.emit(p.pending_type, value); err != nil {
		return err
	}
	p.buffer.reset()
	p.has_pending = false
	return nil
}

func (p *Parser) emit(kind EventKind, value []byte) error {
	if err := p.sink.Emit(kind, value); err != nil {
		return newCallbackError(err)
	}
	return nil
}

// dispatch runs the Action Dispatcher (spec.md §4.5) for an action
// code produced by the transition table.
func (p *Parser) dispatch(action uint8) error {
	switch action {
	case acKS:
		p.clearPending()
		p.state = stV_
		return nil
	case acSP:
		return p.actSP()
	case acAB:
		return p.actAB()
	case acAE:
		return p.actAE()
	case acOB:
		return p.actOB()
	case acOE:
		return p.actOE()
	case acCB:
		return p.actCB()
	case acYB:
		return p.actYB()
	case acCE:
		return p.actCE()
	case acFA:
		p.setPending(False)
		p.state = stOK
		return nil
	case acTR:
		p.setPending(True)
		p.state = stOK
		return nil
	case acNU:
		p.setPending(Null)
		p.state = stOK
		return nil
	case acDE:
		p.setPending(Float)
		p.state = stX1
		return nil
	case acDF:
		p.setPending(Float)
		p.state = stR1
		return nil
	case acSE:
		return p.actSE()
	case acMX:
		p.setPending(Int)
		p.state = stM0
		return nil
	case acZX:
		p.setPending(Int)
		p.state = stZ0
		return nil
	case acIX:
		p.setPending(Int)
		p.state = stI0
		return nil
	case acUC:
		return p.actUC()
	}
	return nil
}

func (p *Parser) actOB() error {
	if err := p.emit(ObjectStart, nil); err != nil {
		return err
	}
	if err := p.stack.push(modeObject); err != nil {
		return err
	}
	p.expecting_key = true
	p.clearPending()
	p.state = stO_
	return nil
}

func (p *Parser) actOE() error {
	if err := p.flush(); err != nil {
		return err
	}
	if err := p.stack.pop(modeObject); err != nil {
		return err
	}
	if err := p.emit(ObjectEnd, nil); err != nil {
		return err
	}
	p.expecting_key = false
	p.clearPending()
	p.state = stOK
	return nil
}

func (p *Parser) actAB() error {
	if err := p.emit(ArrayStart, nil); err != nil {
		return err
	}
	if err := p.stack.push(modeArray); err != nil {
		return err
	}
	p.clearPending()
	p.state = stA_
	return nil
}

func (p *Parser) actAE() error {
	if err := p.flush(); err != nil {
		return err
	}
	if err := p.stack.pop(modeArray); err != nil {
		return err
	}
	if err := p.emit(ArrayEnd, nil); err != nil {
		return err
	}
	p.clearPending()
	p.state = stOK
	return nil
}

// actSP implements the comma separator. Unlike the reference source
// (which never flushes the pending scalar here — see DESIGN.md), this
// flushes first: spec.md §4.3 lists SP among the flush-triggering
// actions, and without the flush a value like "1,2" inside an array
// would concatenate into a single malformed scalar.
func (p *Parser) actSP() error {
	if err := p.flush(); err != nil {
		return err
	}
	mode, ok := p.stack.top()
	if !ok {
		return newParseError(ErrCommaOutOfStructure)
	}
	if mode == modeObject {
		p.expecting_key = true
		p.state = stK_
	} else {
		p.state = stA_
	}
	return nil
}

func (p *Parser) actCB() error {
	if !p.config.AllowCComments {
		return newParseError(ErrCommentNotAllowed)
	}
	if err := p.flush(); err != nil {
		return err
	}
	p.save_state = p.state
	p.state = stC1
	return nil
}

func (p *Parser) actYB() error {
	if !p.config.AllowYAMLComments {
		return newParseError(ErrCommentNotAllowed)
	}
	if err := p.flush(); err != nil {
		return err
	}
	p.save_state = p.state
	p.state = stY1
	return nil
}

// actCE restores the state a comment interrupted. A comment entered
// from a scalar- or comment-only state (above stateAboveArray) cannot
// resume directly into it — there is no partial scalar left to
// continue, since actCB/actYB already flushed one if pending — so it
// resumes to OK instead.
func (p *Parser) actCE() error {
	if p.save_state > stateAboveArray {
		p.state = stOK
	} else {
		p.state = p.save_state
	}
	return nil
}

func (p *Parser) actSE() error {
	kind := String
	if p.expecting_key {
		kind = Key
	}
	if err := p.emit(kind, p.buffer.bytes()); err != nil {
		return err
	}
	p.buffer.reset()
	if p.expecting_key {
		p.state = stCO
	} else {
		p.state = stOK
	}
	p.expecting_key = false
	p.clearPending()
	return nil
}

func (p *Parser) actUC() error {
	high, err := decodeUnicodeEscape(&p.buffer, p.unicode_multi)
	if err != nil {
		return err
	}
	p.unicode_multi = high
	if p.unicode_multi != 0 {
		p.state = stD1
	} else {
		p.state = stS_
	}
	return nil
}
