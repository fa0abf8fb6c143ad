package jsonevents

// escapeTable maps the byte following a backslash to its decoded
// form, per the JSON standard (RFC 8259 §7). spec.md §9 flags the
// reference source's 0x07/0x0C/0x10/0x13 mapping for \b, \n, \r as a
// bug; this table uses the standard values instead.
var escapeTable = [256]byte{
	'b':  0x08,
	'f':  0x0C,
	'n':  0x0A,
	'r':  0x0D,
	't':  0x09,
	'"':  0x22,
	'/':  0x2F,
	'\\': 0x5C,
}

// scalarBuffer accumulates the bytes of the current scalar token
// (string, key, or number) under the per-transition buffer policy.
type scalarBuffer struct {
	data    []byte
	maxSize int
}

func newScalarBuffer(initialSize, maxSize int) scalarBuffer {
	if initialSize <= 0 {
		initialSize = defaultBufferInitialSize
	}
	return scalarBuffer{data: make([]byte, 0, initialSize), maxSize: maxSize}
}

func (b *scalarBuffer) checkRoom() error {
	if b.maxSize > 0 && len(b.data) >= b.maxSize {
		return newParseError(ErrDataLimit)
	}
	return nil
}

// append adds c verbatim.
func (b *scalarBuffer) append(c byte) error {
	if err := b.checkRoom(); err != nil {
		return err
	}
	b.data = append(b.data, c)
	return nil
}

// appendEscape adds the decoded form of next, the character
// immediately following a backslash. An unrecognized escape
// character decodes to 0x00, matching the reference source (this is
// unreachable in practice: the transition table only routes
// recognized escape characters into the escape policy).
func (b *scalarBuffer) appendEscape(next byte) error {
	return b.append(escapeTable[next])
}

func (b *scalarBuffer) reset() {
	b.data = b.data[:0]
}

func (b *scalarBuffer) len() int {
	return len(b.data)
}

// bytes returns the buffer's current contents. The returned slice is
// only valid until the next append/reset call.
func (b *scalarBuffer) bytes() []byte {
	return b.data
}

// truncateLast4 drops the trailing 4 bytes (a consumed \uXXXX hex
// run) from the buffer.
func (b *scalarBuffer) truncateLast4() {
	b.data = b.data[:len(b.data)-4]
}

// last4 returns the trailing 4 bytes without modifying the buffer.
func (b *scalarBuffer) last4() [4]byte {
	n := len(b.data)
	var out [4]byte
	copy(out[:], b.data[n-4:n])
	return out
}

// appendRune4 appends the raw UTF-8 encoding of a surrogate-pair
// code point (always 4 bytes).
func (b *scalarBuffer) appendRune4(bytes [4]byte) {
	b.data = append(b.data, bytes[:]...)
}

// appendRuneN appends a 1-, 2- or 3-byte UTF-8 encoding.
func (b *scalarBuffer) appendRuneN(bytes []byte) {
	b.data = append(b.data, bytes...)
}
