package jsonevents

// Character classes. Order matters: it indexes stateTransition and
// bufferPolicy, and must track original_source/src/lib.rs's enum C
// exactly.
const (
	clSpace = iota // ' '
	clNl           // '\n'
	clWhite        // tab, '\r'
	clLcurb        // '{'
	clRcurb        // '}'
	clLsqrb        // '['
	clRsqrb        // ']'
	clColon        // ':'
	clComma        // ','
	clQuote        // '"'
	clBacks        // '\\'
	clSlash        // '/'
	clPlus         // '+'
	clMinus        // '-'
	clDot          // '.'
	clZero         // '0'
	clDigit        // '1'-'9'
	cla
	clb
	clc
	cld
	cle
	clf
	cll
	cln
	clr
	cls
	clt
	clu
	clAbcdf // 'A','B','C','D','F'
	clE     // 'E'
	clOther
	clStar // '*'
	clHash // '#'

	nrClasses = 34
)

// clError marks a byte that classify must reject with ErrBadChar;
// it is not itself a valid class index.
const clError = 0xfe

// characterClassTable maps a byte below 0x80 to its character class,
// or clError for control bytes other than tab, LF, and CR.
var characterClassTable = [128]uint8{
	// 0x00-0x1f
	clError, clError, clError, clError, clError, clError, clError, clError,
	clError, clWhite, clNl, clError, clError, clWhite, clError, clError,
	clError, clError, clError, clError, clError, clError, clError, clError,
	clError, clError, clError, clError, clError, clError, clError, clError,
	// 0x20-0x3f
	clSpace, clOther, clQuote, clHash,
	clOther, clOther, clOther, clOther,
	clOther, clOther, clStar, clPlus,
	clComma, clMinus, clDot, clSlash,
	clZero, clDigit, clDigit, clDigit,
	clDigit, clDigit, clDigit, clDigit,
	clDigit, clDigit, clColon, clOther,
	clOther, clOther, clOther, clOther,
	// 0x40-0x5f
	clOther, clAbcdf, clAbcdf, clAbcdf,
	clAbcdf, clE, clAbcdf, clOther,
	clOther, clOther, clOther, clOther,
	clOther, clOther, clOther, clOther,
	clOther, clOther, clOther, clOther,
	clOther, clOther, clOther, clOther,
	clOther, clOther, clOther, clLsqrb,
	clBacks, clRsqrb, clOther, clOther,
	// 0x60-0x7f
	clOther, cla, clb, clc,
	cld, cle, clf, clOther,
	clOther, clOther, clOther, clOther,
	cll, clOther, cln, clOther,
	clOther, clOther, clr, cls,
	clt, clu, clOther, clOther,
	clOther, clOther, clOther, clLcurb,
	clOther, clRcurb, clOther, clOther,
}

// utf8err marks a leading or continuation byte classify must reject
// with ErrUTF8.
const utf8err = 0xff

// utf8HeaderTable maps a leading byte to the number of UTF-8
// continuation bytes that follow it (0 for ASCII), or utf8err for a
// byte that can never lead a sequence. 0xF8-0xFD are accepted by
// legacy tolerance (spec.md §4.1 step 2).
var utf8HeaderTable = buildUTF8HeaderTable()

func buildUTF8HeaderTable() [256]uint8 {
	var t [256]uint8
	for i := 0x00; i <= 0x7f; i++ {
		t[i] = 0
	}
	for i := 0x80; i <= 0xbf; i++ {
		t[i] = utf8err
	}
	for i := 0xc0; i <= 0xdf; i++ {
		t[i] = 1
	}
	for i := 0xe0; i <= 0xef; i++ {
		t[i] = 2
	}
	for i := 0xf0; i <= 0xf7; i++ {
		t[i] = 3
	}
	for i := 0xf8; i <= 0xfb; i++ {
		t[i] = 4
	}
	for i := 0xfc; i <= 0xfd; i++ {
		t[i] = 5
	}
	t[0xfe] = utf8err
	t[0xff] = utf8err
	return t
}

// classify maps an input byte to a character class, consuming a
// pending UTF-8 continuation byte count along the way. multibyteLeft
// is the caller's utf8_multibyte_left counter; classify returns the
// updated value.
func classify(b byte, multibyteLeft int) (class int, newMultibyteLeft int, err *ParseError) {
	if multibyteLeft > 0 {
		if b < 0x80 || b > 0xbf {
			return 0, multibyteLeft, newParseErrorValue(ErrUTF8, int(b))
		}
		return clOther, multibyteLeft - 1, nil
	}

	lead := utf8HeaderTable[b]
	if lead == utf8err {
		return 0, 0, newParseErrorValue(ErrUTF8, int(b))
	}
	if lead > 0 {
		return clOther, int(lead), nil
	}

	cls := characterClassTable[b]
	if cls == clError {
		return 0, 0, newParseErrorValue(ErrBadChar, int(b))
	}
	return int(cls), 0, nil
}
