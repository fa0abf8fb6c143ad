package jsonevents

// DFA states. Order matters: it indexes stateTransition and
// bufferPolicy as rows, and must track
// original_source/src/lib.rs's enum S exactly for the first 37
// values (GO through D2).
const (
	stGO = iota // start
	stOK        // accepted
	stO_        // object: expect key or close
	stK_        // expect key after comma
	stCO        // expect colon
	stV_        // expect value
	stA_        // array: expect value or close
	stS_        // in string body
	stE0        // after backslash
	stU1        // unicode escape, hex digit 1
	stU2        // unicode escape, hex digit 2
	stU3        // unicode escape, hex digit 3
	stU4        // unicode escape, hex digit 4
	stM0        // after minus
	stZ0        // after leading zero
	stI0        // after nonzero integer body
	stR1        // after dot, need digit
	stR2        // fractional digits
	stX1        // after 'e'
	stX2        // after 'e' sign
	stX3        // exponent digits
	stT1        // "t"
	stT2        // "tr"
	stT3        // "tru"
	stF1        // "f"
	stF2        // "fa"
	stF3        // "fal"
	stF4        // "fals"
	stN1        // "n"
	stN2        // "nu"
	stN3        // "nul"
	stC1        // after "/"
	stC2        // in /* ... */ body
	stC3        // after "*" inside a C comment
	stY1        // in # ... \n body
	stD1        // awaiting "\u" prefix of a low-surrogate escape
	stD2        // awaiting the "u" of that prefix

	nrStates = 37
)

// stateAboveArray is the boundary CE's act_ce consults: any state
// numbered above stA_ is a scalar or comment state, not one of the
// seven structural "expectation" states, and must not be resumed
// into directly after a comment closes (spec.md §4.5, CE).
const stateAboveArray = stA_

// actionBit marks a stateTransition entry as an action code rather
// than a plain next state.
const actionBit = 0x80

// Action codes, dispatched by the Action Dispatcher (parser.go).
const (
	acKS = actionBit + iota // key separator colon seen
	acSP                    // comma separator
	acAB                    // array begin
	acAE                    // array end
	acOB                    // object begin
	acOE                    // object end
	acCB                    // C-comment begin
	acYB                    // YAML-comment begin
	acCE                    // comment end
	acFA                    // "false" completed
	acTR                    // "true" completed
	acNU                    // "null" completed
	acDE                    // number became float via exponent
	acDF                    // number became float via dot
	acSE                    // string end
	acMX                    // integer start: minus
	acZX                    // integer start: zero
	acIX                    // integer start: nonzero
	acUC                    // unicode escape completed
)

// stInvalid marks a stateTransition entry with no valid transition:
// the byte that reached it fails with ErrUnexpectedChar.
const stInvalid = 0xff

// __ is a column-alignment alias for stInvalid, used only while
// laying out the table below in the same shape as
// original_source/src/lib.rs's STATE_TRANS.
const __ = stInvalid

// stateTransition is T[state][class]: the core DFA, reproduced from
// original_source/src/lib.rs's STATE_TRANS verbatim. Column order is
// the character-class order of classes.go (sp, nl, white, {, }, [,
// ], :, ,, ", \, /, +, -, ., 0, 1-9, a..u, Abcdf, E, other, *, #).
var stateTransition = [nrStates][nrClasses]uint8{
	/*GO*/ {stGO, stGO, stGO, acOB, __, acAB, __, __, __, __, __, acCB, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, acYB},
	/*OK*/ {stOK, stOK, stOK, __, acOE, __, acAE, __, acSP, __, __, acCB, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, acYB},
	/*_O*/ {stO_, stO_, stO_, __, acOE, __, __, __, __, stS_, __, acCB, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, acYB},
	/*_K*/ {stK_, stK_, stK_, __, __, __, __, __, __, stS_, __, acCB, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, acYB},
	/*CO*/ {stCO, stCO, stCO, __, __, __, __, acKS, __, __, __, acCB, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, acYB},
	/*_V*/ {stV_, stV_, stV_, acOB, __, acAB, __, __, __, stS_, __, acCB, __, acMX, __, acZX, acIX, __, __, __, __, __, stF1, __, stN1, __, __, stT1, __, __, __, __, __, acYB},
	/*_A*/ {stA_, stA_, stA_, acOB, __, acAB, acAE, __, __, stS_, __, acCB, __, acMX, __, acZX, acIX, __, __, __, __, __, stF1, __, stN1, __, __, stT1, __, __, __, __, __, acYB},

	/*_S*/ {stS_, __, __, stS_, stS_, stS_, stS_, stS_, stS_, acSE, stE0, stS_, stS_, stS_, stS_, stS_, stS_, stS_, stS_, stS_, stS_, stS_, stS_, stS_, stS_, stS_, stS_, stS_, stS_, stS_, stS_, stS_, stS_, stS_},
	/*E0*/ {__, __, __, __, __, __, __, __, __, stS_, stS_, stS_, __, __, __, __, __, __, stS_, __, __, __, stS_, __, stS_, stS_, __, stS_, stU1, __, __, __, __, __},
	/*U1*/ {__, __, __, __, __, __, __, __, __, __, __, __, __, __, __, stU2, stU2, stU2, stU2, stU2, stU2, stU2, stU2, __, __, __, __, __, __, stU2, stU2, __, __, __},
	/*U2*/ {__, __, __, __, __, __, __, __, __, __, __, __, __, __, __, stU3, stU3, stU3, stU3, stU3, stU3, stU3, stU3, __, __, __, __, __, __, stU3, stU3, __, __, __},
	/*U3*/ {__, __, __, __, __, __, __, __, __, __, __, __, __, __, __, stU4, stU4, stU4, stU4, stU4, stU4, stU4, stU4, __, __, __, __, __, __, stU4, stU4, __, __, __},
	/*U4*/ {__, __, __, __, __, __, __, __, __, __, __, __, __, __, __, acUC, acUC, acUC, acUC, acUC, acUC, acUC, acUC, __, __, __, __, __, __, acUC, acUC, __, __, __},

	/*M0*/ {__, __, __, __, __, __, __, __, __, __, __, __, __, __, __, stZ0, stI0, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __},
	/*Z0*/ {stOK, stOK, stOK, __, acOE, __, acAE, __, acSP, __, __, acCB, __, __, acDF, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, acYB},
	/*I0*/ {stOK, stOK, stOK, __, acOE, __, acAE, __, acSP, __, __, acCB, __, __, acDF, stI0, stI0, __, __, __, __, acDE, __, __, __, __, __, __, __, __, acDE, __, __, acYB},
	/*R1*/ {__, __, __, __, __, __, __, __, __, __, __, __, __, __, __, stR2, stR2, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __},
	/*R2*/ {stOK, stOK, stOK, __, acOE, __, acAE, __, acSP, __, __, acCB, __, __, __, stR2, stR2, __, __, __, __, stX1, __, __, __, __, __, __, __, __, stX1, __, __, acYB},
	/*X1*/ {__, __, __, __, __, __, __, __, __, __, __, __, stX2, stX2, __, stX3, stX3, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __},
	/*X2*/ {__, __, __, __, __, __, __, __, __, __, __, __, __, __, __, stX3, stX3, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __},
	/*X3*/ {stOK, stOK, stOK, __, acOE, __, acAE, __, acSP, __, __, __, __, __, __, stX3, stX3, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __},

	/*T1*/ {__, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, stT2, __, __, __, __, __, __, __, __},
	/*T2*/ {__, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, stT3, __, __, __, __, __},
	/*T3*/ {__, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, acTR, __, __, __, __, __, __, __, __, __, __, __, __},
	/*F1*/ {__, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, stF2, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __},
	/*F2*/ {__, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, stF3, __, __, __, __, __, __, __, __, __, __},
	/*F3*/ {__, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, stF4, __, __, __, __, __, __, __},
	/*F4*/ {__, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, acFA, __, __, __, __, __, __, __, __, __, __, __, __},
	/*N1*/ {__, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, stN2, __, __, __, __, __},
	/*N2*/ {__, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, stN3, __, __, __, __, __, __, __, __, __, __},
	/*N3*/ {__, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, acNU, __, __, __, __, __, __, __, __, __, __},

	/*C1*/ {__, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, stC2, __},
	/*C2*/ {stC2, stC2, stC2, stC2, stC2, stC2, stC2, stC2, stC2, stC2, stC2, stC2, stC2, stC2, stC2, stC2, stC2, stC2, stC2, stC2, stC2, stC2, stC2, stC2, stC2, stC2, stC2, stC2, stC2, stC2, stC2, stC2, stC3, stC2},
	/*C3*/ {stC2, stC2, stC2, stC2, stC2, stC2, stC2, stC2, stC2, stC2, stC2, acCE, stC2, stC2, stC2, stC2, stC2, stC2, stC2, stC2, stC2, stC2, stC2, stC2, stC2, stC2, stC2, stC2, stC2, stC2, stC2, stC2, stC3, stC2},
	/*Y1*/ {stY1, acCE, stY1, stY1, stY1, stY1, stY1, stY1, stY1, stY1, stY1, stY1, stY1, stY1, stY1, stY1, stY1, stY1, stY1, stY1, stY1, stY1, stY1, stY1, stY1, stY1, stY1, stY1, stY1, stY1, stY1, stY1, stY1, stY1},
	/*D1*/ {__, __, __, __, __, __, __, __, __, __, stD2, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __},
	/*D2*/ {__, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, stU1, __, __, __, __, __},
}

// Buffer policies: the byte is not appended (ignore), appended as-is
// (append), or appended as the decoded form of a backslash-escape
// (escape).
const (
	policyIgnore = iota
	policyAppend
	policyEscape
)

// bufferPolicy is P[state][class], reproduced from
// original_source/src/lib.rs's BUFFER_POLICY_TABLE. Rows with no
// scalar in flight (GO, OK, _O, _K, CO, the keyword and comment
// states) are all-ignore and are written explicitly for clarity
// rather than left as Go's zero value, matching the source's layout.
var bufferPolicy = [nrStates][nrClasses]uint8{
	/*GO*/ {0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	/*OK*/ {0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	/*_O*/ {0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	/*_K*/ {0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	/*CO*/ {0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	/*_V*/ {0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	/*_A*/ {0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},

	/*_S*/ {1, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	/*E0*/ {0, 0, 0, 0, 0, 0, 0, 0, 0, 2, 2, 2, 0, 0, 0, 0, 0, 0, 2, 0, 0, 0, 2, 0, 2, 2, 0, 2, 0, 0, 0, 0, 0, 0},
	/*U1*/ {0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 0},
	/*U2*/ {0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 0},
	/*U3*/ {0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 0},
	/*U4*/ {0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 0},

	/*M0*/ {0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	/*Z0*/ {0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	/*I0*/ {0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0},
	/*R1*/ {0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	/*R2*/ {0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0},
	/*X1*/ {0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	/*X2*/ {0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	/*X3*/ {0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},

	/*T1*/ {0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	/*T2*/ {0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	/*T3*/ {0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	/*F1*/ {0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	/*F2*/ {0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	/*F3*/ {0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	/*F4*/ {0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	/*N1*/ {0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	/*N2*/ {0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	/*N3*/ {0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},

	/*C1*/ {0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	/*C2*/ {0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	/*C3*/ {0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	/*Y1*/ {0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	/*D1*/ {0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	/*D2*/ {0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
}
