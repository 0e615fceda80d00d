package engine

import (
	"strconv"
	"strings"
)

// InitMode distinguishes the two ways a Gamma session can be framed:
// batch (acknowledged with "OK <line>") or interactive (silent on
// success). Both are defined by §6.2; what happens to the session
// afterward (the batch command loop of §6.3, or an interactive
// terminal UI) is an external collaborator's concern, not this
// package's.
type InitMode int

const (
	// ModeBatch corresponds to a "B ..." init line.
	ModeBatch InitMode = iota
	// ModeInteractive corresponds to an "I ..." init line.
	ModeInteractive
)

// LineOutcome classifies a single input line while scanning for the
// initialization command, mirroring the three-way split in
// original_source/input.c's detect_mode: ignored (blank/comment),
// malformed (emit ERROR), or a successfully parsed init line.
type LineOutcome int

const (
	LineIgnored LineOutcome = iota
	LineMalformed
	LineOK
)

// isInitWhitespace matches the exact separator set named in §6.2: space,
// tab, vertical tab, form feed, carriage return. Go's broader
// unicode.IsSpace (which also matches U+0085, U+00A0, ...) is
// deliberately not used here, so a line using some other Unicode
// space character is treated as malformed rather than silently
// accepted.
func isInitWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\v', '\f', '\r':
		return true
	}
	return false
}

func isBlankInitLine(line string) bool {
	return strings.TrimFunc(line, isInitWhitespace) == ""
}

// ParseInitLine classifies one line of input per §6.2. A line that is
// empty (after trimming the whitespace set above) or begins with '#'
// is LineIgnored. Any other line must tokenize into exactly 5 fields:
// "B" or "I" followed by four decimal integers in [1, 2^32-1]; a
// leading non-digit, an out-of-range value, a zero value, a wrong
// token count, or a mode letter other than B/I makes the line
// LineMalformed.
func ParseInitLine(line string) (outcome LineOutcome, mode InitMode, width, height, players, area int) {
	if isBlankInitLine(line) {
		return LineIgnored, 0, 0, 0, 0, 0
	}
	trimmed := strings.TrimLeftFunc(line, isInitWhitespace)
	if strings.HasPrefix(trimmed, "#") {
		return LineIgnored, 0, 0, 0, 0, 0
	}

	fields := strings.FieldsFunc(line, isInitWhitespace)
	if len(fields) != 5 {
		return LineMalformed, 0, 0, 0, 0, 0
	}

	switch fields[0] {
	case "B":
		mode = ModeBatch
	case "I":
		mode = ModeInteractive
	default:
		return LineMalformed, 0, 0, 0, 0, 0
	}

	values := make([]int, 4)
	for i, f := range fields[1:] {
		v, ok := parseBoundedUint32(f)
		if !ok {
			return LineMalformed, 0, 0, 0, 0, 0
		}
		values[i] = v
	}

	return LineOK, mode, values[0], values[1], values[2], values[3]
}

const maxUint32 = 1<<32 - 1

// parseBoundedUint32 accepts a token iff it is one or more ASCII
// digits with no sign, whose value is in [1, 2^32-1]. Anything else —
// a leading '+'/'-', a leading non-digit, an empty string, or a value
// that is zero or overflows uint32 — is rejected, matching
// check_string/strtoul's UINT32_MAX guard in the reference
// implementation.
func parseBoundedUint32(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil || v == 0 || v > maxUint32 {
		return 0, false
	}
	return int(v), true
}
