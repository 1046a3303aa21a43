/*
 * scanner.go
 *
 * The oso lexical scanner: a small finite automaton that partitions a
 * source buffer into lexemes, one token per Scan() call.
 *
 * The lexical grammar has three run classes:
 *
 *   word     letter (letter | digit)*          → keyword or Ident
 *   numeral  decdigit+                         → IntLit
 *   hex      0[xX] hexdigit+                   → HexLit
 *
 * Everything that cannot open a run (whitespace, punctuation, any other
 * separator byte) is consumed and discarded between lexemes.  Runs use
 * maximal munch: the automaton keeps consuming while the next character
 * satisfies the current run's class and resolves on the first character
 * that does not.  A numeral or hex run continued by a letter outside its
 * digit class is malformed and yields Invalid; the offending character is
 * consumed so the cursor always makes forward progress.
 *
 * Usage – manual tokenisation:
 *
 *	s := lexer.NewScanner(src)
 *	for {
 *	    tok := s.Scan()
 *	    if tok.Type == lexer.EOF { break }
 *	    // use tok.Type, tok.Text, tok.Pos
 *	}
 */
package lexer

import (
	"unicode"
	"unicode/utf8"
)

/*
 * scanState is the automaton's internal mode.  stateStart is the entry
 * state; the three run states each own one lexeme class.  Resolution is
 * not a state but a pure function (resolveRun) applied when a run sees
 * its first disqualifying character or the end of input.
 */
type scanState int

const (
	stateStart scanState = iota
	stateWord
	stateNumeral
	stateHexDigits
)

/*
 * runKind names the class of a completed run for resolveRun.  It is
 * deliberately separate from scanState so that the classification rules
 * can be exercised without driving the consumption loop.
 */
type runKind int

const (
	runWord runKind = iota
	runNumeral
	runHex
)

/*
 * Scanner tokenizes oso source text one token at a time.
 *
 * The source buffer is shared read-only; pos is the single piece of
 * mutable state and strictly advances across Scan calls (it stands still
 * only once the input is exhausted).  A Scanner holds nothing else, so
 * independent buffers can be scanned concurrently with one Scanner each;
 * a single Scanner must not be shared between goroutines without
 * external synchronization.
 */
type Scanner struct {
	src string
	pos int
}

// NewScanner returns a Scanner that reads from src.
func NewScanner(src string) *Scanner { return &Scanner{src: src} }

// Pos returns the byte offset of the next character to be read.
func (s *Scanner) Pos() int { return s.pos }

/*
 * Scan returns the next token, skipping any leading separators.
 * Returns Token{Type: EOF} when the input is exhausted; calling Scan
 * again after EOF is safe and returns EOF without moving the cursor.
 *
 * Exactly one token is produced per call even when more lexemes remain
 * buffered; the cursor keeps its position for the next call.
 */
func (s *Scanner) Scan() Token {
	state := stateStart
	start := s.pos

	for s.pos < len(s.src) {
		ch := s.src[s.pos]

		switch state {
		/*
		 * stateStart: dispatch on the first character of a potential
		 * lexeme.  The hex prefix must be tested before the generic
		 * digit case or "0x" would open a numeral run of "0" and then
		 * trip over the 'x' as an alphabetic continuation.
		 */
		case stateStart:
			switch {
			case ch == '0' && (s.peek(1) == 'x' || s.peek(1) == 'X'):
				start = s.pos
				s.pos += 2 /* consume the 0x marker */
				state = stateHexDigits
			case isDecDigit(ch):
				start = s.pos
				s.pos++
				state = stateNumeral
			case isASCIILetter(ch):
				start = s.pos
				s.pos++
				state = stateWord
			case ch < 0x80:
				s.pos++ /* separator: whitespace, punctuation, anything else */
			default:
				/* Multi-byte UTF-8: a letter opens a word, the rest separates. */
				r, size := utf8.DecodeRuneInString(s.src[s.pos:])
				if unicode.IsLetter(r) {
					start = s.pos
					state = stateWord
				}
				s.pos += size
			}

		/*
		 * stateWord: letters and digits extend the run.  Any other
		 * character terminates it without being consumed, and the word
		 * resolves against the keyword table.
		 */
		case stateWord:
			if ch < 0x80 {
				if !isASCIILetter(ch) && !isDecDigit(ch) {
					return resolveRun(runWord, s.src[start:s.pos], start)
				}
				s.pos++
			} else {
				r, size := utf8.DecodeRuneInString(s.src[s.pos:])
				if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
					return resolveRun(runWord, s.src[start:s.pos], start)
				}
				s.pos += size
			}

		/*
		 * stateNumeral: decimal digits extend the run.  A letter
		 * immediately after the digits makes the lexeme malformed
		 * ("12a" is one Invalid token, not IntLit then Ident); the
		 * letter is consumed so the caller's loop cannot stall on it.
		 * Any other terminator resolves the run as IntLit.
		 */
		case stateNumeral:
			if isDecDigit(ch) {
				s.pos++
				break
			}
			if size, ok := s.letterAt(); ok {
				s.pos += size /* consume the offending letter: forward progress */
				return Token{Type: Invalid, Text: s.src[start:s.pos], Pos: start}
			}
			return resolveRun(runNumeral, s.src[start:s.pos], start)

		/*
		 * stateHexDigits: hex digits extend the run.  A letter outside
		 * [a-fA-F] is a malformed continuation ("0x1g"); other
		 * terminators resolve the run, with resolveRun rejecting a
		 * digitless "0x" prefix.
		 */
		case stateHexDigits:
			if isHexDigit(ch) {
				s.pos++
				break
			}
			if size, ok := s.letterAt(); ok {
				s.pos += size
				return Token{Type: Invalid, Text: s.src[start:s.pos], Pos: start}
			}
			return resolveRun(runHex, s.src[start:s.pos], start)
		}
	}

	/* End of input: resolve whatever run is open, or report exhaustion. */
	switch state {
	case stateWord:
		return resolveRun(runWord, s.src[start:s.pos], start)
	case stateNumeral:
		return resolveRun(runNumeral, s.src[start:s.pos], start)
	case stateHexDigits:
		return resolveRun(runHex, s.src[start:s.pos], start)
	}
	return Token{Type: EOF, Pos: s.pos}
}

// ScanAll tokenises the entire source and returns every token (no EOF entry).
func (s *Scanner) ScanAll() []Token {
	var toks []Token
	for {
		t := s.Scan()
		if t.Type == EOF {
			break
		}
		toks = append(toks, t)
	}
	return toks
}

/*
 * resolveRun maps a completed run to its token.  It is pure: no cursor,
 * no scanner state, just collected text + run kind in and a token out,
 * so the classification rules are testable independently of the
 * consumption loop.
 *
 * The one non-obvious case is runHex with no digits after the marker:
 * "0x" alone satisfies no literal form, so it resolves to Invalid rather
 * than an empty HexLit.
 */
func resolveRun(kind runKind, text string, pos int) Token {
	switch kind {
	case runWord:
		tok := Resolve(text)
		tok.Pos = pos
		return tok
	case runNumeral:
		return Token{Type: IntLit, Text: text, Pos: pos}
	}
	if len(text) <= len("0x") {
		return Token{Type: Invalid, Text: text, Pos: pos}
	}
	return Token{Type: HexLit, Text: text, Pos: pos}
}

// ---------------------------------------------------------------------------
// Internal scanner methods
// ---------------------------------------------------------------------------

// peek returns the byte at position s.pos+offset, or 0 if out of bounds.
func (s *Scanner) peek(offset int) byte {
	if i := s.pos + offset; i < len(s.src) {
		return s.src[i]
	}
	return 0
}

/*
 * letterAt reports whether the character at the cursor is a letter, and
 * if so its encoded size.  Numeral and hex runs use it to detect a
 * disqualifying alphabetic continuation; both ASCII letters and
 * multi-byte Unicode letters disqualify, matching the characters that
 * could extend a word.
 */
func (s *Scanner) letterAt() (int, bool) {
	ch := s.src[s.pos]
	if ch < 0x80 {
		return 1, isASCIILetter(ch)
	}
	r, size := utf8.DecodeRuneInString(s.src[s.pos:])
	return size, unicode.IsLetter(r)
}

// ---------------------------------------------------------------------------
// Character-class predicates
// ---------------------------------------------------------------------------

// isASCIILetter reports whether ch is an ASCII letter.
func isASCIILetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// isDecDigit reports whether ch is a decimal digit.
func isDecDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

// isHexDigit reports whether ch is a hexadecimal digit [0-9a-fA-F].
func isHexDigit(ch byte) bool {
	return isDecDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}
