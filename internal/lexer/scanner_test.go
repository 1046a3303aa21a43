package lexer

import (
	"testing"
)

// ── helpers ──────────────────────────────────────────────────────────────────

// tokTypes returns just the TokenType values from ScanAll.
func tokTypes(src string) []TokenType {
	s := NewScanner(src)
	tokens := s.ScanAll()
	types := make([]TokenType, len(tokens))
	for i, t := range tokens {
		types[i] = t.Type
	}
	return types
}

// tokTexts returns just the Text values from ScanAll.
func tokTexts(src string) []string {
	s := NewScanner(src)
	tokens := s.ScanAll()
	texts := make([]string, len(tokens))
	for i, t := range tokens {
		texts[i] = t.Text
	}
	return texts
}

// first returns the first token from src.
func first(src string) Token {
	return NewScanner(src).Scan()
}

// assertTypes fails the test when the produced token type sequence does not
// match expected.
func assertTypes(t *testing.T, src string, want ...TokenType) {
	t.Helper()
	got := tokTypes(src)
	if len(got) != len(want) {
		t.Fatalf("src=%q\n  got  %v\n  want %v", src, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("src=%q token[%d]: got %v, want %v\n  full got:  %v\n  full want: %v",
				src, i, got[i], want[i], got, want)
		}
	}
}

// assertTexts fails the test when the produced token text sequence does not
// match expected.
func assertTexts(t *testing.T, src string, want ...string) {
	t.Helper()
	got := tokTexts(src)
	if len(got) != len(want) {
		t.Fatalf("src=%q\n  got  %v\n  want %v", src, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("src=%q token[%d]: got %q, want %q", src, i, got[i], want[i])
		}
	}
}

// ── EOF / empty input ─────────────────────────────────────────────────────────

func TestEmpty(t *testing.T) {
	tok := first("")
	if tok.Type != EOF {
		t.Fatalf("got %v, want EOF", tok.Type)
	}
}

func TestWhitespaceOnly(t *testing.T) {
	s := NewScanner("   \t\n  ")
	tok := s.Scan()
	if tok.Type != EOF {
		t.Fatalf("got %v, want EOF", tok.Type)
	}
	if s.Pos() != len("   \t\n  ") {
		t.Fatalf("cursor stopped at %d, want buffer end", s.Pos())
	}
}

func TestEOFIdempotent(t *testing.T) {
	s := NewScanner("fn ")
	if tok := s.Scan(); tok.Type != KFn {
		t.Fatalf("got %v, want KFn", tok.Type)
	}
	for i := 0; i < 3; i++ {
		tok := s.Scan()
		if tok.Type != EOF {
			t.Fatalf("call %d after exhaustion: got %v, want EOF", i, tok.Type)
		}
		if s.Pos() != len("fn ") {
			t.Fatalf("call %d moved cursor to %d", i, s.Pos())
		}
	}
}

// ── Keywords and identifiers ─────────────────────────────────────────────────

func TestKeywordFn(t *testing.T) {
	tok := first("fn")
	if tok.Type != KFn || tok.Text != "fn" {
		t.Fatalf("got %v %q", tok.Type, tok.Text)
	}
}

func TestLeadingWhitespaceTransparent(t *testing.T) {
	for _, src := range []string{"fn", " fn", "\nfn", "  \t fn"} {
		s := NewScanner(src)
		tok := s.Scan()
		if tok.Type != KFn {
			t.Fatalf("src=%q: got %v, want KFn", src, tok.Type)
		}
		if s.Pos() != len(src) {
			t.Fatalf("src=%q: cursor at %d, want %d (just past fn)", src, s.Pos(), len(src))
		}
	}
}

func TestKeywordThenEOF(t *testing.T) {
	s := NewScanner("fn ")
	if tok := s.Scan(); tok.Type != KFn {
		t.Fatalf("got %v, want KFn", tok.Type)
	}
	if tok := s.Scan(); tok.Type != EOF {
		t.Fatalf("got %v, want EOF", tok.Type)
	}
}

func TestIdentifier(t *testing.T) {
	tok := first("foo")
	if tok.Type != Ident || tok.Text != "foo" {
		t.Fatalf("got %v %q", tok.Type, tok.Text)
	}
}

func TestKeywordCaseSensitive(t *testing.T) {
	// Keyword matching is exact; "FN" and "Fn" are ordinary identifiers.
	assertTypes(t, "FN Fn fN fn", Ident, Ident, Ident, KFn)
}

func TestMaximalMunchIdent(t *testing.T) {
	// "fn1" is a single identifier, not Keyword("fn") followed by a numeral.
	assertTypes(t, "fn1", Ident)
	assertTexts(t, "fn1", "fn1")
}

func TestIdentWithDigits(t *testing.T) {
	assertTexts(t, "x1 ab12cd", "x1", "ab12cd")
	assertTypes(t, "x1 ab12cd", Ident, Ident)
}

func TestUnicodeIdent(t *testing.T) {
	assertTypes(t, "café π1", Ident, Ident)
	assertTexts(t, "café π1", "café", "π1")
}

// ── Integer literals ─────────────────────────────────────────────────────────

func TestIntLit(t *testing.T) {
	tok := first("1234")
	if tok.Type != IntLit || tok.Text != "1234" {
		t.Fatalf("got %v %q", tok.Type, tok.Text)
	}
}

func TestIntLitLeadingZeros(t *testing.T) {
	// The scanner assigns no magnitude semantics; "007" is one IntLit.
	tok := first("007")
	if tok.Type != IntLit || tok.Text != "007" {
		t.Fatalf("got %v %q", tok.Type, tok.Text)
	}
}

func TestLeadingDigitNeverStartsIdent(t *testing.T) {
	// A leading digit always opens a numeral run, so "12a" is a malformed
	// numeral rather than any kind of identifier.
	assertTypes(t, "12a", Invalid)
}

func TestNumeralFollowedByLetterIsInvalid(t *testing.T) {
	s := NewScanner("12a")
	before := s.Pos()
	tok := s.Scan()
	if tok.Type != Invalid {
		t.Fatalf("got %v, want Invalid", tok.Type)
	}
	if tok.Text != "12a" {
		t.Fatalf("got %q, want the full malformed lexeme", tok.Text)
	}
	if s.Pos() <= before {
		t.Fatalf("cursor did not advance past invalid lexeme: %d -> %d", before, s.Pos())
	}
}

func TestNumeralFollowedByUnicodeLetterIsInvalid(t *testing.T) {
	assertTypes(t, "12π", Invalid)
}

func TestInvalidDoesNotStallCaller(t *testing.T) {
	// A caller looping to EOF over malformed input must terminate.
	s := NewScanner("12a 34b fn")
	var types []TokenType
	for {
		tok := s.Scan()
		if tok.Type == EOF {
			break
		}
		types = append(types, tok.Type)
		if len(types) > 16 {
			t.Fatal("scanner failed to make forward progress")
		}
	}
	want := []TokenType{Invalid, Invalid, KFn}
	if len(types) != len(want) {
		t.Fatalf("got %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Fatalf("got %v, want %v", types, want)
		}
	}
}

// ── Hex literals ─────────────────────────────────────────────────────────────

func TestHexLit(t *testing.T) {
	tok := first("0x1F")
	if tok.Type != HexLit || tok.Text != "0x1F" {
		t.Fatalf("got %v %q", tok.Type, tok.Text)
	}
}

func TestHexLitUpperMarker(t *testing.T) {
	assertTypes(t, "0X2a", HexLit)
	assertTexts(t, "0X2a", "0X2a")
}

func TestHexBadContinuation(t *testing.T) {
	tok := first("0x1g")
	if tok.Type != Invalid || tok.Text != "0x1g" {
		t.Fatalf("got %v %q", tok.Type, tok.Text)
	}
}

func TestBareHexPrefixInvalid(t *testing.T) {
	// "0x" with no digit satisfies no literal form.
	assertTypes(t, "0x", Invalid)
	assertTypes(t, "0x 1", Invalid, IntLit)
}

func TestZeroAlone(t *testing.T) {
	// A lone zero is a decimal literal; the hex marker needs the x.
	assertTypes(t, "0", IntLit)
	assertTypes(t, "0 x", IntLit, Ident)
}

func TestZeroThenLetterInvalid(t *testing.T) {
	// Only x/X opens a hex run after 0; any other letter is a bad
	// continuation of the numeral.
	assertTypes(t, "0y", Invalid)
}

// ── Separators and token sequences ───────────────────────────────────────────

func TestPunctuationSkipped(t *testing.T) {
	// oso's lexical grammar has no punctuation tokens; everything that
	// cannot open a run separates lexemes.
	assertTypes(t, "fn foo(12, 0x1F);", KFn, Ident, IntLit, HexLit)
	assertTexts(t, "fn foo(12, 0x1F);", "fn", "foo", "12", "0x1F")
}

func TestOneTokenPerCall(t *testing.T) {
	s := NewScanner("fn main 42")
	tok := s.Scan()
	if tok.Type != KFn {
		t.Fatalf("got %v, want KFn", tok.Type)
	}
	// The remaining lexemes must still be buffered for later calls.
	if tok = s.Scan(); tok.Type != Ident || tok.Text != "main" {
		t.Fatalf("got %v %q", tok.Type, tok.Text)
	}
	if tok = s.Scan(); tok.Type != IntLit || tok.Text != "42" {
		t.Fatalf("got %v %q", tok.Type, tok.Text)
	}
	if tok = s.Scan(); tok.Type != EOF {
		t.Fatalf("got %v, want EOF", tok.Type)
	}
}

func TestTokenPositions(t *testing.T) {
	s := NewScanner("  fn abc 0x1F")
	wantPos := []int{2, 5, 9}
	for i, want := range wantPos {
		tok := s.Scan()
		if tok.Pos != want {
			t.Fatalf("token[%d] pos: got %d, want %d", i, tok.Pos, want)
		}
	}
}

func TestCursorNeverRegresses(t *testing.T) {
	s := NewScanner("fn 12a foo 0x1g ; 0x2B")
	prev := s.Pos()
	for {
		tok := s.Scan()
		if s.Pos() < prev {
			t.Fatalf("cursor regressed: %d -> %d", prev, s.Pos())
		}
		if tok.Type == EOF {
			if s.Pos() != prev {
				t.Fatalf("EOF moved cursor: %d -> %d", prev, s.Pos())
			}
			break
		}
		if s.Pos() == prev {
			t.Fatalf("token %v consumed nothing at %d", tok.Type, prev)
		}
		prev = s.Pos()
	}
}

// ── resolveRun (pure classification) ─────────────────────────────────────────

func TestResolveRun(t *testing.T) {
	cases := []struct {
		kind runKind
		text string
		want TokenType
	}{
		{runWord, "fn", KFn},
		{runWord, "foo", Ident},
		{runNumeral, "42", IntLit},
		{runNumeral, "007", IntLit},
		{runHex, "0x1F", HexLit},
		{runHex, "0X0", HexLit},
		{runHex, "0x", Invalid},
		{runHex, "0X", Invalid},
	}
	for _, c := range cases {
		tok := resolveRun(c.kind, c.text, 7)
		if tok.Type != c.want {
			t.Errorf("resolveRun(%v, %q): got %v, want %v", c.kind, c.text, tok.Type, c.want)
		}
		if tok.Text != c.text {
			t.Errorf("resolveRun(%v, %q): text %q", c.kind, c.text, tok.Text)
		}
		if tok.Pos != 7 {
			t.Errorf("resolveRun(%v, %q): pos %d, want 7", c.kind, c.text, tok.Pos)
		}
	}
}
