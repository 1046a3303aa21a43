package lexer

/*
 * TokenType is the lexical category of a token.
 *
 * EOF is 0 so that the zero value of Token is the end-of-input sentinel.
 * All other categories are ≥ 1000, leaving the low range free should the
 * grammar ever grow single-character punctuation tokens that want to use
 * their code point as the TokenType value.
 */
type TokenType int

// EOF is returned when the input is fully consumed.
const EOF TokenType = 0

const (
	/*
	 * Ident – a word: a letter followed by any run of letters and digits.
	 * A word that matches an entry in the keyword table is never an Ident;
	 * see Resolve().
	 */
	Ident TokenType = 1000 + iota

	/*
	 * IntLit – a decimal integer literal: a maximal run of decimal digits
	 * with no alphabetic continuation.  Leading zeros are accepted; the
	 * scanner assigns no magnitude semantics.
	 */
	IntLit

	/*
	 * HexLit – a hexadecimal integer literal: 0x or 0X followed by at
	 * least one digit from [0-9a-fA-F].  A bare "0x" prefix with no
	 * digits is Invalid, not HexLit.
	 */
	HexLit

	/*
	 * Invalid – a malformed lexeme.  Produced when a numeral or hex run
	 * is immediately continued by a letter outside its digit class
	 * ("12a", "0x1g").  Text carries the collected run including the
	 * offending character so callers can report it.
	 */
	Invalid

	/*
	 * Keywords.  Reserved words sit at the top of the TokenType range so
	 * that IsKeyword() is a single comparison.  The set is currently just
	 * the function-declaration keyword.
	 */
	KFn // "fn"
)

/*
 * keywords maps the exact spelling of every reserved word to its TokenType.
 *
 * Lookup is case-sensitive: "fn" is the keyword, "FN" and "Fn" are plain
 * identifiers.  The map is package-level static data, read-only after
 * initialization, so concurrent scanners may probe it freely.
 */
var keywords = map[string]TokenType{
	"fn": KFn,
}

// Token is a single lexical token from oso source text.
type Token struct {
	Type TokenType // Lexical category.
	Text string    // Raw source bytes that form this token.
	Pos  int       // Byte offset of the first character (0-based).
}

// IsKeyword reports whether t is a reserved word.
func (t Token) IsKeyword() bool { return t.Type >= KFn }

/*
 * Resolve classifies a completed word as a keyword or an identifier.
 *
 * It is a total function: every word resolves, either to its entry in the
 * keyword table or to Ident.  The returned token has Pos 0; the scanner
 * fills in the real offset.  Keeping this a free function makes the
 * keyword rule testable without driving the character-consumption loop.
 */
func Resolve(word string) Token {
	if typ, ok := keywords[word]; ok {
		return Token{Type: typ, Text: word}
	}
	return Token{Type: Ident, Text: word}
}

// String returns a printable name for the token type.
func (t TokenType) String() string {
	switch t {
	case EOF:
		return "EOF"
	case Ident:
		return "Ident"
	case IntLit:
		return "IntLit"
	case HexLit:
		return "HexLit"
	case Invalid:
		return "Invalid"
	case KFn:
		return "KFn"
	}
	return "Unknown"
}
