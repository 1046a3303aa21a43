package lexer

import "testing"

func TestResolveKeyword(t *testing.T) {
	tok := Resolve("fn")
	if tok.Type != KFn || tok.Text != "fn" {
		t.Fatalf("got %v %q", tok.Type, tok.Text)
	}
}

func TestResolveIdentifier(t *testing.T) {
	for _, word := range []string{"foo", "fnord", "f", "Fn", "FN", "fn2"} {
		tok := Resolve(word)
		if tok.Type != Ident {
			t.Fatalf("Resolve(%q): got %v, want Ident", word, tok.Type)
		}
		if tok.Text != word {
			t.Fatalf("Resolve(%q): text %q", word, tok.Text)
		}
	}
}

func TestIsKeyword(t *testing.T) {
	if !(Token{Type: KFn}).IsKeyword() {
		t.Fatal("KFn must be a keyword")
	}
	for _, typ := range []TokenType{EOF, Ident, IntLit, HexLit, Invalid} {
		if (Token{Type: typ}).IsKeyword() {
			t.Fatalf("%v must not be a keyword", typ)
		}
	}
}

func TestTokenTypeString(t *testing.T) {
	cases := map[TokenType]string{
		EOF:     "EOF",
		Ident:   "Ident",
		IntLit:  "IntLit",
		HexLit:  "HexLit",
		Invalid: "Invalid",
		KFn:     "KFn",
	}
	for typ, want := range cases {
		if got := typ.String(); got != want {
			t.Errorf("%d.String(): got %q, want %q", typ, got, want)
		}
	}
}
