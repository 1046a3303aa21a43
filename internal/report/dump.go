package report

import "github.com/jalextowle/oso/internal/lexer"

// TokenRecord is one token in a report, with its type rendered as a name
// so the output is stable and readable outside this process.
type TokenRecord struct {
	Offset int    `json:"offset"`
	Type   string `json:"type"`
	Text   string `json:"text"`
}

// FileTokens holds the token stream produced from a single source file
type FileTokens struct {
	Path    string        `json:"path"`
	Tokens  []TokenRecord `json:"tokens"`
	Invalid int           `json:"invalid"` // Count of Invalid tokens in the stream
}

// Dump is the full result of one tokenization pass over a set of files
type Dump struct {
	Files []FileTokens `json:"files"`
}

// NewFileTokens converts a scanned token stream into its report form
func NewFileTokens(path string, tokens []lexer.Token) FileTokens {
	ft := FileTokens{Path: path, Tokens: make([]TokenRecord, 0, len(tokens))}
	for _, tok := range tokens {
		ft.Tokens = append(ft.Tokens, TokenRecord{
			Offset: tok.Pos,
			Type:   tok.Type.String(),
			Text:   tok.Text,
		})
		if tok.Type == lexer.Invalid {
			ft.Invalid++
		}
	}
	return ft
}

// Add appends one file's token stream to the dump
func (d *Dump) Add(path string, tokens []lexer.Token) {
	d.Files = append(d.Files, NewFileTokens(path, tokens))
}

// TotalTokens returns the number of tokens across all files
func (d *Dump) TotalTokens() int {
	n := 0
	for _, f := range d.Files {
		n += len(f.Tokens)
	}
	return n
}

// TotalInvalid returns the number of Invalid tokens across all files
func (d *Dump) TotalInvalid() int {
	n := 0
	for _, f := range d.Files {
		n += f.Invalid
	}
	return n
}
