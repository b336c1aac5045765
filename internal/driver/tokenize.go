package driver

import (
	"fmt"

	"uvss/internal/diag"
	"uvss/internal/lexer"
	"uvss/internal/source"
	"uvss/internal/token"
)

// TokenizeResult is the raw token stream of one file, EOF included.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize lexes path without parsing it. Lexical anomalies go to the
// result bag, capped at maxDiagnostics.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fset := source.NewFileSet()
	id, err := fset.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	res := &TokenizeResult{FileSet: fset, File: fset.Get(id), Bag: diag.NewBag(maxDiagnostics)}
	lx := lexer.New(res.File, lexer.Options{Reporter: diag.BagReporter{Bag: res.Bag}})
	for tok := lx.Next(); ; tok = lx.Next() {
		res.Tokens = append(res.Tokens, tok)
		if tok.Kind.IsEOF() {
			return res, nil
		}
	}
}
