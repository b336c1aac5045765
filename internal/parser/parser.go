package parser

import (
	"context"
	"slices"

	"uvss/internal/diag"
	"uvss/internal/lexer"
	"uvss/internal/source"
	"uvss/internal/syntax"
	"uvss/internal/token"
)

type Options struct {
	// Reporter receives every diagnostic of the parsed document; may be nil.
	Reporter diag.Reporter
	// MaxDiagnostics caps Result.Bag; 0 means unlimited.
	MaxDiagnostics int
}

type Result struct {
	Document *syntax.Document
	// Bag holds the document diagnostics sorted by position.
	Bag *diag.Bag
}

// Parser holds the state for one file.
type Parser struct {
	lx   *lexer.Lexer
	file *source.File
	ctx  context.Context
}

// Parse parses src. It never fails: malformed input yields missing
// tokens, empty statements and diagnostics inside the returned tree.
func Parse(src string) *syntax.Document {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("<input>", []byte(src)))
	doc, _ := parse(context.Background(), file)
	return doc
}

// ParseFile parses a file of a FileSet and collects its diagnostics.
// ctx is checked between top-level items; on cancellation the partial
// tree is dropped and ctx.Err() is returned.
func ParseFile(ctx context.Context, file *source.File, opts Options) (Result, error) {
	doc, err := parse(ctx, file)
	if err != nil {
		return Result{}, err
	}

	diags := doc.GetDiagnostics()
	limit := opts.MaxDiagnostics
	if limit <= 0 {
		limit = len(diags)
	}
	bag := diag.NewBag(limit)
	for _, d := range diags {
		bag.Add(d)
	}
	bag.Sort()
	if opts.Reporter != nil {
		for _, d := range bag.Items() {
			opts.Reporter.Report(d)
		}
	}
	return Result{Document: doc, Bag: bag}, nil
}

func parse(ctx context.Context, file *source.File) (*syntax.Document, error) {
	p := &Parser{
		lx:   lexer.New(file, lexer.Options{}),
		file: file,
		ctx:  ctx,
	}
	return p.parseDocument()
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}

// parseDocument is the top-level loop: content items until EOF.
func (p *Parser) parseDocument() (*syntax.Document, error) {
	var items []syntax.Element
	for !p.at(token.EOF) {
		if err := p.ctx.Err(); err != nil {
			return nil, err
		}
		items = append(items, p.parseContent(ctxDocument))
	}
	eof := p.convert(p.lx.Next(), nil)
	return syntax.NewDocumentInFile(p.file.ID, syntax.NewList(items...), eof), nil
}
