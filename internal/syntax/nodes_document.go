package syntax

import "uvss/internal/source"

// Document is the root: top-level content and the end-of-file token, which
// owns all trivia after the last real token.
type Document struct {
	nodeBase
	content *List
	eof     *Token
	file    source.FileID
}

func (d *Document) Content() *List { return d.content }
func (d *Document) EndOfFile() *Token { return d.eof }
func (d *Document) File() source.FileID { return d.file }

// RuleSets returns the top-level rule sets in source order.
func (d *Document) RuleSets() []*RuleSet { return listOf[*RuleSet](d.content) }

// Storyboards returns the top-level storyboards in source order.
func (d *Document) Storyboards() []*Storyboard { return listOf[*Storyboard](d.content) }

// Culture returns the value of the last $culture directive, if any.
func (d *Document) Culture() (string, bool) {
	dirs := listOf[*CultureDirective](d.content)
	if len(dirs) == 0 {
		return "", false
	}
	return dirs[len(dirs)-1].Culture(), true
}

func (d *Document) rebuild(slots []Element) Node {
	return NewDocumentInFile(d.file, slotAs[*List](slots, 0), slotAs[*Token](slots, 1))
}

// Block is "{" content "}".
type Block struct {
	nodeBase
	open    *Token
	content *List
	close   *Token
}

func (b *Block) OpenBrace() *Token { return b.open }
func (b *Block) Content() *List { return b.content }
func (b *Block) CloseBrace() *Token { return b.close }

func (b *Block) rebuild(slots []Element) Node {
	return NewBlock(slotAs[*Token](slots, 0), slotAs[*List](slots, 1), slotAs[*Token](slots, 2))
}

// EmptyStatement holds tokens no production accepted. They live in the
// SkippedTokens leading trivia of its zero-length Empty token.
type EmptyStatement struct {
	nodeBase
	empty *Token
}

func (e *EmptyStatement) Empty() *Token { return e.empty }

// SkippedTokens returns the tokens wrapped by this statement.
func (e *EmptyStatement) SkippedTokens() []*Token {
	var out []*Token
	for _, tr := range e.empty.leading {
		out = append(out, tr.Tokens...)
	}
	return out
}

func (e *EmptyStatement) rebuild(slots []Element) Node {
	return NewEmptyStatement(slotAs[*Token](slots, 0))
}

// CultureDirective is `$culture "name"`.
type CultureDirective struct {
	nodeBase
	directive *Token
	culture   *Token
}

func (c *CultureDirective) Directive() *Token { return c.directive }
func (c *CultureDirective) CultureToken() *Token { return c.culture }

// Culture returns the decoded culture name.
func (c *CultureDirective) Culture() string {
	s, _ := c.culture.value.(string)
	return s
}

func (c *CultureDirective) rebuild(slots []Element) Node {
	return NewCultureDirective(slotAs[*Token](slots, 0), slotAs[*Token](slots, 1))
}

// UnknownDirective is any "$name" other than $culture.
type UnknownDirective struct {
	nodeBase
	directive *Token
}

func (u *UnknownDirective) Directive() *Token { return u.directive }

func (u *UnknownDirective) rebuild(slots []Element) Node {
	return NewUnknownDirective(slotAs[*Token](slots, 0))
}
