package parser

import (
	"fmt"

	"golang.org/x/text/language"

	"uvss/internal/diag"
	"uvss/internal/syntax"
	"uvss/internal/token"
)

const cultureDirective = "$culture"

// parseDirective parses $culture "name" or an unknown $directive.
func (p *Parser) parseDirective() syntax.Element {
	tok := p.lx.Peek()
	if tok.Text != cultureDirective {
		directive := p.advance()
		return syntax.NewUnknownDirective(syntax.Attach(directive,
			syntax.Warning(diag.SynUnknownDirective, directive.Width(), fmt.Sprintf("unknown directive %s", directive.Text()))))
	}
	directive := p.advance()
	culture := p.expect(token.String)
	if !culture.IsMissing() {
		name, _ := culture.Value().(string)
		if _, err := language.Parse(name); err != nil {
			syntax.Attach(culture, syntax.Warning(diag.SemInvalidCulture, culture.Width(),
				fmt.Sprintf("%q is not a valid culture name", name)))
		}
	}
	return syntax.NewCultureDirective(directive, culture)
}
