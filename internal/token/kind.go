package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF
	// Unknown is a single character that starts no other token.
	Unknown
	// Empty is the zero-width token owned by an empty statement.
	Empty

	// Ident represents an identifier token.
	Ident
	// Number represents a numeric literal.
	Number
	// String represents a double-quoted string literal.
	String
	// Directive represents a '$name' directive token.
	Directive
	// Value represents raw property value text.
	Value

	// KwTrigger represents the 'trigger' keyword.
	KwTrigger // trigger
	// KwProperty represents the 'property' keyword.
	KwProperty // property
	// KwEvent represents the 'event' keyword.
	KwEvent // event
	// KwSet represents the 'set' keyword.
	KwSet // set
	// KwPlayStoryboard represents the 'play-storyboard' keyword.
	KwPlayStoryboard // play-storyboard
	// KwPlaySfx represents the 'play-sfx' keyword.
	KwPlaySfx // play-sfx
	// KwTransition represents the 'transition' keyword.
	KwTransition // transition
	// KwTarget represents the 'target' keyword.
	KwTarget // target
	// KwAnimation represents the 'animation' keyword.
	KwAnimation // animation
	// KwKeyframe represents the 'keyframe' keyword.
	KwKeyframe // keyframe
	// KwAs represents the 'as' keyword.
	KwAs // as
	// KwImportant represents the '!important' qualifier.
	KwImportant // !important

	LBrace    // {
	RBrace    // }
	LParen    // (
	RParen    // )
	LBracket  // [
	RBracket  // ]
	Colon     // :
	Semicolon // ;
	Comma     // ,
	Dot       // .
	Hash      // #
	At        // @
	Star      // *
	Bang      // !
	Pipe      // |
	Assign    // =
	NotEq     // <>
	Lt        // <
	LtEq      // <=
	Gt        // >
	GtEq      // >=
	GtGt      // >>
)

var kindNames = [...]string{
	Invalid:          "Invalid",
	EOF:              "EOF",
	Unknown:          "Unknown",
	Empty:            "Empty",
	Ident:            "Ident",
	Number:           "Number",
	String:           "String",
	Directive:        "Directive",
	Value:            "Value",
	KwTrigger:        "KwTrigger",
	KwProperty:       "KwProperty",
	KwEvent:          "KwEvent",
	KwSet:            "KwSet",
	KwPlayStoryboard: "KwPlayStoryboard",
	KwPlaySfx:        "KwPlaySfx",
	KwTransition:     "KwTransition",
	KwTarget:         "KwTarget",
	KwAnimation:      "KwAnimation",
	KwKeyframe:       "KwKeyframe",
	KwAs:             "KwAs",
	KwImportant:      "KwImportant",
	LBrace:           "LBrace",
	RBrace:           "RBrace",
	LParen:           "LParen",
	RParen:           "RParen",
	LBracket:         "LBracket",
	RBracket:         "RBracket",
	Colon:            "Colon",
	Semicolon:        "Semicolon",
	Comma:            "Comma",
	Dot:              "Dot",
	Hash:             "Hash",
	At:               "At",
	Star:             "Star",
	Bang:             "Bang",
	Pipe:             "Pipe",
	Assign:           "Assign",
	NotEq:            "NotEq",
	Lt:               "Lt",
	LtEq:             "LtEq",
	Gt:               "Gt",
	GtEq:             "GtEq",
	GtGt:             "GtGt",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsEOF reports whether the kind marks the end of input.
func (k Kind) IsEOF() bool { return k == EOF }

// IsKeyword reports whether the kind is a keyword (including !important).
func (k Kind) IsKeyword() bool { return k >= KwTrigger && k <= KwImportant }

// IsPunct reports whether the kind is punctuation or an operator.
func (k Kind) IsPunct() bool { return k >= LBrace && k <= GtGt }

// IsComparison reports whether the kind may appear in a property trigger condition.
func (k Kind) IsComparison() bool {
	switch k {
	case Assign, NotEq, Lt, LtEq, Gt, GtEq:
		return true
	default:
		return false
	}
}

// IsCombinator reports whether the kind combines two selector parts.
func (k Kind) IsCombinator() bool { return k == Gt || k == GtGt }

// Spelling returns the fixed source text for keyword and punctuation kinds,
// or "" for kinds whose text varies.
func (k Kind) Spelling() string {
	if int(k) < len(spellings) {
		return spellings[k]
	}
	return ""
}

var spellings = [...]string{
	KwTrigger:        "trigger",
	KwProperty:       "property",
	KwEvent:          "event",
	KwSet:            "set",
	KwPlayStoryboard: "play-storyboard",
	KwPlaySfx:        "play-sfx",
	KwTransition:     "transition",
	KwTarget:         "target",
	KwAnimation:      "animation",
	KwKeyframe:       "keyframe",
	KwAs:             "as",
	KwImportant:      "!important",
	LBrace:           "{",
	RBrace:           "}",
	LParen:           "(",
	RParen:           ")",
	LBracket:         "[",
	RBracket:         "]",
	Colon:            ":",
	Semicolon:        ";",
	Comma:            ",",
	Dot:              ".",
	Hash:             "#",
	At:               "@",
	Star:             "*",
	Bang:             "!",
	Pipe:             "|",
	Assign:           "=",
	NotEq:            "<>",
	Lt:               "<",
	LtEq:             "<=",
	Gt:               ">",
	GtEq:             ">=",
	GtGt:             ">>",
}
