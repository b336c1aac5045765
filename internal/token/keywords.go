package token

var keywords = map[string]Kind{
	"trigger":         KwTrigger,
	"property":        KwProperty,
	"event":           KwEvent,
	"set":             KwSet,
	"play-storyboard": KwPlayStoryboard,
	"play-sfx":        KwPlaySfx,
	"transition":      KwTransition,
	"target":          KwTarget,
	"animation":       KwAnimation,
	"keyframe":        KwKeyframe,
	"as":              KwAs,
}

// LookupKeyword returns the keyword kind for an identifier lexeme.
// Keywords are case-sensitive and must match the whole lexeme.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// IsKeywordText reports whether s would be lexed as a keyword.
func IsKeywordText(s string) bool {
	_, ok := keywords[s]
	return ok
}
