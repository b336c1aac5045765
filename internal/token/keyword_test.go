package token

import (
	"testing"
)

func TestLookupKeyword_Positive(t *testing.T) {
	cases := map[string]Kind{
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

	for lexeme, want := range cases {
		got, ok := LookupKeyword(lexeme)
		if !ok {
			t.Fatalf("LookupKeyword(%q) = !ok, want %v", lexeme, want)
		}
		if got != want {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", lexeme, got, want)
		}
		if got.Spelling() != lexeme {
			t.Fatalf("%v.Spelling() = %q, want %q", got, got.Spelling(), lexeme)
		}
	}
}

func TestLookupKeyword_Negative(t *testing.T) {
	notKw := []string{
		"Trigger", "SET", // case matters
		"set-handled", "play", "targets", "important", "!important",
		"Button", "background-color",
	}
	for _, s := range notKw {
		if _, ok := LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) returned ok=true, want false", s)
		}
	}
}
