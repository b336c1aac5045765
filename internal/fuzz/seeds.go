package fuzztests

import (
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10
	maxFuzzInput = 1 << 16
)

// languageSeeds cover every construct plus the usual recovery shapes.
var languageSeeds = []string{
	"",
	"#foo {}",
	"#foo",
	"#foo {&&&}",
	"} #foo {}",
	"{{{/* comment */{}}}}",
	"#foo | bar[3.1] as baz {}",
	"Button.primary > :hover, Panel >> TextBlock! { Grid.row: 1 !important; }",
	"#a { [transition]: x; transition (a, b): c !important; }",
	"#a { trigger property P = { 1 }, Q >= { 2 } !important { set R (#b) { 3 } } }",
	"#a { trigger event E (handled) { play-storyboard (#b) { s } play-sfx { c } } }",
	"@s loop { target T (#x) { animation O | C as B { keyframe 0 ease { 1 } } } }",
	"$culture \"en-US\"\r\n$bogus\r\n",
	"#a { b: \"unterminated\n}",
	"/* open",
	"#a { b: { nested { braces } }; }",
	"\t\r\n  \r \n",
}

// addCorpusSeeds adds the repository's testdata style sheets, then the
// built-in seeds.
func addCorpusSeeds(f *testing.F) {
	paths, _ := filepath.Glob(filepath.Join("..", "..", "testdata", "*.uvss"))
	for _, p := range paths {
		// #nosec G304 -- fixed testdata directory
		if src, err := os.ReadFile(p); err == nil {
			f.Add(clip(src, maxSeedBytes))
		}
	}
	for _, s := range languageSeeds {
		f.Add([]byte(s))
	}
}

// clip copies at most n bytes of b.
func clip(b []byte, n int) []byte { return append([]byte(nil), b[:min(len(b), n)]...) }

func clampInput(input []byte) []byte { return clip(input, maxFuzzInput) }

// truncateForLog shortens input for failure messages.
func truncateForLog(input []byte, n int) []byte {
	if len(input) <= n {
		return input
	}
	return append(clip(input, n), "..."...)
}
