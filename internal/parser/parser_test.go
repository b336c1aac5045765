package parser_test

import (
	"context"
	"errors"
	"slices"
	"testing"

	"uvss/internal/diag"
	"uvss/internal/parser"
	"uvss/internal/source"
	"uvss/internal/syntax"
	"uvss/internal/token"
)

func TestParse_EmptyBody(t *testing.T) {
	doc, bag := parseSource(t, "#foo {}")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(bag))
	}
	if doc.Content().Len() != 1 {
		t.Fatalf("expected 1 content node, got %d", doc.Content().Len())
	}
	rs := onlyRuleSet(t, doc)
	sels := rs.SelectorItems()
	if len(sels) != 1 {
		t.Fatalf("expected 1 selector, got %d", len(sels))
	}
	if got := sels[0].Selector().ToFullString(); got != "#foo" {
		t.Fatalf("selector full string %q, want %q", got, "#foo")
	}
	if rs.Body().Content().Len() != 0 {
		t.Fatalf("expected empty body, got %d nodes", rs.Body().Content().Len())
	}
}

func TestParse_MissingBody(t *testing.T) {
	doc, bag := parseSource(t, "#foo")
	rs := onlyRuleSet(t, doc)
	body := rs.Body()
	if !body.OpenBrace().IsMissing() || !body.CloseBrace().IsMissing() {
		t.Fatalf("expected both braces missing")
	}
	if body.FullWidth() != 0 {
		t.Fatalf("missing body has width %d", body.FullWidth())
	}
	if got := diagnosticCodes(bag); !slices.Equal(got, []diag.Code{diag.SynMissingToken}) {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(bag))
	}
}

func TestParse_SkippedInsideBody(t *testing.T) {
	doc, bag := parseSource(t, "#foo {&&&}")
	body := onlyRuleSet(t, doc).Body()
	if body.OpenBrace().IsMissing() || body.CloseBrace().IsMissing() {
		t.Fatalf("braces should be present")
	}
	if body.Content().Len() != 1 {
		t.Fatalf("expected 1 content node, got %d", body.Content().Len())
	}
	stmt, ok := body.Content().At(0).(*syntax.EmptyStatement)
	if !ok {
		t.Fatalf("expected empty statement, got %s", body.Content().At(0).Kind())
	}
	if got := stmt.ToFullString(); got != "&&&" {
		t.Fatalf("empty statement full string %q", got)
	}
	if len(stmt.SkippedTokens()) != 3 {
		t.Fatalf("expected 3 skipped tokens, got %d", len(stmt.SkippedTokens()))
	}
	items := bag.Items()
	if len(items) != 1 || items[0].Code != diag.SynUnexpectedToken {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(bag))
	}
	if items[0].Primary.Start != 6 || items[0].Primary.End != 9 {
		t.Fatalf("diagnostic span %d-%d, want 6-9", items[0].Primary.Start, items[0].Primary.End)
	}
}

func TestParse_StrayCloseBrace(t *testing.T) {
	doc, _ := parseSource(t, "} #foo {}")
	content := doc.Content()
	if content.Len() != 2 {
		t.Fatalf("expected 2 content nodes, got %d", content.Len())
	}
	stmt, ok := content.At(0).(*syntax.EmptyStatement)
	if !ok {
		t.Fatalf("content[0] is %s", content.At(0).Kind())
	}
	if got := stmt.ToFullString(); got != "} " {
		t.Fatalf("content[0] full string %q", got)
	}
	rs, ok := content.At(1).(*syntax.RuleSet)
	if !ok {
		t.Fatalf("content[1] is %s", content.At(1).Kind())
	}
	if got := rs.ToFullString(); got != "#foo {}" {
		t.Fatalf("content[1] full string %q", got)
	}
}

func TestParse_IndexerMustBeInteger(t *testing.T) {
	doc, bag := parseSource(t, "#foo | bar[3.1] as baz {}")
	nav := onlyRuleSet(t, doc).SelectorItems()[0].Navigation()
	if nav == nil {
		t.Fatalf("expected navigation expression")
	}
	if got := nav.Property().QualifiedName(); got != "bar" {
		t.Fatalf("navigation property %q", got)
	}
	if got := nav.TypeName().Text(); got != "baz" {
		t.Fatalf("navigation type %q", got)
	}
	idx := nav.Indexer()
	if idx == nil {
		t.Fatalf("expected indexer")
	}
	if len(idx.Diagnostics()) != 1 || idx.Diagnostics()[0].Code != diag.SynIndexMustBeIntegerValue {
		t.Fatalf("indexer diagnostics: %+v", idx.Diagnostics())
	}
	items := bag.Items()
	if len(items) != 1 {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(bag))
	}
	if items[0].Primary.Start != 10 || items[0].Primary.End != 15 {
		t.Fatalf("diagnostic span %d-%d, want 10-15", items[0].Primary.Start, items[0].Primary.End)
	}
}

func TestParse_IndexerValue(t *testing.T) {
	doc, bag := parseSource(t, "Grid | Children[2] as Button {}")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(bag))
	}
	idx := onlyRuleSet(t, doc).SelectorItems()[0].Navigation().Indexer()
	if v, ok := idx.Value(); !ok || v != 2 {
		t.Fatalf("indexer value %d %v", v, ok)
	}
}

func TestParse_Selectors(t *testing.T) {
	doc, bag := parseSource(t, "Button > #a .b:hover, Label! >> * {}")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(bag))
	}
	sels := onlyRuleSet(t, doc).SelectorItems()
	if len(sels) != 2 {
		t.Fatalf("expected 2 selectors, got %d", len(sels))
	}

	first := sels[0].Selector()
	parts := first.Parts()
	if len(parts) != 3 {
		t.Fatalf("expected 3 parts, got %d", len(parts))
	}
	if combs := first.Combinators(); len(combs) != 1 || combs[0].TokenKind() != token.Gt {
		t.Fatalf("unexpected combinators %v", combs)
	}
	subs := parts[2].SubParts()
	if len(subs) != 2 || subs[0].SubPartKind() != syntax.SubPartClass || subs[1].SubPartKind() != syntax.SubPartPseudoClass {
		t.Fatalf("unexpected sub-parts of %q", parts[2].String())
	}
	if got := first.String(); got != "Button > #a .b:hover" {
		t.Fatalf("selector text %q", got)
	}

	second := sels[1].Selector()
	parts = second.Parts()
	if len(parts) != 2 {
		t.Fatalf("expected 2 parts, got %d", len(parts))
	}
	if tn := parts[0].TypeName(); tn == nil || !tn.IsExactType() {
		t.Fatalf("expected exact type name")
	}
	if got := parts[1].SubParts()[0].SubPartKind(); got != syntax.SubPartUniversal {
		t.Fatalf("expected universal, got %s", got)
	}
}

func TestParse_Rules(t *testing.T) {
	src := "Button {\r\n\tbackground-color: red;\r\n\tmargin: 1 2 3 !important;\r\n\tGrid.row: 1;\r\n\t[transition]: \"a;b\";\r\n}"
	doc, bag := parseSource(t, src)
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(bag))
	}
	rules := onlyRuleSet(t, doc).Rules()
	if len(rules) != 4 {
		t.Fatalf("expected 4 rules, got %d", len(rules))
	}
	tests := []struct {
		name      string
		value     string
		important bool
		escaped   bool
	}{
		{"background-color", "red", false, false},
		{"margin", "1 2 3", true, false},
		{"Grid.row", "1", false, false},
		{"transition", "\"a;b\"", false, true},
	}
	for i, tt := range tests {
		r := rules[i]
		if got := r.Name().QualifiedName(); got != tt.name {
			t.Errorf("rule %d name %q, want %q", i, got, tt.name)
		}
		if got := r.Value().Value(); got != tt.value {
			t.Errorf("rule %d value %q, want %q", i, got, tt.value)
		}
		if r.IsImportant() != tt.important {
			t.Errorf("rule %d important = %v", i, r.IsImportant())
		}
		if r.Name().IsEscaped() != tt.escaped {
			t.Errorf("rule %d escaped = %v", i, r.Name().IsEscaped())
		}
	}
	if k := rules[3].Name().Name().TokenKind(); k != token.KwTransition {
		t.Fatalf("escaped name kind %s", k)
	}
}

func TestParse_RuleRecovery(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []diag.Code
	}{
		{"missing semicolon", "#a { color: red }", []diag.Code{diag.SynMissingToken}},
		{"empty value", "#a { color: ; }", []diag.Code{diag.SynEmptyValue}},
		{"missing colon", "#a { color red; }", []diag.Code{diag.SynMissingToken}},
		{"stray tokens", "#a { = color: red; }", []diag.Code{diag.SynUnexpectedToken}},
		{"keyword name", "#a { target: x; }", []diag.Code{diag.SynUnexpectedToken, diag.SynMissingToken}},
		{"unclosed body", "#a { color: red;", []diag.Code{diag.SynMissingToken}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, bag := parseSource(t, tt.input)
			if got := diagnosticCodes(bag); !slices.Equal(got, tt.want) {
				t.Fatalf("diagnostics: %s", diagnosticsSummary(bag))
			}
			checkSpans(t, doc)
		})
	}
}

func TestParse_PropertyTrigger(t *testing.T) {
	src := "Button { trigger property IsMouseOver = { true }, IsEnabled <> { false } !important { set background-color { red } set foreground (#child) { blue } } }"
	doc, bag := parseSource(t, src)
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(bag))
	}
	body := onlyRuleSet(t, doc).Body()
	trig, ok := body.Content().At(0).(*syntax.PropertyTrigger)
	if !ok {
		t.Fatalf("expected property trigger, got %s", body.Content().At(0).Kind())
	}
	conds := trig.ConditionItems()
	if len(conds) != 2 {
		t.Fatalf("expected 2 conditions, got %d", len(conds))
	}
	if conds[0].Operator().TokenKind() != token.Assign || conds[1].Operator().TokenKind() != token.NotEq {
		t.Fatalf("unexpected operators")
	}
	if got := conds[1].Value().Value(); got != "false" {
		t.Fatalf("condition value %q", got)
	}
	if trig.Important() == nil {
		t.Fatalf("expected !important")
	}
	actions := trig.Body().Content()
	if actions.Len() != 2 {
		t.Fatalf("expected 2 actions, got %d", actions.Len())
	}
	set, ok := actions.At(1).(*syntax.SetTriggerAction)
	if !ok {
		t.Fatalf("expected set action, got %s", actions.At(1).Kind())
	}
	if set.Selector() == nil || set.Selector().Selector().String() != "#child" {
		t.Fatalf("expected selector on set action")
	}
	if got := set.Value().Value(); got != "blue" {
		t.Fatalf("set value %q", got)
	}
}

func TestParse_EventTrigger(t *testing.T) {
	src := "Button { trigger event Mouse.Click (a, b) { play-sfx { click } play-storyboard (#x) { fade } } }"
	doc, bag := parseSource(t, src)
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(bag))
	}
	trig, ok := onlyRuleSet(t, doc).Body().Content().At(0).(*syntax.EventTrigger)
	if !ok {
		t.Fatalf("expected event trigger")
	}
	if got := trig.Name().Owner().Text() + "." + trig.Name().Name().Text(); got != "Mouse.Click" {
		t.Fatalf("event name %q", got)
	}
	if args := trig.Arguments().Arguments(); len(args) != 2 || args[1].Text() != "b" {
		t.Fatalf("unexpected arguments")
	}
	actions := trig.Body().Content()
	if _, ok := actions.At(0).(*syntax.PlaySfxTriggerAction); !ok {
		t.Fatalf("expected play-sfx action, got %s", actions.At(0).Kind())
	}
	play, ok := actions.At(1).(*syntax.PlayStoryboardTriggerAction)
	if !ok {
		t.Fatalf("expected play-storyboard action, got %s", actions.At(1).Kind())
	}
	if got := play.Value().Value(); got != "fade" {
		t.Fatalf("storyboard name %q", got)
	}
}

func TestParse_Transition(t *testing.T) {
	doc, bag := parseSource(t, "Button { transition (Opacity, hover): 0.5s linear; }")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(bag))
	}
	tr, ok := onlyRuleSet(t, doc).Body().Content().At(0).(*syntax.Transition)
	if !ok {
		t.Fatalf("expected transition")
	}
	if args := tr.Arguments().Arguments(); len(args) != 2 || args[0].Text() != "Opacity" {
		t.Fatalf("unexpected arguments")
	}
	if got := tr.Value().Value(); got != "0.5s linear" {
		t.Fatalf("transition value %q", got)
	}
}

func TestParse_Storyboard(t *testing.T) {
	src := "@fade-in loop {\n  target Button (#x) {\n    animation Opacity {\n      keyframe 0 { 0.0 }\n      keyframe 500 ease-in { 1.0 }\n    }\n  }\n}\n"
	doc, bag := parseSource(t, src)
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(bag))
	}
	sbs := doc.Storyboards()
	if len(sbs) != 1 {
		t.Fatalf("expected 1 storyboard, got %d", len(sbs))
	}
	sb := sbs[0]
	if sb.Name().Text() != "fade-in" || sb.Loop() == nil || sb.Loop().Text() != "loop" {
		t.Fatalf("unexpected storyboard header %q", sb.String())
	}
	targets := sb.Targets()
	if len(targets) != 1 || targets[0].TypeName().Text() != "Button" || targets[0].Selector() == nil {
		t.Fatalf("unexpected targets")
	}
	anims := targets[0].Animations()
	if len(anims) != 1 || anims[0].Property().QualifiedName() != "Opacity" {
		t.Fatalf("unexpected animations")
	}
	frames := anims[0].Keyframes()
	if len(frames) != 2 {
		t.Fatalf("expected 2 keyframes, got %d", len(frames))
	}
	if frames[1].Time().Text() != "500" || frames[1].Easing().Text() != "ease-in" || frames[1].Value().Value() != "1.0" {
		t.Fatalf("unexpected keyframe %q", frames[1].String())
	}
	if frames[0].Easing() != nil {
		t.Fatalf("unexpected easing on first keyframe")
	}
}

func TestParse_Directives(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		culture string
		want    []diag.Code
	}{
		{"culture", `$culture "en-US"`, "en-US", nil},
		{"invalid culture", `$culture "not a culture"`, "not a culture", []diag.Code{diag.SemInvalidCulture}},
		{"missing culture", `$culture`, "", []diag.Code{diag.SynMissingToken}},
		{"unknown", `$theme "dark"`, "", []diag.Code{diag.SynUnknownDirective, diag.SynUnexpectedToken}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, bag := parseSource(t, tt.input)
			if got := diagnosticCodes(bag); !slices.Equal(got, tt.want) {
				t.Fatalf("diagnostics: %s", diagnosticsSummary(bag))
			}
			got, _ := doc.Culture()
			if got != tt.culture {
				t.Fatalf("culture %q, want %q", got, tt.culture)
			}
		})
	}
}

func TestParse_LexicalDiagnostics(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []diag.Code
	}{
		{"unterminated string", "#a { b: c; }\n$culture \"en", []diag.Code{diag.LexUnterminatedString}},
		{"unterminated comment", "#a {} /* open", []diag.Code{diag.LexUnterminatedComment}},
		{"bad keyframe time", "@s { target { animation a { keyframe 1.2.3 { x } } } }", []diag.Code{diag.LexBadNumber}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, bag := parseSource(t, tt.input)
			if got := diagnosticCodes(bag); !slices.Equal(got, tt.want) {
				t.Fatalf("diagnostics: %s", diagnosticsSummary(bag))
			}
		})
	}
}

func TestParse_Trivia(t *testing.T) {
	src := "// header\r\n#a { b: c; } // trailing\r\n#b {}\r\n/* tail */"
	doc, _ := parseSource(t, src)
	rs := doc.RuleSets()[0]
	lead := rs.GetLeadingTrivia()
	if len(lead) != 2 || lead[0].Kind != token.TriviaSingleLineComment || lead[1].Kind != token.TriviaEndOfLine {
		t.Fatalf("unexpected leading trivia %+v", lead)
	}
	trail := rs.GetTrailingTrivia()
	if len(trail) != 3 || trail[1].Text != "// trailing" || trail[2].Kind != token.TriviaEndOfLine {
		t.Fatalf("unexpected trailing trivia %+v", trail)
	}
	eof := doc.EndOfFile().GetTrailingTrivia()
	if len(eof) != 2 || eof[1].Text != "/* tail */" {
		t.Fatalf("unexpected end of file trivia %+v", eof)
	}
	if got := rs.String(); got != "#a { b: c; }" {
		t.Fatalf("rule set text %q", got)
	}
}

func TestParseFile_Options(t *testing.T) {
	fs := source.NewFileSetWithBase("")
	file := fs.Get(fs.AddVirtual("opts.uvss", []byte("#a { color: red }\n#b")))

	bag := diag.NewBag(10)
	res, err := parser.ParseFile(context.Background(), file, parser.Options{
		Reporter:       &diag.BagReporter{Bag: bag},
		MaxDiagnostics: 1,
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if res.Bag.Len() != 1 || bag.Len() != 1 {
		t.Fatalf("expected capped diagnostics, got %d and %d", res.Bag.Len(), bag.Len())
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := parser.ParseFile(ctx, file, parser.Options{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestParse_NeverFails(t *testing.T) {
	inputs := []string{
		"",
		"   \r\n",
		"}}}",
		"{{{",
		"#",
		"@",
		"$",
		"trigger",
		"[",
		"a:b",
		"\"unterminated",
		"/*",
		"#a { trigger event }",
		"#a { trigger property }",
		"#a { trigger property x = }",
		"@s { target { animation { keyframe } } }",
		"#a | b[",
		"#a | [x].y as",
		"\xff\xfe#a{}",
		"#a{b:c;}#d{e:f}",
		"#a { set }",
		"#a { transition : ; }",
		"#a, { }",
		"> >> #a",
		"#a { b: { c } }",
		"#a { b: c !important !important; }",
		"@s { target (#x { } }",
		"$culture \"x\" $culture",
	}
	for _, src := range inputs {
		doc := parser.Parse(src)
		if got := doc.ToFullString(); got != src {
			t.Fatalf("round trip mismatch:\nwant %q\ngot  %q", src, got)
		}
		checkSpans(t, doc)
	}
}

func TestParse_MissingTokenFix(t *testing.T) {
	src := "#a { color: red }"
	_, bag := parseSource(t, src)
	if bag.Len() != 1 {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(bag))
	}
	d := bag.Items()[0]
	if len(d.Fixes) != 1 || len(d.Fixes[0].Edits) != 1 {
		t.Fatalf("expected one single-edit fix, got %+v", d.Fixes)
	}
	edit := d.Fixes[0].Edits[0]
	if edit.NewText != ";" || !edit.Span.Empty() || edit.Span != d.Primary {
		t.Fatalf("unexpected edit %+v for primary %v", edit, d.Primary)
	}

	fixed := src[:edit.Span.Start] + edit.NewText + src[edit.Span.Start:]
	if _, bag := parseSource(t, fixed); bag.Len() != 0 {
		t.Fatalf("fixed source %q still reports: %s", fixed, diagnosticsSummary(bag))
	}
}
