package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"fortio.org/safecast"

	"uvss/internal/source"
	"uvss/internal/syntax"
	"uvss/internal/token"
)

// TreeOpts controls syntax tree dumps.
type TreeOpts struct {
	// ShowTrivia adds leading and trailing trivia under each token.
	ShowTrivia bool
	// ShowPositions prints line:col ranges instead of byte offsets.
	ShowPositions bool
}

// NodeOutput is one element of a syntax tree in JSON form.
type NodeOutput struct {
	Kind        string       `json:"kind"`
	Start       int          `json:"start"`
	End         int          `json:"end"`
	Text        string       `json:"text,omitempty"`
	Missing     bool         `json:"missing,omitempty"`
	Leading     []string     `json:"leading,omitempty"`
	Trailing    []string     `json:"trailing,omitempty"`
	Diagnostics []string     `json:"diagnostics,omitempty"`
	Children    []NodeOutput `json:"children,omitempty"`
}

type treeNode struct {
	label    string
	children []*treeNode
}

func mustU32(v int) uint32 {
	out, err := safecast.Conv[uint32](v)
	if err != nil {
		panic(fmt.Errorf("tree offset overflow: %w", err))
	}
	return out
}

func elementRange(e syntax.Element, file source.FileID, fs *source.FileSet, positions bool) string {
	start := syntax.Position(e)
	end := start + syntax.Width(e)
	if !positions || fs == nil {
		return fmt.Sprintf("%d..%d", start, end)
	}
	from, to := fs.Resolve(source.Span{File: file, Start: mustU32(start), End: mustU32(end)})
	return fmt.Sprintf("%d:%d-%d:%d", from.Line, from.Col, to.Line, to.Col)
}

func triviaLabel(tr syntax.Trivia) string {
	if tr.Kind == token.TriviaSkippedTokens {
		parts := make([]string, 0, len(tr.Tokens))
		for _, t := range tr.Tokens {
			parts = append(parts, t.Kind().String())
		}
		return fmt.Sprintf("%s [%s] %q", tr.Kind, strings.Join(parts, " "), tr.Text)
	}
	return fmt.Sprintf("%s %q", tr.Kind, tr.Text)
}

func diagLabels(e syntax.Element) []string {
	var out []string
	for _, d := range e.Diagnostics() {
		out = append(out, fmt.Sprintf("%s %s", d.Code.ID(), d.Message))
	}
	return out
}

func buildTreeNode(e syntax.Element, file source.FileID, fs *source.FileSet, opts TreeOpts) *treeNode {
	rng := elementRange(e, file, fs, opts.ShowPositions)
	node := &treeNode{}
	if tok, ok := e.(*syntax.Token); ok {
		switch {
		case tok.IsMissing():
			node.label = fmt.Sprintf("%s <missing> (%s)", tok.Kind(), rng)
		case tok.Text() == "":
			node.label = fmt.Sprintf("%s (%s)", tok.Kind(), rng)
		default:
			node.label = fmt.Sprintf("%s %q (%s)", tok.Kind(), tok.Text(), rng)
		}
		if opts.ShowTrivia {
			for _, tr := range tok.Leading() {
				node.children = append(node.children, &treeNode{label: "leading " + triviaLabel(tr)})
			}
			for _, tr := range tok.Trailing() {
				node.children = append(node.children, &treeNode{label: "trailing " + triviaLabel(tr)})
			}
		}
	} else {
		node.label = fmt.Sprintf("%s (%s)", e.Kind(), rng)
		for i := range e.SlotCount() {
			child := e.Slot(i)
			if child == nil {
				continue
			}
			node.children = append(node.children, buildTreeNode(child, file, fs, opts))
		}
	}
	for _, d := range diagLabels(e) {
		node.children = append(node.children, &treeNode{label: "! " + d})
	}
	return node
}

func writeTreeNode(w io.Writer, n *treeNode, prefix string) {
	for i, child := range n.children {
		branch, next := "├─ ", "│  "
		if i == len(n.children)-1 {
			branch, next = "└─ ", "   "
		}
		fmt.Fprintf(w, "%s%s%s\n", prefix, branch, child.label)
		writeTreeNode(w, child, prefix+next)
	}
}

// FormatTreePretty prints the syntax tree of doc with box-drawing connectors.
func FormatTreePretty(w io.Writer, doc *syntax.Document, fs *source.FileSet, opts TreeOpts) error {
	root := buildTreeNode(doc, doc.File(), fs, opts)
	header := root.label
	if fs != nil && int(doc.File()) < fs.Len() {
		if f := fs.Get(doc.File()); f != nil {
			header = fmt.Sprintf("%s: %s", f.FormatPath("auto", fs.BaseDir()), root.label)
		}
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	writeTreeNode(w, root, "")
	return nil
}

func buildNodeOutput(e syntax.Element) NodeOutput {
	start := syntax.Position(e)
	out := NodeOutput{
		Kind:        e.Kind().String(),
		Start:       start,
		End:         start + syntax.Width(e),
		Diagnostics: diagLabels(e),
	}
	if tok, ok := e.(*syntax.Token); ok {
		out.Text = tok.Text()
		out.Missing = tok.IsMissing()
		for _, tr := range tok.Leading() {
			out.Leading = append(out.Leading, triviaLabel(tr))
		}
		for _, tr := range tok.Trailing() {
			out.Trailing = append(out.Trailing, triviaLabel(tr))
		}
		return out
	}
	for i := range e.SlotCount() {
		if child := e.Slot(i); child != nil {
			out.Children = append(out.Children, buildNodeOutput(child))
		}
	}
	return out
}

// FormatTreeJSON writes the syntax tree of doc as nested JSON objects.
func FormatTreeJSON(w io.Writer, doc *syntax.Document) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildNodeOutput(doc))
}
