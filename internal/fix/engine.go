// Package fix applies the edits attached to diagnostics back to the
// files they were reported on.
package fix

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"uvss/internal/diag"
	"uvss/internal/source"
)

// ErrNoFixes is returned when no fixes were applied.
var ErrNoFixes = errors.New("no applicable fixes found")

// ApplyMode determines selection strategy for fixes.
type ApplyMode uint8

const (
	// ApplyModeOnce applies the first fix in source order.
	ApplyModeOnce ApplyMode = iota
	// ApplyModeAll applies every fix that does not overlap an earlier one.
	ApplyModeAll
)

type ApplyOptions struct {
	Mode ApplyMode
	// DryRun computes FileChange.Content without writing files.
	DryRun bool
}

// AppliedFix records a successfully applied fix.
type AppliedFix struct {
	Title     string
	Code      diag.Code
	Message   string
	Path      string
	EditCount int
}

// SkippedFix captures a fix that was not applied, with a reason.
type SkippedFix struct {
	Title  string
	Path   string
	Reason string
}

// FileChange summarises the modifications to one file.
type FileChange struct {
	Path      string
	EditCount int
	Content   []byte
}

type ApplyResult struct {
	Applied     []AppliedFix
	Skipped     []SkippedFix
	FileChanges []FileChange
}

type candidate struct {
	diag  diag.Diagnostic
	fix   diag.Fix
	order int
}

// Apply collects fixes from diagnostics, selects a subset according to
// opts and applies them. Edit spans refer to the file contents held in fs.
func Apply(fs *source.FileSet, diagnostics []diag.Diagnostic, opts ApplyOptions) (*ApplyResult, error) {
	result := &ApplyResult{}
	if fs == nil {
		return result, errors.New("fix: nil file set")
	}

	candidates := gatherCandidates(diagnostics)
	if len(candidates) == 0 {
		return result, ErrNoFixes
	}
	sortCandidates(candidates)
	if opts.Mode == ApplyModeOnce {
		candidates = candidates[:1]
	}

	pending := make(map[source.FileID][]diag.FixEdit)
	for _, cand := range candidates {
		path := formatFilePath(fs, cand.diag.Primary.File)
		if reason := checkEdits(fs, pending, cand.fix.Edits, opts.DryRun); reason != "" {
			result.Skipped = append(result.Skipped, SkippedFix{Title: cand.fix.Title, Path: path, Reason: reason})
			continue
		}
		for _, edit := range cand.fix.Edits {
			pending[edit.Span.File] = append(pending[edit.Span.File], edit)
		}
		result.Applied = append(result.Applied, AppliedFix{
			Title:     cand.fix.Title,
			Code:      cand.diag.Code,
			Message:   cand.diag.Message,
			Path:      path,
			EditCount: len(cand.fix.Edits),
		})
	}
	if len(result.Applied) == 0 {
		return result, ErrNoFixes
	}

	fileIDs := make([]source.FileID, 0, len(pending))
	for id := range pending {
		fileIDs = append(fileIDs, id)
	}
	sort.Slice(fileIDs, func(i, j int) bool { return fileIDs[i] < fileIDs[j] })

	for _, id := range fileIDs {
		file := fs.Get(id)
		content := applyEdits(file.Content, pending[id])
		if !opts.DryRun {
			mode := os.FileMode(0o644)
			if info, err := os.Stat(file.Path); err == nil {
				mode = info.Mode().Perm()
			}
			if err := os.WriteFile(file.Path, content, mode); err != nil {
				return result, fmt.Errorf("write %s: %w", file.Path, err)
			}
		}
		result.FileChanges = append(result.FileChanges, FileChange{
			Path:      formatFilePath(fs, id),
			EditCount: len(pending[id]),
			Content:   content,
		})
	}
	return result, nil
}

func gatherCandidates(diagnostics []diag.Diagnostic) []candidate {
	var out []candidate
	for _, d := range diagnostics {
		for _, f := range d.Fixes {
			if len(f.Edits) == 0 {
				continue
			}
			out = append(out, candidate{diag: d, fix: f, order: len(out)})
		}
	}
	return out
}

func sortCandidates(candidates []candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		di, dj := candidates[i].diag.Primary, candidates[j].diag.Primary
		if di.File != dj.File {
			return di.File < dj.File
		}
		if di.Start != dj.Start {
			return di.Start < dj.Start
		}
		if di.End != dj.End {
			return di.End < dj.End
		}
		return candidates[i].order < candidates[j].order
	})
}

// checkEdits returns why edits cannot be applied on top of pending, or ""
// when they can. Virtual files have nothing to write back to and are only
// accepted in a dry run.
func checkEdits(fs *source.FileSet, pending map[source.FileID][]diag.FixEdit, edits []diag.FixEdit, dryRun bool) string {
	for i, edit := range edits {
		if int(edit.Span.File) >= fs.Len() {
			return "unknown file"
		}
		file := fs.Get(edit.Span.File)
		if !dryRun && file.Flags&source.FileVirtual != 0 {
			return "target file is virtual"
		}
		if edit.Span.Start > edit.Span.End || int(edit.Span.End) > len(file.Content) {
			return "edit span out of range"
		}
		for _, prev := range pending[edit.Span.File] {
			if spansConflict(prev.Span, edit.Span) {
				return "conflicts with a previously applied fix"
			}
		}
		for _, other := range edits[:i] {
			if other.Span.File == edit.Span.File && spansConflict(other.Span, edit.Span) {
				return "fix edits overlap"
			}
		}
	}
	return ""
}

// spansConflict reports whether two edit spans overlap. Spans are half-open;
// two insertions never conflict, an insertion conflicts with a replacement
// that strictly contains its position.
func spansConflict(a, b source.Span) bool {
	if a.Empty() && b.Empty() {
		return false
	}
	if a.Empty() {
		return b.Start < a.Start && a.Start < b.End
	}
	if b.Empty() {
		return a.Start < b.Start && b.Start < a.End
	}
	return a.Start < b.End && b.Start < a.End
}

// applyEdits splices non-overlapping edits into content. Insertions at the
// same offset keep their order and go before a replacement starting there.
func applyEdits(content []byte, edits []diag.FixEdit) []byte {
	sorted := make([]diag.FixEdit, len(edits))
	copy(sorted, edits)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Span, sorted[j].Span
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		return a.Empty() && !b.Empty()
	})

	out := make([]byte, 0, len(content))
	pos := uint32(0)
	for _, e := range sorted {
		out = append(out, content[pos:e.Span.Start]...)
		out = append(out, e.NewText...)
		pos = e.Span.End
	}
	return append(out, content[pos:]...)
}

func formatFilePath(fs *source.FileSet, fileID source.FileID) string {
	if int(fileID) >= fs.Len() {
		return ""
	}
	return fs.Get(fileID).FormatPath("relative", fs.BaseDir())
}
