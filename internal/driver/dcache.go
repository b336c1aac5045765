package driver

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"uvss/internal/diag"
	"uvss/internal/project"
	"uvss/internal/source"
)

// diskCacheSchemaVersion changes whenever DiskPayload changes shape; older
// entries then read as misses.
const diskCacheSchemaVersion uint16 = 1

// DiskCache keeps the diagnostics of unchanged files between runs as
// msgpack files under dir. It is safe for concurrent use, and a nil cache
// never hits.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

type CachedEdit struct {
	Start   uint32 `msgpack:"s"`
	End     uint32 `msgpack:"e"`
	NewText string `msgpack:"t"`
}

type CachedFix struct {
	Title string       `msgpack:"title"`
	Edits []CachedEdit `msgpack:"edits"`
}

// CachedDiagnostic is a diagnostic with file-relative offsets only.
type CachedDiagnostic struct {
	Severity uint8       `msgpack:"sev"`
	Code     uint16      `msgpack:"code"`
	Message  string      `msgpack:"msg"`
	Start    uint32      `msgpack:"start"`
	End      uint32      `msgpack:"end"`
	Fixes    []CachedFix `msgpack:"fixes,omitempty"`
}

// DiskPayload is the stored entry for one file version.
type DiskPayload struct {
	Schema      uint16             `msgpack:"schema"`
	Path        string             `msgpack:"path"`
	ContentHash project.Digest     `msgpack:"hash"`
	Diagnostics []CachedDiagnostic `msgpack:"diags"`
}

// OpenDiskCache opens $XDG_CACHE_HOME/app, or ~/.cache/app.
func OpenDiskCache(app string) (*DiskCache, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return nil, fmt.Errorf("locate cache directory: %w", err)
	}
	return OpenDiskCacheAt(filepath.Join(base, app))
}

func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// cacheKey covers the content and every option that changes the result.
func cacheKey(file *source.File, maxDiagnostics int) project.Digest {
	opts := fmt.Sprintf("uvss-diag schema=%d max=%d", diskCacheSchemaVersion, max(maxDiagnostics, 0))
	return project.Combine(project.Digest(file.Hash), sha256.Sum256([]byte(opts)))
}

func (c *DiskCache) entryPath(key project.Digest) string {
	name := key.String()
	return filepath.Join(c.dir, "diags", name[:2], name+".mp")
}

// Put stores payload atomically through a temporary file and a rename.
func (c *DiskCache) Put(key project.Digest, payload *DiskPayload) error {
	if c == nil {
		return nil
	}
	data, err := msgpack.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	target := c.entryPath(key)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(target), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), target)
}

// Get fills out and reports a hit. Missing entries and entries of another
// schema are misses, not errors.
func (c *DiskCache) Get(key project.Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	data, err := os.ReadFile(c.entryPath(key))
	c.mu.RUnlock()
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	case err != nil:
		return false, err
	}
	if err := msgpack.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("decode cache entry: %w", err)
	}
	return out.Schema == diskCacheSchemaVersion, nil
}

// DropAll deletes every entry.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(filepath.Join(c.dir, "diags"))
}

func toCachedFixes(fixes []diag.Fix) []CachedFix {
	var out []CachedFix
	for _, fix := range fixes {
		cf := CachedFix{Title: fix.Title, Edits: make([]CachedEdit, len(fix.Edits))}
		for i, e := range fix.Edits {
			cf.Edits[i] = CachedEdit{Start: e.Span.Start, End: e.Span.End, NewText: e.NewText}
		}
		out = append(out, cf)
	}
	return out
}

func bagToPayload(file *source.File, bag *diag.Bag) *DiskPayload {
	p := &DiskPayload{
		Schema:      diskCacheSchemaVersion,
		Path:        file.Path,
		ContentHash: project.Digest(file.Hash),
		Diagnostics: make([]CachedDiagnostic, bag.Len()),
	}
	for i, d := range bag.Items() {
		p.Diagnostics[i] = CachedDiagnostic{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Message:  d.Message,
			Start:    d.Primary.Start,
			End:      d.Primary.End,
			Fixes:    toCachedFixes(d.Fixes),
		}
	}
	return p
}

// payloadToBag rebinds cached diagnostics to file. The bag grows to hold
// every cached entry.
func payloadToBag(file *source.File, payload *DiskPayload, maxDiagnostics int) *diag.Bag {
	at := func(start, end uint32) source.Span { return source.Span{File: file.ID, Start: start, End: end} }
	bag := diag.NewBag(max(maxDiagnostics, len(payload.Diagnostics)))
	for _, cd := range payload.Diagnostics {
		d := diag.New(diag.Severity(cd.Severity), diag.Code(cd.Code), at(cd.Start, cd.End), cd.Message)
		for _, cf := range cd.Fixes {
			edits := make([]diag.FixEdit, len(cf.Edits))
			for i, e := range cf.Edits {
				edits[i] = diag.FixEdit{Span: at(e.Start, e.End), NewText: e.NewText}
			}
			d = d.WithFix(cf.Title, edits...)
		}
		bag.Add(d)
	}
	return bag
}
