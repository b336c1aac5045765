package driver

import (
	"context"
	"path/filepath"
	"testing"

	"uvss/internal/project"
	"uvss/internal/source"
)

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := OpenDiskCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	path := writeFile(t, t.TempDir(), "a.uvss", "#a { b c; }")
	opts := DiagnoseOptions{MaxDiagnostics: 10, Cache: cache}

	first, err := Diagnose(context.Background(), path, opts)
	if err != nil {
		t.Fatalf("first Diagnose: %v", err)
	}
	if first.Cached || first.Document == nil {
		t.Fatalf("first run must parse")
	}

	second, err := Diagnose(context.Background(), path, opts)
	if err != nil {
		t.Fatalf("second Diagnose: %v", err)
	}
	if !second.Cached {
		t.Fatalf("second run should hit the cache")
	}
	if second.Document != nil {
		t.Errorf("cached result must not carry a document")
	}

	a, b := first.Bag.Items(), second.Bag.Items()
	if len(a) != len(b) {
		t.Fatalf("cached bag has %d items, want %d", len(b), len(a))
	}
	for i := range a {
		if a[i].Code != b[i].Code || a[i].Message != b[i].Message || a[i].Primary != b[i].Primary {
			t.Errorf("item %d differs: %+v vs %+v", i, a[i], b[i])
		}
		if len(a[i].Fixes) != len(b[i].Fixes) {
			t.Errorf("item %d lost its fixes", i)
		}
	}
}

func TestDiskCacheKeyDependsOnContentAndLimit(t *testing.T) {
	fs := source.NewFileSet()
	a := fs.Get(fs.AddVirtual("a.uvss", []byte("#a {}")))
	b := fs.Get(fs.AddVirtual("b.uvss", []byte("#b {}")))
	if cacheKey(a, 10) == cacheKey(b, 10) {
		t.Errorf("different content must give different keys")
	}
	if cacheKey(a, 10) == cacheKey(a, 20) {
		t.Errorf("different limits must give different keys")
	}
	if cacheKey(a, 10) != cacheKey(a, 10) {
		t.Errorf("key must be deterministic")
	}
}

func TestDiskCacheDropAll(t *testing.T) {
	cache, err := OpenDiskCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("a.uvss", []byte("#a {}")))
	key := cacheKey(f, 1)
	if err := cache.Put(key, &DiskPayload{Schema: diskCacheSchemaVersion, Path: f.Path}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := cache.DropAll(); err != nil {
		t.Fatalf("drop: %v", err)
	}
	var out DiskPayload
	hit, err := cache.Get(key, &out)
	if err != nil || hit {
		t.Fatalf("expected miss after DropAll, got hit=%v err=%v", hit, err)
	}
}

func TestNilDiskCache(t *testing.T) {
	var cache *DiskCache
	var out DiskPayload
	if hit, err := cache.Get(cacheKeyForTest(), &out); hit || err != nil {
		t.Fatalf("nil cache must miss silently")
	}
	if err := cache.Put(cacheKeyForTest(), &DiskPayload{}); err != nil {
		t.Fatalf("nil cache Put: %v", err)
	}
}

func cacheKeyForTest() project.Digest {
	fs := source.NewFileSet()
	return cacheKey(fs.Get(fs.AddVirtual("x", nil)), 0)
}
