package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFrameCache(t *testing.T) {
	fc := &FrameCache{Dir: t.TempDir()}
	s := frontFaceScene()
	cfg := RenderConfig{Width: 3, Height: 2, Depth: 3}

	ck := fc.Key(s, cfg)
	if _, ok := ck.Load(); ok {
		t.Fatal("Load from empty cache succeeded")
	}

	want := testFrame()
	want.Rays = RayCounts{Traced: 10, Shadow: 4}
	ck.Save(want)
	got, ok := fc.Key(s, cfg).Load()
	if !ok {
		t.Fatal("Load after Save failed")
	}
	if got.W != want.W || got.H != want.H || got.Rays != want.Rays {
		t.Errorf("got frame %dx%d %+v, want %dx%d %+v", got.W, got.H, got.Rays, want.W, want.H, want.Rays)
	}
	for i := range want.Color {
		if got.Color[i] != want.Color[i] || got.Opacity[i] != want.Opacity[i] {
			t.Errorf("pixel %d: got %+v/%v, want %+v/%v", i, got.Color[i], got.Opacity[i], want.Color[i], want.Opacity[i])
		}
	}

	// Only the final entry is left behind.
	ents, err := os.ReadDir(fc.Dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(ents) != 1 {
		t.Errorf("got %d files in cache, want 1", len(ents))
	}
}

func TestCacheKey(t *testing.T) {
	fc := &FrameCache{Dir: t.TempDir()}
	s := frontFaceScene()
	cfg := RenderConfig{Width: 3, Height: 2, Depth: 3}
	base := fc.Key(s, cfg).key

	cfg2 := cfg
	cfg2.Workers = 8
	if fc.Key(s, cfg2).key != base {
		t.Errorf("worker count changed the cache key")
	}

	cfg2 = cfg
	cfg2.Depth = 2
	if fc.Key(s, cfg2).key == base {
		t.Errorf("depth didn't change the cache key")
	}

	s2 := frontFaceScene()
	s2.Spheres[0].Radius = 2
	if fc.Key(s2, cfg).key == base {
		t.Errorf("scene didn't change the cache key")
	}
}

func TestCacheCorrupt(t *testing.T) {
	fc := &FrameCache{Dir: t.TempDir()}
	ck := fc.Key(frontFaceScene(), RenderConfig{Width: 1, Height: 1})
	if err := os.WriteFile(ck.path(), []byte("not zstd"), 0666); err != nil {
		t.Fatal(err)
	}
	if _, ok := ck.Load(); ok {
		t.Error("Load of corrupt entry succeeded")
	}
}

// fullWriter fails every write after the first n bytes, like a full disk.
type fullWriter struct {
	n int
}

var errFull = errors.New("no space left on device")

func (w *fullWriter) Write(p []byte) (int, error) {
	if len(p) > w.n {
		k := w.n
		w.n = 0
		return k, errFull
	}
	w.n -= len(p)
	return len(p), nil
}

func TestWriteFrameError(t *testing.T) {
	for _, n := range []int{0, 16} {
		if err := writeFrame(&fullWriter{n}, testFrame()); err == nil {
			t.Errorf("writeFrame with %d bytes free: got no error", n)
		}
	}
}

func TestCacheSaveUnwritable(t *testing.T) {
	// A cache directory under a regular file can't be created, even as
	// root.
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0666); err != nil {
		t.Fatal(err)
	}
	fc := &FrameCache{Dir: filepath.Join(file, "cache")}
	ck := fc.Key(frontFaceScene(), RenderConfig{Width: 3, Height: 2})

	ck.Save(testFrame()) // Must log, not panic.
	if _, ok := ck.Load(); ok {
		t.Error("Load after failed Save succeeded")
	}
}
