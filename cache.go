package main

import (
	"crypto/sha256"
	"encoding/gob"
	"encoding/hex"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
)

// A FrameCache stores rendered frames on disk, keyed by everything that
// went into rendering them.
type FrameCache struct {
	Dir string
}

type CacheKey struct {
	dir string
	key string
}

// Key returns the cache key for rendering scene with cfg. Workers
// doesn't affect the result, so it's not part of the key.
func (fc *FrameCache) Key(scene *Scene, cfg RenderConfig) *CacheKey {
	return fc.makeKey(scene, cfg.Width, cfg.Height, cfg.Depth)
}

func (fc *FrameCache) makeKey(args ...any) *CacheKey {
	h := sha256.New()

	enc := gob.NewEncoder(h)
	for _, arg := range args {
		if err := enc.Encode(arg); err != nil {
			panic("error encoding cache key: " + err.Error())
		}
	}

	return &CacheKey{fc.Dir, hex.EncodeToString(h.Sum(nil))}
}

func (ck *CacheKey) path() string {
	return filepath.Join(ck.dir, ck.key+".gob.zst")
}

// Load reads the cached frame for ck, if there is one.
func (ck *CacheKey) Load() (*Frame, bool) {
	f, err := os.Open(ck.path())
	if err != nil {
		return nil, false
	}
	defer f.Close()
	zr, err := zstd.NewReader(f)
	if err != nil {
		return nil, false
	}
	defer zr.Close()
	var frame Frame
	if gob.NewDecoder(zr).Decode(&frame) != nil {
		return nil, false
	}
	return &frame, true
}

// Save stores frame under ck. Failures are logged, not returned; a
// missing cache entry just means rendering again.
func (ck *CacheKey) Save(frame *Frame) {
	if err := os.MkdirAll(ck.dir, 0777); err != nil {
		log.Printf("error creating %s: %s", ck.dir, err)
		return
	}
	// Write to a temporary file so a partial write never looks like a
	// valid entry.
	tmp, err := os.CreateTemp(ck.dir, ck.key+"-*.tmp")
	if err != nil {
		log.Printf("error saving to cache: %s", err)
		return
	}
	defer os.Remove(tmp.Name())
	if err := writeFrame(tmp, frame); err != nil {
		tmp.Close()
		log.Printf("error saving to cache: %s", err)
		return
	}
	if err := tmp.Close(); err != nil {
		log.Printf("error saving to cache: %s", err)
		return
	}
	if err := os.Rename(tmp.Name(), ck.path()); err != nil {
		log.Printf("error saving to cache: %s", err)
	}
}

// writeFrame writes frame to w as zstd-compressed gob.
func writeFrame(w io.Writer, frame *Frame) error {
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return err
	}
	if err := gob.NewEncoder(zw).Encode(frame); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}
