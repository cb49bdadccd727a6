package camera

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
)

// FrameSource delivers color frames of consistent dimensions on demand.
//
// Next returns io.EOF once the source is exhausted; a live camera source
// never is. Implementations own any buffering or frame dropping; the
// pipeline has no opinion on frame rate.
type FrameSource interface {
	Next() (image.Image, error)
}

// DirSource replays the image files of a directory as a frame sequence, in
// lexical filename order. It stands in for a camera during development and
// in tests.
//
// Every frame is resized (Lanczos) to the dimensions of the first frame, so
// a directory of mixed-size images still satisfies the FrameSource contract
// of consistent dimensions per session.
//
// Decoded frames are cached by path, so looping over the same directory
// repeatedly does not re-read the files. DirSource is safe for concurrent
// use, though frames are handed out in sequence regardless of caller.
type DirSource struct {
	mu     sync.Mutex
	paths  []string
	next   int
	width  int
	height int
	cache  map[string]image.Image
}

// NewDirSource lists the supported image files (png, jpg, jpeg, gif) in dir.
// It fails if the directory cannot be read or holds no supported files.
func NewDirSource(dir string) (*DirSource, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read frame directory: %w", err)
	}

	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".png", ".jpg", ".jpeg", ".gif":
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no image files in %s", dir)
	}
	sort.Strings(paths)

	return &DirSource{
		paths: paths,
		cache: make(map[string]image.Image),
	}, nil
}

// Len returns the number of frames the source will deliver.
func (s *DirSource) Len() int {
	return len(s.paths)
}

// Next returns the next frame, or io.EOF after the last file.
func (s *DirSource) Next() (image.Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.next >= len(s.paths) {
		return nil, io.EOF
	}
	path := s.paths[s.next]
	s.next++

	img, err := s.load(path)
	if err != nil {
		return nil, err
	}

	if s.width == 0 {
		// First frame fixes the session dimensions.
		s.width = img.Bounds().Dx()
		s.height = img.Bounds().Dy()
		return img, nil
	}
	if img.Bounds().Dx() != s.width || img.Bounds().Dy() != s.height {
		img = imaging.Resize(img, s.width, s.height, imaging.Lanczos)
	}
	return img, nil
}

func (s *DirSource) load(path string) (image.Image, error) {
	if img, ok := s.cache[path]; ok {
		return img, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open frame: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode frame %s: %w", path, err)
	}
	s.cache[path] = img
	return img, nil
}
