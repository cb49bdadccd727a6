package camera

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/anthonynsimon/bild/imgio"
)

// DisplaySink accepts annotated frames for presentation and exposes the quit
// signal the caller's loop polls between frames.
type DisplaySink interface {
	// Display presents one annotated frame.
	Display(img image.Image) error

	// Quit reports whether the user has asked to stop. The loop polls it
	// once per iteration; the pipeline itself never sees it.
	Quit() bool
}

// QuitFlag is a boolean signal that can be set once from any goroutine,
// typically from a signal handler standing in for a window's key press.
type QuitFlag struct {
	v atomic.Bool
}

// Set marks the flag. Safe to call repeatedly and from any goroutine.
func (q *QuitFlag) Set() {
	q.v.Store(true)
}

// IsSet reports whether Set has been called.
func (q *QuitFlag) IsSet() bool {
	return q.v.Load()
}

// FileSink writes annotated frames as numbered PNG files into a directory.
// It is the headless counterpart of a display window: frames go to disk and
// the quit signal comes from an external QuitFlag.
type FileSink struct {
	dir  string
	n    int
	quit *QuitFlag
}

// NewFileSink creates the output directory if needed. quit may be nil, in
// which case Quit always reports false.
func NewFileSink(dir string, quit *QuitFlag) (*FileSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &FileSink{dir: dir, quit: quit}, nil
}

// Display writes the frame as frame_NNNN.png in the sink directory.
func (s *FileSink) Display(img image.Image) error {
	path := filepath.Join(s.dir, fmt.Sprintf("frame_%04d.png", s.n))
	s.n++
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}
	return nil
}

// Quit reports the state of the attached quit flag.
func (s *FileSink) Quit() bool {
	return s.quit != nil && s.quit.IsSet()
}
