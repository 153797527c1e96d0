package report

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/scytale-dev/scytale/internal/env"
)

const (
	defaultOutputDir    = "out"
	defaultFilename     = "candidates.jsonl"
	defaultMaxBytes     = 10 << 20
	defaultBufferSize   = 64 << 10
	defaultMaxRotations = 5
)

// DefaultCandidatesPath is the canonical location for persisted
// candidates. SCYTALE_OUT overrides the directory.
var DefaultCandidatesPath = filepath.Join(defaultOutputDir, defaultFilename)

func init() {
	if val, ok := env.Lookup("SCYTALE_OUT", "SKYTALE_OUT"); ok {
		if custom := strings.TrimSpace(val); custom != "" {
			DefaultCandidatesPath = filepath.Join(custom, defaultFilename)
		}
	}
}

// WriterOption configures the writer behaviour.
type WriterOption func(*Writer)

// WithMaxBytes overrides the rotation threshold. Values <= 0 disable
// rotation.
func WithMaxBytes(limit int64) WriterOption {
	return func(w *Writer) {
		w.maxBytes = limit
	}
}

// WithBufferSize overrides the buffered writer size.
func WithBufferSize(size int) WriterOption {
	return func(w *Writer) {
		if size > 0 {
			w.bufSize = size
		}
	}
}

// WithMaxRotations sets how many rotated files are retained. Values < 1
// keep a single file without rotation history.
func WithMaxRotations(count int) WriterOption {
	return func(w *Writer) {
		if count < 1 {
			count = 1
		}
		w.maxFiles = count
	}
}

// Writer appends candidates to a JSON Lines file with size based
// rotation, so long crack sessions cannot grow one file without bound.
type Writer struct {
	mu       sync.Mutex
	path     string
	maxBytes int64
	bufSize  int
	maxFiles int
	file     *os.File
	buf      *bufio.Writer
	written  int64
}

// NewWriter constructs a writer targeting the provided path, falling
// back to the SCYTALE_OUT directory or DefaultCandidatesPath when path
// is empty.
func NewWriter(path string, opts ...WriterOption) *Writer {
	if strings.TrimSpace(path) == "" {
		if val, ok := env.Lookup("SCYTALE_OUT", "SKYTALE_OUT"); ok && strings.TrimSpace(val) != "" {
			path = filepath.Join(strings.TrimSpace(val), defaultFilename)
		} else {
			path = DefaultCandidatesPath
		}
	}
	w := &Writer{path: path, maxBytes: defaultMaxBytes, bufSize: defaultBufferSize, maxFiles: defaultMaxRotations}
	for _, opt := range opts {
		opt(w)
	}
	if w.maxFiles < 1 {
		w.maxFiles = 1
	}
	return w
}

// Path returns the file path currently used by the writer.
func (w *Writer) Path() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.path
}

// Write validates and appends the candidate to disk.
func (w *Writer) Write(c Candidate) error {
	if strings.TrimSpace(c.Version) == "" {
		c.Version = SchemaVersion
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid candidate: %w", err)
	}

	payload, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode candidate: %w", err)
	}
	payload = append(payload, '\n')

	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.ensureWriter(); err != nil {
		return err
	}
	if err := w.rotateIfNeeded(int64(len(payload))); err != nil {
		return err
	}

	if _, err := w.buf.Write(payload); err != nil {
		return fmt.Errorf("write candidate: %w", err)
	}
	if err := w.buf.Flush(); err != nil {
		return fmt.Errorf("flush candidate: %w", err)
	}
	if syncWritesEnabled() && w.file != nil {
		if err := w.file.Sync(); err != nil {
			return fmt.Errorf("sync candidate: %w", err)
		}
	}
	if w.file != nil {
		w.written += int64(len(payload))
	}
	return nil
}

// Close flushes and closes the underlying file handle.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	var firstErr error
	if w.buf != nil {
		if err := w.buf.Flush(); err != nil && !errors.Is(err, os.ErrClosed) {
			firstErr = err
		}
	}
	if w.file != nil {
		if err := w.file.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	w.buf = nil
	w.file = nil
	w.written = 0
	return firstErr
}

func (w *Writer) ensureWriter() error {
	if w.buf != nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(w.path), 0o755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}
	file, err := os.OpenFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open report file: %w", err)
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("stat report file: %w", err)
	}
	w.file = file
	w.buf = bufio.NewWriterSize(file, w.bufSize)
	w.written = info.Size()
	return nil
}

func (w *Writer) rotateIfNeeded(next int64) error {
	if w.maxBytes <= 0 {
		return nil
	}
	if w.written+next <= w.maxBytes {
		return nil
	}

	if w.buf != nil {
		if err := w.buf.Flush(); err != nil {
			return fmt.Errorf("flush during rotation: %w", err)
		}
	}
	if w.file != nil {
		if err := w.file.Close(); err != nil {
			return fmt.Errorf("close during rotation: %w", err)
		}
	}

	for i := w.maxFiles - 1; i >= 1; i-- {
		src := fmt.Sprintf("%s.%d", w.path, i)
		dst := fmt.Sprintf("%s.%d", w.path, i+1)
		if _, err := os.Stat(src); err == nil {
			if i+1 > w.maxFiles {
				_ = os.Remove(src)
				continue
			}
			if err := os.Rename(src, dst); err != nil {
				return fmt.Errorf("rotate report file: %w", err)
			}
		}
	}
	rotated := fmt.Sprintf("%s.%d", w.path, 1)
	if err := os.Rename(w.path, rotated); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("rotate report file: %w", err)
		}
	}

	w.buf = nil
	w.file = nil
	w.written = 0
	return w.ensureWriter()
}

func syncWritesEnabled() bool {
	val, ok := env.Lookup("SCYTALE_SYNC_WRITES", "SKYTALE_SYNC_WRITES")
	return ok && val == "1"
}
