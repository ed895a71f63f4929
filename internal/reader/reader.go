package reader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Egor213/LogAnalyzer/internal/analyzer"
	"github.com/Egor213/LogAnalyzer/internal/domain"
	errorsUtils "github.com/Egor213/LogAnalyzer/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const maxLineSize = 1024 * 1024

// FileReader is a resettable sequence of entries read from a log file.
// Every Reset seeks back to the start, so each pass re-reads the file.
type FileReader struct {
	path   string
	format Format
	strict bool

	file    *os.File
	scanner *bufio.Scanner
	parse   parseFunc

	line    int
	skipped int

	pending    domain.LogEntry
	pendingErr error
	hasNext    bool

	// failed is set once the scanner itself errors; the scanner cannot resume.
	failed bool
}

func Open(path string, opts ...Option) (*FileReader, error) {
	r := &FileReader{
		path:   path,
		format: FormatWeblog,
	}

	for _, opt := range opts {
		opt(r)
	}

	parse, err := parserFor(r.format)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	r.parse = parse

	f, err := os.Open(path)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	r.file = f

	if err := r.Reset(); err != nil {
		f.Close()
		return nil, err
	}

	log.WithFields(log.Fields{
		"path":   path,
		"format": r.format,
		"strict": r.strict,
	}).Debug("Log file opened")

	return r, nil
}

// NewProvider adapts Open to analyzer.Provider.
func NewProvider(opts ...Option) analyzer.Provider {
	return func(name string) (analyzer.Source, error) {
		r, err := Open(name, opts...)
		if err != nil {
			return nil, err
		}
		return r, nil
	}
}

func (r *FileReader) Reset() error {
	if r.file == nil {
		return errorsUtils.WrapPathErr(os.ErrClosed)
	}
	if _, err := r.file.Seek(0, io.SeekStart); err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	r.scanner = bufio.NewScanner(r.file)
	r.scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	r.line = 0
	r.skipped = 0
	r.failed = false
	r.advance()
	return nil
}

func (r *FileReader) HasNext() bool {
	return r.hasNext
}

func (r *FileReader) Next() (domain.LogEntry, error) {
	if !r.hasNext {
		return domain.LogEntry{}, ErrNoMoreEntries
	}
	entry, err := r.pending, r.pendingErr
	if r.failed {
		r.pending, r.pendingErr, r.hasNext = domain.LogEntry{}, nil, false
		return entry, err
	}
	r.advance()
	return entry, err
}

// Skipped is the number of malformed lines dropped since the last Reset.
func (r *FileReader) Skipped() int {
	return r.skipped
}

func (r *FileReader) Path() string {
	return r.path
}

func (r *FileReader) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	r.scanner = nil
	r.hasNext = false
	return err
}

// advance moves the lookahead to the next parsable line. In strict mode a
// malformed line becomes the pending error instead of being skipped.
// A line longer than maxLineSize stops the scanner in both modes: it is
// returned once as an error and the reader is then exhausted until Reset.
func (r *FileReader) advance() {
	r.pending, r.pendingErr, r.hasNext = domain.LogEntry{}, nil, false

	for r.scanner.Scan() {
		r.line++
		text := strings.TrimSpace(r.scanner.Text())
		if text == "" {
			continue
		}

		entry, err := r.parse(text)
		if err == nil {
			r.pending, r.hasNext = entry, true
			return
		}

		err = fmt.Errorf("%s:%d: %w", r.path, r.line, err)
		if r.strict {
			r.pendingErr, r.hasNext = err, true
			return
		}

		r.skipped++
		log.WithField("line", r.line).Debugf("Skipped malformed entry: %v", err)
	}

	if err := r.scanner.Err(); err != nil {
		r.pendingErr, r.hasNext, r.failed = errorsUtils.WrapPathErrf(err, "%s:%d", r.path, r.line+1), true, true
	}
}
