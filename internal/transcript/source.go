package transcript

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/singleflight"
)

// ReadFunc returns the current bytes of a source document.
type ReadFunc func(ctx context.Context) ([]byte, error)

// Source parses a document once per version of its bytes. A version is
// identified by the xxhash of the content; unchanged bytes return the cached
// transcript (or the cached parse error) without reparsing.
type Source struct {
	name string
	read ReadFunc
	log  *slog.Logger

	group singleflight.Group

	mu     sync.Mutex
	loaded bool
	hash   uint64
	cached Transcript
	err    error
	parses int
}

// NewSource creates a source named name (the name selects the parser).
func NewSource(name string, read ReadFunc, log *slog.Logger) *Source {
	if log == nil {
		log = slog.Default()
	}
	return &Source{name: name, read: read, log: log}
}

// NewFileSource reads path on every load and reparses when it changes.
func NewFileSource(path string, log *slog.Logger) *Source {
	return NewSource(path, func(ctx context.Context) ([]byte, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return os.ReadFile(path)
	}, log)
}

// NewStaticSource serves fixed bytes.
func NewStaticSource(name string, data []byte, log *slog.Logger) *Source {
	return NewSource(name, func(context.Context) ([]byte, error) {
		return data, nil
	}, log)
}

// Name returns the source name.
func (s *Source) Name() string {
	return s.name
}

// Transcript returns the parsed transcript for the current document bytes.
func (s *Source) Transcript(ctx context.Context) (Transcript, error) {
	v, err, _ := s.group.Do("load", func() (any, error) {
		return s.load(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.(Transcript), nil
}

// Parses returns how many times the document has been parsed.
func (s *Source) Parses() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.parses
}

func (s *Source) load(ctx context.Context) (Transcript, error) {
	data, err := s.read(ctx)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.name, err)
	}
	h := xxhash.Sum64(data)

	s.mu.Lock()
	if s.loaded && s.hash == h {
		t, err := s.cached, s.err
		s.mu.Unlock()
		return t, err
	}
	s.mu.Unlock()

	t, err := Parse(data, s.name)
	if err != nil {
		s.log.Error("transcript parse failed", "source", s.name, "error", err)
	} else {
		s.log.Info("transcript parsed", "source", s.name, "utterances", len(t), "bytes", len(data))
	}

	s.mu.Lock()
	s.loaded = true
	s.hash = h
	s.cached = t
	s.err = err
	s.parses++
	s.mu.Unlock()

	return t, err
}
