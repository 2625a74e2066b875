// Package wordlist streams password candidates from a newline-delimited file.
package wordlist

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return "wordlist not found: " + e.Path
}

// Source is a single-pass, forward-only candidate stream over an open file.
// It is not safe for concurrent use. Re-scanning requires opening a new Source.
type Source struct {
	l    zerolog.Logger
	path string
	f    *os.File
	r    *bufio.Reader

	candidate string
	line      uint64
	skipped   uint64
	err       error
	done      bool
}

// Open fails with *FileNotFoundError when path does not exist. Any other
// failure to open is returned wrapped.
func Open(path string) (*Source, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, &FileNotFoundError{Path: path}
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open wordlist %s", path)
	}
	return &Source{
		path: path,
		f:    f,
		r:    bufio.NewReader(f),
		l: log.With().
			Str("domain", "hashcrack").
			Str("type", "wordlist").
			Str("path", path).
			Logger(),
	}, nil
}

// Scan advances to the next candidate. Lines that are not valid UTF-8 are
// skipped and counted in Skipped. It returns false at end of input or on a
// read error, which Err then reports.
func (s *Source) Scan() bool {
	for !s.done {
		raw, err := s.r.ReadBytes('\n')
		if err != nil {
			s.done = true
			if !errors.Is(err, io.EOF) {
				s.err = errors.Wrapf(err, "read wordlist %s", s.path)
				return false
			}
			if len(raw) == 0 {
				return false
			}
		}
		s.line++
		raw = bytes.TrimSuffix(raw, []byte{'\n'})
		if !utf8.Valid(raw) {
			s.skipped++
			s.l.Debug().Uint64("line", s.line).Msg("skip undecodable line")
			continue
		}
		s.candidate = strings.TrimSpace(string(raw))
		return true
	}
	return false
}

// Candidate is the trimmed line produced by the last successful Scan.
func (s *Source) Candidate() string {
	return s.candidate
}

func (s *Source) Err() error {
	return s.err
}

func (s *Source) Skipped() uint64 {
	return s.skipped
}

func (s *Source) Path() string {
	return s.path
}

func (s *Source) Close() error {
	if err := s.f.Close(); err != nil {
		return errors.Wrapf(err, "close wordlist %s", s.path)
	}
	return nil
}
