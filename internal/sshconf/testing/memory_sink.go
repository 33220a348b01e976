// Package testing provides an in-memory Sink for tests.
package testing

import (
	"strings"

	"github.com/0xjuang/portal22/internal/sshconf"
)

// MemorySink implements sshconf.Sink against an in-memory buffer.
type MemorySink struct {
	buf       strings.Builder
	hasHeader bool

	// Err, when non-nil, is returned from every write.
	Err error
}

// NewMemorySink returns an empty in-memory sink. Seed pre-populates the
// buffer, as if the config file already had content.
func NewMemorySink(seed string) *MemorySink {
	s := &MemorySink{hasHeader: strings.Contains(seed, sshconf.Header)}
	s.buf.WriteString(seed)
	return s
}

// WriteHeaderOnce implements sshconf.Sink.
func (s *MemorySink) WriteHeaderOnce() error {
	if s.Err != nil {
		return s.Err
	}
	if !s.hasHeader {
		s.buf.WriteString(sshconf.Header + "\n")
		s.hasHeader = true
	}
	return nil
}

// AppendBlock implements sshconf.Sink.
func (s *MemorySink) AppendBlock(block string) error {
	if s.Err != nil {
		return s.Err
	}
	s.buf.WriteString(block)
	return nil
}

// Content returns everything written so far, including any seed.
func (s *MemorySink) Content() string {
	return s.buf.String()
}
