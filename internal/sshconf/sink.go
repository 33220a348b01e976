package sshconf

import (
	"fmt"
	"os"
	"strings"

	"github.com/0xjuang/portal22/internal/errors"
)

// Sink is the append-only destination for rendered config blocks.
// Production uses FileSink; tests use an in-memory implementation.
// I/O failures here are fatal for the whole run: partial config
// corruption is worse than aborting.
type Sink interface {
	// WriteHeaderOnce appends the sentinel header if the destination does
	// not already contain it. Safe to call on every run.
	WriteHeaderOnce() error

	// AppendBlock appends a rendered block verbatim.
	AppendBlock(block string) error
}

// FileSink appends to a real SSH config file.
type FileSink struct {
	path      string
	file      *os.File
	hasHeader bool
}

// OpenFileSink opens the config file in append mode, creating it if absent.
// Existing content is read first so the sentinel header is only ever
// written once over the lifetime of the file.
func OpenFileSink(path string) (*FileSink, error) {
	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.WrapWithCode(err, errors.ErrSSHConf,
			fmt.Sprintf("Failed to read SSH config: %s", path),
			"Check the file is readable")
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrSSHConf,
			fmt.Sprintf("Failed to open SSH config for appending: %s", path),
			"Check permissions on your ~/.ssh directory")
	}

	return &FileSink{
		path:      path,
		file:      f,
		hasHeader: strings.Contains(string(existing), Header),
	}, nil
}

// Path returns the config file path.
func (s *FileSink) Path() string {
	return s.path
}

// WriteHeaderOnce implements Sink.
func (s *FileSink) WriteHeaderOnce() error {
	if s.hasHeader {
		return nil
	}
	if _, err := s.file.WriteString(Header + "\n"); err != nil {
		return errors.WrapWithCode(err, errors.ErrSSHConf,
			fmt.Sprintf("Failed to write header to %s", s.path),
			"Check disk space and file permissions")
	}
	s.hasHeader = true
	return nil
}

// AppendBlock implements Sink.
func (s *FileSink) AppendBlock(block string) error {
	if _, err := s.file.WriteString(block); err != nil {
		return errors.WrapWithCode(err, errors.ErrSSHConf,
			fmt.Sprintf("Failed to append to %s", s.path),
			"Check disk space and file permissions")
	}
	return nil
}

// Close closes the underlying file.
func (s *FileSink) Close() error {
	return s.file.Close()
}
