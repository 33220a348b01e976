// Package testing provides a fake key generator for tests.
package testing

import (
	"os"
	"sync"
)

// Call records a single Generate invocation.
type Call struct {
	Path    string
	Comment string
}

// FakeGenerator implements keygen.Generator for tests. It records every
// call and, unless Err is set, creates an empty file at the requested
// path so existence checks behave like the real utility.
type FakeGenerator struct {
	mu    sync.Mutex
	Calls []Call

	// Err, when non-nil, is returned from Generate and no file is created.
	Err error

	// SkipWrite suppresses file creation even on success.
	SkipWrite bool
}

// Generate records the call and simulates key creation.
func (f *FakeGenerator) Generate(path, comment string) error {
	f.mu.Lock()
	f.Calls = append(f.Calls, Call{Path: path, Comment: comment})
	f.mu.Unlock()

	if f.Err != nil {
		return f.Err
	}
	if !f.SkipWrite {
		return os.WriteFile(path, []byte("fake private key\n"), 0600)
	}
	return nil
}

// CallCount returns the number of recorded Generate calls.
func (f *FakeGenerator) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Calls)
}
