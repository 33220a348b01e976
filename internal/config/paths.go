package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/0xjuang/portal22/internal/errors"
)

// Paths describes the filesystem locations the tool reads and writes.
// Injecting it keeps the pipeline testable against a temporary root
// instead of the real home directory.
type Paths struct {
	// KeysDir is where generated key files live.
	KeysDir string

	// ConfigFile is the SSH client config file blocks are appended to.
	ConfigFile string
}

// DefaultPaths returns the conventional layout under the user's ~/.ssh.
func DefaultPaths() (Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Paths{}, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to determine home directory",
			"Set the HOME environment variable")
	}

	sshDir := filepath.Join(home, ".ssh")
	return Paths{
		KeysDir:    filepath.Join(sshDir, "keys"),
		ConfigFile: filepath.Join(sshDir, "config"),
	}, nil
}

// KeyPath derives the key file path for a machine. Pure function of
// (scope, hostname, user); existence of this path is the idempotency
// signal that a machine is already provisioned.
func (p Paths) KeyPath(m Machine) string {
	return filepath.Join(p.KeysDir, fmt.Sprintf("key.%s.%s.%s", m.Scope, m.Hostname, m.User))
}

// EnsureKeysDir creates the keys directory (and parents) if absent.
// Private keys live here, so the directory is created user-only.
func (p Paths) EnsureKeysDir() error {
	if err := os.MkdirAll(p.KeysDir, 0700); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to create keys directory: %s", p.KeysDir),
			"Check permissions on your ~/.ssh directory")
	}
	return nil
}
