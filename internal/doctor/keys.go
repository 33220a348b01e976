package doctor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/0xjuang/portal22/internal/config"
	"golang.org/x/crypto/ssh"
)

// KeysDirCheck inspects the managed keys directory and verifies that the
// public half of each keypair parses.
type KeysDirCheck struct {
	Paths config.Paths
}

func (c *KeysDirCheck) Name() string     { return "keys_dir" }
func (c *KeysDirCheck) Category() string { return "KEYS" }

func (c *KeysDirCheck) Run() CheckResult {
	entries, err := os.ReadDir(c.Paths.KeysDir)
	if err != nil {
		if os.IsNotExist(err) {
			return CheckResult{
				Name:       c.Name(),
				Status:     StatusWarn,
				Message:    fmt.Sprintf("keys directory does not exist: %s", c.Paths.KeysDir),
				Suggestion: "It is created on the first apply run, or --fix creates it now",
				Fixable:    true,
			}
		}
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("cannot read keys directory: %v", err),
			Suggestion: "Check permissions on your ~/.ssh directory",
		}
	}

	keys, unreadable := c.scanKeys(entries)
	if unreadable > 0 {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("%d managed keys, %d with unparsable public key", keys, unreadable),
			Suggestion: "Regenerate affected keys by deleting both halves and re-running apply",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("%d managed keys in %s", keys, c.Paths.KeysDir),
	}
}

func (c *KeysDirCheck) Fix() error {
	return c.Paths.EnsureKeysDir()
}

// scanKeys counts private keys with the managed "key." prefix and how many
// of their public halves fail to parse.
func (c *KeysDirCheck) scanKeys(entries []os.DirEntry) (keys, unreadable int) {
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, "key.") || strings.HasSuffix(name, ".pub") {
			continue
		}
		keys++

		pubPath := filepath.Join(c.Paths.KeysDir, name+".pub")
		data, err := os.ReadFile(pubPath)
		if err != nil {
			unreadable++
			continue
		}
		if _, _, _, _, err := ssh.ParseAuthorizedKey(data); err != nil {
			unreadable++
		}
	}
	return keys, unreadable
}

// Fingerprints returns the SHA256 fingerprint per managed key that has a
// readable public half, keyed by key file name.
func (c *KeysDirCheck) Fingerprints() map[string]string {
	entries, err := os.ReadDir(c.Paths.KeysDir)
	if err != nil {
		return nil
	}

	fps := make(map[string]string)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, "key.") || strings.HasSuffix(name, ".pub") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(c.Paths.KeysDir, name+".pub"))
		if err != nil {
			continue
		}
		pub, _, _, _, err := ssh.ParseAuthorizedKey(data)
		if err != nil {
			continue
		}
		fps[name] = ssh.FingerprintSHA256(pub)
	}
	return fps
}
