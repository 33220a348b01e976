// Package keygen wraps the external ssh-keygen utility behind a small
// capability interface so the provisioning pipeline can be tested with a
// fake that records calls and simulates failures.
package keygen

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/0xjuang/portal22/internal/errors"
)

// Generator creates an SSH keypair at the given path, tagged with the
// given comment. Implementations must fail if the invocation fails;
// callers rely on the error to suppress follow-up actions for the record.
type Generator interface {
	Generate(path, comment string) error
}

// SSHKeygen is the production Generator. It shells out to ssh-keygen,
// requesting an ed25519 keypair with an empty passphrase.
type SSHKeygen struct{}

// Binary is the external key-generation command.
const Binary = "ssh-keygen"

// Generate runs ssh-keygen to create the keypair at path.
// The invocation is synchronous and blocks until the utility exits.
func (SSHKeygen) Generate(path, comment string) error {
	args := []string{
		"-t", "ed25519",
		"-C", comment,
		"-f", path,
		"-N", "", // empty passphrase
	}

	cmd := exec.Command(Binary, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrKeygen,
			fmt.Sprintf("Failed to generate key at %s: %s", path, strings.TrimSpace(string(output))),
			"Ensure ssh-keygen is installed and accessible")
	}

	return nil
}

// Available reports whether the ssh-keygen binary is on PATH.
func Available() bool {
	_, err := exec.LookPath(Binary)
	return err == nil
}
