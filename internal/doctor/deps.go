package doctor

import (
	"fmt"
	"os/exec"

	"github.com/0xjuang/portal22/internal/keygen"
)

// SSHKeygenCheck verifies the external key-generation utility is on PATH.
type SSHKeygenCheck struct{}

func (c *SSHKeygenCheck) Name() string     { return "ssh_keygen" }
func (c *SSHKeygenCheck) Category() string { return "DEPENDENCIES" }

func (c *SSHKeygenCheck) Run() CheckResult {
	path, err := exec.LookPath(keygen.Binary)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "ssh-keygen not found",
			Suggestion: "Install OpenSSH client tools: apt install openssh-client (Linux) or it ships with macOS",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("ssh-keygen found at %s", path),
	}
}

func (c *SSHKeygenCheck) Fix() error {
	return nil // System package installation is out of scope
}
