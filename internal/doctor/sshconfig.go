package doctor

import (
	"fmt"
	"os"
	"strings"

	"github.com/0xjuang/portal22/internal/config"
	"github.com/0xjuang/portal22/internal/sshconf"
	"github.com/kevinburke/ssh_config"
)

// SentinelCheck reports whether the SSH config carries the tool's header.
type SentinelCheck struct {
	Paths config.Paths
}

func (c *SentinelCheck) Name() string     { return "sentinel_header" }
func (c *SentinelCheck) Category() string { return "SSH_CONFIG" }

func (c *SentinelCheck) Run() CheckResult {
	data, err := os.ReadFile(c.Paths.ConfigFile)
	if err != nil {
		if os.IsNotExist(err) {
			return CheckResult{
				Name:    c.Name(),
				Status:  StatusWarn,
				Message: fmt.Sprintf("SSH config does not exist yet: %s", c.Paths.ConfigFile),
			}
		}
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("cannot read SSH config: %v", err),
			Suggestion: "Check permissions on your ~/.ssh directory",
		}
	}

	if !strings.Contains(string(data), sshconf.Header) {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusWarn,
			Message: "sentinel header not present; no blocks written yet",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: "sentinel header present",
	}
}

func (c *SentinelCheck) Fix() error { return nil }

// DuplicateAliasCheck parses the SSH config and reports Host aliases that
// appear more than once. Re-running apply appends duplicate blocks for
// already-provisioned machines; this check surfaces that condition without
// resolving it (the append path never parses or merges).
type DuplicateAliasCheck struct {
	Paths config.Paths
}

func (c *DuplicateAliasCheck) Name() string     { return "duplicate_aliases" }
func (c *DuplicateAliasCheck) Category() string { return "SSH_CONFIG" }

func (c *DuplicateAliasCheck) Run() CheckResult {
	f, err := os.Open(c.Paths.ConfigFile)
	if err != nil {
		if os.IsNotExist(err) {
			return CheckResult{
				Name:    c.Name(),
				Status:  StatusPass,
				Message: "SSH config does not exist yet, nothing to check",
			}
		}
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("cannot open SSH config: %v", err),
			Suggestion: "Check permissions on your ~/.ssh directory",
		}
	}
	defer f.Close()

	cfg, err := ssh_config.Decode(f)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("SSH config is unparsable: %v", err),
			Suggestion: "Fix the syntax error manually; this tool only ever appends",
		}
	}

	dupes := duplicateAliases(cfg)
	if len(dupes) > 0 {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("duplicate Host aliases: %s", strings.Join(dupes, ", ")),
			Suggestion: "Remove the older blocks manually; ssh uses the first match",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: "no duplicate Host aliases",
	}
}

func (c *DuplicateAliasCheck) Fix() error { return nil }

// duplicateAliases returns aliases seen on more than one Host line, in
// first-seen order. Wildcard patterns are ignored.
func duplicateAliases(cfg *ssh_config.Config) []string {
	seen := make(map[string]int)
	var order []string

	for _, host := range cfg.Hosts {
		for _, pattern := range host.Patterns {
			alias := pattern.String()
			if strings.ContainsAny(alias, "*?!") {
				continue
			}
			if seen[alias] == 0 {
				order = append(order, alias)
			}
			seen[alias]++
		}
	}

	var dupes []string
	for _, alias := range order {
		if seen[alias] > 1 {
			dupes = append(dupes, alias)
		}
	}
	return dupes
}

// DefaultChecks returns the standard check set for the given layout.
func DefaultChecks(paths config.Paths) []Check {
	return []Check{
		&SSHKeygenCheck{},
		&KeysDirCheck{Paths: paths},
		&SentinelCheck{Paths: paths},
		&DuplicateAliasCheck{Paths: paths},
	}
}
