// Package sshconf renders SSH client config blocks and appends them to the
// user's SSH config file. The file is treated as append-only: blocks are
// never merged, edited, or removed, and a sentinel header marks the region
// this tool owns.
package sshconf

import (
	"strings"
	"text/template"

	"github.com/0xjuang/portal22/internal/config"
)

// Header is the sentinel comment line written at most once per config file,
// marking first-time tool usage.
const Header = "#### PORTAL-22 GENERATED KEYS ####"

// Block holds the rendered fields of one SSH config Host block.
type Block struct {
	Alias        string // Host alias: <lowercase-hostname>.<user>
	HostName     string // target address
	User         string // login user
	IdentityFile string // derived key path
}

var blockTemplate = template.Must(template.New("block").Parse(
	`Host {{.Alias}}
        HostName {{.HostName}}
        User {{.User}}
        IdentityFile {{.IdentityFile}}

`))

// NewBlock builds the config block for a machine and its key path.
func NewBlock(m config.Machine, keyPath string) Block {
	return Block{
		Alias:        m.Alias(),
		HostName:     m.IP,
		User:         m.User,
		IdentityFile: keyPath,
	}
}

// Render returns the block as the exact text appended to the config file.
func (b Block) Render() string {
	var sb strings.Builder
	// The template is static and the fields are plain strings; execution
	// cannot fail.
	_ = blockTemplate.Execute(&sb, b)
	return sb.String()
}
