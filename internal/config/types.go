// Package config defines the machine inventory model, the inventory loader,
// and the filesystem layout the tool provisions into.
package config

import (
	"fmt"
	"strings"
)

// DefaultInventoryFile is the inventory path used when none is given.
const DefaultInventoryFile = "data.yml"

// Machine describes one remote host to provision.
// All fields are required; records with any field missing are skipped.
type Machine struct {
	// Hostname identifies the machine and names its key and config block.
	Hostname string `yaml:"hostname" mapstructure:"hostname"`

	// IP is the address written as HostName in the SSH config block.
	IP string `yaml:"ip" mapstructure:"ip"`

	// Scope is a free-text namespace label (e.g., "prod", "homelab") that
	// disambiguates key file names across environments.
	Scope string `yaml:"scope" mapstructure:"scope"`

	// User is the login user on the machine.
	User string `yaml:"user" mapstructure:"user"`
}

// Inventory is the top-level shape of the inventory file.
type Inventory struct {
	Machines []Machine `yaml:"machines" mapstructure:"machines"`
}

// Comment returns the ssh-keygen comment string for the machine.
func (m Machine) Comment() string {
	return fmt.Sprintf("%s.%s.%s", m.Scope, m.Hostname, m.User)
}

// Alias returns the Host alias used in the SSH config block.
// The hostname is lowercased so aliases are case-stable across inventories.
func (m Machine) Alias() string {
	return strings.ToLower(m.Hostname) + "." + m.User
}
