package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComment(t *testing.T) {
	m := Machine{Hostname: "web1", IP: "10.0.0.5", Scope: "prod", User: "deploy"}
	assert.Equal(t, "prod.web1.deploy", m.Comment())
}

func TestAliasLowercasesHostname(t *testing.T) {
	tests := []struct {
		hostname string
		user     string
		want     string
	}{
		{"web1", "deploy", "web1.deploy"},
		{"Web1", "deploy", "web1.deploy"},
		{"DB-PRIMARY", "postgres", "db-primary.postgres"},
	}

	for _, tt := range tests {
		m := Machine{Hostname: tt.hostname, User: tt.user}
		assert.Equal(t, tt.want, m.Alias())
	}
}
