package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/0xjuang/portal22/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInventory(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadInventory(t *testing.T) {
	path := writeInventory(t, `machines:
  - hostname: web1
    ip: 10.0.0.5
    scope: prod
    user: deploy
  - hostname: db1
    ip: 10.0.0.6
    scope: prod
    user: postgres
`)

	machines := LoadInventory(path, logger.Noop())

	require.Len(t, machines, 2)
	assert.Equal(t, Machine{Hostname: "web1", IP: "10.0.0.5", Scope: "prod", User: "deploy"}, machines[0])
	assert.Equal(t, "db1", machines[1].Hostname)
}

func TestLoadInventoryMissingFile(t *testing.T) {
	log := logger.NewBufferLogger()

	machines := LoadInventory(filepath.Join(t.TempDir(), "nope.yml"), log)

	assert.Empty(t, machines)
	assert.True(t, log.HasLevel("warn"))
	assert.True(t, log.Contains("not found"))
}

func TestLoadInventoryMalformedYAML(t *testing.T) {
	path := writeInventory(t, "machines: [unclosed\n")
	log := logger.NewBufferLogger()

	machines := LoadInventory(path, log)

	assert.Empty(t, machines)
	assert.True(t, log.HasLevel("warn"))
	assert.True(t, log.Contains("parse"))
}

func TestLoadInventoryNoMachinesKey(t *testing.T) {
	path := writeInventory(t, "hosts:\n  - hostname: web1\n")
	log := logger.NewBufferLogger()

	machines := LoadInventory(path, log)

	assert.Empty(t, machines)
	assert.True(t, log.Contains("machines"))
}

func TestLoadInventoryIncompleteRecordsSurvive(t *testing.T) {
	// Records missing fields are loaded as-is; validation is deferred to
	// processing time.
	path := writeInventory(t, `machines:
  - hostname: web1
  - ip: 10.0.0.9
`)

	machines := LoadInventory(path, logger.Noop())

	require.Len(t, machines, 2)
	assert.Equal(t, "web1", machines[0].Hostname)
	assert.Empty(t, machines[0].IP)
	assert.Empty(t, machines[1].Hostname)
}
