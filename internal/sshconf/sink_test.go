package sshconf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSinkWritesHeaderOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")

	sink, err := OpenFileSink(path)
	require.NoError(t, err)
	require.NoError(t, sink.WriteHeaderOnce())
	require.NoError(t, sink.WriteHeaderOnce()) // second call same run
	require.NoError(t, sink.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), Header))
}

func TestFileSinkHeaderSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")

	for i := 0; i < 3; i++ {
		sink, err := OpenFileSink(path)
		require.NoError(t, err)
		require.NoError(t, sink.WriteHeaderOnce())
		require.NoError(t, sink.AppendBlock("Host a.b\n\n"))
		require.NoError(t, sink.Close())
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), Header),
		"header must appear exactly once no matter how many runs")
	assert.Equal(t, 3, strings.Count(string(data), "Host a.b"))
}

func TestFileSinkAppendsToExistingContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte("Host existing\n        User me\n\n"), 0600))

	sink, err := OpenFileSink(path)
	require.NoError(t, err)
	require.NoError(t, sink.WriteHeaderOnce())
	require.NoError(t, sink.AppendBlock("Host new.one\n\n"))
	require.NoError(t, sink.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.True(t, strings.HasPrefix(content, "Host existing\n"), "existing content untouched")
	assert.Less(t, strings.Index(content, Header), strings.Index(content, "Host new.one"))
}

func TestOpenFileSinkUnreadableDir(t *testing.T) {
	_, err := OpenFileSink(filepath.Join(t.TempDir(), "missing", "config"))
	assert.Error(t, err)
}
