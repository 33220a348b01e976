package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name:     "message only",
			err:      New(ErrConfig, "Inventory not found", ""),
			contains: []string{"✗ Inventory not found"},
		},
		{
			name:     "message and suggestion",
			err:      New(ErrKeygen, "Key generation failed", "Install ssh-keygen"),
			contains: []string{"✗ Key generation failed", "Install ssh-keygen"},
		},
		{
			name:     "wrapped cause appears",
			err:      WrapWithCode(fmt.Errorf("permission denied"), ErrSSHConf, "Failed to append", "Check permissions"),
			contains: []string{"✗ Failed to append", "permission denied", "Check permissions"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.contains {
				assert.Contains(t, msg, want)
			}
		})
	}
}

func TestIsCode(t *testing.T) {
	err := New(ErrSSHConf, "boom", "")

	assert.True(t, IsCode(err, ErrSSHConf))
	assert.False(t, IsCode(err, ErrConfig))
	assert.False(t, IsCode(nil, ErrConfig))
	assert.False(t, IsCode(fmt.Errorf("plain"), ErrConfig))
}

func TestIsCodeThroughWrapping(t *testing.T) {
	inner := New(ErrKeygen, "keygen exited 1", "")
	outer := fmt.Errorf("processing web1: %w", inner)

	assert.True(t, IsCode(outer, ErrKeygen))
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := WrapWithCode(cause, ErrSSHConf, "Failed to write", "")

	assert.Equal(t, cause, err.Unwrap())
}

func TestWrapDefaultsToExec(t *testing.T) {
	err := Wrap(fmt.Errorf("boom"), "command failed")
	assert.Equal(t, ErrExec, err.Code)
}
