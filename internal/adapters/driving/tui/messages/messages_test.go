package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionState_String(t *testing.T) {
	assert.Equal(t, "awaiting_input", StateAwaitingInput.String())
	assert.Equal(t, "executing", StateExecuting.String())
	assert.Equal(t, "terminated", StateTerminated.String())
	assert.Equal(t, "unknown", SessionState(99).String())
}
