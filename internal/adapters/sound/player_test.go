package sound

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBellPlayer_WritesBell(t *testing.T) {
	var buf bytes.Buffer
	p := NewBellPlayer(&buf)

	require.NoError(t, p.PlaySound())
	require.NoError(t, p.PlaySoundForEvent(EventBreakComplete))

	assert.Equal(t, "\a\a", buf.String())
}

func TestCommandsForEvent_DistinctPerEvent(t *testing.T) {
	focus := commandsForEvent(EventFocusComplete)
	brk := commandsForEvent(EventBreakComplete)

	if len(focus) == 0 {
		t.Skip("no sound commands on this platform")
	}
	require.NotEmpty(t, brk)
	assert.NotEqual(t, focus[0].args, brk[0].args)
}
