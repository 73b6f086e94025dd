package notify

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriterAlerter(t *testing.T) {
	var buf bytes.Buffer

	NewWriterAlerter(&buf).Alert("Please enter a task to focus on!")

	assert.Equal(t, "⚠ Please enter a task to focus on!\n", buf.String())
}

func TestAlerterFunc(t *testing.T) {
	var got string

	AlerterFunc(func(m string) { got = m }).Alert("hi")

	assert.Equal(t, "hi", got)
}
